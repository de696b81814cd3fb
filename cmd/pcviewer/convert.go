package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/seqsense/pcviewer/cloud"
	"github.com/seqsense/pcviewer/loader"
)

var convertCfg struct {
	poses string
	out   string
}

var convertCmd = &cobra.Command{
	Use:   "convert IN.{pcd,ply}",
	Short: "Convert a PCD or PLY file to a viewer document",
	Long: "Convert a PCD or PLY file to a viewer JSON document. Camera poses are\n" +
		"read from a YAML list of row-major 4x4 matrices. An output name ending\n" +
		"in .pcd or .ply writes that format instead.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConvert(args[0], convertCfg.poses, convertCfg.out, cmd.OutOrStdout())
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertCfg.poses, "poses", "", "YAML file of camera poses")
	convertCmd.Flags().StringVarP(&convertCfg.out, "out", "o", "", "output file (default stdout)")
}

func runConvert(in, posesPath, out string, stdout io.Writer) error {
	f, err := loader.DetectFormat(in)
	if err != nil {
		return err
	}
	r, err := os.Open(in)
	if err != nil {
		return err
	}
	defer r.Close()
	c, err := loader.Decode(f, r)
	if err != nil {
		return fmt.Errorf("reading %s: %w", in, err)
	}

	var poses []cloud.Pose
	if posesPath != "" {
		if poses, err = readPoses(posesPath); err != nil {
			return err
		}
	}

	w := stdout
	if out != "" {
		fo, err := os.Create(out)
		if err != nil {
			return err
		}
		defer fo.Close()
		w = fo
	}

	switch strings.ToLower(filepath.Ext(out)) {
	case ".pcd":
		err = loader.EncodePCD(w, c)
	case ".ply":
		err = loader.EncodePLY(w, c)
	default:
		err = cloud.WriteDocument(w, toDocument(c, poses))
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", out, err)
	}
	slog.Debug("converted", "in", in, "out", out, "points", c.Len(), "poses", len(poses))
	return nil
}

func readPoses(path string) ([]cloud.Pose, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var poses []cloud.Pose
	if err := yaml.Unmarshal(b, &poses); err != nil {
		return nil, fmt.Errorf("parsing poses %s: %w", path, err)
	}
	return poses, nil
}

// toDocument builds a viewer document. Colors are written in the 0-1
// range so that no channel is mistaken for a 0-255 value.
func toDocument(c *loader.Cloud, poses []cloud.Pose) *cloud.Document {
	n := c.Len()
	doc := &cloud.Document{
		Points:      make([]cloud.Tuple, n),
		CameraPoses: poses,
	}
	for i := range doc.Points {
		doc.Points[i] = cloud.Tuple{
			float64(c.Positions[i*3]),
			float64(c.Positions[i*3+1]),
			float64(c.Positions[i*3+2]),
		}
	}
	if c.HasColors {
		doc.Colors = make([]*cloud.Tuple, n)
		for i := range doc.Colors {
			doc.Colors[i] = &cloud.Tuple{
				unitChannel(c.Colors[i*3]),
				unitChannel(c.Colors[i*3+1]),
				unitChannel(c.Colors[i*3+2]),
			}
		}
	}
	return doc
}

func unitChannel(v float32) float64 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 1
	}
	return float64(v)
}
