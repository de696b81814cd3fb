// Command pcviewer serves the viewer pages and converts point cloud files
// into viewer documents.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCfg struct {
	verbose bool
}

var rootCmd = &cobra.Command{
	Use:           "pcviewer",
	Short:         "Point cloud viewer tools",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if rootCfg.verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootCfg.verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(serveCmd, convertCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("pcviewer failed", "error", err)
		os.Exit(1)
	}
}
