package cloud

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/seqsense/pcgol/mat"
)

var errNoPoints = errors.New("document has no points array")

// Tuple is a 3-element coordinate or color entry. Elements keep the JSON
// float64 precision until buffers are built.
// Missing or non-numeric elements decode to zero.
type Tuple [3]float64

func (t *Tuple) UnmarshalJSON(b []byte) error {
	*t = Tuple{}
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil
	}
	for i := 0; i < len(t) && i < len(raw); i++ {
		var f float64
		if err := json.Unmarshal(raw[i], &f); err != nil {
			continue
		}
		t[i] = f
	}
	return nil
}

// Pose is a row-major 4x4 camera-to-world transform.
type Pose [4][4]float32

// Mat4 returns the pose as a column-major matrix.
func (p Pose) Mat4() mat.Mat4 {
	var m mat.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[4*col+row] = p[row][col]
		}
	}
	return m
}

// Document is a point cloud as served to the viewer.
type Document struct {
	Points      []Tuple  `json:"points"`
	Colors      []*Tuple `json:"colors,omitempty"`
	CameraPoses []Pose   `json:"camera_poses,omitempty"`
}

// ParseDocument decodes a JSON point cloud document.
func ParseDocument(r io.Reader) (*Document, error) {
	var raw struct {
		Points      json.RawMessage `json:"points"`
		Colors      json.RawMessage `json:"colors"`
		CameraPoses json.RawMessage `json:"camera_poses"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}

	doc := &Document{}
	if isAbsent(raw.Points) {
		return doc, nil
	}
	if err := json.Unmarshal(raw.Points, &doc.Points); err != nil {
		return nil, fmt.Errorf("%w: %v", errNoPoints, err)
	}
	if !isAbsent(raw.Colors) {
		if err := json.Unmarshal(raw.Colors, &doc.Colors); err != nil {
			return nil, fmt.Errorf("decoding colors: %w", err)
		}
	}
	if !isAbsent(raw.CameraPoses) {
		if err := json.Unmarshal(raw.CameraPoses, &doc.CameraPoses); err != nil {
			return nil, fmt.Errorf("decoding camera_poses: %w", err)
		}
	}
	return doc, nil
}

// WriteDocument encodes the document as JSON.
func WriteDocument(w io.Writer, doc *Document) error {
	return json.NewEncoder(w).Encode(doc)
}

func isAbsent(b json.RawMessage) bool {
	return len(b) == 0 || string(b) == "null"
}
