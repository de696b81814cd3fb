package loader

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	testCases := map[string]struct {
		name     string
		expected Format
		err      error
	}{
		"PCD":          {name: "cloud.pcd", expected: FormatPCD},
		"PLYUpper":     {name: "scan.PLY", expected: FormatPLY},
		"PCDMixed":     {name: "dir/Scan.PcD", expected: FormatPCD},
		"URLQuery":     {name: "https://example.com/a/b.ply?v=1#top", expected: FormatPLY},
		"DataURLPCD":   {name: "data:application/x-pcd;base64,AAAA", expected: FormatPCD},
		"DataURLOctet": {name: "data:application/octet-stream;base64,AAAA", err: ErrUnsupportedFormat},
		"DataURLPLY":   {name: "data:model/ply;base64,AAAA", expected: FormatPLY},
		"Unknown":      {name: "model.obj", err: ErrUnsupportedFormat},
		"NoExt":        {name: "README", err: ErrUnsupportedFormat},
		"Empty":        {name: "", err: ErrUnsupportedFormat},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			f, err := DetectFormat(tt.name)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Fatalf("Expected error %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if f != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, f)
			}
		})
	}
}

func TestDefaultPointSize(t *testing.T) {
	if s := FormatPCD.DefaultPointSize(); s != 0.005 {
		t.Errorf("Expected 0.005 for PCD, got %f", s)
	}
	if s := FormatPLY.DefaultPointSize(); s != 0.01 {
		t.Errorf("Expected 0.01 for PLY, got %f", s)
	}
}
