package loader

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// ErrUnsupportedFormat is returned for names that are neither PCD nor PLY.
var ErrUnsupportedFormat = errors.New("unsupported format")

type Format int

const (
	FormatUnknown Format = iota
	FormatPCD
	FormatPLY
)

func (f Format) String() string {
	switch f {
	case FormatPCD:
		return "pcd"
	case FormatPLY:
		return "ply"
	}
	return "unknown"
}

// DefaultPointSize returns the initial point size for clouds of the format.
func (f Format) DefaultPointSize() float32 {
	if f == FormatPCD {
		return 0.005
	}
	return 0.01
}

var mimeFormats = map[string]Format{
	"application/x-pcd": FormatPCD,
	"image/x-pcd":       FormatPCD,
	"application/ply":   FormatPLY,
	"application/x-ply": FormatPLY,
	"model/ply":         FormatPLY,
	"text/plain+ply":    FormatPLY,
}

// DetectFormat returns the format named by the extension of a path or URL.
// Extensions are matched case-insensitively, query and fragment are
// ignored. For data: URLs the MIME type is used.
func DetectFormat(name string) (Format, error) {
	if strings.HasPrefix(name, "data:") {
		mime := strings.TrimPrefix(name, "data:")
		if i := strings.IndexAny(mime, ";,"); i >= 0 {
			mime = mime[:i]
		}
		if f, ok := mimeFormats[strings.ToLower(mime)]; ok {
			return f, nil
		}
		return FormatUnknown, fmt.Errorf("%w: data URL of type %q", ErrUnsupportedFormat, mime)
	}

	p := name
	if u, err := url.Parse(name); err == nil && u.Path != "" {
		p = u.Path
	}
	switch ext := strings.ToLower(path.Ext(p)); ext {
	case ".pcd":
		return FormatPCD, nil
	case ".ply":
		return FormatPLY, nil
	default:
		return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}
