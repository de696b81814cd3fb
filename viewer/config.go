package viewer

import (
	"fmt"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Config holds the viewer options. Zero fields of a YAML document keep
// their defaults.
type Config struct {
	ImagePanelWidth int     `yaml:"image_panel_width"`
	DefaultHeight   int     `yaml:"default_height"`
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float32 `yaml:"auto_rotate_speed"`
	DampingFactor   float32 `yaml:"damping_factor"`
	PointSize       float32 `yaml:"point_size"`
	Background      string  `yaml:"background"`
	// FetchTimeout bounds the document fetch. Zero means no timeout.
	FetchTimeout time.Duration `yaml:"fetch_timeout"`

	// OnError is called once when the document fails to load.
	OnError func(error) `yaml:"-"`
}

func DefaultConfig() Config {
	return Config{
		ImagePanelWidth: 200,
		DefaultHeight:   500,
		AutoRotate:      true,
		AutoRotateSpeed: -1,
		DampingFactor:   0.08,
		PointSize:       0.01,
		Background:      "#ffffff",
	}
}

// ParseConfig overlays a YAML document on the defaults.
func ParseConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("parsing viewer config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks ranges and the background color.
func (c Config) Validate() error {
	if c.ImagePanelWidth < 0 {
		return fmt.Errorf("image_panel_width must not be negative: %d", c.ImagePanelWidth)
	}
	if c.DefaultHeight <= 0 {
		return fmt.Errorf("default_height must be positive: %d", c.DefaultHeight)
	}
	if c.DampingFactor < 0 || c.DampingFactor > 1 {
		return fmt.Errorf("damping_factor must be within [0, 1]: %g", c.DampingFactor)
	}
	if c.PointSize <= 0 {
		return fmt.Errorf("point_size must be positive: %g", c.PointSize)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

func (c Config) BackgroundColor() (colorful.Color, error) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid background %q: %w", c.Background, err)
	}
	return col, nil
}
