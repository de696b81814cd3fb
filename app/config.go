package app

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Elements holds the DOM IDs of the page controls.
type Elements struct {
	Viewer          string `yaml:"viewer"`
	LoadExample     string `yaml:"load_example"`
	ExampleSelect   string `yaml:"example_select"`
	FileInput       string `yaml:"file_input"`
	PointSizeSlider string `yaml:"point_size_slider"`
	OpacitySlider   string `yaml:"opacity_slider"`
	BgColor         string `yaml:"bg_color"`
}

// Example is an entry of the example selector.
type Example struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

type Config struct {
	Elements       Elements `yaml:"elements"`
	SidePanelWidth int      `yaml:"side_panel_width"`
	Background     string   `yaml:"background"`
	// Examples replace the options of the example selector when not empty.
	Examples []Example `yaml:"examples"`
}

func DefaultConfig() Config {
	return Config{
		Elements: Elements{
			Viewer:          "viewer",
			LoadExample:     "loadExample",
			ExampleSelect:   "exampleSelect",
			FileInput:       "fileInput",
			PointSizeSlider: "pointSizeSlider",
			OpacitySlider:   "opacitySlider",
			BgColor:         "bgColor",
		},
		SidePanelWidth: 260,
		Background:     "#000000",
	}
}

// ParseConfig overlays a YAML document on the defaults.
func ParseConfig(b []byte) (Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("parsing app config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if c.SidePanelWidth < 0 {
		return fmt.Errorf("side_panel_width must not be negative: %d", c.SidePanelWidth)
	}
	if _, err := colorful.Hex(c.Background); err != nil {
		return fmt.Errorf("invalid background %q: %w", c.Background, err)
	}
	for i, e := range c.Examples {
		if e.URL == "" {
			return fmt.Errorf("example %d has no url", i)
		}
	}
	return nil
}

// IDs lists the element IDs in a fixed order with their roles.
func (e Elements) IDs() [][2]string {
	return [][2]string{
		{"viewer", e.Viewer},
		{"load_example", e.LoadExample},
		{"example_select", e.ExampleSelect},
		{"file_input", e.FileInput},
		{"point_size_slider", e.PointSizeSlider},
		{"opacity_slider", e.OpacitySlider},
		{"bg_color", e.BgColor},
	}
}
