package viewer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	testCases := map[string]struct {
		yaml     string
		expected func(c *Config)
	}{
		"Empty": {
			yaml:     "",
			expected: func(c *Config) {},
		},
		"Overrides": {
			yaml: `
image_panel_width: 320
default_height: 640
auto_rotate: false
point_size: 0.02
background: "#202020"
fetch_timeout: 5s
`,
			expected: func(c *Config) {
				c.ImagePanelWidth = 320
				c.DefaultHeight = 640
				c.AutoRotate = false
				c.PointSize = 0.02
				c.Background = "#202020"
				c.FetchTimeout = 5 * time.Second
			},
		},
	}

	for name, tt := range testCases {
		tt := tt
		t.Run(name, func(t *testing.T) {
			c, err := ParseConfig([]byte(tt.yaml))
			require.NoError(t, err)
			expected := DefaultConfig()
			tt.expected(&expected)
			assert.Equal(t, expected.ImagePanelWidth, c.ImagePanelWidth)
			assert.Equal(t, expected.DefaultHeight, c.DefaultHeight)
			assert.Equal(t, expected.AutoRotate, c.AutoRotate)
			assert.Equal(t, expected.AutoRotateSpeed, c.AutoRotateSpeed)
			assert.Equal(t, expected.DampingFactor, c.DampingFactor)
			assert.Equal(t, expected.PointSize, c.PointSize)
			assert.Equal(t, expected.Background, c.Background)
			assert.Equal(t, expected.FetchTimeout, c.FetchTimeout)
		})
	}
}

func TestParseConfigError(t *testing.T) {
	for name, y := range map[string]string{
		"Syntax":        "image_panel_width: [",
		"NegativePanel": "image_panel_width: -1",
		"ZeroHeight":    "default_height: 0",
		"Damping":       "damping_factor: 2",
		"PointSize":     "point_size: 0",
		"Background":    "background: purple",
	} {
		y := y
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(y))
			assert.Error(t, err)
		})
	}
}

func TestBackgroundColor(t *testing.T) {
	c := DefaultConfig()
	col, err := c.BackgroundColor()
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", col.Hex())
}
