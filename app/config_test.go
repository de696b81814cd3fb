package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`
elements:
  viewer: canvasHost
  bg_color: background
side_panel_width: 300
examples:
  - name: Bunny
    url: examples/bunny.ply
`))
	require.NoError(t, err)

	expected := DefaultConfig()
	expected.Elements.Viewer = "canvasHost"
	expected.Elements.BgColor = "background"
	expected.SidePanelWidth = 300
	expected.Examples = []Example{{Name: "Bunny", URL: "examples/bunny.ply"}}
	if diff := cmp.Diff(expected, c); diff != "" {
		t.Errorf("Unexpected config (-want +got):\n%s", diff)
	}
}

func TestParseConfigError(t *testing.T) {
	testCases := map[string]string{
		"Syntax":        "elements: [",
		"NegativePanel": "side_panel_width: -1",
		"Background":    "background: nope",
		"ExampleNoURL":  "examples: [{name: a}]",
	}
	for name, in := range testCases {
		in := in
		t.Run(name, func(t *testing.T) {
			_, err := ParseConfig([]byte(in))
			assert.Error(t, err)
		})
	}
}

func TestElementsIDs(t *testing.T) {
	ids := DefaultConfig().Elements.IDs()
	require.Len(t, ids, 7)
	assert.Equal(t, [2]string{"viewer", "viewer"}, ids[0])
	assert.Equal(t, [2]string{"bg_color", "bgColor"}, ids[6])
}
