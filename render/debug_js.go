package render

import (
	"log/slog"

	webgl "github.com/seqsense/webgl-go"
)

func logDebugInfo(gl *webgl.WebGL) {
	defer func() {
		if r := recover(); r != nil {
			slog.Debug("failed to get GPU info")
		}
	}()

	ri, ok := gl.GetExtension("WEBGL_debug_renderer_info")
	if !ok {
		slog.Debug("GPU info hidden by the browser privacy setting")
		return
	}
	slog.Debug("GPU",
		"vendor", gl.GetParameter(ri.Get("UNMASKED_VENDOR_WEBGL").Int()).String(),
		"renderer", gl.GetParameter(ri.Get("UNMASKED_RENDERER_WEBGL").Int()).String(),
	)
}
