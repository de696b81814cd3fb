package render

import (
	"strconv"
	"syscall/js"

	"github.com/seqsense/pcgol/mat"
	webgl "github.com/seqsense/webgl-go"
)

type pointsLocations struct {
	projection, modelView, size, scale, opacity, round webgl.Location
}

type linesLocations struct {
	projection, modelView, color webgl.Location
}

type gpuPoints struct {
	version   uint64
	positions webgl.Buffer
	colors    webgl.Buffer
}

type gpuLines struct {
	positions webgl.Buffer
	uploaded  []float32
}

// Renderer draws a Scene on a canvas with WebGL 2.
type Renderer struct {
	gl     *webgl.WebGL
	canvas js.Value

	pointsProgram webgl.Program
	pointsLoc     pointsLocations
	linesProgram  webgl.Program
	linesLoc      linesLocations

	points map[*Points]*gpuPoints
	lines  map[*LineSegments]*gpuLines

	width, height int
}

func NewRenderer(canvas js.Value) (*Renderer, error) {
	gl, err := webgl.New(canvas)
	if err != nil {
		return nil, err
	}
	logDebugInfo(gl)

	pp, err := newProgram(gl, vsPointsSource, fsPointsSource)
	if err != nil {
		return nil, err
	}
	lp, err := newProgram(gl, vsLinesSource, fsLinesSource)
	if err != nil {
		return nil, err
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LEQUAL)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &Renderer{
		gl:            gl,
		canvas:        canvas,
		pointsProgram: pp,
		pointsLoc: pointsLocations{
			projection: gl.GetUniformLocation(pp, "uProjectionMatrix"),
			modelView:  gl.GetUniformLocation(pp, "uModelViewMatrix"),
			size:       gl.GetUniformLocation(pp, "uSize"),
			scale:      gl.GetUniformLocation(pp, "uScale"),
			opacity:    gl.GetUniformLocation(pp, "uOpacity"),
			round:      gl.GetUniformLocation(pp, "uRound"),
		},
		linesProgram: lp,
		linesLoc: linesLocations{
			projection: gl.GetUniformLocation(lp, "uProjectionMatrix"),
			modelView:  gl.GetUniformLocation(lp, "uModelViewMatrix"),
			color:      gl.GetUniformLocation(lp, "uColor"),
		},
		points: make(map[*Points]*gpuPoints),
		lines:  make(map[*LineSegments]*gpuLines),
	}, nil
}

// SetSize resizes the drawing buffer to the given CSS pixel size.
func (r *Renderer) SetSize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	r.width, r.height = width, height

	ratio := js.Global().Get("devicePixelRatio").Float()
	if ratio <= 0 {
		ratio = 1
	}
	r.canvas.Set("width", int(float64(width)*ratio))
	r.canvas.Set("height", int(float64(height)*ratio))
	style := r.canvas.Get("style")
	style.Set("width", strconv.Itoa(width)+"px")
	style.Set("height", strconv.Itoa(height)+"px")
	r.gl.Viewport(0, 0, int(float64(width)*ratio), int(float64(height)*ratio))
}

// Render draws the scene from the camera.
func (r *Renderer) Render(s *Scene, c *Camera) {
	gl := r.gl
	if gl.IsContextLost() {
		return
	}
	r.release(s)

	bg := s.Background
	gl.ClearColor(float32(bg.R), float32(bg.G), float32(bg.B), 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projection := c.ProjectionMatrix()
	modelView := c.ViewMatrix()

	for _, o := range s.Objects() {
		switch o := o.(type) {
		case *LineSegments:
			r.drawLines(o, projection, modelView)
		}
	}
	for _, o := range s.Objects() {
		switch o := o.(type) {
		case *Points:
			r.drawPoints(o, projection, modelView)
		}
	}
}

func (r *Renderer) drawPoints(p *Points, projection, modelView mat.Mat4) {
	if p.Len() == 0 {
		return
	}
	gl := r.gl
	buf, ok := r.points[p]
	if !ok {
		buf = &gpuPoints{
			positions: gl.CreateBuffer(),
			colors:    gl.CreateBuffer(),
		}
		r.points[p] = buf
	}
	if !ok || buf.version != p.version {
		gl.BindBuffer(gl.ARRAY_BUFFER, buf.positions)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(p.Positions()), gl.STATIC_DRAW)
		gl.BindBuffer(gl.ARRAY_BUFFER, buf.colors)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(p.Colors()), gl.STATIC_DRAW)
		buf.version = p.version
	}

	m := p.Material
	scale := m.Scale
	if scale == 0 {
		scale = float32(r.height) / 2
	}
	opacity := m.Opacity
	if !m.Transparent {
		opacity = 1
	}
	round := 0
	if m.Round {
		round = 1
	}

	gl.UseProgram(r.pointsProgram)
	gl.UniformMatrix4fv(r.pointsLoc.projection, false, projection)
	gl.UniformMatrix4fv(r.pointsLoc.modelView, false, modelView)
	gl.Uniform1f(r.pointsLoc.size, m.Size)
	gl.Uniform1f(r.pointsLoc.scale, scale)
	gl.Uniform1f(r.pointsLoc.opacity, opacity)
	gl.Uniform1i(r.pointsLoc.round, round)

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.positions)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf.colors)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(1)

	if m.Transparent {
		gl.JS().Call("depthMask", false)
	}
	gl.DrawArrays(gl.POINTS, 0, p.Len())
	if m.Transparent {
		gl.JS().Call("depthMask", true)
	}
	gl.JS().Call("disableVertexAttribArray", 1)
}

func (r *Renderer) drawLines(l *LineSegments, projection, modelView mat.Mat4) {
	if l.Len() == 0 {
		return
	}
	gl := r.gl
	buf, ok := r.lines[l]
	if !ok {
		buf = &gpuLines{positions: gl.CreateBuffer()}
		r.lines[l] = buf
	}
	if !sameSlice(buf.uploaded, l.Positions) {
		gl.BindBuffer(gl.ARRAY_BUFFER, buf.positions)
		gl.BufferData(gl.ARRAY_BUFFER, webgl.Float32ArrayBuffer(l.Positions), gl.STATIC_DRAW)
		buf.uploaded = l.Positions
	}

	gl.UseProgram(r.linesProgram)
	gl.UniformMatrix4fv(r.linesLoc.projection, false, projection)
	gl.UniformMatrix4fv(r.linesLoc.modelView, false, modelView)
	gl.Uniform3fv(r.linesLoc.color, mat.Vec3{float32(l.Color.R), float32(l.Color.G), float32(l.Color.B)})

	gl.BindBuffer(gl.ARRAY_BUFFER, buf.positions)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 0, 0)
	gl.EnableVertexAttribArray(0)
	gl.DrawArrays(gl.LINES, 0, l.Len())
}

// release frees GPU buffers of objects no longer in the scene.
func (r *Renderer) release(s *Scene) {
	alive := make(map[Object]bool, len(s.Objects()))
	for _, o := range s.Objects() {
		alive[o] = true
	}
	for p, buf := range r.points {
		if !alive[p] {
			r.deleteBuffer(buf.positions)
			r.deleteBuffer(buf.colors)
			delete(r.points, p)
		}
	}
	for l, buf := range r.lines {
		if !alive[l] {
			r.deleteBuffer(buf.positions)
			delete(r.lines, l)
		}
	}
}

func (r *Renderer) deleteBuffer(b webgl.Buffer) {
	r.gl.JS().Call("deleteBuffer", js.Value(b))
}

// Dispose releases all GPU resources. The renderer must not be used
// afterwards.
func (r *Renderer) Dispose() {
	r.release(&Scene{})
	r.gl.JS().Call("deleteProgram", js.Value(r.pointsProgram))
	r.gl.JS().Call("deleteProgram", js.Value(r.linesProgram))
	if ext, ok := r.gl.GetExtension("WEBGL_lose_context"); ok {
		ext.Call("loseContext")
	}
}

func sameSlice(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
