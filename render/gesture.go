package render

import (
	"github.com/chewxy/math32"
)

type gestureMode int

const (
	gestureNone gestureMode = iota
	gestureRotate
	gesturePinch
	gesturePan
)

// Controller receives camera input. OrbitControls implements it.
type Controller interface {
	PointerDown(button int, x, y float32)
	PointerMove(x, y float32)
	PointerUp()
	Pinch(ratio float32)
}

// Pointer is a single touch contact.
type Pointer struct {
	ID      int
	X, Y    float32
	Primary bool
}

// Gesture translates multi-touch input into Controller calls.
// One finger rotates, two fingers pinch-zoom and three fingers pan.
type Gesture struct {
	Controller Controller

	pointers map[int]Pointer
	pointer0 Pointer

	mode      gestureMode
	distance0 float32
}

func NewGesture(c Controller) *Gesture {
	return &Gesture{
		Controller: c,
		pointers:   make(map[int]Pointer),
	}
}

func (g *Gesture) PointerDown(p Pointer) {
	g.pointers[p.ID] = p

	switch len(g.pointers) {
	case 1:
		g.pointer0 = p
	case 2:
		g.distance0 = g.distance()
	}
}

func (g *Gesture) PointerMove(p Pointer) {
	if _, ok := g.pointers[p.ID]; !ok {
		return
	}
	g.pointers[p.ID] = p

	if g.mode == gestureNone {
		switch len(g.pointers) {
		case 1:
			g.Controller.PointerDown(MouseButtonLeft, g.pointer0.X, g.pointer0.Y)
			g.mode = gestureRotate
		case 2:
			g.mode = gesturePinch
		case 3:
			g.Controller.PointerDown(MouseButtonRight, g.pointer0.X, g.pointer0.Y)
			g.mode = gesturePan
		}
	}
	switch g.mode {
	case gestureRotate, gesturePan:
		if p.Primary {
			g.Controller.PointerMove(p.X, p.Y)
		}
	case gesturePinch:
		if len(g.pointers) != 2 {
			break
		}
		d := g.distance()
		if d > 0 && g.distance0 > 0 {
			g.Controller.Pinch(g.distance0 / d)
		}
		g.distance0 = d
	}
	if p.Primary {
		g.pointer0 = p
	}
}

func (g *Gesture) PointerUp(p Pointer) {
	delete(g.pointers, p.ID)
	if len(g.pointers) > 0 {
		return
	}
	switch g.mode {
	case gestureRotate, gesturePan:
		g.Controller.PointerUp()
	}
	g.mode = gestureNone
}

func (g *Gesture) distance() float32 {
	var pp []Pointer
	for _, p := range g.pointers {
		pp = append(pp, p)
	}
	if len(pp) < 2 {
		return 0
	}
	return math32.Hypot(pp[0].X-pp[1].X, pp[0].Y-pp[1].Y)
}
