package render

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordController struct {
	calls []string
	ratio float32
}

func (r *recordController) PointerDown(button int, x, y float32) {
	r.calls = append(r.calls, fmt.Sprintf("down %d %.0f %.0f", button, x, y))
}

func (r *recordController) PointerMove(x, y float32) {
	r.calls = append(r.calls, fmt.Sprintf("move %.0f %.0f", x, y))
}

func (r *recordController) PointerUp() {
	r.calls = append(r.calls, "up")
}

func (r *recordController) Pinch(ratio float32) {
	r.calls = append(r.calls, "pinch")
	r.ratio = ratio
}

func TestGesture(t *testing.T) {
	t.Run("OneFingerRotates", func(t *testing.T) {
		rc := &recordController{}
		g := NewGesture(rc)
		g.PointerDown(Pointer{ID: 1, X: 10, Y: 10, Primary: true})
		g.PointerMove(Pointer{ID: 1, X: 20, Y: 15, Primary: true})
		g.PointerUp(Pointer{ID: 1, X: 20, Y: 15, Primary: true})

		assert.Equal(t, []string{"down 0 10 10", "move 20 15", "up"}, rc.calls)
		assert.Empty(t, g.pointers)
	})
	t.Run("TwoFingersPinch", func(t *testing.T) {
		rc := &recordController{}
		g := NewGesture(rc)
		g.PointerDown(Pointer{ID: 1, X: 0, Y: 0, Primary: true})
		g.PointerDown(Pointer{ID: 2, X: 100, Y: 0})
		g.PointerMove(Pointer{ID: 2, X: 200, Y: 0})
		g.PointerUp(Pointer{ID: 2})
		g.PointerUp(Pointer{ID: 1, Primary: true})

		assert.Equal(t, []string{"pinch"}, rc.calls)
		assert.InDelta(t, 0.5, rc.ratio, 1e-6)
	})
	t.Run("ThreeFingersPan", func(t *testing.T) {
		rc := &recordController{}
		g := NewGesture(rc)
		g.PointerDown(Pointer{ID: 1, X: 5, Y: 5, Primary: true})
		g.PointerDown(Pointer{ID: 2, X: 50, Y: 5})
		g.PointerDown(Pointer{ID: 3, X: 25, Y: 50})
		g.PointerMove(Pointer{ID: 1, X: 15, Y: 5, Primary: true})
		g.PointerUp(Pointer{ID: 1})
		g.PointerUp(Pointer{ID: 2})
		g.PointerUp(Pointer{ID: 3})

		assert.Equal(t, []string{"down 2 5 5", "move 15 5", "up"}, rc.calls)
	})
	t.Run("UnknownPointerIgnored", func(t *testing.T) {
		rc := &recordController{}
		g := NewGesture(rc)
		g.PointerMove(Pointer{ID: 9, X: 1, Y: 1, Primary: true})
		assert.Empty(t, rc.calls)
	})
}
