package render

import (
	"syscall/js"
)

// BindControls routes pointer and wheel events of elem to the orbit
// controls. Mouse drags go straight to the controls, touches go through a
// Gesture. Listeners are added to l.
func BindControls(l *Listeners, elem js.Value, o *OrbitControls) {
	g := NewGesture(o)
	wn := &WheelNormalizer{}

	l.Add(elem, "contextmenu", false, func(e js.Value) {
		e.Call("preventDefault")
	})
	l.Add(elem, "pointerdown", false, func(e js.Value) {
		e.Call("preventDefault")
		pe := ParsePointerEvent(e)
		elem.Call("setPointerCapture", pe.ID)
		if pe.Touch() {
			g.PointerDown(pe.Pointer())
			return
		}
		o.PointerDown(pe.Button, pe.X, pe.Y)
		SetCursor(elem, CursorGrabbing)
	})
	l.Add(elem, "pointermove", false, func(e js.Value) {
		pe := ParsePointerEvent(e)
		if pe.Touch() {
			e.Call("preventDefault")
			g.PointerMove(pe.Pointer())
			return
		}
		if o.Interacting() {
			o.PointerMove(pe.X, pe.Y)
		}
	})
	up := func(e js.Value) {
		pe := ParsePointerEvent(e)
		if pe.Touch() {
			g.PointerUp(pe.Pointer())
			return
		}
		o.PointerUp()
		SetCursor(elem, CursorGrab)
	}
	l.Add(elem, "pointerup", true, up)
	l.Add(elem, "pointercancel", true, up)
	l.Add(elem, "wheel", false, func(e js.Value) {
		e.Call("preventDefault")
		n, ok := wn.Normalize(float32(e.Get("deltaY").Float()))
		if !ok {
			if d := e.Get("deltaY").Float(); d < 0 {
				n = -1
			} else if d > 0 {
				n = 1
			}
		}
		o.Wheel(clamp(n, -1, 1))
	})

	elem.Get("style").Set("touchAction", "none")
	SetCursor(elem, CursorGrab)
}
