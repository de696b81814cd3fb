package render

import (
	"syscall/js"
)

type listener struct {
	target js.Value
	name   string
	fn     js.Func
}

type observer struct {
	obs js.Value
	fn  js.Func
}

// Listeners keeps DOM event listeners so that they can be removed together.
type Listeners struct {
	entries   []listener
	observers []observer
}

// Add registers cb for the named event. If passive is false, the listener
// may call preventDefault.
func (l *Listeners) Add(target js.Value, name string, passive bool, cb func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb(args[0])
		return nil
	})
	target.Call("addEventListener", name, fn, map[string]interface{}{
		"passive": passive,
	})
	l.entries = append(l.entries, listener{target: target, name: name, fn: fn})
}

// ObserveResize calls cb when the size of target changes. It returns false
// when the browser has no ResizeObserver.
func (l *Listeners) ObserveResize(target js.Value, cb func()) bool {
	ctor := js.Global().Get("ResizeObserver")
	if ctor.IsUndefined() {
		return false
	}
	fn := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		cb()
		return nil
	})
	obs := ctor.New(fn)
	obs.Call("observe", target)
	l.observers = append(l.observers, observer{obs: obs, fn: fn})
	return true
}

// RemoveAll unregisters and releases every listener and observer.
func (l *Listeners) RemoveAll() {
	for _, e := range l.entries {
		e.target.Call("removeEventListener", e.name, e.fn)
		e.fn.Release()
	}
	l.entries = nil
	for _, o := range l.observers {
		o.obs.Call("disconnect")
		o.fn.Release()
	}
	l.observers = nil
}

// PointerEvent is the subset of a DOM PointerEvent used for camera control.
type PointerEvent struct {
	ID      int
	Type    string
	Button  int
	X, Y    float32
	Primary bool
}

func ParsePointerEvent(e js.Value) PointerEvent {
	return PointerEvent{
		ID:      e.Get("pointerId").Int(),
		Type:    e.Get("pointerType").String(),
		Button:  e.Get("button").Int(),
		X:       float32(e.Get("offsetX").Float()),
		Y:       float32(e.Get("offsetY").Float()),
		Primary: e.Get("isPrimary").Bool(),
	}
}

func (e PointerEvent) Pointer() Pointer {
	return Pointer{ID: e.ID, X: e.X, Y: e.Y, Primary: e.Primary}
}

// Touch returns true for touch and pen input.
func (e PointerEvent) Touch() bool {
	return e.Type == "touch" || e.Type == "pen"
}
