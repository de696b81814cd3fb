package render

import (
	"context"
	"sync"
	"syscall/js"
)

// AnimationFrames delivers one tick per browser animation frame until ctx
// is canceled. Ticks are dropped while the receiver is busy.
func AnimationFrames(ctx context.Context) <-chan struct{} {
	ch := make(chan struct{}, 1)
	var (
		mu sync.Mutex
		id js.Value
		cb js.Func
	)
	cb = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		select {
		case ch <- struct{}{}:
		default:
		}
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() == nil {
			id = js.Global().Call("requestAnimationFrame", cb)
		}
		return nil
	})

	mu.Lock()
	id = js.Global().Call("requestAnimationFrame", cb)
	mu.Unlock()

	go func() {
		<-ctx.Done()
		mu.Lock()
		js.Global().Call("cancelAnimationFrame", id)
		mu.Unlock()
		cb.Release()
	}()
	return ch
}
