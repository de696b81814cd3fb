package fetch

import (
	"context"
	"errors"
	"fmt"
	"syscall/js"
)

var errAborted = errors.New("fetch aborted")

// get resolves the fetch promise chain into the result channel. The request
// is aborted when ctx is canceled.
func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	abort := js.Global().Get("AbortController").New()
	credentials := "same-origin"
	if c.IncludeCredentials {
		credentials = "include"
	}

	type result struct {
		b   []byte
		err error
	}
	chRes := make(chan result, 1)

	var funcs []js.Func
	fn := func(f func(args []js.Value) interface{}) js.Func {
		jf := js.FuncOf(func(this js.Value, args []js.Value) interface{} {
			return f(args)
		})
		funcs = append(funcs, jf)
		return jf
	}
	defer func() {
		for _, f := range funcs {
			f.Release()
		}
	}()

	var failed bool
	js.Global().Call("fetch", url, map[string]interface{}{
		"credentials": credentials,
		"signal":      abort.Get("signal"),
	}).Call("then",
		fn(func(args []js.Value) interface{} {
			res := args[0]
			if !res.Get("ok").Bool() {
				failed = true
				chRes <- result{err: &StatusError{
					URL:        url,
					Status:     res.Get("status").Int(),
					StatusText: res.Get("statusText").String(),
				}}
				return nil
			}
			return res.Call("arrayBuffer")
		}),
	).Call("then",
		fn(func(args []js.Value) interface{} {
			if failed {
				return nil
			}
			array := js.Global().Get("Uint8Array").New(args[0])
			b := make([]byte, array.Get("byteLength").Int())
			js.CopyBytesToGo(b, array)
			chRes <- result{b: b}
			return nil
		}),
	).Call("catch",
		fn(func(args []js.Value) interface{} {
			if failed {
				return nil
			}
			failed = true
			msg := "unknown error"
			if len(args) > 0 && args[0].Type() == js.TypeObject {
				if args[0].Get("name").String() == "AbortError" {
					chRes <- result{err: errAborted}
					return nil
				}
				msg = args[0].Get("message").String()
			}
			chRes <- result{err: fmt.Errorf("failed to fetch %s: %s", url, msg)}
			return nil
		}),
	)

	select {
	case r := <-chRes:
		return r.b, r.err
	case <-ctx.Done():
		abort.Call("abort")
		// Wait for the promise chain to settle before releasing callbacks.
		<-chRes
		return nil, ctx.Err()
	}
}
