package blob

import (
	"errors"
	"syscall/js"
)

// Blob is a JavaScript Blob or File.
type Blob js.Value

var blobJS = js.Global().Get("Blob")

func JS(j interface{}) (Blob, error) {
	jv, ok := j.(js.Value)
	if !ok {
		return Blob{}, errors.New("requires JavaScript object")
	}
	if !jv.InstanceOf(blobJS) {
		return Blob{}, errors.New("requires Blob object")
	}
	return Blob(jv), nil
}

func (blob Blob) JS() js.Value {
	return js.Value(blob)
}

// Name returns the file name, or an empty string for a plain Blob.
func (blob Blob) Name() string {
	n := js.Value(blob).Get("name")
	if n.Type() != js.TypeString {
		return ""
	}
	return n.String()
}

// DataURL reads the whole blob as a data: URL.
func (blob Blob) DataURL() (string, error) {
	type result struct {
		url string
		err error
	}
	chRes := make(chan result, 1)

	reader := js.Global().Get("FileReader").New()
	var onLoad, onError js.Func
	onLoad = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		chRes <- result{url: reader.Get("result").String()}
		return nil
	})
	onError = js.FuncOf(func(this js.Value, args []js.Value) interface{} {
		msg := "failed to read file"
		if e := reader.Get("error"); e.Truthy() {
			msg += ": " + e.Get("message").String()
		}
		chRes <- result{err: errors.New(msg)}
		return nil
	})
	defer onLoad.Release()
	defer onError.Release()

	reader.Set("onload", onLoad)
	reader.Set("onerror", onError)
	reader.Call("readAsDataURL", js.Value(blob))

	r := <-chRes
	return r.url, r.err
}
