//go:build js && wasm

// Command wasmswyft builds a WebAssembly module exposing the prediction
// engine to the web front-end via syscall/js.
package main

import (
	"syscall/js"

	"github.com/swypelab/swyft/pkg/ffi"
)

func engineNew(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return js.ValueOf(0)
	}
	h, err := ffi.New(args[0].String())
	if err != nil {
		return js.ValueOf(0)
	}
	return js.ValueOf(float64(h))
}

func enginePredict(this js.Value, args []js.Value) any {
	if len(args) < 3 {
		return js.ValueOf(js.Global().Get("Array").New())
	}
	handle := uintptr(args[0].Float())
	input := args[1].String()
	k := args[2].Int()

	out, err := ffi.Predict(handle, input, k)
	if err != nil {
		return js.ValueOf(js.Global().Get("Array").New())
	}

	parsed := js.Global().Get("JSON").Call("parse", string(out))
	return parsed
}

func engineFree(this js.Value, args []js.Value) any {
	if len(args) < 1 {
		return nil
	}
	ffi.Free(uintptr(args[0].Float()))
	return nil
}

func main() {
	swyft := js.Global().Get("Object").New()
	swyft.Set("new", js.FuncOf(engineNew))
	swyft.Set("predict", js.FuncOf(enginePredict))
	swyft.Set("free", js.FuncOf(engineFree))
	js.Global().Set("swyft", swyft)

	// Block forever; the module stays alive as long as the page does.
	<-make(chan struct{})
}
