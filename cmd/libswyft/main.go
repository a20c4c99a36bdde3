// Command libswyft builds a C-callable shared library exposing the
// prediction engine to the macOS overlay and any other native host.
//
// Build with: go build -buildmode=c-shared -o libswyft.so ./cmd/libswyft
package main

/*
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/swypelab/swyft/pkg/ffi"
)

// engine_new constructs a predictor for languageCode and returns an opaque
// handle, or 0 on failure.
//
//export engine_new
func engine_new(languageCode *C.char) C.uintptr_t {
	lang := C.GoString(languageCode)
	h, err := ffi.New(lang)
	if err != nil {
		return 0
	}
	return C.uintptr_t(h)
}

// engine_predict runs a prediction and returns a newly allocated,
// NUL-terminated JSON string the caller must release with engine_free_string.
//
//export engine_predict
func engine_predict(handle C.uintptr_t, input *C.char, k C.int) *C.char {
	out, err := ffi.Predict(uintptr(handle), C.GoString(input), int(k))
	if err != nil {
		return C.CString("[]")
	}
	return C.CString(string(out))
}

// engine_free_string releases a string returned by engine_predict.
//
//export engine_free_string
func engine_free_string(s *C.char) {
	C.free(unsafe.Pointer(s))
}

// engine_free releases the predictor behind handle.
//
//export engine_free
func engine_free(handle C.uintptr_t) {
	ffi.Free(uintptr(handle))
}

func main() {}
