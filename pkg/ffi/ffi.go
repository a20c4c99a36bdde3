// Package ffi is the host-independent core behind both foreign-function
// surfaces (the cgo c-shared library and the WebAssembly build). It owns a
// handle table mapping opaque integer handles to live predictors, so
// neither surface ever passes a Go pointer across the boundary.
package ffi

import (
	"encoding/json"
	"errors"
	"sync"

	"github.com/swypelab/swyft/pkg/predictor"
)

// ErrInvalidHandle is returned when a caller passes a handle that does not
// (or no longer) refers to a live predictor.
var ErrInvalidHandle = errors.New("ffi: invalid handle")

var (
	mu       sync.Mutex
	handles  = map[uintptr]*predictor.Predictor{}
	nextFree uintptr = 1
)

// New constructs a predictor for the given language and returns an opaque
// handle for it. The caller must eventually call Free.
func New(languageCode string) (uintptr, error) {
	p, err := predictor.New(languageCode, nil)
	if err != nil {
		return 0, err
	}

	mu.Lock()
	defer mu.Unlock()
	h := nextFree
	nextFree++
	handles[h] = p
	return h, nil
}

// predictionWire is the JSON/JS-visible shape of a single prediction.
type predictionWire struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
	Freq  float64 `json:"freq"`
}

// Predict runs a prediction against the predictor behind handle and
// returns the result as a JSON array of {word, score, freq} objects.
func Predict(handle uintptr, input string, k int) ([]byte, error) {
	mu.Lock()
	p, ok := handles[handle]
	mu.Unlock()
	if !ok {
		return nil, ErrInvalidHandle
	}

	preds := p.Predict(input, k)
	wire := make([]predictionWire, len(preds))
	for i, pr := range preds {
		wire[i] = predictionWire{Word: pr.Word, Score: pr.Score, Freq: pr.Freq}
	}
	return json.Marshal(wire)
}

// Free releases the predictor behind handle. Freeing an unknown or
// already-freed handle is a no-op.
func Free(handle uintptr) {
	mu.Lock()
	defer mu.Unlock()
	delete(handles, handle)
}
