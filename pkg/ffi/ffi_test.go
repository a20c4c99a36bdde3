package ffi

import "testing"

func TestNewPredictFree(t *testing.T) {
	h, err := New("en")
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer Free(h)

	out, err := Predict(h, "teh", 3)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if len(out) == 0 {
		t.Fatalf("expected non-empty JSON output")
	}
}

func TestPredictInvalidHandle(t *testing.T) {
	if _, err := Predict(9999, "teh", 3); err != ErrInvalidHandle {
		t.Fatalf("expected ErrInvalidHandle, got %v", err)
	}
}

func TestFreeUnknownHandleIsNoop(t *testing.T) {
	Free(123456)
}
