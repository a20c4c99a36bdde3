package dtw

import (
	"math"
	"testing"

	"github.com/swypelab/swyft/pkg/keyboard"
	"github.com/swypelab/swyft/pkg/path"
)

func build(s string) path.Path {
	return path.Build(s, keyboard.QWERTY())
}

func TestDistanceIdenticalPathIsZero(t *testing.T) {
	p := build("hello")
	if d := Distance(p, p, 4, math.Inf(1)); d != 0 {
		t.Fatalf("expected 0, got %v", d)
	}
}

func TestDistanceEmptyBothZero(t *testing.T) {
	if d := Distance(nil, nil, 4, math.Inf(1)); d != 0 {
		t.Fatalf("expected 0 for two empty paths, got %v", d)
	}
}

func TestDistanceOneEmptyIsInf(t *testing.T) {
	p := build("hello")
	if d := Distance(p, nil, 4, math.Inf(1)); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf, got %v", d)
	}
}

func TestDistanceSymmetric(t *testing.T) {
	a := build("hello")
	b := build("world")
	d1 := Distance(a, b, 6, math.Inf(1))
	d2 := Distance(b, a, 6, math.Inf(1))
	if math.Abs(d1-d2) > 1e-9 {
		t.Fatalf("expected symmetric distance, got %v vs %v", d1, d2)
	}
}

func TestDistanceEarlyTerminationMatchesUnbounded(t *testing.T) {
	a := build("hello")
	b := build("jello")
	unbounded := Distance(a, b, 6, math.Inf(1))
	bounded := Distance(a, b, 6, unbounded+1)
	if math.IsInf(bounded, 1) {
		t.Fatalf("expected a finite distance under a loose cutoff")
	}
	if math.Abs(bounded-unbounded) > 1e-9 {
		t.Fatalf("bounded and unbounded distances diverged: %v vs %v", bounded, unbounded)
	}

	pruned := Distance(a, b, 6, unbounded-1e-6)
	if !math.IsInf(pruned, 1) {
		t.Fatalf("expected pruning once the cutoff is below the true distance")
	}
}

func TestDistanceSinglePointIsClosestPoint(t *testing.T) {
	a := path.Path{{X: 0, Y: 0}, {X: 1, Y: 0}}
	b := path.Path{{X: 0.5, Y: 0}}

	got := Distance(a, b, 4, math.Inf(1))
	want := 0.25 // min(sqDist((0,0),(0.5,0)), sqDist((1,0),(0.5,0))) = min(0.25, 0.25)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}

	// Symmetric regardless of argument order.
	if got2 := Distance(b, a, 4, math.Inf(1)); math.Abs(got2-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got2)
	}
}

func TestDistanceBothSinglePoint(t *testing.T) {
	a := path.Path{{X: 0, Y: 0}}
	b := path.Path{{X: 3, Y: 4}}
	if got := Distance(a, b, 4, math.Inf(1)); got != 25 {
		t.Fatalf("expected 25, got %v", got)
	}
}

func TestDistanceRejectsLengthDifferenceBeyondBand(t *testing.T) {
	a := build("abcdefghij")
	b := build("ab")
	if d := Distance(a, b, 2, math.Inf(1)); !math.IsInf(d, 1) {
		t.Fatalf("expected +Inf when |len(a)-len(b)| exceeds the band, got %v", d)
	}
}
