package path

import (
	"testing"

	"github.com/swypelab/swyft/pkg/keyboard"
)

func TestBuildSkipsUnknownRunes(t *testing.T) {
	layout := keyboard.QWERTY()
	p := Build("h3llo", layout)
	if len(p) == 0 {
		t.Fatalf("expected a non-empty path")
	}
}

func TestBuildStrictRejectsUnknownRunes(t *testing.T) {
	layout := keyboard.QWERTY()
	_, err := BuildStrict("h3llo", layout)
	if err == nil {
		t.Fatalf("expected an error for a digit in a dictionary word")
	}
}

func TestBuildStrictSingleLetter(t *testing.T) {
	layout := keyboard.QWERTY()
	p, err := BuildStrict("a", layout)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(p) != 1 {
		t.Fatalf("expected a single point, got %d", len(p))
	}
}

func TestSimplifyCollapsesRepeats(t *testing.T) {
	layout := keyboard.QWERTY()
	p := Build("aaaaa", layout)
	if len(p) != 1 {
		t.Fatalf("expected repeated letters to collapse to one point, got %d", len(p))
	}
}

func TestSimplifyCollapsesCollinearRun(t *testing.T) {
	layout := keyboard.QWERTY()
	// q, w, e, r, t all sit on the same straight row.
	p := Build("qwert", layout)
	if len(p) != 2 {
		t.Fatalf("expected a straight run to collapse to its endpoints, got %d points: %v", len(p), p)
	}
}
