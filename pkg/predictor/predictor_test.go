package predictor

import "testing"

func TestPredictEmptyInput(t *testing.T) {
	p, err := New("en", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := p.Predict("", 5); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}

func TestPredictSingleLetter(t *testing.T) {
	p, err := New("en", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := p.Predict("a", 5)
	if len(got) != 1 || got[0].Word != "a" || got[0].Score != 0 {
		t.Fatalf("expected verbatim single-letter prediction, got %v", got)
	}
}

func TestPredictUnknownLanguage(t *testing.T) {
	if _, err := New("xx", nil); err != ErrUnknownLanguage {
		t.Fatalf("expected ErrUnknownLanguage, got %v", err)
	}
}

func TestPredictReturnsBoundedResults(t *testing.T) {
	p, err := New("en", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got := p.Predict("teh", 3)
	if len(got) > 3 {
		t.Fatalf("expected at most 3 results, got %d", len(got))
	}
}

func TestPredictExactWordRanksFirst(t *testing.T) {
	p, err := New("en", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for _, e := range p.asset.Entries {
		if len([]rune(e.Word)) < 2 {
			continue
		}
		got := p.Predict(e.Word, 5)
		if len(got) == 0 || got[0].Word != e.Word {
			t.Fatalf("expected %q to rank first for its own trace, got %v", e.Word, got)
		}
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	p, err := New("en", nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a := p.Predict("wrold", 5)
	b := p.Predict("wrold", 5)
	if len(a) != len(b) {
		t.Fatalf("nondeterministic result length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("nondeterministic result at %d: %v vs %v", i, a[i], b[i])
		}
	}
}
