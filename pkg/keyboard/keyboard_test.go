package keyboard

import "testing"

func TestQWERTYRowOffsets(t *testing.T) {
	l := QWERTY()

	q, ok := l.PointFor('q')
	if !ok || q != (Point{X: 0, Y: 0}) {
		t.Fatalf("q = %v, ok=%v", q, ok)
	}

	a, ok := l.PointFor('a')
	if !ok || a != (Point{X: 0.5, Y: 1}) {
		t.Fatalf("a = %v, ok=%v", a, ok)
	}

	z, ok := l.PointFor('z')
	if !ok || z != (Point{X: 1.0, Y: 2}) {
		t.Fatalf("z = %v, ok=%v", z, ok)
	}
}

func TestPointForCaseInsensitive(t *testing.T) {
	l := QWERTY()
	lower, _ := l.PointFor('k')
	upper, ok := l.PointFor('K')
	if !ok || lower != upper {
		t.Fatalf("case mismatch: %v vs %v", lower, upper)
	}
}

func TestPointForUnknown(t *testing.T) {
	l := QWERTY()
	if _, ok := l.PointFor('5'); ok {
		t.Fatalf("expected no point for digit")
	}
}
