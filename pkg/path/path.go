// Package path builds and simplifies the point sequence a swipe gesture (or
// a dictionary word) traces across a keyboard layout.
package path

import (
	"fmt"
	"math"

	"github.com/swypelab/swyft/pkg/keyboard"
)

// Point is a coordinate on a path, identical in shape to keyboard.Point.
type Point = keyboard.Point

// Path is an ordered sequence of keyboard coordinates.
type Path []Point

// simplifyTolerance is the distance below which two consecutive points are
// treated as the same point, and the one below which three collinear points
// collapse to their endpoints.
const simplifyTolerance = 0.01

// ErrUnrecognizedLetter is returned by BuildStrict when a character has no
// position in the layout.
type ErrUnrecognizedLetter struct {
	Char rune
}

func (e ErrUnrecognizedLetter) Error() string {
	return fmt.Sprintf("path: unrecognized letter %q", e.Char)
}

// Build expands chars into a raw coordinate path and simplifies it.
// Characters missing from layout are skipped silently — the lenient rule
// used for runtime swipe input, which may contain punctuation or digits a
// user's finger grazed in passing.
func Build(chars string, layout keyboard.Layout) Path {
	raw := expand(chars, layout, false)
	return simplify(raw)
}

// BuildStrict is Build's counterpart for dictionary words: any character
// missing from the layout is a build-time error rather than something to
// skip over.
func BuildStrict(word string, layout keyboard.Layout) (Path, error) {
	raw := make(Path, 0, len(word))
	for _, ch := range word {
		p, ok := layout.PointFor(ch)
		if !ok {
			return nil, ErrUnrecognizedLetter{Char: ch}
		}
		if len(raw) == 0 || raw[len(raw)-1] != p {
			raw = append(raw, p)
		}
	}
	return simplify(raw), nil
}

func expand(chars string, layout keyboard.Layout, strict bool) Path {
	raw := make(Path, 0, len(chars))
	for _, ch := range chars {
		p, ok := layout.PointFor(ch)
		if !ok {
			continue
		}
		if len(raw) == 0 || raw[len(raw)-1] != p {
			raw = append(raw, p)
		}
	}
	return raw
}

// simplify drops points within simplifyTolerance of the previously kept
// point, and collapses runs of three or more collinear, monotonically
// progressing points down to their endpoints.
func simplify(raw Path) Path {
	if len(raw) <= 2 {
		return raw
	}

	out := make(Path, 0, len(raw))
	out = append(out, raw[0])

	for i := 1; i < len(raw); i++ {
		cur := raw[i]
		last := out[len(out)-1]
		if dist(cur, last) < simplifyTolerance {
			continue
		}
		if len(out) >= 2 {
			prev := out[len(out)-2]
			if collinear(prev, last, cur) {
				out[len(out)-1] = cur
				continue
			}
		}
		out = append(out, cur)
	}
	return out
}

func dist(a, b Point) float64 {
	dx := float64(a.X - b.X)
	dy := float64(a.Y - b.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// collinear reports whether b lies on the segment a-c within tolerance,
// using the cross-product area test.
func collinear(a, b, c Point) bool {
	area := float64(b.X-a.X)*float64(c.Y-a.Y) - float64(b.Y-a.Y)*float64(c.X-a.X)
	if math.Abs(area) > simplifyTolerance {
		return false
	}
	// b must also lie between a and c, not beyond either end.
	dot := float64(b.X-a.X)*float64(c.X-a.X) + float64(b.Y-a.Y)*float64(c.Y-a.Y)
	if dot < 0 {
		return false
	}
	lenSq := float64(c.X-a.X)*float64(c.X-a.X) + float64(c.Y-a.Y)*float64(c.Y-a.Y)
	return dot <= lenSq
}
