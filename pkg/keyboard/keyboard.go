// Package keyboard models a QWERTY key grid as floating-point coordinates,
// the space every swipe path and every dictionary entry's precomputed path
// lives in.
package keyboard

import "unicode"

// Point is a single coordinate on a keyboard grid.
type Point struct {
	X, Y float32
}

// Layout maps a lowercase letter to its grid position. A Layout is built
// once and never mutated; concurrent reads are safe.
type Layout map[rune]Point

// rows lists the canonical QWERTY rows bottom of the offset staircase
// first: row 0 has no offset, row 1 is nudged right half a key, row 2 a
// full key.
var rows = []struct {
	letters string
	yOffset float32
	xOffset float32
}{
	{"qwertyuiop", 0, 0},
	{"asdfghjkl", 1, 0.5},
	{"zxcvbnm", 2, 1.0},
}

// QWERTY builds the canonical US QWERTY layout.
func QWERTY() Layout {
	l := make(Layout, 26)
	for _, row := range rows {
		for col, ch := range row.letters {
			l[ch] = Point{
				X: float32(col) + row.xOffset,
				Y: row.yOffset,
			}
		}
	}
	return l
}

// PointFor looks up the grid position of a rune, case-insensitively.
func (l Layout) PointFor(ch rune) (Point, bool) {
	p, ok := l[unicode.ToLower(ch)]
	return p, ok
}
