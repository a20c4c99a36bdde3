// Package dtw computes banded Dynamic Time Warping distance between two
// swipe paths, the similarity metric the predictor ranks dictionary
// candidates by.
package dtw

import (
	"math"

	"github.com/swypelab/swyft/pkg/path"
)

// Distance computes the Sakoe-Chiba-banded DTW distance between a and b
// using squared-Euclidean point cost. The band only admits cells within
// bandWidth of the diagonal projection i*m/n, scaled for paths of unequal
// length; if the two paths differ in length by more than bandWidth, they
// are rejected outright. A single-point path reduces to the squared
// distance to the closest point on the other path. bestSoFar, if finite,
// is used as an early-termination ceiling: once a row's minimum cost
// already exceeds it, Distance returns +Inf without finishing the matrix.
// Pass +Inf for bestSoFar to disable pruning entirely.
//
// Distance is symmetric up to floating-point rounding: the outer loop
// always walks the longer of the two paths so the band and the rolling-row
// memory are sized the same way regardless of argument order.
func Distance(a, b path.Path, bandWidth int, bestSoFar float64) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 || len(b) == 0 {
		return math.Inf(1)
	}

	// Walk the longer path on the outer loop so the rolling rows are
	// sized to the shorter one; after the swap, i runs over the longer
	// path and j over the shorter, whichever argument each came from.
	n, m := len(a), len(b)
	longOuter := n >= m
	if !longOuter {
		a, b = b, a
		n, m = m, n
	}

	// A single-point path's distance is just the closest point on the
	// other path; this also covers the case where both paths are single
	// points (n == m == 1).
	if m == 1 {
		best := math.Inf(1)
		for i := 0; i < n; i++ {
			if c := sqDist(a[i], b[0]); c < best {
				best = c
			}
		}
		return best
	}

	if n-m > bandWidth {
		return math.Inf(1)
	}

	const inf = math.MaxFloat64

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = inf
	}
	prev[0] = 0

	cutoff := bestSoFar

	for i := 1; i <= n; i++ {
		for j := range curr {
			curr[j] = inf
		}

		// Diagonal-scaled Sakoe-Chiba band: only j within bandWidth of
		// the diagonal projection i*m/n are admissible.
		center := float64(i) * float64(m) / float64(n)
		jStart := int(math.Ceil(center - float64(bandWidth)))
		jEnd := int(math.Floor(center + float64(bandWidth)))
		if jStart < 1 {
			jStart = 1
		}
		if jEnd > m {
			jEnd = m
		}

		rowMin := inf
		for j := jStart; j <= jEnd; j++ {
			cost := sqDist(a[i-1], b[j-1])
			best := prev[j]
			if v := prev[j-1]; v < best {
				best = v
			}
			if v := curr[j-1]; v < best {
				best = v
			}
			curr[j] = cost + best
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}

		if !math.IsInf(cutoff, 1) && rowMin > cutoff {
			return math.Inf(1)
		}

		prev, curr = curr, prev
	}

	result := prev[m]
	if result >= inf {
		return math.Inf(1)
	}
	return result
}

func sqDist(p, q path.Point) float64 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return dx*dx + dy*dy
}
