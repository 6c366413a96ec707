package sweep

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

// RandomSegments returns n segments with normally distributed endpoints.
func RandomSegments(rng *rand.Rand, n int) []Segment {
	segs := make([]Segment, n)
	for i := range segs {
		p := Point{rng.NormFloat64(), rng.NormFloat64()}
		q := Point{rng.NormFloat64(), rng.NormFloat64()}
		segs[i] = NewSegment(p, q, i)
	}
	return segs
}

// RandomGridSegments returns n segments with endpoints on the integer grid [0,size]x[0,size].
// Segments have non-zero length and no two are parallel, so that all touching points are
// isolated.
func RandomGridSegments(rng *rand.Rand, n, size int) []Segment {
	segs := make([]Segment, 0, n)
	for len(segs) < n {
		p := Point{float64(rng.IntN(size + 1)), float64(rng.IntN(size + 1))}
		q := Point{float64(rng.IntN(size + 1)), float64(rng.IntN(size + 1))}
		if p == q {
			continue
		}
		d := q.Sub(p)
		parallel := false
		for _, s := range segs {
			if s.Q.Sub(s.P).PerpDot(d) == 0.0 {
				parallel = true
				break
			}
		}
		if !parallel {
			segs = append(segs, NewSegment(p, q, len(segs)))
		}
	}
	return segs
}

// testPoints checks that zs and expected are the same sets of points and that zs has no
// duplicates.
func testPoints(t *testing.T, zs, expected []Point) {
	t.Helper()
	set := NewPointSet()
	for _, z := range zs {
		if !set.Add(z) {
			test.Fail(t, fmt.Sprintf("duplicate point %v", z))
		}
	}
	want := NewPointSet()
	for _, z := range expected {
		want.Add(z)
		if !set.Has(z) {
			test.Fail(t, fmt.Sprintf("missing point %v", z))
		}
	}
	for _, z := range zs {
		if !want.Has(z) {
			test.Fail(t, fmt.Sprintf("spurious point %v", z))
		}
	}
	test.T(t, len(zs), want.Len(), "number of points")
}
