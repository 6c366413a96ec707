package sweep

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestPointSet(t *testing.T) {
	s := NewPointSet()
	test.That(t, s.Add(Point{1.0, 2.0}))
	test.That(t, !s.Add(Point{1.0, 2.0}))
	test.That(t, !s.Add(Point{1.0 + 0.5*Epsilon, 2.0 - 0.5*Epsilon}))
	test.That(t, s.Add(Point{1.0 + 3.0*Epsilon, 2.0}))
	test.That(t, s.Add(Point{-1.0, -2.0}))
	test.T(t, s.Len(), 3)

	test.That(t, s.Has(Point{-1.0, -2.0}))
	test.That(t, !s.Has(Point{0.0, 0.0}))
}

func TestPointSetCellBoundary(t *testing.T) {
	// points within Epsilon on either side of a cell boundary are equal
	s := NewPointSet()
	x := 100.0 * Epsilon
	test.That(t, s.Add(Point{x - 0.4*Epsilon, 0.0}))
	test.That(t, s.Has(Point{x + 0.4*Epsilon, 0.0}))
	test.That(t, s.Has(Point{x - 0.4*Epsilon, -0.4 * Epsilon}))
	test.That(t, !s.Has(Point{x + 2.0*Epsilon, 0.0}))
}

func TestPointSetLarge(t *testing.T) {
	s := NewPointSet()
	test.That(t, s.Add(Point{1e12, 0.0}))
	test.That(t, s.Add(Point{1e12 + 1.0, 0.0}))
	test.That(t, s.Add(Point{-1e12, 1e15}))
	test.That(t, !s.Add(Point{1e12, 0.0}))
	test.That(t, !s.Add(Point{-1e12, 1e15}))
	test.T(t, s.Len(), 3)

	test.T(t, cellIndex(math.Inf(1)), int64(maxCell))
	test.T(t, cellIndex(math.Inf(-1)), int64(-maxCell))
	test.T(t, cellIndex(math.NaN()), int64(0))
	test.T(t, cellIndex(2.5*Epsilon), int64(2))
}
