package sweep

import "math"

type cell struct {
	x, y int64
}

// PointSet is a set of points where points within Epsilon of each other are the same.
// Points are bucketed in a grid with cells of size Epsilon so that lookups only need to
// check the neighbouring cells, which makes membership independent of the order in which
// points were added.
type PointSet struct {
	cells map[cell][]Point
	n     int
}

func NewPointSet() *PointSet {
	return &PointSet{
		cells: map[cell][]Point{},
	}
}

// maxCell bounds cell indices so that neighbouring cells do not overflow int64. Points
// beyond about 4.6e9 share the outermost cells, which is slower but still exact.
const maxCell = 1 << 62

func cellOf(p Point) cell {
	return cell{cellIndex(p.X), cellIndex(p.Y)}
}

func cellIndex(f float64) int64 {
	f = math.Floor(f / Epsilon)
	if math.IsNaN(f) {
		return 0
	} else if maxCell < f {
		return maxCell
	} else if f < -maxCell {
		return -maxCell
	}
	return int64(f)
}

// Len returns the number of points in the set.
func (s *PointSet) Len() int {
	return s.n
}

// Has returns true if a point equal to p is in the set.
func (s *PointSet) Has(p Point) bool {
	c := cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			for _, q := range s.cells[cell{c.x + dx, c.y + dy}] {
				if p.Equals(q) {
					return true
				}
			}
		}
	}
	return false
}

// Add adds p to the set and returns false if an equal point was already present.
func (s *PointSet) Add(p Point) bool {
	if s.Has(p) {
		return false
	}
	c := cellOf(p)
	s.cells[c] = append(s.cells[c], p)
	s.n++
	return true
}
