package sweep

import (
	"fmt"
	"math"
)

// Epsilon is the geometric tolerance used for point equality, ordering ties and the
// intersection tests.
const Epsilon = 1e-9

// Nudge is the offset below an event's height at which segments are ordered when they are
// (re)inserted into the sweep status, so that segments sharing the event height have a
// strict order. It must be much larger than Epsilon.
const Nudge = 1e-6

// Equal returns true if a and b are equal with tolerance Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return Equal(p.X, q.X) && Equal(p.Y, q.Y)
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Dot returns the dot product between OP and OQ.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ, ie. zero if aligned.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Less returns true if P comes before Q in sweep order: from top to bottom, then from left
// to right.
func (p Point) Less(q Point) bool {
	if !Equal(p.Y, q.Y) {
		return q.Y < p.Y
	}
	return p.X < q.X
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// Segment is a line segment between its upper endpoint P and its lower endpoint Q. ID is
// the index of the segment in the input and is only used to break ties.
type Segment struct {
	P, Q Point
	ID   int
}

// NewSegment returns the segment between p and q so that P is the upper endpoint. For
// horizontal segments P is the left endpoint.
func NewSegment(p, q Point, id int) Segment {
	if p.Y < q.Y || p.Y == q.Y && q.X < p.X {
		p, q = q, p
	}
	return Segment{p, q, id}
}

// Horizontal returns true if both endpoints are at the same height.
func (s *Segment) Horizontal() bool {
	return Equal(s.P.Y, s.Q.Y)
}

// XAt returns the x-coordinate of the (extended) segment at height y. For horizontal
// segments it is the left end.
func (s *Segment) XAt(y float64) float64 {
	if s.Horizontal() {
		return math.Min(s.P.X, s.Q.X)
	}
	return s.P.X + (s.Q.X-s.P.X)*((s.P.Y-y)/(s.P.Y-s.Q.Y))
}

func (s *Segment) String() string {
	return fmt.Sprintf("%d%v−%v", s.ID, s.P, s.Q)
}

// less orders segments from left to right at height y. Segments within Epsilon are
// ordered by descending ID, unless loose is set in which case they count as less.
func less(a, b *Segment, y float64, loose bool) bool {
	ax, bx := a.XAt(y), b.XAt(y)
	if Equal(ax, bx) {
		return loose || b.ID < a.ID
	}
	return ax < bx
}

// OnSegment returns true if p lies on segment s, endpoints included.
func OnSegment(p Point, s *Segment) bool {
	d := s.Q.Sub(s.P)
	v := p.Sub(s.P)
	if Epsilon < math.Abs(v.PerpDot(d)) {
		return false
	}
	dot := v.Dot(d)
	return -Epsilon <= dot && dot <= d.Dot(d)+Epsilon
}

// Intersect returns the intersection point of segments a and b. Parallel and collinear
// segments have no intersection point.
func Intersect(a, b *Segment) (Point, bool) {
	a1, b1 := a.Q.Y-a.P.Y, a.P.X-a.Q.X
	c1 := a1*a.P.X + b1*a.P.Y
	a2, b2 := b.Q.Y-b.P.Y, b.P.X-b.Q.X
	c2 := a2*b.P.X + b2*b.P.Y

	det := a1*b2 - a2*b1
	if math.Abs(det) < Epsilon {
		return Point{}, false
	}
	z := Point{(b2*c1 - b1*c2) / det, (a1*c2 - a2*c1) / det}
	if !a.inBounds(z) || !b.inBounds(z) {
		return Point{}, false
	}
	return z, true
}

func (s *Segment) inBounds(p Point) bool {
	return math.Min(s.P.X, s.Q.X)-Epsilon <= p.X && p.X <= math.Max(s.P.X, s.Q.X)+Epsilon &&
		s.Q.Y-Epsilon <= p.Y && p.Y <= s.P.Y+Epsilon
}
