package sweep

import (
	"fmt"
	"log/slog"
	"slices"
)

// Stats are the counters of a finished sweep.
type Stats struct {
	Segments      int
	Events        int
	Intersections int
	MaxStatus     int // maximum number of segments crossing the sweep line
}

// Sweep finds all intersection points between line segments using the Bentley-Ottmann
// algorithm. A horizontal sweep line moves from top to bottom and keeps the segments it
// crosses ordered from left to right. Only segments that become neighbours in this order
// are tested for intersections, which results in O((n + k) log n) time for n segments and
// k intersections.
//
// Degenerate cases are handled as follows:
//   - an endpoint on another segment (T-junction) is found when the endpoint is processed;
//   - horizontal segments are inserted just above their height and removed just below, and
//     upon insertion are tested against all segments crossing their extent;
//   - parallel and collinear segments do not intersect, but their endpoints can touch;
//   - every point is reported once, points closer than Epsilon are the same point.
//
// A Sweep is not safe for concurrent use.
type Sweep struct {
	segs   []Segment
	queue  Events
	status *Status
	seen   *PointSet
	flat   []*Segment // horizontal segments in the status

	points []Point
	stats  Stats
	done   bool
	log    *slog.Logger
}

// New returns a sweep over a copy of segs.
func New(segs []Segment) *Sweep {
	return &Sweep{
		segs:   slices.Clone(segs),
		status: NewStatus(),
		seen:   NewPointSet(),
		log:    Logger(),
	}
}

// Find returns all intersection points between segs in the order they are found.
func Find(segs []Segment) []Point {
	return New(segs).Run()
}

// NewSegments returns segments from (x1,y1,x2,y2) coordinates, the index is the ID.
func NewSegments(coords [][4]float64) []Segment {
	segs := make([]Segment, len(coords))
	for i, c := range coords {
		segs[i] = NewSegment(Point{c[0], c[1]}, Point{c[2], c[3]}, i)
	}
	return segs
}

// Segments returns the segments of the sweep.
func (s *Sweep) Segments() []Segment {
	return s.segs
}

// Points returns the intersections found so far.
func (s *Sweep) Points() []Point {
	return s.points
}

// Stats returns the counters of the sweep.
func (s *Sweep) Stats() Stats {
	return s.stats
}

// Run processes all events and returns the intersection points in the order they are
// found. Subsequent calls return the same points.
func (s *Sweep) Run() []Point {
	if s.done {
		return s.points
	}
	s.done = true

	s.queue = make(Events, 0, 2*len(s.segs))
	for i := range s.segs {
		s.queue.AddSegment(&s.segs[i])
	}
	s.queue.Init()
	s.stats.Segments = len(s.segs)

	for 0 < len(s.queue) {
		e := s.queue.Pop()
		s.stats.Events++
		s.log.Debug("event", "event", e, "status", s.status.Len())

		switch e.Kind {
		case InsertEvent:
			s.insert(e)
		case RemoveEvent:
			s.remove(e)
		case IntersectionEvent:
			s.cross(e)
		}
		s.stats.MaxStatus = max(s.stats.MaxStatus, s.status.Len())
	}
	s.stats.Intersections = len(s.points)
	s.log.Debug("sweep done",
		"segments", s.stats.Segments,
		"events", s.stats.Events,
		"intersections", s.stats.Intersections,
		"max_status", s.stats.MaxStatus)
	return s.points
}

// endpoint returns the segment's endpoint at event e. Events of horizontal segments are
// displaced by Nudge, so their true left or right end is returned.
func endpoint(e Event) Point {
	if !e.A.Horizontal() {
		return e.Point
	}
	left, right := e.A.P, e.A.Q
	if right.X < left.X {
		left, right = right, left
	}
	if e.Kind == InsertEvent {
		return left
	}
	return right
}

func (s *Sweep) insert(e Event) {
	y := e.Y
	s.touch(endpoint(e), e.A, s.status.Above(e.A, y, true), s.status.Below(e.A, y, true))
	s.touchFlat(e)

	y -= Nudge
	s.status.Insert(e.A, y)
	if e.A.Horizontal() {
		s.crossFlat(e.A, e.Point)
		s.flat = append(s.flat, e.A)
	}
	s.schedule(s.status.Above(e.A, y, false), e.A, y, e.Point)
	s.schedule(e.A, s.status.Below(e.A, y, false), y, e.Point)
}

func (s *Sweep) remove(e Event) {
	y := e.Y
	s.touch(endpoint(e), e.A, s.status.Above(e.A, y, true), s.status.Below(e.A, y, true))
	s.touchFlat(e)

	// segments inserted at this height are ordered below it, so the neighbours are taken by
	// position in the status instead of by ordering at y
	below, above, ok := s.status.Neighbours(e.A, y)
	if !ok || !s.status.Remove(e.A, y) {
		panic(fmt.Sprintf("sweep: segment %v not in status", e.A))
	}
	if e.A.Horizontal() {
		s.flat = slices.DeleteFunc(s.flat, func(f *Segment) bool { return f == e.A })
	}
	s.schedule(above, below, y, e.Point)
}

func (s *Sweep) cross(e Event) {
	s.emit(e.Point)

	// reinsert both segments below the intersection so that they swap order
	y := e.Y
	inA := s.status.Remove(e.A, y)
	inB := s.status.Remove(e.B, y)
	y -= Nudge
	if inB {
		s.status.Insert(e.B, y)
	}
	if inA {
		s.status.Insert(e.A, y)
	}

	switch {
	case inA && inB:
		left, right := e.B, e.A
		if less(e.A, e.B, y, false) {
			left, right = e.A, e.B
		}
		s.schedule(s.status.Above(right, y, false), right, y, e.Point)
		s.schedule(left, s.status.Below(left, y, false), y, e.Point)
	case inA:
		// B ended at the intersection before it was handled
		s.schedule(s.status.Above(e.A, y, false), e.A, y, e.Point)
		s.schedule(e.A, s.status.Below(e.A, y, false), y, e.Point)
	case inB:
		s.schedule(s.status.Above(e.B, y, false), e.B, y, e.Point)
		s.schedule(e.B, s.status.Below(e.B, y, false), y, e.Point)
	}
}

// touch emits p if it lies on one of the neighbours of seg.
func (s *Sweep) touch(p Point, seg *Segment, neighbours ...*Segment) {
	for _, other := range neighbours {
		if other != nil && other != seg && OnSegment(p, other) {
			if s.seen.Add(p) {
				s.log.Debug("touch", "point", p, "segment", seg.ID, "other", other.ID)
				s.emit(p)
			}
			return
		}
	}
}

// touchFlat emits the endpoints of the event's segment that lie on a horizontal segment
// in the status. For horizontal segments the event point is displaced, so both of its
// endpoints are tested instead.
func (s *Sweep) touchFlat(e Event) {
	for _, f := range s.flat {
		if f == e.A {
			continue
		}
		if e.A.Horizontal() {
			s.touch(e.A.P, e.A, f)
			s.touch(e.A.Q, e.A, f)
		} else {
			s.touch(e.Point, e.A, f)
		}
	}
}

// crossFlat schedules the intersections between horizontal segment h and all segments
// that cross its extent. The point at the left end of h is emitted directly.
func (s *Sweep) crossFlat(h *Segment, p Point) {
	lo, hi := min(h.P.X, h.Q.X), max(h.P.X, h.Q.X)
	for seg := range s.status.Range(h.P.Y, lo, hi) {
		if seg == h || seg.Horizontal() {
			continue
		}
		z, ok := Intersect(h, seg)
		if !ok {
			continue
		}
		if p.X+Epsilon < z.X {
			s.push(z, h, seg)
		} else if s.seen.Add(z) {
			s.log.Debug("touch", "point", z, "segment", h.ID, "other", seg.ID)
			s.emit(z)
		}
	}
}

// schedule adds the intersection between a and b if it lies ahead of the sweep line at
// height y and event point p.
func (s *Sweep) schedule(a, b *Segment, y float64, p Point) {
	if a == nil || b == nil || a == b {
		return
	}
	z, ok := Intersect(a, b)
	if !ok {
		return
	}
	if z.Y < y-Epsilon || Equal(z.Y, y) && p.X+Epsilon < z.X {
		s.push(z, a, b)
	}
}

func (s *Sweep) push(z Point, a, b *Segment) {
	if s.seen.Add(z) {
		s.log.Debug("schedule", "point", z, "a", a.ID, "b", b.ID)
		s.queue.Push(Event{z, IntersectionEvent, a, b})
	}
}

func (s *Sweep) emit(p Point) {
	s.points = append(s.points, p)
}

////////////////////////////////////////////////////////////////

// BruteForce returns all intersection points between segs by testing every pair, in
// O(n^2) time. Endpoints of parallel segments that lie on each other are included. It
// serves as a reference for the sweep.
func BruteForce(segs []Segment) []Point {
	seen := NewPointSet()
	var zs []Point
	add := func(p Point) {
		if seen.Add(p) {
			zs = append(zs, p)
		}
	}
	for i := range segs {
		a := &segs[i]
		for j := i + 1; j < len(segs); j++ {
			b := &segs[j]
			if z, ok := Intersect(a, b); ok {
				add(z)
				continue
			}
			for _, p := range []Point{b.P, b.Q} {
				if OnSegment(p, a) {
					add(p)
				}
			}
			for _, p := range []Point{a.P, a.Q} {
				if OnSegment(p, b) {
					add(p)
				}
			}
		}
	}
	return zs
}

// SortPoints sorts points in sweep order: from top to bottom, then from left to right.
func SortPoints(zs []Point) {
	slices.SortFunc(zs, func(a, b Point) int {
		if a.Less(b) {
			return -1
		} else if b.Less(a) {
			return 1
		}
		return 0
	})
}
