package sweep

import (
	"fmt"
	"io"
	"strings"
)

// EventKind is the kind of sweep event.
type EventKind int

// see EventKind
const (
	InsertEvent EventKind = iota
	RemoveEvent
	IntersectionEvent
)

func (k EventKind) String() string {
	switch k {
	case InsertEvent:
		return "Insert"
	case RemoveEvent:
		return "Remove"
	case IntersectionEvent:
		return "Intersection"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// priority of events at the same height, higher goes first
func (k EventKind) priority() int {
	switch k {
	case IntersectionEvent:
		return 3
	case InsertEvent:
		return 2
	case RemoveEvent:
		return 1
	}
	return 0
}

// Event is a point where the sweep status changes: a segment starts or ends, or two
// segments cross. B is only set for intersection events.
type Event struct {
	Point
	Kind EventKind
	A, B *Segment
}

func (e Event) String() string {
	if e.B != nil {
		return fmt.Sprintf("%v%v %d×%d", e.Kind, e.Point, e.A.ID, e.B.ID)
	}
	return fmt.Sprintf("%v%v %d", e.Kind, e.Point, e.A.ID)
}

// Less returns true if event e is handled before event o: from top to bottom, then
// intersections before insertions before removals, then from left to right.
func (e Event) Less(o Event) bool {
	if e.Y != o.Y {
		return o.Y < e.Y
	} else if e.Kind != o.Kind {
		return o.Kind.priority() < e.Kind.priority()
	} else if e.X != o.X {
		return e.X < o.X
	} else if e.A.ID != o.A.ID {
		return e.A.ID < o.A.ID
	} else if e.B != nil && o.B != nil {
		return e.B.ID < o.B.ID
	}
	return false
}

////////////////////////////////////////////////////////////////

// Events is a heap priority queue of sweep events.
type Events []Event

// AddSegment adds the insertion and removal events of s. Horizontal segments are inserted
// just above and removed just below their height.
func (q *Events) AddSegment(s *Segment) {
	if s.Horizontal() {
		left, right := s.P, s.Q
		if right.X < left.X {
			left, right = right, left
		}
		*q = append(*q,
			Event{Point{left.X, left.Y + Nudge}, InsertEvent, s, nil},
			Event{Point{right.X, right.Y - Nudge}, RemoveEvent, s, nil})
		return
	}
	*q = append(*q,
		Event{s.P, InsertEvent, s, nil},
		Event{s.Q, RemoveEvent, s, nil})
}

func (q Events) Less(i, j int) bool {
	return q[i].Less(q[j])
}

func (q Events) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q Events) Init() {
	n := len(q)
	for i := n/2 - 1; 0 <= i; i-- {
		q.down(i, n)
	}
}

func (q *Events) Push(item Event) {
	*q = append(*q, item)
	q.up(len(*q) - 1)
}

func (q *Events) Pop() Event {
	n := len(*q) - 1
	q.Swap(0, n)
	q.down(0, n)

	item := (*q)[n]
	*q = (*q)[:n]
	return item
}

// from container/heap
func (q Events) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		j = i
	}
}

func (q Events) down(i0, n int) {
	i := i0
	for {
		j1 := 2*i + 1
		if n <= j1 || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && q.Less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !q.Less(j, i) {
			break
		}
		q.Swap(i, j)
		i = j
	}
}

func (q Events) Print(w io.Writer) {
	q2 := make(Events, len(q))
	copy(q2, q)
	q = q2

	n := len(q) - 1
	for 0 < n {
		q.Swap(0, n)
		q.down(0, n)
		n--
	}
	for k := len(q) - 1; 0 <= k; k-- {
		fmt.Fprintln(w, len(q)-1-k, q[k])
	}
}

func (q Events) String() string {
	sb := strings.Builder{}
	q.Print(&sb)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
