package sweep

import (
	"fmt"
	"io"
	"iter"
	"strings"
	"sync"
)

// StatusNode is a node of the sweep status tree. Leaves hold a segment, internal nodes hold
// two children and route searches by their boundary: the right-most segment of the left
// subtree.
type StatusNode struct {
	left, right *StatusNode
	height      int

	seg      *Segment // leaf only
	boundary *Segment // internal only
	last     *Segment // right-most segment in subtree
}

func (n *StatusNode) leaf() bool {
	return n.left == nil
}

func (n *StatusNode) balance() int {
	if n.leaf() {
		return 0
	}
	return n.right.height - n.left.height
}

// update recomputes the height and the cached segments from the children.
func (n *StatusNode) update() {
	n.height = max(n.left.height, n.right.height) + 1
	n.boundary = n.left.last
	n.last = n.right.last
}

func (a *StatusNode) rotateLeft() *StatusNode {
	b := a.right
	a.right = b.left
	b.left = a
	a.update()
	b.update()
	return b
}

func (a *StatusNode) rotateRight() *StatusNode {
	b := a.left
	a.left = b.right
	b.right = a
	a.update()
	b.update()
	return b
}

// rebalance updates n and restores the AVL property, returning the new subtree root.
func (n *StatusNode) rebalance() *StatusNode {
	n.update()
	if balance := n.balance(); balance == 2 {
		// Tree is excessively right-heavy, rotate it to the left.
		if n.right.balance() < 0 {
			// Right tree is left-heavy, which would cause the next rotation to result in
			// overall left-heaviness. Rotate the right tree to the right to counteract this.
			n.right = n.right.rotateRight()
		}
		return n.rotateLeft()
	} else if balance == -2 {
		// Tree is excessively left-heavy, rotate it to the right
		if 0 < n.left.balance() {
			// The left tree is right-heavy, which would cause the next rotation to result in
			// overall right-heaviness. Rotate the left tree to the left to compensate.
			n.left = n.left.rotateLeft()
		}
		return n.rotateRight()
	} else if balance < -2 || 2 < balance {
		panic("sweep: status tree too far out of shape")
	}
	return n
}

func (n *StatusNode) Print(w io.Writer, indent int) {
	if n.leaf() {
		fmt.Fprintf(w, "%v%v\n", strings.Repeat("  ", indent), n.seg)
		return
	}
	n.right.Print(w, indent+1)
	fmt.Fprintf(w, "%v<%d>\n", strings.Repeat("  ", indent), n.boundary.ID)
	n.left.Print(w, indent+1)
}

////////////////////////////////////////////////////////////////

// Status is the sweep line status: the segments crossing the sweep line ordered from left
// to right. Segments are stored in the leaves of an AVL tree. All operations take the
// height y of the sweep line at which segments are ordered.
type Status struct {
	root *StatusNode
	size int
	pool *sync.Pool
}

func NewStatus() *Status {
	return &Status{
		pool: &sync.Pool{New: func() any { return &StatusNode{} }},
	}
}

func (s *Status) newLeaf(seg *Segment) *StatusNode {
	n := s.pool.Get().(*StatusNode)
	n.left = nil
	n.right = nil
	n.height = 1
	n.seg = seg
	n.boundary = nil
	n.last = seg
	return n
}

func (s *Status) newInternal(left, right *StatusNode) *StatusNode {
	n := s.pool.Get().(*StatusNode)
	n.left = left
	n.right = right
	n.seg = nil
	n.update()
	return n
}

func (s *Status) returnNode(n *StatusNode) {
	n.left, n.right = nil, nil
	n.seg, n.boundary, n.last = nil, nil, nil // help the GC
	s.pool.Put(n)
}

// Len returns the number of segments in the status.
func (s *Status) Len() int {
	return s.size
}

// Insert adds seg ordered at height y.
func (s *Status) Insert(seg *Segment, y float64) {
	s.root = s.insert(s.root, seg, y)
	s.size++
}

func (s *Status) insert(n *StatusNode, seg *Segment, y float64) *StatusNode {
	if n == nil {
		return s.newLeaf(seg)
	} else if n.leaf() {
		if less(seg, n.seg, y, false) {
			return s.newInternal(s.newLeaf(seg), n)
		}
		return s.newInternal(n, s.newLeaf(seg))
	}

	if less(seg, n.boundary, y, false) {
		n.left = s.insert(n.left, seg, y)
	} else {
		n.right = s.insert(n.right, seg, y)
	}
	return n.rebalance()
}

// Remove removes seg and returns false if it was not present. The leaf is found by
// identity, ordering at height y only decides which subtree is searched first.
func (s *Status) Remove(seg *Segment, y float64) bool {
	var ok bool
	s.root, ok = s.remove(s.root, seg, y)
	if ok {
		s.size--
	}
	return ok
}

func (s *Status) remove(n *StatusNode, seg *Segment, y float64) (*StatusNode, bool) {
	if n == nil {
		return nil, false
	} else if n.leaf() {
		if n.seg != seg {
			return n, false
		}
		s.returnNode(n)
		return nil, true
	}

	ok := false
	if seg == n.boundary || less(seg, n.boundary, y, true) {
		if n.left, ok = s.remove(n.left, seg, y); !ok {
			n.right, ok = s.remove(n.right, seg, y)
		}
	} else if n.right, ok = s.remove(n.right, seg, y); !ok {
		n.left, ok = s.remove(n.left, seg, y)
	}
	if !ok {
		return n, false
	}

	// collapse internal node with a single child
	if n.left == nil {
		o := n.right
		s.returnNode(n)
		return o, true
	} else if n.right == nil {
		o := n.left
		s.returnNode(n)
		return o, true
	}
	return n.rebalance(), true
}

// Neighbours returns the segments directly left and right of seg by their position in the
// tree, and false if seg is not in the status. Height y only decides which subtree is
// searched first.
func (s *Status) Neighbours(seg *Segment, y float64) (*Segment, *Segment, bool) {
	path, ok := s.path(s.root, seg, y, nil)
	if !ok {
		return nil, nil, false
	}

	var prev, next *Segment
	for i := len(path) - 2; 0 <= i; i-- {
		n, child := path[i], path[i+1]
		if prev == nil && child == n.right {
			prev = n.boundary // right-most of the left subtree
		} else if next == nil && child == n.left {
			m := n.right
			for !m.leaf() {
				m = m.left // find the left-most of the right subtree
			}
			next = m.seg
		}
		if prev != nil && next != nil {
			break
		}
	}
	return prev, next, true
}

// path returns the nodes from n down to the leaf of seg.
func (s *Status) path(n *StatusNode, seg *Segment, y float64, path []*StatusNode) ([]*StatusNode, bool) {
	if n == nil {
		return path, false
	}
	path = append(path, n)
	if n.leaf() {
		return path, n.seg == seg
	}

	first, second := n.left, n.right
	if seg != n.boundary && !less(seg, n.boundary, y, true) {
		first, second = second, first
	}
	if p, ok := s.path(first, seg, y, path); ok {
		return p, true
	}
	return s.path(second, seg, y, path)
}

// Above returns the segment directly right of seg at height y, seg need not be in the
// status. If loose is set, segments within Epsilon of seg count as being right of it. May
// return nil.
func (s *Status) Above(seg *Segment, y float64, loose bool) *Segment {
	var succ *Segment
	n := s.root
	for n != nil {
		if n.leaf() {
			if less(seg, n.seg, y, loose) {
				succ = n.seg
			}
			break
		}
		if less(seg, n.boundary, y, loose) {
			succ = n.boundary
			n = n.left
		} else {
			n = n.right
		}
	}
	return succ
}

// Below returns the segment directly left of seg at height y, seg need not be in the
// status. If loose is set, segments within Epsilon of seg count as being left of it. May
// return nil.
func (s *Status) Below(seg *Segment, y float64, loose bool) *Segment {
	var pred *Segment
	n := s.root
	for n != nil {
		if n.leaf() {
			if less(n.seg, seg, y, loose) {
				pred = n.seg
			}
			break
		}
		if less(n.boundary, seg, y, loose) {
			pred = n.boundary
			n = n.right
		} else {
			n = n.left
		}
	}
	return pred
}

// All iterates over the segments from left to right.
func (s *Status) All() iter.Seq[*Segment] {
	return func(yield func(*Segment) bool) {
		s.walk(s.root, yield)
	}
}

func (s *Status) walk(n *StatusNode, yield func(*Segment) bool) bool {
	if n == nil {
		return true
	} else if n.leaf() {
		return yield(n.seg)
	}
	return s.walk(n.left, yield) && s.walk(n.right, yield)
}

// Range iterates from left to right over the segments whose x-coordinate at height y is
// within [lo,hi].
func (s *Status) Range(y, lo, hi float64) iter.Seq[*Segment] {
	return func(yield func(*Segment) bool) {
		s.rangeWalk(s.root, y, lo-Epsilon, hi+Epsilon, yield)
	}
}

func (s *Status) rangeWalk(n *StatusNode, y, lo, hi float64, yield func(*Segment) bool) bool {
	if n == nil {
		return true
	} else if n.leaf() {
		if x := n.seg.XAt(y); x < lo {
			return true
		} else if hi < x {
			return false
		}
		return yield(n.seg)
	}
	if lo <= n.boundary.XAt(y) {
		if !s.rangeWalk(n.left, y, lo, hi, yield) {
			return false
		}
	}
	return s.rangeWalk(n.right, y, lo, hi, yield)
}

func (s *Status) String() string {
	if s.root == nil {
		return "nil"
	}

	sb := strings.Builder{}
	s.root.Print(&sb, 0)
	str := sb.String()
	if 0 < len(str) {
		str = str[:len(str)-1]
	}
	return str
}
