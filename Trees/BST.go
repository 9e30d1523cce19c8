package Trees

import (
	"cmp"

	"github.com/g-m-twostay/ordtree/Queues"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/constraints"
)

// BST is a binary search tree with no repeated values and no balancing: its
// shape is whatever the order of insertions and removals makes it, so the
// depth D is O(n) in the worst case.
// T is the type of values it will hold, S is the type of the indexes of the
// nodes; S bounds the number of elements the tree can hold.
// Nodes live in arrays and refer to their children and parent by index, so
// re-parenting a subtree only rewrites indexes. All methods are implemented
// iteratively, the depth of the tree doesn't grow the call stack.
// BST isn't safe for concurrent use; see SyncBST.
type BST[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp  func(T, T) int
	newQ func() Queues.Queue[S]
}

type Option[S constraints.Unsigned] func(*options[S])

type options[S constraints.Unsigned] struct {
	newQ func() Queues.Queue[S]
}

// WithQueue sets the queue used by the breadth first traversals ByLevel and Width.
// f is called once per traversal. The default is Queues.MakeDequeQueue.
func WithQueue[S constraints.Unsigned](f func() Queues.Queue[S]) Option[S] {
	return func(o *options[S]) {
		o.newQ = f
	}
}

// New returns an empty BST ordered by cmp. cmp(a,b) is negative when a<b,
// positive when a>b, and 0 when they are equal. hint is the number of
// elements to reserve space for.
func New[T any, S constraints.Unsigned](cmp func(T, T) int, hint S, opts ...Option[S]) *BST[T, S] {
	o := options[S]{newQ: func() Queues.Queue[S] { return Queues.MakeDequeQueue[S](0) }}
	for _, opt := range opts {
		opt(&o)
	}
	return &BST[T, S]{makeBase[T, S](hint), cmp, o.newQ}
}

// NewOrdered is New using cmp.Compare.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](hint S, opts ...Option[S]) *BST[T, S] {
	return New[T, S](cmp.Compare[T], hint, opts...)
}

// find the index holding v, 0 if v isn't in the tree.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) find(v T) S {
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, *u.getV(curI)); c < 0 {
			curI = u.ifs[curI].l
		} else if c > 0 {
			curI = u.ifs[curI].r
		} else {
			return curI
		}
	}
	return 0
}

// Has [OrderedTree.Has]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Has(v T) bool {
	return u.find(v) != 0
}

// Insert [OrderedTree.Insert]. The new node is always a leaf.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Insert(v T) bool {
	var p S
	c := 0
	for curI := u.root; curI != 0; {
		if c = u.cmp(v, *u.getV(curI)); c == 0 {
			return false
		}
		p = curI
		if c < 0 {
			curI = u.ifs[curI].l
		} else {
			curI = u.ifs[curI].r
		}
	}
	n := u.alloc(v, p)
	if p == 0 {
		u.root = n
	} else if c < 0 {
		u.ifs[p].l = n
	} else {
		u.ifs[p].r = n
	}
	u.sz++
	return true
}

// Remove [OrderedTree.Remove]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Remove(v T) bool {
	if curI := u.find(v); curI != 0 {
		u.delete(curI)
		return true
	}
	return false
}

// delete the node at curI. A node with two children keeps its slot: it takes
// the value of the rightmost node of its left subtree, and that node, which
// has no right child, is deleted instead. A node with at most one child is
// replaced by that child, or by nothing, under its parent.
func (u *BST[T, S]) delete(curI S) {
	cur := u.ifs[curI]
	if Log.IsLevelEnabled(logrus.DebugLevel) {
		Log.WithFields(logrus.Fields{
			"value": *u.getV(curI),
			"slot":  curI,
			"root":  curI == u.root,
			"case":  deleteCase(cur),
		}).Debug("removing node")
	}
	if cur.l != 0 && cur.r != 0 {
		predI := u.rightmost(cur.l)
		*u.getV(curI) = *u.getV(predI)
		curI, cur = predI, u.ifs[predI]
	}
	child := cur.l
	if child == 0 {
		child = cur.r
	}
	u.replaceChild(cur.p, curI, child)
	u.addFree(curI)
	u.sz--
}

func deleteCase[S constraints.Unsigned](n info[S]) string {
	switch {
	case n.l == 0 && n.r == 0:
		return "leaf"
	case n.l != 0 && n.r != 0:
		return "two children"
	default:
		return "one child"
	}
}

// Minimum [OrderedTree.Minimum]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Minimum() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyTreeError{"Minimum"}
	}
	return *u.getV(u.leftmost(u.root)), nil
}

// Maximum [OrderedTree.Maximum]
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Maximum() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyTreeError{"Maximum"}
	}
	return *u.getV(u.rightmost(u.root)), nil
}

// Root [OrderedTree.Root]
func (u *BST[T, S]) Root() (T, error) {
	if u.root == 0 {
		return *new(T), &EmptyTreeError{"Root"}
	}
	return *u.getV(u.root), nil
}

// Predecessor of v. If strict is true, result<v if found; otherwise, result<=v.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Predecessor(v T, strict bool) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, *u.getV(curI)); c < 0 || (strict && c == 0) {
			curI = u.ifs[curI].l
		} else {
			p = curI
			curI = u.ifs[curI].r
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return *u.getV(p), true
}

// Successor of v. If strict is true, result>v if found; otherwise, result>=v.
// Time: O(D); Space: O(1)
func (u *BST[T, S]) Successor(v T, strict bool) (T, bool) {
	var p S
	for curI := u.root; curI != 0; {
		if c := u.cmp(v, *u.getV(curI)); c > 0 || (strict && c == 0) {
			curI = u.ifs[curI].r
		} else {
			p = curI
			curI = u.ifs[curI].l
		}
	}
	if p == 0 {
		return *new(T), false
	}
	return *u.getV(p), true
}
