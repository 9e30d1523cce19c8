package Trees

// Order of a traversal.
type Order byte

const (
	InOrderWalk    Order = iota //left, self, right
	PreOrderWalk                //self, left, right
	PostOrderWalk               //left, right, self
	LevelOrderWalk              //breadth first
)

// Walk calls f on the elements of the tree in the given order, until f returns
// false. st is used as the stack of the depth first orders and can be reused
// across calls to avoid allocations; the possibly grown st is returned. Level
// order ignores st and uses a queue made by the tree's queue constructor.
// The tree mustn't be modified during the walk.
// Time: O(n); Space: O(D) for depth first orders, O(width) for level order.
func (u *BST[T, S]) Walk(o Order, f func(T) bool, st []S) []S {
	st = st[:0]
	switch o {
	case InOrderWalk:
		for curI := u.root; curI != 0; curI = u.ifs[curI].l {
			st = append(st, curI)
		}
		for len(st) > 0 {
			curI := st[len(st)-1]
			st = st[:len(st)-1]
			if !f(*u.getV(curI)) {
				break
			}
			for curI = u.ifs[curI].r; curI != 0; curI = u.ifs[curI].l {
				st = append(st, curI)
			}
		}
	case PreOrderWalk:
		if u.root != 0 {
			st = append(st, u.root)
		}
		for len(st) > 0 {
			curI := st[len(st)-1]
			st = st[:len(st)-1]
			if !f(*u.getV(curI)) {
				break
			}
			if r := u.ifs[curI].r; r != 0 {
				st = append(st, r)
			}
			if l := u.ifs[curI].l; l != 0 {
				st = append(st, l)
			}
		}
	case PostOrderWalk:
		var last S
		for curI := u.root; curI != 0 || len(st) > 0; {
			if curI != 0 {
				st = append(st, curI)
				curI = u.ifs[curI].l
				continue
			}
			top := st[len(st)-1]
			if r := u.ifs[top].r; r != 0 && r != last {
				curI = r
				continue
			}
			if !f(*u.getV(top)) {
				break
			}
			last, st = top, st[:len(st)-1]
		}
	case LevelOrderWalk:
		if u.root == 0 {
			break
		}
		q := u.newQ()
		for q.Push(u.root); !q.Empty(); {
			curI, _ := q.Pop()
			if !f(*u.getV(curI)) {
				break
			}
			if l := u.ifs[curI].l; l != 0 {
				q.Push(l)
			}
			if r := u.ifs[curI].r; r != 0 {
				q.Push(r)
			}
		}
	}
	return st
}

func (u *BST[T, S]) collect(o Order) []T {
	vs := make([]T, 0, u.sz)
	u.Walk(o, func(v T) bool {
		vs = append(vs, v)
		return true
	}, nil)
	return vs
}

// InOrder [OrderedTree.InOrder]. The result is sorted ascending.
func (u *BST[T, S]) InOrder() []T {
	return u.collect(InOrderWalk)
}

// PreOrder [OrderedTree.PreOrder]
func (u *BST[T, S]) PreOrder() []T {
	return u.collect(PreOrderWalk)
}

// PostOrder [OrderedTree.PostOrder]
func (u *BST[T, S]) PostOrder() []T {
	return u.collect(PostOrderWalk)
}

// ByLevel [OrderedTree.ByLevel]
func (u *BST[T, S]) ByLevel() []T {
	return u.collect(LevelOrderWalk)
}

// levelStats drains the tree one level at a time: each round pops exactly the
// nodes of the current level and pushes their children.
func (u *BST[T, S]) levelStats() (levels, width uint) {
	if u.root == 0 {
		return 0, 0
	}
	q := u.newQ()
	for q.Push(u.root); !q.Empty(); levels++ {
		n := q.Size()
		width = max(width, n)
		for ; n > 0; n-- {
			curI, _ := q.Pop()
			if l := u.ifs[curI].l; l != 0 {
				q.Push(l)
			}
			if r := u.ifs[curI].r; r != 0 {
				q.Push(r)
			}
		}
	}
	return
}

// Width [OrderedTree.Width]
// Time: O(n)
func (u *BST[T, S]) Width() uint {
	_, w := u.levelStats()
	return w
}

// Levels [OrderedTree.Levels]
// Time: O(n)
func (u *BST[T, S]) Levels() int {
	l, _ := u.levelStats()
	return int(l)
}

// Height [OrderedTree.Height]
// Time: O(n)
func (u *BST[T, S]) Height() int {
	return u.Levels() - 1
}

// Corrupt [OrderedTree.Corrupt]
// Time: O(n); Space: O(D)
func (u *BST[T, S]) Corrupt() bool {
	if (u.root == 0) != (u.sz == 0) || u.ifs[0] != (info[S]{}) {
		return true
	}
	if u.root != 0 && u.ifs[u.root].p != 0 {
		return true
	}
	var count S
	var st []S
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		curI := st[len(st)-1]
		st = st[:len(st)-1]
		if count++; uint64(count) >= uint64(len(u.ifs)) {
			return true //more nodes than slots: a cycle or a shared subtree.
		}
		for _, c := range [2]S{u.ifs[curI].l, u.ifs[curI].r} {
			if c != 0 {
				if u.ifs[c].p != curI {
					return true
				}
				st = append(st, c)
			}
		}
	}
	if count != u.sz {
		return true
	}
	corrupt, first := false, true
	var prev T
	u.Walk(InOrderWalk, func(v T) bool {
		if !first && u.cmp(prev, v) >= 0 {
			corrupt = true
		}
		prev, first = v, false
		return !corrupt
	}, nil)
	return corrupt
}
