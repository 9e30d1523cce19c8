package Trees

import (
	"golang.org/x/exp/constraints"
)

// A node in the tree, addressed by its index in base.ifs.
// Index 0 is the nil node: an absent child and the parent of the root are both 0.
// ifs[0] is never written, so it stays the zero value.
type info[S constraints.Unsigned] struct {
	l, r, p S
}

type base[T any, S constraints.Unsigned] struct {
	root, free, sz S         //free is the beginning of the linked list that contains all the free indexes; info[S]::l represents next.
	ifs            []info[S] //len(ifs)=len(vs)+1
	vs             []T       //vs[i-1] is the value at ifs[i].
}

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	ifs := make([]info[S], 1, uint64(hint)+1)
	return base[T, S]{ifs: ifs, vs: make([]T, 0, hint)}
}

func (u *base[T, S]) getV(i S) *T {
	return &u.vs[i-1]
}

// addFree index once. Its value is reset to release whatever it references.
func (u *base[T, S]) addFree(a S) {
	u.ifs[a] = info[S]{l: u.free}
	u.vs[a-1] = *new(T)
	u.free = a
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ifs[u.free].l
	return b
}

// alloc a leaf holding v under parent p. Holes are filled first before
// appending to the underlying arrays.
func (u *base[T, S]) alloc(v T, p S) S {
	if i := u.popFree(); i != 0 {
		u.ifs[i] = info[S]{p: p}
		*u.getV(i) = v
		return i
	}
	if m := uint64(^S(0)); uint64(len(u.ifs)) > m {
		panic(&CapacityError{m})
	}
	u.ifs = append(u.ifs, info[S]{p: p})
	u.vs = append(u.vs, v)
	return S(len(u.ifs) - 1)
}

// replaceChild makes nw take the place of old under p. p==0 means old is the root.
// The parent link of nw is updated too.
func (u *base[T, S]) replaceChild(p, old, nw S) {
	if p == 0 {
		u.root = nw
	} else if u.ifs[p].l == old {
		u.ifs[p].l = nw
	} else {
		u.ifs[p].r = nw
	}
	if nw != 0 {
		u.ifs[nw].p = p
	}
}

// leftmost node of the subtree rooting at i, i!=0.
func (u *base[T, S]) leftmost(i S) S {
	for u.ifs[i].l != 0 {
		i = u.ifs[i].l
	}
	return i
}

// rightmost node of the subtree rooting at i, i!=0.
func (u *base[T, S]) rightmost(i S) S {
	for u.ifs[i].r != 0 {
		i = u.ifs[i].r
	}
	return i
}

// Clear the tree. Doesn't allocate new arrays.
func (u *base[T, S]) Clear() {
	clear(u.vs)
	u.ifs, u.vs = u.ifs[:1], u.vs[:0]
	u.root, u.free, u.sz = 0, 0, 0
}

func (u *base[T, S]) Size() uint {
	return uint(u.sz)
}

func (u *base[T, S]) Empty() bool {
	return u.root == 0
}
