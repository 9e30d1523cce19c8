package Trees

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// SyncBST is a BST guarded by one mutex. Every method, including the read
// only ones, holds the lock for its whole duration.
type SyncBST[T any, S constraints.Unsigned] struct {
	mu sync.Mutex
	t  *BST[T, S]
}

func NewSync[T any, S constraints.Unsigned](cmp func(T, T) int, hint S, opts ...Option[S]) *SyncBST[T, S] {
	return &SyncBST[T, S]{t: New[T, S](cmp, hint, opts...)}
}

func (u *SyncBST[T, S]) Insert(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Insert(v)
}

func (u *SyncBST[T, S]) Remove(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Remove(v)
}

func (u *SyncBST[T, S]) Has(v T) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Has(v)
}

func (u *SyncBST[T, S]) Minimum() (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Minimum()
}

func (u *SyncBST[T, S]) Maximum() (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Maximum()
}

func (u *SyncBST[T, S]) Root() (T, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Root()
}

func (u *SyncBST[T, S]) Size() uint {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Size()
}

func (u *SyncBST[T, S]) Empty() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Empty()
}

func (u *SyncBST[T, S]) Height() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Height()
}

func (u *SyncBST[T, S]) Levels() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Levels()
}

func (u *SyncBST[T, S]) Width() uint {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Width()
}

func (u *SyncBST[T, S]) InOrder() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.InOrder()
}

func (u *SyncBST[T, S]) PreOrder() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.PreOrder()
}

func (u *SyncBST[T, S]) PostOrder() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.PostOrder()
}

func (u *SyncBST[T, S]) ByLevel() []T {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.ByLevel()
}

func (u *SyncBST[T, S]) Corrupt() bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Corrupt()
}

// Walk [BST.Walk] holding the lock. f mustn't call methods of u.
func (u *SyncBST[T, S]) Walk(o Order, f func(T) bool, st []S) []S {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.t.Walk(o, f, st)
}

var (
	_ OrderedTree[int] = (*BST[int, uint])(nil)
	_ OrderedTree[int] = (*SyncBST[int, uint])(nil)
)
