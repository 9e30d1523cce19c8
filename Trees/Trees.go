package Trees

import "fmt"

// OrderedTree is a binary search tree over a totally ordered element type.
// Elements are unique: inserting an element that compares equal to a stored
// one does nothing.
// Receivers that return an error as the second value only do so when the
// tree is empty; in that case the first value is the zero value of T and
// shouldn't be used.
// Traversal receivers return a new slice holding a snapshot of the elements;
// later modifications of the tree don't affect it.
type OrderedTree[T any] interface {
	//Insert v to the tree. Returns false if an equal element already exists.
	Insert(v T) bool
	//Remove v from the tree. Returns false if v isn't in the tree, in which
	//case the tree isn't modified.
	Remove(v T) bool
	//Has element v.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, error)
	//Maximum element of the tree.
	Maximum() (T, error)
	//Root element of the tree.
	Root() (T, error)
	//Size is the number of elements.
	Size() uint
	Empty() bool
	//Height of the tree. An empty tree has height -1 and a single node tree 0.
	Height() int
	//Levels is Height()+1.
	Levels() int
	//Width is the number of nodes in the most populated level.
	Width() uint
	InOrder() []T
	PreOrder() []T
	PostOrder() []T
	//ByLevel returns the elements in breadth first order, left to right
	//inside a level.
	ByLevel() []T
	//Corrupt returns whether the tree violates the ordering, parent links,
	//size count, or contains a cycle.
	Corrupt() bool
}

// EmptyTreeError is returned when an operation needs at least one element.
type EmptyTreeError struct {
	Op string
}

func (e *EmptyTreeError) Error() string {
	return "Tree is Empty: cannot get " + e.Op + "."
}

// CapacityError is the panic value when a tree needs more slots than its
// index type can address.
type CapacityError struct {
	Max uint64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Tree is Full: index type holds at most %d elements.", e.Max)
}
