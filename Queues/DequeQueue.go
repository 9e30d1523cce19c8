package Queues

import "github.com/gammazero/deque"

// dequeQ adapts a deque.Deque to Queue. Items are pushed at the back and
// popped from the front.
type dequeQ[T any] struct {
	d *deque.Deque[T]
}

// MakeDequeQueue returns a Queue whose storage is a deque.Deque. initCap is
// the minimum capacity kept by the deque.
func MakeDequeQueue[T any](initCap uint) Queue[T] {
	return &dequeQ[T]{deque.New[T](0, int(initCap))}
}

func (u *dequeQ[T]) Push(item T) {
	u.d.PushBack(item)
}

func (u *dequeQ[T]) Pop() (T, error) {
	if u.d.Len() == 0 {
		return *new(T), &EmptyQueueError{"Pop"}
	}
	return u.d.PopFront(), nil
}

func (u *dequeQ[T]) Peek() (T, error) {
	if u.d.Len() == 0 {
		return *new(T), &EmptyQueueError{"Peek"}
	}
	return u.d.Front(), nil
}

func (u *dequeQ[T]) Empty() bool {
	return u.d.Len() == 0
}

func (u *dequeQ[T]) Size() uint {
	return uint(u.d.Len())
}
