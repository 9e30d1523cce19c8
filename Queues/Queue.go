package Queues

// Queue is a strict FIFO container. Items come out of Pop in the order they
// went into Push. Pop and Peek on an empty queue return an *EmptyQueueError.
type Queue[T any] interface {
	//Push item to the back of the queue.
	Push(item T)
	//Pop removes and returns the item at the front.
	Pop() (T, error)
	//Peek returns the item at the front without removing it.
	Peek() (T, error)
	Empty() bool
	Size() uint
}

type ArrayQueue[T any] interface {
	Queue[T]
	//Shrink the underlying array to fit the current content.
	Shrink()
	//Clear the queue without releasing the underlying array.
	Clear()
	resize(newLen uint)
}

type EmptyQueueError struct {
	Op string
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot " + e.Op + "."
}
