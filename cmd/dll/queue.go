package dll

// Queue is a FIFO queue backed by a List.
type Queue[T any] struct {
	list List[T]
}

func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

func (q *Queue[T]) Enqueue(item T) {
	q.list.PushBack(item)
}

func (q *Queue[T]) Dequeue() (T, bool) {
	return q.list.PopFront()
}

func (q *Queue[T]) Peek() (T, bool) {
	return q.list.Front()
}

func (q *Queue[T]) Len() int {
	return q.list.Len()
}
