package queue

// Drain returns a consuming iterator: every call to Next pops the front
// element. The queue is empty once the iterator is exhausted.
func (q *Queue[T]) Drain() *Drain[T] {
	return &Drain[T]{queue: q}
}

// Drain is a one-shot consuming iterator over a queue, front to back.
type Drain[T any] struct {
	queue *Queue[T]
}

func (it *Drain[T]) Next() (T, bool) {
	return it.queue.Pop().Unwrap()
}

// Iter returns a non-consuming iterator over the queue's elements, front to
// back. The queue must not be mutated while the iterator is in use.
func (q *Queue[T]) Iter() *Iter[T] {
	return &Iter[T]{queue: q, cur: q.head}
}

// Iter is a read-only iterator over a queue.
type Iter[T any] struct {
	queue *Queue[T]
	cur   ref
}

func (it *Iter[T]) Next() (T, bool) {
	if it.cur == nilRef {
		var none T
		return none, false
	}
	n := &it.queue.arena[it.cur]
	it.cur = n.next
	return n.elem, true
}

// IterMut returns an iterator handing out a pointer to each element in turn,
// front to back, for in-place modification. At most one element pointer is
// live at a time: each call to Next advances past the previously returned
// element, and the iterator never re-derives a pointer to a node it has
// passed. The queue must not be pushed to or popped from while the iterator
// is in use (arena growth would invalidate outstanding element pointers).
func (q *Queue[T]) IterMut() *IterMut[T] {
	return &IterMut[T]{queue: q, cur: q.head}
}

// IterMut is a mutating iterator over a queue.
type IterMut[T any] struct {
	queue *Queue[T]
	cur   ref
}

func (it *IterMut[T]) Next() (*T, bool) {
	if it.cur == nilRef {
		return nil, false
	}
	n := &it.queue.arena[it.cur]
	it.cur = n.next
	return &n.elem, true
}
