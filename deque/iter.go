package deque

// Drain returns a consuming iterator: every call to Next pops the front
// element. The deque is empty once the iterator is exhausted.
func (d *Deque[T]) Drain() *Drain[T] {
	return &Drain[T]{deque: d}
}

// Drain is a one-shot consuming iterator over a deque, front to back.
type Drain[T any] struct {
	deque *Deque[T]
}

func (it *Drain[T]) Next() (T, bool) {
	return it.deque.PopFront().Unwrap()
}

// Iter returns a non-consuming iterator over the deque's elements, front to
// back. Reading an element while a mutable view of it is live is an
// aliasing violation and fails fast. The deque must not be mutated while
// the iterator is in use.
func (d *Deque[T]) Iter() *Iter[T] {
	return &Iter[T]{deque: d, cur: d.head, fwd: true}
}

// RIter returns a non-consuming iterator over the deque's elements, back to
// front.
func (d *Deque[T]) RIter() *Iter[T] {
	return &Iter[T]{deque: d, cur: d.tail}
}

// Iter is a read-only iterator over a deque, in either direction.
type Iter[T any] struct {
	deque *Deque[T]
	cur   ref
	fwd   bool
}

func (it *Iter[T]) Next() (T, bool) {
	if it.cur == nilRef {
		var none T
		return none, false
	}
	n := &it.deque.arena[it.cur]
	assertThat(n.borrow != exclusively, "reading node payload with a live mutable view on it")
	if it.fwd {
		it.cur = n.next
	} else {
		it.cur = n.prev
	}
	return n.elem, true
}
