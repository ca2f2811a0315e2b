package queue

import (
	"fmt"

	"github.com/npillmayer/cons/maybe"
)

// ref is a handle to a node in the queue's arena. Handles are stable over
// the lifetime of the node they address, unlike raw pointers into a slice
// that may be re-allocated on growth.
type ref int32

// nilRef is the null sentinel for handles.
const nilRef ref = -1

type node[T any] struct {
	elem T
	next ref
}

// Queue is a FIFO queue over a chain of arena-allocated nodes. head is the
// owning entry into the chain; tail caches the handle of the last node.
//
// Invariant: tail is nilRef if and only if head is nilRef; for a non-empty
// queue, tail addresses the last node reachable from head.
type Queue[T any] struct {
	props
	arena  []node[T]
	free   ref // head of the free list, linked through next
	head   ref
	tail   ref
	length int
}

// New creates an empty queue, with options, if you need any.
// Use it like this:
//
//     q := queue.New[int](queue.InitialCapacity(64))
//
func New[T any](opts ...Option) *Queue[T] {
	q := &Queue[T]{head: nilRef, tail: nilRef, free: nilRef}
	for _, option := range opts {
		q.props = option.config(q.props)
	}
	if q.capacity > 0 {
		q.arena = make([]node[T], 0, q.capacity)
	}
	return q
}

type props struct {
	capacity int
}

// Option is a type to help initializing queues at creation time.
type Option struct {
	config func(props) props
}

// InitialCapacity is an option to pre-size the node arena, avoiding
// re-allocation while the queue grows to the expected length.
func InitialCapacity(n int) Option {
	conf := func(p props) props {
		if n < 0 {
			n = 0
		}
		p.capacity = n
		return p
	}
	return Option{config: conf}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the queue.
func (q *Queue[T]) Len() int {
	return q.length
}

// Empty is true iff the queue holds no elements.
func (q *Queue[T]) Empty() bool {
	return q.head == nilRef
}

// Push appends an element at the back of the queue in O(1). The new node's
// handle is obtained before it is linked into the chain; linking writes
// through the cached tail handle, which is valid by the queue's invariant.
func (q *Queue[T]) Push(elem T) {
	r := q.alloc(elem)
	if q.tail == nilRef {
		q.head = r
	} else {
		q.arena[q.tail].next = r
	}
	q.tail = r
	q.length++
	tracer().Debugf("pushed %v at handle %d, length now %d", elem, r, q.length)
}

// Pop removes and returns the front element, or Nothing for an empty queue.
func (q *Queue[T]) Pop() maybe.Maybe[T] {
	if q.head == nilRef {
		return maybe.Nothing[T]()
	}
	assertThat(q.length > 0, "inconsistency: non-empty chain with length %d", q.length)
	r := q.head
	elem := q.arena[r].elem
	q.head = q.arena[r].next
	if q.head == nilRef {
		// last node leaves: the cached tail must not outlive it
		q.tail = nilRef
	}
	q.release(r)
	q.length--
	return maybe.Just(elem)
}

// Peek returns the front element without removing it, or Nothing for an
// empty queue.
func (q *Queue[T]) Peek() maybe.Maybe[T] {
	if q.head == nilRef {
		return maybe.Nothing[T]()
	}
	return maybe.Just(q.arena[q.head].elem)
}

// PeekMut returns a pointer to the front element for in-place modification,
// or nil for an empty queue. The pointer is valid until the next Push or
// Pop.
func (q *Queue[T]) PeekMut() *T {
	if q.head == nilRef {
		return nil
	}
	return &q.arena[q.head].elem
}

// Drop empties the queue by detaching the front node in a loop, one node per
// step, and releases the arena. Teardown never recurses per element.
func (q *Queue[T]) Drop() {
	for q.head != nilRef {
		r := q.head
		q.head = q.arena[r].next
		q.release(r)
	}
	q.tail = nilRef
	q.length = 0
	q.arena = nil
	q.free = nilRef
}

// --- Arena -----------------------------------------------------------------

// alloc takes a node from the free list, or extends the arena, and returns
// the new node's handle. The node's next link starts out null.
func (q *Queue[T]) alloc(elem T) ref {
	if q.free != nilRef {
		r := q.free
		q.free = q.arena[r].next
		q.arena[r] = node[T]{elem: elem, next: nilRef}
		return r
	}
	q.arena = append(q.arena, node[T]{elem: elem, next: nilRef})
	return ref(len(q.arena) - 1)
}

// release returns a node to the free list, dropping its payload so the
// element value does not linger in the arena.
func (q *Queue[T]) release(r ref) {
	var none T
	q.arena[r] = node[T]{elem: none, next: q.free}
	q.free = r
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("queue: "+msg, msgargs...)
		panic(msg)
	}
}
