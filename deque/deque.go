package deque

import (
	"fmt"

	"github.com/npillmayer/cons/maybe"
)

// ref is a handle to a node in the deque's arena.
type ref int32

// nilRef is the null sentinel for handles.
const nilRef ref = -1

// borrow ledger states for a node: 0 is unborrowed, n>0 counts live shared
// views, exclusively counts one live mutable view.
const exclusively int32 = -1

type node[T any] struct {
	elem   T
	next   ref
	prev   ref
	borrow int32
}

// Deque is a double-ended queue over a chain of arena-allocated nodes.
//
// Invariants, holding after every public operation: for every node n in the
// chain, n.next = m implies m.prev = n and vice versa; the head node's prev
// and the tail node's next are always null.
type Deque[T any] struct {
	props
	arena  []node[T]
	free   ref // head of the free list, linked through next
	head   ref
	tail   ref
	length int
}

// New creates an empty deque, with options, if you need any.
// Use it like this:
//
//     d := deque.New[int](deque.InitialCapacity(64))
//
func New[T any](opts ...Option) *Deque[T] {
	d := &Deque[T]{head: nilRef, tail: nilRef, free: nilRef}
	for _, option := range opts {
		d.props = option.config(d.props)
	}
	if d.capacity > 0 {
		d.arena = make([]node[T], 0, d.capacity)
	}
	return d
}

type props struct {
	capacity int
}

// Option is a type to help initializing deques at creation time.
type Option struct {
	config func(props) props
}

// InitialCapacity is an option to pre-size the node arena.
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

// Len returns the number of elements in the deque.
func (d *Deque[T]) Len() int {
	return d.length
}

// Empty is true iff the deque holds no elements.
func (d *Deque[T]) Empty() bool {
	return d.head == nilRef
}

// PushFront splices a new node in at the front.
func (d *Deque[T]) PushFront(elem T) {
	r := d.alloc(elem)
	if d.head == nilRef {
		d.head = r
		d.tail = r
	} else {
		d.arena[d.head].prev = r
		d.arena[r].next = d.head
		d.head = r
	}
	d.length++
	tracer().Debugf("pushed %v at front, length now %d", elem, d.length)
}

// PushBack splices a new node in at the back.
func (d *Deque[T]) PushBack(elem T) {
	r := d.alloc(elem)
	if d.tail == nilRef {
		d.head = r
		d.tail = r
	} else {
		d.arena[d.tail].next = r
		d.arena[r].prev = d.tail
		d.tail = r
	}
	d.length++
	tracer().Debugf("pushed %v at back, length now %d", elem, d.length)
}

// PopFront detaches the front node and returns its element, or Nothing for
// an empty deque. The node must not have a live view on it; a borrowed node
// at detachment is an internal-consistency failure.
func (d *Deque[T]) PopFront() maybe.Maybe[T] {
	if d.head == nilRef {
		return maybe.Nothing[T]()
	}
	r := d.head
	assertThat(d.arena[r].borrow == 0, "detaching front node with a live view on it")
	next := d.arena[r].next
	if next == nilRef {
		d.tail = nilRef
	} else {
		d.arena[next].prev = nilRef
	}
	d.head = next
	elem := d.arena[r].elem
	d.release(r)
	d.length--
	return maybe.Just(elem)
}

// PopBack detaches the back node and returns its element, or Nothing for an
// empty deque.
func (d *Deque[T]) PopBack() maybe.Maybe[T] {
	if d.tail == nilRef {
		return maybe.Nothing[T]()
	}
	r := d.tail
	assertThat(d.arena[r].borrow == 0, "detaching back node with a live view on it")
	prev := d.arena[r].prev
	if prev == nilRef {
		d.head = nilRef
	} else {
		d.arena[prev].next = nilRef
	}
	d.tail = prev
	elem := d.arena[r].elem
	d.release(r)
	d.length--
	return maybe.Just(elem)
}

// Drop empties the deque by popping from the front until nothing is left,
// checking the borrow ledger for every node on the way out, and releases the
// arena. Teardown never recurses per element.
func (d *Deque[T]) Drop() {
	for d.head != nilRef {
		d.PopFront()
	}
	d.length = 0
	d.arena = nil
	d.free = nilRef
}

// --- Arena -----------------------------------------------------------------

func (d *Deque[T]) alloc(elem T) ref {
	if d.free != nilRef {
		r := d.free
		d.free = d.arena[r].next
		d.arena[r] = node[T]{elem: elem, next: nilRef, prev: nilRef}
		return r
	}
	d.arena = append(d.arena, node[T]{elem: elem, next: nilRef, prev: nilRef})
	return ref(len(d.arena) - 1)
}

func (d *Deque[T]) release(r ref) {
	var none T
	d.arena[r] = node[T]{elem: none, next: d.free, prev: nilRef}
	d.free = r
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("deque: "+msg, msgargs...)
		panic(msg)
	}
}
