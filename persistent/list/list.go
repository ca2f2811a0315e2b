package list

import (
	"fmt"
	"strings"

	"github.com/npillmayer/cons/maybe"
)

// node is a cell of a persistent list. Nodes are never mutated after
// creation (except for their reference count); any number of lists may hold
// a node in their chain.
type node[T any] struct {
	elem T
	next *node[T]
	refs int // number of owners: lists with this node as head, plus a predecessor node
}

// List is an immutable singly-linked list with structural sharing. The zero
// value is the empty list. Lists derived with Prepend, Tail or Clone own one
// reference to their head node; pass such a list to Release when it goes out
// of use to give the reference back. Overwriting a list value without
// releasing it strands its reference: the garbage collector still reclaims
// the memory eventually, but a sibling's Release will then stop early at the
// stranded node.
type List[T any] struct {
	head   *node[T]
	length int
}

// Empty creates an empty list.
func Empty[T any]() List[T] {
	return List[T]{}
}

// --- API -------------------------------------------------------------------

// Len returns the number of elements in the list.
func (l List[T]) Len() int {
	return l.length
}

// IsEmpty is true iff the list holds no elements.
func (l List[T]) IsEmpty() bool {
	return l.head == nil
}

// Prepend returns a new list with elem in front of the receiver's elements.
// The receiver is left fully intact: the new list's head node points at the
// receiver's chain, shared, not copied. This is the sole mutation-like
// operation, and it never touches an existing node.
func (l List[T]) Prepend(elem T) List[T] {
	if l.head != nil {
		l.head.refs++ // the new node becomes an additional owner
	}
	n := &node[T]{elem: elem, next: l.head, refs: 1}
	tracer().Debugf("prepended %v, sharing a chain of %d nodes", elem, l.length)
	return List[T]{head: n, length: l.length + 1}
}

// Head returns the first element, or Nothing for an empty list.
func (l List[T]) Head() maybe.Maybe[T] {
	if l.head == nil {
		return maybe.Nothing[T]()
	}
	return maybe.Just(l.head.elem)
}

// Tail returns a list of everything after the first element, sharing the
// receiver's nodes. O(1). The tail of an empty list is the empty list.
func (l List[T]) Tail() List[T] {
	if l.head == nil {
		return List[T]{}
	}
	next := l.head.next
	if next != nil {
		next.refs++ // the returned list becomes an additional owner
	}
	return List[T]{head: next, length: l.length - 1}
}

// Clone returns the receiver as an additional owner of its chain. Use it
// when a list value is handed to a second independent holder which will
// Release it separately.
func (l List[T]) Clone() List[T] {
	if l.head != nil {
		l.head.refs++
	}
	return l
}

// Refs returns the number of owners of the list's head node, 0 for an empty
// list. Meant for inspecting sharing; a freshly prepended head has 1 owner.
func (l List[T]) Refs() int {
	if l.head == nil {
		return 0
	}
	return l.head.refs
}

// Release gives back the list's reference to its chain. Nodes are walked
// iteratively and reclaimed one by one until a node is found that is still
// owned elsewhere (as head of a sibling list, or by a predecessor node in a
// shared chain); the rest of the chain stays intact for its other owners.
// A released list is empty. Release on the empty list is a no-op.
func (l *List[T]) Release() {
	n := l.head
	l.head = nil
	l.length = 0
	freed := 0
	for n != nil {
		assertThat(n.refs > 0, "reference count underflow on node ⟨%v⟩", n.elem)
		n.refs--
		if n.refs > 0 {
			// shared with another owner: hands off the rest of the chain
			tracer().Debugf("release stopped at shared node ⟨%v⟩ after freeing %d nodes", n.elem, freed)
			return
		}
		next := n.next
		n.next = nil
		n = next
		freed++
	}
	tracer().Debugf("release freed a whole chain of %d nodes", freed)
}

// --- Iteration -------------------------------------------------------------

// Iter returns an iterator over the list's elements, front to back. The
// sequence is restartable: every call to Iter starts a fresh walk over the
// shared nodes.
func (l List[T]) Iter() *Iter[T] {
	return &Iter[T]{cur: l.head}
}

// Iter is a read-only iterator over a list.
type Iter[T any] struct {
	cur *node[T]
}

func (it *Iter[T]) Next() (T, bool) {
	if it.cur == nil {
		var none T
		return none, false
	}
	elem := it.cur.elem
	it.cur = it.cur.next
	return elem, true
}

// --- Helpers ---------------------------------------------------------------

func (l List[T]) String() string {
	b := strings.Builder{}
	b.WriteByte('[')
	for n := l.head; n != nil; n = n.next {
		if n != l.head {
			b.WriteByte(',')
		}
		b.WriteString(fmt.Sprintf("%v", n.elem))
	}
	b.WriteByte(']')
	return b.String()
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("list: "+msg, msgargs...)
		panic(msg)
	}
}
