package deque

import (
	"errors"

	"github.com/npillmayer/cons/maybe"
	"github.com/npillmayer/cons/result"
)

// ErrBorrowed is reported by TryPeekFrontMut/TryPeekBackMut when the node's
// payload already has a live view of any kind.
var ErrBorrowed = errors.New("node payload already borrowed")

// ErrMutablyBorrowed is reported by TryPeekFront/TryPeekBack when the node's
// payload has a live mutable view.
var ErrMutablyBorrowed = errors.New("node payload already mutably borrowed")

// ErrEmpty is reported by the TryPeek variants on an empty deque.
var ErrEmpty = errors.New("deque is empty")

// --- Views -----------------------------------------------------------------

// Ref is a scoped shared view of a node's payload. It keeps a shared entry
// in the node's borrow ledger from creation until Release; while any Ref of
// a node is live, no mutable view of that node can be obtained, and the node
// cannot be popped.
type Ref[T any] struct {
	deque    *Deque[T]
	at       ref
	released bool
}

// Value reads the viewed payload.
func (v *Ref[T]) Value() T {
	assertThat(!v.released, "use of released view")
	return v.deque.arena[v.at].elem
}

// Release ends the view, removing its ledger entry. Releasing twice is a
// no-op.
func (v *Ref[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.deque.arena[v.at].borrow--
}

// RefMut is a scoped exclusive view of a node's payload. While it is live,
// no other view of the node can be obtained and the node cannot be popped.
type RefMut[T any] struct {
	deque    *Deque[T]
	at       ref
	released bool
}

// Get reads the viewed payload.
func (v *RefMut[T]) Get() T {
	assertThat(!v.released, "use of released view")
	return v.deque.arena[v.at].elem
}

// Set overwrites the viewed payload.
func (v *RefMut[T]) Set(elem T) {
	assertThat(!v.released, "use of released view")
	v.deque.arena[v.at].elem = elem
}

// Release ends the view, removing its ledger entry. Releasing twice is a
// no-op.
func (v *RefMut[T]) Release() {
	if v.released {
		return
	}
	v.released = true
	v.deque.arena[v.at].borrow = 0
}

// --- Ledger ----------------------------------------------------------------

// borrowShared takes a shared ledger entry on a node, or reports why it
// cannot.
func (d *Deque[T]) borrowShared(at ref) error {
	if d.arena[at].borrow == exclusively {
		return ErrMutablyBorrowed
	}
	d.arena[at].borrow++
	return nil
}

// borrowMut takes the exclusive ledger entry on a node, or reports why it
// cannot.
func (d *Deque[T]) borrowMut(at ref) error {
	if d.arena[at].borrow != 0 {
		return ErrBorrowed
	}
	d.arena[at].borrow = exclusively
	return nil
}

// --- Peeks -----------------------------------------------------------------

// PeekFront returns a shared view of the front element, or Nothing for an
// empty deque. Panics if the front node's payload is mutably borrowed.
func (d *Deque[T]) PeekFront() maybe.Maybe[*Ref[T]] {
	if d.head == nilRef {
		return maybe.Nothing[*Ref[T]]()
	}
	err := d.borrowShared(d.head)
	assertThat(err == nil, "front: %v", err)
	return maybe.Just(&Ref[T]{deque: d, at: d.head})
}

// PeekBack returns a shared view of the back element, or Nothing for an
// empty deque. Panics if the back node's payload is mutably borrowed.
func (d *Deque[T]) PeekBack() maybe.Maybe[*Ref[T]] {
	if d.tail == nilRef {
		return maybe.Nothing[*Ref[T]]()
	}
	err := d.borrowShared(d.tail)
	assertThat(err == nil, "back: %v", err)
	return maybe.Just(&Ref[T]{deque: d, at: d.tail})
}

// PeekFrontMut returns an exclusive view of the front element, or Nothing
// for an empty deque. Panics if the front node's payload has any live view.
func (d *Deque[T]) PeekFrontMut() maybe.Maybe[*RefMut[T]] {
	if d.head == nilRef {
		return maybe.Nothing[*RefMut[T]]()
	}
	err := d.borrowMut(d.head)
	assertThat(err == nil, "front: %v", err)
	return maybe.Just(&RefMut[T]{deque: d, at: d.head})
}

// PeekBackMut returns an exclusive view of the back element, or Nothing for
// an empty deque. Panics if the back node's payload has any live view.
func (d *Deque[T]) PeekBackMut() maybe.Maybe[*RefMut[T]] {
	if d.tail == nilRef {
		return maybe.Nothing[*RefMut[T]]()
	}
	err := d.borrowMut(d.tail)
	assertThat(err == nil, "back: %v", err)
	return maybe.Just(&RefMut[T]{deque: d, at: d.tail})
}

// TryPeekFront is PeekFront with the aliasing failure reported instead of
// raised: it returns ErrEmpty for an empty deque and ErrMutablyBorrowed if
// the front payload has a live mutable view.
func (d *Deque[T]) TryPeekFront() result.Result[*Ref[T]] {
	if d.head == nilRef {
		return result.Err[*Ref[T]](ErrEmpty)
	}
	if err := d.borrowShared(d.head); err != nil {
		return result.Err[*Ref[T]](err)
	}
	return result.Ok(&Ref[T]{deque: d, at: d.head})
}

// TryPeekBack is PeekBack with the aliasing failure reported instead of
// raised.
func (d *Deque[T]) TryPeekBack() result.Result[*Ref[T]] {
	if d.tail == nilRef {
		return result.Err[*Ref[T]](ErrEmpty)
	}
	if err := d.borrowShared(d.tail); err != nil {
		return result.Err[*Ref[T]](err)
	}
	return result.Ok(&Ref[T]{deque: d, at: d.tail})
}

// TryPeekFrontMut is PeekFrontMut with the aliasing failure reported instead
// of raised: it returns ErrEmpty for an empty deque and ErrBorrowed if the
// front payload has any live view.
func (d *Deque[T]) TryPeekFrontMut() result.Result[*RefMut[T]] {
	if d.head == nilRef {
		return result.Err[*RefMut[T]](ErrEmpty)
	}
	if err := d.borrowMut(d.head); err != nil {
		return result.Err[*RefMut[T]](err)
	}
	return result.Ok(&RefMut[T]{deque: d, at: d.head})
}

// TryPeekBackMut is PeekBackMut with the aliasing failure reported instead
// of raised.
func (d *Deque[T]) TryPeekBackMut() result.Result[*RefMut[T]] {
	if d.tail == nilRef {
		return result.Err[*RefMut[T]](ErrEmpty)
	}
	if err := d.borrowMut(d.tail); err != nil {
		return result.Err[*RefMut[T]](err)
	}
	return result.Ok(&RefMut[T]{deque: d, at: d.tail})
}
