/*
Package cons is a collection of linked-list variants, each exploring a
different ownership and aliasing strategy for a self-referential data
structure: an exclusively owned stack, a structurally shared persistent list,
a queue with a cached tail handle, and a doubly-linked deque with
runtime-checked access to node payloads.

The variants are independent container types and do not interoperate; what
they share is the sequence contract defined in this package, which every
iterator over list elements implements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cons

// Seq is a lazy, finite sequence of values. Next returns the next value of
// the sequence, together with a flag signalling whether a value was present.
// After a sequence is exhausted, every further call to Next will continue to
// return ok=false.
type Seq[T any] interface {
	Next() (T, bool)
}

// Collect drains a sequence into a slice.
func Collect[T any](seq Seq[T]) []T {
	var r []T
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		r = append(r, v)
	}
	return r
}

// Each applies f to every remaining value of a sequence, in order.
func Each[T any](seq Seq[T], f func(T)) {
	for v, ok := seq.Next(); ok; v, ok = seq.Next() {
		f(v)
	}
}
