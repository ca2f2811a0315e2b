/*
Package maybe provides an optional type in the tradition of Elm's Maybe and
Haskell's Data.Maybe. The list variants in this module use it for every
operation that may find nothing present: popping or peeking at an empty
container yields Nothing, never an error and never a panic.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe represents an optional value: either Just a value, or Nothing.
type Maybe[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, bool)
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a present value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing represents an absent value.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

// Unwrap returns the contained value together with a presence flag, the
// Go-flavoured accessor analogous to a map lookup or type assertion.
// For Nothing, the zero value of T is returned.
func (m maybe[T]) Unwrap() (T, bool) {
	return m.value, m.tag
}

// WithDefault returns the contained value, or def for Nothing.
func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

// Map applies f to a present value; Nothing stays Nothing.
func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

// IsNothing is true iff x carries no value.
func IsNothing[T any](x Maybe[T]) bool {
	_, ok := x.Unwrap()
	return !ok
}

// Map applies f to a present value, possibly changing the value's type.
func Map[T, S any](f func(T) S, x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return Just(f(v))
	}
	return Nothing[S]()
}

// AndThen chains computations which may each fail to produce a value.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	if v, ok := x.Unwrap(); ok {
		return f(v)
	}
	return Nothing[S]()
}

// --- Matching --------------------------------------------------------------

// Matcher supports an Elm-like case distinction on a Maybe:
//
//     var v int
//     switch m := x.Match(); m {
//     case m.Just(&v):
//         …    // v has been set
//     case m.Nothing():
//         …
//     }
//
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
