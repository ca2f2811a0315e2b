/*
Package result provides a Result type for computations that may fail, in the
tradition of Elm's Result and Rust's std::result. The checked deque uses it
for its non-panicking borrow operations: a failed borrow is reported as an
Err carrying a sentinel error instead of aborting the caller.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package result

// Result is the outcome of a computation that may fail: either Ok with a
// value, or Err with an error.
type Result[T any] interface {
	Match() Matcher[T]
	Unwrap() (T, error)
}

type result[T any] struct {
	value T
	err   error
}

// Ok wraps a successful value.
func Ok[T any](x T) Result[T] {
	return result[T]{value: x}
}

// Err wraps a failure.
func Err[T any](err error) Result[T] {
	return result[T]{err: err}
}

func (r result[T]) Match() Matcher[T] {
	return matcher[T]{r: r}
}

// Unwrap returns the value and error as an ordinary Go pair. For Err results
// the zero value of T is returned together with the error.
func (r result[T]) Unwrap() (T, error) {
	return r.value, r.err
}

// Map applies f to the value of an Ok result; an Err passes through.
func Map[T, S any](f func(T) S, x Result[T]) Result[S] {
	v, err := x.Unwrap()
	if err != nil {
		return Err[S](err)
	}
	return Ok(f(v))
}

// IsOk is true iff x is an Ok result.
func IsOk[T any](x Result[T]) bool {
	_, err := x.Unwrap()
	return err == nil
}

// --- Matching --------------------------------------------------------------

// Matcher supports a case distinction on a Result, in the same style as
// package maybe.
type Matcher[T any] interface {
	Ok(*T) Matcher[T]
	Err(*error) Matcher[T]
}

type matcher[T any] struct {
	r result[T]
}

func (rm matcher[T]) Ok(v *T) Matcher[T] {
	if rm.r.err == nil {
		*v = rm.r.value
		return rm
	}
	return nil
}

func (rm matcher[T]) Err(err *error) Matcher[T] {
	if rm.r.err != nil {
		*err = rm.r.err
		return rm
	}
	return nil
}
