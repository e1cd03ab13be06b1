package fn

import "fmt"

// Result is the possibly-erred container variant: it holds either a
// value of type A or the error that prevented the value from being
// produced. It packages go's customary (A, error) pair as a single
// value that can flow through map, ap and chain.
type Result[A any] struct {
	value A
	err   error
}

// Ok lifts a value into a successful Result. It is the of capability
// for this variant.
func Ok[A any](a A) Result[A] {
	return Result[A]{value: a}
}

// Err constructs a failed Result from an error.
func Err[A any](err error) Result[A] {
	return Result[A]{err: err}
}

// Errf constructs a failed Result from a format string.
func Errf[A any](format string, args ...any) Result[A] {
	return Result[A]{err: fmt.Errorf(format, args...)}
}

// NewResult packages the return values of a conventional go call into
// a Result. A non-nil error takes precedence over the value.
func NewResult[A any](a A, err error) Result[A] {
	if err != nil {
		return Err[A](err)
	}

	return Ok(a)
}

// Unpack ejects the Result back into go's customary multiple return
// values.
func (r Result[A]) Unpack() (A, error) {
	return r.value, r.err
}

// IsOk returns true if the Result holds a value.
func (r Result[A]) IsOk() bool {
	return r.err == nil
}

// IsErr returns true if the Result holds an error.
func (r Result[A]) IsErr() bool {
	return r.err != nil
}

// Err returns the contained error, or nil for a successful Result.
func (r Result[A]) Err() error {
	return r.err
}

// UnwrapOr extracts the value, falling back to the argument when the
// Result holds an error.
func (r Result[A]) UnwrapOr(a A) A {
	if r.err != nil {
		return a
	}

	return r.value
}

// OkToSome converts a Result into an Option, discarding the error
// information.
func (r Result[A]) OkToSome() Option[A] {
	if r.err != nil {
		return None[A]()
	}

	return Some(r.value)
}

// ElimResult collapses a Result into a single value by handling both
// the success and the failure case.
func ElimResult[A, B any](r Result[A], f func(A) B, g func(error) B) B {
	if r.err != nil {
		return g(r.err)
	}

	return f(r.value)
}

// MapResult is the functor capability for Result: it transforms the
// contained value and passes an error through untouched.
func MapResult[A, B any](f func(A) B) func(Result[A]) Result[B] {
	return func(r Result[A]) Result[B] {
		if r.err != nil {
			return Err[B](r.err)
		}

		return Ok(f(r.value))
	}
}

// ApResult is the applicative capability for Result. The first error
// encountered, scanning the function operand before the argument
// operand, wins and becomes the result.
func ApResult[A, B any](rf Result[func(A) B], ra Result[A]) Result[B] {
	if rf.err != nil {
		return Err[B](rf.err)
	}

	if ra.err != nil {
		return Err[B](ra.err)
	}

	return Ok(rf.value(ra.value))
}

// ChainResult is the monad capability for Result: it sequences a
// computation that may itself fail.
func ChainResult[A, B any](f func(A) Result[B]) func(Result[A]) Result[B] {
	return func(r Result[A]) Result[B] {
		if r.err != nil {
			return Err[B](r.err)
		}

		return f(r.value)
	}
}

// AndThen chains a conventional go function onto a Result, packaging
// its return values with NewResult. It spares call sites a closure
// when the next step follows the (B, error) convention.
func AndThen[A, B any](r Result[A], f func(A) (B, error)) Result[B] {
	if r.err != nil {
		return Err[B](r.err)
	}

	return NewResult(f(r.value))
}

// FlattenResult collapses a nested Result by one level. The outer
// error wins when both levels fail.
func FlattenResult[A any](r Result[Result[A]]) Result[A] {
	if r.err != nil {
		return Err[A](r.err)
	}

	return r.value
}

// LiftA2Result combines two Results with a curried binary function,
// short-circuiting to the first error.
func LiftA2Result[A, B, C any](
	f func(A) func(B) C) func(Result[A]) func(Result[B]) Result[C] {

	return func(ra Result[A]) func(Result[B]) Result[C] {
		return func(rb Result[B]) Result[C] {
			return ApResult(MapResult(f)(ra), rb)
		}
	}
}
