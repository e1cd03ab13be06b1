package fn

// IO is the side-effecting container variant: a deferred synchronous
// computation. Building an IO, or combining IOs with MapIO, ApIO and
// ChainIO, never executes anything; effects run only when the caller
// finally invokes Run. This keeps composition pure and pushes the
// impure boundary to a single, visible call site.
type IO[A any] func() A

// OfIO lifts an already computed value into an IO that simply returns
// it. It is the of capability for this variant.
func OfIO[A any](a A) IO[A] {
	return func() A {
		return a
	}
}

// Run executes the deferred computation and returns its result. This
// is the only way effects described by an IO actually happen.
func (io IO[A]) Run() A {
	return io()
}

// MapIO is the functor capability for IO: the transformation is staged
// after the deferred computation without running it.
func MapIO[A, B any](f func(A) B) func(IO[A]) IO[B] {
	return func(io IO[A]) IO[B] {
		return func() B {
			return f(io())
		}
	}
}

// ApIO is the applicative capability for IO. Running the combined IO
// runs the function operand, then the argument operand, then applies
// one to the other.
func ApIO[A, B any](iof IO[func(A) B], ioa IO[A]) IO[B] {
	return func() B {
		f := iof()
		return f(ioa())
	}
}

// ChainIO is the monad capability for IO: the continuation receives
// the first computation's result and decides what effect runs next.
func ChainIO[A, B any](f func(A) IO[B]) func(IO[A]) IO[B] {
	return func(io IO[A]) IO[B] {
		return func() B {
			return f(io())()
		}
	}
}

// LiftA2IO combines two deferred computations with a curried binary
// function. Both operands run when the combined IO runs, function
// operand first.
func LiftA2IO[A, B, C any](
	f func(A) func(B) C) func(IO[A]) func(IO[B]) IO[C] {

	return func(ioa IO[A]) func(IO[B]) IO[C] {
		return func(iob IO[B]) IO[C] {
			return ApIO(MapIO(f)(ioa), iob)
		}
	}
}
