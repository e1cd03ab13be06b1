package fn

// Either is a disjoint union of a left and a right value. By
// convention the right branch carries the useful result and the left
// branch carries the reason the computation stopped, so the map, ap
// and chain capabilities are right-biased: a Left passes through them
// unchanged.
type Either[L, R any] struct {
	isRight bool
	left    L
	right   R
}

// NewLeft constructs an Either holding a left value.
func NewLeft[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// NewRight constructs an Either holding a right value. It is the of
// capability for this variant.
func NewRight[L, R any](r R) Either[L, R] {
	return Either[L, R]{
		isRight: true,
		right:   r,
	}
}

// IsLeft returns true if the Either holds a left value.
func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if the Either holds a right value.
func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// WhenLeft executes the given function when the Either holds a left
// value.
func (e Either[L, R]) WhenLeft(f func(L)) {
	if !e.isRight {
		f(e.left)
	}
}

// WhenRight executes the given function when the Either holds a right
// value.
func (e Either[L, R]) WhenRight(f func(R)) {
	if e.isRight {
		f(e.right)
	}
}

// LeftOr extracts the left value, falling back to the argument when
// the Either holds a right value.
func (e Either[L, R]) LeftOr(l L) L {
	if e.isRight {
		return l
	}

	return e.left
}

// RightOr extracts the right value, falling back to the argument when
// the Either holds a left value.
func (e Either[L, R]) RightOr(r R) R {
	if !e.isRight {
		return r
	}

	return e.right
}

// Swap exchanges the branches of the Either, turning a Left into a
// Right and vice versa.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return NewLeft[R, L](e.right)
	}

	return NewRight[R, L](e.left)
}

// ElimEither is the universal Either eliminator: it collapses the
// union into a single value by handling both branches.
func ElimEither[L, R, O any](f func(L) O, g func(R) O) func(Either[L, R]) O {
	return func(e Either[L, R]) O {
		if e.isRight {
			return g(e.right)
		}

		return f(e.left)
	}
}

// MapLeft transforms the left value of an Either, passing a Right
// through untouched.
func MapLeft[L, R, O any](f func(L) O) func(Either[L, R]) Either[O, R] {
	return func(e Either[L, R]) Either[O, R] {
		if e.isRight {
			return NewRight[O](e.right)
		}

		return NewLeft[O, R](f(e.left))
	}
}

// MapRight is the functor capability for Either: it transforms the
// right value, passing a Left through untouched.
func MapRight[L, R, O any](f func(R) O) func(Either[L, R]) Either[L, O] {
	return func(e Either[L, R]) Either[L, O] {
		if !e.isRight {
			return NewLeft[L, O](e.left)
		}

		return NewRight[L](f(e.right))
	}
}

// ApEither is the applicative capability for Either. The first Left
// encountered, scanning the function operand before the argument
// operand, wins and becomes the result.
func ApEither[L, A, B any](ef Either[L, func(A) B],
	ea Either[L, A]) Either[L, B] {

	if !ef.isRight {
		return NewLeft[L, B](ef.left)
	}

	if !ea.isRight {
		return NewLeft[L, B](ea.left)
	}

	return NewRight[L](ef.right(ea.right))
}

// ChainEither is the monad capability for Either: it sequences a
// computation that may itself bail out to the left.
func ChainEither[L, A, B any](
	f func(A) Either[L, B]) func(Either[L, A]) Either[L, B] {

	return func(e Either[L, A]) Either[L, B] {
		if !e.isRight {
			return NewLeft[L, B](e.left)
		}

		return f(e.right)
	}
}

// LiftA2Either combines two Eithers with a curried binary function,
// short-circuiting to the first Left.
func LiftA2Either[L, A, B, C any](
	f func(A) func(B) C) func(Either[L, A]) func(Either[L, B]) Either[L, C] {

	return func(ea Either[L, A]) func(Either[L, B]) Either[L, C] {
		return func(eb Either[L, B]) Either[L, C] {
			return ApEither(MapRight[L](f)(ea), eb)
		}
	}
}
