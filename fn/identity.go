package fn

// Identity is the simplest container variant: it wraps exactly one
// value and adds no semantics beyond the capability contract itself.
// It exists mostly to make the laws easy to state and to serve as the
// degenerate base case when testing code that is generic over
// containers.
type Identity[A any] struct {
	v A
}

// NewIdentity lifts a value into the Identity container. It is the of
// capability for this variant.
func NewIdentity[A any](a A) Identity[A] {
	return Identity[A]{v: a}
}

// Unwrap returns the contained value.
func (i Identity[A]) Unwrap() A {
	return i.v
}

// MapIdentity is the functor capability for Identity.
func MapIdentity[A, B any](f func(A) B) func(Identity[A]) Identity[B] {
	return func(i Identity[A]) Identity[B] {
		return NewIdentity(f(i.v))
	}
}

// ApIdentity is the applicative capability for Identity.
func ApIdentity[A, B any](f Identity[func(A) B], a Identity[A]) Identity[B] {
	return NewIdentity(f.v(a.v))
}

// ChainIdentity is the monad capability for Identity.
func ChainIdentity[A, B any](f func(A) Identity[B]) func(Identity[A]) Identity[B] {
	return func(i Identity[A]) Identity[B] {
		return f(i.v)
	}
}
