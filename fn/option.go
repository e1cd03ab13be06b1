package fn

// Option represents a value that may or may not be present. It is the
// possibly-absent container variant: every operation on an Option
// produces another Option, and absence short-circuits the whole
// computation.
type Option[A any] struct {
	isSome bool
	some   A
}

// Some lifts a value into the Option. It is the of capability for this
// variant.
func Some[A any](a A) Option[A] {
	return Option[A]{
		isSome: true,
		some:   a,
	}
}

// None constructs an empty Option.
func None[A any]() Option[A] {
	return Option[A]{}
}

// SomeIf lifts a value when the condition holds and produces None
// otherwise.
func SomeIf[A any](cond bool, a A) Option[A] {
	if !cond {
		return None[A]()
	}

	return Some(a)
}

// OptionFromPtr bridges go's nil-pointer convention into an Option,
// dereferencing non-nil pointers.
func OptionFromPtr[A any](a *A) Option[A] {
	if a == nil {
		return None[A]()
	}

	return Some(*a)
}

// IsSome returns true if the Option contains a value.
func (o Option[A]) IsSome() bool {
	return o.isSome
}

// IsNone returns true if the Option is empty.
func (o Option[A]) IsNone() bool {
	return !o.isSome
}

// UnwrapOr is used to extract a value from an option, and we supply
// the default value in the case when the Option is empty.
func (o Option[A]) UnwrapOr(a A) A {
	if o.isSome {
		return o.some
	}

	return a
}

// UnwrapOrFunc is like UnwrapOr but the default is computed lazily,
// only when the Option turns out to be empty.
func (o Option[A]) UnwrapOrFunc(f func() A) A {
	if o.isSome {
		return o.some
	}

	return f()
}

// Ptr returns a pointer to the contained value, or nil when the Option
// is empty.
func (o Option[A]) Ptr() *A {
	if !o.isSome {
		return nil
	}

	return &o.some
}

// WhenSome executes the given function if the Option contains a value.
func (o Option[A]) WhenSome(f func(A)) {
	if o.isSome {
		f(o.some)
	}
}

// WhenNone executes the given function if the Option is empty.
func (o Option[A]) WhenNone(f func()) {
	if !o.isSome {
		f()
	}
}

// Alt returns the receiver when it contains a value and the argument
// otherwise.
func (o Option[A]) Alt(o2 Option[A]) Option[A] {
	if o.isSome {
		return o
	}

	return o2
}

// ElimOption is the universal Option eliminator: it collapses an
// Option into a single value by handling both the empty and the
// populated case.
func ElimOption[A, B any](o Option[A], b func() B, f func(A) B) B {
	if o.isSome {
		return f(o.some)
	}

	return b()
}

// MapOption is the functor capability for Option: it transforms the
// contained value if there is one and passes None through untouched.
func MapOption[A, B any](f func(A) B) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if !o.isSome {
			return None[B]()
		}

		return Some(f(o.some))
	}
}

// ApOption is the applicative capability for Option: it applies an
// optional function to an optional argument. If either operand is
// None, the result is None.
func ApOption[A, B any](of Option[func(A) B], oa Option[A]) Option[B] {
	if !of.isSome || !oa.isSome {
		return None[B]()
	}

	return Some(of.some(oa.some))
}

// ChainOption is the monad capability for Option: it sequences a
// computation that itself may come up empty.
func ChainOption[A, B any](f func(A) Option[B]) func(Option[A]) Option[B] {
	return func(o Option[A]) Option[B] {
		if !o.isSome {
			return None[B]()
		}

		return f(o.some)
	}
}

// FlattenOption collapses a nested Option by one level.
func FlattenOption[A any](o Option[Option[A]]) Option[A] {
	if !o.isSome {
		return None[A]()
	}

	return o.some
}

// LiftA2Option combines two Options with a curried binary function.
// The result is None if either operand is None. The helper is itself
// curried so that partially applied forms can be reused.
func LiftA2Option[A, B, C any](
	f func(A) func(B) C) func(Option[A]) func(Option[B]) Option[C] {

	return func(oa Option[A]) func(Option[B]) Option[C] {
		return func(ob Option[B]) Option[C] {
			return ApOption(MapOption(f)(oa), ob)
		}
	}
}

// LiftA3Option combines three Options with a curried ternary function,
// short-circuiting to None on the first empty operand.
func LiftA3Option[A, B, C, D any](
	f func(A) func(B) func(C) D) func(Option[A]) func(Option[B]) func(Option[C]) Option[D] {

	return func(oa Option[A]) func(Option[B]) func(Option[C]) Option[D] {
		return func(ob Option[B]) func(Option[C]) Option[D] {
			return func(oc Option[C]) Option[D] {
				return ApOption(ApOption(MapOption(f)(oa), ob), oc)
			}
		}
	}
}
