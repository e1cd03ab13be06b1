package fn

// The helpers in this file recover weaker capabilities from stronger
// ones. A container variant only has to supply a minimal definition —
// of and ap, or of and chain — and derives the rest here instead of
// re-implementing it. Each helper is generic over the concrete
// container types (CA, CB, CF), which go treats as opaque: the variant
// semantics come entirely from the of/ap/chain arguments.

// MapFromAp derives the functor capability from a pointed applicative:
// map(f, ca) = ap(of(f), ca).
func MapFromAp[CA, CB, CF, A, B any](of func(func(A) B) CF,
	ap func(CF, CA) CB) func(func(A) B, CA) CB {

	return func(f func(A) B, ca CA) CB {
		return ap(of(f), ca)
	}
}

// MapFromChain derives the functor capability from a monad:
// map(f, ca) = chain(ca, x -> of(f(x))).
func MapFromChain[CA, CB, A, B any](of func(B) CB,
	chain func(CA, func(A) CB) CB) func(func(A) B, CA) CB {

	return func(f func(A) B, ca CA) CB {
		return chain(ca, func(a A) CB {
			return of(f(a))
		})
	}
}

// ApFromChain derives the applicative capability from a monad:
// ap(cf, ca) = chain(cf, f -> map(f, ca)).
//
// The derived ap fully evaluates the function operand before the
// argument operand. For a variant whose native ap evaluates
// independent operands concurrently, such as task.Ap, the derived form
// is strictly weaker: correct, but sequential.
func ApFromChain[CF, CA, CB, A, B any](
	chain func(CF, func(func(A) B) CB) CB,
	mapFn func(func(A) B, CA) CB) func(CF, CA) CB {

	return func(cf CF, ca CA) CB {
		return chain(cf, func(f func(A) B) CB {
			return mapFn(f, ca)
		})
	}
}
