package fn

// Unit is a type alias for the empty struct to make it a bit less noisy
// to communicate the informationless type.
type Unit = struct{}

// Iden returns its argument unchanged. It is the left and right
// identity of Comp, and the function every law-abiding map must treat
// as a no-op.
func Iden[A any](a A) A {
	return a
}

// Comp is left to right function composition: Comp(f, g)(x) == g(f(x)).
// Useful for building closures on the fly to hand to the higher-order
// functions in this package.
func Comp[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Const accepts a value and returns a function that ignores its own
// argument and always produces that value.
func Const[B, A any](a A) func(B) A {
	return func(_ B) A {
		return a
	}
}

// Apply takes a value and returns a function that applies its function
// argument to that value. It is the flipped form of ordinary function
// application and shows up on the right hand side of the applicative
// interchange law.
func Apply[A, B any](a A) func(func(A) B) B {
	return func(f func(A) B) B {
		return f(a)
	}
}

// Curry converts a two argument function into a function that accepts
// the first argument and returns a function awaiting the second. The
// ap capability supplies one argument at a time, so functions combined
// with ap or the LiftA2 helpers must first pass through Curry.
func Curry[A, B, C any](f func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return f(a, b)
		}
	}
}

// Curry3 is Curry for three argument functions, for use with the
// LiftA3 helpers.
func Curry3[A, B, C, D any](f func(A, B, C) D) func(A) func(B) func(C) D {
	return func(a A) func(B) func(C) D {
		return func(b B) func(C) D {
			return func(c C) D {
				return f(a, b, c)
			}
		}
	}
}

// Uncurry inverts Curry, collapsing a chain of single argument
// functions back into an ordinary two argument function.
func Uncurry[A, B, C any](f func(A) func(B) C) func(A, B) C {
	return func(a A, b B) C {
		return f(a)(b)
	}
}

// Flip swaps the argument order of a curried two argument function.
func Flip[A, B, C any](f func(A) func(B) C) func(B) func(A) C {
	return func(b B) func(A) C {
		return func(a A) C {
			return f(a)(b)
		}
	}
}

// Eq is a curried function that returns true if its eventual two
// arguments are equal.
func Eq[A comparable](x A) func(A) bool {
	return func(y A) bool {
		return x == y
	}
}

// Neq is a curried function that returns true if its eventual two
// arguments are not equal.
func Neq[A comparable](x A) func(A) bool {
	return func(y A) bool {
		return x != y
	}
}
