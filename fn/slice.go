package fn

// All returns true when every element of the slice satisfies the
// predicate. It is vacuously true for an empty slice.
func All[A any](as []A, p func(A) bool) bool {
	for i := range as {
		if !p(as[i]) {
			return false
		}
	}

	return true
}

// Any returns true when at least one element of the slice satisfies
// the predicate.
func Any[A any](as []A, p func(A) bool) bool {
	return !All(as, func(a A) bool {
		return !p(a)
	})
}

// MapSlice is the functor capability for plain slices: it applies the
// function to every element, producing a new slice of the same length.
func MapSlice[A, B any](f func(A) B) func([]A) []B {
	return func(as []A) []B {
		bs := make([]B, len(as))
		for i := range as {
			bs[i] = f(as[i])
		}

		return bs
	}
}

// Filter returns the elements of the slice that satisfy the predicate,
// preserving their order.
func Filter[A any](as []A, p func(A) bool) []A {
	out := make([]A, 0, len(as))
	for i := range as {
		if p(as[i]) {
			out = append(out, as[i])
		}
	}

	return out
}

// Foldl reduces the slice from the left with the given step function
// and starting accumulator.
func Foldl[A, B any](as []A, acc B, f func(B, A) B) B {
	for i := range as {
		acc = f(acc, as[i])
	}

	return acc
}
