package fn

import (
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestIdentityLaws(t *testing.T) {
	err := quick.Check(func(x, k uint32) bool {
		f := addConst(k)

		// Identity.
		if ApIdentity(NewIdentity(Iden[uint32]),
			NewIdentity(x)) != NewIdentity(x) {

			return false
		}

		// Homomorphism.
		if ApIdentity(NewIdentity(f),
			NewIdentity(x)) != NewIdentity(f(x)) {

			return false
		}

		// Map/ap equivalence.
		mapped := MapIdentity(f)(NewIdentity(x))
		return mapped == ApIdentity(NewIdentity(f), NewIdentity(x))
	}, nil)

	require.NoError(t, err)
}

func TestIdentityApInterchange(t *testing.T) {
	err := quick.Check(func(x, k uint32) bool {
		v := NewIdentity(addConst(k))

		left := ApIdentity(v, NewIdentity(x))
		right := ApIdentity(
			NewIdentity(Apply[uint32, uint32](x)), v,
		)

		return left == right
	}, nil)

	require.NoError(t, err)
}

func TestIdentityApComposition(t *testing.T) {
	// compose(f)(g)(x) == f(g(x)).
	compose := func(f func(uint32) uint32) func(func(uint32) uint32) func(uint32) uint32 {
		return func(g func(uint32) uint32) func(uint32) uint32 {
			return Comp(g, f)
		}
	}

	err := quick.Check(func(x, k, j uint32) bool {
		u := NewIdentity(addConst(k))
		v := NewIdentity(addConst(j))
		w := NewIdentity(x)

		left := ApIdentity(
			ApIdentity(ApIdentity(
				NewIdentity(compose), u,
			), v), w,
		)
		right := ApIdentity(u, ApIdentity(v, w))

		return left == right
	}, nil)

	require.NoError(t, err)
}

func TestIdentityChain(t *testing.T) {
	double := func(x uint32) Identity[uint32] {
		return NewIdentity(x * 2)
	}

	got := ChainIdentity(double)(NewIdentity(uint32(4)))
	require.Equal(t, uint32(8), got.Unwrap())
}
