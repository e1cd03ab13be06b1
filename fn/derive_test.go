package fn

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestMapFromApMatchesNative(t *testing.T) {
	derived := MapFromAp(
		Some[func(uint32) uint32],
		ApOption[uint32, uint32],
	)

	err := quick.Check(
		func(o Option[uint32], k uint32) bool {
			f := addConst(k)
			return derived(f, o) == MapOption(f)(o)
		},
		&quick.Config{
			Values: func(vs []reflect.Value, r *rand.Rand) {
				vs[0] = reflect.ValueOf(genOption(r))
				vs[1] = reflect.ValueOf(r.Uint32())
			},
		},
	)

	require.NoError(t, err)
}

func TestMapFromChainMatchesNative(t *testing.T) {
	chain := func(r Result[uint32],
		f func(uint32) Result[uint32]) Result[uint32] {

		return ChainResult(f)(r)
	}

	derived := MapFromChain(Ok[uint32], chain)

	err := quick.Check(func(x, k uint32) bool {
		f := addConst(k)

		if derived(f, Ok(x)) != MapResult(f)(Ok(x)) {
			return false
		}

		failed := Err[uint32](errBoom)
		return derived(f, failed) == MapResult(f)(failed)
	}, nil)

	require.NoError(t, err)
}

func TestApFromChainMatchesNative(t *testing.T) {
	chain := func(rf Result[func(uint32) uint32],
		f func(func(uint32) uint32) Result[uint32]) Result[uint32] {

		return ChainResult(f)(rf)
	}
	mapFn := func(f func(uint32) uint32,
		ra Result[uint32]) Result[uint32] {

		return MapResult(f)(ra)
	}

	derived := ApFromChain(chain, mapFn)

	err := quick.Check(func(x, k uint32) bool {
		f := addConst(k)

		// Success path agrees with the native ap.
		if derived(Ok(f), Ok(x)) != ApResult(Ok(f), Ok(x)) {
			return false
		}

		// Error precedence agrees too: the function operand's
		// error is seen first in both forms.
		badFn := Err[func(uint32) uint32](errBoom)
		badArg := Err[uint32](errBoom)

		return derived(badFn, badArg) == ApResult(badFn, badArg) &&
			derived(Ok(f), badArg) == ApResult(Ok(f), badArg)
	}, nil)

	require.NoError(t, err)
}
