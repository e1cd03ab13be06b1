package fn

import (
	"strconv"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestT2Accessors(t *testing.T) {
	t2 := NewT2(uint32(21), "pair")

	require.Equal(t, uint32(21), t2.First())
	require.Equal(t, "pair", t2.Second())

	a, b := t2.Unpack()
	require.Equal(t, uint32(21), a)
	require.Equal(t, "pair", b)
}

func TestPair(t *testing.T) {
	double := func(x uint32) uint32 { return x * 2 }
	show := func(x uint32) string {
		return strconv.FormatUint(uint64(x), 10)
	}

	err := quick.Check(func(x uint32) bool {
		t2 := Pair(double, show)(x)
		return t2.First() == double(x) && t2.Second() == show(x)
	}, nil)

	require.NoError(t, err)
}

func TestMapFirstMapSecond(t *testing.T) {
	inc := func(x uint32) uint32 { return x + 1 }

	err := quick.Check(func(x uint32, s string) bool {
		t2 := NewT2(x, s)

		mapped := MapFirst[uint32, uint32, string](inc)(t2)
		if mapped.First() != x+1 || mapped.Second() != s {
			return false
		}

		swapped := MapSecond[uint32, uint32, string](inc)(NewT2(s, x))
		return swapped.First() == s && swapped.Second() == x+1
	}, nil)

	require.NoError(t, err)
}
