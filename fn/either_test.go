package fn

import (
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

// genEither produces a random Either[string, uint32], left roughly a
// quarter of the time.
func genEither(r *rand.Rand) Either[string, uint32] {
	if r.Uint32()%4 == 0 {
		return NewLeft[string, uint32]("left")
	}

	return NewRight[string](r.Uint32())
}

func genEitherFunc(r *rand.Rand) Either[string, func(uint32) uint32] {
	if r.Uint32()%4 == 0 {
		return NewLeft[string, func(uint32) uint32]("left fn")
	}

	return NewRight[string](addConst(r.Uint32()))
}

func TestEitherApIdentity(t *testing.T) {
	err := quick.Check(
		func(v Either[string, uint32]) bool {
			of := NewRight[string](Iden[uint32])
			return ApEither(of, v) == v
		},
		&quick.Config{
			Values: func(vs []reflect.Value, r *rand.Rand) {
				vs[0] = reflect.ValueOf(genEither(r))
			},
		},
	)

	require.NoError(t, err)
}

func TestEitherApHomomorphism(t *testing.T) {
	err := quick.Check(func(x, k uint32) bool {
		f := addConst(k)
		left := ApEither(
			NewRight[string](f), NewRight[string](x),
		)

		return left == NewRight[string](f(x))
	}, nil)

	require.NoError(t, err)
}

func TestEitherApInterchange(t *testing.T) {
	err := quick.Check(
		func(v Either[string, func(uint32) uint32],
			x uint32) bool {

			left := ApEither(v, NewRight[string](x))
			right := ApEither(
				NewRight[string](Apply[uint32, uint32](x)), v,
			)

			return left == right
		},
		&quick.Config{
			Values: func(vs []reflect.Value, r *rand.Rand) {
				vs[0] = reflect.ValueOf(genEitherFunc(r))
				vs[1] = reflect.ValueOf(r.Uint32())
			},
		},
	)

	require.NoError(t, err)
}

func TestEitherApComposition(t *testing.T) {
	// compose(f)(g)(x) == f(g(x)).
	compose := func(f func(uint32) uint32) func(func(uint32) uint32) func(uint32) uint32 {
		return func(g func(uint32) uint32) func(uint32) uint32 {
			return Comp(g, f)
		}
	}

	err := quick.Check(
		func(u, v Either[string, func(uint32) uint32],
			w Either[string, uint32]) bool {

			left := ApEither(
				ApEither(ApEither(
					NewRight[string](compose), u,
				), v), w,
			)
			right := ApEither(u, ApEither(v, w))

			return left == right
		},
		&quick.Config{
			Values: func(vs []reflect.Value, r *rand.Rand) {
				vs[0] = reflect.ValueOf(genEitherFunc(r))
				vs[1] = reflect.ValueOf(genEitherFunc(r))
				vs[2] = reflect.ValueOf(genEither(r))
			},
		},
	)

	require.NoError(t, err)
}

func TestEitherApShortCircuit(t *testing.T) {
	badFn := NewLeft[string, func(uint32) uint32]("no function")
	badArg := NewLeft[string, uint32]("no argument")
	goodArg := NewRight[string](uint32(1))

	// The function operand's left wins over the argument's.
	got := ApEither(badFn, badArg)
	require.Equal(t, NewLeft[string, uint32]("no function"), got)

	got = ApEither(badFn, goodArg)
	require.Equal(t, NewLeft[string, uint32]("no function"), got)

	goodFn := NewRight[string](addConst(1))
	got = ApEither(goodFn, badArg)
	require.Equal(t, NewLeft[string, uint32]("no argument"), got)
}

func TestLiftA2Either(t *testing.T) {
	concat := Curry(func(a, b string) string { return a + b })

	got := LiftA2Either[int](concat)(
		NewRight[int]("foo"))(NewRight[int]("bar"))
	require.Equal(t, NewRight[int]("foobar"), got)

	got = LiftA2Either[int](concat)(
		NewLeft[int, string](1))(NewRight[int]("bar"))
	require.Equal(t, NewLeft[int, string](1), got)
}

func TestEitherMapAndElim(t *testing.T) {
	double := func(x uint32) uint32 { return x * 2 }

	r := NewRight[string](uint32(4))
	require.Equal(t, NewRight[string](uint32(8)),
		MapRight[string](double)(r))

	l := NewLeft[string, uint32]("oops")
	require.Equal(t, l, MapRight[string](double)(l))

	shout := func(s string) string { return s + "!" }
	require.Equal(t, NewLeft[string, uint32]("oops!"),
		MapLeft[string, uint32](shout)(l))
	require.Equal(t, r, MapLeft[string, uint32](shout)(r))

	elim := ElimEither(
		Const[string](uint32(0)),
		double,
	)
	require.Equal(t, uint32(8), elim(r))
	require.Equal(t, uint32(0), elim(l))
}

func TestEitherChain(t *testing.T) {
	safeDiv := func(x uint32) Either[string, uint32] {
		if x == 0 {
			return NewLeft[string, uint32]("division by zero")
		}

		return NewRight[string](100 / x)
	}

	require.Equal(t, NewRight[string](uint32(25)),
		ChainEither(safeDiv)(NewRight[string](uint32(4))))
	require.Equal(t, NewLeft[string, uint32]("division by zero"),
		ChainEither(safeDiv)(NewRight[string](uint32(0))))

	l := NewLeft[string, uint32]("upstream")
	require.Equal(t, l, ChainEither(safeDiv)(l))
}

func TestEitherSwapAndAccessors(t *testing.T) {
	r := NewRight[string](uint32(3))
	l := NewLeft[string, uint32]("nope")

	require.True(t, r.IsRight())
	require.False(t, r.IsLeft())
	require.True(t, l.IsLeft())

	require.Equal(t, NewLeft[uint32, string](uint32(3)), r.Swap())
	require.Equal(t, NewRight[uint32]("nope"), l.Swap())

	require.Equal(t, uint32(3), r.RightOr(0))
	require.Equal(t, uint32(0), l.RightOr(0))
	require.Equal(t, "nope", l.LeftOr("fallback"))
	require.Equal(t, "fallback", r.LeftOr("fallback"))
}
