// Package fn contains the core combinators and container types used to
// write Go in a functional style without reaching for reflection or
// interface{} dispatch.
//
// The containers in this package (Identity, Option, Either, Result, IO)
// and the Task type in the sibling task package all follow the same
// capability contract:
//
//   - of:    lift a bare value into the container (Some, NewRight, Ok,
//     OfIO, ...).
//   - map:   apply a function to the contained value, preserving the
//     container's variant.
//   - ap:    apply a contained function to a contained value. Each ap
//     supplies exactly one argument, so multi-argument functions must be
//     curried (see Curry) and applied one ap at a time.
//   - chain: sequence a computation that itself returns a container,
//     where the second step may depend on the first result.
//
// Go methods cannot introduce fresh type parameters, so these
// capabilities are exposed as package-level functions named after the
// variant they operate on (MapOption, ApEither, ChainResult, ...)
// rather than as a shared interface.
//
// Every conforming variant satisfies the applicative laws. Writing C
// for the variant's lift and ap for its application:
//
//	identity:     ap(C(Iden), v)            == v
//	homomorphism: ap(C(f), C(x))            == C(f(x))
//	interchange:  ap(v, C(x))               == ap(C(Apply(x)), v)
//	composition:  ap(ap(ap(C(Comp), u), v), w) == ap(u, ap(v, w))
//
// The derivation helpers MapFromAp, MapFromChain and ApFromChain
// recover the weaker capabilities from the stronger ones so that a new
// variant only has to provide a minimal definition.
package fn
