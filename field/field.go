// Package field defines the arithmetic capability contract shared by the
// concrete field implementations of this module.
//
// Every field type implements [Element] independently; there is no shared
// base type. Generic numeric code (trace builders, polynomial evaluators,
// gadget constructions) is written once against the contract and
// instantiated per field, for the proving system's native field and for
// every emulated foreign field alike.
package field

import (
	"fmt"
	"io"
	"math/big"
)

// Element is the set of operations a field element type must provide. The
// type parameter is the implementing type itself, so that operations stay
// strongly typed: a concrete field declares
//
//	var _ field.Element[fp.Element] = fp.Element{}
//
// Implementations are pure value types: operators return new values and
// never mutate their receiver. The zero value of an implementing type must
// represent the field's additive identity, so that generic code can obtain
// ZERO without knowing the modulus.
//
// Implementations may store non-canonical representatives internally;
// Equal, Hash64 and String must nevertheless agree on numerically equal
// values regardless of representation.
type Element[F any] interface {
	Add(F) F
	Sub(F) F
	Mul(F) F
	Div(F) F
	Neg() F
	Double() F
	Square() F

	// TryInverse returns the multiplicative inverse, or ok=false for the
	// zero element.
	TryInverse() (F, bool)
	Exp(*big.Int) F

	Equal(F) bool
	IsZero() bool
	IsOne() bool

	// Hash64 returns a 64-bit hash of the canonical value. Equal elements
	// hash equal even when their internal representations differ.
	Hash64() uint64

	SetUint64(uint64) F
	SetBigInt(*big.Int) F
	SetRandom(io.Reader) (F, error)

	// BigInt returns the canonical value in [0, modulus).
	BigInt() *big.Int

	fmt.Stringer
}

// Params describes the limb decomposition of a field. It mirrors the type
// parametrization used by circuit-side emulation: NbLimbs limbs of
// BitsPerLimb bits each must be able to hold the modulus.
type Params interface {
	NbLimbs() uint
	BitsPerLimb() uint
	IsPrime() bool
	Modulus() *big.Int
}

// PrimeParams extends Params with the constants generic prime-field code
// depends on. CheckPrimeParams verifies an implementation against its own
// modulus; none of these values may be left as placeholders.
type PrimeParams interface {
	Params

	// Characteristic of a prime field is the modulus itself.
	Characteristic() *big.Int

	// TwoAdicity is the exponent of the largest power of two dividing
	// modulus-1.
	TwoAdicity() uint

	// MultiplicativeGenerator returns a generator of the multiplicative
	// group of the field.
	MultiplicativeGenerator() *big.Int

	// PowerOfTwoGenerator returns a generator of the subgroup of order
	// 2^TwoAdicity().
	PowerOfTwoGenerator() *big.Int
}

// Zero returns the additive identity of F.
func Zero[F Element[F]]() F {
	var z F
	return z
}

// One returns the multiplicative identity of F.
func One[F Element[F]]() F {
	var z F
	return z.SetUint64(1)
}

// Two returns 1+1 in F.
func Two[F Element[F]]() F {
	var z F
	return z.SetUint64(2)
}

// NegOne returns -1, the canonical modulus-1 element of F.
func NegOne[F Element[F]]() F {
	return Zero[F]().Sub(One[F]())
}

// Sum folds xs with ZERO as identity; an empty input yields ZERO.
func Sum[F Element[F]](xs ...F) F {
	acc := Zero[F]()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Product folds xs with ONE as identity; an empty input yields ONE.
func Product[F Element[F]](xs ...F) F {
	acc := One[F]()
	for _, x := range xs {
		acc = acc.Mul(x)
	}
	return acc
}

// Powers returns the first n powers of x, starting at x^0 = 1.
func Powers[F Element[F]](x F, n int) []F {
	res := make([]F, n)
	if n == 0 {
		return res
	}
	res[0] = One[F]()
	for i := 1; i < n; i++ {
		res[i] = res[i-1].Mul(x)
	}
	return res
}

// Equal reports whether a and b hold pairwise equal elements.
func Equal[F Element[F]](a, b []F) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
