package fp

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minSuccessfulTests = 300

func TestFieldAxioms(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = minSuccessfulTests

	rng := newChachaStream(t, 10)
	genE := genElement(rng)

	properties := gopter.NewProperties(parameters)

	properties.Property("(a+b)+c == a+(b+c)", prop.ForAll(
		func(a, b, c Element) bool {
			return a.Add(b).Add(c).Equal(a.Add(b.Add(c)))
		},
		genE, genE, genE,
	))

	properties.Property("a+b == b+a", prop.ForAll(
		func(a, b Element) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		genE, genE,
	))

	properties.Property("a+0 == a", prop.ForAll(
		func(a Element) bool {
			return a.Add(Zero()).Equal(a)
		},
		genE,
	))

	properties.Property("a+(-a) == 0", prop.ForAll(
		func(a Element) bool {
			return a.Add(a.Neg()).IsZero()
		},
		genE,
	))

	properties.Property("(a*b)*c == a*(b*c)", prop.ForAll(
		func(a, b, c Element) bool {
			return a.Mul(b).Mul(c).Equal(a.Mul(b.Mul(c)))
		},
		genE, genE, genE,
	))

	properties.Property("a*b == b*a", prop.ForAll(
		func(a, b Element) bool {
			return a.Mul(b).Equal(b.Mul(a))
		},
		genE, genE,
	))

	properties.Property("a*1 == a", prop.ForAll(
		func(a Element) bool {
			return a.Mul(One()).Equal(a)
		},
		genE,
	))

	properties.Property("a*(b+c) == a*b + a*c", prop.ForAll(
		func(a, b, c Element) bool {
			return a.Mul(b.Add(c)).Equal(a.Mul(b).Add(a.Mul(c)))
		},
		genE, genE, genE,
	))

	properties.Property("a != 0 => a*inverse(a) == 1", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			return a.Mul(a.Inverse()).IsOne()
		},
		genE,
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestArithmeticLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = minSuccessfulTests

	rng := newChachaStream(t, 11)
	genE := genElement(rng)

	properties := gopter.NewProperties(parameters)

	properties.Property("a-a == 0", prop.ForAll(
		func(a Element) bool {
			return a.Sub(a).IsZero()
		},
		genE,
	))

	properties.Property("a-b == a+(-b)", prop.ForAll(
		func(a, b Element) bool {
			return a.Sub(b).Equal(a.Add(b.Neg()))
		},
		genE, genE,
	))

	properties.Property("-(-a) == a", prop.ForAll(
		func(a Element) bool {
			return a.Neg().Neg().Equal(a)
		},
		genE,
	))

	properties.Property("(-a)*b == -(a*b)", prop.ForAll(
		func(a, b Element) bool {
			return a.Neg().Mul(b).Equal(a.Mul(b).Neg())
		},
		genE, genE,
	))

	properties.Property("a != 0 => inverse(inverse(a)) == a", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			return a.Inverse().Inverse().Equal(a)
		},
		genE,
	))

	properties.Property("b != 0 => (a/b)*b == a", prop.ForAll(
		func(a, b Element) bool {
			if b.IsZero() {
				return true
			}
			return a.Div(b).Mul(b).Equal(a)
		},
		genE, genE,
	))

	properties.Property("Double == Add self, Square == Mul self, Cube == Square*self", prop.ForAll(
		func(a Element) bool {
			return a.Double().Equal(a.Add(a)) &&
				a.Square().Equal(a.Mul(a)) &&
				a.Cube().Equal(a.Square().Mul(a))
		},
		genE,
	))

	properties.Property("results are stored canonically", prop.ForAll(
		func(a, b Element) bool {
			return a.Add(b).IsCanonical() &&
				a.Sub(b).IsCanonical() &&
				a.Mul(b).IsCanonical() &&
				a.Neg().IsCanonical()
		},
		genE, genE,
	))

	properties.Property("a^(m+n) == a^m * a^n", prop.ForAll(
		func(a Element, m, n uint64) bool {
			bm := new(big.Int).SetUint64(m)
			bn := new(big.Int).SetUint64(n)
			sum := new(big.Int).Add(bm, bn)
			return a.Exp(sum).Equal(a.Exp(bm).Mul(a.Exp(bn)))
		},
		genE, gen.UInt64(), gen.UInt64(),
	))

	properties.Property("ExpUint64 agrees with Exp", prop.ForAll(
		func(a Element, e uint64) bool {
			return a.ExpUint64(e).Equal(a.Exp(new(big.Int).SetUint64(e)))
		},
		genE, gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// Differential check against math/big reference arithmetic.
func TestAgainstBigInt(t *testing.T) {
	rng := newChachaStream(t, 12)
	q := Modulus()
	for i := 0; i < 500; i++ {
		a, b := MustRandom(rng), MustRandom(rng)
		ab, bb := a.BigInt(), b.BigInt()

		want := new(big.Int).Add(ab, bb)
		want.Mod(want, q)
		require.Equal(t, 0, a.Add(b).BigInt().Cmp(want), "add")

		want.Sub(ab, bb)
		want.Mod(want, q)
		if want.Sign() < 0 {
			want.Add(want, q)
		}
		require.Equal(t, 0, a.Sub(b).BigInt().Cmp(want), "sub")

		want.Mul(ab, bb)
		want.Mod(want, q)
		require.Equal(t, 0, a.Mul(b).BigInt().Cmp(want), "mul")

		want.Neg(ab)
		want.Mod(want, q)
		if want.Sign() < 0 {
			want.Add(want, q)
		}
		require.Equal(t, 0, a.Neg().BigInt().Cmp(want), "neg")

		if !b.IsZero() {
			want.ModInverse(bb, q)
			require.Equal(t, 0, b.Inverse().BigInt().Cmp(want), "inverse")
		}
	}
}

func TestAddBoundaries(t *testing.T) {
	// NEG_ONE + ONE lands exactly on q and must reduce to all-zero storage,
	// not be left as the non-canonical image of zero
	s := NegOne().Add(One())
	require.True(t, s.IsZero())
	require.Equal(t, [Limbs]uint32{}, s.Limbs())
	require.True(t, s.IsCanonical())

	// a+b carrying past 2^256
	a := NegOne()
	b := NegOne()
	want := new(big.Int).Add(a.BigInt(), b.BigInt())
	want.Mod(want, Modulus())
	got := a.Add(b)
	require.Equal(t, 0, got.BigInt().Cmp(want))
	require.True(t, got.IsCanonical())

	// non-canonical operands are canonicalized before combining
	nc, ok := nonCanonical(Element{}.SetUint64(7))
	require.True(t, ok)
	require.True(t, nc.Add(Element{}.SetUint64(8)).Equal(Element{}.SetUint64(15)))
	require.True(t, Element{}.SetUint64(8).Sub(nc).Equal(One()))
}

func TestSubBoundaries(t *testing.T) {
	// 0 - 1 wraps to q-1
	require.True(t, Zero().Sub(One()).Equal(NegOne()))
	require.True(t, Zero().Sub(One()).IsCanonical())

	// symmetric difference
	a := Element{}.SetUint64(3)
	b := Element{}.SetUint64(5)
	require.True(t, a.Sub(b).Equal(b.Sub(a).Neg()))
}

func TestNegZero(t *testing.T) {
	require.True(t, Zero().Neg().IsZero())
	require.Equal(t, [Limbs]uint32{}, Zero().Neg().Limbs())

	// negation of the non-canonical zero image is still zero
	qLimbs := NewElementFromLimbs([Limbs]uint32{
		0xfffffc2f, 0xfffffffe, 0xffffffff, 0xffffffff,
		0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	})
	require.True(t, qLimbs.Neg().IsZero())
}

func TestConcreteProducts(t *testing.T) {
	five := Element{}.SetUint64(5)
	three := Element{}.SetUint64(3)
	require.True(t, five.Mul(three).Equal(Element{}.SetUint64(15)))

	// 2^128 * 2^128 exercises the 512-bit product and folding reduction
	hi := Element{}.SetUint128(0, 1<<63).Double() // 2^128
	want := new(big.Int).Lsh(big.NewInt(1), 256)
	want.Mod(want, Modulus()) // = crandall
	require.Equal(t, 0, hi.Mul(hi).BigInt().Cmp(want))
	require.Equal(t, uint64(crandall), hi.Mul(hi).BigInt().Uint64())
}

func TestTryInverseZero(t *testing.T) {
	_, ok := Zero().TryInverse()
	require.False(t, ok)

	// the non-canonical zero image has no inverse either
	qLimbs := NewElementFromLimbs([Limbs]uint32{
		0xfffffc2f, 0xfffffffe, 0xffffffff, 0xffffffff,
		0xffffffff, 0xffffffff, 0xffffffff, 0xffffffff,
	})
	_, ok = qLimbs.TryInverse()
	require.False(t, ok)

	inv, ok := One().TryInverse()
	require.True(t, ok)
	require.True(t, inv.IsOne())
}

func TestInversePanicsOnZero(t *testing.T) {
	assert.PanicsWithValue(t, "fp: inverse of the zero element", func() {
		Zero().Inverse()
	})
	assert.Panics(t, func() {
		One().Div(Zero())
	})
}

func TestExpEdgeCases(t *testing.T) {
	rng := newChachaStream(t, 13)
	a := MustRandom(rng)

	// a^0 == 1, including 0^0 under the usual convention
	require.True(t, a.Exp(big.NewInt(0)).IsOne())
	require.True(t, Zero().Exp(big.NewInt(0)).IsOne())
	require.True(t, a.Exp(big.NewInt(1)).Equal(a))

	// negative exponent inverts first
	if !a.IsZero() {
		require.True(t, a.Exp(big.NewInt(-1)).Equal(a.Inverse()))
	}

	// Fermat: a^(q-1) == 1 for a != 0
	qMinus1 := new(big.Int).Sub(Modulus(), big.NewInt(1))
	require.True(t, a.Exp(qMinus1).IsOne())
}

func TestBatchInvert(t *testing.T) {
	rng := newChachaStream(t, 14)

	a := make([]Element, 50)
	for i := range a {
		if i%7 == 3 {
			continue // keep some zero entries
		}
		a[i] = MustRandom(rng)
	}

	res := BatchInvert(a)
	require.Len(t, res, len(a))
	for i := range a {
		if a[i].IsZero() {
			require.True(t, res[i].IsZero(), "zero entries stay zero")
			continue
		}
		require.True(t, res[i].Equal(a[i].Inverse()), "entry %d", i)
	}

	require.Empty(t, BatchInvert(nil))
}

func TestSumProduct(t *testing.T) {
	require.True(t, Sum().IsZero())
	require.True(t, Product().IsOne())

	one, two, three := One(), Two(), Element{}.SetUint64(3)
	require.True(t, Sum(one, two, three).Equal(Element{}.SetUint64(6)))
	require.True(t, Product(one, two, three).Equal(Element{}.SetUint64(6)))

	rng := newChachaStream(t, 15)
	xs := make([]Element, 20)
	wantSum, wantProd := new(big.Int), big.NewInt(1)
	for i := range xs {
		xs[i] = MustRandom(rng)
		wantSum.Add(wantSum, xs[i].BigInt())
		wantProd.Mul(wantProd, xs[i].BigInt())
		wantProd.Mod(wantProd, Modulus())
	}
	wantSum.Mod(wantSum, Modulus())
	require.Equal(t, 0, Sum(xs...).BigInt().Cmp(wantSum))
	require.Equal(t, 0, Product(xs...).BigInt().Cmp(wantProd))
}
