package fp

import (
	"math/big"
	"math/bits"

	"github.com/consensys/emfield/internal/uint256"
)

// Binary operators canonicalize both operands, combine them with fixed-width
// word arithmetic and return canonically stored results. Deferring reduction
// further would save little here and rule out the pinned "< q" storage bound
// the rest of the package relies on.

// reduce conditionally subtracts q once; any 256-bit value is below 2q, so
// this is a complete reduction.
func reduce(w uint256.Uint256) uint256.Uint256 {
	if w.Cmp(&q) >= 0 {
		w.Sub(&w, &q)
	}
	return w
}

// reduce512 returns p mod q. The high half folds into the low one with
// 2^256 ≡ c (mod q); after two folds the value fits 256 bits and a
// conditional subtraction finishes the job.
func reduce512(p *uint256.Uint512) uint256.Uint256 {
	hi, lo := p.Hi(), p.Lo()

	// t + fold·2^256 = hi·c + lo, with fold < 2^34
	var t uint256.Uint256
	fold := t.MulUint64(&hi, crandall)
	fold += t.Add(&t, &lo)

	// fold·c < 2^67: two words
	mhi, mlo := bits.Mul64(fold, crandall)
	f2 := uint256.Uint256{mlo, mhi}
	if t.Add(&t, &f2) != 0 {
		// the carried 2^256 is again ≡ c; t is tiny now, no further carry
		t.AddUint64(&t, crandall)
	}
	return reduce(t)
}

// Add returns z + x.
func (z Element) Add(x Element) Element {
	a, b := z.canonicalWords(), x.canonicalWords()
	var s uint256.Uint256
	if s.Add(&a, &b) != 0 {
		// sum ≥ 2^256: subtracting q is adding c modulo 2^256, and the
		// result is already below q
		s.AddUint64(&s, crandall)
		return fromWords(s)
	}
	return fromWords(reduce(s))
}

// Sub returns z - x.
func (z Element) Sub(x Element) Element {
	a, b := z.canonicalWords(), x.canonicalWords()
	var d uint256.Uint256
	if d.Sub(&a, &b) != 0 {
		// the wraparound of adding q back cancels the borrow
		d.Add(&d, &q)
	}
	return fromWords(d)
}

// Neg returns -z: zero for zero, q - z otherwise.
func (z Element) Neg() Element {
	w := z.canonicalWords()
	if w.IsZero() {
		return Element{}
	}
	var r uint256.Uint256
	r.Sub(&q, &w)
	return fromWords(r)
}

// Double returns 2z.
func (z Element) Double() Element {
	return z.Add(z)
}

// Mul returns z * x: the full 512-bit product of the canonical operands,
// reduced modulo q.
func (z Element) Mul(x Element) Element {
	a, b := z.canonicalWords(), x.canonicalWords()
	var p uint256.Uint512
	p.Mul(&a, &b)
	return fromWords(reduce512(&p))
}

// Square returns z * z.
func (z Element) Square() Element {
	a := z.canonicalWords()
	var p uint256.Uint512
	p.Mul(&a, &a)
	return fromWords(reduce512(&p))
}

// Cube returns z * z * z.
func (z Element) Cube() Element {
	return z.Square().Mul(z)
}

// Div returns z / x. It panics if x is zero; use [Element.TryInverse] when
// the divisor is not known to be invertible.
func (z Element) Div(x Element) Element {
	return z.Mul(x.Inverse())
}

// Exp returns z^e by binary square-and-multiply over the bits of e. A
// negative exponent inverts first, so z must be nonzero in that case; with
// the usual convention z^0 is one for any z, including zero.
func (z Element) Exp(e *big.Int) Element {
	if e.Sign() < 0 {
		z = z.Inverse()
		e = new(big.Int).Neg(e)
	}
	z = z.Canonical()
	res := One()
	for i := e.BitLen() - 1; i >= 0; i-- {
		res = res.Square()
		if e.Bit(i) == 1 {
			res = res.Mul(z)
		}
	}
	return res
}

// ExpUint64 returns z^e for a small exponent.
func (z Element) ExpUint64(e uint64) Element {
	z = z.Canonical()
	res := One()
	for i := bits.Len64(e) - 1; i >= 0; i-- {
		res = res.Square()
		if e&(1<<uint(i)) != 0 {
			res = res.Mul(z)
		}
	}
	return res
}

// TryInverse returns the multiplicative inverse of z, or ok=false for the
// zero element (canonical or not). The inverse is computed by Fermat's
// little theorem as z^(q-2): 256 modular squarings, each a full
// multiply-and-reduce, making this the most expensive operation of the
// package.
func (z Element) TryInverse() (Element, bool) {
	if z.IsZero() {
		return Element{}, false
	}
	return z.Exp(&_qMinus2), true
}

// Inverse returns the multiplicative inverse of z. It panics if z is zero:
// callers that cannot rule out a zero input must use [Element.TryInverse].
func (z Element) Inverse() Element {
	inv, ok := z.TryInverse()
	if !ok {
		panic("fp: inverse of the zero element")
	}
	return inv
}

// BatchInvert inverts the elements of a in a single pass with Montgomery's
// trick: 3(n-1) multiplications and one inversion instead of n inversions.
// Zero entries stay zero.
func BatchInvert(a []Element) []Element {
	res := make([]Element, len(a))
	if len(a) == 0 {
		return res
	}

	zeroes := make([]bool, len(a))
	accumulator := One()
	for i := range a {
		if a[i].IsZero() {
			zeroes[i] = true
			continue
		}
		res[i] = accumulator
		accumulator = accumulator.Mul(a[i])
	}

	accumulator = accumulator.Inverse()

	for i := len(a) - 1; i >= 0; i-- {
		if zeroes[i] {
			continue
		}
		res[i] = res[i].Mul(accumulator)
		accumulator = accumulator.Mul(a[i])
	}
	return res
}

// Sum folds xs with ZERO as identity; an empty input yields ZERO.
func Sum(xs ...Element) Element {
	acc := Zero()
	for _, x := range xs {
		acc = acc.Add(x)
	}
	return acc
}

// Product folds xs with ONE as identity; an empty input yields ONE.
func Product(xs ...Element) Element {
	acc := One()
	for _, x := range xs {
		acc = acc.Mul(x)
	}
	return acc
}
