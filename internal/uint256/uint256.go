// Package uint256 implements fixed-precision unsigned integer arithmetic on
// 256-bit values, with 512-bit widening products. It is the word-level backing
// of the foreign-field element types; it knows nothing about any modulus.
//
// A Uint256 is an integer, not a residue: Add and Sub report their carry and
// borrow instead of wrapping silently, so callers implementing modular
// reduction can act on them.
package uint256

import (
	"math/big"
	"math/bits"
)

// NbWords is the number of 64-bit words in a Uint256.
const NbWords = 4

// Uint256 is an unsigned 256-bit integer represented as four 64-bit words in
// little-endian order: the represented value is sum(w[i] * 2^(64*i)).
type Uint256 [NbWords]uint64

// Uint512 is an unsigned 512-bit integer, the widening product of two
// Uint256, in little-endian word order.
type Uint512 [2 * NbWords]uint64

// SetUint64 sets z to v and returns z.
func (z *Uint256) SetUint64(v uint64) *Uint256 {
	z[0] = v
	z[1], z[2], z[3] = 0, 0, 0
	return z
}

// SetBigInt sets z to the low 256 bits of |v| and returns z. Values wider
// than 256 bits are truncated; the sign is ignored. Callers that need the
// untruncated value must check v.BitLen() themselves.
func (z *Uint256) SetBigInt(v *big.Int) *Uint256 {
	b := v.Bytes() // big-endian, absolute value
	if len(b) > 32 {
		b = b[len(b)-32:]
	}
	var buf [32]byte
	copy(buf[32-len(b):], b)
	for i := 0; i < NbWords; i++ {
		z[i] = uint64(buf[31-8*i]) | uint64(buf[30-8*i])<<8 |
			uint64(buf[29-8*i])<<16 | uint64(buf[28-8*i])<<24 |
			uint64(buf[27-8*i])<<32 | uint64(buf[26-8*i])<<40 |
			uint64(buf[25-8*i])<<48 | uint64(buf[24-8*i])<<56
	}
	return z
}

// BigInt returns x as a new arbitrary-precision integer.
func (x *Uint256) BigInt() *big.Int {
	var buf [32]byte
	for i := 0; i < NbWords; i++ {
		w := x[i]
		buf[31-8*i] = byte(w)
		buf[30-8*i] = byte(w >> 8)
		buf[29-8*i] = byte(w >> 16)
		buf[28-8*i] = byte(w >> 24)
		buf[27-8*i] = byte(w >> 32)
		buf[26-8*i] = byte(w >> 40)
		buf[25-8*i] = byte(w >> 48)
		buf[24-8*i] = byte(w >> 56)
	}
	return new(big.Int).SetBytes(buf[:])
}

// IsZero reports whether x is zero.
func (x *Uint256) IsZero() bool {
	return x[0]|x[1]|x[2]|x[3] == 0
}

// Cmp compares x and y and returns -1 if x < y, 0 if x == y, +1 if x > y.
func (x *Uint256) Cmp(y *Uint256) int {
	for i := NbWords - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Add sets z = x + y mod 2^256 and returns the carry out of the top word.
func (z *Uint256) Add(x, y *Uint256) uint64 {
	var carry uint64
	z[0], carry = bits.Add64(x[0], y[0], 0)
	z[1], carry = bits.Add64(x[1], y[1], carry)
	z[2], carry = bits.Add64(x[2], y[2], carry)
	z[3], carry = bits.Add64(x[3], y[3], carry)
	return carry
}

// AddUint64 sets z = x + v mod 2^256 and returns the carry out of the top
// word.
func (z *Uint256) AddUint64(x *Uint256, v uint64) uint64 {
	var carry uint64
	z[0], carry = bits.Add64(x[0], v, 0)
	z[1], carry = bits.Add64(x[1], 0, carry)
	z[2], carry = bits.Add64(x[2], 0, carry)
	z[3], carry = bits.Add64(x[3], 0, carry)
	return carry
}

// Sub sets z = x - y mod 2^256 and returns the borrow out of the top word:
// 1 if x < y, else 0.
func (z *Uint256) Sub(x, y *Uint256) uint64 {
	var borrow uint64
	z[0], borrow = bits.Sub64(x[0], y[0], 0)
	z[1], borrow = bits.Sub64(x[1], y[1], borrow)
	z[2], borrow = bits.Sub64(x[2], y[2], borrow)
	z[3], borrow = bits.Sub64(x[3], y[3], borrow)
	return borrow
}

// MulUint64 sets z to the low 256 bits of x * v and returns the overflow
// word, so that x * v == overflow * 2^256 + z.
func (z *Uint256) MulUint64(x *Uint256, v uint64) uint64 {
	var carry uint64
	for i := 0; i < NbWords; i++ {
		hi, lo := bits.Mul64(x[i], v)
		var c uint64
		lo, c = bits.Add64(lo, carry, 0)
		z[i] = lo
		carry = hi + c // x[i]*v + carry < 2^128, so no overflow here
	}
	return carry
}

// Mul sets z to the full 512-bit product x * y.
func (z *Uint512) Mul(x, y *Uint256) {
	var w Uint512
	for i := 0; i < NbWords; i++ {
		var carry uint64
		for j := 0; j < NbWords; j++ {
			hi, lo := bits.Mul64(x[i], y[j])
			var c1, c2 uint64
			lo, c1 = bits.Add64(lo, w[i+j], 0)
			lo, c2 = bits.Add64(lo, carry, 0)
			w[i+j] = lo
			// x[i]*y[j] + w[i+j] + carry <= (2^64-1)^2 + 2*(2^64-1)
			// fits in 128 bits, so hi+c1+c2 cannot overflow.
			carry = hi + c1 + c2
		}
		w[i+NbWords] = carry
	}
	*z = w
}

// Lo returns the low 256 bits of x.
func (x *Uint512) Lo() Uint256 {
	return Uint256{x[0], x[1], x[2], x[3]}
}

// Hi returns the high 256 bits of x.
func (x *Uint512) Hi() Uint256 {
	return Uint256{x[4], x[5], x[6], x[7]}
}

// BigInt returns x as a new arbitrary-precision integer.
func (x *Uint512) BigInt() *big.Int {
	hi := x.Hi()
	lo := x.Lo()
	v := hi.BigInt()
	v.Lsh(v, 256)
	return v.Add(v, lo.BigInt())
}
