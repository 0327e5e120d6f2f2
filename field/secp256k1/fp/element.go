package fp

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"
	"github.com/consensys/emfield/debug"
	"github.com/consensys/emfield/internal/uint256"
	"golang.org/x/exp/constraints"
)

const (
	// Limbs is the number of 32-bit limbs in an Element.
	Limbs = 8
	// LimbBits is the width of one limb.
	LimbBits = 32
	// Bits is the number of bits needed to represent q.
	Bits = 256
	// Bytes is the byte size of the wire image of an Element.
	Bytes = Limbs * LimbBits / 8
)

// Element is an element of the secp256k1 base field, stored as 8 little-
// endian 32-bit limbs encoding an unsigned integer in [0, 2^256).
//
// The stored integer is a representative of its residue class modulo q and
// may exceed q. In particular == compares storage, not field values: use
// [Element.Equal] for semantic equality. The zero value is the field's
// zero.
type Element [Limbs]uint32

// Zero returns the additive identity.
func Zero() Element { return Element{} }

// One returns the multiplicative identity.
func One() Element { return one }

// Two returns 1+1.
func Two() Element { return two }

// NegOne returns -1, stored canonically as q-1.
func NegOne() Element { return negOne }

// MultiplicativeGenerator returns a generator of the multiplicative group,
// the smallest one (3).
func MultiplicativeGenerator() Element { return multiplicativeGenerator }

// PowerOfTwoGenerator returns a generator of the largest power-of-two-order
// subgroup; the two-adicity of q is 1, so this is -1.
func PowerOfTwoGenerator() Element { return powerOfTwoGenerator }

// Modulus returns q as a new big.Int.
func Modulus() *big.Int {
	return new(big.Int).Set(&_modulus)
}

// NewElement returns an Element set to v. Any unsigned integer fits well
// below q, so the result is canonical.
func NewElement[T constraints.Unsigned](v T) Element {
	return Element{}.SetUint64(uint64(v))
}

// NewElementFromLimbs returns an Element with the given raw limb storage,
// least significant limb first. The value is taken as is: limbs encoding an
// integer in [q, 2^256) yield a valid but non-canonical representative.
// This is the only constructor that can produce non-canonical storage.
func NewElementFromLimbs(limbs [Limbs]uint32) Element {
	return Element(limbs)
}

// Limbs returns a copy of the raw limb storage, least significant first.
func (z Element) Limbs() [Limbs]uint32 {
	return z
}

// words returns the stored integer as 64-bit words.
func (z Element) words() uint256.Uint256 {
	return uint256.Uint256{
		uint64(z[0]) | uint64(z[1])<<32,
		uint64(z[2]) | uint64(z[3])<<32,
		uint64(z[4]) | uint64(z[5])<<32,
		uint64(z[6]) | uint64(z[7])<<32,
	}
}

// fromWords splits 64-bit words into limb storage.
func fromWords(w uint256.Uint256) Element {
	return Element{
		uint32(w[0]), uint32(w[0] >> 32),
		uint32(w[1]), uint32(w[1] >> 32),
		uint32(w[2]), uint32(w[2] >> 32),
		uint32(w[3]), uint32(w[3] >> 32),
	}
}

// canonicalWords returns the canonical value of z as 64-bit words. Any
// 256-bit integer is below 2q, so a single conditional subtraction reduces.
func (z Element) canonicalWords() uint256.Uint256 {
	w := z.words()
	if w.Cmp(&q) >= 0 {
		w.Sub(&w, &q)
	}
	return w
}

// Canonical returns z with canonical storage: the unique representative of
// its residue class in [0, q). Canonicalization is idempotent.
func (z Element) Canonical() Element {
	return fromWords(z.canonicalWords())
}

// IsCanonical reports whether the stored integer is already in [0, q).
func (z Element) IsCanonical() bool {
	w := z.words()
	return w.Cmp(&q) < 0
}

// SetUint64 returns an Element set to v, occupying limbs 0-1. The result is
// canonical and canonicalizes back to exactly v.
func (z Element) SetUint64(v uint64) Element {
	return Element{uint32(v), uint32(v >> 32)}
}

// SetUint96 returns an Element set to lo + hi·2^64, occupying limbs 0-2.
// The caller does not need to reduce: 96 bits is far below q.
func (z Element) SetUint96(lo uint64, hi uint32) Element {
	return Element{uint32(lo), uint32(lo >> 32), hi}
}

// SetUint128 returns an Element set to lo + hi·2^64, occupying limbs 0-3.
// The caller does not need to reduce: 128 bits is far below q.
func (z Element) SetUint128(lo, hi uint64) Element {
	return Element{uint32(lo), uint32(lo >> 32), uint32(hi), uint32(hi >> 32)}
}

// SetBigInt returns an Element storing the low 256 bits of |v|. Values
// wider than 256 bits are truncated: keeping v in range is the caller's
// obligation, checked only under the debug build tag. The result is stored
// as is and is canonical whenever v is in [0, q).
func (z Element) SetBigInt(v *big.Int) Element {
	debug.Assert(v.Sign() >= 0 && v.BitLen() <= Bits, "value does not fit in 256 bits")
	var w uint256.Uint256
	w.SetBigInt(v)
	return fromWords(w)
}

// SetInterface converts, in order of preference, an Element, *big.Int,
// big.Int, unsigned or signed integer, decimal/0x/0b string or big-endian
// byte slice into an Element. Unlike [Element.SetBigInt] it reduces
// arbitrary-width and negative inputs modulo q, so the result is always
// canonical.
func (z Element) SetInterface(i1 interface{}) (Element, error) {
	var v big.Int

	switch c1 := i1.(type) {
	case Element:
		return c1, nil
	case *Element:
		if c1 == nil {
			return Element{}, errors.New("fp: nil *Element")
		}
		return *c1, nil
	case big.Int:
		v.Set(&c1)
	case *big.Int:
		if c1 == nil {
			return Element{}, errors.New("fp: nil *big.Int")
		}
		v.Set(c1)
	case uint8:
		return z.SetUint64(uint64(c1)), nil
	case uint16:
		return z.SetUint64(uint64(c1)), nil
	case uint32:
		return z.SetUint64(uint64(c1)), nil
	case uint64:
		return z.SetUint64(c1), nil
	case uint:
		return z.SetUint64(uint64(c1)), nil
	case int8:
		v.SetInt64(int64(c1))
	case int16:
		v.SetInt64(int64(c1))
	case int32:
		v.SetInt64(int64(c1))
	case int64:
		v.SetInt64(c1)
	case int:
		v.SetInt64(int64(c1))
	case string:
		if _, ok := v.SetString(c1, 0); !ok {
			return Element{}, fmt.Errorf("fp: can't parse %q into an Element", c1)
		}
	case []byte:
		v.SetBytes(c1)
	default:
		return Element{}, fmt.Errorf("fp: can't convert %T into an Element", i1)
	}

	v.Mod(&v, &_modulus)
	if v.Sign() < 0 {
		v.Add(&v, &_modulus)
	}
	return z.SetBigInt(&v), nil
}

// BigInt returns the canonical value of z, in [0, q).
func (z Element) BigInt() *big.Int {
	w := z.canonicalWords()
	return w.BigInt()
}

// RawBigInt returns the stored integer without reduction, in [0, 2^256).
// It exposes the representation, not the field value; use [Element.BigInt]
// for the latter.
func (z Element) RawBigInt() *big.Int {
	w := z.words()
	return w.BigInt()
}

// Equal reports whether z and x denote the same field value, i.e. whether
// their canonical forms are equal, regardless of storage.
func (z Element) Equal(x Element) bool {
	return z.canonicalWords() == x.canonicalWords()
}

// Cmp compares the canonical values of z and x and returns -1, 0 or 1.
func (z Element) Cmp(x Element) int {
	zw, xw := z.canonicalWords(), x.canonicalWords()
	return zw.Cmp(&xw)
}

// IsZero reports whether z is the zero element, whatever its storage.
func (z Element) IsZero() bool {
	w := z.canonicalWords()
	return w.IsZero()
}

// IsOne reports whether z is the multiplicative identity.
func (z Element) IsOne() bool {
	return z.canonicalWords() == one.words()
}

// Hash64 returns an xxhash digest of the canonical 64-bit digits of z, so
// that equal values hash equal regardless of storage.
func (z Element) Hash64() uint64 {
	b := z.Canonical().Bytes()
	return xxhash.Sum64(b[:])
}

// String returns the canonical value in base 10.
func (z Element) String() string {
	return z.BigInt().String()
}

// Text returns the canonical value in the given base (2 <= base <= 62).
func (z Element) Text(base int) string {
	return z.BigInt().Text(base)
}
