// Package fp implements arithmetic over the secp256k1 base field, the
// 256-bit prime field of modulus
//
//	q = 2^256 - 2^32 - 2^9 - 2^8 - 2^7 - 2^6 - 2^4 - 1
//
// The field is foreign to the proving systems that consume it: their native
// arithmetic lives in a different, smaller prime field, and they treat
// [Element] as an opaque value satisfying the capability contract of
// package field.
//
// # Representation
//
// An Element stores eight 32-bit limbs, least significant first, encoding an
// unsigned integer in [0, 2^256). The stored integer is a representative of
// its residue class modulo q and is not required to be canonical: the limb
// patterns for v and v+q denote the same field value. Arithmetic operators
// always return canonically stored results; non-canonical storage can only
// enter through [NewElementFromLimbs] and through wire decoding
// ([Element.SetBytes], binary and CBOR unmarshaling).
//
// Because of this, comparing Elements with == compares storage, not field
// values, and must not be used for semantic equality; use [Element.Equal].
// Equality, hashing, display and ordering all operate on the canonical form,
// so numerically equal values behave identically however they are stored.
//
// All operations are pure: they take and return values, never mutate their
// receiver, and are safe to call concurrently on any elements.
package fp
