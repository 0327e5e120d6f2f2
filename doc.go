// Package emfield provides foreign-field arithmetic types for arithmetic
// circuit proving systems: fields that are not the proving system's native
// field, exposed behind one generic capability contract.
//
// The module currently implements:
//   - field/secp256k1/fp: the secp256k1 base field, stored as 8 little-endian
//     32-bit limbs
//
// All field types satisfy the contract of the field package, so trace and
// constraint builders treat them as opaque values.
package emfield

import "github.com/blang/semver/v4"

var Version = semver.MustParse("0.1.0")
