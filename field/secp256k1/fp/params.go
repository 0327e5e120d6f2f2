package fp

import (
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"

	"github.com/consensys/emfield/field"
)

// Element satisfies the generic field contract; the trace and constraint
// systems consuming this package only ever see that surface.
var _ field.Element[Element] = Element{}

// Fp provides the type parametrization of the secp256k1 base field for
// generic field code:
//   - limbs: 8
//   - limb width: 32 bits
//
// Its Modulus comes from gnark-crypto, the authoritative source for the
// curve constants; tests pin the package-local copy of q against it.
type Fp struct{}

var _ field.PrimeParams = Fp{}

func (Fp) NbLimbs() uint     { return Limbs }
func (Fp) BitsPerLimb() uint { return LimbBits }
func (Fp) IsPrime() bool     { return true }
func (Fp) Modulus() *big.Int { return ecc.SECP256K1.BaseField() }

// Characteristic of a prime field is the modulus itself.
func (Fp) Characteristic() *big.Int { return Modulus() }

// TwoAdicity returns 1: q-1 ≡ 2 (mod 4).
func (Fp) TwoAdicity() uint { return twoAdicity }

func (Fp) MultiplicativeGenerator() *big.Int { return multiplicativeGenerator.BigInt() }
func (Fp) PowerOfTwoGenerator() *big.Int     { return powerOfTwoGenerator.BigInt() }

// QMinusOneFactors returns the prime factorization of q-1, with
// multiplicity. It is the evidence backing the pinned generator constants:
// field.CheckPrimeParams(Fp{}, QMinusOneFactors()) re-verifies them.
func QMinusOneFactors() []*big.Int {
	factors := make([]*big.Int, len(qMinusOneFactors))
	for i, s := range qMinusOneFactors {
		f, ok := new(big.Int).SetString(s, 10)
		if !ok {
			panic("fp: invalid generated factor " + s)
		}
		factors[i] = f
	}
	return factors
}
