// Generator of the per-field constants files. Every derived value (limb
// decompositions, folding constant, two-adicity, generators) is recomputed
// from the modulus and re-verified before being written, so regenerating
// cannot silently ship a placeholder or a stale constant.
package main

import (
	"fmt"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/consensys/bavard"

	"github.com/consensys/emfield/field"
)

const copyrightHolder = "Consensys Software Inc."

var bgen = bavard.NewBatchGenerator(copyrightHolder, 2020, "consensys/emfield")

//go:generate go run .
func main() {
	secp256k1Fp := fieldData{
		RootPath:       "../../field/secp256k1/fp/",
		Package:        "fp",
		ModulusDecimal: "115792089237316195423570985008687907853269984665640564039457584007908834671663",
		ModulusSparse:  "2^256 - 2^32 - 2^9 - 2^8 - 2^7 - 2^6 - 2^4 - 1",
		// bound large enough to peel every small factor of q-1; the cofactor
		// must then pass a primality test
		trialDivisionBound: 1 << 16,
	}
	secp256k1Fp.derive()

	entries := []bavard.Entry{
		{File: filepath.Join(secp256k1Fp.RootPath, "constants.go"), Templates: []string{"constants.go.tmpl"}},
	}
	if err := bgen.Generate(secp256k1Fp, secp256k1Fp.Package, "./template/", entries...); err != nil {
		panic(err)
	}
}

// fieldData is the template payload for one 8x32-limb Crandall field.
type fieldData struct {
	RootPath       string
	Package        string
	ModulusDecimal string
	ModulusSparse  string

	trialDivisionBound uint64

	// derived
	ModulusHex  string
	Words       [4]string // q as 64-bit words, little endian, hex
	CrandallHex string    // c = 2^256 - q
	NegOne      string    // q-1 as an Element literal
	GenDecimal  string    // smallest multiplicative group generator
	Gen         string
	PowGen      string // generator of the order-2^TwoAdicity subgroup
	TwoAdicity  uint
	Factors     []string // prime factorization of q-1, with multiplicity
}

func (d *fieldData) derive() {
	q, ok := new(big.Int).SetString(d.ModulusDecimal, 10)
	if !ok {
		panic("invalid modulus " + d.ModulusDecimal)
	}
	if !q.ProbablyPrime(64) {
		panic("modulus is not prime")
	}
	if q.BitLen() != 256 {
		panic(fmt.Sprintf("modulus is %d bits, expected 256", q.BitLen()))
	}
	d.ModulusHex = q.Text(16)

	for i := range d.Words {
		var w big.Int
		w.Rsh(q, uint(64*i))
		d.Words[i] = fmt.Sprintf("0x%016x", w.Uint64())
	}

	two256 := new(big.Int).Lsh(big.NewInt(1), 256)
	c := new(big.Int).Sub(two256, q)
	if !c.IsUint64() {
		panic("2^256 - q does not fit one word: not a Crandall modulus")
	}
	d.CrandallHex = fmt.Sprintf("%#x", c.Uint64())

	qMinus1 := new(big.Int).Sub(q, big.NewInt(1))
	d.NegOne = limbs(qMinus1)

	factors, cofactor := field.TrialDivide(qMinus1, d.trialDivisionBound)
	if cofactor.Cmp(big.NewInt(1)) != 0 {
		if !cofactor.ProbablyPrime(64) {
			panic("cofactor of q-1 is composite; raise the trial division bound")
		}
		factors = append(factors, cofactor)
	}
	for _, f := range factors {
		d.Factors = append(d.Factors, f.String())
	}

	gen, err := field.FindMultiplicativeGenerator(q, factors)
	if err != nil {
		panic(err)
	}
	d.GenDecimal = gen.String()
	d.Gen = limbs(gen)

	d.TwoAdicity = field.TwoAdicity(q)

	// generator of the largest power-of-two-order subgroup:
	// gen^((q-1) / 2^s), order-checked before emission
	e := new(big.Int).Rsh(qMinus1, d.TwoAdicity)
	powGen := new(big.Int).Exp(gen, e, q)
	if err := field.VerifyPowerOfTwoGenerator(powGen, q, d.TwoAdicity); err != nil {
		panic(err)
	}
	d.PowGen = limbs(powGen)
}

// limbs renders v as an Element literal: 8 little-endian 32-bit limbs.
func limbs(v *big.Int) string {
	var parts [8]string
	for i := range parts {
		var w big.Int
		w.Rsh(v, uint(32*i))
		limb := uint32(w.Uint64())
		if limb < 10 {
			parts[i] = fmt.Sprintf("%d", limb)
		} else {
			parts[i] = fmt.Sprintf("0x%08x", limb)
		}
	}
	return "Element{" + strings.Join(parts[:], ", ") + "}"
}
