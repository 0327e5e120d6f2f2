package field

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/emfield/logger"
)

var (
	ErrMissingModulus          = errors.New("field: missing or non-positive modulus")
	ErrLimbCapacity            = errors.New("field: limbs cannot hold the modulus")
	ErrNotPrime                = errors.New("field: modulus is not prime")
	ErrFactorNotPrime          = errors.New("field: factor is not prime")
	ErrIncompleteFactorization = errors.New("field: factor product does not equal modulus-1")
	ErrNotGenerator            = errors.New("field: not a generator")
	ErrWrongCharacteristic     = errors.New("field: characteristic differs from modulus")
	ErrWrongTwoAdicity         = errors.New("field: two-adicity does not match modulus")
)

var bigOne = big.NewInt(1)

// CheckParams validates the structural parameters of a field: the modulus is
// present, fits the declared limb decomposition and, when the field claims to
// be prime, passes a Miller-Rabin test. It is meant to run once at
// registration time, never inside arithmetic.
func CheckParams(p Params) error {
	q := p.Modulus()
	if q == nil || q.Sign() <= 0 {
		return ErrMissingModulus
	}
	if capacity := p.NbLimbs() * p.BitsPerLimb(); uint(q.BitLen()) > capacity {
		return fmt.Errorf("%w: %d modulus bits, %d×%d limb bits", ErrLimbCapacity, q.BitLen(), p.NbLimbs(), p.BitsPerLimb())
	}
	if p.IsPrime() && !q.ProbablyPrime(20) {
		return ErrNotPrime
	}

	log := logger.Logger()
	log.Debug().
		Uint("nbLimbs", p.NbLimbs()).
		Uint("bitsPerLimb", p.BitsPerLimb()).
		Int("modulusBits", q.BitLen()).
		Bool("prime", p.IsPrime()).
		Msg("field parameters validated")
	return nil
}

// CheckPrimeParams validates the prime-field constants of p against its own
// modulus q. qMinusOneFactors must be the complete prime factorization of
// q-1, with multiplicity; it is what makes the generator checks sound.
func CheckPrimeParams(p PrimeParams, qMinusOneFactors []*big.Int) error {
	if err := CheckParams(p); err != nil {
		return err
	}
	q := p.Modulus()
	if p.Characteristic().Cmp(q) != 0 {
		return ErrWrongCharacteristic
	}
	if s := TwoAdicity(q); p.TwoAdicity() != s {
		return fmt.Errorf("%w: declared %d, derived %d", ErrWrongTwoAdicity, p.TwoAdicity(), s)
	}
	if err := VerifyMultiplicativeGenerator(p.MultiplicativeGenerator(), q, qMinusOneFactors); err != nil {
		return err
	}
	return VerifyPowerOfTwoGenerator(p.PowerOfTwoGenerator(), q, p.TwoAdicity())
}

// TwoAdicity returns the exponent of the largest power of two dividing q-1,
// i.e. the size of the largest power-of-two-order subgroup of the
// multiplicative group of GF(q).
func TwoAdicity(q *big.Int) uint {
	var m big.Int
	m.Sub(q, bigOne)
	if m.Sign() <= 0 {
		return 0
	}
	var s uint
	for m.Bit(int(s)) == 0 {
		s++
	}
	return s
}

// SmallPrimes returns all primes up to and including bound, in increasing
// order. The sieve allocates bound bits, so this is intended for the modest
// bounds of trial division, not for prime hunting.
func SmallPrimes(bound uint64) []uint64 {
	if bound < 2 {
		return nil
	}
	composite := bitset.New(uint(bound) + 1)
	var primes []uint64
	for n := uint64(2); n <= bound; n++ {
		if composite.Test(uint(n)) {
			continue
		}
		primes = append(primes, n)
		for m := n * n; m <= bound; m += n {
			composite.Set(uint(m))
		}
	}
	return primes
}

// TrialDivide strips all prime factors up to bound from n. It returns the
// factors found, in nondecreasing order with multiplicity, together with the
// remaining cofactor (1 when n factored completely). The caller is
// responsible for dealing with the cofactor, typically by checking its
// primality.
func TrialDivide(n *big.Int, bound uint64) (factors []*big.Int, cofactor *big.Int) {
	cofactor = new(big.Int).Set(n)
	var quo, rem, p big.Int
	for _, sp := range SmallPrimes(bound) {
		p.SetUint64(sp)
		for {
			quo.QuoRem(cofactor, &p, &rem)
			if rem.Sign() != 0 {
				break
			}
			factors = append(factors, new(big.Int).SetUint64(sp))
			cofactor.Set(&quo)
		}
	}
	return factors, cofactor
}

// checkFactorization verifies that factors is a complete prime factorization
// of qMinus1 and returns the distinct factors.
func checkFactorization(qMinus1 *big.Int, factors []*big.Int) ([]*big.Int, error) {
	product := big.NewInt(1)
	var distinct []*big.Int
	seen := make(map[string]struct{}, len(factors))
	for _, f := range factors {
		if !f.ProbablyPrime(20) {
			return nil, fmt.Errorf("%w: %s", ErrFactorNotPrime, f)
		}
		product.Mul(product, f)
		if _, ok := seen[f.String()]; !ok {
			seen[f.String()] = struct{}{}
			distinct = append(distinct, f)
		}
	}
	if product.Cmp(qMinus1) != 0 {
		return nil, ErrIncompleteFactorization
	}
	return distinct, nil
}

// isGenerator reports whether g generates the full multiplicative group,
// given the distinct prime factors of qMinus1: g is a generator iff
// g^((q-1)/f) != 1 for every factor f.
func isGenerator(g, q, qMinus1 *big.Int, distinct []*big.Int) bool {
	if g.Cmp(bigOne) <= 0 || g.Cmp(q) >= 0 {
		return false
	}
	var e, pow big.Int
	for _, f := range distinct {
		e.Quo(qMinus1, f)
		pow.Exp(g, &e, q)
		if pow.Cmp(bigOne) == 0 {
			return false
		}
	}
	return true
}

// VerifyMultiplicativeGenerator checks that g generates the multiplicative
// group of GF(q). factors must be the complete prime factorization of q-1,
// with multiplicity; the check is only as strong as that factorization, so
// it is validated first (primality of each factor, product equal to q-1).
func VerifyMultiplicativeGenerator(g, q *big.Int, factors []*big.Int) error {
	qMinus1 := new(big.Int).Sub(q, bigOne)
	distinct, err := checkFactorization(qMinus1, factors)
	if err != nil {
		return err
	}
	if !isGenerator(g, q, qMinus1, distinct) {
		return fmt.Errorf("%w: %s does not generate the multiplicative group of GF(%s)", ErrNotGenerator, g, q)
	}
	return nil
}

// FindMultiplicativeGenerator returns the smallest generator of the
// multiplicative group of GF(q), given the complete prime factorization of
// q-1. This is the verified search used to derive the pinned generator
// constants; it is deterministic, so regenerating constants always yields
// the same value.
func FindMultiplicativeGenerator(q *big.Int, factors []*big.Int) (*big.Int, error) {
	qMinus1 := new(big.Int).Sub(q, bigOne)
	distinct, err := checkFactorization(qMinus1, factors)
	if err != nil {
		return nil, err
	}
	for g := big.NewInt(2); g.Cmp(q) < 0; g.Add(g, bigOne) {
		if isGenerator(g, q, qMinus1, distinct) {
			return g, nil
		}
	}
	// unreachable for a prime q > 2 with a correct factorization
	return nil, fmt.Errorf("%w: no generator below %s", ErrNotGenerator, q)
}

// VerifyPowerOfTwoGenerator checks that g has order exactly 2^s in GF(q):
// g^(2^s) = 1 and, for s > 0, g^(2^(s-1)) != 1. With s the two-adicity of q
// this pins g as a generator of the largest power-of-two-order subgroup.
func VerifyPowerOfTwoGenerator(g, q *big.Int, s uint) error {
	if g.Sign() <= 0 || g.Cmp(q) >= 0 {
		return fmt.Errorf("%w: %s out of range", ErrNotGenerator, g)
	}
	order := new(big.Int).Lsh(bigOne, s)
	pow := new(big.Int).Exp(g, order, q)
	if pow.Cmp(bigOne) != 0 {
		return fmt.Errorf("%w: %s^(2^%d) != 1", ErrNotGenerator, g, s)
	}
	if s > 0 {
		pow.Exp(g, order.Rsh(order, 1), q)
		if pow.Cmp(bigOne) == 0 {
			return fmt.Errorf("%w: order of %s divides 2^%d", ErrNotGenerator, g, s-1)
		}
	}
	return nil
}
