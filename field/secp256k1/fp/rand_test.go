package fp

import (
	"testing"

	"github.com/leanovate/gopter"
	"golang.org/x/crypto/chacha20"
)

// chachaStream is a deterministic randomness source for tests: the keystream
// of chacha20 under a fixed key. Reruns see the exact same bytes.
type chachaStream struct {
	c *chacha20.Cipher
}

func newChachaStream(tb testing.TB, seed byte) *chachaStream {
	tb.Helper()
	key := make([]byte, chacha20.KeySize)
	key[0] = seed
	c, err := chacha20.NewUnauthenticatedCipher(key, make([]byte, chacha20.NonceSize))
	if err != nil {
		tb.Fatal(err)
	}
	return &chachaStream{c: c}
}

func (s *chachaStream) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	s.c.XORKeyStream(p, p)
	return len(p), nil
}

// genElement draws uniform canonical elements from a deterministic stream.
func genElement(src *chachaStream) gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		return gopter.NewGenResult(MustRandom(src), gopter.NoShrinker)
	}
}

// nonCanonical returns a second limb image of the same residue class as x,
// obtained by adding q to the canonical value. Only values below
// 2^256 - q ≈ 2^33 have one; ok is false otherwise.
func nonCanonical(x Element) (Element, bool) {
	v := x.BigInt()
	v.Add(v, Modulus())
	if v.BitLen() > Bits {
		return Element{}, false
	}
	return Element{}.SetBigInt(v), true
}
