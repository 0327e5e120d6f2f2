package fp

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/consensys/emfield/internal/uint256"
)

// SetRandom returns a uniform element of [0, q) drawn from src by rejection
// sampling: 32 bytes are read and reinterpreted as a 256-bit integer, and
// any candidate ≥ q is thrown away. The rejection is strict so the
// candidate exactly equal to q is resampled too, never stored as a
// non-canonical zero. A candidate is rejected with probability about
// 2^-224, so the loop all but never runs twice.
//
// The only error condition is a failing reader.
func (z Element) SetRandom(src io.Reader) (Element, error) {
	var buf [Bytes]byte
	for {
		if _, err := io.ReadFull(src, buf[:]); err != nil {
			return Element{}, fmt.Errorf("fp: read random bytes: %w", err)
		}
		w := uint256.Uint256{
			binary.LittleEndian.Uint64(buf[0:8]),
			binary.LittleEndian.Uint64(buf[8:16]),
			binary.LittleEndian.Uint64(buf[16:24]),
			binary.LittleEndian.Uint64(buf[24:32]),
		}
		if w.Cmp(&q) < 0 {
			return fromWords(w), nil
		}
	}
}

// MustRandom returns a uniform element of [0, q) drawn from src and panics
// if the reader fails.
func MustRandom(src io.Reader) Element {
	e, err := Element{}.SetRandom(src)
	if err != nil {
		panic(err)
	}
	return e
}
