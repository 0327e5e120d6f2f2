package fp

import (
	"encoding/binary"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// The wire form of an Element is its raw limb image: 32 bytes, little
// endian, exactly as stored. It is deliberately not canonicalized, so a
// non-canonical representative survives a round trip bit for bit. Consumers
// using a decoded value in comparisons must go through the canonicalizing
// operations (Equal, Cmp, BigInt, ...), which every identity-sensitive
// method of this package does anyway.

// Bytes returns the raw limb image of z: 32 bytes, little endian, exactly
// as stored.
func (z Element) Bytes() [Bytes]byte {
	var b [Bytes]byte
	for i, limb := range z {
		binary.LittleEndian.PutUint32(b[4*i:], limb)
	}
	return b
}

// SetBytes returns an Element with the raw limb image b, as produced by
// [Element.Bytes]. The storage is taken as is and may be non-canonical.
func (z Element) SetBytes(b []byte) (Element, error) {
	if len(b) != Bytes {
		return Element{}, fmt.Errorf("fp: invalid element length %d, expected %d", len(b), Bytes)
	}
	var e Element
	for i := range e {
		e[i] = binary.LittleEndian.Uint32(b[4*i:])
	}
	return e, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// raw limb image of [Element.Bytes].
func (z Element) MarshalBinary() ([]byte, error) {
	b := z.Bytes()
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (z *Element) UnmarshalBinary(data []byte) error {
	e, err := Element{}.SetBytes(data)
	if err != nil {
		return err
	}
	*z = e
	return nil
}

// MarshalCBOR implements cbor.Marshaler. An Element encodes as the plain
// array of its 8 limbs, mirroring the derived encoding of the trace format
// this type is exchanged in.
func (z Element) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal([Limbs]uint32(z))
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (z *Element) UnmarshalCBOR(data []byte) error {
	var limbs [Limbs]uint32
	if err := cbor.Unmarshal(data, &limbs); err != nil {
		return fmt.Errorf("fp: decode element: %w", err)
	}
	*z = Element(limbs)
	return nil
}
