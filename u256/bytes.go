package u256

import (
	"github.com/holiman/uint256"

	"github.com/calebcase/vmint/arith"
	"github.com/calebcase/vmint/fixedbytes"
)

// addressHighBytes is the part of a 20 byte address held in the high limb.
const addressHighBytes = 4

// FromBEBytes32 decodes a 32 byte big-endian buffer.
func FromBEBytes32(b fixedbytes.Bytes32) (u U256) {
	u.n.SetBytes32(b[:])

	return u
}

// ToBEBytes32 encodes a as 32 big-endian bytes.
func (a U256) ToBEBytes32() fixedbytes.Bytes32 {
	return a.n.Bytes32()
}

// FromLEBytes32 decodes a 32 byte little-endian buffer. The low limb comes
// first.
func FromLEBytes32(b fixedbytes.Bytes32) U256 {
	var be fixedbytes.Bytes32
	copy(be[:], fixedbytes.Bytes(b[:]).Reverse())

	return FromBEBytes32(be)
}

// ToLEBytes32 encodes a as 32 little-endian bytes.
func (a U256) ToLEBytes32() (out fixedbytes.Bytes32) {
	be := a.n.Bytes32()
	copy(out[:], fixedbytes.Bytes(be[:]).Reverse())

	return out
}

// FromBEBytes20 decodes a 20 byte big-endian address. The first 4 bytes are
// the high limb and the remaining 16 the low limb.
func FromBEBytes20(b fixedbytes.Bytes20) (u U256) {
	var high, low uint256.Int

	high.SetBytes(b[:addressHighBytes])
	low.SetBytes(b[addressHighBytes:])

	u.n.Lsh(&high, LimbBits)
	u.n.Or(&u.n, &low)

	return u
}

// ToBEBytes20 encodes a as a 20 byte big-endian address. It fails with
// OverflowError if the high limb does not fit 4 bytes.
func (a U256) ToBEBytes20() (b fixedbytes.Bytes20, err error) {
	high := a.High()
	if high.Word().BitLen() > addressHighBytes*8 {
		return b, arith.OverflowError.New("high limb %s does not fit %d bytes", high, addressHighBytes)
	}

	return a.n.Bytes20(), nil
}

// FromBEBytes decodes a big-endian value of at most 32 bytes. It fails with
// ValueError for longer input.
func FromBEBytes(data []byte) (u U256, err error) {
	if len(data) > 32 {
		return u, arith.ValueError.New("%d bytes exceeds maximum of 32", len(data))
	}

	u.n.SetBytes(data)

	return u, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is always
// 32 big-endian bytes.
func (a U256) MarshalBinary() (data []byte, err error) {
	b := a.ToBEBytes32()

	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *U256) UnmarshalBinary(data []byte) (err error) {
	u, err := FromBEBytes(data)
	if err != nil {
		return err
	}

	*a = u

	return nil
}
