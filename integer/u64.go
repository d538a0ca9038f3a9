package integer

import (
	"encoding/binary"
	"math/bits"

	"github.com/calebcase/vmint/arith"
)

// MaxU64Bytes is the widest big-endian input accepted for a U64.
const MaxU64Bytes = 8

// U64 is a 64-bit unsigned integer with checked arithmetic.
type U64 uint64

// U64FromBEBytes decodes a big-endian value of at most MaxU64Bytes bytes.
func U64FromBEBytes(data []byte) (U64, error) {
	w, err := fromBEBytes(data, MaxU64Bytes)
	if err != nil {
		return 0, err
	}

	return U64(w.Uint64()), nil
}

// U64FromUint narrows value. It fails with ValueError when value does not
// fit 64 bits.
func U64FromUint(value arith.Uint) (U64, error) {
	v, err := value.Uint64()
	if err != nil {
		return 0, err
	}

	return U64(v), nil
}

// ToUint widens u into the host domain.
func (u U64) ToUint() arith.Uint {
	return arith.NewUint(uint64(u))
}

// ToBEBytes8 returns u as exactly 8 big-endian bytes.
func (u U64) ToBEBytes8() (b [8]byte) {
	binary.BigEndian.PutUint64(b[:], uint64(u))

	return b
}

// Add returns u+v. It fails with OverflowError on carry.
func (u U64) Add(v U64) (U64, error) {
	sum, carry := bits.Add64(uint64(u), uint64(v), 0)
	if carry != 0 {
		return 0, arith.OverflowError.New("%d + %d exceeds 64 bits", u, v)
	}

	return U64(sum), nil
}

// Sub returns u-v. It fails with OverflowError on borrow.
func (u U64) Sub(v U64) (U64, error) {
	diff, borrow := bits.Sub64(uint64(u), uint64(v), 0)
	if borrow != 0 {
		return 0, arith.OverflowError.New("%d - %d underflows", u, v)
	}

	return U64(diff), nil
}

// Mul returns u*v. It fails with OverflowError if the product exceeds 64
// bits.
func (u U64) Mul(v U64) (U64, error) {
	hi, lo := bits.Mul64(uint64(u), uint64(v))
	if hi != 0 {
		return 0, arith.OverflowError.New("%d * %d exceeds 64 bits", u, v)
	}

	return U64(lo), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (u U64) MarshalBinary() (data []byte, err error) {
	b := u.ToBEBytes8()

	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *U64) UnmarshalBinary(data []byte) (err error) {
	v, err := U64FromBEBytes(data)
	if err != nil {
		return err
	}

	*u = v

	return nil
}
