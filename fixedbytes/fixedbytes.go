// Package fixedbytes provides the length tagged byte sequences exchanged with
// the numeric types.
package fixedbytes

import (
	"github.com/calebcase/vmint/arith"
)

// Bytes is a variable length byte sequence.
type Bytes []byte

// Bytes4 is exactly 4 bytes.
type Bytes4 [4]byte

// Bytes8 is exactly 8 bytes.
type Bytes8 [8]byte

// Bytes20 is exactly 20 bytes, the width of an address.
type Bytes20 [20]byte

// Bytes32 is exactly 32 bytes, the width of a word.
type Bytes32 [32]byte

func exact(dst, src []byte) error {
	if len(src) != len(dst) {
		return arith.ValueError.New("expected %d bytes, got %d", len(dst), len(src))
	}

	copy(dst, src)

	return nil
}

// NewBytes4 copies b. It fails with ValueError unless len(b) == 4.
func NewBytes4(b []byte) (out Bytes4, err error) {
	err = exact(out[:], b)

	return out, err
}

// NewBytes8 copies b. It fails with ValueError unless len(b) == 8.
func NewBytes8(b []byte) (out Bytes8, err error) {
	err = exact(out[:], b)

	return out, err
}

// NewBytes20 copies b. It fails with ValueError unless len(b) == 20.
func NewBytes20(b []byte) (out Bytes20, err error) {
	err = exact(out[:], b)

	return out, err
}

// NewBytes32 copies b. It fails with ValueError unless len(b) == 32.
func NewBytes32(b []byte) (out Bytes32, err error) {
	err = exact(out[:], b)

	return out, err
}

// PadLeft returns b left padded with zeros to size bytes. It fails with
// ValueError if b is already longer than size.
func (b Bytes) PadLeft(size int) (Bytes, error) {
	if len(b) > size {
		return nil, arith.ValueError.New("cannot pad %d bytes to %d", len(b), size)
	}

	out := make(Bytes, size)
	copy(out[size-len(b):], b)

	return out, nil
}

// PadRight returns b right padded with zeros to size bytes. It fails with
// ValueError if b is already longer than size.
func (b Bytes) PadRight(size int) (Bytes, error) {
	if len(b) > size {
		return nil, arith.ValueError.New("cannot pad %d bytes to %d", len(b), size)
	}

	out := make(Bytes, size)
	copy(out, b)

	return out, nil
}

// Reverse returns a reversed copy of b.
func (b Bytes) Reverse() Bytes {
	out := make(Bytes, len(b))
	for i, c := range b {
		out[len(b)-1-i] = c
	}

	return out
}
