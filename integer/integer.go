package integer

import (
	"github.com/holiman/uint256"

	"github.com/calebcase/vmint/arith"
)

// MaxUintBytes is the widest big-endian input accepted for a Uint. A 31 byte
// value is at most 248 bits and always fits the domain.
const MaxUintBytes = 31

var thirtyTwo = arith.NewUint(32)

// Ceil32 rounds value up to the next multiple of 32.
func Ceil32(value arith.Uint) (_ arith.Uint, err error) {
	_, r, err := arith.DivMod(value, thirtyTwo)
	if err != nil {
		return arith.Uint{}, err
	}

	if r.IsZero() {
		return value, nil
	}

	// r < 32 so the subtraction cannot fail.
	pad, _ := thirtyTwo.Sub(r)

	return value.Add(pad)
}

// BitLength returns the number of bits needed to represent value, 0 for 0.
func BitLength(value arith.Uint) (int, error) {
	return WordBitLength(value.Word())
}

// WordBitLength is BitLength for a raw 256-bit word. It fails with
// OutOfRangeError when the result exceeds arith.MaxBits.
func WordBitLength(w *uint256.Int) (n int, err error) {
	n = w.BitLen()
	if n == 0 {
		return 0, nil
	}

	if n > arith.MaxBits {
		return 0, arith.OutOfRangeError.New("bit length %d exceeds %d", n, arith.MaxBits)
	}

	// 2^(n-1) <= w < 2^n
	lo := new(uint256.Int).Lsh(uint256.NewInt(1), uint(n-1))
	hi := new(uint256.Int).Lsh(lo, 1)
	if w.Lt(lo) || !w.Lt(hi) {
		return 0, arith.OutOfRangeError.New("bit length %d does not bound %s", n, w.ToBig())
	}

	return n, nil
}

// UintFromBEBytes decodes a big-endian value of at most MaxUintBytes bytes.
func UintFromBEBytes(data []byte) (arith.Uint, error) {
	w, err := fromBEBytes(data, MaxUintBytes)
	if err != nil {
		return arith.Uint{}, err
	}

	return arith.UintFromWord(w)
}

// UintToBEBytes returns the minimal big-endian encoding of value. Zero
// encodes as an empty slice.
func UintToBEBytes(value arith.Uint) []byte {
	return value.Word().Bytes()
}

func fromBEBytes(data []byte, maxLen int) (*uint256.Int, error) {
	if len(data) > maxLen {
		return nil, arith.ValueError.New("%d bytes exceeds maximum of %d", len(data), maxLen)
	}

	return new(uint256.Int).SetBytes(data), nil
}
