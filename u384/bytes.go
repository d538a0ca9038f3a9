package u384

import (
	"github.com/calebcase/vmint/arith"
)

// FromBEBytes decodes a big-endian value of at most MaxBytes bytes. An empty
// input is zero.
func FromBEBytes(data []byte) (u U384, err error) {
	if len(data) > MaxBytes {
		return u, arith.ValueError.New("%d bytes exceeds maximum of %d", len(data), MaxBytes)
	}

	full, partial, err := arith.DivMod(arith.NewUint(uint64(len(data))), limbBytes)
	if err != nil {
		return u, err
	}

	// Both values are small; see the length check above.
	n, _ := full.Uint64()
	rest, _ := partial.Uint64()

	end := len(data)
	for i := 0; i < int(n); i++ {
		u.d[i] = limbFromBytes(data[end-LimbBytes : end])
		end -= LimbBytes
	}

	if rest != 0 {
		u.d[n] = limbFromBytes(data[:rest])
	}

	return u, nil
}

// ToBEBytes encodes a as exactly length big-endian bytes. It fails with
// ValueError if length is outside [0, MaxBytes] and with OverflowError if
// the value does not fit length bytes.
func (a U384) ToBEBytes(length int) ([]byte, error) {
	buf, err := a.bytes48(length)
	if err != nil {
		return nil, err
	}

	for _, b := range buf[:MaxBytes-length] {
		if b != 0 {
			return nil, arith.OverflowError.New("%s does not fit %d bytes", a, length)
		}
	}

	return buf[MaxBytes-length:], nil
}

// TruncatedBEBytes encodes the low length bytes of a big-endian. Bytes of
// higher limbs that do not fit are dropped. It fails with ValueError if
// length is outside [0, MaxBytes].
func (a U384) TruncatedBEBytes(length int) ([]byte, error) {
	buf, err := a.bytes48(length)
	if err != nil {
		return nil, err
	}

	return buf[MaxBytes-length:], nil
}

func (a U384) bytes48(length int) ([]byte, error) {
	if length < 0 || length > MaxBytes {
		return nil, arith.ValueError.New("length %d outside [0, %d]", length, MaxBytes)
	}

	buf := make([]byte, MaxBytes)
	for i, d := range a.d {
		w := d.Word().Bytes32()
		end := MaxBytes - i*LimbBytes
		copy(buf[end-LimbBytes:end], w[len(w)-LimbBytes:])
	}

	return buf, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is always
// MaxBytes big-endian bytes.
func (a U384) MarshalBinary() (data []byte, err error) {
	return a.ToBEBytes(MaxBytes)
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (a *U384) UnmarshalBinary(data []byte) (err error) {
	u, err := FromBEBytes(data)
	if err != nil {
		return err
	}

	*a = u

	return nil
}
