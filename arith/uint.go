package arith

import (
	"math/big"

	"github.com/holiman/uint256"
)

// MaxBits is the widest bit length a Uint may have.
const MaxBits = 252

var (
	// bound is the exclusive ceiling of the Uint domain (2^252).
	bound = new(uint256.Int).Lsh(uint256.NewInt(1), MaxBits)

	// RangeCheckBound is the exclusive bound on DivMod quotients (2^128).
	RangeCheckBound = MustUint(new(big.Int).Lsh(big.NewInt(1), 128))

	// DivisorBound is the inclusive bound on DivMod divisors (2^124).
	DivisorBound = MustUint(new(big.Int).Lsh(big.NewInt(1), MaxBits-128))

	// MaxUint is the largest Uint (2^252 - 1).
	MaxUint = Uint{w: *new(uint256.Int).Sub(bound, uint256.NewInt(1))}
)

// Uint is a nonnegative integer below 2^252. The zero value is 0.
type Uint struct {
	w uint256.Int
}

// NewUint returns x as a Uint.
func NewUint(x uint64) Uint {
	return Uint{w: *uint256.NewInt(x)}
}

// UintFromBig converts x. It fails with ValueError if x is negative or does
// not fit the domain.
func UintFromBig(x *big.Int) (u Uint, err error) {
	if x.Sign() < 0 {
		return u, ValueError.New("negative value: %s", x)
	}

	w, overflow := uint256.FromBig(x)
	if overflow {
		return u, ValueError.New("value exceeds %d bits: %s", MaxBits, x)
	}

	return UintFromWord(w)
}

// UintFromWord converts a raw 256-bit word. It fails with ValueError if the
// word does not fit the domain.
func UintFromWord(w *uint256.Int) (u Uint, err error) {
	if !w.Lt(bound) {
		return u, ValueError.New("value exceeds %d bits: %s", MaxBits, w.ToBig())
	}

	u.w = *w

	return u, nil
}

// MustUint is like UintFromBig but panics on error. It is meant for package
// level constants.
func MustUint(x *big.Int) Uint {
	u, err := UintFromBig(x)
	if err != nil {
		panic(err)
	}

	return u
}

// Word returns a copy of the underlying 256-bit word.
func (u Uint) Word() *uint256.Int {
	return u.w.Clone()
}

// Big returns u as a new big.Int.
func (u Uint) Big() *big.Int {
	return u.w.ToBig()
}

// Uint64 returns u as a uint64. It fails with ValueError if u does not fit.
func (u Uint) Uint64() (uint64, error) {
	if !u.w.IsUint64() {
		return 0, ValueError.New("value exceeds 64 bits: %s", u)
	}

	return u.w.Uint64(), nil
}

// IsZero reports whether u == 0.
func (u Uint) IsZero() bool {
	return u.w.IsZero()
}

// Cmp returns -1, 0, or +1 depending on whether u is less than, equal to, or
// greater than v.
func (u Uint) Cmp(v Uint) int {
	return u.w.Cmp(&v.w)
}

// Eq reports whether u == v.
func (u Uint) Eq(v Uint) bool {
	return u.w.Eq(&v.w)
}

// Lt reports whether u < v.
func (u Uint) Lt(v Uint) bool {
	return u.w.Lt(&v.w)
}

// Le reports whether u <= v.
func (u Uint) Le(v Uint) bool {
	return !v.w.Lt(&u.w)
}

func (u Uint) String() string {
	return u.w.ToBig().String()
}

// Add returns u+v. It fails with OverflowError if the sum leaves the domain.
func (u Uint) Add(v Uint) (r Uint, err error) {
	// Both operands are below 2^252, so the 256-bit sum cannot wrap.
	r.w.Add(&u.w, &v.w)
	if !r.w.Lt(bound) {
		return Uint{}, OverflowError.New("%s + %s exceeds %d bits", u, v, MaxBits)
	}

	return r, nil
}

// Sub returns u-v. It fails with OverflowError if v > u.
func (u Uint) Sub(v Uint) (r Uint, err error) {
	if u.w.Lt(&v.w) {
		return Uint{}, OverflowError.New("%s - %s underflows", u, v)
	}

	r.w.Sub(&u.w, &v.w)

	return r, nil
}

// Mul returns u*v. It fails with OverflowError if the product leaves the
// domain.
func (u Uint) Mul(v Uint) (r Uint, err error) {
	_, overflow := r.w.MulOverflow(&u.w, &v.w)
	if overflow || !r.w.Lt(bound) {
		return Uint{}, OverflowError.New("%s * %s exceeds %d bits", u, v, MaxBits)
	}

	return r, nil
}

// MarshalBinary implements encoding.BinaryMarshaler. The encoding is the
// minimal big-endian form.
func (u Uint) MarshalBinary() (data []byte, err error) {
	data = u.w.Bytes()

	// Note: uint256 encodes zero as an empty byte array, but we desire zero
	// to be an actual zero byte.
	if len(data) == 0 {
		data = []byte{0}
	}

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (u *Uint) UnmarshalBinary(data []byte) (err error) {
	if len(data) > 32 {
		return ValueError.New("too many bytes for a word: %d", len(data))
	}

	v, err := UintFromWord(new(uint256.Int).SetBytes(data))
	if err != nil {
		return err
	}

	*u = v

	return nil
}
