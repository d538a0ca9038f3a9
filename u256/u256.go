// Package u256 implements a 256-bit unsigned integer made of two 128-bit
// limbs with checked arithmetic.
//
// The magnitude of a U256 is high*2^128 + low. Arithmetic never wraps: a
// result that does not fit 256 bits is an arith.OverflowError, except for the
// WithCarry and WithBorrow variants which report the lost bit instead.
package u256

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/calebcase/vmint/arith"
)

// LimbBits is the width of each limb.
const LimbBits = 128

var (
	// limbMask selects the low limb.
	limbMask = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), LimbBits), uint256.NewInt(1))

	// MaxU256 is 2^256 - 1.
	MaxU256 = U256{n: *new(uint256.Int).SetAllOne()}
)

// U256 is an immutable 256-bit unsigned integer. The zero value is 0.
type U256 struct {
	n uint256.Int
}

// New builds a U256 from its limbs. It fails with ValueError if either limb
// is 2^128 or more.
func New(low, high arith.Uint) (u U256, err error) {
	lw, hw := low.Word(), high.Word()

	if lw.BitLen() > LimbBits || hw.BitLen() > LimbBits {
		return u, arith.ValueError.New("limb exceeds %d bits: low=%s high=%s", LimbBits, low, high)
	}

	u.n.Lsh(hw, LimbBits)
	u.n.Or(&u.n, lw)

	return u, nil
}

// FromUint64 returns x as a U256.
func FromUint64(x uint64) U256 {
	return U256{n: *uint256.NewInt(x)}
}

// FromUint widens u. Every Uint fits.
func FromUint(u arith.Uint) U256 {
	return U256{n: *u.Word()}
}

// FromBig converts x. It fails with ValueError if x is negative or wider
// than 256 bits.
func FromBig(x *big.Int) (u U256, err error) {
	if x.Sign() < 0 {
		return u, arith.ValueError.New("negative value: %s", x)
	}

	w, overflow := uint256.FromBig(x)
	if overflow {
		return u, arith.ValueError.New("value exceeds 256 bits: %s", x)
	}

	u.n = *w

	return u, nil
}

// ToUint narrows a into the host domain. It fails with ValueError when the
// high limb is 2^124 or more.
func (a U256) ToUint() (arith.Uint, error) {
	v, err := arith.UintFromWord(&a.n)
	if err != nil {
		return arith.Uint{}, arith.ValueError.New("high limb %s out of host range", a.High())
	}

	return v, nil
}

// Low returns the least significant limb.
func (a U256) Low() arith.Uint {
	var w uint256.Int
	w.And(&a.n, limbMask)

	// The limb is below 2^128, well inside the domain.
	u, _ := arith.UintFromWord(&w)

	return u
}

// High returns the most significant limb.
func (a U256) High() arith.Uint {
	var w uint256.Int
	w.Rsh(&a.n, LimbBits)

	u, _ := arith.UintFromWord(&w)

	return u
}

// Big returns a as a new big.Int.
func (a U256) Big() *big.Int {
	return a.n.ToBig()
}

func (a U256) String() string {
	return a.n.ToBig().String()
}

// IsZero reports whether a == 0.
func (a U256) IsZero() bool {
	return a.n.IsZero()
}
