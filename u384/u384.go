// Package u384 implements a 384-bit unsigned integer made of four 96-bit
// limbs, least significant first:
//
//  value = d0 + d1*2^96 + d2*2^192 + d3*2^288
//
// Limb byte layout of a 48 byte big-endian buffer:
//
//  | 0 ........ 11 | 12 ....... 23 | 24 ....... 35 | 36 ....... 47 |
//  |---------------|---------------|---------------|---------------|
//  | d3            | d2            | d1            | d0            |
//  |---------------|---------------|---------------|---------------|
//
// Shorter buffers are aligned to the tail, so the least significant limb is
// always filled first.
package u384

import (
	"math/big"

	"github.com/holiman/uint256"

	"github.com/calebcase/vmint/arith"
)

const (
	// Limbs is the number of limbs.
	Limbs = 4

	// LimbBits is the width of each limb.
	LimbBits = 96

	// LimbBytes is the width of each limb in bytes.
	LimbBytes = LimbBits / 8

	// MaxBytes is the widest byte encoding.
	MaxBytes = Limbs * LimbBytes
)

var limbBytes = arith.NewUint(LimbBytes)

// U384 is an immutable 384-bit unsigned integer. The zero value is 0.
type U384 struct {
	d [Limbs]arith.Uint
}

// Zero returns the canonical zero.
func Zero() U384 {
	return U384{}
}

// One returns the canonical one.
func One() U384 {
	return U384{d: [Limbs]arith.Uint{arith.NewUint(1)}}
}

// FromLimbs builds a U384 from its limbs, least significant first. It fails
// with ValueError if a limb is 2^96 or more.
func FromLimbs(d0, d1, d2, d3 arith.Uint) (u U384, err error) {
	for i, d := range [Limbs]arith.Uint{d0, d1, d2, d3} {
		if d.Word().BitLen() > LimbBits {
			return U384{}, arith.ValueError.New("limb d%d exceeds %d bits: %s", i, LimbBits, d)
		}

		u.d[i] = d
	}

	return u, nil
}

// Limbs returns the limbs of a, least significant first.
func (a U384) Limbs() [Limbs]arith.Uint {
	return a.d
}

// IsZero reports whether every limb is zero.
func (a U384) IsZero() bool {
	return a.Eq(Zero())
}

// IsOne reports whether d0 is one and every other limb is zero.
func (a U384) IsOne() bool {
	return a.Eq(One())
}

// Eq reports whether all four limbs of a and b are equal.
func (a U384) Eq(b U384) bool {
	for i := range a.d {
		if !a.d[i].Eq(b.d[i]) {
			return false
		}
	}

	return true
}

// Cmp returns -1, 0, or +1 depending on whether a is less than, equal to, or
// greater than b.
func (a U384) Cmp(b U384) int {
	for i := Limbs - 1; i >= 0; i-- {
		if c := a.d[i].Cmp(b.d[i]); c != 0 {
			return c
		}
	}

	return 0
}

// FromBig converts x. It fails with ValueError if x is negative or wider
// than 384 bits.
func FromBig(x *big.Int) (U384, error) {
	if x.Sign() < 0 {
		return U384{}, arith.ValueError.New("negative value: %s", x)
	}
	if x.BitLen() > Limbs*LimbBits {
		return U384{}, arith.ValueError.New("value exceeds %d bits: %s", Limbs*LimbBits, x)
	}

	return FromBEBytes(x.FillBytes(make([]byte, MaxBytes)))
}

// Big returns a as a new big.Int.
func (a U384) Big() *big.Int {
	x := new(big.Int)
	for i := Limbs - 1; i >= 0; i-- {
		x.Lsh(x, LimbBits)
		x.Add(x, a.d[i].Big())
	}

	return x
}

func (a U384) String() string {
	return a.Big().String()
}

func limbFromBytes(b []byte) arith.Uint {
	// At most 12 bytes, always inside the domain.
	u, _ := arith.UintFromWord(new(uint256.Int).SetBytes(b))

	return u
}
