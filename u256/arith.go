package u256

import (
	"github.com/calebcase/vmint/arith"
)

// Add returns a+b. It fails with OverflowError if the sum carries out of the
// high limb.
func (a U256) Add(b U256) (r U256, err error) {
	r, carry := a.AddWithCarry(b)
	if carry {
		return U256{}, arith.OverflowError.New("%s + %s exceeds 256 bits", a, b)
	}

	return r, nil
}

// AddWithCarry returns a+b modulo 2^256 and whether the sum carried out of
// the high limb.
func (a U256) AddWithCarry(b U256) (r U256, carry bool) {
	_, carry = r.n.AddOverflow(&a.n, &b.n)

	return r, carry
}

// Sub returns a-b. It fails with OverflowError if b > a.
func (a U256) Sub(b U256) (r U256, err error) {
	r, borrow := a.SubWithBorrow(b)
	if borrow {
		return U256{}, arith.OverflowError.New("%s - %s underflows", a, b)
	}

	return r, nil
}

// SubWithBorrow returns a-b modulo 2^256 and whether the subtraction
// borrowed.
func (a U256) SubWithBorrow(b U256) (r U256, borrow bool) {
	_, borrow = r.n.SubOverflow(&a.n, &b.n)

	return r, borrow
}

// Mul returns a*b. It fails with OverflowError if the product exceeds 256
// bits.
func (a U256) Mul(b U256) (r U256, err error) {
	_, overflow := r.n.MulOverflow(&a.n, &b.n)
	if overflow {
		return U256{}, arith.OverflowError.New("%s * %s exceeds 256 bits", a, b)
	}

	return r, nil
}

// Cmp returns -1, 0, or +1 depending on whether a is less than, equal to, or
// greater than b. The high limb is compared first.
func (a U256) Cmp(b U256) int {
	return a.n.Cmp(&b.n)
}

// Eq reports whether both limbs of a and b are equal.
func (a U256) Eq(b U256) bool {
	return a.n.Eq(&b.n)
}

// Lt reports whether a < b.
func (a U256) Lt(b U256) bool {
	return a.n.Lt(&b.n)
}

// Le reports whether a <= b.
func (a U256) Le(b U256) bool {
	return !b.n.Lt(&a.n)
}

// Min returns the smaller of a and b, or a when they are equal.
func Min(a, b U256) U256 {
	if a.Le(b) {
		return a
	}

	return b
}

// Max returns the larger of a and b, or a when they are equal.
func Max(a, b U256) U256 {
	if b.Le(a) {
		return a
	}

	return b
}
