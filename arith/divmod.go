package arith

import "github.com/holiman/uint256"

// DivMod returns the quotient and remainder of value divided by div.
//
// The divisor must lie in (0, DivisorBound] and the quotient must be below
// RangeCheckBound; anything else is a DivisionError.
func DivMod(value, div Uint) (q, r Uint, err error) {
	if div.IsZero() {
		return q, r, DivisionError.New("division by zero")
	}
	if DivisorBound.Lt(div) {
		return q, r, DivisionError.New("divisor %s exceeds bound %s", div, DivisorBound)
	}

	q.w.DivMod(&value.w, &div.w, &r.w)

	if !q.Lt(RangeCheckBound) {
		return Uint{}, Uint{}, DivisionError.New(
			"quotient of %s / %s exceeds bound %s",
			value,
			div,
			RangeCheckBound,
		)
	}

	err = checkDivMod(value, div, q, r)
	if err != nil {
		return Uint{}, Uint{}, err
	}

	return q, r, nil
}

// checkDivMod verifies value == q*div + r and r < div.
func checkDivMod(value, div, q, r Uint) (err error) {
	if !r.Lt(div) {
		return DivisionError.New("remainder %s not below divisor %s", r, div)
	}

	var product uint256.Int

	_, overflow := product.MulOverflow(&q.w, &div.w)
	if overflow {
		return DivisionError.New("quotient %s times divisor %s overflows", q, div)
	}

	_, overflow = product.AddOverflow(&product, &r.w)
	if overflow || !product.Eq(&value.w) {
		return DivisionError.New(
			"%s * %s + %s does not equal %s",
			q,
			div,
			r,
			value,
		)
	}

	return nil
}

// Div returns the quotient of value divided by div under the same rules as
// DivMod.
func Div(value, div Uint) (q Uint, err error) {
	q, _, err = DivMod(value, div)

	return q, err
}

// Mod returns the remainder of value divided by div under the same rules as
// DivMod.
func Mod(value, div Uint) (r Uint, err error) {
	_, r, err = DivMod(value, div)

	return r, err
}
