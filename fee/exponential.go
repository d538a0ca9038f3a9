package fee

import (
	"github.com/holiman/uint256"

	"github.com/calebcase/vmint/arith"
)

// saturation is the bound on acc * numerator (2^128).
var saturation = arith.RangeCheckBound.Word()

// TaylorExponential approximates factor * e^(numerator/denominator).
//
// It fails with DivisionError if denominator is zero or above
// arith.DivisorBound or if the result reaches arith.RangeCheckBound, and with
// OverflowError if factor * denominator leaves the host domain.
func TaylorExponential(factor, numerator, denominator arith.Uint) (_ arith.Uint, err error) {
	if denominator.IsZero() {
		return arith.Uint{}, arith.DivisionError.New("zero denominator")
	}

	acc, err := factor.Mul(denominator)
	if err != nil {
		return arith.Uint{}, err
	}

	var output, div arith.Uint

	for i := arith.NewUint(1); !acc.IsZero(); {
		output, err = output.Add(acc)
		if err != nil {
			return arith.Uint{}, err
		}

		var next uint256.Int

		_, overflow := next.MulOverflow(acc.Word(), numerator.Word())
		if overflow || !next.Lt(saturation) {
			break
		}

		div, err = denominator.Mul(i)
		if err != nil {
			return arith.Uint{}, err
		}

		// next < 2^128 so it is inside the domain.
		n, _ := arith.UintFromWord(&next)

		acc, _, err = arith.DivMod(n, div)
		if err != nil {
			return arith.Uint{}, err
		}

		i, err = i.Add(arith.NewUint(1))
		if err != nil {
			return arith.Uint{}, err
		}
	}

	q, _, err := arith.DivMod(output, denominator)
	if err != nil {
		return arith.Uint{}, err
	}

	return q, nil
}
