package arith

import "github.com/zeebo/errs"

// Error kinds shared by every package in the module.
var (
	// DivisionError reports an invalid or out of bound divisor, or a
	// division result that fails its defining equation.
	DivisionError = errs.Class("division")

	// OverflowError reports a result that does not fit the fixed width of
	// its type. Underflow is reported with the same kind.
	OverflowError = errs.Class("overflow")

	// ValueError reports a byte length beyond a type's capacity or a
	// narrowing conversion whose source lies outside the target domain.
	ValueError = errs.Class("value")

	// OutOfRangeError reports a bit length beyond MaxBits.
	OutOfRangeError = errs.Class("out of range")
)
