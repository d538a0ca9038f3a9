// Package fee implements elastic fee pricing on top of a saturating
// approximation of factor * e^(numerator/denominator).
//
// Series
//
// TaylorExponential sums the terms of the power series one at a time:
//
//  acc_1 = factor * denominator
//  acc_i = acc_(i-1) * numerator / (denominator * (i-1))
//  output = (acc_1 + acc_2 + ...) / denominator
//
// The sum stops when a term reaches zero, or as soon as acc * numerator would
// reach 2^128. In the second case the overflowing term is not added and the
// partial sum is returned. This saturation is a pricing policy and not an
// error.
//
// Blob Gas
//
// BlobGasPrice and ExcessBlobGas follow the Cancun blob fee market:
//
//  price  = TaylorExponential(MinBlobGasPrice, excess, BlobGasPriceUpdateFraction)
//  excess = max(parentExcess + parentUsed - TargetBlobGasPerBlock, 0)
package fee
