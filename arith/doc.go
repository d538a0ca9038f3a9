// Package arith provides the bounded host integer domain that every fixed
// width type in this module is built on.
//
// Domain
//
// A Uint holds a nonnegative integer strictly below 2^252. Results that would
// reach or exceed that ceiling are reported as errors, never reduced:
//
//  | Bound           | Value          | Meaning                               |
//  |-----------------|----------------|---------------------------------------|
//  | MaxBits         | 252            | widest representable bit length       |
//  | RangeCheckBound | 2^128          | exclusive bound on DivMod quotients   |
//  | DivisorBound    | 2^124          | inclusive bound on DivMod divisors    |
//  |-----------------|----------------|---------------------------------------|
//
// Division
//
// DivMod computes the quotient and remainder directly and then checks them
// against their defining equation:
//
//  value = quotient * div + remainder
//  0 <= remainder < div
//  0 <= quotient < RangeCheckBound
//
// A divisor of zero, a divisor above DivisorBound, or a quotient that would
// not fit below RangeCheckBound is a DivisionError.
//
// Errors
//
// The error kinds are classes. Callers test for a kind with Has:
//
//  if arith.OverflowError.Has(err) {
//      ...
//  }
package arith
