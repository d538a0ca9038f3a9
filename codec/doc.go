// Package codec encodes and decodes numbers tagged with their kind.
//
// Every kind has a fixed big-endian width except Uint, which uses the minimal
// big-endian form (a single zero byte for zero):
//
//  | Kind | Abbr | Width     | Decoded into |
//  |------|------|-----------|--------------|
//  | Uint | uint | 1..32     | arith.Uint   |
//  | U64  | u64  | 8         | integer.U64  |
//  | U256 | u256 | 32        | u256.U256    |
//  | U384 | u384 | 48        | u384.U384    |
//  |------|------|-----------|--------------|
//
// Decoding accepts any input up to the kind's width; shorter input is zero
// extended on the left.
package codec
