// Package ieee754 implements the IEEE 754-2019 operations that Go's native
// operators do not fully expose: bit-level classification into the ten number
// classes, the totalOrder and totalOrderMag predicates, quiet and signaling
// comparison predicates, the eight minimum/maximum variants of section 9.6,
// sign-bit operations that preserve NaN payloads, and a NaN payload codec.
//
// All operations in this package are pure functions over float64 (plain
// names) and float32 (names with a 32 suffix). Byte-level interchange lives
// in the wire subpackage, format layout constants in the format subpackage,
// and the software floating-point environment (rounding mode and exception
// flags) in the fenv subpackage.
package ieee754
