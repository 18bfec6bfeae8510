// Package wire is the byte-level codec between native floating-point values
// and the IEEE 754-2019 binary interchange encodings.
//
// Encoding is total and lossless: every bit of the native representation,
// sign included, maps onto the format's byte layout and is then permuted by
// the caller-selected byte order. Decoding reverses the permutation and
// reinterprets the bits; it accepts every bit pattern of the format and
// fails only when the input length does not match the format's byte width.
// Little-endian output is always the exact byte reversal of big-endian
// output, NaN and infinity included.
//
// binary64 and binary32 round-trip bit-exactly. binary16 is a conversion
// codec over float32: decoding widens exactly, encoding narrows with
// round-to-nearest-even and preserves NaN-ness (payloads may collapse
// through the narrowing).
//
// The slice codec batches values over contiguous buffers, optionally in
// parallel, and block.go adds LZ4/ZSTD block compression for bulk frames.
package wire
