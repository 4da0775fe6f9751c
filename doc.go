// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2026 The foldcrc Authors

// Package crc implements a parameterized Cyclic Redundancy Check engine
// for any CRC model of width 1 through 64 bits.
//
// A Model is compiled once from the six parameters that define a CRC
// algorithm (width, polynomial, initial value, reflection flags, final
// XOR) via Compile. The compiled Model is immutable and may be shared
// across goroutines. Three operations then consume it:
//
//   - Table, a byte-at-a-time table lookup, used for any input and as
//     the fallback path for the folding engine.
//   - Calc, a carry-less-multiplication folding engine that is the fast
//     path for inputs of 128 bytes or more.
//   - Combine, which merges the CRCs of two byte sequences into the CRC
//     of their concatenation without rescanning either one.
//
// Running CRC values are plain uint64s threaded explicitly between
// calls; the package holds no state of its own beyond a compiled Model.
package crc
