// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2026 The foldcrc Authors

package crc

// Combine merges the in-convention CRC of a message A and the
// in-convention CRC of a message B, given only the byte length of B, into
// the in-convention CRC of A‖B, without rescanning A's bytes.
//
// A CRC is linear in its input once the effect of init is isolated.
// Writing shift(v, n) for v's residue advanced by n zero bytes
// (multiplication by x^(8n) mod P), the running value after A‖B satisfies
//
//	combined = shift(crcA, lenB) XOR crcB XOR shift(init, lenB)
//
// The last term cancels init's contribution that crcB's own computation
// already folded in from its own (independent) start of stream — without
// it, two nonzero-init streams combine incorrectly. When init is 0 this
// reduces to the textbook prev*x^(8n)+next formula. lenB's bits select
// precomputed powers from combineTable by repeated squaring, avoiding
// per-call exponentiation.
func (m *Model) Combine(crcA, crcB uint64, lenB uint64) uint64 {
	shiftedA := m.shift(crcA, lenB)
	shiftedInit := m.shift(m.init, lenB)
	return shiftedA ^ crcB ^ shiftedInit
}

// shift multiplies v by x^(8*n) mod P using combineTable's precomputed
// powers of x^(8*2^i), selected by the set bits of n.
func (m *Model) shift(v uint64, n uint64) uint64 {
	if n == 0 {
		return v
	}
	result := v
	for i := 0; n != 0; i++ {
		if n&1 == 1 {
			result = m.modMulNative(result, m.combineTable[i])
		}
		n >>= 1
	}
	return result
}
