// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2026 The foldcrc Authors

package crc

// Model is the immutable compiled descriptor of a CRC algorithm. It is
// produced once by Compile and is safe for concurrent use by multiple
// goroutines thereafter — every operation in this package is a pure
// function of (Model, running CRC, input).
type Model struct {
	width  uint8
	poly   uint64 // non-reflected, right-aligned, implicit leading x^width omitted
	refin  bool
	refout bool
	init   uint64 // in-convention (reflected if refin), as supplied to Compile
	xorout uint64

	reflPoly uint64 // poly reflected within width bits

	table [256]uint64 // in-convention byte table

	// Folding constants, computed in 64-bit aligned space: pAligned =
	// poly << (64-width), leading bit implicit at position 64. This lets
	// Calc use one hot-loop shape for every width instead of branching on
	// width vs. 64.
	pAligned uint64
	k1, k2   uint64 // already convention-adjusted per refin

	combineTable [64]uint64 // x^(8*2^i) mod P, native width
}

// Width reports the CRC bit-width, 1..64.
func (m *Model) Width() uint8 { return m.width }

// Init returns the model's initial register value, in-convention.
func (m *Model) Init() uint64 { return m.init }

// Compile derives a fully populated Model from the six parameters that
// define a CRC algorithm. It is the only fallible operation in this
// package: every error is a precondition violation caught here, so that
// Table, Calc, and Combine are infallible.
func Compile(width uint8, poly, init uint64, refin, refout bool, xorout uint64) (*Model, error) {
	if err := checkParams(width, poly, init, xorout); err != nil {
		return nil, err
	}

	m := &Model{
		width:    width,
		poly:     poly,
		refin:    refin,
		refout:   refout,
		init:     init,
		xorout:   xorout,
		reflPoly: reflect64(poly, width),
	}

	m.buildTable()
	m.buildFoldConstants()
	m.buildCombineTable()
	return m, nil
}

// buildTable computes table[b] = poly_mod(b << width, P), reflected per
// convention.
func (m *Model) buildTable() {
	for b := 0; b < 256; b++ {
		if m.refin {
			// Reflected table construction feeds the byte's own bits
			// LSB-first, followed by width zero bits (the x^width factor).
			m.table[b] = reduceRefl(0, uint64(b), int(m.width)+8, m.width, m.reflPoly)
		} else {
			hi, lo := shiftByteWide(byte(b), m.width)
			m.table[b] = reduceNonRefl(hi, lo, int(m.width)+8, m.width, m.poly)
		}
	}
}

// buildFoldConstants computes k1, k2 in 64-bit aligned space.
func (m *Model) buildFoldConstants() {
	m.pAligned = m.poly << (64 - m.width)
	if m.refin {
		m.k1 = reflect64(xPowAligned(m.pAligned, 512+63), 64)
		m.k2 = reflect64(xPowAligned(m.pAligned, 512-1), 64)
	} else {
		m.k1 = xPowAligned(m.pAligned, 512+64)
		m.k2 = xPowAligned(m.pAligned, 512)
	}
}

// buildCombineTable computes combine_table[i] = x^(8*2^i) mod P in native
// width, for use by Combine.
func (m *Model) buildCombineTable() {
	base := m.xPowNative(8)
	m.combineTable[0] = base
	for i := 1; i < 64; i++ {
		base = m.modMulNative(base, base)
		m.combineTable[i] = base
	}
}

// modMulNative multiplies two native-width ring elements (values already
// reduced mod P) and reduces the product back down, using the model's
// convention.
func (m *Model) modMulNative(a, b uint64) uint64 {
	hi, lo := clmul64(a, b)
	if m.refin {
		// The product of two reflected width-bit values has 2*width-1
		// coefficients, highest degree at bit 0.
		return reduceRefl(hi, lo, 2*int(m.width)-1, m.width, m.reflPoly)
	}
	return reduceNonRefl(hi, lo, 128, m.width, m.poly)
}

// xPowNative computes x^n mod P in native width via square-and-multiply.
func (m *Model) xPowNative(n uint64) uint64 {
	var base, result uint64
	if m.refin {
		base = reduceRefl(0, 1, 2, m.width, m.reflPoly) // x, reflected
		result = uint64(1) << (m.width - 1)             // 1, reflected
	} else {
		base = reduceNonRefl(0, 2, 128, m.width, m.poly)
		result = uint64(1) & mask64(m.width)
	}
	for n > 0 {
		if n&1 == 1 {
			result = m.modMulNative(result, base)
		}
		base = m.modMulNative(base, base)
		n >>= 1
	}
	return result
}

// xPowAligned computes x^n mod (x^64 + pAligned) — i.e. in the 64-bit
// aligned ring used by the folding engine — via square-and-multiply.
func xPowAligned(pAligned uint64, n uint64) uint64 {
	base := reduceNonRefl(0, 2, 128, 64, pAligned)
	result := uint64(1)
	for n > 0 {
		if n&1 == 1 {
			result = modMulAligned(result, base, pAligned)
		}
		base = modMulAligned(base, base, pAligned)
		n >>= 1
	}
	return result
}

// modMulAligned multiplies two 64-bit aligned ring elements.
func modMulAligned(a, b, pAligned uint64) uint64 {
	hi, lo := clmul64(a, b)
	return reduceNonRefl(hi, lo, 128, 64, pAligned)
}
