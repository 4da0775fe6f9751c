// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2026 The foldcrc Authors

package crc

// Table scans buf one byte at a time through the model's 256-entry
// table. It is the fallback path for Calc on short input and the
// universal reference the other paths are checked against.
//
// crc is the running CRC in-convention (neither init nor xorout applied);
// callers seed a new stream with model.Init() and finalize with
// (*Model).Finalize.
func (m *Model) Table(crc uint64, buf []byte) uint64 {
	if m.refin {
		return m.tableRefl(crc, buf)
	}
	return m.tableNonRefl(crc, buf)
}

func (m *Model) tableRefl(crc uint64, buf []byte) uint64 {
	for _, b := range buf {
		crc = (crc >> 8) ^ m.table[(crc^uint64(b))&0xff]
	}
	return crc
}

func (m *Model) tableNonRefl(crc uint64, buf []byte) uint64 {
	mask := mask64(m.width)
	if m.width >= 8 {
		shift := m.width - 8
		for _, b := range buf {
			idx := ((crc >> shift) ^ uint64(b)) & 0xff
			crc = ((crc << 8) ^ m.table[idx]) & mask
		}
		return crc
	}
	// Sub-byte widths: the byte-table consumption formula above assumes
	// width >= 8 (it shifts by width-8). Fall back to the bit-serial
	// primitive, XORing each message bit into the register's top bit,
	// which is correct for any width.
	for _, b := range buf {
		for k := 7; k >= 0; k-- {
			bit := uint64(b>>uint(k)) & 1
			crc = stepNonRefl(crc^(bit<<(m.width-1)), 0, m.width, m.poly)
		}
	}
	return crc
}

// Finalize applies xorout and, if refout != refin, the width-bit
// reflection. crc is the in-convention running value returned by Table,
// Calc, or Combine.
func (m *Model) Finalize(crc uint64) uint64 {
	if m.refout != m.refin {
		crc = reflect64(crc, m.width)
	}
	return crc ^ m.xorout
}
