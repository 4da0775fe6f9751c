// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2026 The foldcrc Authors

package crc

// catalogEntry names a concrete CRC algorithm and its known-answer check
// value for "123456789".
type catalogEntry struct {
	name                 string
	width                uint8
	poly, init, xorout   uint64
	refin, refout        bool
	check                uint64
}

var catalog = []catalogEntry{
	{
		name: "crc32", width: 32, poly: 0x04c11db7,
		init: 0xffffffff, refin: true, refout: true, xorout: 0xffffffff,
		check: 0xcbf43926,
	},
	{
		name: "crc32_mpeg", width: 32, poly: 0x04c11db7,
		init: 0xffffffff, refin: false, refout: false, xorout: 0,
		check: 0x0376e6e7,
	},
	{
		name: "crc64_xz", width: 64, poly: 0x42f0e1eba9ea3693,
		init: 0xffffffffffffffff, refin: true, refout: true, xorout: 0xffffffffffffffff,
		check: 0x995dc9bbdf1939fa,
	},
	{
		name: "crc64_we", width: 64, poly: 0x42f0e1eba9ea3693,
		init: 0xffffffffffffffff, refin: false, refout: false, xorout: 0xffffffffffffffff,
		check: 0x62ec59e3f1a4f00a,
	},
	{
		name: "crc16_ibm", width: 16, poly: 0x8005,
		init: 0x0000, refin: true, refout: true, xorout: 0x0000,
		check: 0xbb3d,
	},
	{
		name: "crc16_ccitt_false", width: 16, poly: 0x1021,
		init: 0xffff, refin: false, refout: false, xorout: 0x0000,
		check: 0x29b1,
	},
	{
		name: "crc8", width: 8, poly: 0x07,
		init: 0x00, refin: false, refout: false, xorout: 0x00,
		check: 0xf4,
	},
}

func (e catalogEntry) compile() *Model {
	m, err := Compile(e.width, e.poly, e.init, e.refin, e.refout, e.xorout)
	if err != nil {
		panic(err)
	}
	return m
}
