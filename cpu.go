// SPDX-License-Identifier: MIT-0
// SPDX-FileCopyrightText:  2026 The foldcrc Authors

package crc

import "github.com/klauspost/cpuid/v2"

// hasCLMUL reports whether the running CPU exposes a hardware carry-less
// multiply unit. clmul64 in gf2.go is a portable Go implementation used
// regardless of this flag; hasCLMUL exists so Calc can skip the folding
// engine entirely on hardware where it would buy nothing over the table
// scan, rather than paying the folding loop's extra bookkeeping for no
// benefit. A build linking a real PCLMULQDQ kernel would gate on the same
// flag without touching any other file.
var hasCLMUL = cpuid.CPU.Supports(cpuid.PCLMULQDQ, cpuid.SSSE3)
