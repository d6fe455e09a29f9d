// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

// Register name tables, indexed by register number. These are used
// by the formatter; the decoder itself works with bare numbers.

var gpr8Names = [16]string{
	"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil",
	"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b",
}

// Without a REX prefix, registers 4 to 7 of the byte file are the
// legacy high-byte registers.
var gpr8LegacyNames = [8]string{
	"al", "cl", "dl", "bl", "ah", "ch", "dh", "bh",
}

var gpr16Names = [16]string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
}

var gpr32Names = [16]string{
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
}

var gpr64Names = [16]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

var segNames = [6]string{"es", "cs", "ss", "ds", "fs", "gs"}

var xmmNames = [16]string{
	"xmm0", "xmm1", "xmm2", "xmm3", "xmm4", "xmm5", "xmm6", "xmm7",
	"xmm8", "xmm9", "xmm10", "xmm11", "xmm12", "xmm13", "xmm14", "xmm15",
}

var ymmNames = [16]string{
	"ymm0", "ymm1", "ymm2", "ymm3", "ymm4", "ymm5", "ymm6", "ymm7",
	"ymm8", "ymm9", "ymm10", "ymm11", "ymm12", "ymm13", "ymm14", "ymm15",
}

var mmxNames = [8]string{"mm0", "mm1", "mm2", "mm3", "mm4", "mm5", "mm6", "mm7"}

var fpuNames = [8]string{"st0", "st1", "st2", "st3", "st4", "st5", "st6", "st7"}

var crNames = [16]string{
	"cr0", "cr1", "cr2", "cr3", "cr4", "cr5", "cr6", "cr7",
	"cr8", "cr9", "cr10", "cr11", "cr12", "cr13", "cr14", "cr15",
}

var drNames = [16]string{
	"dr0", "dr1", "dr2", "dr3", "dr4", "dr5", "dr6", "dr7",
	"dr8", "dr9", "dr10", "dr11", "dr12", "dr13", "dr14", "dr15",
}

var maskNames = [8]string{"k0", "k1", "k2", "k3", "k4", "k5", "k6", "k7"}

// gprName returns the name of general-purpose register reg at the
// given size in bytes. rex reports whether any REX prefix was
// present, which selects between the spl and ah families for byte
// registers.
func gprName(reg, size int, rex bool) string {
	switch size {
	case 1:
		if !rex && reg < 8 {
			return gpr8LegacyNames[reg]
		}

		return gpr8Names[reg&15]
	case 2:
		return gpr16Names[reg&15]
	case 8:
		return gpr64Names[reg&15]
	default:
		return gpr32Names[reg&15]
	}
}

// regName returns the name of register reg in the given register
// file. size and rex matter only for general-purpose registers.
func regName(kind RegKind, reg, size int, rex bool) string {
	switch kind {
	case RegGPR:
		return gprName(reg, size, rex)
	case RegFPU:
		return fpuNames[reg&7]
	case RegXMM:
		return xmmNames[reg&15]
	case RegYMM:
		return ymmNames[reg&15]
	case RegMMX:
		return mmxNames[reg&7]
	case RegSeg:
		return segNames[reg%6]
	case RegCR:
		return crNames[reg&15]
	case RegDR:
		return drNames[reg&15]
	case RegMask:
		return maskNames[reg&7]
	default:
		return "?"
	}
}
