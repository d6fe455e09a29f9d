// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

// OperandKind discriminates the variants of an Operand.
type OperandKind uint8

const (
	OpNone OperandKind = iota
	OpReg              // A register.
	OpMem              // A memory reference.
	OpImm              // The instruction's immediate.
	OpPcrel            // A resolved instruction-relative branch target.
)

func (k OperandKind) String() string {
	switch k {
	case OpNone:
		return "none"
	case OpReg:
		return "reg"
	case OpMem:
		return "mem"
	case OpImm:
		return "imm"
	case OpPcrel:
		return "pcrel"
	default:
		return "OperandKind(?)"
	}
}

// RegKind identifies a register file.
type RegKind uint8

const (
	RegGPR RegKind = iota
	RegFPU
	RegXMM
	RegYMM
	RegMMX
	RegSeg
	RegCR
	RegDR
	RegMask
)

func (k RegKind) String() string {
	switch k {
	case RegGPR:
		return "gpr"
	case RegFPU:
		return "fpu"
	case RegXMM:
		return "xmm"
	case RegYMM:
		return "ymm"
	case RegMMX:
		return "mmx"
	case RegSeg:
		return "seg"
	case RegCR:
		return "cr"
	case RegDR:
		return "dr"
	case RegMask:
		return "mask"
	default:
		return "RegKind(?)"
	}
}

// SegReg names a segment register, or SegNone for no override.
// The nonzero values match the x86 segment register encoding.
type SegReg uint8

const (
	SegES SegReg = iota
	SegCS
	SegSS
	SegDS
	SegFS
	SegGS
	SegNone SegReg = 0xff
)

func (s SegReg) String() string {
	switch s {
	case SegES:
		return "es"
	case SegCS:
		return "cs"
	case SegSS:
		return "ss"
	case SegDS:
		return "ds"
	case SegFS:
		return "fs"
	case SegGS:
		return "gs"
	case SegNone:
		return "none"
	default:
		return "SegReg(?)"
	}
}

// regNone marks an absent base or index register in a memory operand.
const regNone = 0xff

// Operand is one decoded operand. The zero value is an absent
// operand. An Operand is valid only as long as the Instruction it
// was read from.
type Operand struct {
	kind  OperandKind
	reg   RegKind // Register file, for OpReg.
	index uint8   // Register number, for OpReg.
	size  uint8   // Operand size in bytes. 0 for segment and x87 registers.

	// Memory reference fields, for OpMem.
	base     uint8 // Base register number, or regNone.
	memIndex uint8 // Index register number, or regNone.
	scale    uint8 // Index scale: 1, 2, 4, or 8.
	seg      SegReg
}

// Kind returns the operand's variant.
func (o Operand) Kind() OperandKind { return o.kind }

// Size returns the operand's size in bytes. Segment and x87
// register operands always report 0.
func (o Operand) Size() int { return int(o.size) }

// Reg returns the register file and register number of a register
// operand. It must only be called when Kind is OpReg.
func (o Operand) Reg() (RegKind, int) { return o.reg, int(o.index) }

// Base returns the base register of a memory operand, if present.
func (o Operand) Base() (reg int, ok bool) { return int(o.base), o.base != regNone }

// Index returns the index register of a memory operand, if present.
func (o Operand) Index() (reg int, ok bool) { return int(o.memIndex), o.memIndex != regNone }

// Scale returns the index register scale of a memory operand.
func (o Operand) Scale() int { return int(o.scale) }

// Segment returns the effective segment of a memory operand, after
// override resolution.
func (o Operand) Segment() SegReg { return o.seg }
