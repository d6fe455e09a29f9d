// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

// PrefixFlags records which instruction prefixes were present.
type PrefixFlags uint8

const (
	FlagRep   PrefixFlags = 1 << iota // F3 repeat prefix.
	FlagRepnz                         // F2 repeat-not-zero prefix.
	FlagLock                          // F0 lock prefix.
	FlagSeg                           // A segment override prefix. See Instruction.SegmentOverride.
	FlagVEX                           // A VEX prefix.
	FlagRexW                          // REX.W or VEX.W set.
)

// Instruction is one decoded instruction. It is filled in by Decode
// and read through its accessor methods; it holds no pointers and
// may live on the caller's stack.
type Instruction struct {
	mnemonic Mnemonic
	length   uint8
	opSize   uint8 // Effective operand size in bytes; 0 where unknowable.
	addrSize uint8 // Effective address size in bytes: 2, 4, or 8.
	flags    PrefixFlags
	segment  SegReg // Segment override prefix, or SegNone.
	rex      uint8  // Raw REX byte, or 0.

	operands [4]Operand
	imm      int64 // Decoded immediate, sign- or zero-extended.
	imm2     int64 // Second immediate (ENTER).
	disp     int64 // Memory displacement, sign-extended.
	addr     uint64
}

// Mnemonic returns the instruction's mnemonic.
func (in *Instruction) Mnemonic() Mnemonic { return in.mnemonic }

// Len returns the instruction's length in bytes (1 to 15).
func (in *Instruction) Len() int { return int(in.length) }

// Address returns the virtual address passed to Decode.
func (in *Instruction) Address() uint64 { return in.addr }

// OperandSize returns the effective operand size in bytes, or 0 for
// instructions whose operand size is fixed, over-approximated, or
// architecturally irregular (CMPXCHG8B, the descriptor-table loads,
// most x87 memory forms, and similar).
func (in *Instruction) OperandSize() int { return int(in.opSize) }

// AddressSize returns the effective address size in bytes.
func (in *Instruction) AddressSize() int { return int(in.addrSize) }

// Flags returns the decoded prefix flags.
func (in *Instruction) Flags() PrefixFlags { return in.flags }

// HasLock reports whether a LOCK prefix was present.
func (in *Instruction) HasLock() bool { return in.flags&FlagLock != 0 }

// HasRep reports whether an F3 prefix was present. For SCAS and
// CMPS the F3 prefix means REPZ; it is still reported here, and the
// caller distinguishes by mnemonic.
func (in *Instruction) HasRep() bool { return in.flags&FlagRep != 0 }

// HasRepnz reports whether an F2 prefix was present.
func (in *Instruction) HasRepnz() bool { return in.flags&FlagRepnz != 0 }

// HasVEX reports whether the instruction was VEX-encoded.
func (in *Instruction) HasVEX() bool { return in.flags&FlagVEX != 0 }

// SegmentOverride returns the segment override prefix present on
// the instruction, or SegNone. In 64-bit mode overrides other than
// FS and GS are recorded here but do not affect memory operands.
func (in *Instruction) SegmentOverride() SegReg {
	if in.flags&FlagSeg == 0 {
		return SegNone
	}

	return in.segment
}

// Operand returns the i'th operand (0 to 3). Absent slots have kind
// OpNone.
func (in *Instruction) Operand(i int) Operand { return in.operands[i] }

// Immediate returns the decoded immediate value, sign- or
// zero-extended according to the encoding. It is meaningful only if
// an operand of kind OpImm is present.
func (in *Instruction) Immediate() int64 { return in.imm }

// Immediate2 returns the second immediate of the few instructions
// that carry two (ENTER).
func (in *Instruction) Immediate2() int64 { return in.imm2 }

// Displacement returns the sign-extended memory displacement. It is
// meaningful only if a memory operand is present.
func (in *Instruction) Displacement() int64 { return in.disp }

// PcrelTarget returns the resolved target of a PC-relative operand:
// the instruction address, plus its length, plus the encoded
// displacement, modulo 2^64.
func (in *Instruction) PcrelTarget() uint64 { return uint64(in.imm) }
