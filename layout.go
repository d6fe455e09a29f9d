// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

// The dispatch tables are a single flat array of 16-bit words,
// generated by cmd/gentables and committed in tables.go. The layout
// below is the data contract between the generator's emitter
// (internal/table) and the decoder; the two must change together.
//
// The array is a sequence of tables and terminals, each aligned to
// four words. A table entry is a link word:
//
//	link = offset<<1 | kind
//
// where offset is the word offset of the target (a multiple of 4,
// so the low three bits are free for the kind) and kind says how to
// index the target. A zero link is an invalid encoding.
//
// A terminal (kindInstr) is four words:
//
//	word 0: mnemonic
//	word 1: word offset of the operand template in templates
//	word 2: instruction flag word (iSizeFix1 etc. below)
//	word 3: reserved, zero
//
// Per-mode root tables have eight entries, indexed by the opcode
// map: escape (0 none, 1 0F, 2 0F38, 3 0F3A), plus 4 if the
// instruction is VEX-encoded with the same map in VEX.mmmmm.

// Byte-indexed tables below a density threshold are rewritten by
// the generator into a sparse form: a link with kind bits of zero
// but a nonzero offset points at a 128-word index array holding a
// one-byte slot number per opcode byte (zero for invalid), followed
// by the occupied entries. The lookup stays O(1).

// Table kinds.
const (
	kindNone     = 0 // Invalid encoding, or a sparse byte table if the offset is nonzero.
	kindInstr    = 1 // Terminal.
	kindTable256 = 2 // Indexed by the next opcode byte.
	kindTable8   = 3 // Indexed by ModR/M.reg.
	kindTable72  = 4 // Indexed by ModR/M.reg if mod != 3, else by 8 + (modrm - 0xC0).
	kindPrefix   = 5 // Indexed by mandatory prefix: none, 66, F3, F2 (VEX.pp order).
	kindVex      = 6 // Indexed by W + L·2.
	kindRep      = 7 // Indexed by repeat prefix: none, -, F3, F2.
)

func linkKind(w uint16) int   { return int(w & 7) }
func linkOffset(w uint16) int { return int(w>>3) << 2 }

// Instruction flag word (terminal word 2).
const (
	iSizeFix1Shift = 0 // 3 bits: size code for the fix1 slot.
	iSizeFix2Shift = 3 // 2 bits: size code minus one for the fix2 slot.
	iSize8         = 1 << 5  // Operand size is one byte.
	iDef64         = 1 << 6  // Operand size defaults to eight bytes in 64-bit mode.
	iLock          = 1 << 7  // A LOCK prefix is accepted on the memory form.
	iImmCtlShift   = 8       // 3 bits: immediate control, below.
	iImm64         = 1 << 11 // With an eight-byte operand size the immediate is eight bytes.
	iVsib          = 1 << 12 // The memory operand uses a vector SIB.
	iMemOnly       = 1 << 13 // ModR/M must name memory (mod != 3).
	iRegOnly       = 1 << 14 // ModR/M names a register regardless of mod.
)

// Immediate control (3 bits in the flag word).
const (
	immNone   = 0 // No immediate.
	immConst1 = 1 // The constant 1; no bytes consumed.
	immMoffs  = 2 // An absolute memory offset of address size.
	immIs4    = 3 // A register in the high nibble of an immediate byte.
	immVal    = 4 // An immediate, sized by the immediate operand.
	immVal8   = 5 // A one-byte immediate, sign-extended.
	immRel    = 6 // A PC-relative displacement, 16 or 32 bits.
	immRel8   = 7 // A one-byte PC-relative displacement.
)

// Size codes, used by the fix1 (3-bit) and fix2 (2-bit, offset by
// one) fields of the flag word.
var sizeCodeBytes = [8]uint8{0, 1, 2, 4, 8, 16, 32, 0}

// Operand templates are packed three-word records in templates,
// referenced by word offset from terminals:
//
//	word 0: operand routing
//	word 1: per-operand size selectors, two bits each
//	word 2: per-operand register files, three bits each
//
// Routing stores, for each operand source, the operand slot the
// source fills, as slot^3 in two bits so that zero means absent.
// An immediate control of immVal or higher with a zero immediate
// slot field means slot 3.
const (
	tModrmShift   = 0 // ModR/M r/m.
	tModregShift  = 2 // ModR/M reg, or the opcode low bits without ModR/M.
	tVexregShift  = 4 // VEX.vvvv.
	tZeroregShift = 6 // An implicit register.
	tImmShift     = 8 // The immediate.

	tZeroregIdxShift = 10 // 3 bits: the implicit register's number.
	tHasModRM        = 1 << 13
)

// Per-operand size selectors (template word 1).
const (
	szFix1 = 0 // The fix1 size code.
	szFix2 = 1 // The fix2 size code.
	szOp   = 2 // The effective operand size.
	szVec  = 3 // The vector size: 16, or 32 with VEX.L.
)

// Per-operand register files (template word 2). RegXMM and RegYMM
// are collapsed into rtVec and split by the operand's size.
const (
	rtGP   = 0
	rtFPU  = 1
	rtVec  = 2
	rtMask = 3
	rtMMX  = 4
	rtSeg  = 5
	rtCR   = 6
	rtDR   = 7
)

func tmplSlot(w uint16, shift int) int { return int(w>>shift) & 3 }
func tmplSize(w uint16, slot int) int  { return int(w>>(2*slot)) & 3 }
func tmplRegty(w uint16, slot int) int { return int(w>>(3*slot)) & 7 }
