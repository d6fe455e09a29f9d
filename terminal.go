// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

// terminal implements phases 4 to 6: consume the ModR/M byte, SIB,
// displacement, and immediate demanded by the terminal at the given
// word offset, then fill in the instruction record.
func (d *decoder) terminal(off int) error {
	m := Mnemonic(tableData[off])
	tmpl := int(tableData[off+1])
	fl := tableData[off+2]

	t0 := templates[tmpl]
	t1 := templates[tmpl+1]
	t2 := templates[tmpl+2]

	// A VEX.vvvv value that no operand consumes must encode
	// register zero.
	if d.vex && tmplSlot(t0, tVexregShift) == 0 && d.vreg != 0 {
		return ErrInvalid
	}

	mode64 := d.mode == Mode64

	// Effective sizes.
	opsize := 4
	switch {
	case fl&iSize8 != 0:
		opsize = 1
	case mode64 && d.extW:
		opsize = 8
	case d.p66:
		opsize = 2
	case mode64 && fl&iDef64 != 0:
		opsize = 8
	}

	addrsize := 4
	if mode64 {
		addrsize = 8
		if d.p67 {
			addrsize = 4
		}
	} else if d.p67 {
		addrsize = 2
	}

	vecsize := 16
	if d.vexL {
		vecsize = 32
	}

	sizes := [4]int{
		int(sizeCodeBytes[fl>>iSizeFix1Shift&7]),
		int(sizeCodeBytes[(fl>>iSizeFix2Shift&3)+1]),
		opsize,
		vecsize,
	}

	// Phase 4: ModR/M, SIB, displacement.
	var mod, reg, rm int
	var mem Operand
	hasMem := false
	if t0&tHasModRM != 0 || d.usedModRM {
		if err := d.readModRM(); err != nil {
			return err
		}

		d.pos++
		mod = int(d.modrm >> 6)
		reg = int(d.modrm >> 3 & 7)
		rm = int(d.modrm & 7)

		if fl&iRegOnly != 0 {
			// The mod field is ignored and r/m always names a
			// register (MOV to and from control registers).
			mod = 3
		}

		if mod == 3 {
			if fl&iMemOnly != 0 {
				return ErrInvalid
			}
		} else {
			hasMem = true
			var err error
			mem, err = d.memOperand(mod, rm, addrsize)
			if err != nil {
				return err
			}
		}
	}

	// LOCK is only legal on the memory form of an instruction
	// that permits it.
	if d.lock && (fl&iLock == 0 || !hasMem) {
		return ErrInvalid
	}

	// Phase 6 (operands), interleaved with phase 5 below so that
	// immediate bytes are consumed last.
	var ops [4]Operand

	if s := tmplSlot(t0, tModrmShift); s != 0 {
		slot := s ^ 3
		size := sizes[tmplSize(t1, slot)]
		if hasMem {
			mem.size = uint8(size)
			ops[slot] = mem
		} else {
			idx := rm
			if d.extB {
				idx |= 8
			}

			ops[slot] = regOperand(tmplRegty(t2, slot), idx, size)
		}
	}

	if s := tmplSlot(t0, tModregShift); s != 0 {
		slot := s ^ 3
		size := sizes[tmplSize(t1, slot)]
		var idx int
		if t0&tHasModRM != 0 {
			idx = reg
			if d.extR {
				idx |= 8
			}
		} else {
			// The register lives in the low bits of the opcode.
			idx = int(d.opc & 7)
			if d.extB {
				idx |= 8
			}
		}

		ops[slot] = regOperand(tmplRegty(t2, slot), idx, size)
	}

	if s := tmplSlot(t0, tVexregShift); s != 0 {
		slot := s ^ 3
		size := sizes[tmplSize(t1, slot)]
		ops[slot] = regOperand(tmplRegty(t2, slot), int(d.vreg), size)
	}

	if s := tmplSlot(t0, tZeroregShift); s != 0 {
		slot := s ^ 3
		size := sizes[tmplSize(t1, slot)]
		idx := int(t0 >> tZeroregIdxShift & 7)
		ops[slot] = regOperand(tmplRegty(t2, slot), idx, size)
	}

	// Phase 5: immediates.
	if ctl := int(fl >> iImmCtlShift & 7); ctl != immNone {
		// A zero slot field encodes slot 3 here.
		slot := tmplSlot(t0, tImmShift) ^ 3
		size := sizes[tmplSize(t1, slot)]

		switch ctl {
		case immConst1:
			d.inst.imm = 1
			ops[slot] = Operand{kind: OpImm, size: uint8(size)}

		case immMoffs:
			v, err := d.read(addrsize)
			if err != nil {
				return err
			}

			d.inst.disp = int64(v)
			ops[slot] = Operand{
				kind:     OpMem,
				base:     regNone,
				memIndex: regNone,
				scale:    1,
				seg:      d.effSeg(false),
				size:     uint8(size),
			}

		case immIs4:
			b, err := d.next()
			if err != nil {
				return err
			}

			idx := int(b >> 4)
			if !mode64 {
				idx &= 7
			}

			d.inst.imm = int64(b)
			ops[slot] = regOperand(rtVec, idx, size)

		case immVal, immVal8:
			n := 1
			if ctl == immVal {
				switch size {
				case 1:
					n = 1
				case 2:
					n = 2
				case 8:
					n = 4
					if fl&iImm64 != 0 {
						n = 8
					}
				default:
					n = 4
				}
			}

			v, err := d.read(n)
			if err != nil {
				return err
			}

			d.inst.imm = signed(v, n)
			ops[slot] = Operand{kind: OpImm, size: uint8(size)}

		case immRel, immRel8:
			n := 1
			if ctl == immRel {
				n = 4
				if opsize == 2 {
					n = 2
				}
			}

			v, err := d.read(n)
			if err != nil {
				return err
			}

			// The target is relative to the end of the
			// instruction, which is now known: the relative
			// field is always the final one.
			d.inst.imm = int64(d.addr + uint64(d.pos) + uint64(signed(v, n)))
			ops[slot] = Operand{kind: OpPcrel, size: uint8(size)}
		}
	}

	// ENTER carries a second, one-byte immediate.
	if m == ENTER {
		b, err := d.next()
		if err != nil {
			return err
		}

		d.inst.imm2 = int64(b)
		ops[1] = Operand{kind: OpImm, size: 1}
	}

	// The length is final; resolve a RIP-relative displacement.
	if d.ripRel {
		d.inst.disp = int64(d.addr + uint64(d.pos) + uint64(d.inst.disp))
	}

	// The reported operand size: meaningful only when some operand
	// is sized by the effective operand or vector size.
	opRep := 0
	usedOp, usedVec := false, false
	for slot := 0; slot < 4; slot++ {
		if ops[slot].kind == OpNone {
			continue
		}

		switch tmplSize(t1, slot) {
		case szOp:
			usedOp = true
		case szVec:
			usedVec = true
		}
	}
	switch {
	case usedOp:
		opRep = opsize
	case usedVec:
		opRep = vecsize
	}

	var fs PrefixFlags
	if d.rep == 0xF3 && !d.mandUsed {
		fs |= FlagRep
	}
	if d.rep == 0xF2 && !d.mandUsed {
		fs |= FlagRepnz
	}
	if d.lock {
		fs |= FlagLock
	}
	if d.seg != SegNone {
		fs |= FlagSeg
	}
	if d.vex {
		fs |= FlagVEX
	}
	if d.extW {
		fs |= FlagRexW
	}

	in := d.inst
	in.mnemonic = m
	in.length = uint8(d.pos)
	in.opSize = uint8(opRep)
	in.addrSize = uint8(addrsize)
	in.flags = fs
	in.segment = d.seg
	in.rex = d.rex
	in.operands = ops

	return nil
}

// regOperand builds a register operand from a template register
// file, a register number, and a size in bytes.
func regOperand(rt, idx, size int) Operand {
	op := Operand{kind: OpReg, index: uint8(idx), size: uint8(size)}
	switch rt {
	case rtGP:
		op.reg = RegGPR
	case rtFPU:
		op.reg = RegFPU
		op.index &= 7
		op.size = 0
	case rtVec:
		op.reg = RegXMM
		if size == 32 {
			op.reg = RegYMM
		}
	case rtMask:
		op.reg = RegMask
		op.index &= 7
	case rtMMX:
		op.reg = RegMMX
		op.index &= 7
	case rtSeg:
		op.reg = RegSeg
		op.size = 0
	case rtCR:
		op.reg = RegCR
	case rtDR:
		op.reg = RegDR
	}

	return op
}

// memOperand decodes the memory form of a ModR/M byte, including
// any SIB byte and displacement.
func (d *decoder) memOperand(mod, rm, addrsize int) (Operand, error) {
	op := Operand{kind: OpMem, base: regNone, memIndex: regNone, scale: 1}
	defSS := false
	dispSize := 0

	if addrsize == 2 {
		// 16-bit addressing: fixed base and index pairs, no SIB.
		switch rm {
		case 0:
			op.base, op.memIndex = 3, 6 // [bx+si]
		case 1:
			op.base, op.memIndex = 3, 7 // [bx+di]
		case 2:
			op.base, op.memIndex = 5, 6 // [bp+si]
			defSS = true
		case 3:
			op.base, op.memIndex = 5, 7 // [bp+di]
			defSS = true
		case 4:
			op.base = 6 // [si]
		case 5:
			op.base = 7 // [di]
		case 6:
			if mod == 0 {
				dispSize = 2 // [disp16]
			} else {
				op.base = 5 // [bp]
				defSS = true
			}
		case 7:
			op.base = 3 // [bx]
		}

		switch mod {
		case 1:
			dispSize = 1
		case 2:
			dispSize = 2
		}
	} else {
		base := rm
		if d.extB {
			base |= 8
		}
		op.base = uint8(base)

		if rm == 4 {
			sib, err := d.next()
			if err != nil {
				return op, err
			}

			op.scale = 1 << (sib >> 6)
			idx := int(sib >> 3 & 7)
			if d.extX {
				idx |= 8
			}
			// Index 4 without REX.X means no index register.
			if idx != 4 {
				op.memIndex = uint8(idx)
			}

			base = int(sib & 7)
			if d.extB {
				base |= 8
			}
			op.base = uint8(base)

			if sib&7 == 5 && mod == 0 {
				op.base = regNone
				dispSize = 4
			}
		}

		switch mod {
		case 0:
			if rm == 5 {
				dispSize = 4
				op.base = regNone
				if d.mode == Mode64 {
					// RIP-relative; resolved once the length is
					// known.
					d.ripRel = true
				}
			}
		case 1:
			dispSize = 1
		case 2:
			dispSize = 4
		}

		if b := op.base; b == 4 || b == 5 {
			defSS = true
		}
	}

	if dispSize > 0 {
		v, err := d.read(dispSize)
		if err != nil {
			return op, err
		}

		d.inst.disp = signed(v, dispSize)
	}

	op.seg = d.effSeg(defSS)

	return op, nil
}

// effSeg resolves the effective segment of a memory operand. FS and
// GS overrides always apply; in 64-bit mode any other override is
// recorded in the prefix flags but does not change the effective
// segment.
func (d *decoder) effSeg(defSS bool) SegReg {
	if d.seg != SegNone {
		if d.mode != Mode64 || d.seg == SegFS || d.seg == SegGS {
			return d.seg
		}
	}

	if defSS {
		return SegSS
	}

	return SegDS
}
