// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package table builds the decoder's packed dispatch tables from
// parsed encoding records and emits them as Go source.
//
// The packed layout is a data contract with the decoder package;
// see layout.go there. A link word is offset<<1|kind with offsets
// aligned to four words; terminals are four words (mnemonic,
// template offset, flag word, reserved); templates are three words.
package table

import (
	"fmt"
	"sort"

	"github.com/Liruxo/fadec/internal/opdb"
)

// Kind enumerates the dispatch table kinds, matching the decoder's
// link kinds.
type Kind uint8

const (
	KindNone Kind = iota
	KindInstr
	KindTable256
	KindTable8
	KindTable72
	KindPrefix
	KindVex
	KindRep

	// KindSparse is a compressed byte table. It is encoded on the
	// wire as kind bits zero with a nonzero offset.
	KindSparse
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInstr:
		return "instr"
	case KindTable256:
		return "table256"
	case KindTable8:
		return "table8"
	case KindTable72:
		return "table72"
	case KindPrefix:
		return "prefix"
	case KindVex:
		return "vex"
	case KindRep:
		return "rep"
	case KindSparse:
		return "sparse"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// size returns the number of entries in a table of this kind.
func (k Kind) size() int {
	switch k {
	case KindTable256, KindSparse:
		return 256
	case KindTable8:
		return 8
	case KindTable72:
		return 72
	case KindPrefix, KindVex, KindRep:
		return 4
	default:
		return 0
	}
}

// A Terminal is one fully-resolved encoding.
type Terminal struct {
	Mnemonic string
	Template [3]uint16
	Flags    uint16
	Line     int // Source line, for diagnostics.

	name string
	off  int
}

// key returns the dedup key: terminals with equal keys are shared.
func (t *Terminal) key() string {
	return fmt.Sprintf("%s/%04x%04x%04x/%04x", t.Mnemonic, t.Template[0], t.Template[1], t.Template[2], t.Flags)
}

// A Node is one dispatch table under construction.
type Node struct {
	Kind    Kind
	Entries []*Node
	Term    *Terminal // Set when Kind is KindInstr.

	name string
	off  int
}

func newNode(k Kind) *Node {
	return &Node{Kind: k, Entries: make([]*Node, k.size())}
}

// A Trie is the full dispatch structure: one eight-entry root per
// mode, in the order 32-bit, 64-bit.
type Trie struct {
	Roots     [2][8]*Node
	Mnemonics []string // Sorted, without the leading invalid entry.

	terms map[string]*Terminal
}

// Build constructs the trie from the parsed records. Conflicting
// records, records whose operands cannot be packed, and encodings
// reached twice are reported as errors.
func Build(records []*opdb.Record) (*Trie, error) {
	tr := &Trie{terms: make(map[string]*Terminal)}

	// Decide up front which opcodes need a full-ModR/M table: a /N
	// record sharing an opcode with a //XX record must live in the
	// same 72-entry table.
	full := make(map[string]bool)
	for _, rec := range records {
		if rec.ModRMFull >= 0 {
			full[rec.Map+fmt.Sprintf("%02X", rec.Opcode)] = true
		}
	}

	mnems := make(map[string]bool)
	for _, rec := range records {
		term, err := encodeTerminal(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", rec.Line, err)
		}

		if prev, ok := tr.terms[term.key()]; ok {
			term = prev
		} else {
			tr.terms[term.key()] = term
		}

		mnems[rec.Mnemonic] = true

		for mode := 0; mode < 2; mode++ {
			if mode == 0 && rec.Only64 || mode == 1 && rec.Only32 {
				continue
			}

			if err := tr.insert(mode, rec, term, full); err != nil {
				return nil, err
			}
		}
	}

	for m := range mnems {
		tr.Mnemonics = append(tr.Mnemonics, m)
	}
	sort.Strings(tr.Mnemonics)

	return tr, nil
}

// insert adds one record's path to the given mode's root.
func (tr *Trie) insert(mode int, rec *opdb.Record, term *Terminal, full map[string]bool) error {
	rootIdx := map[string]int{"": 0, "0F": 1, "0F38": 2, "0F3A": 3}[rec.Map]
	if rec.VEX {
		rootIdx |= 4
	}

	node := tr.Roots[mode][rootIdx]
	if node == nil {
		node = newNode(KindTable256)
		tr.Roots[mode][rootIdx] = node
	}

	opcodes := []int{int(rec.Opcode)}
	if rec.Extended && rec.ModRMFull < 0 {
		opcodes = opcodes[:0]
		for i := 0; i < 8; i++ {
			opcodes = append(opcodes, int(rec.Opcode)+i)
		}
	}

	for _, opc := range opcodes {
		if err := tr.insertAt(node, opc, rec, term, full); err != nil {
			return err
		}
	}

	return nil
}

// A step is one discriminator level below the opcode byte.
type step struct {
	kind    Kind
	indices []int
}

func (tr *Trie) insertAt(node *Node, opc int, rec *opdb.Record, term *Terminal, full map[string]bool) error {
	// The fixed discriminator order: opcode byte, ModR/M extension,
	// mandatory prefix, REX.W and VEX.L.
	var steps []step

	if rec.ModReg >= 0 || rec.ModRMFull >= 0 {
		kind := KindTable8
		if full[rec.Map+fmt.Sprintf("%02X", rec.Opcode)] {
			kind = KindTable72
		}

		switch {
		case rec.ModRMFull >= 0:
			base := 8 + rec.ModRMFull - 0xC0
			idx := []int{base}
			if rec.Extended {
				idx = idx[:0]
				for i := 0; i < 8; i++ {
					idx = append(idx, base+i)
				}
			}
			steps = append(steps, step{KindTable72, idx})
		default:
			steps = append(steps, step{kind, []int{rec.ModReg}})
		}
	}

	if rec.Prefix != "" {
		kind := KindPrefix
		if rec.RepPrefix {
			kind = KindRep
		}

		idx := map[string]int{"NP": 0, "66": 1, "F3": 2, "F2": 3}[rec.Prefix]
		steps = append(steps, step{kind, []int{idx}})
	}

	if rec.W == "0" || rec.W == "1" || rec.VexL == "128" || rec.VexL == "256" {
		var ws, ls []int
		switch rec.W {
		case "0":
			ws = []int{0}
		case "1":
			ws = []int{1}
		default:
			ws = []int{0, 1}
		}
		switch rec.VexL {
		case "128":
			ls = []int{0}
		case "256":
			ls = []int{1}
		default:
			ls = []int{0, 1}
		}

		var idx []int
		for _, l := range ls {
			for _, w := range ws {
				idx = append(idx, w|l<<1)
			}
		}
		steps = append(steps, step{KindVex, idx})
	}

	var walk func(n *Node, idx int, rest []step) error
	walk = func(n *Node, idx int, rest []step) error {
		if len(rest) == 0 {
			if e := n.Entries[idx]; e != nil {
				if e.Kind == KindInstr && e.Term == term {
					// The same shared terminal; nothing to do.
					return nil
				}

				return fmt.Errorf("line %d: duplicate encoding for %s", rec.Line, rec.Mnemonic)
			}

			n.Entries[idx] = &Node{Kind: KindInstr, Term: term}
			return nil
		}

		next := rest[0]
		child := n.Entries[idx]
		if child == nil {
			child = newNode(next.kind)
			n.Entries[idx] = child
		} else if child.Kind != next.kind {
			return fmt.Errorf("line %d: %s conflicts with an existing %s table", rec.Line, next.kind, child.Kind)
		}

		for _, i := range next.indices {
			if err := walk(child, i, rest[1:]); err != nil {
				return err
			}
		}

		return nil
	}

	return walk(node, opc, steps)
}

// Size codes for the packed fixed-size fields: index is the code,
// value the size in bytes.
var sizeCodes = map[int]uint16{0: 0, 1: 1, 2: 2, 4: 3, 8: 4, 16: 5, 32: 6}

// Template routing bit positions; see the decoder's layout.go.
const (
	tModrmShift   = 0
	tModregShift  = 2
	tVexregShift  = 4
	tZeroregShift = 6
	tImmShift     = 8

	tZeroregIdxShift = 10
	tHasModRM        = 1 << 13
)

// Instruction flag word bits.
const (
	iSizeFix1Shift = 0
	iSizeFix2Shift = 3
	iSize8         = 1 << 5
	iDef64         = 1 << 6
	iLock          = 1 << 7
	iImmCtlShift   = 8
	iImm64         = 1 << 11
	iVsib          = 1 << 12
	iMemOnly       = 1 << 13
	iRegOnly       = 1 << 14
)

// encodeTerminal packs a record's operand template and flag word.
func encodeTerminal(rec *opdb.Record) (*Terminal, error) {
	fixed, err := rec.FixedSizes()
	if err != nil {
		return nil, err
	}

	term := &Terminal{Mnemonic: rec.Mnemonic, Line: rec.Line}

	sizeIdx := func(size int) (int, error) {
		switch size {
		case opdb.SizeOp:
			return 2, nil
		case opdb.SizeVec:
			return 3, nil
		}

		for i, f := range fixed {
			if f == size {
				return i, nil
			}
		}

		return 0, fmt.Errorf("unplaced fixed size %d", size)
	}

	immCtl := 0
	immSeen := false
	for slot, op := range rec.Operands {
		sz, err := sizeIdx(op.Size)
		if err != nil {
			return nil, err
		}

		term.Template[1] |= uint16(sz) << (2 * slot)
		term.Template[2] |= uint16(op.Regty) << (3 * slot)

		stored := uint16(slot ^ 3)
		if stored == 0 && op.Source != opdb.SrcImm {
			// Slot routing stores slot^3 so zero means absent; only
			// the immediate source can occupy slot 3 implicitly.
			return nil, fmt.Errorf("operand %q in slot 3 must be immediate-sourced", op.Name)
		}

		switch op.Source {
		case opdb.SrcModRM:
			term.Template[0] |= stored << tModrmShift
		case opdb.SrcModReg:
			term.Template[0] |= stored << tModregShift
		case opdb.SrcVexReg:
			term.Template[0] |= stored << tVexregShift
		case opdb.SrcZero:
			term.Template[0] |= stored << tZeroregShift
			term.Template[0] |= uint16(op.ZeroIdx) << tZeroregIdxShift
		case opdb.SrcImm:
			if immSeen {
				// Second immediate (ENTER): handled by mnemonic in
				// the decoder, not by the template.
				continue
			}

			immSeen = true
			immCtl = op.ImmCtl
			if stored != 0 {
				term.Template[0] |= stored << tImmShift
			}
		}
	}

	if rec.ModRM {
		term.Template[0] |= tHasModRM
	}

	if len(fixed) > 0 {
		term.Flags |= sizeCodes[fixed[0]] << iSizeFix1Shift
	}
	if len(fixed) > 1 {
		term.Flags |= (sizeCodes[fixed[1]] - 1) << iSizeFix2Shift
	}
	if rec.Size8 {
		term.Flags |= iSize8
	}
	if rec.Def64 {
		term.Flags |= iDef64
	}
	if rec.Lock {
		term.Flags |= iLock
	}
	term.Flags |= uint16(immCtl) << iImmCtlShift
	if rec.Imm64 {
		term.Flags |= iImm64
	}
	if rec.VSIB {
		term.Flags |= iVsib
	}
	if rec.MemOnly {
		term.Flags |= iMemOnly
	}
	if rec.RegOnly {
		term.Flags |= iRegOnly
	}

	return term, nil
}
