// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package opdb

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	tests := []struct {
		Name string
		Text string
		Want *Record
	}{
		{
			Name: "plain opcode",
			Text: "90 NOP -",
			Want: &Record{
				Line: 1, Opcode: 0x90, ModReg: -1, ModRMFull: -1,
				Mnemonic: "NOP",
			},
		},
		{
			Name: "modrm with operands and flags",
			Text: "01/r ADD RM,R LOCK",
			Want: &Record{
				Line: 1, Opcode: 0x01, ModRM: true, ModReg: -1, ModRMFull: -1,
				Mnemonic: "ADD",
				Operands: []Operand{
					{Name: "RM", Source: SrcModRM, Size: SizeOp},
					{Name: "R", Source: SrcModReg, Size: SizeOp},
				},
				Lock: true,
			},
		},
		{
			Name: "opcode extension",
			Text: "FF/6 PUSH RM DEF64",
			Want: &Record{
				Line: 1, Opcode: 0xFF, ModRM: true, ModReg: 6, ModRMFull: -1,
				Mnemonic: "PUSH",
				Operands: []Operand{{Name: "RM", Source: SrcModRM, Size: SizeOp}},
				Def64:    true,
			},
		},
		{
			Name: "full modrm byte",
			Text: "DB//E3 FINIT -",
			Want: &Record{
				Line: 1, Opcode: 0xDB, ModRM: true, ModReg: -1, ModRMFull: 0xE3,
				Mnemonic: "FINIT",
			},
		},
		{
			Name: "extended full modrm swath",
			Text: "D8//C0+ FADD ST0,STI",
			Want: &Record{
				Line: 1, Opcode: 0xD8, ModRM: true, ModReg: -1, ModRMFull: 0xC0,
				Extended: true,
				Mnemonic: "FADD",
				Operands: []Operand{
					{Name: "ST0", Source: SrcZero, Regty: RegFPU},
					{Name: "STI", Source: SrcModRM, Regty: RegFPU},
				},
			},
		},
		{
			Name: "escape with mandatory prefix and W pin",
			Text: "66.0F6E.W1/r MOVQ XMM,RM64",
			Want: &Record{
				Line: 1, Prefix: "66", Map: "0F", Opcode: 0x6E, W: "1",
				ModRM: true, ModReg: -1, ModRMFull: -1,
				Mnemonic: "MOVQ",
				Operands: []Operand{
					{Name: "XMM", Source: SrcModReg, Size: SizeVec, Regty: RegVec},
					{Name: "RM64", Source: SrcModRM, Size: 8},
				},
			},
		},
		{
			Name: "rep-sensitive prefix",
			Text: "RF3.90 PAUSE -",
			Want: &Record{
				Line: 1, Prefix: "F3", RepPrefix: true, Opcode: 0x90,
				ModReg: -1, ModRMFull: -1,
				Mnemonic: "PAUSE",
			},
		},
		{
			Name: "vex tag",
			Text: "V128.NP.0F.WIG.77 VZEROUPPER -",
			Want: &Record{
				Line: 1, VEX: true, VexL: "128", Prefix: "NP", Map: "0F",
				Opcode: 0x77, ModReg: -1, ModRMFull: -1,
				Mnemonic: "VZEROUPPER",
			},
		},
		{
			Name: "vex three operand",
			Text: "V.NP.0F38.WIG.F2/r ANDN R,VGP,RM",
			Want: &Record{
				Line: 1, VEX: true, Prefix: "NP", Map: "0F38", Opcode: 0xF2,
				ModRM: true, ModReg: -1, ModRMFull: -1,
				Mnemonic: "ANDN",
				Operands: []Operand{
					{Name: "R", Source: SrcModReg, Size: SizeOp},
					{Name: "VGP", Source: SrcVexReg, Size: SizeOp},
					{Name: "RM", Source: SrcModRM, Size: SizeOp},
				},
			},
		},
		{
			Name: "extended opcode swath",
			Text: "B8+ MOV OPREG,IMM IMM64",
			Want: &Record{
				Line: 1, Opcode: 0xB8, Extended: true, ModReg: -1, ModRMFull: -1,
				Mnemonic: "MOV",
				Operands: []Operand{
					{Name: "OPREG", Source: SrcModReg, Size: SizeOp},
					{Name: "IMM", Source: SrcImm, Size: SizeOp, ImmCtl: ImmVal},
				},
				Imm64: true,
			},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			records, err := Parse("test", strings.NewReader(test.Text))
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.Text, err)
			}

			if len(records) != 1 {
				t.Fatalf("Parse(%q) = %d records, want 1", test.Text, len(records))
			}

			if diff := cmp.Diff(test.Want, records[0]); diff != "" {
				t.Errorf("Parse(%q): (-want, +got)\n%s", test.Text, diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		Name string
		Text string
	}{
		{Name: "unknown operand token", Text: "90 NOP BOGUS"},
		{Name: "unknown flag", Text: "90 NOP - SHINY"},
		{Name: "bad opcode byte", Text: "GG NOP -"},
		{Name: "bad modrm marker", Text: "90/9 NOP -"},
		{Name: "bad full modrm value", Text: "90//55 NOP -"},
		{Name: "missing fields", Text: "90"},
		{Name: "mode flags conflict", Text: "90 NOP - ONLY32 ONLY64"},
		{Name: "truncated vex tag", Text: "V128.66 NOP -"},
		{Name: "misaligned swath", Text: "91+ XCHG OPREG,A"},
		{Name: "two rm operands", Text: "01/r ADD RM,RM"},
		{Name: "two immediates", Text: "69/r IMUL IMM,IMM"},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			_, err := Parse("test", strings.NewReader(test.Text))
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", test.Text)
			}

			perr, ok := err.(*ParseError)
			if !ok {
				t.Fatalf("Parse(%q) error %T, want *ParseError", test.Text, err)
			}

			if perr.File != "test" || perr.Line != 1 {
				t.Errorf("Parse(%q) error at %s:%d, want test:1", test.Text, perr.File, perr.Line)
			}
		})
	}
}

func TestParseSkipsComments(t *testing.T) {
	text := "# comment\n\n90 NOP -\n  # indented comment\nC3 RET - DEF64\n"
	records, err := Parse("test", strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	if records[0].Line != 3 || records[1].Line != 5 {
		t.Errorf("record lines = %d, %d, want 3, 5", records[0].Line, records[1].Line)
	}
}
