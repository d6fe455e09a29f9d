// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package table

import (
	"os"
	"strings"
	"testing"

	"rsc.io/diff"

	"github.com/Liruxo/fadec/internal/opdb"
)

func parse(t *testing.T, text string) []*opdb.Record {
	t.Helper()
	records, err := opdb.Parse("test", strings.NewReader(text))
	if err != nil {
		t.Fatal(err)
	}

	return records
}

func TestBuildPlacesTerminals(t *testing.T) {
	records := parse(t, `
90 NOP -
01/r ADD RM,R LOCK
FF/6 PUSH RM DEF64
27 DAA - ONLY32
63/r MOVSXD R,RM32 ONLY64
`)

	trie, err := Build(records)
	if err != nil {
		t.Fatal(err)
	}

	main32 := trie.Roots[0][0]
	main64 := trie.Roots[1][0]
	if main32 == nil || main64 == nil {
		t.Fatal("missing main tables")
	}

	if n := main32.Entries[0x90]; n == nil || n.Kind != KindInstr || n.Term.Mnemonic != "NOP" {
		t.Errorf("main32[90] = %v, want NOP terminal", n)
	}

	// Terminals valid in both modes share one Terminal record.
	if main32.Entries[0x01] == nil || main64.Entries[0x01] == nil ||
		main32.Entries[0x01].Term != main64.Entries[0x01].Term {
		t.Errorf("ADD terminal not shared between modes")
	}

	// Mode-gated records appear only in their mode.
	if main64.Entries[0x27] != nil {
		t.Errorf("DAA leaked into 64-bit mode")
	}
	if main32.Entries[0x63] != nil && main32.Entries[0x63].Term != nil && main32.Entries[0x63].Term.Mnemonic == "MOVSXD" {
		t.Errorf("MOVSXD leaked into 32-bit mode")
	}
	if n := main64.Entries[0x63]; n == nil || n.Term == nil || n.Term.Mnemonic != "MOVSXD" {
		t.Errorf("main64[63] = %v, want MOVSXD", n)
	}

	// The /6 extension builds a reg-indexed group table.
	g := main64.Entries[0xFF]
	if g == nil || g.Kind != KindTable8 {
		t.Fatalf("main64[FF] = %v, want a table8", g)
	}
	if n := g.Entries[6]; n == nil || n.Term.Mnemonic != "PUSH" {
		t.Errorf("group FF/6 = %v, want PUSH", n)
	}

	if len(trie.Mnemonics) != 5 {
		t.Errorf("mnemonics = %v, want 5 entries", trie.Mnemonics)
	}
}

func TestBuildDiscriminators(t *testing.T) {
	records := parse(t, `
NP.0F58/r ADDPS XMM,XMM_RM
66.0F58/r ADDPD XMM,XMM_RM
F3.0F58/r ADDSS XMM,XMM_RM
F2.0F58/r ADDSD XMM,XMM_RM
0FC7.W0/1 CMPXCHG8B M64 LOCK MEMONLY
0FC7.W1/1 CMPXCHG16B M128 LOCK MEMONLY
D9/0 FLD M32 MEMONLY
D9//E0 FCHS -
RNP.90 NOP -
RF3.90 PAUSE -
`)

	trie, err := Build(records)
	if err != nil {
		t.Fatal(err)
	}

	zf := trie.Roots[1][1] // 0F map, 64-bit.
	if zf == nil {
		t.Fatal("missing 0F map")
	}

	p := zf.Entries[0x58]
	if p == nil || p.Kind != KindPrefix {
		t.Fatalf("0F58 = %v, want a prefix table", p)
	}
	for i, want := range []string{"ADDPS", "ADDPD", "ADDSS", "ADDSD"} {
		if n := p.Entries[i]; n == nil || n.Term.Mnemonic != want {
			t.Errorf("0F58 prefix %d = %v, want %s", i, n, want)
		}
	}

	g := zf.Entries[0xC7]
	if g == nil || g.Kind != KindTable8 {
		t.Fatalf("0FC7 = %v, want a table8", g)
	}
	v := g.Entries[1]
	if v == nil || v.Kind != KindVex {
		t.Fatalf("0FC7/1 = %v, want a W table", v)
	}
	if v.Entries[0].Term.Mnemonic != "CMPXCHG8B" || v.Entries[1].Term.Mnemonic != "CMPXCHG16B" {
		t.Errorf("0FC7/1 W split = %s, %s", v.Entries[0].Term.Mnemonic, v.Entries[1].Term.Mnemonic)
	}
	// An unpinned L fills both rows.
	if v.Entries[2] == nil || v.Entries[2].Term != v.Entries[0].Term {
		t.Errorf("0FC7/1 L rows not filled")
	}

	// A //XX record forces the whole opcode into a 72-entry table.
	main := trie.Roots[1][0]
	d9 := main.Entries[0xD9]
	if d9 == nil || d9.Kind != KindTable72 {
		t.Fatalf("D9 = %v, want a table72", d9)
	}
	if n := d9.Entries[0]; n == nil || n.Term.Mnemonic != "FLD" {
		t.Errorf("D9/0 = %v, want FLD", n)
	}
	if n := d9.Entries[8+0xE0-0xC0]; n == nil || n.Term.Mnemonic != "FCHS" {
		t.Errorf("D9//E0 = %v, want FCHS", n)
	}

	r := main.Entries[0x90]
	if r == nil || r.Kind != KindRep {
		t.Fatalf("90 = %v, want a rep table", r)
	}
	if r.Entries[0].Term.Mnemonic != "NOP" || r.Entries[2].Term.Mnemonic != "PAUSE" {
		t.Errorf("90 rep split = %s, %s", r.Entries[0].Term.Mnemonic, r.Entries[2].Term.Mnemonic)
	}
}

func TestBuildRejectsConflicts(t *testing.T) {
	tests := []struct {
		Name string
		Text string
	}{
		{
			Name: "duplicate opcode",
			Text: "90 NOP -\n90 PAUSE -",
		},
		{
			Name: "group conflicts with plain modrm",
			Text: "FF/r INC RM\nFF/6 PUSH RM",
		},
		{
			Name: "prefix conflicts with terminal",
			Text: "0F58/r ADDPS XMM,XMM_RM\n66.0F58/r ADDPD XMM,XMM_RM",
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			if _, err := Build(parse(t, test.Text)); err == nil {
				t.Fatalf("Build succeeded, want conflict error")
			}
		})
	}
}

func TestEmitSmall(t *testing.T) {
	records := parse(t, `
90 NOP -
01/r ADD RM,R LOCK
E8 CALL REL16/32 DEF64
`)

	trie, err := Build(records)
	if err != nil {
		t.Fatal(err)
	}

	src, err := trie.EmitTables("fadec")
	if err != nil {
		t.Fatal(err)
	}

	text := string(src)
	for _, want := range []string{
		"package fadec",
		"const tableVersion = 1",
		"root32Offset = 0",
		"root64Offset = root32Offset + 8",
		"var templates = [...]uint16{",
		"var tableData = [tableLen]uint16{",
		"uint16(ADD)",
		"uint16(NOP)",
		"uint16(CALL)",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("emitted tables missing %q", want)
		}
	}

	mnems := string(trie.EmitMnemonics("fadec"))
	for _, want := range []string{
		"type Mnemonic uint16",
		"MnemonicInvalid Mnemonic = iota",
		"\tADD\n",
		"\tCALL\n",
		"\tNOP\n",
		"NOP: \"nop\",",
	} {
		if !strings.Contains(mnems, want) {
			t.Errorf("emitted mnemonics missing %q", want)
		}
	}
}

// The emitter is deterministic: the same records produce the same
// source, byte for byte.
func TestEmitDeterministic(t *testing.T) {
	build := func() string {
		f, err := os.Open("../../instrs.txt")
		if err != nil {
			t.Fatal(err)
		}
		defer f.Close()

		records, err := opdb.Parse("instrs.txt", f)
		if err != nil {
			t.Fatal(err)
		}

		trie, err := Build(records)
		if err != nil {
			t.Fatal(err)
		}

		src, err := trie.EmitTables("fadec")
		if err != nil {
			t.Fatal(err)
		}

		return string(src)
	}

	first := build()
	second := build()
	if first != second {
		t.Fatalf("EmitTables() output changed between runs: (+got, -want)\n%s", diff.Format(second, first))
	}
}

// The shipped description file must build cleanly.
func TestBuildShippedDatabase(t *testing.T) {
	f, err := os.Open("../../instrs.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	records, err := opdb.Parse("instrs.txt", f)
	if err != nil {
		t.Fatal(err)
	}

	if len(records) < 300 {
		t.Errorf("only %d records parsed", len(records))
	}

	trie, err := Build(records)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := trie.EmitTables("fadec"); err != nil {
		t.Fatal(err)
	}
}
