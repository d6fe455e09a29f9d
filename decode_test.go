// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

import (
	"encoding/hex"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// decoded is the observable result of a decode, gathered through
// the accessors.
type decoded struct {
	Mnemonic string
	Len      int
	OpSize   int
	AddrSize int
	Flags    PrefixFlags
	Seg      SegReg
	Imm      int64
	Imm2     int64
	Disp     int64
	Text     string
}

func observe(in *Instruction) decoded {
	return decoded{
		Mnemonic: in.Mnemonic().String(),
		Len:      in.Len(),
		OpSize:   in.OperandSize(),
		AddrSize: in.AddressSize(),
		Flags:    in.Flags(),
		Seg:      in.SegmentOverride(),
		Imm:      in.Immediate(),
		Imm2:     in.Immediate2(),
		Disp:     in.Displacement(),
		Text:     in.String(),
	}
}

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(strings.ReplaceAll(s, " ", ""))
	if err != nil {
		t.Fatalf("bad hex %q: %v", s, err)
	}

	return b
}

func TestDecode(t *testing.T) {
	tests := []struct {
		Name string
		Mode int
		Code string
		Addr uint64
		Want decoded
	}{
		{
			Name: "nop",
			Mode: Mode64,
			Code: "90",
			Want: decoded{Mnemonic: "nop", Len: 1, AddrSize: 8, Seg: SegNone, Text: "nop"},
		},
		{
			Name: "nop with operand size prefixes",
			Mode: Mode64,
			Code: "66 66 66 90",
			Want: decoded{Mnemonic: "nop", Len: 4, AddrSize: 8, Seg: SegNone, Text: "nop"},
		},
		{
			Name: "mov reg64",
			Mode: Mode64,
			Code: "48 89 d8",
			Want: decoded{Mnemonic: "mov", Len: 3, OpSize: 8, AddrSize: 8, Flags: FlagRexW, Seg: SegNone, Text: "mov rax, rbx"},
		},
		{
			Name: "mov absolute disp with address size override",
			Mode: Mode64,
			Code: "67 8b 04 25 78 56 34 12",
			Want: decoded{Mnemonic: "mov", Len: 8, OpSize: 4, AddrSize: 4, Seg: SegNone, Disp: 0x12345678, Text: "mov eax, [0x12345678]"},
		},
		{
			Name: "lock cmpxchg",
			Mode: Mode64,
			Code: "f0 0f b1 0f",
			Want: decoded{Mnemonic: "cmpxchg", Len: 4, OpSize: 4, AddrSize: 8, Flags: FlagLock, Seg: SegNone, Text: "cmpxchg [rdi], ecx"},
		},
		{
			Name: "fwait split",
			Mode: Mode32,
			Code: "9b db e3",
			Want: decoded{Mnemonic: "fwait", Len: 1, AddrSize: 4, Seg: SegNone, Text: "fwait"},
		},
		{
			Name: "fninit form",
			Mode: Mode32,
			Code: "db e3",
			Want: decoded{Mnemonic: "finit", Len: 2, AddrSize: 4, Seg: SegNone, Text: "finit"},
		},
		{
			Name: "vzeroupper",
			Mode: Mode64,
			Code: "c5 f8 77",
			Want: decoded{Mnemonic: "vzeroupper", Len: 3, AddrSize: 8, Flags: FlagVEX, Seg: SegNone, Text: "vzeroupper"},
		},
		{
			Name: "call rel32",
			Mode: Mode64,
			Code: "e8 05 00 00 00",
			Addr: 0x401000,
			Want: decoded{Mnemonic: "call", Len: 5, OpSize: 8, AddrSize: 8, Seg: SegNone, Imm: 0x40100a, Text: "call 0x40100a"},
		},
		{
			Name: "rex range is inc in 32-bit mode",
			Mode: Mode32,
			Code: "40",
			Want: decoded{Mnemonic: "inc", Len: 1, OpSize: 4, AddrSize: 4, Seg: SegNone, Text: "inc eax"},
		},
		{
			Name: "push extended register",
			Mode: Mode64,
			Code: "41 57",
			Want: decoded{Mnemonic: "push", Len: 2, OpSize: 8, AddrSize: 8, Seg: SegNone, Text: "push r15"},
		},
		{
			Name: "mov imm64",
			Mode: Mode64,
			Code: "48 b8 ef cd ab 89 67 45 23 01",
			Want: decoded{Mnemonic: "mov", Len: 10, OpSize: 8, AddrSize: 8, Flags: FlagRexW, Seg: SegNone, Imm: 0x0123456789abcdef, Text: "mov rax, 0x123456789abcdef"},
		},
		{
			Name: "mov imm32 sign-extended",
			Mode: Mode64,
			Code: "48 c7 c0 ff ff ff ff",
			Want: decoded{Mnemonic: "mov", Len: 7, OpSize: 8, AddrSize: 8, Flags: FlagRexW, Seg: SegNone, Imm: -1, Text: "mov rax, -0x1"},
		},
		{
			Name: "add imm8 sign-extended",
			Mode: Mode64,
			Code: "48 83 c0 ff",
			Want: decoded{Mnemonic: "add", Len: 4, OpSize: 8, AddrSize: 8, Flags: FlagRexW, Seg: SegNone, Imm: -1, Text: "add rax, -0x1"},
		},
		{
			Name: "operand size override",
			Mode: Mode64,
			Code: "66 89 c8",
			Want: decoded{Mnemonic: "mov", Len: 3, OpSize: 2, AddrSize: 8, Seg: SegNone, Text: "mov ax, cx"},
		},
		{
			Name: "sib with scale and disp8",
			Mode: Mode64,
			Code: "8b 44 88 10",
			Want: decoded{Mnemonic: "mov", Len: 4, OpSize: 4, AddrSize: 8, Seg: SegNone, Disp: 0x10, Text: "mov eax, [rax+rcx*4+0x10]"},
		},
		{
			Name: "rip relative resolves against end",
			Mode: Mode64,
			Code: "48 8b 05 10 00 00 00",
			Addr: 0x1000,
			Want: decoded{Mnemonic: "mov", Len: 7, OpSize: 8, AddrSize: 8, Flags: FlagRexW, Seg: SegNone, Disp: 0x1017, Text: "mov rax, [0x1017]"},
		},
		{
			Name: "fs override",
			Mode: Mode64,
			Code: "64 8b 00",
			Want: decoded{Mnemonic: "mov", Len: 3, OpSize: 4, AddrSize: 8, Flags: FlagSeg, Seg: SegFS, Text: "mov eax, [fs:rax]"},
		},
		{
			Name: "ds override recorded but inert in 64-bit mode",
			Mode: Mode64,
			Code: "3e 8b 00",
			Want: decoded{Mnemonic: "mov", Len: 3, OpSize: 4, AddrSize: 8, Flags: FlagSeg, Seg: SegDS, Text: "mov eax, [ds:rax]"},
		},
		{
			Name: "enter has two immediates",
			Mode: Mode64,
			Code: "c8 20 01 01",
			Want: decoded{Mnemonic: "enter", Len: 4, AddrSize: 8, Seg: SegNone, Imm: 0x120, Imm2: 1, Text: "enter 0x120, 0x1"},
		},
		{
			Name: "rep scas reports the rep flag",
			Mode: Mode64,
			Code: "f3 ae",
			Want: decoded{Mnemonic: "scas", Len: 2, AddrSize: 8, Flags: FlagRep, Seg: SegNone, Text: "scas"},
		},
		{
			Name: "repnz cmps",
			Mode: Mode64,
			Code: "f2 a6",
			Want: decoded{Mnemonic: "cmps", Len: 2, AddrSize: 8, Flags: FlagRepnz, Seg: SegNone, Text: "cmps"},
		},
		{
			Name: "mandatory f2 is not repnz",
			Mode: Mode64,
			Code: "f2 0f 10 c1",
			Want: decoded{Mnemonic: "movsd", Len: 4, OpSize: 16, AddrSize: 8, Seg: SegNone, Text: "movsd xmm0, xmm1"},
		},
		{
			Name: "pause",
			Mode: Mode64,
			Code: "f3 90",
			Want: decoded{Mnemonic: "pause", Len: 2, AddrSize: 8, Seg: SegNone, Text: "pause"},
		},
		{
			Name: "cmpxchg16b",
			Mode: Mode64,
			Code: "f0 48 0f c7 4f 10",
			Want: decoded{Mnemonic: "cmpxchg16b", Len: 6, AddrSize: 8, Flags: FlagLock | FlagRexW, Seg: SegNone, Disp: 0x10, Text: "cmpxchg16b [rdi+0x10]"},
		},
		{
			Name: "cmpxchg8b in 32-bit mode",
			Mode: Mode32,
			Code: "0f c7 0b",
			Want: decoded{Mnemonic: "cmpxchg8b", Len: 3, AddrSize: 4, Seg: SegNone, Text: "cmpxchg8b [ebx]"},
		},
		{
			Name: "16-bit addressing",
			Mode: Mode32,
			Code: "67 8b 47 02",
			Want: decoded{Mnemonic: "mov", Len: 4, OpSize: 4, AddrSize: 2, Seg: SegNone, Disp: 2, Text: "mov eax, [bx+0x2]"},
		},
		{
			Name: "moffs uses the address size",
			Mode: Mode64,
			Code: "a1 f0 de bc 9a 78 56 34 12",
			Want: decoded{Mnemonic: "mov", Len: 9, OpSize: 4, AddrSize: 8, Seg: SegNone, Disp: 0x123456789abcdef0, Text: "mov eax, [0x123456789abcdef0]"},
		},
		{
			Name: "movzx high byte without rex",
			Mode: Mode64,
			Code: "0f b6 c4",
			Want: decoded{Mnemonic: "movzx", Len: 3, OpSize: 4, AddrSize: 8, Seg: SegNone, Text: "movzx eax, ah"},
		},
		{
			Name: "xchg short form",
			Mode: Mode64,
			Code: "48 91",
			Want: decoded{Mnemonic: "xchg", Len: 2, OpSize: 8, AddrSize: 8, Flags: FlagRexW, Seg: SegNone, Text: "xchg rcx, rax"},
		},
		{
			Name: "setcc",
			Mode: Mode64,
			Code: "0f 94 c0",
			Want: decoded{Mnemonic: "setz", Len: 3, AddrSize: 8, Seg: SegNone, Text: "setz al"},
		},
		{
			Name: "vaddps with vex.l",
			Mode: Mode64,
			Code: "c5 f4 58 c1",
			Want: decoded{Mnemonic: "vaddps", Len: 4, OpSize: 32, AddrSize: 8, Flags: FlagVEX, Seg: SegNone, Text: "vaddps ymm0, ymm1, ymm1"},
		},
		{
			Name: "andn three operands",
			Mode: Mode64,
			Code: "c4 e2 78 f2 d9",
			Want: decoded{Mnemonic: "andn", Len: 5, OpSize: 4, AddrSize: 8, Flags: FlagVEX, Seg: SegNone, Text: "andn ebx, eax, ecx"},
		},
		{
			Name: "c4 is les in 32-bit mode",
			Mode: Mode32,
			Code: "c4 03 18",
			Want: decoded{Mnemonic: "les", Len: 2, AddrSize: 4, Seg: SegNone, Text: "les eax, [ebx]"},
		},
		{
			Name: "c5 is lds in 32-bit mode",
			Mode: Mode32,
			Code: "c5 08 18",
			Want: decoded{Mnemonic: "lds", Len: 2, AddrSize: 4, Seg: SegNone, Text: "lds ecx, [eax]"},
		},
		{
			Name: "c5 is vex in 32-bit mode with register form",
			Mode: Mode32,
			Code: "c5 f8 77",
			Want: decoded{Mnemonic: "vzeroupper", Len: 3, AddrSize: 4, Flags: FlagVEX, Seg: SegNone, Text: "vzeroupper"},
		},
		{
			Name: "8f with reg 0 is pop",
			Mode: Mode64,
			Code: "8f c0",
			Want: decoded{Mnemonic: "pop", Len: 2, OpSize: 8, AddrSize: 8, Seg: SegNone, Text: "pop rax"},
		},
		{
			Name: "shld with cl count",
			Mode: Mode64,
			Code: "0f a5 d8",
			Want: decoded{Mnemonic: "shld", Len: 3, OpSize: 4, AddrSize: 8, Seg: SegNone, Text: "shld eax, ebx, cl"},
		},
		{
			Name: "fadd stack form",
			Mode: Mode64,
			Code: "d8 c3",
			Want: decoded{Mnemonic: "fadd", Len: 2, AddrSize: 8, Seg: SegNone, Text: "fadd st0, st3"},
		},
		{
			Name: "fld memory form",
			Mode: Mode32,
			Code: "d9 00",
			Want: decoded{Mnemonic: "fld", Len: 2, AddrSize: 4, Seg: SegNone, Text: "fld [eax]"},
		},
		{
			Name: "fstsw ax",
			Mode: Mode64,
			Code: "df e0",
			Want: decoded{Mnemonic: "fstsw", Len: 2, AddrSize: 8, Seg: SegNone, Text: "fstsw ax"},
		},
		{
			Name: "lfence",
			Mode: Mode64,
			Code: "0f ae e8",
			Want: decoded{Mnemonic: "lfence", Len: 3, AddrSize: 8, Seg: SegNone, Text: "lfence"},
		},
		{
			Name: "sgdt",
			Mode: Mode64,
			Code: "0f 01 00",
			Want: decoded{Mnemonic: "sgdt", Len: 3, AddrSize: 8, Seg: SegNone, Text: "sgdt [rax]"},
		},
		{
			Name: "shl imm8",
			Mode: Mode64,
			Code: "c1 e0 05",
			Want: decoded{Mnemonic: "shl", Len: 3, OpSize: 4, AddrSize: 8, Seg: SegNone, Imm: 5, Text: "shl eax, 0x5"},
		},
		{
			Name: "sar by one",
			Mode: Mode64,
			Code: "d1 f8",
			Want: decoded{Mnemonic: "sar", Len: 2, OpSize: 4, AddrSize: 8, Seg: SegNone, Imm: 1, Text: "sar eax, 0x1"},
		},
		{
			Name: "imul three operand",
			Mode: Mode64,
			Code: "6b c0 05",
			Want: decoded{Mnemonic: "imul", Len: 3, OpSize: 4, AddrSize: 8, Seg: SegNone, Imm: 5, Text: "imul eax, eax, 0x5"},
		},
		{
			Name: "movsxd",
			Mode: Mode64,
			Code: "48 63 c8",
			Want: decoded{Mnemonic: "movsxd", Len: 3, OpSize: 8, AddrSize: 8, Flags: FlagRexW, Seg: SegNone, Text: "movsxd rcx, eax"},
		},
		{
			Name: "63 is arpl in 32-bit mode",
			Mode: Mode32,
			Code: "63 c8",
			Want: decoded{Mnemonic: "arpl", Len: 2, AddrSize: 4, Seg: SegNone, Text: "arpl ax, cx"},
		},
		{
			Name: "long nop",
			Mode: Mode64,
			Code: "0f 1f 40 00",
			Want: decoded{Mnemonic: "nop", Len: 4, OpSize: 4, AddrSize: 8, Seg: SegNone, Text: "nop [rax]"},
		},
		{
			Name: "jcc short backwards",
			Mode: Mode64,
			Code: "75 fe",
			Addr: 0x2000,
			Want: decoded{Mnemonic: "jnz", Len: 2, OpSize: 8, AddrSize: 8, Seg: SegNone, Imm: 0x2000, Text: "jnz 0x2000"},
		},
		{
			Name: "mov to control register",
			Mode: Mode64,
			Code: "0f 22 d8",
			Want: decoded{Mnemonic: "mov", Len: 3, OpSize: 8, AddrSize: 8, Seg: SegNone, Text: "mov cr3, rax"},
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			code := mustHex(t, test.Code)

			var inst Instruction
			n, err := Decode(code, test.Mode, test.Addr, &inst)
			if err != nil {
				t.Fatalf("Decode(% x): %v", code, err)
			}

			if n != inst.Len() {
				t.Errorf("Decode(% x) = %d, but Len() = %d", code, n, inst.Len())
			}

			got := observe(&inst)
			if diff := cmp.Diff(test.Want, got); diff != "" {
				t.Errorf("Decode(% x): (-want, +got)\n%s", code, diff)
			}
		})
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		Name string
		Mode int
		Code string
		Want error
	}{
		{Name: "bad mode", Mode: 16, Code: "90", Want: ErrBadMode},
		{Name: "empty buffer", Mode: Mode64, Code: "", Want: ErrShortBuffer},
		{Name: "prefix only", Mode: Mode64, Code: "66", Want: ErrShortBuffer},
		{Name: "rex only", Mode: Mode64, Code: "48", Want: ErrShortBuffer},
		{Name: "truncated modrm", Mode: Mode64, Code: "8b", Want: ErrShortBuffer},
		{Name: "truncated sib", Mode: Mode64, Code: "8b 04", Want: ErrShortBuffer},
		{Name: "truncated disp", Mode: Mode64, Code: "8b 05 00 00", Want: ErrShortBuffer},
		{Name: "truncated imm", Mode: Mode64, Code: "b8 00 00", Want: ErrShortBuffer},
		{Name: "truncated vex", Mode: Mode64, Code: "c4", Want: ErrShortBuffer},
		{Name: "unassigned opcode", Mode: Mode64, Code: "0f 04", Want: ErrInvalid},
		{Name: "lock on register form", Mode: Mode64, Code: "f0 01 c0", Want: ErrInvalid},
		{Name: "lock on non-locking instruction", Mode: Mode64, Code: "f0 8b 00", Want: ErrInvalid},
		{Name: "lock with vex", Mode: Mode64, Code: "f0 c5 f8 77", Want: ErrInvalid},
		{Name: "rep with vex", Mode: Mode64, Code: "f3 c5 f8 77", Want: ErrInvalid},
		{Name: "xop map is invalid", Mode: Mode64, Code: "8f 48 18", Want: ErrInvalid},
		{Name: "unused vvvv must be zero", Mode: Mode64, Code: "c5 c0 10 c1", Want: ErrInvalid},
		{Name: "memory-only with register form", Mode: Mode64, Code: "8d c0", Want: ErrInvalid},
		{Name: "lgdt register form", Mode: Mode64, Code: "0f 01 d0", Want: ErrInvalid},
		{Name: "inc short form gone in 64-bit mode", Mode: Mode64, Code: "40 40", Want: ErrShortBuffer},
		{
			Name: "sixteen bytes is too long",
			Mode: Mode64,
			Code: "66 66 66 66 66 66 66 66 66 66 66 66 66 66 66 90",
			Want: ErrTooLong,
		},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			code := mustHex(t, test.Code)

			var inst Instruction
			n, err := Decode(code, test.Mode, 0, &inst)
			if err != test.Want {
				t.Fatalf("Decode(% x) = %d, %v, want error %v", code, n, err, test.Want)
			}

			if n != 0 {
				t.Errorf("Decode(% x) consumed %d bytes on error", code, n)
			}
		})
	}
}

// Decoding never reads past the advertised buffer length: every
// strict prefix of a valid instruction yields ErrShortBuffer.
func TestDecodeShortPrefixes(t *testing.T) {
	codes := []string{
		"48 89 d8",
		"67 8b 04 25 78 56 34 12",
		"f0 48 0f c7 4f 10",
		"c5 f4 58 c1",
		"48 b8 ef cd ab 89 67 45 23 01",
		"c8 20 01 01",
	}

	for _, s := range codes {
		code := mustHex(t, s)
		for n := 0; n < len(code); n++ {
			var inst Instruction
			if _, err := Decode(code[:n], Mode64, 0, &inst); err != ErrShortBuffer {
				t.Errorf("Decode(% x): got %v, want ErrShortBuffer", code[:n], err)
			}
		}
	}
}

func TestDecodeOperands(t *testing.T) {
	// The third scenario from the regression set, checked at the
	// operand level rather than through the formatter.
	code := mustHex(t, "67 8b 04 25 78 56 34 12")

	var inst Instruction
	if _, err := Decode(code, Mode64, 0, &inst); err != nil {
		t.Fatal(err)
	}

	op0 := inst.Operand(0)
	if op0.Kind() != OpReg {
		t.Fatalf("operand 0 kind = %v, want reg", op0.Kind())
	}
	if kind, reg := op0.Reg(); kind != RegGPR || reg != 0 || op0.Size() != 4 {
		t.Errorf("operand 0 = %v %d size %d, want gpr 0 size 4", kind, reg, op0.Size())
	}

	op1 := inst.Operand(1)
	if op1.Kind() != OpMem {
		t.Fatalf("operand 1 kind = %v, want mem", op1.Kind())
	}
	if _, ok := op1.Base(); ok {
		t.Errorf("operand 1 has a base register")
	}
	if _, ok := op1.Index(); ok {
		t.Errorf("operand 1 has an index register")
	}
	if op1.Segment() != SegDS {
		t.Errorf("operand 1 segment = %v, want ds", op1.Segment())
	}
	if inst.Displacement() != 0x12345678 {
		t.Errorf("displacement = %#x, want 0x12345678", inst.Displacement())
	}

	if inst.Operand(2).Kind() != OpNone {
		t.Errorf("operand 2 present, want none")
	}
}

func TestDecodeNoAlloc(t *testing.T) {
	code := mustHex(t, "f0 48 0f c7 4f 10")

	var inst Instruction
	allocs := testing.AllocsPerRun(100, func() {
		if _, err := Decode(code, Mode64, 0, &inst); err != nil {
			t.Fatal(err)
		}
	})

	if allocs != 0 {
		t.Errorf("Decode allocates %v times per call, want 0", allocs)
	}
}

func TestDecodeConcurrent(t *testing.T) {
	codes := [][]byte{
		mustHex(t, "48 89 d8"),
		mustHex(t, "c5 f4 58 c1"),
		mustHex(t, "f0 0f b1 0f"),
		mustHex(t, "e8 05 00 00 00"),
	}
	want := []string{"mov rax, rbx", "vaddps ymm0, ymm1, ymm1", "cmpxchg [rdi], ecx", "call 0xa"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var inst Instruction
			for i := 0; i < 1000; i++ {
				k := i % len(codes)
				if _, err := Decode(codes[k], Mode64, 0, &inst); err != nil {
					t.Errorf("Decode(% x): %v", codes[k], err)
					return
				}

				if got := inst.String(); got != want[k] {
					t.Errorf("Decode(% x) = %q, want %q", codes[k], got, want[k])
					return
				}
			}
		}()
	}
	wg.Wait()
}

// RIP-relative resolution is defined modulo 2^64.
func TestDecodeRipWrap(t *testing.T) {
	code := mustHex(t, "48 8b 05 10 00 00 00")

	var inst Instruction
	if _, err := Decode(code, Mode64, ^uint64(0)-6, &inst); err != nil {
		t.Fatal(err)
	}

	// addr + 7 + 0x10 wraps to 0x10.
	if got := inst.Displacement(); got != 0x10 {
		t.Errorf("wrapped displacement = %#x, want 0x10", got)
	}
}
