// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

import (
	"testing"

	"golang.org/x/arch/x86/x86asm"
)

// Instruction lengths are cross-checked against the x86asm
// decoder, which derives its tables independently from the Intel
// manuals.
func TestDecodeLengthAgainstXArch(t *testing.T) {
	codes := []string{
		"90",
		"48 89 d8",
		"66 89 c8",
		"8b 44 88 10",
		"48 8b 05 10 00 00 00",
		"f0 0f b1 0f",
		"0f b6 c4",
		"e8 05 00 00 00",
		"55",
		"41 57",
		"c1 e0 05",
		"d1 f8",
		"6b c0 05",
		"f3 90",
		"0f 94 c0",
		"48 c7 c0 ff ff ff ff",
		"48 b8 ef cd ab 89 67 45 23 01",
		"c8 20 01 01",
		"a1 f0 de bc 9a 78 56 34 12",
		"67 8b 04 25 78 56 34 12",
		"c5 f8 77",
		"0f ae e8",
		"0f 01 00",
		"f3 ae",
		"48 63 c8",
		"d8 c3",
		"db e3",
	}

	for _, s := range codes {
		code := mustHex(t, s)

		var inst Instruction
		n, err := Decode(code, Mode64, 0, &inst)
		if err != nil {
			t.Errorf("Decode(% x): %v", code, err)
			continue
		}

		ref, err := x86asm.Decode(code, 64)
		if err != nil {
			t.Errorf("x86asm.Decode(% x): %v", code, err)
			continue
		}

		if n != ref.Len {
			t.Errorf("Decode(% x) = %d bytes, x86asm says %d", code, n, ref.Len)
		}
	}
}
