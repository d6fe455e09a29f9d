// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

import "testing"

func TestFormatTruncates(t *testing.T) {
	code := mustHex(t, "48 89 d8")

	var inst Instruction
	if _, err := Decode(code, Mode64, 0, &inst); err != nil {
		t.Fatal(err)
	}

	const full = "mov rax, rbx"
	for n := 0; n <= len(full); n++ {
		buf := make([]byte, n)
		got := inst.Format(buf)
		if got != n && n <= len(full) && got != len(full) {
			t.Errorf("Format(len %d) wrote %d bytes", n, got)
		}

		if string(buf[:got]) != full[:got] {
			t.Errorf("Format(len %d) = %q, want prefix of %q", n, buf[:got], full)
		}
	}
}

func TestFormatNoAlloc(t *testing.T) {
	code := mustHex(t, "8b 44 88 10")

	var inst Instruction
	if _, err := Decode(code, Mode64, 0, &inst); err != nil {
		t.Fatal(err)
	}

	var buf [64]byte
	allocs := testing.AllocsPerRun(100, func() {
		inst.Format(buf[:])
	})

	if allocs != 0 {
		t.Errorf("Format allocates %v times per call, want 0", allocs)
	}
}

// The formatter's output is byte-stable: formatting the same
// instruction twice gives identical text.
func TestFormatStable(t *testing.T) {
	codes := []string{
		"90",
		"48 89 d8",
		"67 8b 04 25 78 56 34 12",
		"f0 0f b1 0f",
		"c5 f8 77",
		"e8 05 00 00 00",
		"8b 44 88 10",
		"c8 20 01 01",
	}

	for _, s := range codes {
		code := mustHex(t, s)

		var inst Instruction
		if _, err := Decode(code, Mode64, 0x401000, &inst); err != nil {
			t.Fatalf("Decode(% x): %v", code, err)
		}

		first := inst.String()
		for i := 0; i < 3; i++ {
			if got := inst.String(); got != first {
				t.Errorf("String() of % x changed: %q then %q", code, first, got)
			}
		}
	}
}
