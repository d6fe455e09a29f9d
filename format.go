// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

// The formatter renders a decoded instruction as lower-case,
// Intel-flavoured text for debugging. It is not an assembler
// back end: the output is stable, not necessarily re-assemblable.
// It reads the instruction only through its accessors and performs
// no allocation; String is the allocating convenience wrapper.

// sbuf is a bounded string writer over a caller-provided buffer.
type sbuf struct {
	b []byte
	n int
}

func (s *sbuf) str(t string) {
	for i := 0; i < len(t); i++ {
		if s.n >= len(s.b) {
			return
		}

		s.b[s.n] = t[i]
		s.n++
	}
}

func (s *sbuf) byteChar(c byte) {
	if s.n < len(s.b) {
		s.b[s.n] = c
		s.n++
	}
}

const hexDigits = "0123456789abcdef"

func (s *sbuf) hex(v uint64) {
	s.str("0x")
	if v == 0 {
		s.byteChar('0')
		return
	}

	var tmp [16]byte
	i := len(tmp)
	for v != 0 {
		i--
		tmp[i] = hexDigits[v&0xf]
		v >>= 4
	}

	for ; i < len(tmp); i++ {
		s.byteChar(tmp[i])
	}
}

func (s *sbuf) signedHex(v int64) {
	if v < 0 {
		s.byteChar('-')
		s.hex(uint64(-v))
		return
	}

	s.hex(uint64(v))
}

func (s *sbuf) dec(v int) {
	if v >= 10 {
		s.dec(v / 10)
	}

	s.byteChar('0' + byte(v%10))
}

// Format renders the instruction into buf, truncating if buf is too
// small, and returns the number of bytes written.
func (in *Instruction) Format(buf []byte) int {
	s := sbuf{b: buf}

	s.str(in.Mnemonic().String())

	for i := 0; i < 4; i++ {
		op := in.Operand(i)
		if op.Kind() == OpNone {
			break
		}

		if i == 0 {
			s.byteChar(' ')
		} else {
			s.str(", ")
		}

		if op.Kind() == OpImm && i == 1 && in.Mnemonic() == ENTER {
			s.signedHex(in.Immediate2())
			continue
		}

		in.formatOperand(&s, op)
	}

	return s.n
}

func (in *Instruction) formatOperand(s *sbuf, op Operand) {
	switch op.Kind() {
	case OpReg:
		kind, reg := op.Reg()
		s.str(regName(kind, reg, op.Size(), in.rex != 0))

	case OpImm:
		s.signedHex(in.Immediate())

	case OpPcrel:
		s.hex(in.PcrelTarget())

	case OpMem:
		s.byteChar('[')
		if in.Flags()&FlagSeg != 0 {
			s.str(op.Segment().String())
			s.byteChar(':')
		}

		wrote := false
		if base, ok := op.Base(); ok {
			s.str(gprName(base, in.AddressSize(), in.rex != 0))
			wrote = true
		}

		if idx, ok := op.Index(); ok {
			if wrote {
				s.byteChar('+')
			}

			s.str(gprName(idx, in.AddressSize(), in.rex != 0))
			if op.Scale() > 1 {
				s.byteChar('*')
				s.dec(op.Scale())
			}
			wrote = true
		}

		if disp := in.Displacement(); disp != 0 || !wrote {
			if wrote {
				if disp < 0 {
					s.byteChar('-')
					s.hex(uint64(-disp))
				} else {
					s.byteChar('+')
					s.hex(uint64(disp))
				}
			} else {
				s.signedHex(disp)
			}
		}

		s.byteChar(']')
	}
}

// String renders the instruction to a new string. It allocates and
// is therefore unsuitable for the contexts Decode itself supports;
// use Format with a caller-provided buffer there.
func (in *Instruction) String() string {
	var buf [128]byte
	n := in.Format(buf[:])
	return string(buf[:n])
}
