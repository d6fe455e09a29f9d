// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

// Package fadec decodes x86 machine code.
//
// The decoder identifies a single instruction in a byte buffer: its
// mnemonic, operands, prefixes, and length. It is table-driven; the
// dispatch tables are generated from the encoding descriptions in
// instrs.txt by cmd/gentables and committed as Go source. Decoding
// never allocates and never reads more than 15 bytes, so it is safe
// to use from any number of goroutines at once.
//
// Decoding does not produce assembler syntax. Instruction.Format
// renders a textual form for debugging only.
package fadec

import "errors"

// CPU modes accepted by Decode.
const (
	Mode32 = 32
	Mode64 = 64
)

// Errors returned by Decode. The Instruction passed to a failed
// Decode call is left in an unspecified state and must not be read.
var (
	// ErrShortBuffer means the buffer ended in the middle of a
	// well-formed instruction.
	ErrShortBuffer = errors.New("fadec: short buffer")

	// ErrInvalid means the bytes do not begin a valid instruction
	// in the requested mode.
	ErrInvalid = errors.New("fadec: invalid instruction")

	// ErrTooLong means the instruction would exceed the 15-byte
	// architectural limit.
	ErrTooLong = errors.New("fadec: instruction too long")

	// ErrBadMode means the mode argument was not 32 or 64.
	ErrBadMode = errors.New("fadec: bad mode")
)
