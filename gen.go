// Copyright 2023 The Firefly Authors.
//
// Use of this source code is governed by a BSD 3-clause
// license that can be found in the LICENSE file.

package fadec

//go:generate go run ./cmd/gentables -mnemonics mnemonics.go instrs.txt tables.go
