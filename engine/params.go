/*
NAME
  params.go

DESCRIPTION
  params.go defines the CRC model parameter set and the output
  transformation shared by both engines.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package engine provides the width generic CRC engines: a bit at a time
// reference engine and a table driven engine using 16 or 256 entry tables.
// The crc8, crc16 and crc32 packages wrap it with their model catalogs.
package engine

import (
	"math/bits"

	"github.com/ausocean/crc/table"
)

// Word is the set of register types, one per supported checksum width.
type Word = table.Word

// Params holds the parameters of a CRC model. The polynomial is given in
// normal (MSB-first) form without the implicit top bit.
type Params[T Word] struct {
	Poly   T    // Generator polynomial.
	Init   T    // Initial register value.
	XorOut T    // Final XOR mask.
	RefIn  bool // Feed input bytes least significant bit first.
	RefOut bool // Reflect the register before the final XOR.
}

// Width returns the checksum width in bits.
func (p *Params[T]) Width() int { return table.Width[T]() }

// Finalize converts a register value to the checksum.
func (p *Params[T]) Finalize(crc T) T {
	if p.RefOut {
		crc = Reflect(crc)
	}
	return crc ^ p.XorOut
}

// Reflect returns v with the order of its bits reversed.
func Reflect[T Word](v T) T {
	w := table.Width[T]()
	return T(bits.Reverse64(uint64(v)) >> (64 - w))
}
