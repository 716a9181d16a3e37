/*
NAME
  table.go

DESCRIPTION
  table.go provides generation of CRC lookup tables from a generator
  polynomial. Tables may have 16 entries (one nibble per lookup) or 256
  entries (one byte per lookup).

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package table provides MSB-first CRC lookup table generation for 8, 16 and
// 32 bit checksum widths.
package table

import (
	"math/bits"

	"github.com/pkg/errors"
)

// Supported table entry counts.
const (
	Nibble = 16  // One lookup per 4 bits of input.
	Byte   = 256 // One lookup per byte of input.
)

// ErrTableLen is returned when a table of an unsupported size is requested.
var ErrTableLen = errors.New("table length must be 16 or 256")

// Word is the set of register types a table can be generated for.
type Word interface {
	uint8 | uint16 | uint32
}

// Table is a generated lookup table. A Table is never modified after
// generation and may be shared between any number of goroutines.
type Table[T Word] struct {
	poly    T
	entries []T
}

// Width returns the bit width of the register type T.
func Width[T Word]() int {
	return bits.Len64(uint64(^T(0)))
}

// Generate returns the n entry table for poly. For a 256 entry table, entry i
// is i placed in the top byte of the register after eight rounds of
// shift/XOR-with-poly; for a 16 entry table i is placed in the top nibble and
// four rounds are applied.
func Generate[T Word](poly T, n int) (*Table[T], error) {
	var rounds int
	switch n {
	case Nibble:
		rounds = 4
	case Byte:
		rounds = 8
	default:
		return nil, errors.Wrapf(ErrTableLen, "got %d", n)
	}

	w := Width[T]()
	top := ^T(0) ^ (^T(0) >> 1)
	t := &Table[T]{poly: poly, entries: make([]T, n)}
	for i := range t.entries {
		crc := T(i) << (w - rounds)
		for j := 0; j < rounds; j++ {
			if crc&top != 0 {
				crc = (crc << 1) ^ poly
			} else {
				crc <<= 1
			}
		}
		t.entries[i] = crc
	}
	return t, nil
}

// Len returns the number of entries in the table, either Nibble or Byte.
func (t *Table[T]) Len() int { return len(t.entries) }

// Poly returns the polynomial the table was generated from.
func (t *Table[T]) Poly() T { return t.poly }

// At returns entry i.
func (t *Table[T]) At(i int) T { return t.entries[i] }

// Entries returns a copy of the table entries.
func (t *Table[T]) Entries() []T {
	e := make([]T, len(t.entries))
	copy(e, t.entries)
	return e
}
