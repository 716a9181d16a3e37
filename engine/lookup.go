/*
NAME
  lookup.go

DESCRIPTION
  lookup.go provides the table driven CRC updaters for byte (256 entry) and
  nibble (16 entry) tables.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package engine

import (
	"math/bits"

	"github.com/pkg/errors"

	"github.com/ausocean/crc/table"
)

// byteTable consumes one byte per lookup.
type byteTable[T Word] struct {
	tab   *table.Table[T]
	refIn bool
}

func (u byteTable[T]) update(crc T, p []byte) T {
	shift := table.Width[T]() - 8
	for _, b := range p {
		if u.refIn {
			b = bits.Reverse8(b)
		}
		crc = T(uint64(crc)<<8) ^ u.tab.At(int(byte(crc>>shift)^b))
	}
	return crc
}

// nibbleTable consumes each byte as two lookups, high nibble first.
type nibbleTable[T Word] struct {
	tab   *table.Table[T]
	refIn bool
}

func (u nibbleTable[T]) update(crc T, p []byte) T {
	shift := table.Width[T]() - 4
	for _, b := range p {
		if u.refIn {
			b = bits.Reverse8(b)
		}
		crc = (crc << 4) ^ u.tab.At(int(byte(crc>>shift)^b>>4))
		crc = (crc << 4) ^ u.tab.At(int(byte(crc>>shift)^b&0x0f))
	}
	return crc
}

// newLookup returns the updater matching the length of t.
func newLookup[T Word](t *table.Table[T], refIn bool) (updater[T], error) {
	switch t.Len() {
	case table.Byte:
		return byteTable[T]{tab: t, refIn: refIn}, nil
	case table.Nibble:
		return nibbleTable[T]{tab: t, refIn: refIn}, nil
	default:
		return nil, errors.Wrapf(table.ErrTableLen, "got %d", t.Len())
	}
}
