/*
NAME
  bitwise.go

DESCRIPTION
  bitwise.go provides the reference CRC engine, which clocks input through
  the register one bit at a time.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package engine

import "math/bits"

// bitwise is the reference updater. It is slow but has no table and is the
// oracle the table driven updaters are tested against.
type bitwise[T Word] struct {
	poly  T
	refIn bool
}

func (u bitwise[T]) update(crc T, p []byte) T {
	top := ^T(0) ^ (^T(0) >> 1)
	for _, b := range p {
		if u.refIn {
			b = bits.Reverse8(b)
		}
		for i := 7; i >= 0; i-- {
			if b>>i&1 != 0 {
				crc ^= top
			}
			if crc&top != 0 {
				crc = (crc << 1) ^ u.poly
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}

// UpdateBitwise returns the register after clocking p through crc one bit at
// a time under params p.
func UpdateBitwise[T Word](params *Params[T], crc T, p []byte) T {
	return bitwise[T]{poly: params.Poly, refIn: params.RefIn}.update(crc, p)
}
