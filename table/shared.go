/*
NAME
  shared.go

DESCRIPTION
  shared.go provides a process wide cache of generated tables so that
  contexts using the same polynomial share one table.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package table

import "sync"

type key struct {
	poly  uint32
	width int
	n     int
}

var shared sync.Map // key -> *Table[T]

// Shared returns the n entry table for poly, generating it on first use.
// Later calls with the same poly, width and n return the same *Table.
func Shared[T Word](poly T, n int) (*Table[T], error) {
	k := key{poly: uint32(poly), width: Width[T](), n: n}
	if v, ok := shared.Load(k); ok {
		return v.(*Table[T]), nil
	}
	t, err := Generate(poly, n)
	if err != nil {
		return nil, err
	}
	v, _ := shared.LoadOrStore(k, t)
	return v.(*Table[T]), nil
}
