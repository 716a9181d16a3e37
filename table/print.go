/*
NAME
  print.go

DESCRIPTION
  print.go writes a generated table as a Go array literal so that it can be
  pasted into source for a statically initialised table.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package table

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

const perLine = 16

// Name returns the conventional variable name for a table, for example
// crc16Poly0x8005Table16.
func Name[T Word](t *Table[T]) string {
	w := Width[T]()
	return fmt.Sprintf("crc%dPoly0x%0*XTable%d", w, w/4, uint32(t.poly), t.Len())
}

// Fprint writes t to w as a Go variable declaration named name, perLine
// zero padded hex entries per line.
func Fprint[T Word](w io.Writer, name string, t *Table[T]) error {
	width := Width[T]()
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "var %s = [%d]uint%d{\n", name, t.Len(), width)
	for i, e := range t.entries {
		if i%perLine == 0 {
			bw.WriteString("\t")
		}
		fmt.Fprintf(bw, "0x%0*X,", width/4, uint32(e))
		if (i+1)%perLine == 0 || i == len(t.entries)-1 {
			bw.WriteString("\n")
		} else {
			bw.WriteString(" ")
		}
	}
	bw.WriteString("}\n")
	return errors.Wrap(bw.Flush(), "could not write table")
}
