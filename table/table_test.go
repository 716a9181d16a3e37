/*
NAME
  table_test.go

DESCRIPTION
  table_test.go provides testing for table generation, sharing and printing.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package table

import (
	"bytes"
	"hash/crc32"
	"math/bits"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

// First entries of well known MSB-first tables.
var (
	crc8Poly07Nibble = []uint8{
		0x00, 0x07, 0x0E, 0x09, 0x1C, 0x1B, 0x12, 0x15,
		0x38, 0x3F, 0x36, 0x31, 0x24, 0x23, 0x2A, 0x2D,
	}
	crc16Poly1021Nibble = []uint16{
		0x0000, 0x1021, 0x2042, 0x3063, 0x4084, 0x50A5, 0x60C6, 0x70E7,
		0x8108, 0x9129, 0xA14A, 0xB16B, 0xC18C, 0xD1AD, 0xE1CE, 0xF1EF,
	}
	crc32Poly04C11DB7Byte = []uint32{
		0x00000000, 0x04C11DB7, 0x09823B6E, 0x0D4326D9,
		0x130476DC, 0x17C56B6B, 0x1A864DB2, 0x1E475005,
	}
)

func TestGenerateKnown(t *testing.T) {
	t8, err := Generate[uint8](0x07, Nibble)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if diff := cmp.Diff(crc8Poly07Nibble, t8.Entries()); diff != "" {
		t.Errorf("crc8 0x07 nibble table mismatch (-want +got):\n%s", diff)
	}

	t16, err := Generate[uint16](0x1021, Nibble)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if diff := cmp.Diff(crc16Poly1021Nibble, t16.Entries()); diff != "" {
		t.Errorf("crc16 0x1021 nibble table mismatch (-want +got):\n%s", diff)
	}

	t32, err := Generate[uint32](0x04C11DB7, Byte)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	got := t32.Entries()[:len(crc32Poly04C11DB7Byte)]
	if diff := cmp.Diff(crc32Poly04C11DB7Byte, got); diff != "" {
		t.Errorf("crc32 0x04C11DB7 byte table mismatch (-want +got):\n%s", diff)
	}
}

// TestGenerateMatchesStdlib checks the MSB-first table against the reflected
// table from hash/crc32: entry i of one is the bit reversal of entry
// reverse8(i) of the other.
func TestGenerateMatchesStdlib(t *testing.T) {
	msb, err := Generate[uint32](bits.Reverse32(crc32.IEEE), Byte)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	lsb := crc32.MakeTable(crc32.IEEE)
	for i := 0; i < Byte; i++ {
		want := bits.Reverse32(lsb[bits.Reverse8(uint8(i))])
		if got := msb.At(i); got != want {
			t.Errorf("entry %d: got 0x%08X want 0x%08X", i, got, want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, n := range []int{Nibble, Byte} {
		a, err := Generate[uint16](0x8005, n)
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		b, err := Generate[uint16](0x8005, n)
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		if a == b {
			t.Errorf("expected distinct tables from Generate")
		}
		if !cmp.Equal(a.Entries(), b.Entries()) {
			t.Errorf("tables for n=%d differ", n)
		}
		if a.Len() != n {
			t.Errorf("unexpected length: got %d want %d", a.Len(), n)
		}
	}
}

func TestGenerateBadLen(t *testing.T) {
	for _, n := range []int{0, 1, 15, 17, 128, 512} {
		_, err := Generate[uint8](0x07, n)
		if !errors.Is(err, ErrTableLen) {
			t.Errorf("n=%d: expected ErrTableLen, got %v", n, err)
		}
	}
}

func TestShared(t *testing.T) {
	a, err := Shared[uint32](0x04C11DB7, Nibble)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	b, err := Shared[uint32](0x04C11DB7, Nibble)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if a != b {
		t.Errorf("expected the same table from Shared")
	}

	// The same polynomial value at another width or length must not collide.
	c, err := Shared[uint16](0x1021, Nibble)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	d, err := Shared[uint32](0x1021, Byte)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	e, err := Shared[uint16](0x1021, Byte)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	if c.Len() != Nibble || d.Len() != Byte || e.Len() != Byte {
		t.Errorf("unexpected lengths: %d %d %d", c.Len(), d.Len(), e.Len())
	}
	if e.At(0xFF) != 0x1EF0 || d.At(0xFF) != 0x000FEF1F {
		t.Errorf("unexpected entries: 0x%04X 0x%08X", e.At(0xFF), d.At(0xFF))
	}

	if _, err := Shared[uint8](0x07, 3); !errors.Is(err, ErrTableLen) {
		t.Errorf("expected ErrTableLen, got %v", err)
	}
}

func TestWidth(t *testing.T) {
	if w := Width[uint8](); w != 8 {
		t.Errorf("uint8 width: got %d", w)
	}
	if w := Width[uint16](); w != 16 {
		t.Errorf("uint16 width: got %d", w)
	}
	if w := Width[uint32](); w != 32 {
		t.Errorf("uint32 width: got %d", w)
	}
}

func TestFprint(t *testing.T) {
	tab, err := Generate[uint8](0x07, Nibble)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	var buf bytes.Buffer
	err = Fprint(&buf, Name(tab), tab)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	want := "var crc8Poly0x07Table16 = [16]uint8{\n" +
		"\t0x00, 0x07, 0x0E, 0x09, 0x1C, 0x1B, 0x12, 0x15, 0x38, 0x3F, 0x36, 0x31, 0x24, 0x23, 0x2A, 0x2D,\n" +
		"}\n"
	if got := buf.String(); got != want {
		t.Errorf("unexpected output\nwant:\n%s\ngot:\n%s", want, got)
	}
}
