/*
NAME
  crc32_test.go

DESCRIPTION
  crc32_test.go provides testing for the CRC32 models, including MPEG-2 PSI
  sections and agreement with hash/crc32.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package crc32

import (
	"bytes"
	"hash"
	stdcrc32 "hash/crc32"
	"math/rand"
	"testing"

	"github.com/pkg/errors"

	"github.com/ausocean/crc/table"
)

var _ hash.Hash32 = (*Context)(nil)

var testData = []byte("12345")

var want = [NumModels]uint32{
	CRC32: 0xcbf53a1c,
	MPEG2: 0xbd9ab747,
}

var strategies = []struct {
	name string
	opts []Option
}{
	{"bitwise", []Option{Bitwise()}},
	{"nibble", []Option{TableLen(table.Nibble)}},
	{"byte", []Option{TableLen(table.Byte)}},
}

// PSI sections (without pointer field) and their CRCs.
var (
	patSection = []byte{
		0x00, 0xb0, 0x0d, // table id, syntax indicator and section length
		0x00, 0x01, 0xc1, 0x00, 0x00, // syntax section
		0x00, 0x01, 0xf0, 0x00, // program number and program map PID
		0x2a, 0xb1, 0x04, 0xb2, // CRC
	}
	pmtSection = []byte{
		0x02, 0xb0, 0x12, // table id, syntax indicator and section length
		0x00, 0x01, 0xc1, 0x00, 0x00, // syntax section
		0xe1, 0x00, 0xf0, 0x00, // PCR PID and program info length
		0x1b, 0xe1, 0x00, 0xf0, 0x00, // elementary stream info
		0x15, 0xbd, 0x4d, 0x56, // CRC
	}
)

func TestCalculate(t *testing.T) {
	for _, m := range Models() {
		for _, s := range strategies {
			got, err := Calculate(m, testData, s.opts...)
			if err != nil {
				t.Fatalf("%v %s: did not expect error: %v", m, s.name, err)
			}
			if got != want[m] {
				t.Errorf("%v %s: got 0x%08X want 0x%08X", m, s.name, got, want[m])
			}
		}
	}
}

func TestLargeData(t *testing.T) {
	data := make([]byte, 256)
	for i := range data {
		data[i] = byte(i)
	}
	for _, s := range strategies {
		got, err := Calculate(CRC32, data, s.opts...)
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		if got != 0x29058c73 {
			t.Errorf("%s: got 0x%08X want 0x29058C73", s.name, got)
		}
	}
}

func TestMatchesStdlib(t *testing.T) {
	r := rand.New(rand.NewSource(32))
	for n := 0; n < 300; n += 7 {
		data := make([]byte, n)
		r.Read(data)
		for _, s := range strategies {
			got, err := Calculate(CRC32, data, s.opts...)
			if err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			if want := stdcrc32.ChecksumIEEE(data); got != want {
				t.Errorf("%s len %d: got 0x%08X want 0x%08X", s.name, n, got, want)
			}
		}
	}
}

func TestPSISections(t *testing.T) {
	for i, sec := range [][]byte{patSection, pmtSection} {
		buf := append([]byte(nil), sec...)
		copy(buf[len(buf)-Size:], []byte{0, 0, 0, 0})
		err := PackBuf(MPEG2, buf)
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		if !bytes.Equal(buf, sec) {
			t.Errorf("section %d: got % x want % x", i, buf, sec)
		}

		for _, s := range strategies {
			ok, err := VerifyBuf(MPEG2, sec, s.opts...)
			if err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			if !ok {
				t.Errorf("section %d %s: verify failed", i, s.name)
			}

			// Without output reflection or XOR, the register over a section and
			// its CRC is zero.
			res, err := Calculate(MPEG2, sec, s.opts...)
			if err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			if res != 0 {
				t.Errorf("section %d %s: residue 0x%08X", i, s.name, res)
			}
		}
	}
}

func TestPackAndVerify(t *testing.T) {
	// Buffers from 4 (checksum only) to 9 bytes.
	for size := Size; size <= 9; size++ {
		buf := make([]byte, size)
		copy(buf, testData)
		for _, m := range Models() {
			for _, s := range strategies {
				if err := PackBuf(m, buf, s.opts...); err != nil {
					t.Fatalf("did not expect error: %v", err)
				}
				ok, err := VerifyBuf(m, buf, s.opts...)
				if err != nil {
					t.Fatalf("did not expect error: %v", err)
				}
				if !ok {
					t.Errorf("%v %s size %d: verify failed", m, s.name, size)
				}

				buf[0] ^= 0xff
				ok, _ = VerifyBuf(m, buf, s.opts...)
				if ok && size > Size {
					t.Errorf("%v %s size %d: corruption not detected", m, s.name, size)
				}
				buf[0] ^= 0xff
			}
		}
	}
}

func TestErrors(t *testing.T) {
	if err := PackBuf(CRC32, make([]byte, 3)); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
	if _, err := VerifyBuf(CRC32, nil); !errors.Is(err, ErrShortBuffer) {
		t.Errorf("expected ErrShortBuffer, got %v", err)
	}
	if _, err := Calculate(NumModels, testData); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("expected ErrInvalidModel, got %v", err)
	}
	if _, err := ParamsOf(-1); !errors.Is(err, ErrInvalidModel) {
		t.Errorf("expected ErrInvalidModel, got %v", err)
	}
	if _, err := New(MPEG2, TableLen(32)); !errors.Is(err, table.ErrTableLen) {
		t.Errorf("expected ErrTableLen, got %v", err)
	}
}

func TestContext(t *testing.T) {
	r := rand.New(rand.NewSource(33))
	data := make([]byte, 1000)
	r.Read(data)

	for _, m := range Models() {
		ref, err := Calculate(m, data, Bitwise())
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		for _, s := range strategies {
			c, err := New(m, s.opts...)
			if err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			for i := 0; i < len(data); i += 37 {
				end := i + 37
				if end > len(data) {
					end = len(data)
				}
				c.Write(data[i:end])
			}
			if got := c.Sum32(); got != ref {
				t.Errorf("%v %s: got 0x%08X want 0x%08X", m, s.name, got, ref)
			}
			if got := c.Final(); got != ref {
				t.Errorf("%v %s: second Final got 0x%08X want 0x%08X", m, s.name, got, ref)
			}

			// Reuse the context for the other model.
			other := (m + 1) % NumModels
			if err := c.Init(other, s.opts...); err != nil {
				t.Fatalf("did not expect error: %v", err)
			}
			c.Update(testData)
			if got := c.Final(); got != want[other] {
				t.Errorf("%v %s: got 0x%08X want 0x%08X", other, s.name, got, want[other])
			}
		}
	}
}

func TestSharedTable(t *testing.T) {
	tab, err := GenerateTable(IEEE, table.Byte)
	if err != nil {
		t.Fatalf("did not expect error: %v", err)
	}
	// Both models use the same polynomial and so may share one table.
	for _, m := range Models() {
		got, err := Calculate(m, testData, WithTable(tab))
		if err != nil {
			t.Fatalf("did not expect error: %v", err)
		}
		if got != want[m] {
			t.Errorf("%v: got 0x%08X want 0x%08X", m, got, want[m])
		}
	}
}
