/*
NAME
  crc32.go

DESCRIPTION
  crc32.go provides 32 bit CRC computation over the models in the catalog,
  either incrementally through a Context or in one shot.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package crc32 computes 32 bit CRCs for the standard (IEEE 802.3) and
// MPEG-2 models.
//
// The checksum of a buffer can be packed into, and verified against, the
// buffer's trailing four bytes in big endian order:
//
//	buf := append(data, 0, 0, 0, 0)
//	err := crc32.PackBuf(crc32.MPEG2, buf)
//	...
//	ok, err := crc32.VerifyBuf(crc32.MPEG2, buf)
package crc32

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/ausocean/crc/engine"
	"github.com/ausocean/crc/table"
)

// Size is the size of a CRC32 checksum in bytes.
const Size = 4

// Errors.
var (
	ErrInvalidModel = engine.ErrInvalidModel
	ErrShortBuffer  = engine.ErrShortBuffer
)

// Option selects the engine used for a computation.
type Option = engine.Option

// Engine selection options; see the engine package.
var (
	Bitwise  = engine.Bitwise
	TableLen = engine.TableLen
)

// WithTable selects the table driven engine using t, which must have been
// generated from the model's polynomial.
func WithTable(t *table.Table[uint32]) Option { return engine.WithTable(t) }

// GenerateTable returns the n entry lookup table for poly, n being 16 or 256.
func GenerateTable(poly uint32, n int) (*table.Table[uint32], error) {
	return table.Generate(poly, n)
}

// Context is the running state of a CRC32 computation. It implements
// hash.Hash32.
// A Context must be created with New or prepared with Init before use.
type Context struct {
	model Model
	c     engine.Context[uint32]
}

// New returns a Context initialised for m.
func New(m Model, opts ...Option) (*Context, error) {
	c := &Context{}
	err := c.Init(m, opts...)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Init resolves m and sets the register to its initial value. Init may be
// used to reuse a Context for another computation.
func (c *Context) Init(m Model, opts ...Option) error {
	p, err := ParamsOf(m)
	if err != nil {
		return err
	}
	err = c.c.Init(p, opts...)
	if err != nil {
		return errors.Wrapf(err, "could not init %v", m)
	}
	c.model = m
	return nil
}

// Update feeds p into the checksum.
func (c *Context) Update(p []byte) { c.c.Update(p) }

// Final returns the checksum of the data fed so far. It does not reset c.
func (c *Context) Final() uint32 { return c.c.Final() }

// Model returns the model c was initialised with.
func (c *Context) Model() Model { return c.model }

// Write implements io.Writer. It never returns an error.
func (c *Context) Write(p []byte) (int, error) {
	c.c.Update(p)
	return len(p), nil
}

// Sum32 is the same as Final.
func (c *Context) Sum32() uint32 { return c.c.Final() }

// Sum appends the big endian checksum to b.
func (c *Context) Sum(b []byte) []byte {
	return binary.BigEndian.AppendUint32(b, c.c.Final())
}

// Reset restarts the computation with the same model and engine.
func (c *Context) Reset() { c.c.Reset() }

// Size returns Size.
func (c *Context) Size() int { return Size }

// BlockSize returns 1.
func (c *Context) BlockSize() int { return 1 }

// Calculate returns the checksum of p under m.
func Calculate(m Model, p []byte, opts ...Option) (uint32, error) {
	var c Context
	err := c.Init(m, opts...)
	if err != nil {
		return 0, err
	}
	c.Update(p)
	return c.Final(), nil
}

// PackBuf computes the checksum of buf[:len(buf)-Size] and writes it big
// endian into the last Size bytes of buf, overwriting them.
func PackBuf(m Model, buf []byte, opts ...Option) error {
	if len(buf) < Size {
		return errors.Wrapf(ErrShortBuffer, "len %d", len(buf))
	}
	n := len(buf) - Size
	crc, err := Calculate(m, buf[:n], opts...)
	if err != nil {
		return err
	}
	binary.BigEndian.PutUint32(buf[n:], crc)
	return nil
}

// VerifyBuf reports whether the last Size bytes of buf hold the big endian
// checksum of the bytes before them. A mismatch is not an error.
func VerifyBuf(m Model, buf []byte, opts ...Option) (bool, error) {
	if len(buf) < Size {
		return false, errors.Wrapf(ErrShortBuffer, "len %d", len(buf))
	}
	n := len(buf) - Size
	crc, err := Calculate(m, buf[:n], opts...)
	if err != nil {
		return false, err
	}
	return binary.BigEndian.Uint32(buf[n:]) == crc, nil
}

// AppendCRC returns p with its big endian checksum appended.
func AppendCRC(m Model, p []byte, opts ...Option) ([]byte, error) {
	crc, err := Calculate(m, p, opts...)
	if err != nil {
		return nil, err
	}
	return binary.BigEndian.AppendUint32(p, crc), nil
}
