/*
NAME
  context.go

DESCRIPTION
  context.go provides Context, the running state of a checksum computation,
  and the options used to select the engine a Context uses.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package engine

import (
	"github.com/pkg/errors"

	"github.com/ausocean/crc/table"
)

// Errors shared by the width packages.
var (
	ErrInvalidModel = errors.New("invalid model")
	ErrShortBuffer  = errors.New("buffer shorter than checksum")
	ErrTableWidth   = errors.New("table width does not match checksum width")
	ErrTablePoly    = errors.New("table polynomial does not match model")
	ErrNoParams     = errors.New("nil params")
)

// Strategy identifies the engine used by a Context.
type Strategy int

// Available strategies.
const (
	StrategyTable Strategy = iota
	StrategyBitwise
)

func (s Strategy) String() string {
	switch s {
	case StrategyTable:
		return "table"
	case StrategyBitwise:
		return "bitwise"
	default:
		return "unknown"
	}
}

// settings is what Options act on before a Context picks its updater.
type settings struct {
	strategy Strategy
	tableLen int
	table    interface{} // *table.Table[T] for the context's T.
}

// Option configures the engine selected by Context.Init.
type Option func(*settings) error

// Bitwise selects the bit at a time reference engine.
func Bitwise() Option {
	return func(s *settings) error {
		s.strategy = StrategyBitwise
		return nil
	}
}

// TableLen selects the table driven engine using a shared table of n
// entries, where n is table.Nibble or table.Byte.
func TableLen(n int) Option {
	return func(s *settings) error {
		if n != table.Nibble && n != table.Byte {
			return errors.Wrapf(table.ErrTableLen, "got %d", n)
		}
		s.strategy = StrategyTable
		s.tableLen = n
		s.table = nil
		return nil
	}
}

// WithTable selects the table driven engine using the pre-built table t,
// which must be a *table.Table of the context's register type generated from
// the model's polynomial.
func WithTable(t interface{}) Option {
	return func(s *settings) error {
		if t == nil {
			return errors.New("nil table")
		}
		s.strategy = StrategyTable
		s.table = t
		return nil
	}
}

// updater advances a register over a run of bytes.
type updater[T Word] interface {
	update(crc T, p []byte) T
}

// Context holds the running state of one checksum. A Context must not be
// used by more than one goroutine at a time; the params and table it refers
// to are never modified and may be shared.
//
// A Context must be prepared with Init. Until then Update and Reset do
// nothing and Final returns 0.
type Context[T Word] struct {
	params   *Params[T]
	up       updater[T]
	crc      T
	strategy Strategy
	tableLen int
}

// Init prepares c to compute a checksum under params, selecting the engine
// from opts. With no options a shared 256 entry table is used.
func (c *Context[T]) Init(params *Params[T], opts ...Option) error {
	if params == nil {
		return ErrNoParams
	}
	s := settings{strategy: StrategyTable, tableLen: table.Byte}
	for i, o := range opts {
		err := o(&s)
		if err != nil {
			return errors.Wrapf(err, "option %d", i)
		}
	}

	var up updater[T]
	switch {
	case s.strategy == StrategyBitwise:
		up = bitwise[T]{poly: params.Poly, refIn: params.RefIn}
		s.tableLen = 0
	case s.table != nil:
		t, ok := s.table.(*table.Table[T])
		if !ok {
			return errors.Wrapf(ErrTableWidth, "want %d bit table, got %T", params.Width(), s.table)
		}
		if t == nil {
			return errors.New("nil table")
		}
		if t.Poly() != params.Poly {
			return errors.Wrapf(ErrTablePoly, "table 0x%X, model 0x%X", t.Poly(), params.Poly)
		}
		var err error
		up, err = newLookup(t, params.RefIn)
		if err != nil {
			return err
		}
		s.tableLen = t.Len()
	default:
		t, err := table.Shared(params.Poly, s.tableLen)
		if err != nil {
			return errors.Wrap(err, "could not get table")
		}
		up, err = newLookup(t, params.RefIn)
		if err != nil {
			return err
		}
	}

	*c = Context[T]{
		params:   params,
		up:       up,
		crc:      params.Init,
		strategy: s.strategy,
		tableLen: s.tableLen,
	}
	return nil
}

// Update feeds p into the checksum. Calling Update with consecutive chunks
// of a stream gives the same result as one call with the whole stream.
func (c *Context[T]) Update(p []byte) {
	if c.up == nil {
		return
	}
	c.crc = c.up.update(c.crc, p)
}

// Final returns the checksum of the data fed so far. It does not change the
// running register, so calling it again returns the same value.
func (c *Context[T]) Final() T {
	if c.params == nil {
		return 0
	}
	return c.params.Finalize(c.crc)
}

// Reset sets the register back to the model's initial value, keeping the
// selected engine.
func (c *Context[T]) Reset() {
	if c.params == nil {
		return
	}
	c.crc = c.params.Init
}

// Register returns the running register value.
func (c *Context[T]) Register() T { return c.crc }

// Params returns the parameters c was initialised with.
func (c *Context[T]) Params() *Params[T] { return c.params }

// Strategy returns the engine in use.
func (c *Context[T]) Strategy() Strategy { return c.strategy }

// TableLen returns the entry count of the table in use, or 0 for the bitwise
// engine.
func (c *Context[T]) TableLen() int { return c.tableLen }
