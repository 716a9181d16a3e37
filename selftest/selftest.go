/*
NAME
  selftest.go

DESCRIPTION
  selftest.go runs every catalog model against known check values using
  each engine and reports the outcome.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package selftest checks the CRC models against known check values using
// the bitwise engine and both table sizes.
package selftest

import (
	"fmt"
	"io"

	"github.com/ausocean/utils/logging"
	"github.com/pkg/errors"

	"github.com/ausocean/crc/catalog"
	"github.com/ausocean/crc/engine"
	"github.com/ausocean/crc/table"
)

const pkg = "selftest: "

// Vector is a known check value for a named model.
type Vector struct {
	Model string
	Data  []byte
	Want  uint32
}

var (
	data12345 = []byte{0x31, 0x32, 0x33, 0x34, 0x35}
	dataRamp  = ramp()
)

func ramp() []byte {
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

// Vectors holds the check value of every model for "12345" and a few longer
// inputs.
var Vectors = []Vector{
	{"CRC8", data12345, 0xcb},
	{"CRC8_ITU", data12345, 0x9e},
	{"CRC8_ROHC", data12345, 0xc4},
	{"CRC8_MAXIM", data12345, 0xab},
	{"CRC16_IBM", data12345, 0xa455},
	{"CRC16_MAXIM", data12345, 0x5baa},
	{"CRC16_USB", data12345, 0x5b8e},
	{"CRC16_MODBUS", data12345, 0xa471},
	{"CRC16_CCITT", data12345, 0x7437},
	{"CRC16_CCITT_FALSE", data12345, 0x4560},
	{"CRC16_X25", data12345, 0xbb40},
	{"CRC16_XMODEM", data12345, 0x546c},
	{"CRC16_DNP", data12345, 0x711c},
	{"CRC32", data12345, 0xcbf53a1c},
	{"CRC32_MPEG2", data12345, 0xbd9ab747},
	{"CRC16_CCITT", dataRamp, 0xd841},
	{"CRC32", dataRamp, 0x29058c73},
}

// Strategy is a named engine selection.
type Strategy struct {
	Name string
	Opts []engine.Option
}

// Strategies are the engines every vector is run with by default.
var Strategies = []Strategy{
	{"bitwise", []engine.Option{engine.Bitwise()}},
	{"table16", []engine.Option{engine.TableLen(table.Nibble)}},
	{"table256", []engine.Option{engine.TableLen(table.Byte)}},
}

// Result is the outcome of one vector with one strategy.
type Result struct {
	Model    string
	Width    int
	Len      int
	Strategy string
	Want     uint32
	Got      uint32
	Err      error
}

// Pass reports whether the computed value matched.
func (r Result) Pass() bool { return r.Err == nil && r.Got == r.Want }

// Report holds the results of a run.
type Report struct {
	Results []Result
}

// Failed returns the number of failed results.
func (r *Report) Failed() int {
	var n int
	for _, res := range r.Results {
		if !res.Pass() {
			n++
		}
	}
	return n
}

// Passed reports whether every result passed.
func (r *Report) Passed() bool { return r.Failed() == 0 }

// Run computes every vector with every strategy. Failures are logged at
// warning level; a vector naming an unknown model fails with an error.
func Run(l logging.Logger, vectors []Vector, strategies []Strategy) *Report {
	rep := &Report{}
	for _, v := range vectors {
		m, err := catalog.Lookup(v.Model)
		for _, s := range strategies {
			res := Result{Model: v.Model, Width: m.Width, Len: len(v.Data), Strategy: s.Name, Want: v.Want}
			if err != nil {
				res.Err = err
			} else {
				res.Got, res.Err = m.Calculate(v.Data, s.Opts...)
			}
			rep.Results = append(rep.Results, res)

			if !res.Pass() {
				l.Warning(pkg+"check failed", "model", v.Model, "strategy", s.Name, "len", len(v.Data), "want", fmt.Sprintf("0x%X", v.Want), "got", fmt.Sprintf("0x%X", res.Got), "error", errString(res.Err))
				continue
			}
			l.Debug(pkg+"check passed", "model", v.Model, "strategy", s.Name, "len", len(v.Data))
		}
	}
	l.Info(pkg+"run complete", "checks", len(rep.Results), "failed", rep.Failed())
	return rep
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// WriteTo writes a per result listing and a summary to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	fmt.Fprintf(cw, "[==========] %d checks\n", len(r.Results))
	for _, res := range r.Results {
		digits := res.Width / 4
		if digits == 0 {
			digits = 8
		}
		fmt.Fprintf(cw, "[ RUN      ] %s.%s len=%d\n", res.Model, res.Strategy, res.Len)
		switch {
		case res.Err != nil:
			fmt.Fprintf(cw, "[     FAIL ] %s.%s: %v\n", res.Model, res.Strategy, res.Err)
		case !res.Pass():
			fmt.Fprintf(cw, "[     FAIL ] %s.%s: want 0x%0*X, got 0x%0*X\n", res.Model, res.Strategy, digits, res.Want, digits, res.Got)
		default:
			fmt.Fprintf(cw, "[       OK ] %s.%s: 0x%0*X\n", res.Model, res.Strategy, digits, res.Got)
		}
	}
	fmt.Fprintf(cw, "[==========] %d checks\n", len(r.Results))
	if f := r.Failed(); f != 0 {
		fmt.Fprintf(cw, "[  FAILED  ] %d checks, fail:%d\n", len(r.Results), f)
	} else {
		fmt.Fprintf(cw, "[  PASSED  ] %d checks.\n", len(r.Results))
	}
	return cw.n, errors.Wrap(cw.err, "could not write report")
}

// countWriter counts bytes written and keeps the first error.
type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}
