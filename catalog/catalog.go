/*
NAME
  catalog.go

DESCRIPTION
  catalog.go provides a width independent view over the crc8, crc16 and
  crc32 model catalogs, used by tools that select a model by name.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package catalog lists every CRC model of every width and dispatches
// computations to the package for the model's width.
package catalog

import (
	"hash"
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/crc/crc16"
	"github.com/ausocean/crc/crc32"
	"github.com/ausocean/crc/crc8"
	"github.com/ausocean/crc/engine"
)

// ErrUnknownModel is returned by Lookup for a name not in any catalog.
var ErrUnknownModel = errors.New("unknown model")

// Model is a model of any width.
type Model struct {
	Width int
	id    int
}

// All returns every model, 8 bit models first.
func All() []Model {
	var all []Model
	for _, m := range crc8.Models() {
		all = append(all, Model{Width: 8, id: int(m)})
	}
	for _, m := range crc16.Models() {
		all = append(all, Model{Width: 16, id: int(m)})
	}
	for _, m := range crc32.Models() {
		all = append(all, Model{Width: 32, id: int(m)})
	}
	return all
}

// Lookup returns the model with display name name, ignoring case.
func Lookup(name string) (Model, error) {
	for _, m := range All() {
		if strings.EqualFold(m.String(), name) {
			return m, nil
		}
	}
	return Model{}, errors.Wrapf(ErrUnknownModel, "%q", name)
}

// Names returns the display names of every model.
func Names() []string {
	var n []string
	for _, m := range All() {
		n = append(n, m.String())
	}
	return n
}

func (m Model) String() string {
	switch m.Width {
	case 8:
		return crc8.Model(m.id).String()
	case 16:
		return crc16.Model(m.id).String()
	case 32:
		return crc32.Model(m.id).String()
	default:
		return "NONE"
	}
}

// Size returns the checksum size in bytes.
func (m Model) Size() int { return m.Width / 8 }

// Params returns the model parameters widened to 32 bits.
func (m Model) Params() (engine.Params[uint32], error) {
	switch m.Width {
	case 8:
		p, err := crc8.ParamsOf(crc8.Model(m.id))
		if err != nil {
			return engine.Params[uint32]{}, err
		}
		return engine.Params[uint32]{Poly: uint32(p.Poly), Init: uint32(p.Init), XorOut: uint32(p.XorOut), RefIn: p.RefIn, RefOut: p.RefOut}, nil
	case 16:
		p, err := crc16.ParamsOf(crc16.Model(m.id))
		if err != nil {
			return engine.Params[uint32]{}, err
		}
		return engine.Params[uint32]{Poly: uint32(p.Poly), Init: uint32(p.Init), XorOut: uint32(p.XorOut), RefIn: p.RefIn, RefOut: p.RefOut}, nil
	case 32:
		p, err := crc32.ParamsOf(crc32.Model(m.id))
		if err != nil {
			return engine.Params[uint32]{}, err
		}
		return *p, nil
	default:
		return engine.Params[uint32]{}, errors.Wrapf(engine.ErrInvalidModel, "width %d", m.Width)
	}
}

// Calculate returns the checksum of p under m.
func (m Model) Calculate(p []byte, opts ...engine.Option) (uint32, error) {
	switch m.Width {
	case 8:
		crc, err := crc8.Calculate(crc8.Model(m.id), p, opts...)
		return uint32(crc), err
	case 16:
		crc, err := crc16.Calculate(crc16.Model(m.id), p, opts...)
		return uint32(crc), err
	case 32:
		return crc32.Calculate(crc32.Model(m.id), p, opts...)
	default:
		return 0, errors.Wrapf(engine.ErrInvalidModel, "width %d", m.Width)
	}
}

// PackBuf writes the checksum of the leading bytes of buf into its last
// Size bytes.
func (m Model) PackBuf(buf []byte, opts ...engine.Option) error {
	switch m.Width {
	case 8:
		return crc8.PackBuf(crc8.Model(m.id), buf, opts...)
	case 16:
		return crc16.PackBuf(crc16.Model(m.id), buf, opts...)
	case 32:
		return crc32.PackBuf(crc32.Model(m.id), buf, opts...)
	default:
		return errors.Wrapf(engine.ErrInvalidModel, "width %d", m.Width)
	}
}

// VerifyBuf reports whether the last Size bytes of buf hold the checksum of
// the bytes before them.
func (m Model) VerifyBuf(buf []byte, opts ...engine.Option) (bool, error) {
	switch m.Width {
	case 8:
		return crc8.VerifyBuf(crc8.Model(m.id), buf, opts...)
	case 16:
		return crc16.VerifyBuf(crc16.Model(m.id), buf, opts...)
	case 32:
		return crc32.VerifyBuf(crc32.Model(m.id), buf, opts...)
	default:
		return false, errors.Wrapf(engine.ErrInvalidModel, "width %d", m.Width)
	}
}

// New returns a streaming context for m. Its Sum method appends the big
// endian checksum.
func (m Model) New(opts ...engine.Option) (hash.Hash, error) {
	switch m.Width {
	case 8:
		c, err := crc8.New(crc8.Model(m.id), opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case 16:
		c, err := crc16.New(crc16.Model(m.id), opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case 32:
		c, err := crc32.New(crc32.Model(m.id), opts...)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, errors.Wrapf(engine.ErrInvalidModel, "width %d", m.Width)
	}
}
