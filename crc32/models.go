/*
NAME
  models.go

DESCRIPTION
  models.go provides the catalog of named 32 bit CRC models.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package crc32

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/crc/engine"
)

// Model identifies a named CRC32 parameter set.
type Model int

// The CRC32 models. NumModels bounds iteration and is not a model.
const (
	CRC32 Model = iota // IEEE 802.3, as used by Ethernet, zip and PNG.
	MPEG2              // ISO/IEC 13818-1 PSI section CRC.
	NumModels
)

// Params is a CRC32 parameter set.
type Params = engine.Params[uint32]

// IEEE is the normal form of the IEEE 802.3 polynomial shared by both models.
const IEEE = 0x04c11db7

var models = [NumModels]Params{
	CRC32: {Poly: IEEE, Init: 0xffffffff, XorOut: 0xffffffff, RefIn: true, RefOut: true},
	MPEG2: {Poly: IEEE, Init: 0xffffffff, XorOut: 0x00000000},
}

var names = [NumModels]string{
	CRC32: "CRC32",
	MPEG2: "CRC32_MPEG2",
}

// Valid reports whether m is in the catalog.
func (m Model) Valid() bool { return m >= 0 && m < NumModels }

func (m Model) String() string {
	if !m.Valid() {
		return "CRC32_NONE"
	}
	return names[m]
}

// ParamsOf returns the shared, read only parameters of m.
func ParamsOf(m Model) (*Params, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(engine.ErrInvalidModel, "crc32 model %d", int(m))
	}
	return &models[m], nil
}

// ModelFromString returns the model named s, ignoring case.
func ModelFromString(s string) (Model, error) {
	for m, n := range names {
		if strings.EqualFold(n, s) {
			return Model(m), nil
		}
	}
	return NumModels, errors.Wrapf(engine.ErrInvalidModel, "unknown crc32 model %q", s)
}

// Models returns every model in catalog order.
func Models() []Model {
	m := make([]Model, NumModels)
	for i := range m {
		m[i] = Model(i)
	}
	return m
}
