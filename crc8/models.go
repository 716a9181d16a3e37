/*
NAME
  models.go

DESCRIPTION
  models.go provides the catalog of named 8 bit CRC models.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package crc8

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/crc/engine"
)

// Model identifies a named CRC8 parameter set.
type Model int

// The CRC8 models. NumModels bounds iteration and is not a model.
const (
	CRC8  Model = iota // x^8 + x^2 + x + 1 (ATM HEC).
	ITU                // CRC8 with the output XORed with 0x55.
	ROHC               // RFC 3095 header compression.
	Maxim              // Dallas/Maxim 1-Wire.
	NumModels
)

// Params is a CRC8 parameter set.
type Params = engine.Params[uint8]

var models = [NumModels]Params{
	CRC8:  {Poly: 0x07, Init: 0x00, XorOut: 0x00},
	ITU:   {Poly: 0x07, Init: 0x00, XorOut: 0x55},
	ROHC:  {Poly: 0x07, Init: 0xff, XorOut: 0x00, RefIn: true, RefOut: true},
	Maxim: {Poly: 0x31, Init: 0x00, XorOut: 0x00, RefIn: true, RefOut: true},
}

var names = [NumModels]string{
	CRC8:  "CRC8",
	ITU:   "CRC8_ITU",
	ROHC:  "CRC8_ROHC",
	Maxim: "CRC8_MAXIM",
}

// Valid reports whether m is in the catalog.
func (m Model) Valid() bool { return m >= 0 && m < NumModels }

func (m Model) String() string {
	if !m.Valid() {
		return "CRC8_NONE"
	}
	return names[m]
}

// ParamsOf returns the shared, read only parameters of m.
func ParamsOf(m Model) (*Params, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(engine.ErrInvalidModel, "crc8 model %d", int(m))
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
	return NumModels, errors.Wrapf(engine.ErrInvalidModel, "unknown crc8 model %q", s)
}

// Models returns every model in catalog order.
func Models() []Model {
	m := make([]Model, NumModels)
	for i := range m {
		m[i] = Model(i)
	}
	return m
}
