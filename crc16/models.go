/*
NAME
  models.go

DESCRIPTION
  models.go provides the catalog of named 16 bit CRC models.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package crc16

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/ausocean/crc/engine"
)

// Model identifies a named CRC16 parameter set.
type Model int

// The CRC16 models. NumModels is not a model; it bounds iteration.
const (
	IBM Model = iota
	Maxim
	USB
	Modbus
	CCITT
	CCITTFalse
	X25
	XModem
	DNP
	NumModels
)

// Params is a CRC16 parameter set.
type Params = engine.Params[uint16]

var models = [NumModels]Params{
	IBM:        {Poly: 0x8005, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true},
	Maxim:      {Poly: 0x8005, Init: 0x0000, XorOut: 0xffff, RefIn: true, RefOut: true},
	USB:        {Poly: 0x8005, Init: 0xffff, XorOut: 0xffff, RefIn: true, RefOut: true},
	Modbus:     {Poly: 0x8005, Init: 0xffff, XorOut: 0x0000, RefIn: true, RefOut: true},
	CCITT:      {Poly: 0x1021, Init: 0x0000, XorOut: 0x0000, RefIn: true, RefOut: true},
	CCITTFalse: {Poly: 0x1021, Init: 0xffff, XorOut: 0x0000},
	X25:        {Poly: 0x1021, Init: 0xffff, XorOut: 0xffff, RefIn: true, RefOut: true},
	XModem:     {Poly: 0x1021, Init: 0x0000, XorOut: 0x0000},
	DNP:        {Poly: 0x3d65, Init: 0x0000, XorOut: 0xffff, RefIn: true, RefOut: true},
}

var names = [NumModels]string{
	IBM:        "CRC16_IBM",
	Maxim:      "CRC16_MAXIM",
	USB:        "CRC16_USB",
	Modbus:     "CRC16_MODBUS",
	CCITT:      "CRC16_CCITT",
	CCITTFalse: "CRC16_CCITT_FALSE",
	X25:        "CRC16_X25",
	XModem:     "CRC16_XMODEM",
	DNP:        "CRC16_DNP",
}

// Valid reports whether m is a model in the catalog.
func (m Model) Valid() bool { return m >= 0 && m < NumModels }

func (m Model) String() string {
	if !m.Valid() {
		return "CRC16_NONE"
	}
	return names[m]
}

// ParamsOf returns the parameters of m. The returned value is shared and
// must not be modified.
func ParamsOf(m Model) (*Params, error) {
	if !m.Valid() {
		return nil, errors.Wrapf(engine.ErrInvalidModel, "crc16 model %d", int(m))
	}
	return &models[m], nil
}

// ModelFromString returns the model with display name s, ignoring case.
func ModelFromString(s string) (Model, error) {
	for m, n := range names {
		if strings.EqualFold(n, s) {
			return Model(m), nil
		}
	}
	return NumModels, errors.Wrapf(engine.ErrInvalidModel, "unknown crc16 model %q", s)
}

// Models returns every model in catalog order.
func Models() []Model {
	m := make([]Model, NumModels)
	for i := range m {
		m[i] = Model(i)
	}
	return m
}
