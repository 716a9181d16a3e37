/*
NAME
  config.go

DESCRIPTION
  config.go contains the configuration settings for the crc tools.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for the crc tools.
package config

import (
	"github.com/ausocean/utils/logging"

	"github.com/ausocean/crc/catalog"
	"github.com/ausocean/crc/engine"
)

// Engine strategies.
const (
	StrategyTable uint8 = iota
	StrategyBitwise
)

// Modes of operation.
const (
	// ModeSum prints the checksum of each input.
	ModeSum uint8 = iota

	// ModePack writes each input with its checksum appended.
	ModePack

	// ModeVerify checks that the trailing bytes of each input hold the
	// checksum of the bytes before them.
	ModeVerify
)

// Config provides parameters used by the crc tools.
type Config struct {
	// Logger holds an implementation of the Logger interface as defined in
	// github.com/ausocean/utils/logging. This must be set for the config to
	// log invalid fields.
	Logger logging.Logger

	// Width is the checksum width in bits, 8, 16 or 32. If Model is unset
	// the default model of this width is used. Width ends up matching a
	// known model after validation.
	Width uint

	// Model is the display name of the CRC model, e.g. CRC16_MODBUS. An
	// unknown name is kept by Validate so that CRCModel fails.
	Model string

	// Strategy selects the engine, StrategyTable or StrategyBitwise.
	Strategy uint8

	// TableLen is the lookup table length used by StrategyTable, 16 or 256.
	TableLen uint

	// Mode is the mode of operation; see ModeSum, ModePack and ModeVerify.
	Mode uint8

	// Append makes ModePack write the packed output to the input file rather
	// than to standard output.
	Append bool

	// Watch makes ModeVerify re-verify inputs whenever they change.
	Watch bool

	LogLevel int8   // LogLevel is the logging verbosity.
	LogPath  string // LogPath is the path of the rotated log file.
}

// Validate checks for any errors in the config fields and defaults settings
// if particular parameters have not been defined.
func (c *Config) Validate() error {
	for _, v := range Variables {
		if v.Validate != nil {
			v.Validate(c)
		}
	}
	return nil
}

// Update takes a map of configuration variable names and their corresponding
// values, parses the string values and converting into correct type, and then
// sets the config struct fields as appropriate.
func (c *Config) Update(vars map[string]string) {
	for _, value := range Variables {
		if v, ok := vars[value.Name]; ok && value.Update != nil {
			value.Update(c, v)
		}
	}
}

func (c *Config) LogInvalidField(name string, def interface{}) {
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}

// CRCModel returns the catalog model named by c.Model.
func (c *Config) CRCModel() (catalog.Model, error) {
	return catalog.Lookup(c.Model)
}

// Options returns the engine options selected by c.Strategy and c.TableLen.
func (c *Config) Options() []engine.Option {
	if c.Strategy == StrategyBitwise {
		return []engine.Option{engine.Bitwise()}
	}
	return []engine.Option{engine.TableLen(int(c.TableLen))}
}
