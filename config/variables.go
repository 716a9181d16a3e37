/*
DESCRIPTION
  variables.go contains a list of structs that provide a variable Name, type in
  a string format, a function for updating the variable in the Config struct
  from a string, and finally, a validation function to check the validity of the
  corresponding field value in the Config.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ausocean/utils/logging"

	"github.com/ausocean/crc/catalog"
	"github.com/ausocean/crc/table"
)

// Config map Keys.
const (
	KeyAppend   = "Append"
	KeyLogPath  = "LogPath"
	KeyLogging  = "logging"
	KeyMode     = "Mode"
	KeyModel    = "Model"
	KeyStrategy = "Strategy"
	KeyTableLen = "TableLen"
	KeyWatch    = "Watch"
	KeyWidth    = "Width"
)

// Default variable values.
const (
	defaultWidth     = 32
	defaultStrategy  = StrategyTable
	defaultTableLen  = table.Byte
	defaultMode      = ModeSum
	defaultVerbosity = logging.Error
	defaultLogPath   = "/var/log/crc/crc.log"
)

// Default model per width.
var defaultModels = map[uint]string{
	8:  "CRC8",
	16: "CRC16_CCITT",
	32: "CRC32",
}

// Variable types.
const (
	typeString = "string"
	typeUint   = "uint"
	typeBool   = "bool"
)

// Variables describes the variables that can be used for crc tool control.
// These structs provide the name and type of variable, a function for updating
// this variable in a Config, and a function for validating the value of the
// variable. Model is validated before Width so that Width can follow it.
var Variables = []struct {
	Name     string
	Type     string
	Update   func(*Config, string)
	Validate func(*Config)
}{
	{
		Name:   KeyAppend,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Append = parseBool(KeyAppend, v, c) },
	},
	{
		Name: KeyLogging,
		Type: "enum:Debug,Info,Warning,Error,Fatal",
		Update: func(c *Config, v string) {
			switch v {
			case "Debug":
				c.LogLevel = logging.Debug
			case "Info":
				c.LogLevel = logging.Info
			case "Warning":
				c.LogLevel = logging.Warning
			case "Error":
				c.LogLevel = logging.Error
			case "Fatal":
				c.LogLevel = logging.Fatal
			default:
				c.Logger.Warning("invalid Logging param", "value", v)
			}
		},
		Validate: func(c *Config) {
			switch c.LogLevel {
			case logging.Debug, logging.Info, logging.Warning, logging.Error, logging.Fatal:
			default:
				c.LogInvalidField("LogLevel", defaultVerbosity)
				c.LogLevel = defaultVerbosity
			}
		},
	},
	{
		Name:   KeyLogPath,
		Type:   typeString,
		Update: func(c *Config, v string) { c.LogPath = v },
		Validate: func(c *Config) {
			if c.LogPath == "" {
				c.LogInvalidField(KeyLogPath, defaultLogPath)
				c.LogPath = defaultLogPath
			}
		},
	},
	{
		Name: KeyMode,
		Type: "enum:Sum,Pack,Verify",
		Update: func(c *Config, v string) {
			c.Mode = parseEnum(
				KeyMode,
				v,
				map[string]uint8{
					"sum":    ModeSum,
					"pack":   ModePack,
					"verify": ModeVerify,
				},
				c,
			)
		},
		Validate: func(c *Config) {
			switch c.Mode {
			case ModeSum, ModePack, ModeVerify:
			default:
				c.LogInvalidField(KeyMode, defaultMode)
				c.Mode = defaultMode
			}
		},
	},
	{
		Name:   KeyModel,
		Type:   "enum:" + strings.Join(catalog.Names(), ","),
		Update: func(c *Config, v string) { c.Model = v },
		Validate: func(c *Config) {
			if c.Model != "" {
				m, err := catalog.Lookup(c.Model)
				if err != nil {
					c.Logger.Warning("unknown model", "value", c.Model)
					return
				}
				c.Model = m.String()
				return
			}
			def, ok := defaultModels[c.Width]
			if !ok {
				def = defaultModels[defaultWidth]
			}
			c.LogInvalidField(KeyModel, def)
			c.Model = def
		},
	},
	{
		Name: KeyStrategy,
		Type: "enum:Table,Bitwise",
		Update: func(c *Config, v string) {
			c.Strategy = parseEnum(
				KeyStrategy,
				v,
				map[string]uint8{
					"table":   StrategyTable,
					"bitwise": StrategyBitwise,
				},
				c,
			)
		},
		Validate: func(c *Config) {
			switch c.Strategy {
			case StrategyTable, StrategyBitwise:
			default:
				c.LogInvalidField(KeyStrategy, defaultStrategy)
				c.Strategy = defaultStrategy
			}
		},
	},
	{
		Name:   KeyTableLen,
		Type:   typeUint,
		Update: func(c *Config, v string) { c.TableLen = parseUint(KeyTableLen, v, c) },
		Validate: func(c *Config) {
			switch c.TableLen {
			case table.Nibble, table.Byte:
			default:
				c.LogInvalidField(KeyTableLen, defaultTableLen)
				c.TableLen = defaultTableLen
			}
		},
	},
	{
		Name:   KeyWatch,
		Type:   typeBool,
		Update: func(c *Config, v string) { c.Watch = parseBool(KeyWatch, v, c) },
	},
	{
		Name:   KeyWidth,
		Type:   "enum:8,16,32",
		Update: func(c *Config, v string) { c.Width = parseUint(KeyWidth, v, c) },
		Validate: func(c *Config) {
			m, err := catalog.Lookup(c.Model)
			if err != nil {
				return
			}
			if c.Width != uint(m.Width) {
				c.LogInvalidField(KeyWidth, m.Width)
				c.Width = uint(m.Width)
			}
		},
	},
}

func parseUint(n, v string, c *Config) uint {
	_v, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		c.Logger.Warning(fmt.Sprintf("expected unsigned int for param %s", n), "value", v)
	}
	return uint(_v)
}

func parseBool(n, v string, c *Config) (b bool) {
	switch strings.ToLower(v) {
	case "true":
		b = true
	case "false":
		b = false
	default:
		c.Logger.Warning(fmt.Sprintf("expect bool for param %s", n), "value", v)
	}
	return
}

func parseEnum(n, v string, enums map[string]uint8, c *Config) uint8 {
	_v, ok := enums[strings.ToLower(v)]
	if !ok {
		c.Logger.Warning(fmt.Sprintf("invalid value for %s param", n), "value", v)
		return 0xff
	}
	return _v
}
