/*
DESCRIPTION
  crcsum computes, appends or verifies the CRC of files or standard input
  using any model of the crc catalog.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// crcsum computes, packs and verifies CRCs of files.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/crc/catalog"
	"github.com/ausocean/crc/config"
	"github.com/ausocean/utils/logging"
)

// Current software version.
const version = "v1.0.0"

// Logging configuration.
const (
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Warning
	logSuppress  = true
)

const pkg = "crcsum: "

// flagKeys maps command line flags to config keys.
var flagKeys = map[string]string{
	"model":     config.KeyModel,
	"width":     config.KeyWidth,
	"strategy":  config.KeyStrategy,
	"len":       config.KeyTableLen,
	"mode":      config.KeyMode,
	"append":    config.KeyAppend,
	"watch":     config.KeyWatch,
	"log-level": config.KeyLogging,
	"log-path":  config.KeyLogPath,
}

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		listModels  = flag.Bool("list", false, "list the supported models")
		configPtr   = flag.String("config", "", "Provide configuration JSON (keys as in the config package).")
	)
	flag.String("model", "", "CRC model, e.g. CRC16_MODBUS (see -list)")
	flag.String("width", "", "checksum width 8, 16 or 32; selects that width's default model if -model is unset")
	flag.String("strategy", "", "engine, table or bitwise")
	flag.String("len", "", "lookup table length, 16 or 256")
	flag.String("mode", "", "sum, pack or verify")
	flag.Bool("append", false, "in pack mode, append the checksum to the named files in place")
	flag.Bool("watch", false, "re-run whenever a named file changes")
	flag.String("log-level", "", "Debug, Info, Warning, Error or Fatal")
	flag.String("log-path", "", "path of the log file")
	flag.Parse()

	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}
	if *listModels {
		fmt.Println(strings.Join(catalog.Names(), "\n"))
		os.Exit(0)
	}

	// Config is validated with a standard error logger; the configured
	// logger replaces it once the log settings are known.
	cfg := config.Config{Logger: logging.New(logVerbosity, os.Stderr, logSuppress)}
	vars, err := configVars(*configPtr, flag.CommandLine)
	if err != nil {
		cfg.Logger.Fatal(pkg+"could not decode JSON config", "error", err.Error())
	}
	cfg.LogLevel = logVerbosity
	cfg.Update(vars)
	cfg.Validate()

	fileLog := &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(cfg.LogLevel, logWriter(os.Stderr, fileLog), logSuppress)
	cfg.Logger = log
	log.Info(pkg+"starting", "version", version, "model", cfg.Model, "mode", cfg.Mode)

	m, err := cfg.CRCModel()
	if err != nil {
		log.Fatal(pkg+"could not get model", "error", err.Error())
	}
	s := &summer{cfg: &cfg, model: m, out: os.Stdout, log: log}

	paths := flag.Args()
	err = checkArgs(&cfg, paths)
	if err != nil {
		log.Fatal(pkg+"bad arguments", "error", err.Error())
	}
	if len(paths) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(pkg+"could not read standard input", "error", err.Error())
		}
		ok, err := s.process("-", data)
		if err != nil {
			log.Fatal(pkg+"could not process standard input", "error", err.Error())
		}
		if !ok {
			os.Exit(1)
		}
		return
	}

	failed := s.files(paths)
	if !cfg.Watch {
		if failed {
			os.Exit(1)
		}
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	err = watch(ctx, log, paths, func(path string) error {
		_, err := s.file(path)
		return err
	})
	if err != nil {
		log.Fatal(pkg+"could not watch files", "error", err.Error())
	}
}

// checkArgs rejects combinations of settings and paths that cannot run. It
// is called before any input is processed.
func checkArgs(c *config.Config, paths []string) error {
	switch {
	case len(paths) == 0 && (c.Watch || c.Append):
		return errors.New("watch and append need named files")
	case c.Watch && c.Mode == config.ModePack && c.Append:
		return errors.New("cannot watch files that are appended to")
	}
	return nil
}

// configVars returns the config map given by the JSON string js, overridden
// by any flag of fs explicitly set on the command line.
func configVars(js string, fs *flag.FlagSet) (map[string]string, error) {
	vars := make(map[string]string)
	if js != "" {
		err := json.Unmarshal([]byte(js), &vars)
		if err != nil {
			return nil, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		if k, ok := flagKeys[f.Name]; ok {
			vars[k] = f.Value.String()
		}
	})
	return vars, nil
}

// logWriter returns the log destination: stderr always, plus file for as
// long as it can be written.
func logWriter(stderr, file io.Writer) io.Writer {
	return io.MultiWriter(stderr, bestEffort{file})
}

// bestEffort discards the write errors of w.
type bestEffort struct{ w io.Writer }

func (b bestEffort) Write(p []byte) (int, error) {
	b.w.Write(p)
	return len(p), nil
}
