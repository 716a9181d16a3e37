/*
DESCRIPTION
  crcgen writes the CRC lookup tables of the common polynomials as Go source
  and runs the model self test against known check values.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// crcgen generates CRC lookup tables and self tests the CRC models.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/crc/selftest"
	"github.com/ausocean/crc/table"
	"github.com/ausocean/utils/logging"
)

// Current software version.
const version = "v1.0.0"

// Logging configuration.
const (
	logPath      = "/var/log/crc/crcgen.log"
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

// Misc constants.
const (
	pkg            = "crcgen: "
	defaultPackage = "crctables"
)

// Polynomials whose tables are generated, in MSB first form.
var (
	polys8  = []uint8{0x07, 0x31}
	polys16 = []uint16{0x8005, 0x1021, 0x3d65}
	polys32 = []uint32{0x04c11db7}
)

func main() {
	var (
		showVersion = flag.Bool("version", false, "show version")
		tableLen    = flag.Int("len", table.Nibble, "table length, 16 or 256")
		outPath     = flag.String("o", "", "write tables to this file rather than standard output")
		pkgName     = flag.String("package", defaultPackage, "package clause of the generated source")
		skipTables  = flag.Bool("test-only", false, "only run the self test")
		verbose     = flag.Bool("v", false, "list every self test check")
	)
	flag.Parse()
	if *showVersion {
		fmt.Println(version)
		os.Exit(0)
	}

	// Create lumberjack logger to handle logging to file.
	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	log := logging.New(logVerbosity, logWriter(os.Stderr, fileLog), logSuppress)
	log.Info(pkg+"starting", "version", version)

	if !*skipTables {
		var out io.Writer = os.Stdout
		if *outPath != "" {
			f, err := os.Create(*outPath)
			if err != nil {
				log.Fatal(pkg+"could not create output file", "error", err.Error())
			}
			defer f.Close()
			out = f
		}
		err := writeSource(out, *pkgName, *tableLen)
		if err != nil {
			log.Fatal(pkg+"could not write tables", "error", err.Error())
		}
		log.Info(pkg+"wrote tables", "len", *tableLen, "path", *outPath)
	}

	rep := selftest.Run(log, selftest.Vectors, selftest.Strategies)
	if *verbose || !rep.Passed() {
		rep.WriteTo(os.Stderr)
	}
	if !rep.Passed() {
		log.Error(pkg+"self test failed", "failed", rep.Failed())
		os.Exit(1)
	}
}

// writeSource writes a Go source file declaring the n entry tables of every
// polynomial to w.
func writeSource(w io.Writer, pkgName string, n int) error {
	_, err := fmt.Fprintf(w, "// Code generated by crcgen; DO NOT EDIT.\n\npackage %s\n", pkgName)
	if err != nil {
		return errors.Wrap(err, "could not write header")
	}
	err = writeTables(w, polys8, n)
	if err != nil {
		return err
	}
	err = writeTables(w, polys16, n)
	if err != nil {
		return err
	}
	return writeTables(w, polys32, n)
}

func writeTables[T table.Word](w io.Writer, polys []T, n int) error {
	for _, p := range polys {
		t, err := table.Generate(p, n)
		if err != nil {
			return errors.Wrapf(err, "could not generate table for 0x%X", p)
		}
		_, err = io.WriteString(w, "\n")
		if err != nil {
			return errors.Wrap(err, "could not write table")
		}
		err = table.Fprint(w, table.Name(t), t)
		if err != nil {
			return err
		}
	}
	return nil
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
