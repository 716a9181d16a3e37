/*
DESCRIPTION
  sum.go provides the per input processing of crcsum and the file watcher
  used in watch mode.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"

	"github.com/ausocean/crc/catalog"
	"github.com/ausocean/crc/config"
	"github.com/ausocean/utils/logging"
)

// Output file permissions used in append mode when the file is recreated.
const fMode = 0644

// summer applies the configured mode to inputs.
type summer struct {
	cfg   *config.Config
	model catalog.Model
	out   io.Writer
	log   logging.Logger
}

// files processes every path and reports whether any failed to verify or
// could not be processed.
func (s *summer) files(paths []string) (failed bool) {
	for _, p := range paths {
		ok, err := s.file(p)
		if err != nil {
			s.log.Error(pkg+"could not process file", "path", p, "error", err.Error())
			failed = true
			continue
		}
		if !ok {
			failed = true
		}
	}
	return failed
}

// file reads and processes the file at path.
func (s *summer) file(path string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrap(err, "could not read file")
	}
	return s.process(path, data)
}

// process applies the configured mode to data read from name. The result is
// false only for a failed verification.
func (s *summer) process(name string, data []byte) (bool, error) {
	opts := s.cfg.Options()
	switch s.cfg.Mode {
	case config.ModeSum:
		crc, err := s.model.Calculate(data, opts...)
		if err != nil {
			return false, err
		}
		_, err = fmt.Fprintf(s.out, "%0*x  %s\n", s.model.Size()*2, crc, name)
		return true, errors.Wrap(err, "could not write sum")

	case config.ModePack:
		buf := append(data, make([]byte, s.model.Size())...)
		err := s.model.PackBuf(buf, opts...)
		if err != nil {
			return false, err
		}
		if s.cfg.Append && name != "-" {
			s.log.Debug(pkg+"appending checksum", "path", name, "model", s.model.String())
			return true, errors.Wrap(os.WriteFile(name, buf, fMode), "could not write file")
		}
		_, err = s.out.Write(buf)
		return true, errors.Wrap(err, "could not write packed data")

	case config.ModeVerify:
		ok, err := s.model.VerifyBuf(data, opts...)
		if err != nil {
			return false, err
		}
		res := "OK"
		if !ok {
			res = "FAILED"
			s.log.Warning(pkg+"checksum mismatch", "path", name, "model", s.model.String())
		}
		_, err = fmt.Fprintf(s.out, "%s: %s\n", name, res)
		return ok, errors.Wrap(err, "could not write result")

	default:
		return false, errors.Errorf("unknown mode %d", s.cfg.Mode)
	}
}

// watch calls handle with the path of any of paths that is written or
// created until ctx is done. Directories holding the paths are watched so
// that files replaced by rename are followed.
func watch(ctx context.Context, log logging.Logger, paths []string, handle func(path string) error) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "could not create watcher")
	}
	defer w.Close()

	want := make(map[string]bool)
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return errors.Wrapf(err, "could not resolve %s", p)
		}
		want[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		err = w.Add(d)
		if err != nil {
			return errors.Wrapf(err, "could not watch %s", d)
		}
	}
	log.Info(pkg+"watching", "files", len(want), "dirs", len(dirs))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !want[ev.Name] || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			log.Debug(pkg+"file changed", "path", ev.Name, "op", ev.Op.String())
			err := handle(ev.Name)
			if err != nil {
				log.Warning(pkg+"could not handle change", "path", ev.Name, "error", err.Error())
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error(pkg+"watcher error", "error", err.Error())
		}
	}
}
