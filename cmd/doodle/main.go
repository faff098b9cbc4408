// seehuhn.de/go/doodle - a freehand drawing surface
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command doodle replays a recorded drawing session and writes the result
// as an image file.
//
// Usage:
//
//	doodle [flags] script.json
//
// The script is a JSON object as written by testcases/export.  If -load is
// given, the named PNG or JPEG image is installed as the starting bitmap
// and stretched to the script's canvas size.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"seehuhn.de/go/doodle"
	"seehuhn.de/go/doodle/testcases"
)

func main() {
	out := flag.String("o", "Sketch.png", "output file")
	format := flag.String("format", "", "output format: png, jpeg or pdf (default from the output file name)")
	load := flag.String("load", "", "image to use as the starting bitmap")
	quality := flag.Int("quality", doodle.DefaultJPEGQuality, "JPEG quality (0-100)")
	dpi := flag.Float64("dpi", 0, "resolution for PDF output")
	verbose := flag.Bool("v", false, "log progress to stderr")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] script.json\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	doodle.SetLogger(logger)

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := &config{
		script:  flag.Arg(0),
		out:     *out,
		format:  *format,
		load:    *load,
		quality: *quality,
		dpi:     *dpi,
	}
	if err := run(cfg); err != nil {
		logger.Error("doodle failed", "error", err)
		os.Exit(1)
	}
}

type config struct {
	script  string
	out     string
	format  string
	load    string
	quality int
	dpi     float64
}

func run(cfg *config) error {
	sc, err := readScript(cfg.script)
	if err != nil {
		return err
	}

	f, err := outputFormat(cfg.format, cfg.out)
	if err != nil {
		return err
	}

	s := doodle.NewSurface(sc.Options()...)
	defer s.Close()

	if cfg.load != "" {
		if err := loadFile(s, cfg.load); err != nil {
			return err
		}
	}
	if sc.Width > 0 || sc.Height > 0 {
		if err := s.Resize(sc.Width, sc.Height); err != nil {
			return err
		}
	}
	if w, _ := s.Size(); w == 0 {
		return errors.New("script has no canvas size and no image was loaded")
	}

	var segments int
	for _, ev := range sc.Events {
		if !s.HandleEvent(ev).Empty() {
			segments++
		}
	}
	doodle.Logger().Info("replayed script", "events", len(sc.Events), "segments", segments)

	data, err := s.Capture(f,
		doodle.WithQuality(cfg.quality),
		doodle.WithDPI(cfg.dpi),
		doodle.WithTitle(sc.Name))
	if err != nil {
		return err
	}
	return os.WriteFile(cfg.out, data, 0o644)
}

func readScript(name string) (*testcases.Scenario, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	sc := &testcases.Scenario{}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(sc); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return sc, nil
}

func outputFormat(name, out string) (doodle.Format, error) {
	if name != "" {
		return doodle.ParseFormat(name)
	}
	ext := filepath.Ext(out)
	if ext == "" {
		return doodle.FormatPNG, nil
	}
	return doodle.ParseFormat(ext)
}

func loadFile(s *doodle.Surface, name string) error {
	fd, err := os.Open(name)
	if err != nil {
		return err
	}
	defer fd.Close()
	return s.Load(fd)
}
