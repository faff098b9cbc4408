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

package doodle

import (
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/draw"

	"seehuhn.de/go/doodle/export"
)

// Format identifies an encoded image format.
type Format int

// These are the supported formats.  PDF output is write-only.
const (
	FormatPNG Format = iota
	FormatJPEG
	FormatPDF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatPDF:
		return "pdf"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Ext returns the usual file name extension for the format, including the
// leading dot.
func (f Format) Ext() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatPDF:
		return ".pdf"
	default:
		return ".png"
	}
}

// ParseFormat converts a format name like "png" or "jpg" to a Format.
// Case is ignored.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return 0, fmt.Errorf("unknown image format %q", name)
}

// DefaultJPEGQuality is used when no quality is given.
const DefaultJPEGQuality = 90

// CodecError records a failed image encoding or decoding.
type CodecError struct {
	Op string // "encode" or "decode"

	// Format is the target format of a failed encoding.  It is not set for
	// decoding errors.
	Format Format

	Err error
}

func (e *CodecError) Error() string {
	if e.Op == "decode" {
		return "doodle: decode: " + e.Err.Error()
	}
	return "doodle: " + e.Op + " " + e.Format.String() + ": " + e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// CaptureOption configures the encoding of a snapshot.
type CaptureOption func(*captureOptions)

type captureOptions struct {
	quality    int
	background color.Color
	dpi        float64
	title      string
}

func defaultCaptureOptions() captureOptions {
	return captureOptions{
		quality:    DefaultJPEGQuality,
		background: color.White,
	}
}

// WithQuality sets the JPEG quality, from 0 to 100.  Values outside the
// range image/jpeg accepts are clamped to 1..100.  PNG and PDF output
// ignore the quality.
func WithQuality(q int) CaptureOption {
	return func(o *captureOptions) {
		o.quality = q
	}
}

// WithBackground sets the color which JPEG output is composited onto.
// The alpha channel of the background is ignored.  The default is white.
func WithBackground(c color.Color) CaptureOption {
	return func(o *captureOptions) {
		if c != nil {
			o.background = c
		}
	}
}

// WithDPI sets the resolution used for PDF output.
func WithDPI(dpi float64) CaptureOption {
	return func(o *captureOptions) {
		o.dpi = dpi
	}
}

// WithTitle sets the document title of PDF output.
func WithTitle(title string) CaptureOption {
	return func(o *captureOptions) {
		o.title = title
	}
}

// Encode writes img to w in the given format.  Errors are reported as
// [*CodecError].
func Encode(w io.Writer, img *image.NRGBA, f Format, opts ...CaptureOption) error {
	o := defaultCaptureOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		q := min(max(o.quality, 1), 100)
		err = jpeg.Encode(w, flatten(img, o.background), &jpeg.Options{Quality: q})
	case FormatPDF:
		err = export.WritePDF(w, img, &export.PDFOptions{
			DPI:     o.dpi,
			Title:   o.title,
			Creator: "seehuhn.de/go/doodle",
		})
	default:
		err = fmt.Errorf("unsupported format")
	}
	if err != nil {
		err = &CodecError{Op: "encode", Format: f, Err: err}
		Logger().Warn("encode failed", "format", f, "error", err)
		return err
	}
	return nil
}

// flatten composites img onto an opaque background.
func flatten(img *image.NRGBA, bg color.Color) *image.RGBA {
	r, g, b, a := bg.RGBA()
	opaque := color.RGBA64{R: uint16(r), G: uint16(g), B: uint16(b), A: 0xffff}
	if a != 0 && a != 0xffff {
		// undo the premultiplication before dropping alpha
		opaque.R = uint16(r * 0xffff / a)
		opaque.G = uint16(g * 0xffff / a)
		opaque.B = uint16(b * 0xffff / a)
	}

	res := image.NewRGBA(img.Rect)
	draw.Draw(res, res.Rect, image.NewUniform(opaque), image.Point{}, draw.Src)
	draw.Draw(res, res.Rect, img, img.Rect.Min, draw.Over)
	return res
}

// Decode reads a PNG or JPEG image.  Errors are reported as
// [*CodecError].
func Decode(r io.Reader) (image.Image, Format, error) {
	img, name, err := image.Decode(r)
	if err != nil {
		return nil, 0, decodeError(err)
	}
	f, err := ParseFormat(name)
	if err != nil || f == FormatPDF {
		return nil, 0, decodeError(fmt.Errorf("unsupported format %q", name))
	}
	return img, f, nil
}

func decodeError(err error) error {
	err = &CodecError{Op: "decode", Err: err}
	Logger().Warn("decode failed", "error", err)
	return err
}
