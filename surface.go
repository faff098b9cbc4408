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
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"sync"

	"seehuhn.de/go/geom/rect"
)

// Surface is a freehand drawing surface.  Pointer events are turned into
// strokes, which are painted into a persistent canvas.  The canvas can be
// captured as an encoded image at any time.
//
// A Surface has no canvas until the first call to [Surface.Resize] or
// [Surface.LoadBitmap].  Until then, events are ignored and captures are
// empty.
//
// All methods are safe for concurrent use.
type Surface struct {
	mu      sync.Mutex
	canvas  *Canvas
	style   Style
	tracker Tracker

	density    float64
	invalidate func(image.Rectangle)
}

// NewSurface returns a surface without a canvas.
func NewSurface(opts ...Option) *Surface {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Surface{
		style:      NewStyle(o.ink, o.strokeSize),
		density:    o.density,
		invalidate: o.invalidate,
	}
}

func (s *Surface) notify(r image.Rectangle) {
	if s.invalidate != nil && !r.Empty() {
		s.invalidate(r)
	}
}

// Resize sets the canvas size.  The first call allocates a transparent
// canvas, later calls stretch the existing content to the new size.
// Resizing to the current size does nothing.  A stroke in progress is
// abandoned.
func (s *Surface) Resize(w, h int) error {
	s.mu.Lock()
	if s.canvas != nil && s.canvas.Width() == w && s.canvas.Height() == h {
		s.mu.Unlock()
		return nil
	}
	c, err := s.canvas.Resize(w, h)
	if err != nil {
		s.mu.Unlock()
		return err
	}
	c.Density = s.density
	s.canvas = c
	s.tracker.Reset()
	s.mu.Unlock()

	Logger().Debug("resize", "width", w, "height", h)
	s.notify(c.Bounds())
	return nil
}

// Size returns the canvas size, or 0, 0 if there is no canvas.
func (s *Surface) Size() (w, h int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.canvas == nil {
		return 0, 0
	}
	return s.canvas.Width(), s.canvas.Height()
}

// HandleEvent processes one pointer event.  If the event extends the
// current stroke, the new segment is painted and the modified region of
// the canvas is returned.  Otherwise the result is empty.
func (s *Surface) HandleEvent(ev Event) image.Rectangle {
	s.mu.Lock()
	if s.canvas == nil {
		s.mu.Unlock()
		return image.Rectangle{}
	}
	bounds := rect.Rect{URx: float64(s.canvas.Width()), URy: float64(s.canvas.Height())}
	seg, ok := s.tracker.Handle(ev, bounds)
	var dirty image.Rectangle
	if ok {
		dirty = s.canvas.DrawLine(seg, s.style)
	}
	s.mu.Unlock()

	s.notify(dirty)
	return dirty
}

// Clear erases the canvas, including any loaded image.
func (s *Surface) Clear() {
	s.mu.Lock()
	if s.canvas == nil {
		s.mu.Unlock()
		return
	}
	s.canvas.Clear()
	r := s.canvas.Bounds()
	s.mu.Unlock()

	s.notify(r)
}

// Style returns the current paint style.
func (s *Surface) Style() Style {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.style
}

// SetStyle sets the ink color and stroke width.  The change affects only
// segments drawn afterwards.
func (s *Surface) SetStyle(c color.Color, width float64) {
	s.mu.Lock()
	s.style = NewStyle(c, width)
	s.mu.Unlock()
}

// SetInkColor changes the ink color of subsequent segments.
func (s *Surface) SetInkColor(c color.Color) {
	s.mu.Lock()
	s.style = s.style.WithColor(c)
	s.mu.Unlock()
}

// SetStrokeSize changes the stroke width of subsequent segments.
func (s *Surface) SetStrokeSize(w float64) {
	s.mu.Lock()
	s.style = s.style.WithWidth(w)
	s.mu.Unlock()
}

// Capture encodes the current canvas content.  If there is no canvas, the
// result is an empty slice and no error.
//
// The pixels are copied while holding the lock, encoding happens after the
// lock is released.
func (s *Surface) Capture(f Format, opts ...CaptureOption) ([]byte, error) {
	s.mu.Lock()
	if s.canvas == nil {
		s.mu.Unlock()
		return []byte{}, nil
	}
	snap := s.canvas.Snapshot()
	s.mu.Unlock()

	buf := &bytes.Buffer{}
	if err := Encode(buf, snap, f, opts...); err != nil {
		return nil, err
	}
	Logger().Debug("capture", "format", f, "bytes", buf.Len())
	return buf.Bytes(), nil
}

// CapturePNG encodes the canvas as PNG, keeping transparency.
func (s *Surface) CapturePNG() ([]byte, error) {
	return s.Capture(FormatPNG)
}

// CaptureJPEG encodes the canvas as JPEG, composited onto bg.  If bg is nil,
// white is used.
func (s *Surface) CaptureJPEG(quality int, bg color.Color) ([]byte, error) {
	return s.Capture(FormatJPEG, WithQuality(quality), WithBackground(bg))
}

// LoadBitmap replaces the canvas content by img, stretching it to the
// canvas size.  If there is no canvas yet, one of the image size is
// allocated.  A stroke in progress is abandoned.
func (s *Surface) LoadBitmap(img image.Image) error {
	if img == nil {
		return fmt.Errorf("nil image: %w", ErrInvalidDimension)
	}
	b := img.Bounds()
	if b.Empty() {
		return fmt.Errorf("image %dx%d: %w", b.Dx(), b.Dy(), ErrInvalidDimension)
	}

	s.mu.Lock()
	if s.canvas == nil {
		c, err := NewCanvas(b.Dx(), b.Dy())
		if err != nil {
			s.mu.Unlock()
			return err
		}
		c.Density = s.density
		s.canvas = c
	}
	s.canvas.Load(img)
	s.tracker.Reset()
	r := s.canvas.Bounds()
	s.mu.Unlock()

	Logger().Debug("load", "width", b.Dx(), "height", b.Dy())
	s.notify(r)
	return nil
}

// Load decodes a PNG or JPEG image from r and installs it using
// [Surface.LoadBitmap].  If decoding fails, the canvas is not changed.
func (s *Surface) Load(r io.Reader) error {
	img, _, err := Decode(r)
	if err != nil {
		return err
	}
	return s.LoadBitmap(img)
}

// Close releases the canvas.  Afterwards the surface behaves as if it had
// never been sized.
func (s *Surface) Close() error {
	s.mu.Lock()
	s.canvas = nil
	s.tracker.Reset()
	s.mu.Unlock()
	return nil
}
