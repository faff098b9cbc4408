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

// Package doodle implements a freehand drawing surface.
//
// Pointer events are passed to [Surface.HandleEvent].  A single-pointer
// stroke is split into straight segments, which are painted with round caps
// into a persistent RGBA canvas.  The canvas survives size changes by
// stretching, and can be captured as PNG, JPEG or PDF at any time.
//
// Stroke coverage is computed by the [seehuhn.de/go/doodle/raster] package.
package doodle

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf
