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

// Package export writes canvas snapshots to document formats.
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// DefaultDPI is the resolution used to convert pixels to PDF points when
// no other value is given.
const DefaultDPI = 96

// PDFOptions controls [WritePDF].  The zero value is valid.
type PDFOptions struct {
	// DPI is the image resolution.  Each pixel is 72/DPI points wide.
	// Values which are not positive select [DefaultDPI].
	DPI float64

	Title   string
	Creator string

	// Date is stored as the creation and modification date.  If Date is
	// zero, the current time is used.
	Date time.Time
}

// WritePDF writes a single page PDF document to w.  The page has exactly the
// size of img, and img fills the page.  Transparency is preserved.
func WritePDF(w io.Writer, img image.Image, opt *PDFOptions) error {
	if opt == nil {
		opt = &PDFOptions{}
	}
	b := img.Bounds()
	if b.Empty() {
		return errors.New("export: empty image")
	}

	dpi := opt.DPI
	if !(dpi > 0) {
		dpi = DefaultDPI
	}
	pageW := float64(b.Dx()) * 72 / dpi
	pageH := float64(b.Dy()) * 72 / dpi

	pngData := &bytes.Buffer{}
	if err := png.Encode(pngData, img); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	size := gofpdf.SizeType{Wd: pageW, Ht: pageH}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           size,
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCompression(true)
	if opt.Title != "" {
		pdf.SetTitle(opt.Title, true)
	}
	if opt.Creator != "" {
		pdf.SetCreator(opt.Creator, true)
	}
	date := opt.Date
	if date.IsZero() {
		date = time.Now()
	}
	pdf.SetCreationDate(date)
	pdf.SetModificationDate(date)

	pdf.AddPageFormat("P", size)
	imgOpt := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("canvas", imgOpt, pngData)
	pdf.ImageOptions("canvas", 0, 0, pageW, pageH, false, imgOpt, 0, "")

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return pdf.Output(w)
}
