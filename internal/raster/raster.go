// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package raster renders PDF pages to in-memory images via MuPDF (go-fitz).
package raster

import (
	"context"
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"

	"github.com/pdiddy/ppt-to-images/pkg/types"
)

// Page is one rendered PDF page. Numbers are 1-based, sequential, and
// gapless in the slice returned by Rasterize.
type Page struct {
	Number int
	Image  image.Image
}

// Rasterizer renders every page of a PDF at the given resolution. On any
// failure no partial results are returned.
type Rasterizer interface {
	Rasterize(ctx context.Context, pdfPath string, dpi int) ([]Page, error)
}

// Fitz is the production Rasterizer backed by go-fitz.
type Fitz struct{}

// Rasterize opens pdfPath and renders each page at dpi. A zero-page PDF
// yields an empty slice and no error. Rendering failures wrap into a
// *types.ConvertError carrying the underlying diagnostic.
func (Fitz) Rasterize(ctx context.Context, pdfPath string, dpi int) ([]Page, error) {
	doc, err := fitz.New(pdfPath)
	if err != nil {
		return nil, &types.ConvertError{
			Stage: "rasterize",
			Err:   fmt.Errorf("opening %s: %w", pdfPath, err),
		}
	}
	defer doc.Close()

	n := doc.NumPage()
	pages := make([]Page, 0, n)
	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(i, float64(dpi))
		if err != nil {
			return nil, &types.ConvertError{
				Stage: "rasterize",
				Err:   fmt.Errorf("rendering page %d of %s: %w", i+1, pdfPath, err),
			}
		}
		pages = append(pages, Page{Number: i + 1, Image: img})
	}

	return pages, nil
}
