// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package converter sequences the conversion pipeline: detect the input
// type, normalize to PDF through LibreOffice, rasterize pages, optionally
// extract speaker notes, and assemble the result.
package converter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pdiddy/ppt-to-images/internal/filetype"
	"github.com/pdiddy/ppt-to-images/internal/notes"
	"github.com/pdiddy/ppt-to-images/internal/office"
	"github.com/pdiddy/ppt-to-images/internal/output"
	"github.com/pdiddy/ppt-to-images/internal/raster"
	"github.com/pdiddy/ppt-to-images/internal/workspace"
	"github.com/pdiddy/ppt-to-images/pkg/types"
)

// DefaultDPI is the rasterization resolution used when the request does not
// set one.
const DefaultDPI = 200

// Converter runs conversions. The zero value is not usable; construct with
// New and adjust fields before the first Convert call.
type Converter struct {
	// Normalizer performs PPT→PPTX and PPTX→PDF conversions.
	Normalizer office.Normalizer

	// Rasterizer renders PDF pages.
	Rasterizer raster.Rasterizer

	// DPI is the default resolution for requests that leave DPI unset.
	DPI int

	// TempDir is a caller-supplied workspace directory. Empty means a fresh
	// randomized directory per conversion.
	TempDir string

	// KeepTemp preserves the workspace after conversion, for debugging.
	KeepTemp bool

	// Log receives per-stage progress lines; nil discards them.
	Log io.Writer
}

// New creates a Converter with the production normalizer and rasterizer.
func New() *Converter {
	return &Converter{
		Normalizer: office.New("", 0),
		Rasterizer: raster.Fitz{},
		DPI:        DefaultDPI,
	}
}

// Convert runs one conversion end to end. The workspace is released
// unconditionally when Convert returns, success or failure.
func (c *Converter) Convert(ctx context.Context, req types.Request) (*types.Result, error) {
	log := c.Log
	if log == nil {
		log = io.Discard
	}

	mode := req.Mode
	if mode == "" {
		mode = types.ModeFile
	}

	// Pre-flight validation, before any I/O or external process.
	if mode.NeedsDir() && req.OutputDir == "" {
		return nil, &types.ArgumentError{Msg: fmt.Sprintf("output directory is required for format %q", mode)}
	}
	dpi := req.DPI
	if dpi == 0 {
		dpi = c.DPI
	}
	if dpi == 0 {
		dpi = DefaultDPI
	}
	if dpi < 0 {
		return nil, &types.ArgumentError{Msg: fmt.Sprintf("dpi must be positive, got %d", dpi)}
	}

	name := req.Input
	if req.Reader != nil {
		if req.Name == "" {
			return nil, &types.ArgumentError{Msg: "in-memory input requires a declared name"}
		}
		name = req.Name
	} else if req.Input == "" {
		return nil, &types.ArgumentError{Msg: "input path or reader is required"}
	} else if _, err := os.Stat(req.Input); err != nil {
		return nil, &types.NotFoundError{Path: req.Input}
	}

	// Type detection needs only the declared name, so an unsupported input
	// is rejected before any workspace exists or process runs.
	ft := filetype.Detect(name)
	if ft == filetype.Unknown {
		return nil, &types.ConvertError{
			Stage: "detect",
			Err:   fmt.Errorf("%w: %s", types.ErrUnsupportedType, filepath.Ext(name)),
		}
	}
	if req.ExtractNotes && ft == filetype.PDF {
		return nil, &types.ConvertError{
			Stage: "notes",
			Err:   errors.New("cannot extract notes from a PDF input"),
		}
	}

	ws, err := workspace.New(workspace.Options{Dir: c.TempDir, Keep: c.KeepTemp})
	if err != nil {
		return nil, err
	}
	defer ws.Close()

	input := req.Input
	if req.Reader != nil {
		data, err := io.ReadAll(req.Reader)
		if err != nil {
			return nil, fmt.Errorf("reading input stream: %w", err)
		}
		input, err = ws.SaveFile(req.Name, data)
		if err != nil {
			return nil, err
		}
	}
	fmt.Fprintf(log, "input %s detected as %s\n", input, ft)

	pdfPath, pptxPath, err := c.toPDF(ctx, input, ft, ws.Path(), log)
	if err != nil {
		return nil, err
	}

	pages, err := c.Rasterizer.Rasterize(ctx, pdfPath, dpi)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(log, "rasterized %d page(s) at %d dpi\n", len(pages), dpi)

	var texts []string
	if req.ExtractNotes {
		texts, err = notes.Extract(pptxPath)
		if err != nil {
			// Notes are best-effort enrichment; the images are the deliverable.
			fmt.Fprintf(os.Stderr, "warning: notes extraction failed: %v\n", err)
			texts = []string{}
		}
	}

	return output.Format(pages, req.OutputDir, mode, texts, req.ExtractNotes)
}

// toPDF normalizes the input down to a PDF: two steps for PPT, one for
// PPTX, none for PDF. It also returns the PPTX path backing notes
// extraction (the input itself, or the intermediate produced from PPT).
func (c *Converter) toPDF(ctx context.Context, input string, ft filetype.Type, workDir string, log io.Writer) (pdfPath, pptxPath string, err error) {
	switch ft {
	case filetype.PDF:
		return input, "", nil
	case filetype.PPT:
		fmt.Fprintf(log, "normalizing %s to pptx\n", input)
		pptxPath, err = c.Normalizer.Normalize(ctx, input, office.TargetPPTX, workDir)
		if err != nil {
			return "", "", err
		}
	case filetype.PPTX:
		pptxPath = input
	}

	fmt.Fprintf(log, "normalizing %s to pdf\n", pptxPath)
	pdfPath, err = c.Normalizer.Normalize(ctx, pptxPath, office.TargetPDF, workDir)
	if err != nil {
		return "", "", err
	}
	return pdfPath, pptxPath, nil
}
