// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output serializes rendered pages into files and base64 strings
// and assembles the conversion result.
package output

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pdiddy/ppt-to-images/internal/raster"
	"github.com/pdiddy/ppt-to-images/pkg/types"
)

// Format serializes pages per mode and assembles the Result. File-producing
// modes write outDir/<n>.png with 1-based page numbers, creating outDir if
// needed. When notesRequested the texts are attached verbatim.
func Format(pages []raster.Page, outDir string, mode types.Mode, texts []string, notesRequested bool) (*types.Result, error) {
	res := &types.Result{
		Count:  len(pages),
		Format: string(mode),
	}

	switch mode {
	case types.ModeFile:
		paths, err := writeFiles(pages, outDir)
		if err != nil {
			return nil, err
		}
		res.Images = paths
	case types.ModeBase64:
		strs, err := encodeBase64(pages)
		if err != nil {
			return nil, err
		}
		res.Images = strs
	case types.ModeBoth:
		paths, err := writeFiles(pages, outDir)
		if err != nil {
			return nil, err
		}
		strs, err := encodeBase64(pages)
		if err != nil {
			return nil, err
		}
		res.Images = paths
		res.ImagesBase64 = strs
	default:
		return nil, &types.ArgumentError{Msg: fmt.Sprintf("invalid output format %q", mode)}
	}

	if notesRequested {
		if texts == nil {
			texts = []string{}
		}
		res.Texts = texts
	}

	return res, nil
}

// writeFiles encodes each page as PNG under outDir, named by page number.
func writeFiles(pages []raster.Page, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", outDir, err)
	}

	paths := make([]string, 0, len(pages))
	for _, p := range pages {
		path := filepath.Join(outDir, fmt.Sprintf("%d.png", p.Number))
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("creating %s: %w", path, err)
		}
		if err := png.Encode(f, p.Image); err != nil {
			f.Close()
			return nil, &types.ConvertError{
				Stage: "output",
				Err:   fmt.Errorf("encoding page %d: %w", p.Number, err),
			}
		}
		if err := f.Close(); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// encodeBase64 PNG-encodes each page in memory and base64-encodes the bytes.
func encodeBase64(pages []raster.Page) ([]string, error) {
	strs := make([]string, 0, len(pages))
	var buf bytes.Buffer
	for _, p := range pages {
		buf.Reset()
		if err := png.Encode(&buf, p.Image); err != nil {
			return nil, &types.ConvertError{
				Stage: "output",
				Err:   fmt.Errorf("encoding page %d: %w", p.Number, err),
			}
		}
		strs = append(strs, base64.StdEncoding.EncodeToString(buf.Bytes()))
	}
	return strs, nil
}
