// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"
	"io"
)

// Mode selects how converted page images are delivered.
type Mode string

const (
	// ModeFile writes one PNG per page into the output directory.
	ModeFile Mode = "file"
	// ModeBase64 returns base64-encoded PNG data in memory; nothing is written.
	ModeBase64 Mode = "base64"
	// ModeBoth writes files and returns base64 strings.
	ModeBoth Mode = "both"
)

// ParseMode validates a user-supplied output mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeFile, ModeBase64, ModeBoth:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid output format %q: must be file, base64, or both", s)
}

// NeedsDir reports whether the mode writes files and therefore requires an
// output directory.
func (m Mode) NeedsDir() bool {
	return m == ModeFile || m == ModeBoth
}

// Request describes a single conversion. Input names a file on disk; when
// Reader is non-nil the content is read from it instead and persisted into
// the workspace under Name before type detection.
type Request struct {
	// Input is the path to the PPT, PPTX, or PDF file to convert.
	Input string

	// Reader supplies the input content in memory. Takes precedence over Input.
	Reader io.Reader

	// Name is the declared filename for Reader input (e.g. "deck.pptx").
	// The extension drives type detection.
	Name string

	// OutputDir receives the numbered PNG files. Required for ModeFile and
	// ModeBoth; created if missing.
	OutputDir string

	// Mode selects the delivery of page images (default ModeFile).
	Mode Mode

	// DPI is the rasterization resolution (default 200).
	DPI int

	// ExtractNotes requests per-slide speaker-notes text alongside the images.
	ExtractNotes bool
}

// Result is the outcome of a conversion. It doubles as the JSON schema
// emitted by the CLI's --output-json flag.
type Result struct {
	// Count is the number of page images produced.
	Count int `json:"count" yaml:"count"`

	// Format is the output mode used ("file", "base64", or "both").
	Format string `json:"format" yaml:"format"`

	// Images holds file paths (file/both modes) or base64 strings (base64 mode),
	// in page order.
	Images []string `json:"images" yaml:"images"`

	// ImagesBase64 holds base64 strings in both mode, where Images carries paths.
	ImagesBase64 []string `json:"images_base64,omitempty" yaml:"images_base64,omitempty"`

	// Texts holds one speaker-notes string per slide when notes extraction was
	// requested; empty when extraction degraded.
	Texts []string `json:"texts,omitempty" yaml:"texts,omitempty"`
}
