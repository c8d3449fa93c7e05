// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filetype classifies input files by extension.
package filetype

import (
	"path/filepath"
	"strings"
)

// Type is the detected input file type.
type Type string

const (
	PPT     Type = "ppt"
	PPTX    Type = "pptx"
	PDF     Type = "pdf"
	Unknown Type = "unknown"
)

// Detect classifies path by its extension, case-insensitively. It performs
// no I/O; only the filename matters.
func Detect(path string) Type {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ppt":
		return PPT
	case ".pptx":
		return PPTX
	case ".pdf":
		return PDF
	default:
		return Unknown
	}
}

// IsPresentation reports whether t is a slide format with extractable notes.
func (t Type) IsPresentation() bool {
	return t == PPT || t == PPTX
}
