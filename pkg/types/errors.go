// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "errors"

// ErrUnsupportedType marks inputs whose extension is not .ppt, .pptx, or .pdf.
// Wrapped errors carry the offending extension.
var ErrUnsupportedType = errors.New("unsupported file type")

// ArgumentError reports an invalid request shape, detected before any file
// I/O or external process is touched.
type ArgumentError struct {
	Msg string
}

func (e *ArgumentError) Error() string { return e.Msg }

// NotFoundError reports a missing input file.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string { return "input file not found: " + e.Path }

// ConvertError reports a pipeline failure: an external-tool error, a missing
// tool binary, a timeout, a missing expected output, or a rasterization
// failure. Output carries the external tool's diagnostic text when present.
type ConvertError struct {
	// Stage names the pipeline stage that failed: "detect", "normalize",
	// "rasterize", "notes", or "output".
	Stage string

	// Output is the captured stdout/stderr of the external tool, if any.
	Output string

	// Err is the underlying cause.
	Err error
}

func (e *ConvertError) Error() string {
	msg := e.Stage + ": " + e.Err.Error()
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *ConvertError) Unwrap() error { return e.Err }
