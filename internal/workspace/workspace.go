// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package workspace manages the scoped directory holding intermediate
// conversion artifacts (saved uploads, normalized PPTX and PDF files).
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options configures workspace creation and teardown.
type Options struct {
	// Dir is a caller-supplied directory, reused or created instead of a
	// fresh randomized one. Caller-supplied directories survive Close unless
	// RemoveCustom is set.
	Dir string

	// Keep preserves a fresh workspace on Close, for debugging.
	Keep bool

	// RemoveCustom extends removal on Close to a caller-supplied Dir.
	RemoveCustom bool
}

// Workspace is a directory owned by a single conversion. All intermediate
// files live under it; Close releases it.
type Workspace struct {
	dir    string
	custom bool
	opts   Options
}

// New creates the workspace directory. With an empty Options.Dir a fresh
// randomized directory is created under the system temp dir.
func New(opts Options) (*Workspace, error) {
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating workspace %s: %w", opts.Dir, err)
		}
		return &Workspace{dir: opts.Dir, custom: true, opts: opts}, nil
	}

	dir, err := os.MkdirTemp("", "ppt-to-images-*")
	if err != nil {
		return nil, fmt.Errorf("creating workspace: %w", err)
	}
	return &Workspace{dir: dir, opts: opts}, nil
}

// Path returns the workspace directory.
func (w *Workspace) Path() string { return w.dir }

// SaveFile writes data to name under the workspace and returns the full path.
func (w *Workspace) SaveFile(name string, data []byte) (string, error) {
	path := filepath.Join(w.dir, filepath.Base(name))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("saving %s to workspace: %w", name, err)
	}
	return path, nil
}

// Close removes the workspace directory. Removal is best-effort; failures
// are ignored. Fresh directories are removed unless Keep is set. Custom
// directories are removed only when RemoveCustom is set.
func (w *Workspace) Close() {
	if w.custom {
		if !w.opts.RemoveCustom {
			return
		}
	} else if w.opts.Keep {
		return
	}
	os.RemoveAll(w.dir)
}
