// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package office implements format normalization (PPT→PPTX, PPTX→PDF) by
// shelling out to LibreOffice in headless mode.
package office

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/ppt-to-images/pkg/types"
)

const (
	// DefaultBin is the LibreOffice binary name looked up on PATH.
	DefaultBin = "soffice"

	// DefaultTimeout bounds one conversion process. A process still running
	// after this is considered hung and treated as failure; no retry.
	DefaultTimeout = 300 * time.Second

	// TargetPPTX and TargetPDF are the --convert-to targets.
	TargetPPTX = "pptx"
	TargetPDF  = "pdf"
)

// Normalizer converts a document to a target format, returning the path of
// the produced file. Implementations wrap one external-process invocation
// per call.
type Normalizer interface {
	Normalize(ctx context.Context, inputPath, target, outDir string) (string, error)
}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}

// Soffice is the production Normalizer. The zero value uses DefaultBin and
// DefaultTimeout.
type Soffice struct {
	// Bin overrides the LibreOffice binary name.
	Bin string

	// Timeout overrides the per-process deadline.
	Timeout time.Duration

	exec executor
}

// New creates a Soffice normalizer. Empty bin or zero timeout select the
// defaults.
func New(bin string, timeout time.Duration) *Soffice {
	return &Soffice{Bin: bin, Timeout: timeout}
}

// Normalize runs `<bin> --headless --convert-to <target> --outdir <outDir>
// <inputPath>` and returns the expected output path
// outDir/<inputStem>.<target>. Every failure mode surfaces as a
// *types.ConvertError: missing binary, non-zero exit (diagnostic output
// attached), timeout, or a zero exit with the expected output absent.
func (s *Soffice) Normalize(ctx context.Context, inputPath, target, outDir string) (string, error) {
	bin := s.Bin
	if bin == "" {
		bin = DefaultBin
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	run := s.exec
	if run == nil {
		run = osExecutor{}
	}

	if _, err := run.LookPath(bin); err != nil {
		return "", &types.ConvertError{
			Stage: "normalize",
			Err:   fmt.Errorf("%s not found on PATH, install LibreOffice: %w", bin, err),
		}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	out, err := run.Run(ctx, bin, "--headless", "--convert-to", target, "--outdir", outDir, inputPath)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", &types.ConvertError{
				Stage:  "normalize",
				Output: string(out),
				Err:    fmt.Errorf("conversion to %s timed out after %s", target, timeout),
			}
		}
		return "", &types.ConvertError{
			Stage:  "normalize",
			Output: string(out),
			Err:    fmt.Errorf("converting %s to %s: %w", inputPath, target, err),
		}
	}

	outPath := filepath.Join(outDir, stem(inputPath)+"."+target)
	if _, err := os.Stat(outPath); err != nil {
		return "", &types.ConvertError{
			Stage:  "normalize",
			Output: string(out),
			Err:    fmt.Errorf("expected output %s missing after conversion", outPath),
		}
	}

	return outPath, nil
}

// stem returns the filename without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
