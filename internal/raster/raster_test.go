// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/ppt-to-images/pkg/types"
)

// writeMinimalPDF builds a valid PDF with n empty 72x72pt pages, computing
// xref offsets as it goes.
func writeMinimalPDF(t *testing.T, n int) string {
	t.Helper()

	var buf bytes.Buffer
	var offsets []int

	obj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	buf.WriteString("%PDF-1.4\n")

	kids := ""
	for i := 0; i < n; i++ {
		if i > 0 {
			kids += " "
		}
		kids += fmt.Sprintf("%d 0 R", 3+i)
	}

	obj("1 0 obj\n<</Type/Catalog/Pages 2 0 R>>\nendobj\n")
	obj(fmt.Sprintf("2 0 obj\n<</Type/Pages/Kids[%s]/Count %d>>\nendobj\n", kids, n))
	for i := 0; i < n; i++ {
		obj(fmt.Sprintf("%d 0 obj\n<</Type/Page/Parent 2 0 R/MediaBox[0 0 72 72]>>\nendobj\n", 3+i))
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<</Size %d/Root 1 0 R>>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefStart)

	path := filepath.Join(t.TempDir(), "test.pdf")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRasterizePageCountAndOrder(t *testing.T) {
	path := writeMinimalPDF(t, 3)

	pages, err := Fitz{}.Rasterize(context.Background(), path, 72)
	if err != nil {
		t.Fatalf("Rasterize: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("pages = %d, want 3", len(pages))
	}
	for i, p := range pages {
		if p.Number != i+1 {
			t.Errorf("pages[%d].Number = %d, want %d", i, p.Number, i+1)
		}
		if p.Image == nil || p.Image.Bounds().Empty() {
			t.Errorf("page %d has no image data", i+1)
		}
	}
}

func TestRasterizeDPIScalesOutput(t *testing.T) {
	path := writeMinimalPDF(t, 1)

	low, err := Fitz{}.Rasterize(context.Background(), path, 72)
	if err != nil {
		t.Fatalf("Rasterize at 72 dpi: %v", err)
	}
	high, err := Fitz{}.Rasterize(context.Background(), path, 144)
	if err != nil {
		t.Fatalf("Rasterize at 144 dpi: %v", err)
	}

	lw := low[0].Image.Bounds().Dx()
	hw := high[0].Image.Bounds().Dx()
	if hw < lw*2-2 || hw > lw*2+2 {
		t.Errorf("width at 144 dpi = %d, want about twice the %d at 72 dpi", hw, lw)
	}
}

func TestRasterizeCorruptPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corrupt.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Fitz{}.Rasterize(context.Background(), path, 150)
	var convErr *types.ConvertError
	if !errors.As(err, &convErr) {
		t.Fatalf("want *types.ConvertError, got %T: %v", err, err)
	}
}

func TestRasterizeCancelledContext(t *testing.T) {
	path := writeMinimalPDF(t, 2)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fitz{}.Rasterize(ctx, path, 72)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("want context.Canceled, got %v", err)
	}
}
