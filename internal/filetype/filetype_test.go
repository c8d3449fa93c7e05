// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filetype

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		path string
		want Type
	}{
		{"deck.ppt", PPT},
		{"deck.pptx", PPTX},
		{"deck.pdf", PDF},
		{"DECK.PPTX", PPTX},
		{"report.PdF", PDF},
		{"/some/dir/slides.ppt", PPT},
		{"deck.xyz", Unknown},
		{"deck.pptx.bak", Unknown},
		{"noextension", Unknown},
		{"", Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := Detect(tt.path); got != tt.want {
				t.Errorf("Detect(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPresentation(t *testing.T) {
	if !PPT.IsPresentation() || !PPTX.IsPresentation() {
		t.Error("ppt and pptx should be presentations")
	}
	if PDF.IsPresentation() || Unknown.IsPresentation() {
		t.Error("pdf and unknown should not be presentations")
	}
}
