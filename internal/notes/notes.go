// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes extracts per-slide speaker notes from a PPTX container.
// Only speaker notes are read; slide body text is out of scope (downstream
// OCR handles the rendered images).
package notes

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"path"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html/charset"
)

var slidePattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// Extract returns one string per slide in document order: the slide's
// speaker-notes text, or "" when the slide has no notes. Per-slide parse
// failures degrade to "" rather than aborting; only a failure to open the
// archive itself is returned as an error.
func Extract(pptxPath string) ([]string, error) {
	zr, err := zip.OpenReader(pptxPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s as PPTX archive: %w", pptxPath, err)
	}
	defer zr.Close()

	parts := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		parts[f.Name] = f
	}

	nums := slideNumbers(parts)
	texts := make([]string, 0, len(nums))
	for _, n := range nums {
		notesPart := notesPartForSlide(parts, n)
		if notesPart == nil {
			texts = append(texts, "")
			continue
		}
		text, err := notesText(notesPart)
		if err != nil {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, text)
	}

	return texts, nil
}

// slideNumbers returns the slide indices present in the archive, sorted.
func slideNumbers(parts map[string]*zip.File) []int {
	var nums []int
	for name := range parts {
		m := slidePattern.FindStringSubmatch(name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		nums = append(nums, n)
	}
	sort.Ints(nums)
	return nums
}

// relationships models a slide's .rels part.
type relationships struct {
	Rels []relationship `xml:"Relationship"`
}

type relationship struct {
	Type   string `xml:"Type,attr"`
	Target string `xml:"Target,attr"`
}

// notesPartForSlide resolves slide n's notes part through its relationships
// part, falling back to the conventional notesSlide<n>.xml name when the
// rels part is absent or unreadable.
func notesPartForSlide(parts map[string]*zip.File, n int) *zip.File {
	relsName := fmt.Sprintf("ppt/slides/_rels/slide%d.xml.rels", n)
	if f, ok := parts[relsName]; ok {
		if data, err := readPart(f); err == nil {
			var rels relationships
			if xml.Unmarshal(data, &rels) == nil {
				for _, r := range rels.Rels {
					if !strings.HasSuffix(r.Type, "/notesSlide") {
						continue
					}
					// Targets are relative to ppt/slides/, e.g.
					// "../notesSlides/notesSlide3.xml".
					resolved := path.Join("ppt/slides", r.Target)
					if nf, ok := parts[resolved]; ok {
						return nf
					}
				}
				// Rels parsed but no notes relationship.
				return nil
			}
		}
	}

	return parts[fmt.Sprintf("ppt/notesSlides/notesSlide%d.xml", n)]
}

// notesSlide models the subset of a notesSlide part needed for text
// extraction. Unqualified names match the drawing and presentation
// namespaces by local name.
type notesSlide struct {
	Shapes []shape `xml:"cSld>spTree>sp"`
}

type shape struct {
	Placeholder *placeholder `xml:"nvSpPr>nvPr>ph"`
	Paragraphs  []paragraph  `xml:"txBody>p"`
}

type placeholder struct {
	Type string `xml:"type,attr"`
}

type paragraph struct {
	Runs []string `xml:"r>t"`
}

// notesText extracts the text of the notes body placeholder. Other
// placeholders on the notes page (slide image, slide number, headers) are
// skipped, matching what presentation tools show as speaker notes.
func notesText(f *zip.File) (string, error) {
	rc, err := f.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	dec := xml.NewDecoder(strings.NewReader(string(data)))
	dec.CharsetReader = charset.NewReaderLabel

	var ns notesSlide
	if err := dec.Decode(&ns); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, sp := range ns.Shapes {
		if sp.Placeholder == nil || sp.Placeholder.Type != "body" {
			continue
		}
		for i, p := range sp.Paragraphs {
			if i > 0 {
				b.WriteString("\n")
			}
			for _, r := range p.Runs {
				b.WriteString(r)
			}
		}
	}

	return strings.TrimRight(b.String(), "\n"), nil
}

// readPart reads a zip entry fully.
func readPart(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}
