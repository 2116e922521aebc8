// Package parser turns raw document bytes into an Extraction: the
// document's title, outline and materialized sections. PDFs go through
// the font heuristics; the other formats carry explicit structure and
// map their native heading levels straight onto the outline.
package parser

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/outline"
)

// Parser converts raw document bytes into an Extraction.
type Parser interface {
	Parse(r io.Reader, filename string) (*docmodel.Extraction, error)
}

// Options carries the extraction knobs parsers need.
type Options struct {
	FontPolicy      outline.Policy
	CollapseRepeats bool
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".md":       true,
	".markdown": true,
	".docx":     true,
	".html":     true,
	".htm":      true,
	".txt":      true,
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return &PDFParser{Options: opts}, nil
	case ".md", ".markdown":
		return &MarkdownParser{}, nil
	case ".docx":
		return &DOCXParser{}, nil
	case ".html", ".htm":
		return &HTMLParser{}, nil
	case ".txt":
		return &TextParser{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", filepath.Ext(filename))
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// stripExt removes a filename's extension for title fallbacks.
func stripExt(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
