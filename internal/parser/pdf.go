package parser

import (
	"fmt"
	"io"

	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/outline"
	"github.com/docsense/docsense/internal/pdftext"
	"github.com/docsense/docsense/internal/section"
)

// PDFParser runs the heuristic pipeline: positioned text extraction, font
// statistics, title and heading classification, then section segmentation
// against the resulting outline.
type PDFParser struct {
	Options Options
}

func (p *PDFParser) Parse(r io.Reader, filename string) (*docmodel.Extraction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}

	doc, err := pdftext.ReadBytes(data)
	if err != nil {
		return nil, err
	}

	builder := outline.Builder{
		Policy:          p.Options.FontPolicy,
		CollapseRepeats: p.Options.CollapseRepeats,
	}
	od := builder.Build(doc)

	seg := section.Segmenter{CollapseRepeats: p.Options.CollapseRepeats}
	sections := seg.Extract(doc, filename, od.Outline)

	return &docmodel.Extraction{
		Document: filename,
		Title:    od.Title,
		Outline:  od.Outline,
		Sections: sections,
	}, nil
}
