package parser

import (
	"bufio"
	"io"
	"strings"

	"github.com/docsense/docsense/internal/docmodel"
)

// TextParser handles plain text files. Plain text carries no heading
// signal, so the whole file becomes one section titled after the file.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*docmodel.Extraction, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var parts []string
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			parts = append(parts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	title := stripExt(filename)
	ext := &docmodel.Extraction{
		Document: filename,
		Title:    title,
		Outline:  []docmodel.OutlineEntry{},
		Sections: []docmodel.Section{},
	}
	if len(parts) > 0 {
		ext.Sections = append(ext.Sections, docmodel.Section{
			Document: filename,
			Page:     1,
			Title:    title,
			Body:     strings.Join(parts, " "),
		})
	}
	return ext, nil
}
