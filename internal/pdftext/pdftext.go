// Package pdftext reads positioned text out of PDF files. It groups the
// raw text runs exposed by the pdf library into words and visual rows so
// the outline heuristics can reason about font size, style and position.
package pdftext

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Word is a positioned word with the style of its first text run.
type Word struct {
	Text     string
	FontSize float64
	FontName string
	X        float64
	Y        float64
}

// Row is one visual line of a page: the words sharing a rounded Y
// coordinate, joined left to right.
type Row struct {
	Text     string
	FontSize float64
	FontName string
	Y        float64
}

// Page holds one page's words and rows in reading order (top to bottom).
type Page struct {
	Number int
	Words  []Word
	Rows   []Row
}

// Document is a fully read PDF.
type Document struct {
	Path  string
	Pages []Page
}

// Read opens and reads a PDF file.
func Read(path string) (*Document, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := readPages(reader)
	doc.Path = path
	return doc, nil
}

// ReadBytes reads a PDF from an in-memory buffer.
func ReadBytes(data []byte) (*Document, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("read pdf: %w", err)
	}
	return readPages(reader), nil
}

func readPages(reader *pdflib.Reader) *Document {
	doc := &Document{}
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		runs := pageContent(page)
		p := Page{Number: i}
		p.Words = groupWords(runs)
		p.Rows = groupRows(p.Words)
		doc.Pages = append(doc.Pages, p)
	}
	return doc
}

// pageContent isolates Content(), which panics on some malformed pages.
func pageContent(page pdflib.Page) (runs []pdflib.Text) {
	defer func() {
		if r := recover(); r != nil {
			runs = nil
		}
	}()
	return page.Content().Text
}

// groupWords merges adjacent text runs into words. Runs land in the same
// word while the horizontal gap between them stays below wordGap points.
func groupWords(runs []pdflib.Text) []Word {
	const wordGap = 1.0

	byRow := make(map[int][]pdflib.Text)
	for _, r := range runs {
		if strings.TrimSpace(r.S) == "" {
			continue
		}
		key := int(math.Round(r.Y))
		byRow[key] = append(byRow[key], r)
	}

	keys := make([]int, 0, len(byRow))
	for k := range byRow {
		keys = append(keys, k)
	}
	// PDF origin is bottom-left: larger Y means closer to the page top.
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	var words []Word
	for _, k := range keys {
		row := byRow[k]
		sort.Slice(row, func(i, j int) bool { return row[i].X < row[j].X })

		var cur *Word
		var curEnd float64
		for _, r := range row {
			if cur != nil && r.X-curEnd <= wordGap {
				cur.Text += r.S
				curEnd = r.X + r.W
				continue
			}
			words = append(words, Word{
				Text:     r.S,
				FontSize: round2(r.FontSize),
				FontName: r.Font,
				X:        r.X,
				Y:        r.Y,
			})
			cur = &words[len(words)-1]
			curEnd = r.X + r.W
		}
	}

	// A run may itself contain embedded spaces; split those into words
	// sharing the run's style and position.
	var out []Word
	for _, w := range words {
		fields := strings.Fields(w.Text)
		if len(fields) <= 1 {
			if strings.TrimSpace(w.Text) != "" {
				w.Text = strings.TrimSpace(w.Text)
				out = append(out, w)
			}
			continue
		}
		for _, f := range fields {
			sw := w
			sw.Text = f
			out = append(out, sw)
		}
	}
	return out
}

// groupRows buckets words by rounded Y and joins each bucket with spaces.
// Row style comes from the first (leftmost) word.
func groupRows(words []Word) []Row {
	byRow := make(map[int][]Word)
	for _, w := range words {
		key := int(math.Round(w.Y))
		byRow[key] = append(byRow[key], w)
	}

	keys := make([]int, 0, len(byRow))
	for k := range byRow {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(keys)))

	rows := make([]Row, 0, len(keys))
	for _, k := range keys {
		ws := byRow[k]
		sort.Slice(ws, func(i, j int) bool { return ws[i].X < ws[j].X })
		parts := make([]string, len(ws))
		for i, w := range ws {
			parts[i] = w.Text
		}
		rows = append(rows, Row{
			Text:     strings.Join(parts, " "),
			FontSize: ws[0].FontSize,
			FontName: ws[0].FontName,
			Y:        float64(k),
		})
	}
	return rows
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
