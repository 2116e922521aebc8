package docmodel

import "strings"

// Level is a heading depth in a document's structural outline.
type Level string

const (
	H1 Level = "H1"
	H2 Level = "H2"
	H3 Level = "H3"
	H4 Level = "H4"
)

// LevelForDepth maps a 1-based nesting depth to a Level, clamping to H4.
func LevelForDepth(depth int) Level {
	switch {
	case depth <= 1:
		return H1
	case depth == 2:
		return H2
	case depth == 3:
		return H3
	default:
		return H4
	}
}

// Line is one cleaned visual row of text, the unit the heading classifier
// decides on. Style fields describe the row's leading word.
type Line struct {
	Text      string
	FontSize  float64
	FontName  string
	Bold      bool
	Uppercase bool
	WordCount int
	Page      int
}

// OutlineEntry is one accepted heading, in document reading order.
type OutlineEntry struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
	Page  int    `json:"page"`
}

// OutlineDocument is the per-document outline output.
type OutlineDocument struct {
	Title   string         `json:"title"`
	Outline []OutlineEntry `json:"outline"`
}

// Section is the text span governed by one outline heading: from the
// heading's first line up to the line before the next heading.
type Section struct {
	Document string
	Page     int
	Title    string
	Body     string
}

// Extraction is one fully parsed document: its outline plus the
// materialized sections, ready for cross-document ranking.
type Extraction struct {
	Document string
	Title    string
	Outline  []OutlineEntry
	Sections []Section
}

// Query is the persona/task description the sections are scored against.
type Query struct {
	Persona string
	Job     string
}

// String renders the combined query text used for vectorization.
func (q Query) String() string {
	return "Persona: " + q.Persona + ". Job: " + q.Job
}

// Empty reports the "no task defined" condition.
func (q Query) Empty() bool {
	return strings.TrimSpace(q.Persona) == "" && strings.TrimSpace(q.Job) == ""
}

// RankedSection is the externally visible ranked record. The section body
// is dropped after scoring.
type RankedSection struct {
	Document string  `json:"document"`
	Page     int     `json:"page_number"`
	Title    string  `json:"section_title"`
	Score    float64 `json:"importance_rank"`
}

// RefinedSection holds the sentence-level refinement of one top section.
type RefinedSection struct {
	Document    string `json:"document"`
	Page        int    `json:"page_number"`
	RefinedText string `json:"refined_text"`
}

// Metadata describes one collection analysis run.
type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	Job                 string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

// Analysis is the collection-mode output document.
type Analysis struct {
	Metadata           Metadata         `json:"metadata"`
	ExtractedSections  []RankedSection  `json:"extracted_sections"`
	SubSectionAnalysis []RefinedSection `json:"sub_section_analysis"`
}
