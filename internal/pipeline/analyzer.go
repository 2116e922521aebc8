// Package pipeline drives the two document operations: per-document
// outline extraction and persona-driven collection analysis. Extraction
// may run per document in parallel, but ranking needs every document's
// sections, so results are assembled in stable input order behind an
// explicit barrier before scoring begins.
package pipeline

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/docsense/docsense/internal/config"
	"github.com/docsense/docsense/internal/docmodel"
	"github.com/docsense/docsense/internal/nlp"
	"github.com/docsense/docsense/internal/parser"
	"github.com/docsense/docsense/internal/rank"
)

// ErrorTitle is reported for documents that cannot be read; a failed
// document never aborts a batch.
const ErrorTitle = "Error Processing Document"

// Input is one named document to process.
type Input struct {
	Name string
	Data []byte
}

// Analyzer holds the collaborators for both pipeline modes.
type Analyzer struct {
	cfg  config.Config
	log  *slog.Logger
	lang *nlp.Engine
}

// NewAnalyzer wires the pipeline. lang may be nil for outline-only use;
// AnalyzeCollection requires it.
func NewAnalyzer(cfg config.Config, lang *nlp.Engine, log *slog.Logger) *Analyzer {
	return &Analyzer{cfg: cfg, log: log, lang: lang}
}

// Outline extracts the structural outline of a single document. Failures
// degrade to the error document rather than propagating.
func (a *Analyzer) Outline(in Input) docmodel.OutlineDocument {
	ext := a.extract(in)
	if ext == nil {
		return docmodel.OutlineDocument{Title: ErrorTitle, Outline: []docmodel.OutlineEntry{}}
	}
	return docmodel.OutlineDocument{Title: ext.Title, Outline: ext.Outline}
}

// AnalyzeCollection runs the full persona pipeline over a set of
// documents: parallel structural extraction, joint relevance ranking and
// sentence-level refinement of the top sections.
func (a *Analyzer) AnalyzeCollection(ctx context.Context, inputs []Input, query docmodel.Query) docmodel.Analysis {
	names := make([]string, len(inputs))
	for i, in := range inputs {
		names[i] = in.Name
	}
	meta := docmodel.Metadata{
		InputDocuments:      names,
		Persona:             query.Persona,
		Job:                 query.Job,
		ProcessingTimestamp: time.Now().Format(time.RFC3339),
	}

	extractions := a.extractAll(ctx, inputs)

	var sections []docmodel.Section
	for _, ext := range extractions {
		if ext == nil {
			continue // failed document contributes zero sections
		}
		sections = append(sections, ext.Sections...)
	}

	result := docmodel.Analysis{
		Metadata:           meta,
		ExtractedSections:  []docmodel.RankedSection{},
		SubSectionAnalysis: []docmodel.RefinedSection{},
	}
	if len(sections) == 0 {
		return result
	}

	ranker := rank.Ranker{MaxVocabulary: a.cfg.MaxVocabulary}
	scored := ranker.Rank(sections, query)
	result.ExtractedSections = rank.Ranked(scored)

	refiner := rank.Refiner{
		Lang:      a.lang,
		Top:       a.cfg.TopSections,
		Threshold: a.cfg.JaccardThreshold,
		MaxChars:  a.cfg.RefineMaxChars,
	}
	result.SubSectionAnalysis = refiner.Refine(scored, query)

	return result
}

// extractAll fans document extraction out over a bounded worker pool and
// returns results indexed by input position. The wait is the ranking
// barrier: scoring cannot start until every document has finished.
func (a *Analyzer) extractAll(ctx context.Context, inputs []Input) []*docmodel.Extraction {
	workers := a.cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}

	results := make([]*docmodel.Extraction, len(inputs))
	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup

	for i, in := range inputs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		go func(i int, in Input) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = a.extract(in)
		}(i, in)
	}
	wg.Wait()

	return results
}

// extract parses one document; any failure is logged and reported as nil.
func (a *Analyzer) extract(in Input) *docmodel.Extraction {
	opts := parser.Options{
		FontPolicy:      a.cfg.FontPolicy,
		CollapseRepeats: a.cfg.CollapseRepeats,
	}
	p, err := parser.ForFile(in.Name, opts)
	if err != nil {
		a.log.Warn("unsupported document", "document", in.Name, "error", err)
		return nil
	}
	ext, err := p.Parse(bytes.NewReader(in.Data), in.Name)
	if err != nil {
		a.log.Warn("document extraction failed", "document", in.Name, "error", err)
		return nil
	}
	a.log.Info("document extracted",
		"document", in.Name,
		"headings", len(ext.Outline),
		"sections", len(ext.Sections),
	)
	return ext
}
