// Package nlp wraps the linguistics toolchain behind one injected handle:
// sentence segmentation via prose and content-word lemmas via golem's
// English dictionary, with stop words stripped first. The engine is built
// once at startup and is read-only afterwards, so it is safe to share
// across workers.
package nlp

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/bbalet/stopwords"
	prose "github.com/jdkato/prose/v2"
)

// Engine is the linguistics collaborator handed to the pipeline.
type Engine struct {
	lem *golem.Lemmatizer
}

// NewEngine loads the English lemma dictionary. Initialization failure is
// surfaced here, at construction, never later in the pipeline.
func NewEngine() (*Engine, error) {
	lem, err := golem.New(en.New())
	if err != nil {
		return nil, fmt.Errorf("load lemmatizer: %w", err)
	}
	return &Engine{lem: lem}, nil
}

// Sentences splits text into sentences. Unparseable or empty input yields
// no sentences rather than an error.
func (e *Engine) Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithTagging(false),
	)
	if err != nil {
		return nil
	}
	sents := doc.Sentences()
	out := make([]string, 0, len(sents))
	for _, s := range sents {
		t := strings.TrimSpace(s.Text)
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Lemmas returns the content-word lemmas of text: stop words, punctuation
// and non-alphabetic tokens are dropped, the rest reduced to their
// dictionary base form. Out-of-dictionary words pass through unchanged.
func (e *Engine) Lemmas(text string) []string {
	cleaned := stopwords.CleanString(text, "en", false)
	fields := strings.Fields(cleaned)
	out := make([]string, 0, len(fields))
	for _, tok := range fields {
		if !isAlphabetic(tok) {
			continue
		}
		out = append(out, e.lem.Lemma(tok))
	}
	return out
}

func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
