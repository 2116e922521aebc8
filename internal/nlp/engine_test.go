package nlp

import (
	"testing"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine()
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	return e
}

func TestEngine_Sentences(t *testing.T) {
	e := testEngine(t)
	got := e.Sentences("The first sentence is short. The second sentence follows it.")
	if len(got) != 2 {
		t.Fatalf("expected 2 sentences, got %d: %v", len(got), got)
	}
	if got[0] != "The first sentence is short." {
		t.Errorf("unexpected first sentence: %q", got[0])
	}
}

func TestEngine_SentencesEmptyInput(t *testing.T) {
	e := testEngine(t)
	if got := e.Sentences("   "); len(got) != 0 {
		t.Errorf("expected no sentences, got %v", got)
	}
}

func TestEngine_Lemmas(t *testing.T) {
	e := testEngine(t)
	got := e.Lemmas("The hikers crossed two rivers.")

	set := make(map[string]bool)
	for _, l := range got {
		set[l] = true
	}
	if !set["river"] {
		t.Errorf("expected plural reduced to %q, got %v", "river", got)
	}
	if set["the"] {
		t.Errorf("expected stop words dropped, got %v", got)
	}
}

func TestEngine_LemmasDropNonAlphabetic(t *testing.T) {
	e := testEngine(t)
	got := e.Lemmas("version 2.1 ships 2024-06-01")
	for _, l := range got {
		for _, r := range l {
			if r >= '0' && r <= '9' {
				t.Errorf("expected no numeric tokens, got %v", got)
			}
		}
	}
}
