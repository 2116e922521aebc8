package pdftext

import (
	"testing"

	pdflib "github.com/ledongthuc/pdf"
)

func run(s string, x, y, w, size float64) pdflib.Text {
	return pdflib.Text{S: s, X: x, Y: y, W: w, FontSize: size, Font: "Helvetica"}
}

func TestGroupWords_MergesAdjacentRuns(t *testing.T) {
	// "Pro" + "posal" with no gap form one word; "2024" sits apart.
	runs := []pdflib.Text{
		run("Pro", 100, 700, 20, 12),
		run("posal", 120.5, 700, 30, 12),
		run("2024", 200, 700, 25, 12),
	}
	words := groupWords(runs)

	if len(words) != 2 {
		t.Fatalf("expected 2 words, got %d: %v", len(words), words)
	}
	if words[0].Text != "Proposal" {
		t.Errorf("expected merged word %q, got %q", "Proposal", words[0].Text)
	}
	if words[1].Text != "2024" {
		t.Errorf("expected %q, got %q", "2024", words[1].Text)
	}
}

func TestGroupWords_SplitsEmbeddedSpaces(t *testing.T) {
	runs := []pdflib.Text{run("Request for Proposal", 100, 700, 120, 18)}
	words := groupWords(runs)

	if len(words) != 3 {
		t.Fatalf("expected 3 words, got %d: %v", len(words), words)
	}
	for i, want := range []string{"Request", "for", "Proposal"} {
		if words[i].Text != want {
			t.Errorf("word %d: expected %q, got %q", i, want, words[i].Text)
		}
		if words[i].FontSize != 18 {
			t.Errorf("word %d: expected the run's size, got %v", i, words[i].FontSize)
		}
	}
}

func TestGroupWords_SkipsWhitespaceRuns(t *testing.T) {
	runs := []pdflib.Text{
		run(" ", 100, 700, 5, 12),
		run("text", 110, 700, 20, 12),
	}
	words := groupWords(runs)
	if len(words) != 1 || words[0].Text != "text" {
		t.Errorf("expected only %q, got %v", "text", words)
	}
}

func TestGroupWords_TopToBottomOrder(t *testing.T) {
	// PDF Y grows upward, so the Y=700 run reads before the Y=650 run.
	runs := []pdflib.Text{
		run("lower", 100, 650, 30, 12),
		run("upper", 100, 700, 30, 12),
	}
	words := groupWords(runs)
	if len(words) != 2 || words[0].Text != "upper" || words[1].Text != "lower" {
		t.Errorf("expected top-to-bottom order, got %v", words)
	}
}

func TestGroupRows(t *testing.T) {
	words := []Word{
		{Text: "1.", FontSize: 18, FontName: "Helvetica-Bold", X: 100, Y: 700},
		{Text: "Introduction", FontSize: 18, FontName: "Helvetica-Bold", X: 115, Y: 700},
		{Text: "Body", FontSize: 10, FontName: "Helvetica", X: 100, Y: 650},
	}
	rows := groupRows(words)

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d: %v", len(rows), rows)
	}
	if rows[0].Text != "1. Introduction" {
		t.Errorf("expected joined row %q, got %q", "1. Introduction", rows[0].Text)
	}
	if rows[0].FontSize != 18 || rows[0].FontName != "Helvetica-Bold" {
		t.Errorf("expected row style from the leading word, got %+v", rows[0])
	}
	if rows[1].Text != "Body" {
		t.Errorf("expected %q, got %q", "Body", rows[1].Text)
	}
}

func TestGroupRows_XOrderWithinRow(t *testing.T) {
	words := []Word{
		{Text: "right", X: 200, Y: 700},
		{Text: "left", X: 100, Y: 700},
	}
	rows := groupRows(words)
	if len(rows) != 1 || rows[0].Text != "left right" {
		t.Errorf("expected %q, got %v", "left right", rows)
	}
}

func TestReadBytes_RejectsGarbage(t *testing.T) {
	if _, err := ReadBytes([]byte("not a pdf at all")); err == nil {
		t.Error("expected an error for non-PDF bytes")
	}
}

func TestRound2(t *testing.T) {
	if got := round2(11.996); got != 12.0 {
		t.Errorf("expected 12.0, got %v", got)
	}
	if got := round2(11.994); got != 11.99 {
		t.Errorf("expected 11.99, got %v", got)
	}
}
