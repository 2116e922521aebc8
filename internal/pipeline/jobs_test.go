package pipeline

import (
	"testing"
	"time"

	"github.com/docsense/docsense/internal/docmodel"
)

func TestContentHashHex_Consistency(t *testing.T) {
	data := []byte("hello world")
	h1 := ContentHashHex(data)
	h2 := ContentHashHex(data)
	if h1 != h2 {
		t.Errorf("expected identical hashes, got %q and %q", h1, h2)
	}
	// SHA-256 of "hello world" is well-known.
	want := "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9"
	if h1 != want {
		t.Errorf("expected hash %q, got %q", want, h1)
	}
}

func TestContentHashHex_DifferentInputs(t *testing.T) {
	if ContentHashHex([]byte("aaa")) == ContentHashHex([]byte("bbb")) {
		t.Error("expected different hashes for different inputs")
	}
}

func TestNewJob(t *testing.T) {
	inputs := []Input{
		{Name: "a.pdf", Data: []byte("x")},
		{Name: "b.md", Data: []byte("y")},
	}
	job := NewJob(inputs, docmodel.Query{Persona: "p", Job: "j"})

	if job.Status != StatusQueued {
		t.Errorf("expected status %q, got %q", StatusQueued, job.Status)
	}
	if len(job.ID) != 20 {
		t.Errorf("expected 20-char job ID, got %q", job.ID)
	}
	if len(job.Documents) != 2 || job.Documents[0] != "a.pdf" || job.Documents[1] != "b.md" {
		t.Errorf("unexpected documents: %v", job.Documents)
	}
}

func TestNewJob_UniqueIDs(t *testing.T) {
	inputs := []Input{{Name: "a.pdf"}}
	j1 := NewJob(inputs, docmodel.Query{})
	time.Sleep(time.Millisecond)
	j2 := NewJob(inputs, docmodel.Query{})
	if j1.ID == j2.ID {
		t.Error("expected distinct IDs for jobs created at different times")
	}
}

func TestJob_StateTransitions(t *testing.T) {
	job := NewJob([]Input{{Name: "a.pdf"}}, docmodel.Query{})

	before := job.UpdatedAt
	// Small sleep to ensure time difference is detectable.
	time.Sleep(time.Millisecond)
	job.SetStatus(StatusExtracting)

	if job.Status != StatusExtracting {
		t.Errorf("expected status %q, got %q", StatusExtracting, job.Status)
	}
	if !job.UpdatedAt.After(before) {
		t.Error("expected UpdatedAt to advance")
	}
}

func TestJob_SetResult(t *testing.T) {
	job := NewJob([]Input{{Name: "a.pdf"}}, docmodel.Query{})
	if job.Result() != nil {
		t.Error("expected nil result before completion")
	}

	job.SetResult(&docmodel.Analysis{})
	if job.Status != StatusCompleted {
		t.Errorf("expected status %q, got %q", StatusCompleted, job.Status)
	}
	if job.Result() == nil {
		t.Error("expected result after completion")
	}
}

func TestJob_Fail(t *testing.T) {
	job := NewJob([]Input{{Name: "a.pdf"}}, docmodel.Query{})
	job.Fail("queue_full")

	if job.Status != StatusFailed {
		t.Errorf("expected status %q, got %q", StatusFailed, job.Status)
	}
	snap := job.Snapshot()
	if snap.Error != "queue_full" {
		t.Errorf("expected error %q, got %q", "queue_full", snap.Error)
	}
}

func TestJob_Snapshot(t *testing.T) {
	job := NewJob([]Input{{Name: "a.pdf"}}, docmodel.Query{})
	snap := job.Snapshot()

	if snap.ID != job.ID || snap.Status != StatusQueued {
		t.Errorf("unexpected snapshot: %+v", snap)
	}
	if snap.Error != "" {
		t.Errorf("expected no error on a fresh job, got %q", snap.Error)
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob([]Input{{Name: "a.pdf"}}, docmodel.Query{})
	store.Put(job)

	got := store.Get(job.ID)
	if got == nil {
		t.Fatal("expected to get job back")
	}
	if got.ID != job.ID {
		t.Errorf("expected ID %q, got %q", job.ID, got.ID)
	}
}

func TestJobStore_GetMissing(t *testing.T) {
	store := NewJobStore(time.Hour)
	if store.Get("nonexistent") != nil {
		t.Error("expected nil for missing job")
	}
}

func TestJobStore_TTLCleanup(t *testing.T) {
	store := NewJobStore(50 * time.Millisecond)

	expired := NewJob([]Input{{Name: "old.pdf"}}, docmodel.Query{})
	store.Put(expired)

	// Wait for the TTL to pass.
	time.Sleep(100 * time.Millisecond)

	fresh := NewJob([]Input{{Name: "new.pdf"}}, docmodel.Query{})
	store.Put(fresh)

	store.Cleanup()

	if store.Get(expired.ID) != nil {
		t.Error("expected expired job to be cleaned up")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("expected fresh job to survive cleanup")
	}
}

func TestJobStore_CleanupEmpty(t *testing.T) {
	store := NewJobStore(time.Hour)
	// Should not panic on empty store.
	store.Cleanup()
}
