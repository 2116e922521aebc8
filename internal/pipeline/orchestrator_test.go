package pipeline

import (
	"context"
	"testing"
	"time"

	"github.com/docsense/docsense/internal/docmodel"
)

func TestOrchestrator_ProcessesJob(t *testing.T) {
	a := testAnalyzer(t)
	cfg := testConfig()
	cfg.MaxQueueSize = 10
	cfg.JobTTL = time.Hour

	o := NewOrchestrator(cfg, a, a.log)
	o.Start(context.Background())
	defer o.Stop()

	job := NewJob(
		[]Input{{Name: "guide.md", Data: []byte(travelGuide)}},
		docmodel.Query{Persona: "travel planner", Job: "plan packing"},
	)
	if err := o.Submit(job); err != nil {
		t.Fatalf("submit: %v", err)
	}

	deadline := time.After(30 * time.Second)
	for {
		snap := o.GetJob(job.ID).Snapshot()
		if snap.Status == StatusCompleted {
			break
		}
		if snap.Status == StatusFailed {
			t.Fatalf("job failed: %s", snap.Error)
		}
		select {
		case <-deadline:
			t.Fatal("timed out waiting for job completion")
		case <-time.After(10 * time.Millisecond):
		}
	}

	result := job.Result()
	if result == nil {
		t.Fatal("expected a result on the completed job")
	}
	if len(result.ExtractedSections) == 0 {
		t.Error("expected ranked sections in the result")
	}
}

func TestOrchestrator_QueueFull(t *testing.T) {
	a := testAnalyzer(t)
	cfg := testConfig()
	cfg.MaxQueueSize = 1

	// Workers never started, so the single queue slot fills immediately.
	o := NewOrchestrator(cfg, a, a.log)

	first := NewJob([]Input{{Name: "a.md"}}, docmodel.Query{Persona: "p"})
	if err := o.Submit(first); err != nil {
		t.Fatalf("first submit: %v", err)
	}

	second := NewJob([]Input{{Name: "b.md"}}, docmodel.Query{Persona: "p"})
	if err := o.Submit(second); err == nil {
		t.Fatal("expected queue-full error")
	}
	if second.Snapshot().Status != StatusFailed {
		t.Errorf("expected failed status, got %q", second.Snapshot().Status)
	}
	// The failed job stays queryable for status polling.
	if o.GetJob(second.ID) == nil {
		t.Error("expected the failed job to remain in the store")
	}
}

func TestOrchestrator_QueueDepth(t *testing.T) {
	a := testAnalyzer(t)
	cfg := testConfig()
	cfg.MaxQueueSize = 5

	o := NewOrchestrator(cfg, a, a.log)
	if o.QueueDepth() != 0 {
		t.Errorf("expected empty queue, got %d", o.QueueDepth())
	}
	o.Submit(NewJob([]Input{{Name: "a.md"}}, docmodel.Query{Persona: "p"}))
	if o.QueueDepth() != 1 {
		t.Errorf("expected depth 1, got %d", o.QueueDepth())
	}
}
