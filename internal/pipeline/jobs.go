package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/docsense/docsense/internal/docmodel"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks one collection analysis from submission to result.
type Job struct {
	mu sync.Mutex

	ID     string    `json:"job_id"`
	Status JobStatus `json:"status"`

	Documents []string  `json:"documents"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	inputs []Input
	query  docmodel.Query
	result *docmodel.Analysis
	errMsg string
}

// NewJob builds a queued job over the given inputs.
func NewJob(inputs []Input, query docmodel.Query) *Job {
	now := time.Now()
	names := make([]string, len(inputs))
	var sum []byte
	for i, in := range inputs {
		names[i] = in.Name
		sum = append(sum, in.Name...)
	}
	return &Job{
		ID:        ContentHashHex(append(sum, fmt.Sprintf("%d", now.UnixNano())...))[:20],
		Status:    StatusQueued,
		Documents: names,
		CreatedAt: now,
		UpdatedAt: now,
		inputs:    inputs,
		query:     query,
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.UpdatedAt = time.Now()
}

// SetResult records the completed analysis.
func (j *Job) SetResult(result *docmodel.Analysis) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = result
	j.Status = StatusCompleted
	j.UpdatedAt = time.Now()
}

// Fail records a failure message.
func (j *Job) Fail(msg string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errMsg = msg
	j.Status = StatusFailed
	j.UpdatedAt = time.Now()
}

// Result returns the analysis, or nil while the job is still running.
func (j *Job) Result() *docmodel.Analysis {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.result
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID        string    `json:"job_id"`
	Status    JobStatus `json:"status"`
	Documents []string  `json:"documents"`
	Error     string    `json:"error,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	return JobSnapshot{
		ID:        j.ID,
		Status:    j.Status,
		Documents: j.Documents,
		Error:     j.errMsg,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		job.mu.Lock()
		stale := now.Sub(job.UpdatedAt) > s.ttl
		job.mu.Unlock()
		if stale {
			delete(s.jobs, id)
		}
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
