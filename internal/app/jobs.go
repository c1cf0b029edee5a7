package app

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/seren4de/a11ylead/internal/logging"
)

type JobEventType string

const (
	JobEventStatus   JobEventType = "status"
	JobEventProgress JobEventType = "progress"
	JobEventResult   JobEventType = "result"
)

type JobStatus string

const (
	JobPending  JobStatus = "pending"
	JobRunning  JobStatus = "running"
	JobDone     JobStatus = "done"
	JobFailed   JobStatus = "failed"
	JobCanceled JobStatus = "canceled"
)

type JobEvent struct {
	JobID string       `json:"job_id"`
	Type  JobEventType `json:"type"`

	// For status changes
	Status JobStatus `json:"status,omitempty"`
	Error  string    `json:"error,omitempty"`

	// For progress (optional fields)
	Processed int `json:"processed,omitempty"`
	Total     int `json:"total,omitempty"`
}

// Job tracks one asynchronous audit run.
type Job struct {
	ID        string        `json:"id"`
	Target    string        `json:"target"`
	MaxPages  int           `json:"max_pages"`
	Status    JobStatus     `json:"status"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	EndedAt   time.Time     `json:"ended_at"`
	Events    chan JobEvent `json:"-"`

	// Result is set once the job is done.
	Result *RunResult `json:"result,omitempty"`
}

type jobTable struct {
	mu      sync.Mutex
	jobs    map[string]*Job
	cancels map[string]context.CancelFunc
}

func newJobTable() *jobTable {
	return &jobTable{
		jobs:    make(map[string]*Job),
		cancels: make(map[string]context.CancelFunc),
	}
}

func (t *jobTable) put(job *Job, cancel context.CancelFunc) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.jobs[job.ID] = job
	t.cancels[job.ID] = cancel
}

func (t *jobTable) get(id string) *Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.jobs[id]
}

func (t *jobTable) list() []*Job {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Job, 0, len(t.jobs))
	for _, j := range t.jobs {
		out = append(out, j)
	}
	return out
}

func (t *jobTable) cancel(id string) {
	t.mu.Lock()
	cancel := t.cancels[id]
	t.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

func (t *jobTable) update(id string, fn func(*Job)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if j, ok := t.jobs[id]; ok {
		fn(j)
	}
}

// emit sends a job event without blocking; events are dropped when the
// buffer is full.
func (t *jobTable) emit(id string, ev JobEvent) {
	j := t.get(id)
	if j == nil || j.Events == nil {
		return
	}
	select {
	case j.Events <- ev:
	default:
	}
}

// StartAuditJob launches an asynchronous audit run and returns its job
// handle immediately. Job events are delivered on the handle's buffered
// Events channel, which is closed when the job finishes.
func (o *Orchestrator) StartAuditJob(ctx context.Context, target string, maxPages int) (*Job, error) {
	jobID := uuid.New().String()

	job := &Job{
		ID:        jobID,
		Target:    target,
		MaxPages:  maxPages,
		Status:    JobPending,
		StartedAt: time.Now().UTC(),
		Events:    make(chan JobEvent, 16),
	}

	jobCtx, cancel := context.WithCancel(ctx)
	o.jobs.put(job, cancel)

	o.jobs.emit(jobID, JobEvent{JobID: jobID, Type: JobEventStatus, Status: JobPending})

	go func() {
		defer func() {
			o.jobs.update(jobID, func(j *Job) {
				j.EndedAt = time.Now().UTC()
				if j.Events != nil {
					close(j.Events)
				}
			})
			cancel()
		}()

		o.jobs.update(jobID, func(j *Job) { j.Status = JobRunning })
		o.jobs.emit(jobID, JobEvent{JobID: jobID, Type: JobEventStatus, Status: JobRunning})

		result, err := o.runAudit(jobCtx, target, maxPages, func(done, total int) {
			o.jobs.emit(jobID, JobEvent{JobID: jobID, Type: JobEventProgress, Processed: done, Total: total})
		})

		if err != nil {
			status := JobFailed
			if jobCtx.Err() != nil {
				status = JobCanceled
			}
			o.jobs.update(jobID, func(j *Job) {
				j.Status = status
				j.Error = err.Error()
			})
			o.jobs.emit(jobID, JobEvent{JobID: jobID, Type: JobEventStatus, Status: status, Error: err.Error()})
			o.logger.Warn("audit job failed",
				logging.Field{Key: "job_id", Value: jobID},
				logging.Field{Key: "error", Value: err.Error()})
			return
		}

		o.jobs.update(jobID, func(j *Job) {
			j.Status = JobDone
			j.Result = result
		})
		o.jobs.emit(jobID, JobEvent{JobID: jobID, Type: JobEventResult, Status: JobDone})
	}()

	return job, nil
}

// CancelJob stops a pending or running job. Note the audit loop itself has
// no mid-page cancellation points beyond its navigation timeouts; a
// canceled job discards its partial data.
func (o *Orchestrator) CancelJob(jobID string) {
	o.jobs.cancel(jobID)
}

// GetJob returns the job with the given id, or nil.
func (o *Orchestrator) GetJob(jobID string) *Job {
	return o.jobs.get(jobID)
}

// ListJobs returns all known jobs in unspecified order.
func (o *Orchestrator) ListJobs() []*Job {
	return o.jobs.list()
}
