// Package jobs holds the process-wide in-memory lecture job registry.
// Entries are never evicted; callers poll by id for as long as the process
// lives.
package jobs

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"lectureiq/internal/domain"
)

// ErrNotFound is returned when a job id has no registry entry.
var ErrNotFound = errors.New("job not found")

// SubmitRequest describes one lecture to process. ID is optional; the
// registry generates one when it is empty.
type SubmitRequest struct {
	ID         string
	Title      string
	VideoPath  string
	SlidesPath string
	WorkDir    string
}

// Registry tracks every submitted job. A single lock guards the map; each
// entry is only ever mutated by its own pipeline run, so no finer discipline
// is needed.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*domain.Job
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		jobs: make(map[string]*domain.Job),
	}
}

// Submit registers a new job in queued state and returns a snapshot of it.
func (r *Registry) Submit(req SubmitRequest) domain.Job {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	job := &domain.Job{
		ID:         id,
		Title:      req.Title,
		Status:     domain.StatusQueued,
		StartedAt:  time.Now(),
		VideoPath:  req.VideoPath,
		SlidesPath: req.SlidesPath,
		WorkDir:    req.WorkDir,
	}

	r.mu.Lock()
	r.jobs[id] = job
	r.mu.Unlock()

	return *job
}

// Get returns a snapshot of the job with the given id.
func (r *Registry) Get(id string) (domain.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, ok := r.jobs[id]
	if !ok {
		return domain.Job{}, ErrNotFound
	}
	return *job, nil
}

// Update applies fn to the stored job under the registry lock.
func (r *Registry) Update(id string, fn func(*domain.Job)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job, ok := r.jobs[id]
	if !ok {
		return ErrNotFound
	}
	fn(job)
	return nil
}

// Len reports the number of registered jobs.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}
