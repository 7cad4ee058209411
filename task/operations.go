package task

import (
	"fmt"
	"strings"
	"time"
)

// Engine applies lifecycle transitions to the tasks in a Store.
type Engine struct {
	store *Store
	now   func() time.Time
}

// EngineOptions configures an Engine.
type EngineOptions struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewEngine returns an engine operating on store.
func NewEngine(store *Store, opts EngineOptions) *Engine {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Engine{store: store, now: opts.Now}
}

// Store returns the store the engine mutates.
func (e *Engine) Store() *Store {
	return e.store
}

// CreateOptions configures a new task.
type CreateOptions struct {
	// Description provides additional context.
	Description string

	// Priority is the urgency tier. Required.
	Priority Priority

	// Origin is the channel the task arrived through. Required.
	Origin Origin
}

// Create adds a new pending task with the given title.
func (e *Engine) Create(title string, opts CreateOptions) (Task, error) {
	title = strings.TrimSpace(title)
	if err := ValidateTitle(title); err != nil {
		return Task{}, err
	}

	if err := ValidatePriority(opts.Priority); err != nil {
		return Task{}, err
	}
	if err := ValidateOrigin(opts.Origin); err != nil {
		return Task{}, err
	}

	created := Task{
		ID:          e.store.AllocateID(),
		Title:       title,
		Description: opts.Description,
		Priority:    opts.Priority,
		Status:      StatusPending,
		Origin:      opts.Origin,
		CreatedAt:   e.now(),
	}
	e.store.append(created)

	return created.clone(), nil
}

// SelectMostUrgent starts the most urgent pending task.
//
// Tiers are scanned from urgent to low; within a tier the first pending task
// in collection order wins. At most one task is started per call. The boolean
// is false when no task is pending, in which case nothing changes.
func (e *Engine) SelectMostUrgent() (Task, bool) {
	tasks := e.store.tasks
	for _, priority := range Priorities() {
		for i := range tasks {
			if tasks[i].Priority != priority || tasks[i].Status != StatusPending {
				continue
			}
			tasks[i].Status = StatusInProgress
			return tasks[i].clone(), true
		}
	}
	return Task{}, false
}

// UpdatePriority overwrites the priority of a task.
//
// The change is allowed in every status, including done, deleted and
// archived.
func (e *Engine) UpdatePriority(id int, priority Priority) (Task, error) {
	item, err := e.store.find(id)
	if err != nil {
		return Task{}, err
	}
	if err := ValidatePriority(priority); err != nil {
		return Task{}, err
	}

	item.Priority = priority
	return item.clone(), nil
}

// Complete marks an in-progress task as done.
func (e *Engine) Complete(id int) (Task, error) {
	item, err := e.store.find(id)
	if err != nil {
		return Task{}, err
	}

	switch item.Status {
	case StatusInProgress:
	case StatusPending, StatusDone, StatusArchived, StatusDeleted:
		return Task{}, fmt.Errorf("%w (task %d is %s)", ErrNotInProgress, id, item.Status)
	default:
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, item.Status)
	}

	now := e.now()
	item.Status = StatusDone
	item.CompletedAt = &now
	return item.clone(), nil
}

// Delete logically deletes a task. The record stays in the collection.
// Deleting an already deleted task succeeds without changes.
func (e *Engine) Delete(id int) (Task, error) {
	item, err := e.store.find(id)
	if err != nil {
		return Task{}, err
	}

	switch item.Status {
	case StatusPending, StatusInProgress, StatusDone, StatusDeleted:
	case StatusArchived:
		return Task{}, fmt.Errorf("%w (task %d)", ErrArchived, id)
	default:
		return Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, item.Status)
	}

	item.Status = StatusDeleted
	return item.clone(), nil
}

// ArchiveCandidates returns copies, with status archived, of the tasks
// ArchiveOld would archive at now. The collection is not changed.
func (e *Engine) ArchiveCandidates(now time.Time, thresholdDays int) ([]Task, error) {
	indexes, err := e.archivable(now, thresholdDays)
	if err != nil {
		return nil, err
	}

	candidates := make([]Task, 0, len(indexes))
	for _, i := range indexes {
		candidate := e.store.tasks[i].clone()
		candidate.Status = StatusArchived
		candidates = append(candidates, candidate)
	}
	return candidates, nil
}

// ArchiveOld archives every done task completed more than thresholdDays
// before now. Archived tasks keep their place in the collection with status
// archived; copies are returned in collection order for the archive
// resource.
func (e *Engine) ArchiveOld(now time.Time, thresholdDays int) ([]Task, error) {
	indexes, err := e.archivable(now, thresholdDays)
	if err != nil {
		return nil, err
	}

	var archived []Task
	for _, i := range indexes {
		e.store.tasks[i].Status = StatusArchived
		archived = append(archived, e.store.tasks[i].clone())
	}
	return archived, nil
}

// archivable returns the collection indexes of done tasks completed
// strictly more than thresholdDays before now.
func (e *Engine) archivable(now time.Time, thresholdDays int) ([]int, error) {
	if thresholdDays <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidThreshold, thresholdDays)
	}
	threshold := time.Duration(thresholdDays) * 24 * time.Hour

	var indexes []int
	for i, item := range e.store.tasks {
		if item.Status != StatusDone || item.CompletedAt == nil {
			continue
		}
		if now.Sub(*item.CompletedAt) <= threshold {
			continue
		}
		indexes = append(indexes, i)
	}
	return indexes, nil
}
