// Package tracker runs task lifecycle operations against the task files on
// disk.
//
// A Tracker loads the active task file when it opens and writes it back on
// Save. Archiving is the exception: ArchiveOld rewrites the archive file
// immediately.
package tracker

import (
	"fmt"
	"time"

	"github.com/amonks/triage/internal/jsonfile"
	"github.com/amonks/triage/task"
	"go.uber.org/zap"
)

// Options configures a Tracker.
type Options struct {
	// TasksPath is the active task file.
	TasksPath string

	// ArchivePath is the archive file.
	ArchivePath string

	// ArchiveAfterDays is the ArchiveOld threshold.
	// Defaults to task.DefaultArchiveAfterDays.
	ArchiveAfterDays int

	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// Tracker owns one session over the task files.
type Tracker struct {
	tasksPath   string
	archivePath string
	archiveDays int
	logger      *zap.Logger
	now         func() time.Time
	engine      *task.Engine

	// saveRecords writes a task file. Tests replace it to simulate write
	// failures.
	saveRecords func(path string, records []task.Task) error
}

// Open loads the active task file and prepares a session.
func Open(opts Options) (*Tracker, error) {
	if opts.TasksPath == "" {
		return nil, fmt.Errorf("tasks path is required")
	}
	if opts.ArchivePath == "" {
		return nil, fmt.Errorf("archive path is required")
	}
	if opts.ArchiveAfterDays == 0 {
		opts.ArchiveAfterDays = task.DefaultArchiveAfterDays
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	logger := opts.Logger
	logger.Debug("loading tasks", zap.String("path", opts.TasksPath))

	records, err := jsonfile.Load[task.Task](opts.TasksPath)
	if err != nil {
		return nil, fmt.Errorf("read tasks file: %w", err)
	}
	for i := range records {
		if err := task.ValidateTask(&records[i]); err != nil {
			return nil, fmt.Errorf("tasks file record %d: %w", i, err)
		}
	}

	store := task.NewStore(records)

	// Archived ids left the active file but must never be handed out again.
	archived, err := jsonfile.Load[task.Task](opts.ArchivePath)
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}
	for _, record := range archived {
		store.Reserve(record.ID)
	}

	logger.Debug("tasks loaded",
		zap.Int("tasks", store.Len()),
		zap.Int("archived", len(archived)),
		zap.Int("next_id", store.NextID()),
	)

	return &Tracker{
		tasksPath:   opts.TasksPath,
		archivePath: opts.ArchivePath,
		archiveDays: opts.ArchiveAfterDays,
		logger:      logger,
		now:         opts.Now,
		engine:      task.NewEngine(store, task.EngineOptions{Now: opts.Now}),
		saveRecords: jsonfile.Save[task.Task],
	}, nil
}

// Tasks returns the in-memory task collection in insertion order.
func (t *Tracker) Tasks() []task.Task {
	return t.engine.Store().All()
}

// Task returns the task with the given ID.
func (t *Tracker) Task(id int) (task.Task, error) {
	return t.engine.Store().FindByID(id)
}

// Create adds a new pending task.
func (t *Tracker) Create(title string, opts task.CreateOptions) (task.Task, error) {
	t.logger.Debug("create task", zap.String("title", title), zap.String("priority", string(opts.Priority)), zap.String("origin", string(opts.Origin)))
	created, err := t.engine.Create(title, opts)
	if err != nil {
		return task.Task{}, err
	}
	t.logger.Debug("task created", zap.Int("id", created.ID))
	return created, nil
}

// StartNext starts the most urgent pending task. The boolean is false when
// nothing is pending.
func (t *Tracker) StartNext() (task.Task, bool) {
	t.logger.Debug("select most urgent task")
	started, ok := t.engine.SelectMostUrgent()
	if !ok {
		t.logger.Debug("no pending tasks")
		return task.Task{}, false
	}
	t.logger.Debug("task started", zap.Int("id", started.ID), zap.String("priority", string(started.Priority)))
	return started, true
}

// UpdatePriority changes the priority of a task.
func (t *Tracker) UpdatePriority(id int, priority task.Priority) (task.Task, error) {
	t.logger.Debug("update priority", zap.Int("id", id), zap.String("priority", string(priority)))
	return t.engine.UpdatePriority(id, priority)
}

// Complete marks an in-progress task as done.
func (t *Tracker) Complete(id int) (task.Task, error) {
	t.logger.Debug("complete task", zap.Int("id", id))
	return t.engine.Complete(id)
}

// Delete logically deletes a task.
func (t *Tracker) Delete(id int) (task.Task, error) {
	t.logger.Debug("delete task", zap.Int("id", id))
	return t.engine.Delete(id)
}

// ArchiveOld archives done tasks older than the configured threshold and
// appends them to the archive file right away.
func (t *Tracker) ArchiveOld() ([]task.Task, error) {
	now := t.now()
	t.logger.Debug("archive old tasks", zap.Time("now", now), zap.Int("after_days", t.archiveDays))

	// Read first so a broken archive file leaves the session untouched.
	existing, err := jsonfile.Load[task.Task](t.archivePath)
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}

	// The archive file is written before any status changes, so a failed
	// write leaves every task where it was.
	candidates, err := t.engine.ArchiveCandidates(now, t.archiveDays)
	if err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		t.logger.Debug("nothing to archive")
		return nil, nil
	}

	existing = append(existing, candidates...)
	if err := t.saveRecords(t.archivePath, existing); err != nil {
		return nil, fmt.Errorf("write archive file: %w", err)
	}

	archived, err := t.engine.ArchiveOld(now, t.archiveDays)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("archive written", zap.Int("archived", len(archived)), zap.Int("total", len(existing)))
	return archived, nil
}

// Archived returns the contents of the archive file.
func (t *Tracker) Archived() ([]task.Task, error) {
	t.logger.Debug("loading archive", zap.String("path", t.archivePath))
	archived, err := jsonfile.Load[task.Task](t.archivePath)
	if err != nil {
		return nil, fmt.Errorf("read archive file: %w", err)
	}
	return archived, nil
}

// Save writes the active tasks to the tasks file. Archived tasks are left
// out because they now live in the archive file.
func (t *Tracker) Save() error {
	all := t.engine.Store().All()
	active := make([]task.Task, 0, len(all))
	for _, item := range all {
		if item.Status == task.StatusArchived {
			continue
		}
		active = append(active, item)
	}

	t.logger.Debug("saving tasks", zap.String("path", t.tasksPath), zap.Int("tasks", len(active)))
	if err := t.saveRecords(t.tasksPath, active); err != nil {
		return fmt.Errorf("write tasks file: %w", err)
	}
	return nil
}
