package task

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestEngine(t *testing.T, records ...Task) (*Engine, *fakeClock) {
	t.Helper()

	clock := &fakeClock{now: testNow}
	return NewEngine(NewStore(records), EngineOptions{Now: clock.Now}), clock
}

func mustCreate(t *testing.T, engine *Engine, title string, priority Priority) Task {
	t.Helper()

	created, err := engine.Create(title, CreateOptions{Priority: priority, Origin: OriginEmail})
	if err != nil {
		t.Fatalf("failed to create %q: %v", title, err)
	}
	return created
}

func statusOf(t *testing.T, engine *Engine, id int) Status {
	t.Helper()

	item, err := engine.Store().FindByID(id)
	if err != nil {
		t.Fatalf("find %d: %v", id, err)
	}
	return item.Status
}
