package task

import "fmt"

// Store holds the active task collection and hands out identifiers.
// It is owned by a single caller and is not safe for concurrent use.
type Store struct {
	tasks  []Task
	nextID int
}

// NewStore creates a store seeded with previously loaded records.
func NewStore(records []Task) *Store {
	store := &Store{}
	store.Initialize(records)
	return store
}

// Initialize replaces the active collection with records, preserving their
// order, and sets the next identifier to one past the largest ID seen.
func (s *Store) Initialize(records []Task) {
	s.tasks = make([]Task, 0, len(records))
	maxID := 0
	for _, record := range records {
		s.tasks = append(s.tasks, record.clone())
		if record.ID > maxID {
			maxID = record.ID
		}
	}
	s.nextID = maxID + 1
}

// Reserve ensures id is never handed out by AllocateID.
func (s *Store) Reserve(id int) {
	if id >= s.nextID {
		s.nextID = id + 1
	}
}

// AllocateID returns the next identifier and advances the counter.
func (s *Store) AllocateID() int {
	id := s.nextID
	s.nextID++
	return id
}

// NextID returns the identifier the next AllocateID call will return.
func (s *Store) NextID() int {
	return s.nextID
}

// All returns a copy of the active collection in insertion order.
func (s *Store) All() []Task {
	out := make([]Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		out = append(out, t.clone())
	}
	return out
}

// Len returns the number of tasks in the active collection.
func (s *Store) Len() int {
	return len(s.tasks)
}

// FindByID returns a copy of the task with the given ID.
func (s *Store) FindByID(id int) (Task, error) {
	item, err := s.find(id)
	if err != nil {
		return Task{}, err
	}
	return item.clone(), nil
}

// find returns the stored task with the given ID. The pointer aliases the
// collection so the engine can mutate through it.
func (s *Store) find(id int) (*Task, error) {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return &s.tasks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
}

func (s *Store) append(t Task) {
	s.tasks = append(s.tasks, t)
}
