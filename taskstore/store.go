// Package taskstore is the client-side cache of tasks.
//
// The collection is only ever changed with values read back from the
// service. Loading the full list goes through a small state machine:
//
//	idle -> loading -> succeeded
//	                -> failed
//
// Creates, updates and deletes do not touch the load status.
package taskstore

import (
	"context"
	"sync"

	"TaskBoardService/models"
)

// LoadStatus is the state of the full-list load.
type LoadStatus string

const (
	Idle      LoadStatus = "idle"
	Loading   LoadStatus = "loading"
	Succeeded LoadStatus = "succeeded"
	Failed    LoadStatus = "failed"
)

// DefaultFetchError is recorded when a failed fetch carries no message.
const DefaultFetchError = "Failed to fetch tasks"

// API is the part of the sync protocol the store drives. *client.Client
// implements it.
type API interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	CreateAndReload(ctx context.Context, fields map[string]any) (models.TaskView, error)
	UpdateAndReload(ctx context.Context, id int64, patch map[string]any) (models.TaskView, error)
	DeleteTask(ctx context.Context, id int64) (int64, error)
}

// Snapshot is a copy of the store state handed to subscribers.
type Snapshot struct {
	Items  []models.TaskView
	Status LoadStatus
	Err    string
}

// Store holds the cached tasks. It is safe for concurrent use.
type Store struct {
	api API

	mu     sync.Mutex
	items  []models.TaskView
	status LoadStatus
	err    string
	subs   map[int]func(Snapshot)
	nextID int
}

// New returns an idle, empty store backed by api.
func New(api API) *Store {
	return &Store{
		api:    api,
		items:  []models.TaskView{},
		status: Idle,
		subs:   map[int]func(Snapshot){},
	}
}

// EnsureLoaded fetches the full list if, and only if, the store is still
// idle. It reports whether a fetch was started by this call. Calls made
// while a load is running, or after one finished, do nothing.
func (s *Store) EnsureLoaded(ctx context.Context) (bool, error) {
	s.mu.Lock()
	if s.status != Idle {
		s.mu.Unlock()
		return false, nil
	}
	s.status = Loading
	s.err = ""
	s.mu.Unlock()
	s.notify()

	return true, s.load(ctx)
}

// Fetch loads the full list regardless of the current status. On success
// the collection is replaced; on failure it is kept and the error recorded.
// Nothing is retried.
func (s *Store) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.status = Loading
	s.err = ""
	s.mu.Unlock()
	s.notify()

	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) error {
	tasks, err := s.api.ListTasks(ctx)

	s.mu.Lock()
	if err != nil {
		s.status = Failed
		s.err = err.Error()
		if s.err == "" {
			s.err = DefaultFetchError
		}
	} else {
		items := make([]models.TaskView, len(tasks))
		for i, t := range tasks {
			items[i] = t.View()
		}
		s.items = items
		s.status = Succeeded
	}
	s.mu.Unlock()
	s.notify()
	return err
}

// Create creates a task through the API and appends the re-read task.
func (s *Store) Create(ctx context.Context, fields map[string]any) (models.TaskView, error) {
	t, err := s.api.CreateAndReload(ctx, fields)
	if err != nil {
		return models.TaskView{}, err
	}
	s.mu.Lock()
	s.items = append(s.items, t)
	s.mu.Unlock()
	s.notify()
	return t, nil
}

// Update updates a task through the API and replaces the cached entry with
// the same id. A task that is not cached is not added.
func (s *Store) Update(ctx context.Context, id int64, patch map[string]any) (models.TaskView, error) {
	t, err := s.api.UpdateAndReload(ctx, id, patch)
	if err != nil {
		return models.TaskView{}, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == t.ID {
			s.items[i] = t
			break
		}
	}
	s.mu.Unlock()
	s.notify()
	return t, nil
}

// Delete deletes a task through the API and removes it from the cache.
func (s *Store) Delete(ctx context.Context, id int64) error {
	removed, err := s.api.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, t := range s.items {
		if t.ID != removed {
			kept = append(kept, t)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notify()
	return nil
}

// SetAll replaces the collection and marks the load as succeeded.
func (s *Store) SetAll(items []models.TaskView) {
	s.mu.Lock()
	s.items = append([]models.TaskView{}, items...)
	s.status = Succeeded
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// Clear empties the collection and returns the store to idle, so the next
// EnsureLoaded fetches again.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = []models.TaskView{}
	s.status = Idle
	s.err = ""
	s.mu.Unlock()
	s.notify()
}

// Items returns a copy of the cached tasks in cache order.
func (s *Store) Items() []models.TaskView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.TaskView{}, s.items...)
}

// Status returns the load status.
func (s *Store) Status() LoadStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Err returns the message of the last failed fetch, or "".
func (s *Store) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Snapshot returns a copy of the whole state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Items:  append([]models.TaskView{}, s.items...),
		Status: s.status,
		Err:    s.err,
	}
}

// Subscribe registers fn to be called after every change. The returned
// function removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify() {
	s.mu.Lock()
	snap := s.snapshot()
	fns := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
