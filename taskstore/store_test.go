package taskstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"TaskBoardService/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	mu       sync.Mutex
	tasks    []models.Task
	listErr  error
	writeErr error
	lists    int
	nextID   int64
	// release, when set, blocks ListTasks until closed
	release chan struct{}
}

func (f *fakeAPI) ListTasks(ctx context.Context) ([]models.Task, error) {
	if f.release != nil {
		<-f.release
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]models.Task{}, f.tasks...), nil
}

func (f *fakeAPI) CreateAndReload(ctx context.Context, fields map[string]any) (models.TaskView, error) {
	if f.writeErr != nil {
		return models.TaskView{}, f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	t := models.Task{ID: 100 + f.nextID, Title: fields["title"].(string), Priority: models.PriorityMedium, Status: models.StatusPending}
	f.tasks = append(f.tasks, t)
	return t.View(), nil
}

func (f *fakeAPI) UpdateAndReload(ctx context.Context, id int64, patch map[string]any) (models.TaskView, error) {
	if f.writeErr != nil {
		return models.TaskView{}, f.writeErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.tasks {
		if f.tasks[i].ID == id {
			if s, ok := patch["status"].(string); ok {
				f.tasks[i].Status = models.Status(s)
			}
			return f.tasks[i].View(), nil
		}
	}
	return models.TaskView{}, models.ErrNotFound
}

func (f *fakeAPI) DeleteTask(ctx context.Context, id int64) (int64, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	return id, nil
}

func seeded() *fakeAPI {
	return &fakeAPI{tasks: []models.Task{
		{ID: 2, Title: "second", Priority: models.PriorityLow, Status: models.StatusCompleted},
		{ID: 1, Title: "first", Priority: models.PriorityHigh, Status: models.StatusPending},
	}}
}

func ids(items []models.TaskView) []int64 {
	out := make([]int64, len(items))
	for i, t := range items {
		out[i] = t.ID
	}
	return out
}

func TestInitialState(t *testing.T) {
	s := New(seeded())
	assert.Equal(t, Idle, s.Status())
	assert.Empty(t, s.Items())
	assert.Empty(t, s.Err())
}

func TestEnsureLoadedRunsOnce(t *testing.T) {
	api := seeded()
	s := New(api)

	started, err := s.EnsureLoaded(context.Background())
	require.NoError(t, err)
	assert.True(t, started)
	assert.Equal(t, Succeeded, s.Status())
	assert.Equal(t, []int64{2, 1}, ids(s.Items()))

	started, err = s.EnsureLoaded(context.Background())
	require.NoError(t, err)
	assert.False(t, started)
	assert.Equal(t, 1, api.lists)
}

func TestEnsureLoadedConcurrent(t *testing.T) {
	api := seeded()
	api.release = make(chan struct{})
	s := New(api)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		started int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _ := s.EnsureLoaded(context.Background())
			if ok {
				mu.Lock()
				started++
				mu.Unlock()
			}
		}()
	}
	// let every caller reach the guard before the fetch completes
	require.Eventually(t, func() bool { return s.Status() == Loading }, time.Second, time.Millisecond)
	time.Sleep(10 * time.Millisecond)
	close(api.release)
	wg.Wait()

	assert.Equal(t, 1, started)
	assert.Equal(t, 1, api.lists)
}

func TestFetchFailureKeepsItems(t *testing.T) {
	api := seeded()
	s := New(api)
	require.NoError(t, s.Fetch(context.Background()))

	api.listErr = errors.New("connection refused")
	err := s.Fetch(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Failed, s.Status())
	assert.Equal(t, "connection refused", s.Err())
	assert.Equal(t, []int64{2, 1}, ids(s.Items()))

	started, err := s.EnsureLoaded(context.Background())
	assert.NoError(t, err)
	assert.False(t, started, "no automatic retry")
}

func TestFirstLoadFailure(t *testing.T) {
	api := &fakeAPI{listErr: errors.New("boom")}
	s := New(api)
	_, err := s.EnsureLoaded(context.Background())
	assert.Error(t, err)
	assert.Equal(t, Failed, s.Status())
	assert.Empty(t, s.Items())
}

func TestMutationsSplice(t *testing.T) {
	ctx := context.Background()
	api := seeded()
	s := New(api)
	require.NoError(t, s.Fetch(ctx))

	created, err := s.Create(ctx, map[string]any{"title": "third"})
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 1, created.ID}, ids(s.Items()))

	updated, err := s.Update(ctx, 1, map[string]any{"status": "Completed"})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	items := s.Items()
	assert.Equal(t, []int64{2, 1, created.ID}, ids(items))
	assert.True(t, items[1].Completed)
	assert.Equal(t, models.StatusCompleted, items[1].Status)

	require.NoError(t, s.Delete(ctx, 2))
	assert.Equal(t, []int64{1, created.ID}, ids(s.Items()))
	assert.Equal(t, Succeeded, s.Status(), "mutations leave the load status alone")
}

func TestFailedMutationLeavesCache(t *testing.T) {
	ctx := context.Background()
	api := seeded()
	s := New(api)
	require.NoError(t, s.Fetch(ctx))
	before := s.Items()

	api.writeErr = models.ErrNotFound
	_, err := s.Create(ctx, map[string]any{"title": "x"})
	assert.Error(t, err)
	_, err = s.Update(ctx, 1, map[string]any{"status": "Completed"})
	assert.ErrorIs(t, err, models.ErrNotFound)
	assert.Error(t, s.Delete(ctx, 1))

	assert.Equal(t, before, s.Items())
}

func TestSetAllClearSubscribe(t *testing.T) {
	s := New(seeded())
	var seen []LoadStatus
	unsubscribe := s.Subscribe(func(snap Snapshot) { seen = append(seen, snap.Status) })

	s.SetAll([]models.TaskView{{ID: 5}})
	assert.Equal(t, Succeeded, s.Status())
	assert.Equal(t, []int64{5}, ids(s.Items()))

	s.Clear()
	assert.Equal(t, Idle, s.Status())
	assert.Empty(t, s.Items())

	unsubscribe()
	s.SetAll(nil)
	assert.Equal(t, []LoadStatus{Succeeded, Idle}, seen)
}

func TestCompletedFollowsStatus(t *testing.T) {
	api := &fakeAPI{tasks: []models.Task{
		{ID: 1, Status: models.StatusPending},
		{ID: 2, Status: models.StatusInProgress},
		{ID: 3, Status: models.StatusCompleted},
	}}
	s := New(api)
	require.NoError(t, s.Fetch(context.Background()))
	for _, item := range s.Items() {
		assert.Equal(t, item.Status == models.StatusCompleted, item.Completed, item.ID)
	}
}
