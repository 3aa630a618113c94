package bolt

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
)

func openTestStore(t *testing.T) *kvstore.Store {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "test.db"), "taskdeck")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTask(id, title string) *domain.Task {
	return &domain.Task{
		ID:        id,
		Title:     title,
		City:      "Paris",
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestTaskRepository_EmptyAndCorruptReadAsEmpty(t *testing.T) {
	store := openTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)

	require.NoError(t, store.Put("tasks", "{not json"))
	tasks, err = repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestTaskRepository_SequenceMatchesReferenceModel(t *testing.T) {
	store := openTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	var model []domain.Task
	for _, id := range []string{"a", "b", "c"} {
		task := newTask(id, "task "+id)
		require.NoError(t, repo.Append(ctx, task))
		model = append(model, *task)
	}

	require.NoError(t, repo.Toggle(ctx, "b"))
	model[1].Completed = true

	require.NoError(t, repo.Delete(ctx, "a"))
	model = model[1:]

	require.NoError(t, repo.Toggle(ctx, "c"))
	model[1].Completed = true

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, model, got)
}

func TestTaskRepository_ToggleTwiceRestoresState(t *testing.T) {
	store := openTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, newTask("a", "one")))

	require.NoError(t, repo.Toggle(ctx, "a"))
	require.NoError(t, repo.Toggle(ctx, "a"))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.False(t, got[0].Completed)
}

func TestTaskRepository_MutationsSignalNotFound(t *testing.T) {
	store := openTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, newTask("a", "one")))

	require.ErrorIs(t, repo.Toggle(ctx, "nope"), domain.ErrTaskNotFound)
	require.ErrorIs(t, repo.Delete(ctx, "nope"), domain.ErrTaskNotFound)
	title := "x"
	require.ErrorIs(t, repo.Edit(ctx, "nope", &title, nil), domain.ErrTaskNotFound)

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "one", got[0].Title)
}

func TestTaskRepository_EditAppliesOnlySuppliedFields(t *testing.T) {
	store := openTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	task := newTask("a", "original")
	task.Description = "desc"
	require.NoError(t, repo.Append(ctx, task))

	newTitle := "renamed"
	require.NoError(t, repo.Edit(ctx, "a", &newTitle, nil))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "renamed", got[0].Title)
	require.Equal(t, "desc", got[0].Description)

	// Neither field supplied leaves the task unchanged.
	require.NoError(t, repo.Edit(ctx, "a", nil, nil))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, "renamed", got[0].Title)
	require.Equal(t, "desc", got[0].Description)
}

func TestTaskRepository_ReplaceOverwritesCollection(t *testing.T) {
	store := openTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, newTask("a", "one")))
	require.NoError(t, repo.Append(ctx, newTask("b", "two")))

	replacement := []domain.Task{*newTask("c", "three")}
	require.NoError(t, repo.Replace(ctx, replacement))

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, replacement, got)

	require.NoError(t, repo.Replace(ctx, nil))
	got, err = repo.List(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTaskRepository_InsertionOrderPreserved(t *testing.T) {
	store := openTestStore(t)
	repo := NewTaskRepository(store)
	ctx := context.Background()

	for _, id := range []string{"z", "m", "a"} {
		require.NoError(t, repo.Append(ctx, newTask(id, id)))
	}

	got, err := repo.List(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"z", "m", "a"}, []string{got[0].ID, got[1].ID, got[2].ID})
}
