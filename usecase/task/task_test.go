package task

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
	boltRepo "github.com/taskdeck/backend/repository/bolt"
)

type fixedWeather struct {
	snap *domain.WeatherSnapshot
}

func (f fixedWeather) Lookup(_ context.Context, _ string) *domain.WeatherSnapshot {
	return f.snap
}

func newUseCase(t *testing.T, snap *domain.WeatherSnapshot) *UseCase {
	t.Helper()
	store, err := kvstore.Open(filepath.Join(t.TempDir(), "test.db"), "taskdeck")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return New(boltRepo.NewTaskRepository(store), fixedWeather{snap: snap}, nil)
}

func TestCreate_ValidationLeavesCollectionUntouched(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, CreateInput{Title: "", City: "Paris"})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	_, err = uc.Create(ctx, CreateInput{Title: "Buy milk", City: "  "})
	require.True(t, domain.IsDomainError(err, domain.ErrCodeInvalid))

	tasks, err := uc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, tasks)
}

func TestCreate_CapturesWeatherSnapshot(t *testing.T) {
	uc := newUseCase(t, &domain.WeatherSnapshot{Main: "Clouds", Icon: "04d", TempC: 18.5})
	ctx := context.Background()

	created, err := uc.Create(ctx, CreateInput{Title: "Buy milk", City: "Paris"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Clouds, 18.5°C", created.WeatherText)
	require.Equal(t, "Clouds", created.WeatherMain)
	require.Equal(t, "04d", created.WeatherIcon)

	tasks, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, created.ID, tasks[0].ID)
	require.Equal(t, "Clouds, 18.5°C", tasks[0].WeatherText)
	require.True(t, created.CreatedAt.Equal(tasks[0].CreatedAt))
}

func TestCreate_NoWeatherDataMarksUnavailable(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	yesterday := time.Now().AddDate(0, 0, -1)
	created, err := uc.Create(ctx, CreateInput{
		Title:   "Buy milk",
		City:    "Paris",
		DueDate: &yesterday,
	})
	require.NoError(t, err)
	require.Equal(t, domain.WeatherUnavailable, created.WeatherText)
	require.Empty(t, created.WeatherIcon)
	require.True(t, created.IsOverdue(time.Now()))
}

func TestCreate_AssignsUniqueIDs(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		created, err := uc.Create(ctx, CreateInput{Title: "t", City: "c"})
		require.NoError(t, err)
		require.False(t, seen[created.ID])
		seen[created.ID] = true
	}
}

func TestMutationsOnAbsentIDAreSilentNoOps(t *testing.T) {
	uc := newUseCase(t, nil)
	ctx := context.Background()

	_, err := uc.Create(ctx, CreateInput{Title: "keep me", City: "Paris"})
	require.NoError(t, err)

	require.NoError(t, uc.Toggle(ctx, "ghost"))
	require.NoError(t, uc.Delete(ctx, "ghost"))
	title := "x"
	require.NoError(t, uc.Edit(ctx, "ghost", &title, nil))

	tasks, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.Equal(t, "keep me", tasks[0].Title)
	require.False(t, tasks[0].Completed)
}
