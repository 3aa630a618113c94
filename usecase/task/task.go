package task

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/repository"
)

// WeatherLookup is the slice of the weather enricher the task flow needs.
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) *domain.WeatherSnapshot
}

// CreateInput carries the user-supplied fields for a new task.
type CreateInput struct {
	Title       string
	Description string
	City        string
	DueDate     *time.Time
}

type UseCase struct {
	tasks   repository.TaskRepository
	weather WeatherLookup
	logger  *zap.Logger
	now     func() time.Time
}

func New(tasks repository.TaskRepository, weather WeatherLookup, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:   tasks,
		weather: weather,
		logger:  logger,
		now:     time.Now,
	}
}

func (uc *UseCase) List(ctx context.Context) ([]domain.Task, error) {
	return uc.tasks.List(ctx)
}

// Create validates the input, captures the weather snapshot, and appends the
// task. Validation failures leave the collection untouched. The weather lookup
// blocks the creation but never fails it.
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*domain.Task, error) {
	title := strings.TrimSpace(in.Title)
	city := strings.TrimSpace(in.City)
	if title == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "title is required")
	}
	if city == "" {
		return nil, domain.NewError(domain.ErrCodeInvalid, "city is required")
	}

	task := &domain.Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		City:        city,
		Completed:   false,
		DueDate:     in.DueDate,
		CreatedAt:   uc.now(),
	}

	snap := uc.weatherSnapshot(ctx, city)
	task.WeatherText = snap.Text()
	if snap != nil {
		task.WeatherMain = snap.Main
		task.WeatherIcon = snap.Icon
	}

	if err := uc.tasks.Append(ctx, task); err != nil {
		return nil, err
	}
	uc.logger.Info("task created", zap.String("task_id", task.ID), zap.String("city", city))
	return task, nil
}

func (uc *UseCase) Toggle(ctx context.Context, id string) error {
	return uc.absorbNotFound("toggle", id, uc.tasks.Toggle(ctx, id))
}

func (uc *UseCase) Edit(ctx context.Context, id string, title, description *string) error {
	return uc.absorbNotFound("edit", id, uc.tasks.Edit(ctx, id, title, description))
}

func (uc *UseCase) Delete(ctx context.Context, id string) error {
	return uc.absorbNotFound("delete", id, uc.tasks.Delete(ctx, id))
}

// absorbNotFound keeps mutations on absent ids silent: the repository signals
// the condition, callers see a successful no-op.
func (uc *UseCase) absorbNotFound(op, id string, err error) error {
	if err == nil {
		return nil
	}
	if domain.IsDomainError(err, domain.ErrCodeNotFound) {
		uc.logger.Debug("task mutation skipped, id absent",
			zap.String("operation", op), zap.String("task_id", id))
		return nil
	}
	return err
}

func (uc *UseCase) weatherSnapshot(ctx context.Context, city string) *domain.WeatherSnapshot {
	if uc.weather == nil {
		return nil
	}
	return uc.weather.Lookup(ctx, city)
}
