package repository

import (
	"context"

	"github.com/taskdeck/backend/domain"
)

// TaskRepository manages the task collection, which is persisted as a single
// unit: every mutation is a full read-modify-write of the whole collection.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	Replace(ctx context.Context, tasks []domain.Task) error
	Append(ctx context.Context, task *domain.Task) error
	Toggle(ctx context.Context, id string) error
	Edit(ctx context.Context, id string, title, description *string) error
	Delete(ctx context.Context, id string) error
}
