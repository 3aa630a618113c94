package bolt

import (
	"context"
	"encoding/json"

	"github.com/taskdeck/backend/domain"
	"github.com/taskdeck/backend/internal/infrastructure/kvstore"
	"github.com/taskdeck/backend/repository"
)

const tasksKey = "tasks"

type taskRepository struct {
	store *kvstore.Store
}

// NewTaskRepository returns a TaskRepository over the local store. The whole
// collection lives under one key; mutations rewrite it inside one store
// transaction, which is the single-writer discipline for this design.
func NewTaskRepository(store *kvstore.Store) repository.TaskRepository {
	return &taskRepository{store: store}
}

func (r *taskRepository) List(_ context.Context) ([]domain.Task, error) {
	raw, found, err := r.store.Get(tasksKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return decodeTasks(raw), nil
}

func (r *taskRepository) Replace(_ context.Context, tasks []domain.Task) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		return putTasks(tx, tasks)
	})
}

func (r *taskRepository) Append(_ context.Context, task *domain.Task) error {
	if task == nil || task.ID == "" {
		return domain.ErrInvalidPayload
	}
	return r.store.Update(func(tx *kvstore.Tx) error {
		tasks := readTasks(tx)
		tasks = append(tasks, *task)
		return putTasks(tx, tasks)
	})
}

func (r *taskRepository) Toggle(_ context.Context, id string) error {
	return r.mutate(id, func(t *domain.Task) {
		t.Completed = !t.Completed
	})
}

func (r *taskRepository) Edit(_ context.Context, id string, title, description *string) error {
	return r.mutate(id, func(t *domain.Task) {
		if title != nil {
			t.Title = *title
		}
		if description != nil {
			t.Description = *description
		}
	})
}

func (r *taskRepository) Delete(_ context.Context, id string) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		tasks := readTasks(tx)
		kept := tasks[:0]
		for _, t := range tasks {
			if t.ID != id {
				kept = append(kept, t)
			}
		}
		if len(kept) == len(tasks) {
			return domain.ErrTaskNotFound
		}
		return putTasks(tx, kept)
	})
}

func (r *taskRepository) mutate(id string, apply func(*domain.Task)) error {
	return r.store.Update(func(tx *kvstore.Tx) error {
		tasks := readTasks(tx)
		for i := range tasks {
			if tasks[i].ID == id {
				apply(&tasks[i])
				return putTasks(tx, tasks)
			}
		}
		return domain.ErrTaskNotFound
	})
}

func readTasks(tx *kvstore.Tx) []domain.Task {
	raw, found := tx.Get(tasksKey)
	if !found {
		return nil
	}
	return decodeTasks(raw)
}

func putTasks(tx *kvstore.Tx, tasks []domain.Task) error {
	if tasks == nil {
		tasks = []domain.Task{}
	}
	payload, err := json.Marshal(tasks)
	if err != nil {
		return err
	}
	return tx.Put(tasksKey, string(payload))
}

// decodeTasks treats a corrupt collection as empty rather than failing.
func decodeTasks(raw string) []domain.Task {
	var tasks []domain.Task
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil
	}
	return tasks
}
