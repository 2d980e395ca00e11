package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
)

type taskRepository struct {
	db *DB
}

// NewTaskRepository creates a task repository on db
func NewTaskRepository(db *DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	r.db.insertTask(task)
	return nil
}

func (r *taskRepository) CreateMany(ctx context.Context, tasks []*entities.Task) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	for _, t := range tasks {
		r.db.insertTask(t)
	}
	return nil
}

func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID, userID string) (*entities.Task, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	t, ok := r.db.tasks[id]
	if !ok || t.UserID != userID {
		return nil, entities.ErrRecordNotFound
	}
	return t.Clone(), nil
}

func (r *taskRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Task, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	tasks := r.db.tasksOf(userID)
	sort.Slice(tasks, func(i, j int) bool {
		if !tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
		}
		return tasks[i].ID.String() < tasks[j].ID.String()
	})

	out := make([]*entities.Task, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (r *taskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, userID string, status entities.TaskStatus) (*entities.Task, error) {
	if !status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}

	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	t, ok := r.db.tasks[id]
	if !ok || t.UserID != userID {
		return nil, entities.ErrRecordNotFound
	}

	t.Status = status
	t.UpdatedAt = time.Now().UTC()
	return t.Clone(), nil
}

func (r *taskRepository) CountByStatus(ctx context.Context, userID string) (entities.TaskSummary, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[entities.TaskStatus]int64)
	for _, t := range r.db.tasksOf(userID) {
		counts[t.Status]++
	}
	return entities.NewTaskSummary(counts), nil
}

func (r *taskRepository) FindOverdue(ctx context.Context, userID string, now time.Time) ([]entities.OverdueTask, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	overdue := make([]*entities.Task, 0)
	for _, t := range r.db.tasksOf(userID) {
		if t.IsOverdue(now) {
			overdue = append(overdue, t)
		}
	}
	sort.Slice(overdue, func(i, j int) bool {
		if !overdue[i].DueDate.Equal(*overdue[j].DueDate) {
			return overdue[i].DueDate.Before(*overdue[j].DueDate)
		}
		return overdue[i].ID.String() < overdue[j].ID.String()
	})

	out := make([]entities.OverdueTask, 0, len(overdue))
	for _, t := range overdue {
		item := entities.OverdueTask{
			ID:      t.ID,
			Title:   t.Title,
			DueDate: t.DueDate.UTC(),
		}
		if t.MeetingID != nil {
			id := *t.MeetingID
			item.MeetingID = &id
			if m, ok := r.db.meetings[id]; ok && m.UserID == userID {
				title := m.Title
				item.MeetingTitle = &title
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *taskRepository) CountOverdue(ctx context.Context, userID string, now time.Time) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	var n int64
	for _, t := range r.db.tasksOf(userID) {
		if t.IsOverdue(now) {
			n++
		}
	}
	return n, nil
}
