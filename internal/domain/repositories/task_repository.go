package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create persists a single task
	Create(ctx context.Context, task *entities.Task) error

	// CreateMany persists a batch of tasks
	CreateMany(ctx context.Context, tasks []*entities.Task) error

	// FindByID retrieves a task owned by userID
	FindByID(ctx context.Context, id uuid.UUID, userID string) (*entities.Task, error)

	// ListByUser retrieves all tasks of a user, oldest first
	ListByUser(ctx context.Context, userID string) ([]*entities.Task, error)

	// UpdateStatus writes any enum status and returns the updated task
	UpdateStatus(ctx context.Context, id uuid.UUID, userID string, status entities.TaskStatus) (*entities.Task, error)

	// CountByStatus groups a user's tasks by status into a zero-filled summary
	CountByStatus(ctx context.Context, userID string) (entities.TaskSummary, error)

	// FindOverdue retrieves open tasks due before now, soonest due first, enriched with
	// the owning meeting's title when it resolves
	FindOverdue(ctx context.Context, userID string, now time.Time) ([]entities.OverdueTask, error)

	// CountOverdue counts open tasks due before now
	CountOverdue(ctx context.Context, userID string, now time.Time) (int64, error)
}
