package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
)

// taskRepository implements the TaskRepository interface
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &taskRepository{db: db}
}

// Create creates a new task
func (r *taskRepository) Create(ctx context.Context, task *entities.Task) error {
	task.Normalize()
	return r.db.WithContext(ctx).Create(task).Error
}

// CreateMany inserts tasks in a single statement
func (r *taskRepository) CreateMany(ctx context.Context, tasks []*entities.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	for _, t := range tasks {
		t.Normalize()
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

// FindByID retrieves a task of the given user
func (r *taskRepository) FindByID(ctx context.Context, id uuid.UUID, userID string) (*entities.Task, error) {
	var task entities.Task
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&task).Error

	if err != nil {
		return nil, notFound(err)
	}
	return &task, nil
}

// ListByUser retrieves every task of a user, oldest first
func (r *taskRepository) ListByUser(ctx context.Context, userID string) ([]*entities.Task, error) {
	tasks := make([]*entities.Task, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&tasks).Error
	return tasks, err
}

// UpdateStatus sets any valid status regardless of the current one
func (r *taskRepository) UpdateStatus(ctx context.Context, id uuid.UUID, userID string, status entities.TaskStatus) (*entities.Task, error) {
	if !status.IsValid() {
		return nil, entities.ErrInvalidStatus
	}

	res := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, entities.ErrRecordNotFound
	}

	return r.FindByID(ctx, id, userID)
}

// CountByStatus groups tasks by status; statuses without tasks read as zero
func (r *taskRepository) CountByStatus(ctx context.Context, userID string) (entities.TaskSummary, error) {
	var rows []struct {
		Status entities.TaskStatus
		Count  int64
	}
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return entities.TaskSummary{}, err
	}

	counts := make(map[entities.TaskStatus]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return entities.NewTaskSummary(counts), nil
}

// FindOverdue lists open past-due tasks with the title of their meeting, if it resolves
func (r *taskRepository) FindOverdue(ctx context.Context, userID string, now time.Time) ([]entities.OverdueTask, error) {
	overdue := make([]entities.OverdueTask, 0)
	err := r.db.WithContext(ctx).
		Raw(`SELECT t.id, t.title, t.due_date, t.meeting_id, m.title AS meeting_title
			FROM tasks t
			LEFT JOIN meetings m ON m.id = t.meeting_id AND m.user_id = t.user_id
			WHERE t.user_id = ?
			  AND t.status <> ?
			  AND t.due_date IS NOT NULL
			  AND t.due_date < ?
			ORDER BY t.due_date ASC, t.id ASC`, userID, entities.TaskStatusCompleted, now).
		Scan(&overdue).Error
	if err != nil {
		return nil, err
	}

	for i := range overdue {
		overdue[i].DueDate = overdue[i].DueDate.UTC()
	}
	return overdue, nil
}

// CountOverdue counts open past-due tasks
func (r *taskRepository) CountOverdue(ctx context.Context, userID string, now time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Task{}).
		Where("user_id = ? AND status <> ? AND due_date IS NOT NULL AND due_date < ?",
			userID, entities.TaskStatusCompleted, now).
		Count(&total).Error
	return total, err
}
