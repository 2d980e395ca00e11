package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/cachekey"
	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
)

// DefaultCacheTTL applies when no TTL is configured
const DefaultCacheTTL = 300 * time.Second

// TaskService handles task business logic
type TaskService struct {
	taskRepo    repositories.TaskRepository
	meetingRepo repositories.MeetingRepository
	aside       *cache.Aside
	invalidator *cachekey.Invalidator
	ttl         time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewTaskService creates a new task service. aside and invalidator may be nil.
func NewTaskService(
	taskRepo repositories.TaskRepository,
	meetingRepo repositories.MeetingRepository,
	aside *cache.Aside,
	invalidator *cachekey.Invalidator,
	ttl time.Duration,
	logger *zap.Logger,
) *TaskService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if invalidator == nil {
		invalidator = cachekey.NewInvalidator(nil, logger)
	}
	return &TaskService{
		taskRepo:    taskRepo,
		meetingRepo: meetingRepo,
		aside:       aside,
		invalidator: invalidator,
		ttl:         ttl,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateTaskInput represents input for creating a task
type CreateTaskInput struct {
	UserID      string
	MeetingID   *uuid.UUID
	Title       string
	Description *string
	Status      entities.TaskStatus
	DueDate     *time.Time
}

// ActionItem is a task proposed for a meeting
type ActionItem struct {
	Title       string
	Description string
}

// ListTasks returns every task of the user, cached per user
func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]*entities.Task, error) {
	return cache.GetOrLoad(ctx, s.aside, cachekey.Tasks(userID), s.ttl, func(ctx context.Context) ([]*entities.Task, error) {
		tasks, err := s.taskRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list tasks: %w", err)
		}
		return tasks, nil
	})
}

// GetTask retrieves one task of the user
func (s *TaskService) GetTask(ctx context.Context, userID string, id uuid.UUID) (*entities.Task, error) {
	t, err := s.taskRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// CreateTask creates a task, optionally attached to one of the user's meetings
func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*entities.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	status := input.Status
	if status == "" {
		status = entities.TaskStatusPending
	}
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidTaskStatus
	}

	if input.MeetingID != nil {
		if err := s.ensureMeeting(ctx, input.UserID, *input.MeetingID); err != nil {
			return nil, err
		}
	}

	t := entities.NewTask(input.UserID, input.MeetingID, title)
	t.Description = input.Description
	t.Status = status
	if input.DueDate != nil {
		due := input.DueDate.UTC()
		t.DueDate = &due
	}

	if err := s.taskRepo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.invalidator.TasksChanged(ctx, input.UserID)
	return t, nil
}

// CreateTasksFromActionItems inserts one pending task per item, due a week from now
func (s *TaskService) CreateTasksFromActionItems(ctx context.Context, userID string, meetingID uuid.UUID, items []ActionItem) ([]*entities.Task, error) {
	if err := s.ensureMeeting(ctx, userID, meetingID); err != nil {
		return nil, err
	}

	tasks := BuildTasksFromActionItems(userID, meetingID, items, s.now())
	if len(tasks) == 0 {
		return tasks, nil
	}

	if err := s.taskRepo.CreateMany(ctx, tasks); err != nil {
		return nil, fmt.Errorf("failed to create tasks: %w", err)
	}

	s.invalidator.TasksChanged(ctx, userID)
	return tasks, nil
}

// BuildTasksFromActionItems derives pending tasks due DerivedTaskDueIn after now.
// Items with a blank title are skipped.
func BuildTasksFromActionItems(userID string, meetingID uuid.UUID, items []ActionItem, now time.Time) []*entities.Task {
	due := now.UTC().Add(entities.DerivedTaskDueIn)
	tasks := make([]*entities.Task, 0, len(items))
	for _, item := range items {
		title := strings.TrimSpace(item.Title)
		if title == "" {
			continue
		}

		id := meetingID
		t := entities.NewTask(userID, &id, title)
		if desc := strings.TrimSpace(item.Description); desc != "" {
			t.Description = &desc
		}
		d := due
		t.DueDate = &d
		tasks = append(tasks, t)
	}
	return tasks
}

// UpdateTaskStatus moves a task to any status of the enum
func (s *TaskService) UpdateTaskStatus(ctx context.Context, userID string, id uuid.UUID, status entities.TaskStatus) (*entities.Task, error) {
	if !status.IsValid() {
		return nil, usecaseErrors.ErrInvalidTaskStatus
	}

	t, err := s.taskRepo.UpdateStatus(ctx, id, userID, status)
	if err != nil {
		switch {
		case errors.Is(err, entities.ErrRecordNotFound):
			return nil, usecaseErrors.ErrTaskNotFound
		case errors.Is(err, entities.ErrInvalidStatus):
			return nil, usecaseErrors.ErrInvalidTaskStatus
		}
		return nil, fmt.Errorf("failed to update task status: %w", err)
	}

	s.invalidator.TasksChanged(ctx, userID)
	return t, nil
}

// GetTaskStats returns the status breakdown and the overdue count
func (s *TaskService) GetTaskStats(ctx context.Context, userID string) (*entities.TaskStats, error) {
	now := s.now()
	var stats entities.TaskStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.taskRepo.CountByStatus(gctx, userID)
		if err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		stats.ByStatus = summary
		return nil
	})
	g.Go(func() error {
		n, err := s.taskRepo.CountOverdue(gctx, userID, now)
		if err != nil {
			return fmt.Errorf("count overdue: %w", err)
		}
		stats.Overdue = n
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get task stats: %w", err)
	}
	return &stats, nil
}

func (s *TaskService) ensureMeeting(ctx context.Context, userID string, meetingID uuid.UUID) error {
	if _, err := s.meetingRepo.FindByID(ctx, meetingID, userID); err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return usecaseErrors.ErrMeetingNotFound
		}
		return fmt.Errorf("failed to get meeting: %w", err)
	}
	return nil
}
