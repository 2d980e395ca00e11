// Package dashboard composes the per-user dashboard snapshot from the meeting and
// task stores and keeps it in the cache.
package dashboard

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/cachekey"
	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
)

// DefaultCacheTTL is how long a snapshot is served from cache
const DefaultCacheTTL = 300 * time.Second

// DashboardService builds dashboard snapshots
type DashboardService struct {
	meetingRepo repositories.MeetingRepository
	taskRepo    repositories.TaskRepository
	aside       *cache.Aside
	ttl         time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// NewDashboardService creates a new dashboard service. A nil aside disables caching.
func NewDashboardService(
	meetingRepo repositories.MeetingRepository,
	taskRepo repositories.TaskRepository,
	aside *cache.Aside,
	ttl time.Duration,
	logger *zap.Logger,
) *DashboardService {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		meetingRepo: meetingRepo,
		taskRepo:    taskRepo,
		aside:       aside,
		ttl:         ttl,
		logger:      logger,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// GetDashboardData returns the dashboard snapshot of userID, from cache when present
func (s *DashboardService) GetDashboardData(ctx context.Context, userID string) (*entities.DashboardSnapshot, error) {
	return cache.GetOrLoad(ctx, s.aside, cachekey.Dashboard(userID), s.ttl, func(ctx context.Context) (*entities.DashboardSnapshot, error) {
		s.logger.Debug("dashboard.cache.miss", zap.String("user_id", userID))

		snapshot, err := s.aggregate(ctx, userID)
		if err != nil {
			s.logger.Error("dashboard.aggregate.failed", zap.String("user_id", userID), zap.Error(err))
			return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrDashboardFetchFailed, err)
		}
		return snapshot, nil
	})
}

// aggregate runs the four reads concurrently against one instant.
// Any failure discards the partial results.
func (s *DashboardService) aggregate(ctx context.Context, userID string) (*entities.DashboardSnapshot, error) {
	now := s.now()
	snapshot := &entities.DashboardSnapshot{}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.meetingRepo.CountByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("count meetings: %w", err)
		}
		snapshot.TotalMeetings = total
		return nil
	})

	g.Go(func() error {
		upcoming, err := s.meetingRepo.FindUpcoming(gctx, userID, now, entities.DashboardUpcomingLimit)
		if err != nil {
			return fmt.Errorf("find upcoming meetings: %w", err)
		}
		snapshot.UpcomingMeetings = upcoming
		return nil
	})

	g.Go(func() error {
		summary, err := s.taskRepo.CountByStatus(gctx, userID)
		if err != nil {
			return fmt.Errorf("count tasks by status: %w", err)
		}
		snapshot.TaskSummary = summary
		return nil
	})

	g.Go(func() error {
		overdue, err := s.taskRepo.FindOverdue(gctx, userID, now)
		if err != nil {
			return fmt.Errorf("find overdue tasks: %w", err)
		}
		snapshot.OverdueTasks = overdue
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if snapshot.UpcomingMeetings == nil {
		snapshot.UpcomingMeetings = []entities.UpcomingMeeting{}
	}
	if snapshot.OverdueTasks == nil {
		snapshot.OverdueTasks = []entities.OverdueTask{}
	}
	return snapshot, nil
}
