package cachekey

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/cache"
)

// Invalidator deletes the cached views a successful write makes stale.
// Failures are logged and never fail the write; the TTL bounds the staleness.
type Invalidator struct {
	store  cache.Store
	logger *zap.Logger
}

// NewInvalidator creates an Invalidator. A nil store turns every call into a no-op.
func NewInvalidator(store cache.Store, logger *zap.Logger) *Invalidator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invalidator{store: store, logger: logger}
}

// MeetingCreated drops the list pages, stats and dashboard of the owner
func (i *Invalidator) MeetingCreated(ctx context.Context, userID string) {
	i.dropMeetingViews(ctx, userID)
}

// MeetingUpdated additionally drops the single-meeting entry
func (i *Invalidator) MeetingUpdated(ctx context.Context, userID string, meetingID uuid.UUID) {
	i.delete(ctx, userID, Meeting(meetingID, userID))
	i.dropMeetingViews(ctx, userID)
}

// MeetingSummarized covers the meeting update and the tasks derived from it
func (i *Invalidator) MeetingSummarized(ctx context.Context, userID string, meetingID uuid.UUID) {
	i.delete(ctx, userID, Meeting(meetingID, userID), Tasks(userID))
	i.dropMeetingViews(ctx, userID)
}

// TasksChanged drops the task list and dashboard of the owner
func (i *Invalidator) TasksChanged(ctx context.Context, userID string) {
	i.delete(ctx, userID, Tasks(userID), Dashboard(userID))
}

func (i *Invalidator) dropMeetingViews(ctx context.Context, userID string) {
	if i.store == nil {
		return
	}
	if err := i.store.DeleteFamily(ctx, MeetingsFamily(userID)); err != nil {
		i.logger.Error("cache.invalidate.failed",
			zap.String("user_id", userID),
			zap.String("family", MeetingsFamily(userID)),
			zap.Error(err),
		)
	}
	i.delete(ctx, userID, MeetingStats(userID), Dashboard(userID))
}

func (i *Invalidator) delete(ctx context.Context, userID string, keys ...string) {
	if i.store == nil {
		return
	}
	if err := i.store.Delete(ctx, keys...); err != nil {
		i.logger.Error("cache.invalidate.failed",
			zap.String("user_id", userID),
			zap.Strings("keys", keys),
			zap.Error(err),
		)
	}
}
