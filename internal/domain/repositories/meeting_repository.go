package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// MeetingRepository defines the interface for meeting data access.
// Every lookup is scoped by the owning user; a meeting of another user is reported
// as entities.ErrRecordNotFound.
type MeetingRepository interface {
	// Create persists a new meeting
	Create(ctx context.Context, meeting *entities.Meeting) error

	// FindByID retrieves a meeting owned by userID
	FindByID(ctx context.Context, id uuid.UUID, userID string) (*entities.Meeting, error)

	// ListByUser retrieves one offset/limit page of meetings, newest first, and the total count
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.Meeting, int64, error)

	// CountByUser counts all meetings of a user
	CountByUser(ctx context.Context, userID string) (int64, error)

	// FindUpcoming retrieves up to limit meetings dated at or after now, soonest first
	FindUpcoming(ctx context.Context, userID string, now time.Time, limit int) ([]entities.UpcomingMeeting, error)

	// UpdateTranscript replaces the transcript and returns the updated meeting
	UpdateTranscript(ctx context.Context, id uuid.UUID, userID, transcript string) (*entities.Meeting, error)

	// SaveSummary stores the summary and action items and inserts the derived tasks atomically
	SaveSummary(ctx context.Context, id uuid.UUID, userID, summary string, actionItems []string, tasks []*entities.Task) (*entities.Meeting, error)

	// ParticipantCounts returns the participant count of every meeting of a user
	ParticipantCounts(ctx context.Context, userID string) ([]int, error)

	// TopParticipants ranks participants by the number of meetings they appear in
	TopParticipants(ctx context.Context, userID string, limit int) ([]entities.ParticipantCount, error)

	// CountByWeekday counts meetings per ISO weekday (1..7); absent days are omitted
	CountByWeekday(ctx context.Context, userID string) (map[int]int64, error)
}
