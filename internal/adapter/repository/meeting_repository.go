package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
)

// meetingRepository implements the MeetingRepository interface
type meetingRepository struct {
	db *gorm.DB
}

// NewMeetingRepository creates a new meeting repository
func NewMeetingRepository(db *gorm.DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

// notFound folds GORM's sentinel into the domain one
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.ErrRecordNotFound
	}
	return err
}

// Create creates a new meeting
func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	meeting.Normalize()
	return r.db.WithContext(ctx).Create(meeting).Error
}

// FindByID retrieves a meeting of the given user
func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID, userID string) (*entities.Meeting, error) {
	var meeting entities.Meeting
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&meeting).Error

	if err != nil {
		return nil, notFound(err)
	}
	return &meeting, nil
}

// ListByUser retrieves a page of meetings, newest first
func (r *meetingRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.Meeting, int64, error) {
	var meetings []*entities.Meeting
	var total int64

	query := r.db.WithContext(ctx).Model(&entities.Meeting{}).Where("user_id = ?", userID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("date DESC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&meetings).Error
	if err != nil {
		return nil, 0, err
	}

	return meetings, total, nil
}

// CountByUser counts the meetings of a user
func (r *meetingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	return total, err
}

// FindUpcoming retrieves the next meetings, soonest first, with derived participant counts
func (r *meetingRepository) FindUpcoming(ctx context.Context, userID string, now time.Time, limit int) ([]entities.UpcomingMeeting, error) {
	upcoming := make([]entities.UpcomingMeeting, 0, limit)
	err := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Select("id, title, date, jsonb_array_length(participants) AS participant_count").
		Where("user_id = ? AND date >= ?", userID, now).
		Order("date ASC").
		Order("id ASC").
		Limit(limit).
		Scan(&upcoming).Error
	if err != nil {
		return nil, err
	}

	for i := range upcoming {
		upcoming[i].Date = upcoming[i].Date.UTC()
	}
	return upcoming, nil
}

// UpdateTranscript replaces the transcript of a meeting
func (r *meetingRepository) UpdateTranscript(ctx context.Context, id uuid.UUID, userID, transcript string) (*entities.Meeting, error) {
	res := r.db.WithContext(ctx).
		Model(&entities.Meeting{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]interface{}{
			"transcript": transcript,
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

// SaveSummary writes the summary and inserts the derived tasks in one transaction
func (r *meetingRepository) SaveSummary(ctx context.Context, id uuid.UUID, userID, summary string, actionItems []string, tasks []*entities.Task) (*entities.Meeting, error) {
	if actionItems == nil {
		actionItems = []string{}
	}

	var updated entities.Meeting
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entities.Meeting{}).
			Where("id = ? AND user_id = ?", id, userID).
			Updates(map[string]interface{}{
				"summary":      summary,
				"action_items": datatypes.JSONSlice[string](actionItems),
				"updated_at":   time.Now().UTC(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return entities.ErrRecordNotFound
		}

		if len(tasks) > 0 {
			for _, t := range tasks {
				t.Normalize()
			}
			if err := tx.Create(&tasks).Error; err != nil {
				return fmt.Errorf("insert derived tasks: %w", err)
			}
		}

		return tx.Where("id = ? AND user_id = ?", id, userID).First(&updated).Error
	})
	if err != nil {
		return nil, notFound(err)
	}

	return &updated, nil
}

// ParticipantCounts returns the participant count of each meeting of a user
func (r *meetingRepository) ParticipantCounts(ctx context.Context, userID string) ([]int, error) {
	counts := make([]int, 0)
	err := r.db.WithContext(ctx).
		Raw(`SELECT jsonb_array_length(participants) FROM meetings WHERE user_id = ?`, userID).
		Scan(&counts).Error
	return counts, err
}

// TopParticipants ranks participants by the number of distinct meetings they appear in
func (r *meetingRepository) TopParticipants(ctx context.Context, userID string, limit int) ([]entities.ParticipantCount, error) {
	top := make([]entities.ParticipantCount, 0, limit)
	err := r.db.WithContext(ctx).
		Raw(`SELECT p.participant, COUNT(DISTINCT m.id) AS meeting_count
			FROM meetings m
			CROSS JOIN LATERAL jsonb_array_elements_text(m.participants) AS p(participant)
			WHERE m.user_id = ?
			GROUP BY p.participant
			ORDER BY meeting_count DESC, p.participant ASC
			LIMIT ?`, userID, limit).
		Scan(&top).Error
	return top, err
}

// CountByWeekday counts meetings per ISO weekday, evaluated in UTC
func (r *meetingRepository) CountByWeekday(ctx context.Context, userID string) (map[int]int64, error) {
	var rows []struct {
		DayOfWeek int
		Count     int64
	}
	err := r.db.WithContext(ctx).
		Raw(`SELECT EXTRACT(ISODOW FROM date AT TIME ZONE 'UTC')::int AS day_of_week, COUNT(*) AS count
			FROM meetings
			WHERE user_id = ?
			GROUP BY 1`, userID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int64, len(rows))
	for _, row := range rows {
		counts[row.DayOfWeek] = row.Count
	}
	return counts, nil
}
