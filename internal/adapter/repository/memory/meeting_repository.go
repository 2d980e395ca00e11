package memory

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
)

type meetingRepository struct {
	db *DB
}

// NewMeetingRepository creates a meeting repository on db
func NewMeetingRepository(db *DB) repositories.MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Create(ctx context.Context, meeting *entities.Meeting) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	if meeting.ID == uuid.Nil {
		meeting.ID = uuid.New()
	}
	now := time.Now().UTC()
	if meeting.CreatedAt.IsZero() {
		meeting.CreatedAt = now
	}
	meeting.UpdatedAt = now
	meeting.Normalize()

	r.db.meetings[meeting.ID] = meeting.Clone()
	return nil
}

func (r *meetingRepository) FindByID(ctx context.Context, id uuid.UUID, userID string) (*entities.Meeting, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	m, ok := r.db.meetings[id]
	if !ok || m.UserID != userID {
		return nil, entities.ErrRecordNotFound
	}
	return m.Clone(), nil
}

func (r *meetingRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.Meeting, int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	all := r.db.meetingsOf(userID)
	sort.Slice(all, func(i, j int) bool {
		if !all[i].Date.Equal(all[j].Date) {
			return all[i].Date.After(all[j].Date)
		}
		return all[i].ID.String() < all[j].ID.String()
	})

	total := int64(len(all))
	if offset >= len(all) {
		return []*entities.Meeting{}, total, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}

	page := make([]*entities.Meeting, 0, end-offset)
	for _, m := range all[offset:end] {
		page = append(page, m.Clone())
	}
	return page, total, nil
}

func (r *meetingRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return int64(len(r.db.meetingsOf(userID))), nil
}

func (r *meetingRepository) FindUpcoming(ctx context.Context, userID string, now time.Time, limit int) ([]entities.UpcomingMeeting, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	upcoming := make([]*entities.Meeting, 0)
	for _, m := range r.db.meetingsOf(userID) {
		if !m.Date.Before(now) {
			upcoming = append(upcoming, m)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if !upcoming[i].Date.Equal(upcoming[j].Date) {
			return upcoming[i].Date.Before(upcoming[j].Date)
		}
		return upcoming[i].ID.String() < upcoming[j].ID.String()
	})
	if limit > 0 && len(upcoming) > limit {
		upcoming = upcoming[:limit]
	}

	out := make([]entities.UpcomingMeeting, 0, len(upcoming))
	for _, m := range upcoming {
		out = append(out, m.ToUpcoming())
	}
	return out, nil
}

func (r *meetingRepository) UpdateTranscript(ctx context.Context, id uuid.UUID, userID, transcript string) (*entities.Meeting, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m, ok := r.db.meetings[id]
	if !ok || m.UserID != userID {
		return nil, entities.ErrRecordNotFound
	}

	m.Transcript = &transcript
	m.UpdatedAt = time.Now().UTC()
	return m.Clone(), nil
}

func (r *meetingRepository) SaveSummary(ctx context.Context, id uuid.UUID, userID, summary string, actionItems []string, tasks []*entities.Task) (*entities.Meeting, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()

	m, ok := r.db.meetings[id]
	if !ok || m.UserID != userID {
		return nil, entities.ErrRecordNotFound
	}

	updated := m.Clone()
	updated.Summary = &summary
	updated.ActionItems = append([]string{}, actionItems...)
	updated.UpdatedAt = time.Now().UTC()

	r.db.meetings[id] = updated
	for _, t := range tasks {
		r.db.insertTask(t)
	}
	return updated.Clone(), nil
}

func (r *meetingRepository) ParticipantCounts(ctx context.Context, userID string) ([]int, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	meetings := r.db.meetingsOf(userID)
	counts := make([]int, 0, len(meetings))
	for _, m := range meetings {
		counts = append(counts, m.ParticipantCount())
	}
	return counts, nil
}

func (r *meetingRepository) TopParticipants(ctx context.Context, userID string, limit int) ([]entities.ParticipantCount, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	return entities.TopParticipants(r.db.meetingsOf(userID), limit), nil
}

func (r *meetingRepository) CountByWeekday(ctx context.Context, userID string) (map[int]int64, error) {
	r.db.mu.RLock()
	defer r.db.mu.RUnlock()

	counts := make(map[int]int64)
	for _, m := range r.db.meetingsOf(userID) {
		counts[entities.ISOWeekday(m.Date)]++
	}
	return counts, nil
}
