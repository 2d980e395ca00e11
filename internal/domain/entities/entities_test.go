package entities

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewTaskSummary_ZeroFillsMissingStatuses(t *testing.T) {
	s := NewTaskSummary(map[TaskStatus]int64{TaskStatusInProgress: 2})

	assert.Equal(t, TaskSummary{Pending: 0, InProgress: 2, Completed: 0}, s)
	assert.Equal(t, int64(2), s.Total())
}

func TestNewTaskSummary_IgnoresUnknownStatus(t *testing.T) {
	s := NewTaskSummary(map[TaskStatus]int64{
		TaskStatusPending:   3,
		TaskStatusCompleted: 1,
		"archived":          9,
	})

	assert.Equal(t, TaskSummary{Pending: 3, Completed: 1}, s)
}

func TestTaskStatus_IsValid(t *testing.T) {
	assert.True(t, TaskStatusPending.IsValid())
	assert.True(t, TaskStatusInProgress.IsValid())
	assert.True(t, TaskStatusCompleted.IsValid())
	assert.False(t, TaskStatus("in_progress").IsValid())
	assert.False(t, TaskStatus("").IsValid())
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	yesterday := now.Add(-24 * time.Hour)
	tomorrow := now.Add(24 * time.Hour)

	tests := []struct {
		name   string
		status TaskStatus
		due    *time.Time
		want   bool
	}{
		{"pending past due", TaskStatusPending, &yesterday, true},
		{"in progress past due", TaskStatusInProgress, &yesterday, true},
		{"completed past due", TaskStatusCompleted, &yesterday, false},
		{"pending future", TaskStatusPending, &tomorrow, false},
		{"no due date", TaskStatusPending, nil, false},
		{"due exactly now", TaskStatusPending, &now, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Status: tt.status, DueDate: tt.due}
			assert.Equal(t, tt.want, task.IsOverdue(now))
		})
	}
}

func TestNewWeekdayHistogram_AlwaysSevenSlots(t *testing.T) {
	h := NewWeekdayHistogram(map[int]int64{1: 2, 7: 1})

	assert.Len(t, h, 7)
	for i, slot := range h {
		assert.Equal(t, i+1, slot.DayOfWeek)
	}
	assert.Equal(t, int64(2), h[0].Count)
	assert.Equal(t, int64(0), h[3].Count)
	assert.Equal(t, int64(1), h[6].Count)
}

func TestISOWeekday(t *testing.T) {
	monday := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 5, 12, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 1, ISOWeekday(monday))
	assert.Equal(t, 7, ISOWeekday(sunday))
}

func TestNewGeneralMeetingStats(t *testing.T) {
	stats := NewGeneralMeetingStats([]int{3, 1, 4})

	assert.Equal(t, GeneralMeetingStats{
		TotalMeetings:       3,
		TotalParticipants:   8,
		AverageParticipants: 2,
		MinParticipants:     1,
		MaxParticipants:     4,
	}, stats)

	assert.Equal(t, GeneralMeetingStats{}, NewGeneralMeetingStats(nil))
}

func TestTopParticipants_CountsMeetingsNotMentions(t *testing.T) {
	meetings := []*Meeting{
		{Participants: []string{"ana", "bo", "ana"}},
		{Participants: []string{"ana", "cy"}},
		{Participants: []string{"bo", "ana"}},
	}

	top := TopParticipants(meetings, 2)

	assert.Len(t, top, 2)
	assert.Equal(t, ParticipantCount{Participant: "ana", MeetingCount: 3}, top[0])
	assert.Equal(t, ParticipantCount{Participant: "bo", MeetingCount: 2}, top[1])
}

func TestMeeting_ToUpcoming(t *testing.T) {
	date := time.Date(2024, 5, 11, 9, 0, 0, 0, time.FixedZone("x", 3600))
	m := NewMeeting("u1", "Planning", date, []string{"a", "b", "c"})

	up := m.ToUpcoming()

	assert.Equal(t, m.ID, up.ID)
	assert.Equal(t, 3, up.ParticipantCount)
	assert.Equal(t, time.UTC, up.Date.Location())
	assert.True(t, up.Date.Equal(date))
}

func TestMeeting_CloneIsDeep(t *testing.T) {
	transcript := "hello"
	m := NewMeeting("u1", "Sync", time.Now(), []string{"a"})
	m.Transcript = &transcript

	c := m.Clone()
	c.Participants[0] = "z"
	*c.Transcript = "changed"

	assert.Equal(t, "a", m.Participants[0])
	assert.Equal(t, "hello", *m.Transcript)
}

func TestTask_CloneIsDeep(t *testing.T) {
	meetingID := uuid.New()
	due := time.Now().UTC()
	task := NewTask("u1", &meetingID, "Write notes")
	task.DueDate = &due

	c := task.Clone()
	*c.MeetingID = uuid.New()
	*c.DueDate = due.Add(time.Hour)

	assert.Equal(t, meetingID, *task.MeetingID)
	assert.Equal(t, due, *task.DueDate)
}
