package memory

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func at(d time.Duration) time.Time { return now.Add(d) }

func ptr[T any](v T) *T { return &v }

type fixture struct {
	db       *DB
	meetings *meetingRepository
	tasks    *taskRepository
}

func newFixture() fixture {
	db := NewDB()
	return fixture{
		db:       db,
		meetings: NewMeetingRepository(db).(*meetingRepository),
		tasks:    NewTaskRepository(db).(*taskRepository),
	}
}

func (f fixture) meeting(t *testing.T, userID, title string, date time.Time, participants ...string) *entities.Meeting {
	t.Helper()
	m := entities.NewMeeting(userID, title, date, participants)
	require.NoError(t, f.meetings.Create(context.Background(), m))
	return m
}

func (f fixture) task(t *testing.T, userID string, meetingID *uuid.UUID, title string, status entities.TaskStatus, due *time.Time) *entities.Task {
	t.Helper()
	task := entities.NewTask(userID, meetingID, title)
	task.Status = status
	task.DueDate = due
	require.NoError(t, f.tasks.Create(context.Background(), task))
	return task
}

func TestMeetingRepository_OwnerScoping(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	m := f.meeting(t, "u1", "Sync", at(time.Hour), "a")

	got, err := f.meetings.FindByID(ctx, m.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Sync", got.Title)

	_, err = f.meetings.FindByID(ctx, m.ID, "u2")
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)

	_, err = f.meetings.UpdateTranscript(ctx, m.ID, "u2", "hijack")
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)
}

func TestMeetingRepository_ListByUser_Paginates(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	for i := 0; i < 5; i++ {
		f.meeting(t, "u1", "m", at(time.Duration(i)*time.Hour))
	}
	f.meeting(t, "u2", "other", now)

	page, total, err := f.meetings.ListByUser(ctx, "u1", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 2)
	assert.True(t, page[0].Date.After(page[1].Date))

	page, total, err = f.meetings.ListByUser(ctx, "u1", 10, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Empty(t, page)
}

func TestMeetingRepository_FindUpcoming(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.meeting(t, "u1", "past", at(-time.Hour), "a")
	for i := 7; i >= 1; i-- {
		f.meeting(t, "u1", "future", at(time.Duration(i)*time.Hour), "a", "b")
	}

	up, err := f.meetings.FindUpcoming(ctx, "u1", now, entities.DashboardUpcomingLimit)
	require.NoError(t, err)

	require.Len(t, up, 5)
	for i := 1; i < len(up); i++ {
		assert.False(t, up[i].Date.Before(up[i-1].Date))
	}
	assert.True(t, up[0].Date.Equal(at(time.Hour)))
	assert.Equal(t, 2, up[0].ParticipantCount)
}

func TestMeetingRepository_FindUpcoming_IncludesNow(t *testing.T) {
	f := newFixture()
	f.meeting(t, "u1", "starting", now)

	up, err := f.meetings.FindUpcoming(context.Background(), "u1", now, 5)
	require.NoError(t, err)
	assert.Len(t, up, 1)
}

func TestMeetingRepository_FindUpcoming_EqualDatesOrderedByID(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	var ids []string
	for i := 0; i < 6; i++ {
		ids = append(ids, f.meeting(t, "u1", "standup", at(time.Hour)).ID.String())
	}
	sort.Strings(ids)

	up, err := f.meetings.FindUpcoming(ctx, "u1", now, entities.DashboardUpcomingLimit)
	require.NoError(t, err)
	require.Len(t, up, entities.DashboardUpcomingLimit)
	for i, m := range up {
		assert.Equal(t, ids[i], m.ID.String())
	}

	again, err := f.meetings.FindUpcoming(ctx, "u1", now, entities.DashboardUpcomingLimit)
	require.NoError(t, err)
	assert.Equal(t, up, again)
}

func TestMeetingRepository_SaveSummary_IsAtomic(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	m := f.meeting(t, "u1", "Retro", at(-time.Hour))

	due := now.Add(entities.DerivedTaskDueIn)
	derived := []*entities.Task{
		entities.NewTask("u1", &m.ID, "Fix CI"),
		entities.NewTask("u1", &m.ID, "Write doc"),
	}
	for _, d := range derived {
		d.DueDate = &due
	}

	updated, err := f.meetings.SaveSummary(ctx, m.ID, "u1", "We met.", []string{"Fix CI", "Write doc"}, derived)
	require.NoError(t, err)
	assert.Equal(t, "We met.", *updated.Summary)
	assert.Equal(t, []string{"Fix CI", "Write doc"}, []string(updated.ActionItems))

	tasks, err := f.tasks.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	_, err = f.meetings.SaveSummary(ctx, m.ID, "u2", "nope", nil, []*entities.Task{entities.NewTask("u2", &m.ID, "x")})
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)
	tasks, err = f.tasks.ListByUser(ctx, "u2")
	require.NoError(t, err)
	assert.Empty(t, tasks, "no task is written when the meeting update fails")
}

func TestMeetingRepository_Stats(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	monday := time.Date(2024, 5, 6, 10, 0, 0, 0, time.UTC)
	f.meeting(t, "u1", "a", monday, "ana", "bo")
	f.meeting(t, "u1", "b", monday.Add(24*time.Hour), "ana")
	f.meeting(t, "u1", "c", monday.Add(7*24*time.Hour), "ana", "bo", "cy")

	counts, err := f.meetings.ParticipantCounts(ctx, "u1")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2, 1, 3}, counts)

	top, err := f.meetings.TopParticipants(ctx, "u1", 2)
	require.NoError(t, err)
	assert.Equal(t, []entities.ParticipantCount{
		{Participant: "ana", MeetingCount: 3},
		{Participant: "bo", MeetingCount: 2},
	}, top)

	byDay, err := f.meetings.CountByWeekday(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, map[int]int64{1: 2, 2: 1}, byDay)
}

func TestTaskRepository_CountByStatus_ZeroFilled(t *testing.T) {
	f := newFixture()
	f.task(t, "u1", nil, "a", entities.TaskStatusInProgress, nil)
	f.task(t, "u1", nil, "b", entities.TaskStatusInProgress, nil)
	f.task(t, "u2", nil, "c", entities.TaskStatusPending, nil)

	summary, err := f.tasks.CountByStatus(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, entities.TaskSummary{Pending: 0, InProgress: 2, Completed: 0}, summary)
}

func TestTaskRepository_FindOverdue(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	m := f.meeting(t, "u1", "Planning", at(-48*time.Hour))
	foreign := f.meeting(t, "u2", "Other", at(-48*time.Hour))
	dangling := uuid.New()

	late := f.task(t, "u1", &m.ID, "late", entities.TaskStatusPending, ptr(at(-2*time.Hour)))
	later := f.task(t, "u1", nil, "later", entities.TaskStatusInProgress, ptr(at(-time.Hour)))
	lost := f.task(t, "u1", &dangling, "lost", entities.TaskStatusPending, ptr(at(-3*time.Hour)))
	cross := f.task(t, "u1", &foreign.ID, "cross", entities.TaskStatusPending, ptr(at(-30*time.Minute)))
	f.task(t, "u1", nil, "done", entities.TaskStatusCompleted, ptr(at(-5*time.Hour)))
	f.task(t, "u1", nil, "future", entities.TaskStatusPending, ptr(at(time.Hour)))
	f.task(t, "u1", nil, "undated", entities.TaskStatusPending, nil)

	overdue, err := f.tasks.FindOverdue(ctx, "u1", now)
	require.NoError(t, err)
	require.Len(t, overdue, 4)

	assert.Equal(t, []uuid.UUID{lost.ID, late.ID, later.ID, cross.ID},
		[]uuid.UUID{overdue[0].ID, overdue[1].ID, overdue[2].ID, overdue[3].ID})

	assert.Nil(t, overdue[0].MeetingTitle, "dangling meeting reference omits the title")
	require.NotNil(t, overdue[1].MeetingTitle)
	assert.Equal(t, "Planning", *overdue[1].MeetingTitle)
	assert.Nil(t, overdue[2].MeetingID)
	assert.Nil(t, overdue[3].MeetingTitle, "a meeting of another user never resolves")

	n, err := f.tasks.CountOverdue(ctx, "u1", now)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
}

func TestTaskRepository_UpdateStatus_Permissive(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	task := f.task(t, "u1", nil, "a", entities.TaskStatusCompleted, nil)

	updated, err := f.tasks.UpdateStatus(ctx, task.ID, "u1", entities.TaskStatusPending)
	require.NoError(t, err)
	assert.Equal(t, entities.TaskStatusPending, updated.Status)

	_, err = f.tasks.UpdateStatus(ctx, task.ID, "u1", "archived")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	_, err = f.tasks.UpdateStatus(ctx, task.ID, "u2", entities.TaskStatusCompleted)
	assert.ErrorIs(t, err, entities.ErrRecordNotFound)
}

func TestTaskRepository_ReturnsCopies(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	task := f.task(t, "u1", nil, "original", entities.TaskStatusPending, nil)

	got, err := f.tasks.FindByID(ctx, task.ID, "u1")
	require.NoError(t, err)
	got.Title = "mutated"

	again, err := f.tasks.FindByID(ctx, task.ID, "u1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Title)
}
