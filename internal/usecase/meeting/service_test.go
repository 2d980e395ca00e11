package meeting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-tracker/internal/adapter/repository/memory"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	"github.com/johnquangdev/meeting-tracker/internal/domain/repositories"
	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/cache"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/ai"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/cachekey"
	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
)

var fixedNow = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

type stubSummarizer struct {
	result *ai.SummaryResult
	err    error
	calls  int
}

func (s *stubSummarizer) Summarize(ctx context.Context, req ai.SummaryRequest) (*ai.SummaryResult, error) {
	s.calls++
	return s.result, s.err
}

type stubTranscriber struct {
	text string
	err  error
}

func (s stubTranscriber) Transcribe(ctx context.Context, audioURL string) (string, error) {
	return s.text, s.err
}

type recordingArchive struct {
	objects []string
	err     error
}

func (a *recordingArchive) Archive(ctx context.Context, userID string, meetingID uuid.UUID, transcript string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.objects = append(a.objects, transcript)
	return "transcripts/" + userID, nil
}

// countingMeetings counts FindByID reads to observe cache hits
type countingMeetings struct {
	repositories.MeetingRepository
	finds int
	lists int
}

func (c *countingMeetings) FindByID(ctx context.Context, id uuid.UUID, userID string) (*entities.Meeting, error) {
	c.finds++
	return c.MeetingRepository.FindByID(ctx, id, userID)
}

func (c *countingMeetings) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entities.Meeting, int64, error) {
	c.lists++
	return c.MeetingRepository.ListByUser(ctx, userID, limit, offset)
}

type harness struct {
	svc        *MeetingService
	store      *cache.MemoryStore
	meetings   *countingMeetings
	tasks      repositories.TaskRepository
	summarizer *stubSummarizer
}

func newHarness(opts ...Option) harness {
	db := memory.NewDB()
	meetings := &countingMeetings{MeetingRepository: memory.NewMeetingRepository(db)}
	store := cache.NewMemoryStore(nil, time.Minute)
	summarizer := &stubSummarizer{}

	opts = append([]Option{WithClock(func() time.Time { return fixedNow })}, opts...)
	svc := NewMeetingService(meetings, summarizer, cache.NewAside(store, nil), cachekey.NewInvalidator(store, nil), opts...)

	return harness{
		svc:        svc,
		store:      store,
		meetings:   meetings,
		tasks:      memory.NewTaskRepository(db),
		summarizer: summarizer,
	}
}

func (h harness) create(t *testing.T, userID string, date time.Time, participants ...string) *entities.Meeting {
	t.Helper()
	m, err := h.svc.CreateMeeting(context.Background(), CreateMeetingInput{
		UserID:       userID,
		Title:        "Weekly sync",
		Date:         date,
		Participants: participants,
	})
	require.NoError(t, err)
	return m
}

func (h harness) cached(key string) bool {
	var v any
	hit, _ := h.store.Get(context.Background(), key, &v)
	return hit
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
	}{
		{0, 0, 1, 10},
		{-3, 5, 1, 5},
		{2, 500, 2, 100},
		{4, 100, 4, 100},
	}
	for _, tt := range tests {
		p, l := NormalizePage(tt.page, tt.limit)
		assert.Equal(t, tt.wantPage, p)
		assert.Equal(t, tt.wantLimit, l)
	}
}

func TestCreateMeeting_Validation(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	_, err := h.svc.CreateMeeting(ctx, CreateMeetingInput{UserID: "u1", Title: " ", Date: fixedNow, Participants: []string{"a"}})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	_, err = h.svc.CreateMeeting(ctx, CreateMeetingInput{UserID: "u1", Title: "x", Date: fixedNow})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)

	_, err = h.svc.CreateMeeting(ctx, CreateMeetingInput{UserID: "u1", Title: "x", Date: fixedNow, Participants: []string{"ana", "   "}})
	assert.ErrorIs(t, err, usecaseErrors.ErrInvalidInput)
	total, err := h.svc.meetingRepo.CountByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Zero(t, total)

	m := h.create(t, "u1", fixedNow, " ana ")
	assert.Equal(t, []string{"ana"}, []string(m.Participants))
	assert.Equal(t, 1, m.ParticipantCount())
}

func TestListMeetings_CachesPagesAndInvalidatesOnCreate(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	h.create(t, "u1", fixedNow.Add(-time.Hour), "a")
	h.create(t, "u1", fixedNow, "a")

	page, err := h.svc.ListMeetings(ctx, "u1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), page.Total)
	require.Len(t, page.Data, 1)
	assert.True(t, page.Data[0].Date.Equal(fixedNow))

	_, err = h.svc.ListMeetings(ctx, "u1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, h.meetings.lists)

	h.create(t, "u1", fixedNow.Add(time.Hour), "a")
	assert.False(t, h.cached(cachekey.MeetingsPage("u1", 1, 1)))

	page, err = h.svc.ListMeetings(ctx, "u1", 1, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), page.Total)
	assert.Equal(t, 2, h.meetings.lists)
}

func TestGetMeeting(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	m := h.create(t, "u1", fixedNow, "a")

	got, err := h.svc.GetMeeting(ctx, "u1", m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, got.ID)

	_, err = h.svc.GetMeeting(ctx, "u1", m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, h.meetings.finds)

	_, err = h.svc.GetMeeting(ctx, "u2", m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestUpdateTranscript(t *testing.T) {
	archive := &recordingArchive{}
	h := newHarness(WithArchive(archive))
	ctx := context.Background()
	m := h.create(t, "u1", fixedNow, "a")

	_, err := h.svc.GetMeeting(ctx, "u1", m.ID)
	require.NoError(t, err)

	updated, err := h.svc.UpdateTranscript(ctx, "u1", m.ID, "we agreed to ship")
	require.NoError(t, err)
	require.NotNil(t, updated.Transcript)
	assert.Equal(t, "we agreed to ship", *updated.Transcript)
	assert.False(t, h.cached(cachekey.Meeting(m.ID, "u1")))
	assert.Equal(t, []string{"we agreed to ship"}, archive.objects)

	_, err = h.svc.UpdateTranscript(ctx, "u2", m.ID, "x")
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestUpdateTranscript_ArchiveFailureIsIgnored(t *testing.T) {
	h := newHarness(WithArchive(&recordingArchive{err: errors.New("bucket gone")}))
	m := h.create(t, "u1", fixedNow, "a")

	_, err := h.svc.UpdateTranscript(context.Background(), "u1", m.ID, "text")
	assert.NoError(t, err)
}

func TestTranscribeMeeting(t *testing.T) {
	ctx := context.Background()

	h := newHarness()
	m := h.create(t, "u1", fixedNow, "a")
	_, err := h.svc.TranscribeMeeting(ctx, "u1", m.ID, "https://audio")
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptionUnavailable)

	h = newHarness(WithTranscriber(stubTranscriber{err: errors.New("boom")}))
	m = h.create(t, "u1", fixedNow, "a")
	_, err = h.svc.TranscribeMeeting(ctx, "u1", m.ID, "https://audio")
	assert.ErrorIs(t, err, usecaseErrors.ErrTranscriptionFailed)

	h = newHarness(WithTranscriber(stubTranscriber{text: "hello"}))
	m = h.create(t, "u1", fixedNow, "a")
	_, err = h.svc.TranscribeMeeting(ctx, "u2", m.ID, "https://audio")
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)

	updated, err := h.svc.TranscribeMeeting(ctx, "u1", m.ID, "https://audio")
	require.NoError(t, err)
	assert.Equal(t, "hello", *updated.Transcript)
}

func TestSummarizeMeeting_StoresSummaryAndDerivedTasks(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	m := h.create(t, "u1", fixedNow, "a")
	_, err := h.svc.UpdateTranscript(ctx, "u1", m.ID, "long discussion")
	require.NoError(t, err)

	require.NoError(t, h.store.Set(ctx, cachekey.Tasks("u1"), 1, time.Minute))
	require.NoError(t, h.store.Set(ctx, cachekey.Dashboard("u1"), 1, time.Minute))

	h.summarizer.result = &ai.SummaryResult{
		Summary: "Shipped.",
		Tasks: []ai.ActionItem{
			{Title: "Write release notes", Description: "for v2", Status: "completed"},
			{Title: "Tag release"},
		},
	}

	updated, err := h.svc.SummarizeMeeting(ctx, "u1", m.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Summary)
	assert.Equal(t, "Shipped.", *updated.Summary)
	assert.Equal(t, []string{"Write release notes", "Tag release"}, []string(updated.ActionItems))

	tasks, err := h.tasks.ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, entities.TaskStatusPending, task.Status)
		assert.Equal(t, m.ID, *task.MeetingID)
		assert.Equal(t, fixedNow.Add(7*24*time.Hour), *task.DueDate)
	}

	assert.False(t, h.cached(cachekey.Tasks("u1")))
	assert.False(t, h.cached(cachekey.Dashboard("u1")))
	assert.True(t, h.cached(cachekey.Meeting(m.ID, "u1")))
}

func TestSummarizeMeeting_FailureWritesNothing(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	m := h.create(t, "u1", fixedNow, "a")
	_, err := h.svc.UpdateTranscript(ctx, "u1", m.ID, "talk")
	require.NoError(t, err)

	h.summarizer.err = errors.New("model unavailable")

	_, err = h.svc.SummarizeMeeting(ctx, "u1", m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrSummaryFailed)

	got, err := h.meetings.FindByID(ctx, m.ID, "u1")
	require.NoError(t, err)
	assert.Nil(t, got.Summary)
	assert.Empty(t, got.ActionItems)

	tasks, err := h.tasks.ListByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestSummarizeMeeting_RequiresTranscript(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	m := h.create(t, "u1", fixedNow, "a")

	_, err := h.svc.SummarizeMeeting(ctx, "u1", m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNoTranscript)
	assert.Equal(t, 0, h.summarizer.calls)

	_, err = h.svc.SummarizeMeeting(ctx, "u2", m.ID)
	assert.ErrorIs(t, err, usecaseErrors.ErrMeetingNotFound)
}

func TestGetMeetingStats(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	monday := time.Date(2024, 5, 6, 9, 0, 0, 0, time.UTC)

	h.create(t, "u1", monday, "ana", "bo", "cy")
	h.create(t, "u1", monday.Add(24*time.Hour), "ana")
	h.create(t, "u1", monday.Add(7*24*time.Hour), "ana", "bo", "cy", "di")
	h.create(t, "u2", monday, "zed")

	stats, err := h.svc.GetMeetingStats(ctx, "u1")
	require.NoError(t, err)

	assert.Equal(t, entities.GeneralMeetingStats{
		TotalMeetings:       3,
		TotalParticipants:   8,
		AverageParticipants: 2,
		MinParticipants:     1,
		MaxParticipants:     4,
	}, stats.GeneralStats)

	require.NotEmpty(t, stats.TopParticipants)
	assert.Equal(t, entities.ParticipantCount{Participant: "ana", MeetingCount: 3}, stats.TopParticipants[0])
	assert.LessOrEqual(t, len(stats.TopParticipants), entities.TopParticipantsLimit)

	require.Len(t, stats.MeetingsByDayOfWeek, 7)
	assert.Equal(t, int64(2), stats.MeetingsByDayOfWeek[0].Count)
	assert.Equal(t, int64(1), stats.MeetingsByDayOfWeek[1].Count)
	assert.Equal(t, int64(0), stats.MeetingsByDayOfWeek[6].Count)

	assert.True(t, h.cached(cachekey.MeetingStats("u1")))
	h.create(t, "u1", monday, "x")
	assert.False(t, h.cached(cachekey.MeetingStats("u1")))
}

func TestGetMeetingStats_Empty(t *testing.T) {
	h := newHarness()

	stats, err := h.svc.GetMeetingStats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, entities.GeneralMeetingStats{}, stats.GeneralStats)
	assert.Empty(t, stats.TopParticipants)
	assert.Len(t, stats.MeetingsByDayOfWeek, 7)
}
