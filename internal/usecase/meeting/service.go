package meeting

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
	"github.com/johnquangdev/meeting-tracker/internal/usecase/ai"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/cachekey"
	usecaseErrors "github.com/johnquangdev/meeting-tracker/internal/usecase/errors"
	"github.com/johnquangdev/meeting-tracker/internal/usecase/task"
)

const (
	DefaultPage       = 1
	DefaultLimit      = 10
	MaxLimit          = 100
	DefaultCacheTTL   = 300 * time.Second
	DefaultSummaryTTL = 24 * time.Hour
)

// Transcriber converts meeting audio into text
type Transcriber interface {
	Transcribe(ctx context.Context, audioURL string) (string, error)
}

// TranscriptArchiver keeps a copy of every stored transcript
type TranscriptArchiver interface {
	Archive(ctx context.Context, userID string, meetingID uuid.UUID, transcript string) (string, error)
}

// MeetingService handles meeting business logic
type MeetingService struct {
	meetingRepo repositories.MeetingRepository
	summarizer  ai.Summarizer
	transcriber Transcriber
	archive     TranscriptArchiver
	aside       *cache.Aside
	invalidator *cachekey.Invalidator
	ttl         time.Duration
	summaryTTL  time.Duration
	logger      *zap.Logger
	now         func() time.Time
}

// Option configures optional collaborators of MeetingService
type Option func(*MeetingService)

// WithTranscriber enables TranscribeMeeting
func WithTranscriber(t Transcriber) Option {
	return func(s *MeetingService) { s.transcriber = t }
}

// WithArchive copies transcripts to object storage
func WithArchive(a TranscriptArchiver) Option {
	return func(s *MeetingService) { s.archive = a }
}

// WithCacheTTL sets the TTL of meeting lists, single meetings and stats
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *MeetingService) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSummaryTTL sets how long a freshly summarized meeting stays cached
func WithSummaryTTL(ttl time.Duration) Option {
	return func(s *MeetingService) {
		if ttl > 0 {
			s.summaryTTL = ttl
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *MeetingService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *MeetingService) { s.now = now }
}

// NewMeetingService creates a new meeting service
func NewMeetingService(
	meetingRepo repositories.MeetingRepository,
	summarizer ai.Summarizer,
	aside *cache.Aside,
	invalidator *cachekey.Invalidator,
	opts ...Option,
) *MeetingService {
	s := &MeetingService{
		meetingRepo: meetingRepo,
		summarizer:  summarizer,
		aside:       aside,
		invalidator: invalidator,
		ttl:         DefaultCacheTTL,
		summaryTTL:  DefaultSummaryTTL,
		logger:      zap.NewNop(),
		now:         func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.invalidator == nil {
		s.invalidator = cachekey.NewInvalidator(nil, s.logger)
	}
	return s
}

// CreateMeetingInput represents input for creating a meeting
type CreateMeetingInput struct {
	UserID       string
	Title        string
	Date         time.Time
	Participants []string
}

// NormalizePage applies the list defaults and caps the page size
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return page, limit
}

// ListMeetings returns one page of the user's meetings, newest first
func (s *MeetingService) ListMeetings(ctx context.Context, userID string, page, limit int) (*entities.MeetingPage, error) {
	page, limit = NormalizePage(page, limit)
	key := cachekey.MeetingsPage(userID, page, limit)

	return cache.GetOrLoad(ctx, s.aside, key, s.ttl, func(ctx context.Context) (*entities.MeetingPage, error) {
		meetings, total, err := s.meetingRepo.ListByUser(ctx, userID, limit, (page-1)*limit)
		if err != nil {
			return nil, fmt.Errorf("failed to list meetings: %w", err)
		}
		return &entities.MeetingPage{Data: meetings, Total: total, Page: page, Limit: limit}, nil
	}, cache.InFamily(cachekey.MeetingsFamily(userID)))
}

// GetMeeting retrieves one meeting of the user
func (s *MeetingService) GetMeeting(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, error) {
	return cache.GetOrLoad(ctx, s.aside, cachekey.Meeting(id, userID), s.ttl, func(ctx context.Context) (*entities.Meeting, error) {
		return s.findMeeting(ctx, userID, id)
	})
}

// CreateMeeting stores a new meeting for the user
func (s *MeetingService) CreateMeeting(ctx context.Context, input CreateMeetingInput) (*entities.Meeting, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" || input.Date.IsZero() || len(input.Participants) == 0 {
		return nil, usecaseErrors.ErrInvalidInput
	}

	participants := make([]string, 0, len(input.Participants))
	for _, p := range input.Participants {
		p = strings.TrimSpace(p)
		if p == "" {
			return nil, fmt.Errorf("%w: blank participant name", usecaseErrors.ErrInvalidInput)
		}
		participants = append(participants, p)
	}

	m := entities.NewMeeting(input.UserID, title, input.Date, participants)
	if err := s.meetingRepo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create meeting: %w", err)
	}

	s.invalidator.MeetingCreated(ctx, input.UserID)

	s.logger.Info("meeting.created",
		zap.String("user_id", input.UserID),
		zap.String("meeting_id", m.ID.String()),
		zap.Int("participants", len(participants)),
	)
	return m, nil
}

// UpdateTranscript attaches a transcript to the meeting, replacing any previous one
func (s *MeetingService) UpdateTranscript(ctx context.Context, userID string, id uuid.UUID, transcript string) (*entities.Meeting, error) {
	transcript = strings.TrimSpace(transcript)
	if transcript == "" {
		return nil, usecaseErrors.ErrInvalidInput
	}

	m, err := s.meetingRepo.UpdateTranscript(ctx, id, userID, transcript)
	if err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to update transcript: %w", err)
	}

	s.invalidator.MeetingUpdated(ctx, userID, id)
	s.archiveTranscript(ctx, userID, id, transcript)
	return m, nil
}

// TranscribeMeeting transcribes the audio at audioURL and stores the result as the meeting transcript
func (s *MeetingService) TranscribeMeeting(ctx context.Context, userID string, id uuid.UUID, audioURL string) (*entities.Meeting, error) {
	if s.transcriber == nil {
		return nil, usecaseErrors.ErrTranscriptionUnavailable
	}
	if _, err := s.findMeeting(ctx, userID, id); err != nil {
		return nil, err
	}

	text, err := s.transcriber.Transcribe(ctx, audioURL)
	if err != nil {
		s.logger.Error("ai.transcribe.failed",
			zap.String("meeting_id", id.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrTranscriptionFailed, err)
	}

	return s.UpdateTranscript(ctx, userID, id, text)
}

// SummarizeMeeting generates a summary and action items from the transcript and
// stores them together with one derived task per action item. Nothing is written
// when the summarizer fails.
func (s *MeetingService) SummarizeMeeting(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, error) {
	m, err := s.findMeeting(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !m.HasTranscript() {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrMeetingNotFound, usecaseErrors.ErrMeetingNoTranscript)
	}
	if s.summarizer == nil {
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrSummaryFailed, ai.ErrNotConfigured)
	}

	result, err := s.summarizer.Summarize(ctx, ai.SummaryRequest{Title: m.Title, Transcript: *m.Transcript})
	if err != nil {
		s.logger.Error("ai.summarize.failed",
			zap.String("user_id", userID),
			zap.String("meeting_id", id.String()),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %w", usecaseErrors.ErrSummaryFailed, err)
	}

	items := make([]task.ActionItem, 0, len(result.Tasks))
	for _, t := range result.Tasks {
		items = append(items, task.ActionItem{Title: t.Title, Description: t.Description})
	}
	tasks := task.BuildTasksFromActionItems(userID, id, items, s.now())

	actionItems := make([]string, 0, len(tasks))
	for _, t := range tasks {
		actionItems = append(actionItems, t.Title)
	}

	updated, err := s.meetingRepo.SaveSummary(ctx, id, userID, result.Summary, actionItems, tasks)
	if err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to save summary: %w", err)
	}

	s.invalidator.MeetingSummarized(ctx, userID, id)
	s.aside.Put(ctx, cachekey.Meeting(id, userID), updated, s.summaryTTL)

	s.logger.Info("ai.summarize.completed",
		zap.String("meeting_id", id.String()),
		zap.Int("tasks", len(tasks)),
	)
	return updated, nil
}

// GetMeetingStats computes participant totals, the top participants and the
// weekday histogram of the user's meetings
func (s *MeetingService) GetMeetingStats(ctx context.Context, userID string) (*entities.MeetingStats, error) {
	return cache.GetOrLoad(ctx, s.aside, cachekey.MeetingStats(userID), s.ttl, func(ctx context.Context) (*entities.MeetingStats, error) {
		return s.computeStats(ctx, userID)
	})
}

func (s *MeetingService) computeStats(ctx context.Context, userID string) (*entities.MeetingStats, error) {
	var (
		total    int64
		counts   []int
		top      []entities.ParticipantCount
		weekdays map[int]int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.meetingRepo.CountByUser(gctx, userID)
		if err != nil {
			return fmt.Errorf("count meetings: %w", err)
		}
		total = n
		return nil
	})
	g.Go(func() error {
		c, err := s.meetingRepo.ParticipantCounts(gctx, userID)
		if err != nil {
			return fmt.Errorf("participant counts: %w", err)
		}
		counts = c
		return nil
	})
	g.Go(func() error {
		p, err := s.meetingRepo.TopParticipants(gctx, userID, entities.TopParticipantsLimit)
		if err != nil {
			return fmt.Errorf("top participants: %w", err)
		}
		top = p
		return nil
	})
	g.Go(func() error {
		w, err := s.meetingRepo.CountByWeekday(gctx, userID)
		if err != nil {
			return fmt.Errorf("count by weekday: %w", err)
		}
		weekdays = w
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get meeting stats: %w", err)
	}

	general := entities.NewGeneralMeetingStats(counts)
	general.TotalMeetings = total
	if top == nil {
		top = []entities.ParticipantCount{}
	}

	return &entities.MeetingStats{
		GeneralStats:        general,
		TopParticipants:     top,
		MeetingsByDayOfWeek: entities.NewWeekdayHistogram(weekdays),
	}, nil
}

func (s *MeetingService) findMeeting(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, error) {
	m, err := s.meetingRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, entities.ErrRecordNotFound) {
			return nil, usecaseErrors.ErrMeetingNotFound
		}
		return nil, fmt.Errorf("failed to get meeting: %w", err)
	}
	return m, nil
}

func (s *MeetingService) archiveTranscript(ctx context.Context, userID string, id uuid.UUID, transcript string) {
	if s.archive == nil {
		return
	}
	object, err := s.archive.Archive(ctx, userID, id, transcript)
	if err != nil {
		s.logger.Warn("transcript.archive.failed",
			zap.String("meeting_id", id.String()),
			zap.Error(err),
		)
		return
	}
	s.logger.Debug("transcript.archived", zap.String("object", object))
}
