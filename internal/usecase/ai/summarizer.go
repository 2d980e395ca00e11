package ai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	pkgai "github.com/johnquangdev/meeting-tracker/pkg/ai"
)

// SummaryRequest is what the model sees of a meeting
type SummaryRequest struct {
	Title      string
	Transcript string
}

// ActionItem is one task proposed by the model
type ActionItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
	DueDate     string `json:"dueDate,omitempty"`
}

// SummaryResult is the parsed model answer
type SummaryResult struct {
	Summary string       `json:"summary"`
	Tasks   []ActionItem `json:"tasks"`
}

// Summarizer produces a summary and action items from a transcript
type Summarizer interface {
	Summarize(ctx context.Context, req SummaryRequest) (*SummaryResult, error)
}

// ChatCompleter is the subset of the Groq client the summarizer needs
type ChatCompleter interface {
	CompleteJSON(ctx context.Context, messages []pkgai.Message) (string, error)
}

// ErrNotConfigured is returned when no model client is available
var ErrNotConfigured = errors.New("summarizer not configured")

const systemPrompt = `You are a helpful assistant that summarizes meetings and extracts action items.
Respond with a single JSON object of the form {"summary": string, "tasks": [{"title": string, "description": string, "status": string, "dueDate": string}]}.
The summary must be easily readable text with the key points discussed, in 2-3 sentences.
Every task must be a specific, actionable item with a short title (under 200 characters) and a description.
Use one of the statuses "pending", "in-progress", "completed" based on the discussion, or "pending" when none is given.`

// GroqSummarizer asks a chat model for a JSON summary, retrying transient failures
type GroqSummarizer struct {
	client     ChatCompleter
	parser     *Parser
	logger     *zap.Logger
	maxRetries uint64
	initial    time.Duration
}

// NewGroqSummarizer creates a summarizer on client. A nil client yields ErrNotConfigured.
func NewGroqSummarizer(client ChatCompleter, maxRetries uint64, logger *zap.Logger) *GroqSummarizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GroqSummarizer{
		client:     client,
		parser:     NewParser(),
		logger:     logger,
		maxRetries: maxRetries,
		initial:    500 * time.Millisecond,
	}
}

// Summarize implements Summarizer
func (s *GroqSummarizer) Summarize(ctx context.Context, req SummaryRequest) (*SummaryResult, error) {
	if s.client == nil {
		return nil, ErrNotConfigured
	}

	messages := []pkgai.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: fmt.Sprintf(
			"Please analyze this meeting transcript and provide:\n1. A brief summary of the key points discussed\n2. A list of specific action items that need to be completed\n\nMeeting Title: %s\nTranscript:\n%s",
			req.Title, req.Transcript,
		)},
	}

	var result *SummaryResult
	attempt := 0
	op := func() error {
		attempt++
		content, err := s.client.CompleteJSON(ctx, messages)
		if err != nil {
			var statusErr *pkgai.StatusError
			if errors.As(err, &statusErr) && !statusErr.Temporary() {
				return backoff.Permanent(err)
			}
			s.logger.Warn("ai.summarize.retry", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}

		parsed, err := s.parser.ParseSummary(content)
		if err != nil {
			// a malformed answer is retried like a transient failure
			s.logger.Warn("ai.summarize.unparsable", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}

		result = parsed
		return nil
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = s.initial
	bo.MaxInterval = 5 * time.Second
	bo.MaxElapsedTime = 0

	if err := backoff.Retry(op, backoff.WithContext(backoff.WithMaxRetries(bo, s.maxRetries), ctx)); err != nil {
		s.logger.Error("ai.summarize.failed", zap.Int("attempts", attempt), zap.Error(err))
		return nil, err
	}

	s.logger.Info("ai.summarize.done",
		zap.Int("attempts", attempt),
		zap.Int("tasks", len(result.Tasks)),
	)
	return result, nil
}
