package errors

import "errors"

// ErrInvalidInput is returned for input the handlers cannot fully validate
var ErrInvalidInput = errors.New("invalid input")

// Meeting errors
var (
	ErrMeetingNotFound     = errors.New("meeting not found")
	ErrMeetingNoTranscript = errors.New("meeting has no transcript")
)

// Task errors
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidTaskStatus = errors.New("invalid task status")
)

// Dashboard errors
var (
	ErrDashboardFetchFailed = errors.New("failed to fetch dashboard data")
)

// AI errors
var (
	ErrSummaryFailed            = errors.New("failed to generate meeting summary")
	ErrTranscriptionUnavailable = errors.New("transcription is not configured")
	ErrTranscriptionFailed      = errors.New("failed to transcribe meeting audio")
)
