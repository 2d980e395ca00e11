package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-tracker/errors"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/dto"
	meetingdto "github.com/johnquangdev/meeting-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/presenter"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/meeting-tracker/internal/usecase/meeting"
)

// MeetingService is the meeting use case consumed by the handler
type MeetingService interface {
	ListMeetings(ctx context.Context, userID string, page, limit int) (*entities.MeetingPage, error)
	GetMeeting(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, error)
	CreateMeeting(ctx context.Context, input meetingUsecase.CreateMeetingInput) (*entities.Meeting, error)
	UpdateTranscript(ctx context.Context, userID string, id uuid.UUID, transcript string) (*entities.Meeting, error)
	TranscribeMeeting(ctx context.Context, userID string, id uuid.UUID, audioURL string) (*entities.Meeting, error)
	SummarizeMeeting(ctx context.Context, userID string, id uuid.UUID) (*entities.Meeting, error)
	GetMeetingStats(ctx context.Context, userID string) (*entities.MeetingStats, error)
}

// Meeting handles meeting HTTP requests
type Meeting struct {
	service MeetingService
	logger  *zap.Logger
}

// NewMeetingHandler creates a new meeting handler
func NewMeetingHandler(service MeetingService, logger *zap.Logger) *Meeting {
	return &Meeting{service: service, logger: logger}
}

// ListMeetings handles GET /meetings
// @Summary      List meetings
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page (default 1)"
// @Param        limit  query     int  false  "Page size (default 10, max 100)"
// @Success      200    {object}  meetingdto.MeetingListResponse
// @Router       /meetings [get]
func (h *Meeting) ListMeetings(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	page, err := h.service.ListMeetings(c.Request().Context(), userID, req.Page, req.Limit)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(page))
}

// GetMeeting handles GET /meetings/:id
// @Summary      Get meeting
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meetingdto.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /meetings/{id} [get]
func (h *Meeting) GetMeeting(c echo.Context) error {
	userID, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.GetMeeting(c.Request().Context(), userID, id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, id.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// CreateMeeting handles POST /meetings
// @Summary      Create meeting
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      meetingdto.CreateMeetingRequest  true  "Meeting"
// @Success      201      {object}  meetingdto.MeetingResponse
// @Failure      400      {object}  map[string]interface{}
// @Router       /meetings [post]
func (h *Meeting) CreateMeeting(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.CreateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	date, err := dto.ParseDate(req.Date)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("date must be a valid date"))
	}

	m, err := h.service.CreateMeeting(c.Request().Context(), meetingUsecase.CreateMeetingInput{
		UserID:       userID,
		Title:        req.Title,
		Date:         date,
		Participants: req.Participants,
	})
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleCreated(h.logger, c, presenter.ToMeetingResponse(m))
}

// UpdateTranscript handles PUT /meetings/:id/transcript
// @Summary      Attach transcript
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                              true  "Meeting ID (UUID)"
// @Param        request  body      meetingdto.UpdateTranscriptRequest  true  "Transcript"
// @Success      200      {object}  meetingdto.MeetingResponse
// @Router       /meetings/{id}/transcript [put]
func (h *Meeting) UpdateTranscript(c echo.Context) error {
	userID, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.UpdateTranscriptRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.UpdateTranscript(c.Request().Context(), userID, id, req.Transcript)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, id.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// TranscribeMeeting handles POST /meetings/:id/transcribe
// @Summary      Transcribe meeting audio
// @Tags         Meetings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                               true  "Meeting ID (UUID)"
// @Param        request  body      meetingdto.TranscribeMeetingRequest  true  "Audio location"
// @Success      200      {object}  meetingdto.MeetingResponse
// @Failure      503      {object}  map[string]interface{}  "Transcription not configured"
// @Router       /meetings/{id}/transcribe [post]
func (h *Meeting) TranscribeMeeting(c echo.Context) error {
	userID, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	var req meetingdto.TranscribeMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.TranscribeMeeting(c.Request().Context(), userID, id, req.AudioURL)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, id.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// SummarizeMeeting handles POST /meetings/:id/summarize
// @Summary      Summarize meeting
// @Description  Generates a summary and action items from the transcript and creates one task per action item
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meetingdto.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found or has no transcript"
// @Failure      500  {object}  map[string]interface{}  "Failed to generate meeting summary"
// @Router       /meetings/{id}/summarize [post]
func (h *Meeting) SummarizeMeeting(c echo.Context) error {
	userID, id, err := h.target(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.service.SummarizeMeeting(c.Request().Context(), userID, id)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, id.String()))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m))
}

// GetMeetingStats handles GET /meetings/stats
// @Summary      Meeting statistics
// @Tags         Meetings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entities.MeetingStats
// @Router       /meetings/stats [get]
func (h *Meeting) GetMeetingStats(c echo.Context) error {
	userID, err := currentUser(c)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	stats, err := h.service.GetMeetingStats(c.Request().Context(), userID)
	if err != nil {
		return HandleError(h.logger, c, toAppError(err, ""))
	}

	return HandleSuccess(h.logger, c, stats)
}

func (h *Meeting) target(c echo.Context) (string, uuid.UUID, error) {
	userID, err := currentUser(c)
	if err != nil {
		return "", uuid.Nil, err
	}
	id, err := pathUUID(c, "id")
	if err != nil {
		return "", uuid.Nil, err
	}
	return userID, id, nil
}
