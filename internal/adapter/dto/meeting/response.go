package meeting

import (
	"time"

	"github.com/johnquangdev/meeting-tracker/internal/adapter/dto/common"
)

// MeetingResponse represents a meeting in API responses
type MeetingResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Date         time.Time `json:"date"`
	Participants []string  `json:"participants"`
	Transcript   *string   `json:"transcript,omitempty"`
	Summary      *string   `json:"summary,omitempty"`
	ActionItems  []string  `json:"actionItems"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// MeetingListResponse represents one page of meetings
type MeetingListResponse struct {
	Meetings   []*MeetingResponse        `json:"meetings"`
	Pagination common.PaginationResponse `json:"pagination"`
}
