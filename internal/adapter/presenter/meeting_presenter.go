package presenter

import (
	"github.com/johnquangdev/meeting-tracker/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-tracker/internal/adapter/dto/meeting"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// ToMeetingResponse converts a Meeting entity to MeetingResponse DTO
func ToMeetingResponse(m *entities.Meeting) *meeting.MeetingResponse {
	if m == nil {
		return nil
	}

	participants := append([]string{}, m.Participants...)
	actionItems := append([]string{}, m.ActionItems...)

	return &meeting.MeetingResponse{
		ID:           m.ID.String(),
		Title:        m.Title,
		Date:         m.Date.UTC(),
		Participants: participants,
		Transcript:   m.Transcript,
		Summary:      m.Summary,
		ActionItems:  actionItems,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// ToMeetingListResponse converts a page of meetings
func ToMeetingListResponse(page *entities.MeetingPage) *meeting.MeetingListResponse {
	meetings := make([]*meeting.MeetingResponse, len(page.Data))
	for i, m := range page.Data {
		meetings[i] = ToMeetingResponse(m)
	}

	return &meeting.MeetingListResponse{
		Meetings:   meetings,
		Pagination: common.NewPagination(page.Page, page.Limit, page.Total),
	}
}
