package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Meeting represents a meeting owned by a single user
type Meeting struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID       string                      `gorm:"type:varchar(255);not null;index" json:"userId"`
	Title        string                      `gorm:"type:varchar(200);not null" json:"title"`
	Date         time.Time                   `gorm:"not null;index" json:"date"`
	Participants datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" json:"participants"`
	Transcript   *string                     `gorm:"type:text" json:"transcript,omitempty"`
	Summary      *string                     `gorm:"type:text" json:"summary,omitempty"`
	ActionItems  datatypes.JSONSlice[string] `gorm:"type:jsonb;not null;default:'[]'" json:"actionItems"`
	CreatedAt    time.Time                   `gorm:"default:now()" json:"createdAt"`
	UpdatedAt    time.Time                   `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for Meeting
func (Meeting) TableName() string {
	return "meetings"
}

// NewMeeting builds a meeting with a fresh id
func NewMeeting(userID, title string, date time.Time, participants []string) *Meeting {
	now := time.Now().UTC()
	if participants == nil {
		participants = []string{}
	}
	return &Meeting{
		ID:           uuid.New(),
		UserID:       userID,
		Title:        title,
		Date:         date.UTC(),
		Participants: participants,
		ActionItems:  []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// ParticipantCount is derived from the participants list
func (m *Meeting) ParticipantCount() int {
	return len(m.Participants)
}

// HasTranscript reports whether a non-empty transcript is attached
func (m *Meeting) HasTranscript() bool {
	return m.Transcript != nil && *m.Transcript != ""
}

// Normalize moves every timestamp to UTC
func (m *Meeting) Normalize() {
	m.Date = m.Date.UTC()
	m.CreatedAt = m.CreatedAt.UTC()
	m.UpdatedAt = m.UpdatedAt.UTC()
	if m.Participants == nil {
		m.Participants = []string{}
	}
	if m.ActionItems == nil {
		m.ActionItems = []string{}
	}
}

// AfterFind normalizes rows loaded by GORM
func (m *Meeting) AfterFind(tx *gorm.DB) error {
	m.Normalize()
	return nil
}

// Clone returns a deep copy of the meeting
func (m *Meeting) Clone() *Meeting {
	if m == nil {
		return nil
	}
	c := *m
	c.Participants = append(datatypes.JSONSlice[string]{}, m.Participants...)
	c.ActionItems = append(datatypes.JSONSlice[string]{}, m.ActionItems...)
	if m.Transcript != nil {
		t := *m.Transcript
		c.Transcript = &t
	}
	if m.Summary != nil {
		s := *m.Summary
		c.Summary = &s
	}
	return &c
}

// UpcomingMeeting is the reduced projection shown on the dashboard
type UpcomingMeeting struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Date             time.Time `json:"date"`
	ParticipantCount int       `json:"participantCount"`
}

// ToUpcoming projects a meeting to its dashboard shape
func (m *Meeting) ToUpcoming() UpcomingMeeting {
	return UpcomingMeeting{
		ID:               m.ID,
		Title:            m.Title,
		Date:             m.Date.UTC(),
		ParticipantCount: m.ParticipantCount(),
	}
}

// MeetingPage is one offset/limit page of a user's meetings
type MeetingPage struct {
	Data  []*Meeting `json:"data"`
	Total int64      `json:"total"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
}
