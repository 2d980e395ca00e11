package task

import "time"

// TaskResponse represents a task in API responses
type TaskResponse struct {
	ID          string     `json:"id"`
	MeetingID   *string    `json:"meetingId,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Status      string     `json:"status"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}
