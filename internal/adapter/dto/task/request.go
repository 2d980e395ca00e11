package task

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	MeetingID   *string `json:"meetingId,omitempty" validate:"omitempty,uuid"`
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	Status      string  `json:"status,omitempty"`
	DueDate     *string `json:"dueDate,omitempty"`
}

// UpdateTaskStatusRequest represents the request to move a task to another status
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
