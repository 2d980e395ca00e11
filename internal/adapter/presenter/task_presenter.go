package presenter

import (
	"github.com/johnquangdev/meeting-tracker/internal/adapter/dto/task"
	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// ToTaskResponse converts a Task entity to TaskResponse DTO
func ToTaskResponse(t *entities.Task) *task.TaskResponse {
	if t == nil {
		return nil
	}

	response := &task.TaskResponse{
		ID:          t.ID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		DueDate:     t.DueDate,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}

	if t.MeetingID != nil {
		id := t.MeetingID.String()
		response.MeetingID = &id
	}

	return response
}

// ToTaskListResponse converts a slice of Task entities
func ToTaskListResponse(tasks []*entities.Task) []*task.TaskResponse {
	out := make([]*task.TaskResponse, len(tasks))
	for i, t := range tasks {
		out[i] = ToTaskResponse(t)
	}
	return out
}
