package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// DerivedTaskDueIn is the due-date offset applied to tasks derived from action items
const DerivedTaskDueIn = 7 * 24 * time.Hour

// IsValid checks the status against the fixed enum
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// Task represents a unit of work, standalone or derived from a meeting
type Task struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID      string     `gorm:"type:varchar(255);not null;index" json:"userId"`
	MeetingID   *uuid.UUID `gorm:"type:uuid;index" json:"meetingId,omitempty"`
	Title       string     `gorm:"type:varchar(200);not null" json:"title"`
	Description *string    `gorm:"type:text" json:"description,omitempty"`
	Status      TaskStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DueDate     *time.Time `gorm:"index" json:"dueDate,omitempty"`
	CreatedAt   time.Time  `gorm:"default:now()" json:"createdAt"`
	UpdatedAt   time.Time  `gorm:"default:now()" json:"updatedAt"`
}

// TableName specifies the table name for Task
func (Task) TableName() string {
	return "tasks"
}

// NewTask builds a pending task with a fresh id
func NewTask(userID string, meetingID *uuid.UUID, title string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:        uuid.New(),
		UserID:    userID,
		MeetingID: meetingID,
		Title:     title,
		Status:    TaskStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsOverdue reports whether the task is open and past its due date at now
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != TaskStatusCompleted && t.DueDate != nil && t.DueDate.Before(now)
}

// Normalize moves every timestamp to UTC
func (t *Task) Normalize() {
	t.CreatedAt = t.CreatedAt.UTC()
	t.UpdatedAt = t.UpdatedAt.UTC()
	if t.DueDate != nil {
		d := t.DueDate.UTC()
		t.DueDate = &d
	}
}

// AfterFind normalizes rows loaded by GORM
func (t *Task) AfterFind(tx *gorm.DB) error {
	t.Normalize()
	return nil
}

// Clone returns a deep copy of the task
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	c := *t
	if t.MeetingID != nil {
		id := *t.MeetingID
		c.MeetingID = &id
	}
	if t.Description != nil {
		d := *t.Description
		c.Description = &d
	}
	if t.DueDate != nil {
		d := *t.DueDate
		c.DueDate = &d
	}
	return &c
}

// OverdueTask is an open, past-due task enriched with its meeting's title
type OverdueTask struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	DueDate      time.Time  `json:"dueDate"`
	MeetingID    *uuid.UUID `json:"meetingId,omitempty"`
	MeetingTitle *string    `json:"meetingTitle,omitempty"`
}

// TaskStats is the broader per-user task breakdown
type TaskStats struct {
	ByStatus TaskSummary `json:"byStatus"`
	Overdue  int64       `json:"overdue"`
}
