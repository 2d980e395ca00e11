// Package memory is an in-process implementation of the repositories, used when
// DB_DRIVER=memory and as the store behind service tests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

// DB holds every table behind a single lock so that multi-table writes are atomic
type DB struct {
	mu       sync.RWMutex
	meetings map[uuid.UUID]*entities.Meeting
	tasks    map[uuid.UUID]*entities.Task
}

// NewDB creates an empty in-process database
func NewDB() *DB {
	return &DB{
		meetings: make(map[uuid.UUID]*entities.Meeting),
		tasks:    make(map[uuid.UUID]*entities.Task),
	}
}

func (db *DB) meetingsOf(userID string) []*entities.Meeting {
	out := make([]*entities.Meeting, 0)
	for _, m := range db.meetings {
		if m.UserID == userID {
			out = append(out, m)
		}
	}
	return out
}

func (db *DB) tasksOf(userID string) []*entities.Task {
	out := make([]*entities.Task, 0)
	for _, t := range db.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out
}

func (db *DB) insertTask(task *entities.Task) {
	if task.ID == uuid.Nil {
		task.ID = uuid.New()
	}
	if task.Status == "" {
		task.Status = entities.TaskStatusPending
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
		task.UpdatedAt = task.CreatedAt
	}
	task.Normalize()
	db.tasks[task.ID] = task.Clone()
}
