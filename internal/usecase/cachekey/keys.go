// Package cachekey owns every cache key the services read or write, and the
// delete-on-write rules that keep them fresh.
package cachekey

import (
	"fmt"

	"github.com/google/uuid"
)

// Dashboard is the composite dashboard snapshot of a user
func Dashboard(userID string) string {
	return fmt.Sprintf("dashboard:%s", userID)
}

// Meeting is a single meeting of a user
func Meeting(id uuid.UUID, userID string) string {
	return fmt.Sprintf("meeting:%s:%s", id, userID)
}

// MeetingsPage is one page of a user's meeting list
func MeetingsPage(userID string, page, limit int) string {
	return fmt.Sprintf("meetings:%s:%d:%d", userID, page, limit)
}

// MeetingsFamily is the registry holding every cached meetings page of a user
func MeetingsFamily(userID string) string {
	return fmt.Sprintf("meetings:%s:keys", userID)
}

// Tasks is the task list of a user
func Tasks(userID string) string {
	return fmt.Sprintf("tasks:%s", userID)
}

// MeetingStats is the meeting statistics view of a user
func MeetingStats(userID string) string {
	return fmt.Sprintf("meeting-stats:%s", userID)
}
