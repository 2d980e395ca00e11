package entities

// DashboardUpcomingLimit caps the upcoming meetings shown on the dashboard
const DashboardUpcomingLimit = 5

// TaskSummary counts a user's tasks per status. All three fields are always present.
type TaskSummary struct {
	Pending    int64 `json:"pending"`
	InProgress int64 `json:"inProgress"`
	Completed  int64 `json:"completed"`
}

// NewTaskSummary folds grouped status counts into a zero-filled summary.
// Statuses outside the enum are ignored.
func NewTaskSummary(counts map[TaskStatus]int64) TaskSummary {
	var s TaskSummary
	for status, n := range counts {
		switch status {
		case TaskStatusPending:
			s.Pending += n
		case TaskStatusInProgress:
			s.InProgress += n
		case TaskStatusCompleted:
			s.Completed += n
		}
	}
	return s
}

// Total is the number of tasks across all statuses
func (s TaskSummary) Total() int64 {
	return s.Pending + s.InProgress + s.Completed
}

// DashboardSnapshot is the composed, cacheable dashboard view of one user
type DashboardSnapshot struct {
	TotalMeetings    int64             `json:"totalMeetings"`
	TaskSummary      TaskSummary       `json:"taskSummary"`
	UpcomingMeetings []UpcomingMeeting `json:"upcomingMeetings"`
	OverdueTasks     []OverdueTask     `json:"overdueTasks"`
}
