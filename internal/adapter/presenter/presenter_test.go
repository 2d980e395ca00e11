package presenter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-tracker/internal/domain/entities"
)

func TestToMeetingListResponse_Pagination(t *testing.T) {
	m := entities.NewMeeting("u1", "Sync", time.Now(), []string{"a"})

	resp := ToMeetingListResponse(&entities.MeetingPage{Data: []*entities.Meeting{m}, Total: 21, Page: 2, Limit: 10})

	require.Len(t, resp.Meetings, 1)
	assert.Equal(t, m.ID.String(), resp.Meetings[0].ID)
	assert.Equal(t, 3, resp.Pagination.TotalPages)
	assert.Equal(t, int64(21), resp.Pagination.Total)
}

func TestToTaskResponse(t *testing.T) {
	meetingID := uuid.New()
	task := entities.NewTask("u1", &meetingID, "Write notes")

	resp := ToTaskResponse(task)

	require.NotNil(t, resp.MeetingID)
	assert.Equal(t, meetingID.String(), *resp.MeetingID)
	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, ToTaskResponse(nil))
}
