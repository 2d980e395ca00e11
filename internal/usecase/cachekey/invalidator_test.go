package cachekey

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-tracker/internal/infrastructure/cache"
)

func TestKeys(t *testing.T) {
	id := uuid.MustParse("7f8d6a2e-0c1b-4a55-9f5e-2d8b1c3e4f60")

	assert.Equal(t, "dashboard:u1", Dashboard("u1"))
	assert.Equal(t, "meeting:7f8d6a2e-0c1b-4a55-9f5e-2d8b1c3e4f60:u1", Meeting(id, "u1"))
	assert.Equal(t, "meetings:u1:2:10", MeetingsPage("u1", 2, 10))
	assert.Equal(t, "meetings:u1:keys", MeetingsFamily("u1"))
	assert.Equal(t, "tasks:u1", Tasks("u1"))
	assert.Equal(t, "meeting-stats:u1", MeetingStats("u1"))
}

func seed(t *testing.T, store cache.Store, userID string, meetingID uuid.UUID) {
	t.Helper()
	ctx := context.Background()
	for _, k := range []string{
		Dashboard(userID),
		Meeting(meetingID, userID),
		MeetingsPage(userID, 1, 10),
		MeetingStats(userID),
		Tasks(userID),
	} {
		require.NoError(t, store.Set(ctx, k, 1, time.Minute))
	}
	require.NoError(t, store.Track(ctx, MeetingsFamily(userID), MeetingsPage(userID, 1, 10), time.Minute))
}

func present(store cache.Store, key string) bool {
	var v int
	hit, _ := store.Get(context.Background(), key, &v)
	return hit
}

func TestInvalidator_Rules(t *testing.T) {
	meetingID := uuid.New()

	tests := []struct {
		name    string
		act     func(i *Invalidator)
		dropped []string
		kept    []string
	}{
		{
			name:    "meeting created",
			act:     func(i *Invalidator) { i.MeetingCreated(context.Background(), "u1") },
			dropped: []string{Dashboard("u1"), MeetingsPage("u1", 1, 10), MeetingStats("u1")},
			kept:    []string{Meeting(meetingID, "u1"), Tasks("u1")},
		},
		{
			name:    "meeting updated",
			act:     func(i *Invalidator) { i.MeetingUpdated(context.Background(), "u1", meetingID) },
			dropped: []string{Dashboard("u1"), MeetingsPage("u1", 1, 10), MeetingStats("u1"), Meeting(meetingID, "u1")},
			kept:    []string{Tasks("u1")},
		},
		{
			name: "meeting summarized",
			act:  func(i *Invalidator) { i.MeetingSummarized(context.Background(), "u1", meetingID) },
			dropped: []string{
				Dashboard("u1"), MeetingsPage("u1", 1, 10), MeetingStats("u1"),
				Meeting(meetingID, "u1"), Tasks("u1"),
			},
		},
		{
			name:    "tasks changed",
			act:     func(i *Invalidator) { i.TasksChanged(context.Background(), "u1") },
			dropped: []string{Dashboard("u1"), Tasks("u1")},
			kept:    []string{MeetingsPage("u1", 1, 10), MeetingStats("u1"), Meeting(meetingID, "u1")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := cache.NewMemoryStore(nil, time.Minute)
			seed(t, store, "u1", meetingID)
			seed(t, store, "u2", meetingID)

			tt.act(NewInvalidator(store, nil))

			for _, k := range tt.dropped {
				assert.False(t, present(store, k), "expected %s to be dropped", k)
			}
			for _, k := range tt.kept {
				assert.True(t, present(store, k), "expected %s to be kept", k)
			}
			assert.True(t, present(store, Dashboard("u2")), "other users are untouched")
			assert.True(t, present(store, MeetingsPage("u2", 1, 10)), "other users are untouched")
		})
	}
}

type brokenStore struct{ cache.Store }

func (brokenStore) Delete(ctx context.Context, keys ...string) error {
	return errors.New("connection reset")
}

func (brokenStore) DeleteFamily(ctx context.Context, family string) error {
	return errors.New("connection reset")
}

func TestInvalidator_FailuresDoNotPanic(t *testing.T) {
	i := NewInvalidator(brokenStore{}, nil)

	assert.NotPanics(t, func() {
		i.MeetingSummarized(context.Background(), "u1", uuid.New())
		i.TasksChanged(context.Background(), "u1")
	})
}

func TestInvalidator_NilStore(t *testing.T) {
	i := NewInvalidator(nil, nil)

	assert.NotPanics(t, func() { i.MeetingCreated(context.Background(), "u1") })
}
