package errors

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromHTTPStatus(t *testing.T) {
	tests := []struct {
		status int
		code   ErrorCode
	}{
		{http.StatusNotFound, ErrorCode_NOT_FOUND},
		{http.StatusMethodNotAllowed, ErrorCode_NOT_FOUND},
		{http.StatusUnauthorized, ErrorCode_UNAUTHENTICATED},
		{http.StatusTooManyRequests, ErrorCode_RATE_LIMITED},
		{http.StatusRequestEntityTooLarge, ErrorCode_INVALID_ARGUMENT},
		{http.StatusForbidden, ErrorCode_INTERNAL},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := FromHTTPStatus(tt.status, "msg")
			assert.Equal(t, tt.status, err.HTTPCode)
			assert.Equal(t, tt.code, err.Code)
		})
	}
}

func TestErrMeetingNoTranscript(t *testing.T) {
	err := ErrMeetingNoTranscript("m1")

	assert.Equal(t, http.StatusNotFound, err.HTTPCode)
	assert.Equal(t, "MEETING_NO_TRANSCRIPT", err.Code.String())
	assert.Equal(t, "m1", err.Details["meeting_id"])
}
