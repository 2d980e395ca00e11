package errors

// ErrorCode identifies an application error class on the wire
type ErrorCode int32

const (
	ErrorCode_HTTP_OK          ErrorCode = 200
	ErrorCode_INTERNAL         ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT ErrorCode = 1001
	ErrorCode_NOT_FOUND        ErrorCode = 1002
	ErrorCode_UNAUTHENTICATED  ErrorCode = 1003
	ErrorCode_INVALID_PAYLOAD  ErrorCode = 1004
	ErrorCode_RATE_LIMITED     ErrorCode = 1005

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 2001
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 2002

	ErrorCode_MEETING_NOT_FOUND        ErrorCode = 3001
	ErrorCode_MEETING_NO_TRANSCRIPT    ErrorCode = 3002
	ErrorCode_TASK_NOT_FOUND           ErrorCode = 3101
	ErrorCode_TASK_INVALID_STATUS      ErrorCode = 3102
	ErrorCode_DASHBOARD_FETCH_FAILED   ErrorCode = 3201
	ErrorCode_AI_SUMMARY_FAILED        ErrorCode = 4001
	ErrorCode_AI_TRANSCRIPTION_FAILED  ErrorCode = 4002
	ErrorCode_AI_SERVICE_UNAVAILABLE   ErrorCode = 4003
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                  "HTTP_OK",
	ErrorCode_INTERNAL:                 "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:         "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                "NOT_FOUND",
	ErrorCode_UNAUTHENTICATED:          "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:          "INVALID_PAYLOAD",
	ErrorCode_RATE_LIMITED:             "RATE_LIMITED",
	ErrorCode_AUTH_INVALID_TOKEN:       "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:       "AUTH_TOKEN_EXPIRED",
	ErrorCode_MEETING_NOT_FOUND:        "MEETING_NOT_FOUND",
	ErrorCode_MEETING_NO_TRANSCRIPT:    "MEETING_NO_TRANSCRIPT",
	ErrorCode_TASK_NOT_FOUND:           "TASK_NOT_FOUND",
	ErrorCode_TASK_INVALID_STATUS:      "TASK_INVALID_STATUS",
	ErrorCode_DASHBOARD_FETCH_FAILED:   "DASHBOARD_FETCH_FAILED",
	ErrorCode_AI_SUMMARY_FAILED:        "AI_SUMMARY_FAILED",
	ErrorCode_AI_TRANSCRIPTION_FAILED:  "AI_TRANSCRIPTION_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:   "AI_SERVICE_UNAVAILABLE",
}

// String returns the symbolic name of the code
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
