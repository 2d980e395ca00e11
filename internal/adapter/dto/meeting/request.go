package meeting

// CreateMeetingRequest represents the request to create a meeting
type CreateMeetingRequest struct {
	Title        string   `json:"title" validate:"required,min=1,max=200"`
	Date         string   `json:"date" validate:"required"`
	Participants []string `json:"participants" validate:"required,min=1,max=50,dive,min=1,max=100,participant"`
}

// ListMeetingsRequest represents query parameters for listing meetings
type ListMeetingsRequest struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1"`
}

// UpdateTranscriptRequest represents the request to attach a transcript
type UpdateTranscriptRequest struct {
	Transcript string `json:"transcript" validate:"required,min=1"`
}

// TranscribeMeetingRequest points at the recording to transcribe
type TranscribeMeetingRequest struct {
	AudioURL string `json:"audioUrl" validate:"required,url"`
}
