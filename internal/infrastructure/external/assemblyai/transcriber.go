package assemblyai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"go.uber.org/zap"
)

// ErrEmptyTranscript is returned when AssemblyAI completes without text
var ErrEmptyTranscript = errors.New("assemblyai returned an empty transcript")

// Transcriber turns a reachable audio URL into text with the AssemblyAI SDK.
// TranscribeFromURL blocks until the transcript completes or fails.
type Transcriber struct {
	client       *aai.Client
	languageCode string
	logger       *zap.Logger
}

// NewTranscriber creates a transcriber for apiKey. It returns nil when apiKey is empty.
func NewTranscriber(apiKey, languageCode string, logger *zap.Logger) *Transcriber {
	if apiKey == "" {
		return nil
	}
	return NewTranscriberWithClient(aai.NewClient(apiKey), languageCode, logger)
}

// NewTranscriberWithClient wraps an existing SDK client
func NewTranscriberWithClient(client *aai.Client, languageCode string, logger *zap.Logger) *Transcriber {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Transcriber{client: client, languageCode: languageCode, logger: logger}
}

// Transcribe waits for the transcript of audioURL and returns its text
func (t *Transcriber) Transcribe(ctx context.Context, audioURL string) (string, error) {
	params := &aai.TranscriptOptionalParams{
		SpeakerLabels: aai.Bool(true),
	}
	if t.languageCode != "" {
		params.LanguageCode = aai.TranscriptLanguageCode(t.languageCode)
	}

	t.logger.Info("assemblyai.transcribe.start",
		zap.String("audio_url", audioURL),
		zap.String("language", t.languageCode),
	)

	transcript, err := t.client.Transcripts.TranscribeFromURL(ctx, audioURL, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}

	return textOf(transcript)
}

// textOf extracts the text of a finished transcript
func textOf(transcript aai.Transcript) (string, error) {
	if transcript.Status == aai.TranscriptStatusError {
		reason := "unknown error"
		if transcript.Error != nil {
			reason = *transcript.Error
		}
		return "", fmt.Errorf("assemblyai transcription failed: %s", reason)
	}

	if transcript.Text == nil || strings.TrimSpace(*transcript.Text) == "" {
		return "", ErrEmptyTranscript
	}
	return *transcript.Text, nil
}
