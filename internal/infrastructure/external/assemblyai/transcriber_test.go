package assemblyai

import (
	"testing"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextOf(t *testing.T) {
	text, err := textOf(aai.Transcript{
		Status: aai.TranscriptStatusCompleted,
		Text:   aai.String("hello team"),
	})
	require.NoError(t, err)
	assert.Equal(t, "hello team", text)
}

func TestTextOf_Error(t *testing.T) {
	_, err := textOf(aai.Transcript{
		Status: aai.TranscriptStatusError,
		Error:  aai.String("audio unreachable"),
	})
	assert.ErrorContains(t, err, "audio unreachable")
}

func TestTextOf_Empty(t *testing.T) {
	_, err := textOf(aai.Transcript{Status: aai.TranscriptStatusCompleted, Text: aai.String("  ")})
	assert.ErrorIs(t, err, ErrEmptyTranscript)

	_, err = textOf(aai.Transcript{Status: aai.TranscriptStatusCompleted})
	assert.ErrorIs(t, err, ErrEmptyTranscript)
}

func TestNewTranscriber_RequiresKey(t *testing.T) {
	assert.Nil(t, NewTranscriber("", "en", nil))
	assert.NotNil(t, NewTranscriber("key", "en", nil))
}
