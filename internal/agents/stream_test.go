package agents

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStreamChunks_TextChunks(t *testing.T) {
	got := ParseStreamChunks([]string{
		`{"type":"text","text":"Hello "}`,
		`{"type":"text","text":"world"}`,
	})

	assert.Equal(t, "Hello world", got.Text)
	assert.Empty(t, got.Errors)
}

func TestParseStreamChunks_ContentFallback(t *testing.T) {
	got := ParseStreamChunks([]string{
		`{"content":"partial "}`,
		`{"content":"answer"}`,
	})

	assert.Equal(t, "partial answer", got.Text)
}

func TestParseStreamChunks_ErrorChunks(t *testing.T) {
	got := ParseStreamChunks([]string{
		`{"message":"quota exceeded"}`,
		`{"message":"retry later"}`,
	})

	assert.Empty(t, got.Text)
	assert.Equal(t, []string{"quota exceeded", "retry later"}, got.Errors)
	assert.True(t, got.Failed())
}

func TestParseStreamChunks_MixedTextAndErrors(t *testing.T) {
	got := ParseStreamChunks([]string{
		`{"type":"text","text":"some data"}`,
		`{"message":"tool timeout"}`,
	})

	assert.Equal(t, "some data", got.Text)
	assert.Equal(t, []string{"tool timeout"}, got.Errors)
	assert.False(t, got.Failed())
}

func TestParseStreamChunks_PlainTextChunk(t *testing.T) {
	got := ParseStreamChunks([]string{"raw agent output"})

	assert.Equal(t, "raw agent output", got.Text)
}

func TestParseStreamChunks_TruncatedJSONDropped(t *testing.T) {
	got := ParseStreamChunks([]string{`{"type":"text","text":"cut of`})

	assert.Empty(t, got.Text)
	assert.Empty(t, got.Errors)
}

func TestParseStreamChunks_NonObjectJSON(t *testing.T) {
	got := ParseStreamChunks([]string{`"just a string"`})

	assert.Equal(t, "just a string", got.Text)
}

func TestParseStreamChunks_Empty(t *testing.T) {
	got := ParseStreamChunks(nil)

	assert.Empty(t, got.Text)
	assert.False(t, got.Failed())
}
