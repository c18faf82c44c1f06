package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "warn", Writer: &buf})

	logger.Info().Msg("hidden")
	logger.Warn().Str("unit", "12").Msg("shown")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "shown", event["message"])
	assert.Equal(t, "12", event["unit"])
	assert.Contains(t, event, "time")
}

func TestNew_BadLevelFallsBackToInfo(t *testing.T) {
	logger := New(Options{Level: "verbose", Writer: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	empty := New(Options{Writer: &bytes.Buffer{}})
	assert.Equal(t, zerolog.InfoLevel, empty.GetLevel())
}

func TestNew_Console(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{Level: "debug", Writer: &buf, Console: true})
	l.Debug().Msg("hola")
	assert.Contains(t, buf.String(), "hola")
	assert.NotContains(t, buf.String(), `"message"`)
}
