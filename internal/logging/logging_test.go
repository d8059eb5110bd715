package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("info", "text", &buf)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("connected", "address", "127.0.0.1:4711")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=connected")
	assert.Contains(t, out, "address=127.0.0.1:4711")
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New("DEBUG", "json", &buf)
	require.NoError(t, err)

	logger.Debug("send command", "command", "chat.post")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "send command", record["msg"])
	assert.Equal(t, "chat.post", record["command"])
	assert.Equal(t, "DEBUG", record["level"])
}

func TestNewLevels(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		_, err := New(level, "text", &bytes.Buffer{})
		assert.NoError(t, err, level)
	}
}

func TestNewErrors(t *testing.T) {
	_, err := New("loud", "text", &bytes.Buffer{})
	assert.Error(t, err)

	_, err = New("info", "xml", &bytes.Buffer{})
	assert.Error(t, err)
}
