package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(t *testing.T) (*Logger, *bytes.Buffer) {
	t.Helper()
	l := New(Options{Level: "debug", Format: "json"})
	buf := &bytes.Buffer{}
	l.Logger.SetOutput(buf)
	return l, buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	buf.Reset()
	return entry
}

func TestLoggerFormatting(t *testing.T) {
	l, buf := newBufferLogger(t)

	t.Run("Printf", func(t *testing.T) {
		l.Info("created product %d for %s", 7, "alice")
		entry := decodeLine(t, buf)
		assert.Equal(t, "created product 7 for alice", entry["msg"])
		assert.Equal(t, "info", entry["level"])
	})

	t.Run("KeyValues", func(t *testing.T) {
		l.Warning("login rejected", "username", "bob", "reason", "not found")
		entry := decodeLine(t, buf)
		assert.Equal(t, "login rejected", entry["msg"])
		assert.Equal(t, "bob", entry["username"])
		assert.Equal(t, "not found", entry["reason"])
	})

	t.Run("Component", func(t *testing.T) {
		l.WithComponent("auth").WithField("request_id", "req_1").Error("boom")
		entry := decodeLine(t, buf)
		assert.Equal(t, "auth", entry["component"])
		assert.Equal(t, "req_1", entry["request_id"])
		assert.Equal(t, "error", entry["level"])
	})

	t.Run("FieldsDoNotLeak", func(t *testing.T) {
		_ = l.WithField("scoped", true)
		l.Debug("plain")
		entry := decodeLine(t, buf)
		assert.NotContains(t, entry, "scoped")
	})
}

func TestLoggerEvents(t *testing.T) {
	l, buf := newBufferLogger(t)

	l.AuditLogger("product_created", "alice", "product/1", "name=Lamp")
	entry := decodeLine(t, buf)
	assert.Equal(t, "audit", entry["event_type"])
	assert.Equal(t, "product_created", entry["action"])
	assert.Equal(t, "alice", entry["username"])
	assert.Equal(t, "product/1", entry["resource"])

	l.StructuredError(errors.New("disk full"), map[string]interface{}{"op": "insert"})
	entry = decodeLine(t, buf)
	assert.Equal(t, "disk full", entry["error"])
	assert.Equal(t, "insert", entry["op"])
}

func TestSetLogLevel(t *testing.T) {
	l, buf := newBufferLogger(t)

	require.NoError(t, l.SetLogLevel("error"))
	l.Info("hidden")
	assert.Zero(t, buf.Len())

	assert.Error(t, l.SetLogLevel("loud"))
}

func TestLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	l := New(Options{Level: "info", File: path, MaxSize: 1})
	l.Info("hello file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello file")
}
