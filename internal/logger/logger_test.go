package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLevels(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	tests := []struct {
		level     string
		debugSeen bool
		infoSeen  bool
	}{
		{"debug", true, true},
		{"INFO", false, true},
		{"warn", false, false},
		{"error", false, false},
		{"bogus", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := Setup(tt.level, &buf)

			l.Debug("debug message")
			assert.Equal(t, tt.debugSeen, bytes.Contains(buf.Bytes(), []byte("debug message")))

			l.Info("info message")
			assert.Equal(t, tt.infoSeen, bytes.Contains(buf.Bytes(), []byte("info message")))
		})
	}
}

func TestSetupWritesJSON(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	var buf bytes.Buffer
	Setup("info", &buf)

	slog.Info("fit complete", "trial", 1, "loglik", -1.5)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "fit complete", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, float64(1), entry["trial"])
	assert.Equal(t, -1.5, entry["loglik"])
}
