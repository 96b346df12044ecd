package util

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"phase-planner/src/config"
)

func TestLogger_LevelFiltering(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		level     string
		wantLines int
	}{
		"debug logs everything": {level: "debug", wantLines: 4},
		"info skips debug":      {level: "info", wantLines: 3},
		"warn":                  {level: "warn", wantLines: 2},
		"error":                 {level: "error", wantLines: 1},
		"unknown means info":    {level: "verbose", wantLines: 3},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			l := NewLoggerTo(&buf, config.LoggingConfig{Level: tt.level, Format: "text"})
			l.Debug("d %d", 1)
			l.Info("i %d", 2)
			l.Warn("w %d", 3)
			l.Error("e %d", 4)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			assert.Len(t, lines, tt.wantLines)
		})
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewLoggerTo(&buf, config.LoggingConfig{Level: "info", Format: "json", IncludeCaller: true})
	l.Info("planned %d phases", 5)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "planned 5 phases", rec["msg"])
	assert.Equal(t, "INFO", rec["level"])
	assert.NotContains(t, rec, "time")
	assert.Contains(t, rec["caller"], "logger_test.go")
}

func TestLogger_Timestamp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewLoggerTo(&buf, config.LoggingConfig{Level: "info", Format: "text", IncludeTimestamp: true})
	l.Info("hello")
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\S+\tINFO\thello\n$`, buf.String())
}

func TestLogger_NoTimestamp(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewLoggerTo(&buf, config.LoggingConfig{Level: "info", Format: "text"})
	l.Warn("%d gates rejected", 2)
	assert.Equal(t, "WARN\t2 gates rejected\n", buf.String())
}

func TestLogger_GetLevel(t *testing.T) {
	t.Parallel()

	for _, lvl := range []string{"debug", "info", "warn", "error"} {
		l := NewLoggerTo(&bytes.Buffer{}, config.LoggingConfig{Level: lvl})
		assert.Equal(t, lvl, l.GetLevel())
	}
}
