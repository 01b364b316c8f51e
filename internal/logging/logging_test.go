package logging

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
)

func TestNew_WritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, log.WarnLevel)

	logger.Info("hidden")
	assert.Empty(t, buf.String())

	logger.Warn("shown", "id", "sms-1")
	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "sms-1")
	assert.Contains(t, out, "smstx")
}

func TestLevelFromEnv(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{" error ", log.ErrorLevel},
		{"", log.InfoLevel},
		{"loud", log.InfoLevel},
	}
	for _, tt := range tests {
		t.Setenv(LevelEnv, tt.env)
		assert.Equal(t, tt.want, LevelFromEnv(), "LevelFromEnv(%q)", tt.env)
	}
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() { Discard().Error("nothing", "k", "v") })
}
