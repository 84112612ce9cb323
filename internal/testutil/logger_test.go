package testutil

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestLoggerDiscardsByDefault(t *testing.T) {
	t.Setenv(TestLogEnv, "")

	l := TestLogger(t)
	assert.True(t, l.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, l.Enabled(context.Background(), slog.LevelDebug))
}

func TestTestLoggerLevelFromEnv(t *testing.T) {
	t.Setenv(TestLogEnv, "DEBUG")

	l := TestLogger(t)
	assert.True(t, l.Enabled(context.Background(), slog.LevelDebug))
}
