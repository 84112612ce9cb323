package testutil

import (
	"os"
	"strings"
	"testing"

	"github.com/GustavoCaso/zerobudget/internal/logger"
)

// TestLogEnv names the level at which tests write their logs to stderr, for
// example ZEROBUDGET_TEST_LOG=debug. Logs are discarded when it is unset.
const TestLogEnv = "ZEROBUDGET_TEST_LOG"

func TestLogger(t *testing.T) *logger.Logger {
	t.Helper()

	config := logger.Config{
		Level:  logger.LevelInfo,
		Format: logger.FormatText,
		Output: "discard",
	}

	if level := os.Getenv(TestLogEnv); level != "" {
		config.Level = logger.Level(strings.ToLower(level))
		config.Output = "stderr"
	}

	return logger.New(config).With("test", t.Name())
}
