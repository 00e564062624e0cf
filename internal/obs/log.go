// Package obs builds the single process-wide logger foundry-core's two
// tools use for diagnostics. All output goes to stderr; stdout is
// reserved exclusively for the one JSON document each tool emits.
package obs

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	once   sync.Once
	logger *zap.Logger
)

// Logger returns the process-wide structured logger, built lazily on
// first use and gated by FOUNDRY_LOG_LEVEL (debug|info|warn|error,
// default warn — quiet unless something needs attention).
func Logger() *zap.Logger {
	once.Do(func() {
		cfg := zap.NewProductionConfig()
		cfg.OutputPaths = []string{"stderr"}
		cfg.ErrorOutputPaths = []string{"stderr"}
		cfg.Level = zap.NewAtomicLevelAt(levelFromEnv())
		built, err := cfg.Build()
		if err != nil {
			// Logging must never be the reason a solver fails; fall back
			// to a no-op logger rather than panic.
			logger = zap.NewNop()
			return
		}
		logger = built
	})
	return logger
}

func levelFromEnv() zapcore.Level {
	switch os.Getenv("FOUNDRY_LOG_LEVEL") {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.WarnLevel
	}
}
