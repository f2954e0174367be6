package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported backends for New.
const (
	BackendSlog = "slog"
	BackendZap  = "zap"
)

// New builds a Logger writing to w.
//
// backend selects the implementation: "slog" (text handler) or "zap"
// (JSON encoder). level is parsed case-insensitively; unknown values fall
// back to info.
func New(backend, level string, w io.Writer) (Logger, error) {
	switch strings.ToLower(strings.TrimSpace(backend)) {
	case "", BackendSlog:
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slogLevel(level)})
		return NewSlogLogger(slog.New(h)), nil

	case BackendZap:
		encoderCfg := zap.NewProductionEncoderConfig()
		encoderCfg.TimeKey = "timestamp"
		encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		core := zapcore.NewCore(
			zapcore.NewJSONEncoder(encoderCfg),
			zapcore.AddSync(w),
			zap.NewAtomicLevelAt(zapLevel(level)),
		)
		return NewZapLogger(zap.New(core)), nil

	default:
		return nil, fmt.Errorf("unknown log backend %q", backend)
	}
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "dbg":
		return "debug"
	case "warn", "warning":
		return "warn"
	case "error", "err":
		return "error"
	default:
		return "info"
	}
}

func slogLevel(level string) slog.Level {
	switch normalizeLevel(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(level string) zapcore.Level {
	switch normalizeLevel(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewZapLogger(zap.NewNop())
}
