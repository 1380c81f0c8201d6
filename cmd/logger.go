// cmd/logger.go
package main

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// newLogger は APP_ENV=dev なら tint のカラー出力、それ以外は JSON で出力するロガーを作ります。
func newLogger(level string, w io.Writer) *slog.Logger {
	logLevel := new(slog.LevelVar)
	unknown := false
	switch strings.ToLower(level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info", "":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		unknown = true
	}

	var handler slog.Handler
	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
	} else {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
	}

	logger := slog.New(handler)
	if unknown {
		logger.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", level))
	}
	return logger
}
