package msgfilter

import (
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

func init() {
	logLevel.Set(slog.LevelWarn)
}

// logger goes to stderr; stdout carries nothing but the message.
var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetLogLevel changes the level of the package logger.
func SetLogLevel(level slog.Level) {
	logLevel.Set(level)
}
