package config

import (
	"log/slog"
	"os"
	"strings"
)

// InitLogging installs a text logger on stderr; stdout carries results.
func InitLogging(lvl string) {
	level := toLevel(lvl)
	textHandler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	logger := slog.New(textHandler)

	slog.SetDefault(logger)
}

func toLevel(lvl string) slog.Level {
	levels := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	if level, ok := levels[strings.ToLower(lvl)]; ok {
		return level
	}
	return slog.LevelInfo
}
