package cmd

import (
	"log/slog"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"

	"multiselect/internal/config"
)

// defaultLogPath keeps the log next to the config file so it never reaches the terminal
func defaultLogPath() string {
	return filepath.Join(filepath.Dir(config.DefaultPath()), "multiselect.log")
}

// setupLogging routes slog to a size-rotated file and returns its closer
func setupLogging(path string, debug bool) func() error {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     30, // days
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return w.Close
}
