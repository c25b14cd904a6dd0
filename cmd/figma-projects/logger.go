package main

import (
	"fmt"

	figmaprojects "github.com/kataras/figma-projects"

	"github.com/fatih/color"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger returns the progress logger for the given --log-format and a
// function that flushes it.
func newLogger(format, level string) (figmaprojects.Logger, func(), error) {
	switch format {
	case "console":
		return &cliLogger{}, func() {}, nil
	case "json":
		var lvl zapcore.Level
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}

		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(lvl)

		logger, err := config.Build()
		if err != nil {
			return nil, nil, fmt.Errorf("build logger: %w", err)
		}
		sugar := logger.Sugar()
		return sugar, func() { _ = sugar.Sync() }, nil
	default:
		return nil, nil, fmt.Errorf("invalid log format %q (must be console or json)", format)
	}
}

// cliLogger implements figmaprojects.Logger with colored terminal output on stderr,
// keeping stdout free for the dump itself.
type cliLogger struct{}

func (l *cliLogger) Infof(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(color.Error, format+"\n", args...)
}

func (l *cliLogger) Warnf(format string, args ...any) {
	color.New(color.FgYellow).Fprintf(color.Error, "⚠ "+format+"\n", args...)
}

func (l *cliLogger) Errorf(format string, args ...any) {
	color.New(color.FgRed).Fprintf(color.Error, "✗ "+format+"\n", args...)
}
