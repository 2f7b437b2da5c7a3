package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/abhisek/pathfinder/internal/config"
)

// ParseLevel maps a config level name onto a zap level. Unknown names fall
// back to info.
func ParseLevel(s string) zapcore.Level {
	switch s {
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

// New builds a logger from config. JSON uses zap's production encoder,
// anything else the development console encoder. Output goes to cfg.File
// when set, otherwise to stderr.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	var zc zap.Config
	if cfg.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))
	zc.DisableStacktrace = true

	out := "stderr"
	if cfg.File != "" {
		out = cfg.File
	}
	zc.OutputPaths = []string{out}
	zc.ErrorOutputPaths = []string{out}

	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l, nil
}

// ForTUI returns a logger that never writes to the terminal the UI owns: a
// file logger when cfg.File is set, a no-op logger otherwise.
func ForTUI(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.File == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}
