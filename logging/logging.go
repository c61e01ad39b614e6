// Package logging builds the zap loggers the library writes advisory
// warnings and diagnostics to.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the level, encoding and destination of the library logger.
type Config struct {
	Level string `json:"level" mapstructure:"level"`
	// Format is "console" for human-readable lines; anything else is JSON.
	Format      string            `json:"format" mapstructure:"format"`
	OutputPath  string            `json:"output_path" mapstructure:"output_path"`
	Fields      map[string]string `json:"fields" mapstructure:"fields"`
	Development bool              `json:"development" mapstructure:"development"`
}

// New builds a logger for cfg. An unparseable level logs at info.
func New(cfg Config) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(levelOf(cfg.Level))
	zc.Encoding = encodingOf(cfg.Format)
	if cfg.OutputPath != "" {
		zc.OutputPaths = []string{cfg.OutputPath}
	}

	base, err := zc.Build()
	if err != nil {
		return nil, err
	}
	if len(cfg.Fields) == 0 {
		return base, nil
	}
	static := make([]zap.Field, 0, len(cfg.Fields))
	for name, value := range cfg.Fields {
		static = append(static, zap.String(name, value))
	}
	return base.With(static...), nil
}

func levelOf(s string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(s)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

func encodingOf(format string) string {
	if format == "console" {
		return "console"
	}
	return "json"
}

// OrNop returns logger, or a no-op logger when it is nil.
func OrNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
