// Package logging builds the zap loggers used by adexdump.
// Diagnostics go to stderr so they never mix with report output on stdout.
// Each pipeline stage logs under its own category, and categories can be
// switched off individually in the config file.
package logging

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"adexdump/internal/config"
)

// Category represents a log category/pipeline stage
type Category string

const (
	CategoryBoot   Category = "boot"   // Argument and config handling
	CategoryLoader Category = "loader" // Snapshot loading
	CategoryFilter Category = "filter" // Password-age and description filters
	CategoryRender Category = "render" // Output formatting
)

// Logger hands out per-category zap loggers sharing one core.
type Logger struct {
	root *zap.Logger
	cfg  config.LoggingConfig
}

// New builds a Logger from cfg. verbose forces debug level.
func New(cfg config.LoggingConfig, verbose bool) (*Logger, error) {
	return NewWithSink(cfg, verbose, zapcore.Lock(os.Stderr))
}

// NewWithSink is New with an explicit output sink.
func NewWithSink(cfg config.LoggingConfig, verbose bool, sink zapcore.WriteSyncer) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "json":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console", "":
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))
	return &Logger{root: zap.New(core), cfg: cfg}, nil
}

// With returns a Logger whose entries all carry fields.
func (l *Logger) With(fields ...zap.Field) *Logger {
	return &Logger{root: l.root.With(fields...), cfg: l.cfg}
}

// Get returns the logger for a category. Disabled categories get a no-op logger.
func (l *Logger) Get(category Category) *zap.Logger {
	if !l.cfg.IsCategoryEnabled(string(category)) {
		return zap.NewNop()
	}
	return l.root.Named(string(category))
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.root.Sync()
}

// Timer tracks operation duration
type Timer struct {
	logger *zap.Logger
	op     string
	start  time.Time
}

// StartTimer starts timing an operation logged under category.
func (l *Logger) StartTimer(category Category, operation string) *Timer {
	return &Timer{
		logger: l.Get(category),
		op:     operation,
		start:  time.Now(),
	}
}

// Stop ends the timer and logs the duration at debug level.
func (t *Timer) Stop(fields ...zap.Field) time.Duration {
	elapsed := time.Since(t.start)
	t.logger.Debug(t.op+" completed", append(fields, zap.Duration("elapsed", elapsed))...)
	return elapsed
}
