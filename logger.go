package gomiio

import (
	"log/slog"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

// Logger defines the logging interface for the library
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// NoOpLogger is a logger that does nothing (silent by default)
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}

// SlogAdapter adapts slog.Logger to our Logger interface
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, args ...any) {
	s.logger.Debug(msg, args...)
}

func (s *SlogAdapter) Info(msg string, args ...any) {
	s.logger.Info(msg, args...)
}

func (s *SlogAdapter) Warn(msg string, args ...any) {
	s.logger.Warn(msg, args...)
}

func (s *SlogAdapter) Error(msg string, args ...any) {
	s.logger.Error(msg, args...)
}

// ZapAdapter adapts a sugared zap logger. Key/value args map onto the *w methods.
type ZapAdapter struct {
	logger *zap.SugaredLogger
}

func NewZapAdapter(logger *zap.SugaredLogger) *ZapAdapter {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &ZapAdapter{logger: logger}
}

func (z *ZapAdapter) Debug(msg string, args ...any) {
	z.logger.Debugw(msg, args...)
}

func (z *ZapAdapter) Info(msg string, args ...any) {
	z.logger.Infow(msg, args...)
}

func (z *ZapAdapter) Warn(msg string, args ...any) {
	z.logger.Warnw(msg, args...)
}

func (z *ZapAdapter) Error(msg string, args ...any) {
	z.logger.Errorw(msg, args...)
}

// LogrusAdapter adapts a logrus logger, turning key/value pairs into fields.
type LogrusAdapter struct {
	logger logrus.FieldLogger
}

func NewLogrusAdapter(logger logrus.FieldLogger) *LogrusAdapter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogrusAdapter{logger: logger}
}

func (l *LogrusAdapter) Debug(msg string, args ...any) {
	l.logger.WithFields(logrusFields(args)).Debug(msg)
}

func (l *LogrusAdapter) Info(msg string, args ...any) {
	l.logger.WithFields(logrusFields(args)).Info(msg)
}

func (l *LogrusAdapter) Warn(msg string, args ...any) {
	l.logger.WithFields(logrusFields(args)).Warn(msg)
}

func (l *LogrusAdapter) Error(msg string, args ...any) {
	l.logger.WithFields(logrusFields(args)).Error(msg)
}

func logrusFields(args []any) logrus.Fields {
	fields := make(logrus.Fields, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		fields[key] = args[i+1]
	}
	if len(args)%2 == 1 {
		fields["!BADKEY"] = args[len(args)-1]
	}
	return fields
}
