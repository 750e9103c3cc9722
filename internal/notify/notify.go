// Package notify carries user-facing outcome messages. Callers report
// successes and failures through a Notifier; where they end up (logs today,
// a push channel later) is the implementation's business.
package notify

import "log/slog"

type Notifier interface {
	Success(msg string, args ...any)
	Error(msg string, args ...any)
}

// Log is a Notifier backed by a structured logger.
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}

	return &Log{logger: logger}
}

func (l *Log) Success(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *Log) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}
