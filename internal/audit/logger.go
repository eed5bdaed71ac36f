package audit

import "go.uber.org/zap"

// Logger writes audit events to the application log. The old service kept
// no trail at all; a structured log line per mutation is enough here since
// nothing survives a restart anyway.
type Logger struct {
	log *zap.Logger
}

func New(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

func (l *Logger) Log(ev Event) {
	l.log.Info("audit",
		zap.String("action", ev.Action),
		zap.String("entity", ev.Entity),
		zap.String("entity_id", ev.EntityID),
		zap.Any("metadata", ev.Metadata),
	)
}
