package events

import (
	"context"

	"go.uber.org/zap"
)

// AuditLog records mapping lifecycle events as structured log entries. It
// is the terminal consumer of the event trail.
type AuditLog struct {
	logger *zap.Logger
}

// NewAuditLog creates an audit log writer.
func NewAuditLog(logger *zap.Logger) *AuditLog {
	return &AuditLog{logger: logger}
}

// RecordCreated writes an audit entry for a created mapping.
func (a *AuditLog) RecordCreated(_ context.Context, event *MappingCreated) error {
	a.logger.Info("mapping created",
		zap.String("code", event.Code),
		zap.String("original_url", event.OriginalURL),
		zap.Bool("custom", event.Custom),
		zap.String("source", event.Source),
		zap.Time("created_at", event.CreatedAt),
		zap.String("request_id", event.RequestID),
		zap.String("client_ip", event.ClientIP),
	)

	return nil
}

// RecordDeleted writes an audit entry for a deleted mapping.
func (a *AuditLog) RecordDeleted(_ context.Context, event *MappingDeleted) error {
	a.logger.Info("mapping deleted",
		zap.String("code", event.Code),
		zap.Time("deleted_at", event.DeletedAt),
		zap.String("request_id", event.RequestID),
		zap.String("client_ip", event.ClientIP),
	)

	return nil
}
