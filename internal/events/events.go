// Package events defines the mapping lifecycle event trail. Events are
// published when mappings are created or deleted; redirects publish nothing.
package events

import "time"

// Topics for mapping lifecycle events.
const (
	TopicMappingCreated = "mapping.created"
	TopicMappingDeleted = "mapping.deleted"
)

// MappingCreated is emitted when a new mapping is persisted.
type MappingCreated struct {
	Code        string    `json:"code"`
	OriginalURL string    `json:"originalUrl"`
	Custom      bool      `json:"custom"`
	Source      string    `json:"source"` // "ui" or "api"
	CreatedAt   time.Time `json:"createdAt"`
	RequestID   string    `json:"requestId,omitempty"`
	ClientIP    string    `json:"clientIp,omitempty"`
}

// MappingDeleted is emitted when a mapping is removed.
type MappingDeleted struct {
	Code      string    `json:"code"`
	DeletedAt time.Time `json:"deletedAt"`
	RequestID string    `json:"requestId,omitempty"`
	ClientIP  string    `json:"clientIp,omitempty"`
}
