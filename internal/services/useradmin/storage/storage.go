package storage

import (
	"context"
	"time"
)

// Audit actions recorded for operator mutations.
const (
	AuditActionUserCreated   = "user_created"
	AuditActionUserUpdated   = "user_updated"
	AuditActionUserDeleted   = "user_deleted"
	AuditActionPasswordReset = "password_reset"
)

// AuditEntry records one operator action against a managed user.
type AuditEntry struct {
	ID        string
	ActorID   string
	Action    string
	UserID    string
	Detail    string
	CreatedAt time.Time
}

// AuditStore persists operator audit entries.
type AuditStore interface {
	PutAuditEntry(ctx context.Context, entry AuditEntry) error
	ListAuditEntries(ctx context.Context, userID string, limit int) ([]AuditEntry, error)
}

// Store is a composite interface for useradmin storage concerns.
type Store interface {
	AuditStore
	Close() error
}
