package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditAction represents the kind of audited mutation.
type AuditAction string

const (
	AuditActionCreate AuditAction = "CREATE"
	AuditActionUpdate AuditAction = "UPDATE"
)

// Actor identifies who performed a mutation, captured from the request
// context for audit emission.
type Actor struct {
	UserID    uuid.UUID `json:"user_id"`
	FullName  string    `json:"user_fullname"`
	RoleID    uuid.UUID `json:"role_id"`
	RoleName  string    `json:"role_name"`
	UserAgent string    `json:"user_agent"`
	IPAddress string    `json:"ip_address"`
}

// AuditRecord is the write-once event emitted for every state-changing
// step. Delivered asynchronously to the logging consumer, never read
// back by this service.
type AuditRecord struct {
	TableName string         `json:"table_name"`
	RecordID  string         `json:"record_id"`
	Action    AuditAction    `json:"action"`
	OldData   map[string]any `json:"old_data,omitempty"`
	NewData   map[string]any `json:"new_data"`
	Actor     Actor          `json:"actor"`
	ChangedAt time.Time      `json:"changed_at"`
}
