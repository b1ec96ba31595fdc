package ports

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
)

// AuditRepository appends entries to the scheduling audit trail.
// Entries are never updated or removed.
type AuditRepository interface {
	Append(ctx context.Context, entries ...audit.Entry) error
}
