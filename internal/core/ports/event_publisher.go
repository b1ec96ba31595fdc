package ports

import (
	"context"

	"dispatch/internal/core/domain/model/audit"
)

// EventPublisher streams audit entries to downstream consumers once the
// transaction that produced them has been committed.
type EventPublisher interface {
	Publish(ctx context.Context, entries ...audit.Entry) error
}
