// Package ports defines the persistence and messaging contracts of the dispatch domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for purchase order aggregates.
// Soft-deleted and archived orders are invisible to every method.
type OrderRepository interface {
	// Add persists a new order aggregate together with its line items.
	// The order must be valid and its custom ID not already taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, line items included.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no visible order has this ID.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ExistsCustomID reports whether a visible order already uses customID.
	// Soft-deleted orders do not count, so their custom IDs can be reused.
	ExistsCustomID(ctx context.Context, customID string) (bool, error)

	// GetAll retrieves every visible order, Completed excluded, ordered by custom ID.
	// This is the snapshot a full rebalance works on.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// Delete soft-deletes an order.
	Delete(ctx context.Context, id kernel.UUID) error

	// Archive moves a Completed order into the order history.
	//
	// Example:
	//   if err := o.Complete(); err != nil {
	//       return err
	//   }
	//   if err := repo.Archive(ctx, o); err != nil {
	//       return fmt.Errorf("failed to archive order: %w", err)
	//   }
	Archive(ctx context.Context, aggregate *order.Order) error
}
