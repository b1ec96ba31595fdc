package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its line items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order. Line items are replaced as a whole.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Select("*") writes zero values too, e.g. a released order's vehicle.
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("Items", "CreatedAt", "DeletedAt").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&LineItemDTO{}).Error; err != nil {
			return err
		}

		if len(dto.Items) == 0 {
			return nil
		}
		return tx.Create(&dto.Items).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errs.NewObjectNotFoundErrorWithCause("order", aggregate.ID().String(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a visible order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.withItems(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsCustomID reports whether an active or archived order uses customID.
// Soft-deleted orders release their custom ID.
func (r *GormOrderRepository) ExistsCustomID(ctx context.Context, customID string) (bool, error) {
	var active int64
	if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("custom_id = ?", customID).
		Count(&active).Error; err != nil {
		return false, err
	}
	if active > 0 {
		return true, nil
	}

	var archived int64
	if err := r.db.WithContext(ctx).Model(&OrderHistoryDTO{}).
		Where("custom_id = ?", customID).
		Count(&archived).Error; err != nil {
		return false, err
	}

	return archived > 0, nil
}

// GetAll retrieves every visible order that is not Completed, ordered by custom ID.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.withItems(ctx).
		Where("status <> ?", order.Completed.String()).
		Order("custom_id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("order %s: %w", dto.CustomID, err)
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete soft-deletes an order. Its line items stay for the record.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}

	return nil
}

// Archive copies a Completed order into order_history and removes it from the
// active tables.
func (r *GormOrderRepository) Archive(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	if aggregate.Status() != order.Completed {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("only completed orders are archived, order %s is %s", aggregate.CustomID(), aggregate.Status()))
	}

	history, err := historyFromDomain(aggregate)
	if err != nil {
		return err
	}

	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		result := tx.Unscoped().Delete(&OrderDTO{}, "id = ?", history.ID)
		if result.Error != nil {
			return result.Error
		}

		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("order", aggregate.ID().String())
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}
