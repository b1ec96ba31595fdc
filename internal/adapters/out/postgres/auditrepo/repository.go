package auditrepo

import (
	"context"

	"dispatch/internal/core/domain/model/audit"

	"gorm.io/gorm"
)

// GormAuditRepository implements AuditRepository using GORM.
type GormAuditRepository struct {
	db *gorm.DB
}

func NewGormAuditRepository(db *gorm.DB) *GormAuditRepository {
	return &GormAuditRepository{db: db}
}

// Append stores entries in one batch. Entries are never updated afterwards.
func (r *GormAuditRepository) Append(ctx context.Context, entries ...audit.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	dtos := make([]EntryDTO, 0, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(e, i))
	}

	return r.db.WithContext(ctx).Create(&dtos).Error
}
