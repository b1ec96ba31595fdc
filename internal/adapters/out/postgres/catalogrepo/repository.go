package catalogrepo

import (
	"context"
	"fmt"

	"dispatch/internal/core/domain/model/catalog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormCatalogRepository implements CatalogRepository using GORM.
type GormCatalogRepository struct {
	db *gorm.DB
}

func NewGormCatalogRepository(db *gorm.DB) *GormCatalogRepository {
	return &GormCatalogRepository{db: db}
}

// Load reads every product with its packages.
func (r *GormCatalogRepository) Load(ctx context.Context) (catalog.Catalog, error) {
	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Preload("Packages", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("id").
		Find(&dtos).Error; err != nil {
		return catalog.Catalog{}, err
	}

	products := make([]*catalog.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return catalog.Catalog{}, fmt.Errorf("product %s: %w", dto.ID, err)
		}
		products = append(products, p)
	}

	return catalog.NewCatalog(products...), nil
}

// Save upserts products and replaces their packages. It is the import path of
// the catalog sync; dispatch commands never write the catalog.
func (r *GormCatalogRepository) Save(ctx context.Context, products ...*catalog.Product) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range products {
			if err := p.Validate(); err != nil {
				return err
			}

			dto := fromDomain(p)
			packages := dto.Packages
			dto.Packages = nil

			if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&dto).Error; err != nil {
				return err
			}

			if err := tx.Where("product_id = ?", dto.ID).Delete(&PackageDTO{}).Error; err != nil {
				return err
			}

			if len(packages) > 0 {
				if err := tx.Create(&packages).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
