package postgres

import (
	"dispatch/internal/adapters/out/postgres/auditrepo"
	"dispatch/internal/adapters/out/postgres/catalogrepo"
	"dispatch/internal/adapters/out/postgres/orderrepo"
	"dispatch/internal/adapters/out/postgres/vehiclerepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the dispatch service uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&catalogrepo.ProductDTO{},
		&catalogrepo.PackageDTO{},
		&vehiclerepo.VehicleDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.OrderHistoryDTO{},
		&auditrepo.EntryDTO{},
	)
}
