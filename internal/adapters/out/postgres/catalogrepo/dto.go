// Package catalogrepo reads the product catalog from the products and
// product_packages tables. The catalog is maintained by the product system;
// this service only reads it.
package catalogrepo

import (
	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// ProductDTO is one catalog product with its piece measurements.
type ProductDTO struct {
	ID          string          `gorm:"primaryKey"`
	Name        string          `gorm:"not null"`
	PieceVolume int64           `gorm:"not null"`
	PieceBox    BoxDTO          `gorm:"embedded;embeddedPrefix:piece_"`
	PiecePrice  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Packages    []PackageDTO    `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

func (ProductDTO) TableName() string {
	return "products"
}

// PackageDTO is one package size of a product. Position 0 is the default package.
type PackageDTO struct {
	ID        uint            `gorm:"primaryKey"`
	ProductID string          `gorm:"not null;index"`
	Position  int             `gorm:"not null"`
	Quantity  int             `gorm:"not null"`
	Volume    int64           `gorm:"not null"`
	Box       BoxDTO          `gorm:"embedded;embeddedPrefix:box_"`
	Price     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
}

func (PackageDTO) TableName() string {
	return "product_packages"
}

type BoxDTO struct {
	Length int64
	Width  int64
	Height int64
}

func fromDomain(p *catalog.Product) ProductDTO {
	packages := p.Packages()
	dtos := make([]PackageDTO, 0, len(packages))
	for i, pkg := range packages {
		dtos = append(dtos, PackageDTO{
			ProductID: p.ID(),
			Position:  i,
			Quantity:  pkg.Quantity(),
			Volume:    pkg.Volume(),
			Box:       boxFromDomain(pkg.Box()),
			Price:     pkg.Price(),
		})
	}

	return ProductDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		PieceVolume: p.PieceVolume(),
		PieceBox:    boxFromDomain(p.PieceBox()),
		PiecePrice:  p.PiecePrice(),
		Packages:    dtos,
	}
}

func toDomain(dto ProductDTO) (*catalog.Product, error) {
	pieceBox, err := dto.PieceBox.toDomain()
	if err != nil {
		return nil, err
	}

	packages := make([]catalog.Package, 0, len(dto.Packages))
	for _, pkgDTO := range dto.Packages {
		box, boxErr := pkgDTO.Box.toDomain()
		if boxErr != nil {
			return nil, boxErr
		}
		pkg, pkgErr := catalog.NewPackage(pkgDTO.Quantity, pkgDTO.Volume, box, pkgDTO.Price)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, pkg)
	}

	return catalog.NewProduct(dto.ID, dto.Name, dto.PieceVolume, pieceBox, dto.PiecePrice, packages)
}

func boxFromDomain(d kernel.Dimensions) BoxDTO {
	return BoxDTO{Length: d.Length(), Width: d.Width(), Height: d.Height()}
}

func (b BoxDTO) toDomain() (kernel.Dimensions, error) {
	return kernel.NewDimensions(b.Length, b.Width, b.Height)
}
