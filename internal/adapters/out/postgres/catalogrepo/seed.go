package catalogrepo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// seedBox is a bounding box in a catalog seed file.
type seedBox struct {
	Length int64 `json:"length"`
	Width  int64 `json:"width"`
	Height int64 `json:"height"`
}

type seedPackage struct {
	Quantity int             `json:"quantity"`
	Volume   int64           `json:"volume"`
	Box      seedBox         `json:"box"`
	Price    decimal.Decimal `json:"price"`
}

type seedProduct struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	PieceVolume int64           `json:"pieceVolume"`
	PieceBox    seedBox         `json:"pieceBox"`
	PiecePrice  decimal.Decimal `json:"piecePrice"`
	Packages    []seedPackage   `json:"packages"`
}

// ReadSeed decodes a JSON array of products, as exported by the catalog owner,
// into validated catalog products ready for Save.
func ReadSeed(r io.Reader) ([]*catalog.Product, error) {
	var raw []seedProduct
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode catalog seed: %w", err)
	}

	products := make([]*catalog.Product, 0, len(raw))
	var errList []error
	for i, sp := range raw {
		p, err := sp.toDomain()
		if err != nil {
			errList = append(errList, fmt.Errorf("product %d (%s): %w", i, sp.ID, err))
			continue
		}
		products = append(products, p)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, err
	}

	return products, nil
}

func (sp seedProduct) toDomain() (*catalog.Product, error) {
	pieceBox, err := sp.PieceBox.toDomain()
	if err != nil {
		return nil, err
	}

	packages := make([]catalog.Package, 0, len(sp.Packages))
	for _, pkg := range sp.Packages {
		box, boxErr := pkg.Box.toDomain()
		if boxErr != nil {
			return nil, boxErr
		}
		p, pkgErr := catalog.NewPackage(pkg.Quantity, pkg.Volume, box, pkg.Price)
		if pkgErr != nil {
			return nil, pkgErr
		}
		packages = append(packages, p)
	}

	return catalog.NewProduct(sp.ID, sp.Name, sp.PieceVolume, pieceBox, sp.PiecePrice, packages)
}

func (b seedBox) toDomain() (kernel.Dimensions, error) {
	return kernel.NewDimensions(b.Length, b.Width, b.Height)
}
