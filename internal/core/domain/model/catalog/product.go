package catalog

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Package is one packaging option of a product: Quantity pieces shipped together.
type Package struct {
	quantity int
	volume   int64
	box      kernel.Dimensions
	price    decimal.Decimal
}

// NewPackage validates and creates a packaging option.
func NewPackage(quantity int, volume int64, box kernel.Dimensions, price decimal.Decimal) (Package, error) {
	if err := errors.Join(
		positive("package quantity", int64(quantity)),
		nonNegative("package volume", volume),
		nonNegativePrice("package price", price),
	); err != nil {
		return Package{}, err
	}

	return Package{
		quantity: quantity,
		volume:   volume,
		box:      box,
		price:    price,
	}, nil
}

func (p Package) Quantity() int          { return p.quantity }
func (p Package) Volume() int64          { return p.volume }
func (p Package) Box() kernel.Dimensions { return p.box }
func (p Package) Price() decimal.Decimal { return p.price }

// Product is a catalog entry. It is immutable once built.
type Product struct {
	id          string
	name        string
	pieceVolume int64
	pieceBox    kernel.Dimensions
	piecePrice  decimal.Decimal
	packages    []Package
	guard       guard.ConstructorGuard
}

// NewProduct creates a product. The packages keep their given order: the first one
// is the default used when an order line does not name a known package size.
func NewProduct(
	id, name string,
	pieceVolume int64,
	pieceBox kernel.Dimensions,
	piecePrice decimal.Decimal,
	packages []Package,
) (*Product, error) {
	if err := errors.Join(
		required("product id", id),
		required("product name", name),
		nonNegative("piece volume", pieceVolume),
		nonNegativePrice("piece price", piecePrice),
	); err != nil {
		return nil, err
	}

	pkgs := make([]Package, len(packages))
	copy(pkgs, packages)

	return &Product{
		id:          id,
		name:        name,
		pieceVolume: pieceVolume,
		pieceBox:    pieceBox,
		piecePrice:  piecePrice,
		packages:    pkgs,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

func (p *Product) ID() string                  { return p.id }
func (p *Product) Name() string                { return p.name }
func (p *Product) PieceVolume() int64          { return p.pieceVolume }
func (p *Product) PieceBox() kernel.Dimensions { return p.pieceBox }
func (p *Product) PiecePrice() decimal.Decimal { return p.piecePrice }
func (p *Product) HasPackages() bool           { return len(p.packages) > 0 }

// Packages returns a copy of the packaging options.
func (p *Product) Packages() []Package {
	out := make([]Package, len(p.packages))
	copy(out, p.packages)
	return out
}

// PackageFor selects the package holding exactly quantity pieces, falling back to
// the first defined package. ok is false when the product has no packages at all.
func (p *Product) PackageFor(quantity int) (pkg Package, ok bool) {
	if len(p.packages) == 0 {
		return Package{}, false
	}
	for _, candidate := range p.packages {
		if candidate.quantity == quantity {
			return candidate, true
		}
	}
	return p.packages[0], true
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func positive(name string, value int64) error {
	if value <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", value))
	}
	return nil
}

func nonNegative(name string, value int64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", value))
	}
	return nil
}

func nonNegativePrice(name string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%s is negative", value))
	}
	return nil
}
