package order

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/pkg/errs"
)

// PricingMode tells whether a line is counted in pieces or in packages.
type PricingMode int

const (
	PricingUnknown PricingMode = iota
	PerPiece
	PerPackage
)

var pricingModeNames = map[PricingMode]string{
	PerPiece:   "per-piece",
	PerPackage: "per-package",
}

func ParsePricingMode(s string) (PricingMode, error) {
	for mode, name := range pricingModeNames {
		if name == s {
			return mode, nil
		}
	}
	return PricingUnknown, errs.NewValueIsInvalidErrorWithCause("pricing mode",
		fmt.Errorf("%q is not a valid pricing mode", s))
}

func (m PricingMode) String() string {
	if name, ok := pricingModeNames[m]; ok {
		return name
	}
	return "unknown"
}

// MaxQuantity bounds a line so its load cannot overflow.
const MaxQuantity = 1_000_000

// LineItem references a catalog product. For PerPackage lines Quantity counts
// packages and PackageQuantity selects the package size (0 means the default one).
type LineItem struct {
	productID       string
	quantity        int
	pricing         PricingMode
	packageQuantity int
}

func NewLineItem(productID string, quantity int, pricing PricingMode, packageQuantity int) (LineItem, error) {
	var errList []error
	if strings.TrimSpace(productID) == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productId"))
	}
	switch {
	case quantity <= 0:
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	case quantity > MaxQuantity:
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity))
	}
	if _, ok := pricingModeNames[pricing]; !ok {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("pricing mode",
			fmt.Errorf("%d is not a valid pricing mode", pricing)))
	}
	if packageQuantity < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("packageQuantity",
			fmt.Errorf("%d is negative", packageQuantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID:       productID,
		quantity:        quantity,
		pricing:         pricing,
		packageQuantity: packageQuantity,
	}, nil
}

func (i LineItem) ProductID() string    { return i.productID }
func (i LineItem) Quantity() int        { return i.quantity }
func (i LineItem) Pricing() PricingMode { return i.pricing }
func (i LineItem) PackageQuantity() int { return i.packageQuantity }
