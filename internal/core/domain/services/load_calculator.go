package services

import (
	"log/slog"
	"math"

	"dispatch/internal/core/domain/model/catalog"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/vehicle"

	"github.com/shopspring/decimal"
)

// Measurement is what an order weighs against the catalog.
type Measurement struct {
	Load  int64
	Box   kernel.Dimensions
	Price decimal.Decimal
}

// LoadCalculator measures orders against the product catalog.
//
// Business rules:
//   - A per-piece line counts quantity × piece volume
//   - A per-package line counts quantity × the volume of the package whose size
//     equals the line's package quantity, or of the first package when none does
//   - A per-package line of a product without packages falls back to the piece
//   - The order box is the per-axis maximum over its lines, not a sum
//   - A line referencing an unknown product contributes nothing and is logged
type LoadCalculator struct {
	catalog catalog.Catalog
	logger  *slog.Logger
}

// NewLoadCalculator creates a calculator over a catalog snapshot.
func NewLoadCalculator(c catalog.Catalog, logger *slog.Logger) LoadCalculator {
	if logger == nil {
		logger = slog.Default()
	}
	return LoadCalculator{
		catalog: c,
		logger:  logger.With("component", "LoadCalculator"),
	}
}

// ComputeLoad returns the volumetric load of the order.
func (c LoadCalculator) ComputeLoad(o *order.Order) int64 {
	return c.Measure(o).Load
}

// ComputeBoundingBox returns the largest piece or package box on each axis.
func (c LoadCalculator) ComputeBoundingBox(o *order.Order) kernel.Dimensions {
	return c.Measure(o).Box
}

// ComputePrice returns the total price of the order lines.
func (c LoadCalculator) ComputePrice(o *order.Order) decimal.Decimal {
	return c.Measure(o).Price
}

// Fits reports whether the order's box fits inside the vehicle's cargo box.
func (c LoadCalculator) Fits(o *order.Order, v *vehicle.Vehicle) bool {
	return c.ComputeBoundingBox(o).FitsWithin(v.Dimensions())
}

// Measure computes load, box and price in one pass over the lines.
func (c LoadCalculator) Measure(o *order.Order) Measurement {
	m := Measurement{Price: decimal.Zero}
	for _, item := range o.Items() {
		u, ok := c.resolve(item)
		if !ok {
			c.logger.Warn("unknown product in order line, ignoring it",
				"orderId", o.ID().String(),
				"customId", o.CustomID(),
				"productId", item.ProductID())
			continue
		}
		qty := int64(item.Quantity())
		m.Load = addLoad(m.Load, qty, u.volume)
		m.Box = m.Box.Max(u.box)
		m.Price = m.Price.Add(u.price.Mul(decimal.NewFromInt(qty)))
	}
	return m
}

// addLoad saturates at math.MaxInt64 so an oversized order is rejected by the
// capacity check instead of wrapping to a negative load.
func addLoad(total, qty, volume int64) int64 {
	if volume > 0 && qty > (math.MaxInt64-total)/volume {
		return math.MaxInt64
	}
	return total + qty*volume
}

// Remeasure measures the order and stores the result on it.
func (c LoadCalculator) Remeasure(o *order.Order) (Measurement, error) {
	m := c.Measure(o)
	if err := o.Measure(m.Load, m.Box, m.Price); err != nil {
		return Measurement{}, err
	}
	return m, nil
}

type unit struct {
	volume int64
	box    kernel.Dimensions
	price  decimal.Decimal
}

func (c LoadCalculator) resolve(item order.LineItem) (unit, bool) {
	p, ok := c.catalog.Product(item.ProductID())
	if !ok {
		return unit{}, false
	}

	if item.Pricing() == order.PerPackage {
		if pkg, found := p.PackageFor(item.PackageQuantity()); found {
			return unit{volume: pkg.Volume(), box: pkg.Box(), price: pkg.Price()}, true
		}
	}

	return unit{volume: p.PieceVolume(), box: p.PieceBox(), price: p.PiecePrice()}, true
}
