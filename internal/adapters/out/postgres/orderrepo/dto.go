// Package orderrepo provides data transfer objects and mapping functions for purchase order persistence.
// Active orders live in the orders table with their line items in order_line_items;
// completed orders are moved into order_history as immutable snapshots.
package orderrepo

import (
	"encoding/json"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The custom ID is unique among rows that are not soft-deleted, so a deleted
// order frees its custom ID.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomID       string          `gorm:"not null;uniqueIndex:idx_orders_custom_id,where:deleted_at IS NULL"`
	CompanyName    string          `gorm:"not null"`
	Cluster        string          `gorm:"index"`
	DeliveryDate   *time.Time      `gorm:"type:date;index"`
	TotalPrice     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Load           int64
	Box            BoxDTO     `gorm:"embedded;embeddedPrefix:box_"`
	VehicleID      *uuid.UUID `gorm:"type:uuid;index"`
	Status         string     `gorm:"not null;index"`
	DeliveryStatus string     `gorm:"not null"`
	Reason         string
	Items          []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// BoxDTO is the embedded bounding box of the largest package or piece.
type BoxDTO struct {
	Length int64
	Width  int64
	Height int64
}

// LineItemDTO is one line of an order. Position keeps the order lines were entered in.
type LineItemDTO struct {
	ID              uint      `gorm:"primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Position        int       `gorm:"not null"`
	ProductID       string    `gorm:"not null"`
	Quantity        int       `gorm:"not null"`
	Pricing         string    `gorm:"not null"`
	PackageQuantity int
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// OrderHistoryDTO is the archived state of a completed order.
type OrderHistoryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomID     string    `gorm:"not null;index"`
	CompanyName  string    `gorm:"not null"`
	Cluster      string
	DeliveryDate *time.Time      `gorm:"type:date"`
	TotalPrice   decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Load         int64
	VehicleID    *uuid.UUID     `gorm:"type:uuid"`
	LineItems    datatypes.JSON `gorm:"type:jsonb;not null"`
	ArchivedAt   time.Time      `gorm:"autoCreateTime"`
}

func (OrderHistoryDTO) TableName() string {
	return "order_history"
}

// archivedLineItem is the JSON shape of a line in order_history.line_items.
type archivedLineItem struct {
	ProductID       string `json:"productId"`
	Quantity        int    `json:"quantity"`
	Pricing         string `json:"pricing"`
	PackageQuantity int    `json:"packageQuantity,omitempty"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(o *order.Order) OrderDTO {
	id := o.ID().Bytes()
	cluster, _ := o.Cluster()

	items := o.Items()
	itemDTOs := make([]LineItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, LineItemDTO{
			OrderID:         id,
			Position:        i,
			ProductID:       item.ProductID(),
			Quantity:        item.Quantity(),
			Pricing:         item.Pricing().String(),
			PackageQuantity: item.PackageQuantity(),
		})
	}

	return OrderDTO{
		ID:           id,
		CustomID:     o.CustomID(),
		CompanyName:  o.CompanyName(),
		Cluster:      cluster,
		DeliveryDate: deliveryDate(o),
		TotalPrice:   o.TotalPrice(),
		Load:         o.Load(),
		Box: BoxDTO{
			Length: o.Box().Length(),
			Width:  o.Box().Width(),
			Height: o.Box().Height(),
		},
		VehicleID:      vehicleID(o),
		Status:         o.Status().String(),
		DeliveryStatus: o.DeliveryStatus().String(),
		Reason:         o.Reason(),
		Items:          itemDTOs,
	}
}

// toDomain rebuilds an order aggregate from its row and line items.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var vid *kernel.UUID
	if dto.VehicleID != nil {
		v, vehicleErr := kernel.UUIDFromBytes((*dto.VehicleID)[:])
		if vehicleErr != nil {
			return nil, vehicleErr
		}
		vid = &v
	}

	var date *kernel.Date
	if dto.DeliveryDate != nil {
		d := kernel.DateOf(*dto.DeliveryDate)
		date = &d
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		pricing, pricingErr := order.ParsePricingMode(itemDTO.Pricing)
		if pricingErr != nil {
			return nil, pricingErr
		}
		item, itemErr := order.NewLineItem(itemDTO.ProductID, itemDTO.Quantity, pricing, itemDTO.PackageQuantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	box, err := kernel.NewDimensions(dto.Box.Length, dto.Box.Width, dto.Box.Height)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	deliveryStatus, err := order.ParseDeliveryStatus(dto.DeliveryStatus)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(order.Snapshot{
		ID: id,
		Details: order.Details{
			CustomID:     dto.CustomID,
			CompanyName:  dto.CompanyName,
			Cluster:      dto.Cluster,
			DeliveryDate: date,
			Items:        items,
		},
		TotalPrice:     dto.TotalPrice,
		Load:           dto.Load,
		Box:            box,
		VehicleID:      vid,
		Status:         status,
		DeliveryStatus: deliveryStatus,
		Reason:         dto.Reason,
	})
}

// historyFromDomain snapshots a completed order for the archive.
func historyFromDomain(o *order.Order) (OrderHistoryDTO, error) {
	items := o.Items()
	lines := make([]archivedLineItem, 0, len(items))
	for _, item := range items {
		lines = append(lines, archivedLineItem{
			ProductID:       item.ProductID(),
			Quantity:        item.Quantity(),
			Pricing:         item.Pricing().String(),
			PackageQuantity: item.PackageQuantity(),
		})
	}

	raw, err := json.Marshal(lines)
	if err != nil {
		return OrderHistoryDTO{}, err
	}

	cluster, _ := o.Cluster()
	return OrderHistoryDTO{
		ID:           o.ID().Bytes(),
		CustomID:     o.CustomID(),
		CompanyName:  o.CompanyName(),
		Cluster:      cluster,
		DeliveryDate: deliveryDate(o),
		TotalPrice:   o.TotalPrice(),
		Load:         o.Load(),
		VehicleID:    vehicleID(o),
		LineItems:    datatypes.JSON(raw),
	}, nil
}

func deliveryDate(o *order.Order) *time.Time {
	d, ok := o.DeliveryDate()
	if !ok {
		return nil
	}
	t := d.Time()
	return &t
}

func vehicleID(o *order.Order) *uuid.UUID {
	id := o.Vehicle()
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}
