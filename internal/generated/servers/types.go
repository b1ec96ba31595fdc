package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for DeliveryStatus.
const (
	DeliveryStatusDeparture DeliveryStatus = "departure"
	DeliveryStatusDone      DeliveryStatus = "done"
	DeliveryStatusOngoing   DeliveryStatus = "ongoing"
	DeliveryStatusPending   DeliveryStatus = "pending"
)

// Defines values for DriverStatus.
const (
	DriverStatusAvailable        DriverStatus = "available"
	DriverStatusInTransit        DriverStatus = "in-transit"
	DriverStatusNotSet           DriverStatus = "not-set"
	DriverStatusUnavailable      DriverStatus = "unavailable"
	DriverStatusUnderMaintenance DriverStatus = "under-maintenance"
)

// Defines values for OrderStatus.
const (
	OrderStatusAssigned     OrderStatus = "assigned"
	OrderStatusCompleted    OrderStatus = "completed"
	OrderStatusDelivered    OrderStatus = "delivered"
	OrderStatusInTransit    OrderStatus = "in-transit"
	OrderStatusOnHold       OrderStatus = "on-hold"
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusUnassignable OrderStatus = "unassignable"
)

// Defines values for Pricing.
const (
	PerPackage Pricing = "per-package"
	PerPiece   Pricing = "per-piece"
)

// AuditEntry defines model for AuditEntry.
type AuditEntry struct {
	CustomId    *string             `json:"customId,omitempty"`
	From        *OrderStatus        `json:"from,omitempty"`
	Id          openapi_types.UUID  `json:"id"`
	Kind        string              `json:"kind"`
	Message     string              `json:"message"`
	OccurredAt  time.Time           `json:"occurredAt"`
	OrderId     *openapi_types.UUID `json:"orderId,omitempty"`
	Reason      *string             `json:"reason,omitempty"`
	To          *OrderStatus        `json:"to,omitempty"`
	VehicleName *string             `json:"vehicleName,omitempty"`
}

// DeliveryStatus defines model for DeliveryStatus.
type DeliveryStatus string

// DeliveryStatusChange defines model for DeliveryStatusChange.
type DeliveryStatusChange struct {
	Status DeliveryStatus `json:"status"`
}

// Dimensions defines model for Dimensions.
type Dimensions struct {
	Height int64 `json:"height" validate:"gt=0"`
	Length int64 `json:"length" validate:"gt=0"`
	Width  int64 `json:"width" validate:"gt=0"`
}

// DriverStatus defines model for DriverStatus.
type DriverStatus string

// DriverStatusChange defines model for DriverStatusChange.
type DriverStatusChange struct {
	Status DriverStatus `json:"status"`
}

// Error defines model for Error.
type Error struct {
	Code       int32     `json:"code"`
	Message    string    `json:"message"`
	Violations *[]string `json:"violations,omitempty"`
}

// LineItem defines model for LineItem.
type LineItem struct {
	PackageQuantity *int    `json:"packageQuantity,omitempty"`
	Pricing         Pricing `json:"pricing"`
	ProductId       string  `json:"productId" validate:"required"`
	Quantity        int     `json:"quantity" validate:"gt=0"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Cluster      *string             `json:"cluster,omitempty"`
	CompanyName  string              `json:"companyName" validate:"required"`
	CustomId     string              `json:"customId" validate:"required"`
	DeliveryDate *openapi_types.Date `json:"deliveryDate,omitempty"`
	Items        []LineItem          `json:"items" validate:"required,min=1,dive"`
}

// NewVehicle defines model for NewVehicle.
type NewVehicle struct {
	Capacity   int64      `json:"capacity" validate:"gt=0"`
	Dimensions Dimensions `json:"dimensions"`
	Driver     *string    `json:"driver,omitempty"`
	Name       string     `json:"name" validate:"required"`
}

// Order defines model for Order.
type Order struct {
	Cluster        *string             `json:"cluster,omitempty"`
	CompanyName    string              `json:"companyName"`
	CustomId       string              `json:"customId"`
	DeliveryDate   *openapi_types.Date `json:"deliveryDate,omitempty"`
	DeliveryStatus DeliveryStatus      `json:"deliveryStatus"`
	Id             openapi_types.UUID  `json:"id"`
	Load           int64               `json:"load"`
	Reason         *string             `json:"reason,omitempty"`
	Status         OrderStatus         `json:"status"`
	TotalPrice     string              `json:"totalPrice"`
	UpdatedAt      time.Time           `json:"updatedAt"`
	VehicleId      *openapi_types.UUID `json:"vehicleId,omitempty"`
	VehicleName    *string             `json:"vehicleName,omitempty"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// Placement defines model for Placement.
type Placement struct {
	Load        int64               `json:"load"`
	OrderId     openapi_types.UUID  `json:"orderId"`
	Reason      *string             `json:"reason,omitempty"`
	Status      OrderStatus         `json:"status"`
	TotalPrice  string              `json:"totalPrice"`
	VehicleId   *openapi_types.UUID `json:"vehicleId,omitempty"`
	VehicleName *string             `json:"vehicleName,omitempty"`
}

// Pricing defines model for Pricing.
type Pricing string

// RebalanceSummary defines model for RebalanceSummary.
type RebalanceSummary struct {
	Assigned     int `json:"assigned"`
	OnHold       int `json:"onHold"`
	Pending      int `json:"pending"`
	Unassignable int `json:"unassignable"`
}

// Vehicle defines model for Vehicle.
type Vehicle struct {
	AssignedOrders int                `json:"assignedOrders"`
	Capacity       int64              `json:"capacity"`
	CurrentLoad    int64              `json:"currentLoad"`
	Dimensions     Dimensions         `json:"dimensions"`
	Driver         *string            `json:"driver,omitempty"`
	DriverStatus   DriverStatus       `json:"driverStatus"`
	Id             openapi_types.UUID `json:"id"`
	MaxDateLoad    int64              `json:"maxDateLoad"`
	Name           string             `json:"name"`
	Utilization    float64            `json:"utilization"`
}

// Limit defines model for Limit.
type Limit = int

// OrderId defines model for OrderId.
type OrderId = openapi_types.UUID

// GetAuditParams defines parameters for GetAudit.
type GetAuditParams struct {
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *[]OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// GetOrderAuditParams defines parameters for GetOrderAudit.
type GetOrderAuditParams struct {
	Limit *Limit `form:"limit,omitempty" json:"limit,omitempty"`
}

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// UpdateOrderJSONRequestBody defines body for UpdateOrder for application/json ContentType.
type UpdateOrderJSONRequestBody = NewOrder

// AdvanceDeliveryStatusJSONRequestBody defines body for AdvanceDeliveryStatus for application/json ContentType.
type AdvanceDeliveryStatusJSONRequestBody = DeliveryStatusChange

// CreateVehicleJSONRequestBody defines body for CreateVehicle for application/json ContentType.
type CreateVehicleJSONRequestBody = NewVehicle

// ChangeDriverStatusJSONRequestBody defines body for ChangeDriverStatus for application/json ContentType.
type ChangeDriverStatusJSONRequestBody = DriverStatusChange
