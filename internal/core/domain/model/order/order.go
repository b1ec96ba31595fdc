package order

import (
	"errors"
	"fmt"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not built by NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	ErrItemsAreRequired      = errs.NewValueIsRequiredError("items")
)

// Order is a purchase order and the aggregate root of this package.
//
// Load, box and total price are a cache of the last measurement against the
// catalog. Scheduling code measures the items again instead of trusting them.
//
// Invariants:
//   - customID and companyName are not blank
//   - there is at least one line item
//   - vehicleID is set exactly when the status can carry a vehicle
type Order struct {
	id             kernel.UUID
	customID       string
	companyName    string
	cluster        string
	deliveryDate   *kernel.Date
	items          []LineItem
	totalPrice     decimal.Decimal
	load           int64
	box            kernel.Dimensions
	vehicleID      *kernel.UUID
	status         Status
	deliveryStatus DeliveryStatus
	reason         string
	guard          guard.ConstructorGuard
}

// Details are the dispatcher editable fields of an order.
type Details struct {
	CustomID     string
	CompanyName  string
	Cluster      string
	DeliveryDate *kernel.Date
	Items        []LineItem
}

// NewOrder creates a Pending order with nothing measured yet.
//
// An empty Cluster means the order has no cluster; such orders are never placed
// on a vehicle automatically.
func NewOrder(id kernel.UUID, details Details) (*Order, error) {
	o := &Order{
		status:         Pending,
		deliveryStatus: DeliveryPending,
		guard:          guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Snapshot is the full persisted state of an order.
type Snapshot struct {
	ID             kernel.UUID
	Details        Details
	TotalPrice     decimal.Decimal
	Load           int64
	Box            kernel.Dimensions
	VehicleID      *kernel.UUID
	Status         Status
	DeliveryStatus DeliveryStatus
	Reason         string
}

// RestoreOrder rebuilds an order loaded from storage.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		totalPrice: s.TotalPrice,
		load:       s.Load,
		box:        s.Box,
		reason:     s.Reason,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setDetails(s.Details),
		s.Status.Validate(),
		s.DeliveryStatus.Validate(),
		validateVehicle(s.Status, s.VehicleID),
	); err != nil {
		return nil, err
	}

	o.status = s.Status
	o.deliveryStatus = s.DeliveryStatus
	if s.VehicleID != nil {
		vid := *s.VehicleID
		o.vehicleID = &vid
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                { return o.id }
func (o *Order) CustomID() string               { return o.customID }
func (o *Order) CompanyName() string            { return o.companyName }
func (o *Order) TotalPrice() decimal.Decimal    { return o.totalPrice }
func (o *Order) Load() int64                    { return o.load }
func (o *Order) Box() kernel.Dimensions         { return o.box }
func (o *Order) Status() Status                 { return o.status }
func (o *Order) DeliveryStatus() DeliveryStatus { return o.deliveryStatus }
func (o *Order) Reason() string                 { return o.reason }

// Cluster returns the scheduling cluster and whether the order has one.
func (o *Order) Cluster() (string, bool) {
	return o.cluster, o.cluster != ""
}

// DeliveryDate returns the requested delivery day and whether one is set.
func (o *Order) DeliveryDate() (kernel.Date, bool) {
	if o.deliveryDate == nil {
		return kernel.Date{}, false
	}
	return *o.deliveryDate, true
}

// Items returns a copy of the line items.
func (o *Order) Items() []LineItem {
	out := make([]LineItem, len(o.items))
	copy(out, o.items)
	return out
}

// Vehicle returns the carrying vehicle, nil when none.
func (o *Order) Vehicle() *kernel.UUID {
	if o.vehicleID == nil {
		return nil
	}
	vid := *o.vehicleID
	return &vid
}

// IsOn reports whether the order is currently placed on the given vehicle.
func (o *Order) IsOn(vehicleID kernel.UUID) bool {
	return o.vehicleID != nil && o.vehicleID.IsEqual(vehicleID)
}

// Snapshot returns the full state, used by persistence and outcome reporting.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID: o.id,
		Details: Details{
			CustomID:     o.customID,
			CompanyName:  o.companyName,
			Cluster:      o.cluster,
			DeliveryDate: o.deliveryDateCopy(),
			Items:        o.Items(),
		},
		TotalPrice:     o.totalPrice,
		Load:           o.load,
		Box:            o.box,
		VehicleID:      o.Vehicle(),
		Status:         o.status,
		DeliveryStatus: o.deliveryStatus,
		Reason:         o.reason,
	}
}

// Edit replaces the dispatcher editable fields. Orders already handed to a
// driver cannot be edited. The cached measurement is cleared.
func (o *Order) Edit(details Details) error {
	if !o.status.IsActive() {
		return errs.NewTransitionNotAllowedError("order", o.status.String(), o.status.String(),
			"only orders that are not yet in transit can be edited")
	}
	if err := o.setDetails(details); err != nil {
		return err
	}
	o.load = 0
	o.box = kernel.Dimensions{}
	o.totalPrice = decimal.Zero
	return nil
}

// Measure stores the result of measuring the items against the catalog.
func (o *Order) Measure(load int64, box kernel.Dimensions, totalPrice decimal.Decimal) error {
	if load < 0 {
		return errs.NewValueIsInvalidErrorWithCause("load", fmt.Errorf("%d is negative", load))
	}
	o.load = load
	o.box = box
	o.totalPrice = totalPrice
	return nil
}

// AssignTo places the order on a vehicle.
func (o *Order) AssignTo(vehicleID kernel.UUID, trigger Trigger, reason string) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}
	next, err := o.status.Transition(Assigned, trigger)
	if err != nil {
		return err
	}
	o.status = next
	o.vehicleID = &vehicleID
	o.reason = reason
	return nil
}

// Release takes the order off any vehicle into Pending, OnHold or Unassignable.
func (o *Order) Release(to Status, trigger Trigger, reason string) error {
	if to.CanCarryVehicle() {
		return errs.NewTransitionNotAllowedError("order status", o.status.String(), to.String(),
			"release target keeps a vehicle")
	}
	next, err := o.status.Transition(to, trigger)
	if err != nil {
		return err
	}
	o.status = next
	o.vehicleID = nil
	o.reason = reason
	return nil
}

// StartTransit is applied when the carrying driver goes in transit. The delivery
// moves to Ongoing unless it is already further.
func (o *Order) StartTransit() error {
	next, err := o.status.Transition(InTransit, TriggerDriver)
	if err != nil {
		return err
	}
	o.status = next
	if o.deliveryStatus < DeliveryOngoing {
		o.deliveryStatus = DeliveryOngoing
	}
	return nil
}

// ReturnToAssigned puts an InTransit or OnHold order back on its vehicle.
func (o *Order) ReturnToAssigned(vehicleID kernel.UUID) error {
	next, err := o.status.Transition(Assigned, TriggerDriver)
	if err != nil {
		return err
	}
	o.status = next
	o.vehicleID = &vehicleID
	return nil
}

// AdvanceDelivery records driver progress. Reaching Done delivers the order.
func (o *Order) AdvanceDelivery(to DeliveryStatus, driverInTransit bool) error {
	next, err := o.deliveryStatus.Advance(to, driverInTransit)
	if err != nil {
		return err
	}
	if next == DeliveryDone {
		status, err := o.status.Transition(Delivered, TriggerDriver)
		if err != nil {
			return err
		}
		o.status = status
	}
	o.deliveryStatus = next
	return nil
}

// Complete is the dispatcher confirmation of a delivered order.
func (o *Order) Complete() error {
	next, err := o.status.Transition(Completed, TriggerAdmin)
	if err != nil {
		return err
	}
	o.status = next
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setDetails(d Details) error {
	var errList []error
	customID := strings.TrimSpace(d.CustomID)
	if customID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("customId"))
	}
	companyName := strings.TrimSpace(d.CompanyName)
	if companyName == "" {
		errList = append(errList, errs.NewValueIsRequiredError("companyName"))
	}
	if len(d.Items) == 0 {
		errList = append(errList, ErrItemsAreRequired)
	}
	for i, item := range d.Items {
		if item.pricing == PricingUnknown {
			errList = append(errList, errs.NewValueIsInvalidErrorWithCause("items",
				fmt.Errorf("item %d was not created via NewLineItem", i)))
		}
	}
	if d.DeliveryDate != nil {
		if err := d.DeliveryDate.Validate(); err != nil {
			errList = append(errList, err)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	o.customID = customID
	o.companyName = companyName
	o.cluster = strings.TrimSpace(d.Cluster)
	o.deliveryDate = nil
	if d.DeliveryDate != nil {
		date := *d.DeliveryDate
		o.deliveryDate = &date
	}
	o.items = make([]LineItem, len(d.Items))
	copy(o.items, d.Items)
	return nil
}

func (o *Order) deliveryDateCopy() *kernel.Date {
	if o.deliveryDate == nil {
		return nil
	}
	date := *o.deliveryDate
	return &date
}

func validateVehicle(status Status, vehicleID *kernel.UUID) error {
	if vehicleID != nil && !status.CanCarryVehicle() {
		return errs.NewValueIsInvalidErrorWithCause("vehicleId",
			fmt.Errorf("%s order cannot reference a vehicle", status))
	}
	if vehicleID == nil && status.CanCarryVehicle() {
		return errs.NewValueIsInvalidErrorWithCause("vehicleId",
			fmt.Errorf("%s order must reference a vehicle", status))
	}
	if vehicleID != nil {
		return vehicleID.Validate()
	}
	return nil
}
