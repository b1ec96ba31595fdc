package commands

import (
	"errors"
	"slices"
	"strings"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

var (
	ErrCustomIDIsRequired    = errors.New("customId is required")
	ErrCompanyNameIsRequired = errors.New("companyName is required")
	ErrItemsAreRequired      = errors.New("at least one line item is required")
)

// orderFields are the dispatcher editable fields shared by the create and
// update commands.
type orderFields struct {
	customID     string
	companyName  string
	cluster      string
	deliveryDate *kernel.Date
	items        []order.LineItem
}

func newOrderFields(
	customID, companyName, cluster string,
	deliveryDate *kernel.Date,
	items []order.LineItem,
) (orderFields, error) {
	var f orderFields
	if err := errors.Join(
		f.setCustomID(customID),
		f.setCompanyName(companyName),
		f.setDeliveryDate(deliveryDate),
		f.setItems(items),
	); err != nil {
		return orderFields{}, err
	}
	f.cluster = strings.TrimSpace(cluster)
	return f, nil
}

func (f orderFields) details() order.Details {
	var date *kernel.Date
	if f.deliveryDate != nil {
		d := *f.deliveryDate
		date = &d
	}
	return order.Details{
		CustomID:     f.customID,
		CompanyName:  f.companyName,
		Cluster:      f.cluster,
		DeliveryDate: date,
		Items:        slices.Clone(f.items),
	}
}

func (f *orderFields) setCustomID(customID string) error {
	customID = strings.TrimSpace(customID)
	if customID == "" {
		return ErrCustomIDIsRequired
	}

	f.customID = customID
	return nil
}

func (f *orderFields) setCompanyName(companyName string) error {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		return ErrCompanyNameIsRequired
	}

	f.companyName = companyName
	return nil
}

func (f *orderFields) setDeliveryDate(date *kernel.Date) error {
	if date == nil {
		return nil
	}
	if err := date.Validate(); err != nil {
		return err
	}

	d := *date
	f.deliveryDate = &d
	return nil
}

func (f *orderFields) setItems(items []order.LineItem) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}

	f.items = slices.Clone(items)
	return nil
}
