package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
		"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
	)
)

// GetActiveOrdersQuery lists the orders that are not yet completed, optionally
// narrowed to some statuses.
//
// Example:
//
//	query, err := NewGetActiveOrdersQuery(order.OnHold, order.Unassignable)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type GetActiveOrdersQuery struct {
	statuses []order.Status
	guard    guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates the query. No statuses means every active status.
// Completed is rejected because completed orders live in the history.
func NewGetActiveOrdersQuery(statuses ...order.Status) (GetActiveOrdersQuery, error) {
	filter := make([]order.Status, 0, len(statuses))
	for _, s := range statuses {
		if err := s.Validate(); err != nil {
			return GetActiveOrdersQuery{}, err
		}
		if s == order.Completed {
			return GetActiveOrdersQuery{}, errs.NewValueIsInvalidError("status completed")
		}
		filter = append(filter, s)
	}

	return GetActiveOrdersQuery{
		statuses: filter,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

func (q GetActiveOrdersQuery) Statuses() []order.Status {
	out := make([]order.Status, len(q.statuses))
	copy(out, q.statuses)
	return out
}

// GetActiveOrdersQueryResponse is one row of the dispatcher's order board.
type GetActiveOrdersQueryResponse struct {
	ID             kernel.UUID
	CustomID       string
	CompanyName    string
	Cluster        string
	DeliveryDate   *kernel.Date
	TotalPrice     decimal.Decimal
	Load           int64
	VehicleID      *kernel.UUID
	VehicleName    string
	Status         order.Status
	DeliveryStatus order.DeliveryStatus
	Reason         string
	UpdatedAt      time.Time
}
