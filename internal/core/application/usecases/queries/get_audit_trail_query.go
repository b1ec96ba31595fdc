package queries

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

const (
	DefaultAuditTrailLimit = 100
	MaxAuditTrailLimit     = 1000
)

var (
	ErrGetAuditTrailQueryIsNotConstructed = errors.New(
		"GetAuditTrailQuery must be created via NewGetAuditTrailQuery constructor",
	)
)

// GetAuditTrailQuery reads the most recent audit entries of one order, or of
// the whole fleet when no order is given.
type GetAuditTrailQuery struct {
	orderID *kernel.UUID
	limit   int
	guard   guard.ConstructorGuard
}

// NewGetAuditTrailQuery creates the query. A zero limit means DefaultAuditTrailLimit.
func NewGetAuditTrailQuery(orderID *kernel.UUID, limit int) (GetAuditTrailQuery, error) {
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			return GetAuditTrailQuery{}, err
		}
	}

	if limit == 0 {
		limit = DefaultAuditTrailLimit
	}
	if limit < 0 || limit > MaxAuditTrailLimit {
		return GetAuditTrailQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxAuditTrailLimit)
	}

	var id *kernel.UUID
	if orderID != nil {
		v := *orderID
		id = &v
	}

	return GetAuditTrailQuery{
		orderID: id,
		limit:   limit,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetAuditTrailQuery) Validate() error {
	return q.guard.Validate(ErrGetAuditTrailQueryIsNotConstructed)
}

func (q GetAuditTrailQuery) OrderID() *kernel.UUID {
	if q.orderID == nil {
		return nil
	}
	v := *q.orderID
	return &v
}

func (q GetAuditTrailQuery) Limit() int {
	return q.limit
}

// GetAuditTrailQueryResponse is one audit entry as shown to dispatchers.
type GetAuditTrailQueryResponse struct {
	ID          kernel.UUID
	OrderID     *kernel.UUID
	CustomID    string
	Kind        audit.Kind
	From        order.Status
	To          order.Status
	VehicleName string
	Reason      string
	Message     string
	OccurredAt  time.Time
}

func responseFromEntry(e audit.Entry) GetAuditTrailQueryResponse {
	return GetAuditTrailQueryResponse{
		ID:          e.ID(),
		OrderID:     e.OrderID(),
		CustomID:    e.CustomID(),
		Kind:        e.Kind(),
		From:        e.From(),
		To:          e.To(),
		VehicleName: e.VehicleName(),
		Reason:      e.Reason(),
		Message:     e.Message(),
		OccurredAt:  e.OccurredAt(),
	}
}

// parseStoredStatus maps an empty stored status back to order.Unknown.
func parseStoredStatus(s string) (order.Status, error) {
	if s == "" {
		return order.Unknown, nil
	}
	status, err := order.ParseStatus(s)
	if err != nil {
		return order.Unknown, fmt.Errorf("audit entry: %w", err)
	}
	return status, nil
}
