// Package auditrepo appends audit entries to the audit_entries table.
package auditrepo

import (
	"time"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// EntryDTO is one stored audit entry. Entries appended together share
// OccurredAt; Position keeps their relative order.
type EntryDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	OrderID     *uuid.UUID `gorm:"type:uuid;index"`
	CustomID    string
	Kind        string `gorm:"not null"`
	FromStatus  string
	ToStatus    string
	VehicleName string
	Reason      string
	OccurredAt  time.Time `gorm:"not null;index"`
	Position    int       `gorm:"not null"`
}

func (EntryDTO) TableName() string {
	return "audit_entries"
}

func fromDomain(e audit.Entry, position int) EntryDTO {
	var orderID *uuid.UUID
	if id := e.OrderID(); id != nil {
		raw := id.Bytes()
		orderID = &raw
	}

	return EntryDTO{
		ID:          e.ID().Bytes(),
		OrderID:     orderID,
		CustomID:    e.CustomID(),
		Kind:        e.Kind().String(),
		FromStatus:  statusName(e.From()),
		ToStatus:    statusName(e.To()),
		VehicleName: e.VehicleName(),
		Reason:      e.Reason(),
		OccurredAt:  e.OccurredAt(),
		Position:    position,
	}
}

// statusName stores Unknown, the "from" of a new order, as an empty string.
func statusName(s order.Status) string {
	if s == order.Unknown {
		return ""
	}
	return s.String()
}
