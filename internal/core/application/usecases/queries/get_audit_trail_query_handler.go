package queries

import (
	"context"
	"slices"
	"time"

	"dispatch/internal/core/domain/model/audit"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetAuditTrailQueryHandler struct {
	db *gorm.DB
}

func NewGetAuditTrailQueryHandler(db *gorm.DB) GetAuditTrailQueryHandler {
	return GetAuditTrailQueryHandler{db: db}
}

// Handle returns up to Limit entries, oldest first.
func (h GetAuditTrailQueryHandler) Handle(
	ctx context.Context,
	query GetAuditTrailQuery,
) ([]GetAuditTrailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			order_id,
			custom_id,
			kind,
			from_status,
			to_status,
			vehicle_name,
			reason,
			occurred_at
		FROM audit_entries`
	args := make([]any, 0, 2)
	if orderID := query.OrderID(); orderID != nil {
		sql += ` WHERE order_id = ?`
		args = append(args, orderID.Bytes())
	}
	sql += ` ORDER BY occurred_at DESC, position DESC LIMIT ?`
	args = append(args, query.Limit())

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	trail := make([]GetAuditTrailQueryResponse, 0)
	for rows.Next() {
		var (
			id                  uuid.UUID
			orderID             *uuid.UUID
			customID, kindName  string
			fromName, toName    string
			vehicleName, reason string
			occurredAt          time.Time
		)

		err = rows.Scan(&id, &orderID, &customID, &kindName, &fromName, &toName, &vehicleName, &reason, &occurredAt)
		if err != nil {
			return nil, err
		}

		entry, entryErr := restoreEntry(id, orderID, customID, kindName, fromName, toName, vehicleName, reason, occurredAt)
		if entryErr != nil {
			return nil, entryErr
		}
		trail = append(trail, responseFromEntry(entry))
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	slices.Reverse(trail)
	return trail, nil
}

func restoreEntry(
	id uuid.UUID,
	orderID *uuid.UUID,
	customID, kindName, fromName, toName, vehicleName, reason string,
	occurredAt time.Time,
) (audit.Entry, error) {
	entryID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return audit.Entry{}, err
	}

	var oid *kernel.UUID
	if orderID != nil {
		v, orderErr := kernel.UUIDFromBytes(orderID[:])
		if orderErr != nil {
			return audit.Entry{}, orderErr
		}
		oid = &v
	}

	kind, err := audit.ParseKind(kindName)
	if err != nil {
		return audit.Entry{}, err
	}

	from, err := parseStoredStatus(fromName)
	if err != nil {
		return audit.Entry{}, err
	}

	to, err := parseStoredStatus(toName)
	if err != nil {
		return audit.Entry{}, err
	}

	return audit.RestoreEntry(entryID, oid, customID, kind, from, to, vehicleName, reason, occurredAt)
}
