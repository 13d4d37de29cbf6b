package queries

import (
	"context"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetExpiredUnpaidOrdersQueryHandler returns ids of expired unpaid orders,
// oldest first.
type GetExpiredUnpaidOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetExpiredUnpaidOrdersQueryHandler(db *gorm.DB) GetExpiredUnpaidOrdersQueryHandler {
	return GetExpiredUnpaidOrdersQueryHandler{db: db}
}

func (h GetExpiredUnpaidOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetExpiredUnpaidOrdersQuery,
) ([]kernel.UUID, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id
		FROM order_master
		WHERE status = ? AND pay_status = ? AND created_at < ?
		ORDER BY created_at, id
		LIMIT ?
	`, int(order.New), int(order.PayWait), query.CreatedBefore().UTC(), query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]kernel.UUID, 0)
	for rows.Next() {
		var raw uuid.UUID
		if err = rows.Scan(&raw); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(raw[:])
		if idErr != nil {
			return nil, idErr
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return ids, nil
}
