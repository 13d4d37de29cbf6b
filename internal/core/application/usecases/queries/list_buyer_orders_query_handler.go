package queries

import (
	"context"
	"database/sql"
	"time"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListBuyerOrdersQueryHandler reads order headers of one buyer, oldest first,
// with ties broken by id so that pages are stable. Lines are not loaded and no
// status filter is applied.
type ListBuyerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListBuyerOrdersQueryHandler(db *gorm.DB) ListBuyerOrdersQueryHandler {
	return ListBuyerOrdersQueryHandler{db: db}
}

func (h ListBuyerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListBuyerOrdersQuery,
) (ListBuyerOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListBuyerOrdersQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	var total int64
	if err := db.Raw(`SELECT COUNT(*) FROM order_master WHERE buyer_id = ?`, query.BuyerID()).
		Scan(&total).Error; err != nil {
		return ListBuyerOrdersQueryResponse{}, err
	}

	resp := ListBuyerOrdersQueryResponse{
		Orders:        make([]OrderSummary, 0),
		Page:          query.Page(),
		Size:          query.Size(),
		TotalElements: total,
		TotalPages:    int((total + int64(query.Size()) - 1) / int64(query.Size())),
	}
	if query.Offset() >= total {
		return resp, nil
	}

	rows, err := db.Raw(`
		SELECT
			id,
			buyer_name,
			buyer_phone,
			buyer_address,
			buyer_id,
			total_amount,
			status,
			pay_status,
			created_at,
			updated_at
		FROM order_master
		WHERE buyer_id = ?
		ORDER BY created_at, id
		LIMIT ? OFFSET ?
	`, query.BuyerID(), query.Size(), query.Offset()).Rows()
	if err != nil {
		return ListBuyerOrdersQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		summary, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return ListBuyerOrdersQueryResponse{}, scanErr
		}
		resp.Orders = append(resp.Orders, summary)
	}

	if err = rows.Err(); err != nil {
		return ListBuyerOrdersQueryResponse{}, err
	}

	return resp, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		summary              OrderSummary
		id                   uuid.UUID
		total                decimal.Decimal
		status, payStatus    int
		createdAt, updatedAt time.Time
	)

	if err := rows.Scan(
		&id,
		&summary.BuyerName,
		&summary.BuyerPhone,
		&summary.BuyerAddress,
		&summary.BuyerID,
		&total,
		&status,
		&payStatus,
		&createdAt,
		&updatedAt,
	); err != nil {
		return OrderSummary{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderSummary{}, err
	}

	summary.ID = orderID
	summary.Total = total
	summary.Status = order.Status(status)
	summary.PayStatus = order.PayStatus(payStatus)
	summary.CreatedAt = createdAt.UTC()
	summary.UpdatedAt = updatedAt.UTC()
	return summary, nil
}
