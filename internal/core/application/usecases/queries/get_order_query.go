// Package queries contains read-only operations over orders: fetching one
// order with its lines, paging a buyer's orders, and finding orders left
// unpaid for too long.
package queries

import (
	"errors"
	"time"

	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"
	"seller/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery fetches one order with its lines.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	view, err := NewGetOrderQueryHandler(repo).Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderLineResponse is one line of GetOrderQueryResponse.
type OrderLineResponse struct {
	ID          kernel.UUID
	ProductID   string
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    int
}

// GetOrderQueryResponse is the merged view of an order header and its lines.
type GetOrderQueryResponse struct {
	OrderSummary
	Lines []OrderLineResponse
}

// OrderSummary is an order header without lines.
type OrderSummary struct {
	ID           kernel.UUID
	BuyerName    string
	BuyerPhone   string
	BuyerAddress string
	BuyerID      string
	Total        decimal.Decimal
	Status       order.Status
	PayStatus    order.PayStatus
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewOrderSummary maps an aggregate to its header view.
func NewOrderSummary(o *order.Order) OrderSummary {
	buyer := o.Buyer()
	return OrderSummary{
		ID:           o.ID(),
		BuyerName:    buyer.Name(),
		BuyerPhone:   buyer.Phone(),
		BuyerAddress: buyer.Address(),
		BuyerID:      buyer.ID(),
		Total:        o.Total().Amount(),
		Status:       o.Status(),
		PayStatus:    o.PayStatus(),
		CreatedAt:    o.CreatedAt(),
		UpdatedAt:    o.UpdatedAt(),
	}
}

// NewGetOrderQueryResponse maps an aggregate and its lines to the merged view.
func NewGetOrderQueryResponse(o *order.Order) GetOrderQueryResponse {
	lines := o.Lines()
	resp := GetOrderQueryResponse{
		OrderSummary: NewOrderSummary(o),
		Lines:        make([]OrderLineResponse, 0, len(lines)),
	}
	for _, l := range lines {
		resp.Lines = append(resp.Lines, OrderLineResponse{
			ID:          l.ID(),
			ProductID:   l.ProductID(),
			ProductName: l.ProductName(),
			UnitPrice:   l.UnitPrice().Amount(),
			Quantity:    l.Quantity(),
		})
	}
	return resp
}
