package order

import (
	"time"

	"seller/internal/core/domain/model/kernel"
)

// EventType names a lifecycle transition.
type EventType string

const (
	EventOrderCreated  EventType = "OrderCreated"
	EventOrderCanceled EventType = "OrderCanceled"
	EventOrderPaid     EventType = "OrderPaid"
	EventOrderFinished EventType = "OrderFinished"
)

// Event is recorded by the aggregate on every transition and carries the
// state of the order right after it. Events are published once the
// transaction that produced them commits.
type Event struct {
	ID         kernel.UUID
	Type       EventType
	OrderID    kernel.UUID
	BuyerID    string
	Status     Status
	PayStatus  PayStatus
	Total      kernel.Money
	OccurredAt time.Time
}
