package order

import (
	"errors"
	"fmt"
	"time"

	"seller/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of a buyer's purchase.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a valid buyer
//   - A newly created order has at least one line
//   - The total is computed once, from the lines, at creation
//   - Status and PayStatus only change through Cancel, Pay and Finish
//
// Every successful transition records an Event, retrieved with DomainEvents.
type Order struct {
	id        kernel.UUID
	buyer     Buyer
	total     kernel.Money
	status    Status
	payStatus PayStatus
	lines     []*Line
	createdAt time.Time
	updatedAt time.Time

	events []Event

	isConstructed bool
}

// NewOrder creates an order for buyer from a non-empty list of items.
//
// Each item becomes a Line with a fresh identifier, and the total is the exact
// decimal sum of unit price × quantity over all lines. The order starts in
// status New with pay status Wait and records an OrderCreated event.
//
// Example:
//
//	buyer, _ := order.NewBuyer("Ann", "555-0100", "1 Main St", "buyer-1")
//	price, _ := kernel.MoneyFromString("10.00")
//	o, err := order.NewOrder(kernel.NewUUID(), buyer, []order.LineItem{
//	    {ProductID: "p-1", ProductName: "Tea", UnitPrice: price, Quantity: 2},
//	})
func NewOrder(id kernel.UUID, buyer Buyer, items []LineItem) (*Order, error) {
	if err := errors.Join(id.Validate(), buyer.Validate()); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: order %s has no lines", ErrOrderDetailEmpty, id)
	}

	lines := make([]*Line, 0, len(items))
	var lineErrs []error
	for i, item := range items {
		line, err := RestoreLine(kernel.NewUUID(), id, item.ProductID, item.ProductName, item.UnitPrice, item.Quantity)
		if err != nil {
			lineErrs = append(lineErrs, fmt.Errorf("line %d: %w", i, err))
			continue
		}
		lines = append(lines, line)
	}
	if err := errors.Join(lineErrs...); err != nil {
		return nil, err
	}

	createdAt := now()
	o := &Order{
		id:            id,
		buyer:         buyer,
		total:         sumLines(lines),
		status:        New,
		payStatus:     PayWait,
		lines:         lines,
		createdAt:     createdAt,
		updatedAt:     createdAt,
		isConstructed: true,
	}
	o.record(EventOrderCreated)

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. The stored total is taken
// as is and lines may be empty, which callers report as a missing detail.
func RestoreOrder(
	id kernel.UUID,
	buyer Buyer,
	total kernel.Money,
	status Status,
	payStatus PayStatus,
	createdAt time.Time,
	updatedAt time.Time,
	lines []*Line,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		buyer.Validate(),
		total.Validate(),
		status.Validate(),
		payStatus.Validate(),
	); err != nil {
		return nil, err
	}

	restored := make([]*Line, 0, len(lines))
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if !l.OrderID().IsEqual(id) {
			return nil, fmt.Errorf("line %s belongs to order %s, not %s", l.ID(), l.OrderID(), id)
		}
		restored = append(restored, l)
	}

	return &Order{
		id:            id,
		buyer:         buyer,
		total:         total,
		status:        status,
		payStatus:     payStatus,
		lines:         restored,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

func sumLines(lines []*Line) kernel.Money {
	total := kernel.ZeroMoney()
	for _, l := range lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID      { return o.id }
func (o *Order) Buyer() Buyer         { return o.buyer }
func (o *Order) Total() kernel.Money  { return o.total }
func (o *Order) Status() Status       { return o.status }
func (o *Order) PayStatus() PayStatus { return o.payStatus }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }
func (o *Order) IsPaid() bool         { return o.payStatus == PaySuccess }
func (o *Order) HasLines() bool       { return len(o.lines) > 0 }

// Lines returns a copy of the line slice; the lines themselves are immutable.
func (o *Order) Lines() []*Line {
	lines := make([]*Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Cancel moves a New order to Canceled. Paid orders may be canceled; the
// refund is the caller's concern.
func (o *Order) Cancel() error {
	status, err := o.status.Cancel()
	if err != nil {
		return fmt.Errorf("order %s: %w", o.id, err)
	}

	o.status = status
	o.touch()
	o.record(EventOrderCanceled)
	return nil
}

// Pay marks a New, unpaid order as paid. Status is left unchanged.
//
// Preconditions are checked in order: status must be New, then pay status
// must be Wait.
func (o *Order) Pay() error {
	if o.status != New {
		return fmt.Errorf("order %s: %w: cannot pay order in status %s", o.id, ErrOrderStatusInvalid, o.status)
	}

	payStatus, err := o.payStatus.Pay()
	if err != nil {
		return fmt.Errorf("order %s: %w", o.id, err)
	}

	o.payStatus = payStatus
	o.touch()
	o.record(EventOrderPaid)
	return nil
}

// Finish moves a New order to Finished regardless of its pay status.
func (o *Order) Finish() error {
	status, err := o.status.Finish()
	if err != nil {
		return fmt.Errorf("order %s: %w", o.id, err)
	}

	o.status = status
	o.touch()
	o.record(EventOrderFinished)
	return nil
}

// DomainEvents returns the events recorded since the last ClearDomainEvents.
func (o *Order) DomainEvents() []Event {
	events := make([]Event, len(o.events))
	copy(events, o.events)
	return events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) touch() {
	o.updatedAt = now()
}

// now is truncated to the precision PostgreSQL stores.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func (o *Order) record(eventType EventType) {
	o.events = append(o.events, Event{
		ID:         kernel.NewUUID(),
		Type:       eventType,
		OrderID:    o.id,
		BuyerID:    o.buyer.ID(),
		Status:     o.status,
		PayStatus:  o.payStatus,
		Total:      o.total,
		OccurredAt: o.updatedAt,
	})
}
