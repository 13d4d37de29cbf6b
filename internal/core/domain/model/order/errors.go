package order

import "errors"

// Failures of the order lifecycle. Callers match them with errors.Is; the
// returned errors wrap them with the order id and the offending state.
var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrOrderDetailNotFound   = errors.New("order detail not found")
	ErrOrderDetailEmpty      = errors.New("order detail is empty")
	ErrOrderStatusInvalid    = errors.New("order status is invalid")
	ErrOrderPayStatusInvalid = errors.New("order pay status is invalid")
	ErrOrderUpdateFailed     = errors.New("order update failed")
)
