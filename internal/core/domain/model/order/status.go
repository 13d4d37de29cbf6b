package order

import (
	"fmt"

	"seller/internal/pkg/errs"
)

// Status is the fulfilment state of an order.
//
// State transitions:
//
//	New ──┬──> Canceled
//	      └──> Finished
//
// Canceled and Finished are final.
type Status int

const (
	// Unknown catches uninitialized values and is never valid.
	Unknown Status = iota
	New
	Finished
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		New:      "New",
		Finished: "Finished",
		Canceled: "Canceled",
	}
}

// Validate rejects Unknown and any value outside the enumeration.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no transition leaves s.
func (s Status) IsFinal() bool {
	return s == Finished || s == Canceled
}

// Cancel transitions New to Canceled.
func (s Status) Cancel() (Status, error) {
	if s != New {
		return Unknown, fmt.Errorf("%w: cannot cancel order in status %s", ErrOrderStatusInvalid, s)
	}
	return Canceled, nil
}

// Finish transitions New to Finished.
func (s Status) Finish() (Status, error) {
	if s != New {
		return Unknown, fmt.Errorf("%w: cannot finish order in status %s", ErrOrderStatusInvalid, s)
	}
	return Finished, nil
}

// PayStatus is the payment state of an order, independent of Status.
//
//	Wait ──> Success
type PayStatus int

const (
	// PayUnknown catches uninitialized values and is never valid.
	PayUnknown PayStatus = iota
	PayWait
	PaySuccess
)

func getPayStatusStrings() map[PayStatus]string {
	return map[PayStatus]string{
		PayUnknown: "Unknown",
		PayWait:    "Wait",
		PaySuccess: "Success",
	}
}

// Validate rejects PayUnknown and any value outside the enumeration.
func (p PayStatus) Validate() error {
	if p != PayWait && p != PaySuccess {
		return errs.NewValueIsInvalidErrorWithCause("pay status", fmt.Errorf("%d is not a valid pay status", p))
	}
	return nil
}

func (p PayStatus) String() string {
	if str, ok := getPayStatusStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// Pay transitions Wait to Success.
func (p PayStatus) Pay() (PayStatus, error) {
	if p != PayWait {
		return PayUnknown, fmt.Errorf("%w: cannot pay order in pay status %s", ErrOrderPayStatusInvalid, p)
	}
	return PaySuccess, nil
}
