package queries

import (
	"errors"
	"fmt"
	"time"

	"seller/internal/pkg/errs"
	"seller/internal/pkg/guard"
)

var ErrGetExpiredUnpaidOrdersQueryIsNotConstructed = errors.New(
	"GetExpiredUnpaidOrdersQuery must be created via NewGetExpiredUnpaidOrdersQuery constructor",
)

// GetExpiredUnpaidOrdersQuery finds New orders still waiting for payment that
// were created before a cutoff.
type GetExpiredUnpaidOrdersQuery struct {
	createdBefore time.Time
	limit         int
	guard         guard.ConstructorGuard
}

func NewGetExpiredUnpaidOrdersQuery(createdBefore time.Time, limit int) (GetExpiredUnpaidOrdersQuery, error) {
	var cutoffErr, limitErr error
	if createdBefore.IsZero() {
		cutoffErr = errs.NewValueIsRequiredError("createdBefore")
	}
	if limit <= 0 {
		limitErr = errs.NewValueIsInvalidErrorWithCause("limit", fmt.Errorf("%d is not greater than 0", limit))
	}
	if err := errors.Join(cutoffErr, limitErr); err != nil {
		return GetExpiredUnpaidOrdersQuery{}, err
	}

	return GetExpiredUnpaidOrdersQuery{
		createdBefore: createdBefore,
		limit:         limit,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetExpiredUnpaidOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetExpiredUnpaidOrdersQueryIsNotConstructed)
}

func (q GetExpiredUnpaidOrdersQuery) CreatedBefore() time.Time { return q.createdBefore }
func (q GetExpiredUnpaidOrdersQuery) Limit() int               { return q.limit }
