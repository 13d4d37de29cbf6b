package queries

import (
	"errors"
	"fmt"
	"strings"

	"seller/internal/pkg/errs"
	"seller/internal/pkg/guard"
)

const (
	MaxPage         = 1_000_000
	MaxPageSize     = 100
	DefaultPageSize = 10
)

var ErrListBuyerOrdersQueryIsNotConstructed = errors.New(
	"ListBuyerOrdersQuery must be created via NewListBuyerOrdersQuery constructor",
)

// ListBuyerOrdersQuery pages through the orders of one buyer. Page is 0-based.
type ListBuyerOrdersQuery struct {
	buyerID string
	page    int
	size    int
	guard   guard.ConstructorGuard
}

func NewListBuyerOrdersQuery(buyerID string, page, size int) (ListBuyerOrdersQuery, error) {
	q := ListBuyerOrdersQuery{
		buyerID: strings.TrimSpace(buyerID),
		page:    page,
		size:    size,
	}

	var buyerErr, pageErr, sizeErr error
	if q.buyerID == "" {
		buyerErr = errs.NewValueIsRequiredError("buyerId")
	}
	if page < 0 {
		pageErr = errs.NewValueIsInvalidErrorWithCause("page", fmt.Errorf("%d is negative", page))
	} else if page > MaxPage {
		pageErr = errs.NewValueIsOutOfRangeError("page", page, 0, MaxPage)
	}
	if size < 1 || size > MaxPageSize {
		sizeErr = errs.NewValueIsOutOfRangeError("size", size, 1, MaxPageSize)
	}

	if err := errors.Join(buyerErr, pageErr, sizeErr); err != nil {
		return ListBuyerOrdersQuery{}, err
	}

	q.guard = guard.NewConstructorGuard()
	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q ListBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListBuyerOrdersQueryIsNotConstructed)
}

func (q ListBuyerOrdersQuery) BuyerID() string { return q.buyerID }
func (q ListBuyerOrdersQuery) Page() int       { return q.page }
func (q ListBuyerOrdersQuery) Size() int       { return q.size }

// Offset is the number of rows skipped before the requested page.
func (q ListBuyerOrdersQuery) Offset() int64 {
	return int64(q.page) * int64(q.size)
}

// ListBuyerOrdersQueryResponse is one page of order headers.
type ListBuyerOrdersQueryResponse struct {
	Orders        []OrderSummary
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}
