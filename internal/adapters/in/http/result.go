package http

import (
	"errors"
	"net/http"

	"seller/internal/core/domain/model/order"
	"seller/internal/core/domain/model/product"
	"seller/internal/pkg/errs"
)

// Result codes carried in the envelope. CodeSuccess is the only non-error code.
const (
	CodeSuccess             = 0
	CodeParamError          = 1
	CodeProductNotExist     = 10
	CodeProductStockError   = 11
	CodeOrderNotExist       = 12
	CodeOrderDetailNotExist = 13
	CodeOrderStatusError    = 14
	CodeOrderUpdateFail     = 15
	CodeOrderDetailEmpty    = 16
	CodePayStatusError      = 17
	CodeInternalError       = 500
)

// Result is the envelope of every API response.
type Result struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

func success(data any) Result {
	return Result{Code: CodeSuccess, Msg: "success", Data: data}
}

type errorMapping struct {
	target error
	code   int
	status int
}

var errorMappings = []errorMapping{
	{product.ErrProductNotFound, CodeProductNotExist, http.StatusNotFound},
	{product.ErrProductStockInsufficient, CodeProductStockError, http.StatusConflict},
	{order.ErrOrderNotFound, CodeOrderNotExist, http.StatusNotFound},
	{order.ErrOrderDetailNotFound, CodeOrderDetailNotExist, http.StatusNotFound},
	{order.ErrOrderStatusInvalid, CodeOrderStatusError, http.StatusConflict},
	{order.ErrOrderUpdateFailed, CodeOrderUpdateFail, http.StatusConflict},
	{order.ErrOrderDetailEmpty, CodeOrderDetailEmpty, http.StatusConflict},
	{order.ErrOrderPayStatusInvalid, CodePayStatusError, http.StatusConflict},
	{errs.ErrValueIsRequired, CodeParamError, http.StatusBadRequest},
	{errs.ErrValueIsInvalid, CodeParamError, http.StatusBadRequest},
	{errs.ErrValueIsOutOfRange, CodeParamError, http.StatusBadRequest},
}

// errorResult maps err to an HTTP status and envelope. The bool is false for
// unexpected errors, whose message is replaced.
func errorResult(err error) (int, Result, bool) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, Result{Code: m.code, Msg: err.Error()}, true
		}
	}
	return http.StatusInternalServerError, Result{Code: CodeInternalError, Msg: "internal server error"}, false
}
