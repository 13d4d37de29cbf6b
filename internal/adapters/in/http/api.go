package http

import (
	"net/http"
	"time"

	"seller/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// NewOrder is the body of POST /api/v1/orders.
type NewOrder struct {
	Name    string         `json:"name"`
	Phone   string         `json:"phone"`
	Address string         `json:"address"`
	BuyerID string         `json:"buyerId"`
	Items   []NewOrderItem `json:"items"`
}

type NewOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ListOrdersParams are the query parameters of GET /api/v1/orders.
type ListOrdersParams struct {
	BuyerID string `form:"buyerId" json:"buyerId"`
	Page    *int   `form:"page,omitempty" json:"page,omitempty"`
	Size    *int   `form:"size,omitempty" json:"size,omitempty"`
}

type OrderLine struct {
	ID          string `json:"id"`
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	UnitPrice   string `json:"unitPrice"`
	Quantity    int    `json:"quantity"`
}

type Order struct {
	ID           string      `json:"id"`
	BuyerName    string      `json:"buyerName"`
	BuyerPhone   string      `json:"buyerPhone"`
	BuyerAddress string      `json:"buyerAddress"`
	BuyerID      string      `json:"buyerId"`
	Total        string      `json:"total"`
	Status       string      `json:"status"`
	PayStatus    string      `json:"payStatus"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
	Lines        []OrderLine `json:"lines,omitempty"`
}

type OrderPage struct {
	Orders        []Order `json:"orders"`
	Page          int     `json:"page"`
	Size          int     `json:"size"`
	TotalElements int64   `json:"totalElements"`
	TotalPages    int     `json:"totalPages"`
}

func newOrderSummary(s queries.OrderSummary) Order {
	return Order{
		ID:           s.ID.String(),
		BuyerName:    s.BuyerName,
		BuyerPhone:   s.BuyerPhone,
		BuyerAddress: s.BuyerAddress,
		BuyerID:      s.BuyerID,
		Total:        s.Total.StringFixed(2),
		Status:       s.Status.String(),
		PayStatus:    s.PayStatus.String(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func newOrder(r queries.GetOrderQueryResponse) Order {
	o := newOrderSummary(r.OrderSummary)
	o.Lines = make([]OrderLine, 0, len(r.Lines))
	for _, l := range r.Lines {
		o.Lines = append(o.Lines, OrderLine{
			ID:          l.ID.String(),
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			UnitPrice:   l.UnitPrice.StringFixed(2),
			Quantity:    l.Quantity,
		})
	}
	return o
}

func newOrderPage(r queries.ListBuyerOrdersQueryResponse) OrderPage {
	page := OrderPage{
		Orders:        make([]Order, 0, len(r.Orders)),
		Page:          r.Page,
		Size:          r.Size,
		TotalElements: r.TotalElements,
		TotalPages:    r.TotalPages,
	}
	for _, s := range r.Orders {
		page.Orders = append(page.Orders, newOrderSummary(s))
	}
	return page
}

// ServerInterface lists the operations of the order API.
type ServerInterface interface {
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context, params ListOrdersParams) error
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/cancel)
	CancelOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/pay)
	PayOrder(ctx echo.Context, orderID string) error
	// (POST /api/v1/orders/{orderId}/finish)
	FinishOrder(ctx echo.Context, orderID string) error
}

// ServerInterfaceWrapper binds path and query parameters before calling the
// handler.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var params ListOrdersParams

	if err := runtime.BindQueryParameter("form", true, true, "buyerId", ctx.QueryParams(), &params.BuyerID); err != nil {
		return paramError(ctx, "buyerId", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "page", ctx.QueryParams(), &params.Page); err != nil {
		return paramError(ctx, "page", err)
	}
	if err := runtime.BindQueryParameter("form", true, false, "size", ctx.QueryParams(), &params.Size); err != nil {
		return paramError(ctx, "size", err)
	}

	return w.Handler.ListOrders(ctx, params)
}

func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return paramError(ctx, "orderId", err)
	}
	return w.Handler.GetOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) CancelOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return paramError(ctx, "orderId", err)
	}
	return w.Handler.CancelOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) PayOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return paramError(ctx, "orderId", err)
	}
	return w.Handler.PayOrder(ctx, orderID)
}

func (w *ServerInterfaceWrapper) FinishOrder(ctx echo.Context) error {
	orderID, err := bindOrderID(ctx)
	if err != nil {
		return paramError(ctx, "orderId", err)
	}
	return w.Handler.FinishOrder(ctx, orderID)
}

func bindOrderID(ctx echo.Context) (string, error) {
	var orderID string
	err := runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderID,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return orderID, err
}

func paramError(ctx echo.Context, name string, err error) error {
	return ctx.JSON(http.StatusBadRequest, Result{
		Code: CodeParamError,
		Msg:  "invalid format for parameter " + name + ": " + err.Error(),
	})
}

// EchoRouter is satisfied by *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlersWithBaseURL registers every operation under baseURL, which
// is "/api/v1" when router is the root echo instance.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.POST(baseURL+"/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/orders", wrapper.ListOrders)
	router.GET(baseURL+"/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/orders/:orderId/cancel", wrapper.CancelOrder)
	router.POST(baseURL+"/orders/:orderId/pay", wrapper.PayOrder)
	router.POST(baseURL+"/orders/:orderId/finish", wrapper.FinishOrder)
}
