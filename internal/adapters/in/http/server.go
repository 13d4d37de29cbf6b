package http

import (
	"context"
	"net/http"

	"seller/internal/core/application/usecases/commands"
	"seller/internal/core/application/usecases/queries"
	"seller/internal/core/domain/model/kernel"
	"seller/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"
)

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	PayOrderHandler interface {
		Handle(ctx context.Context, cmd commands.PayOrderCommand) (*order.Order, error)
	}
	FinishOrderHandler interface {
		Handle(ctx context.Context, cmd commands.FinishOrderCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	ListBuyerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListBuyerOrdersQuery) (queries.ListBuyerOrdersQueryResponse, error)
	}

	// OperationRecorder counts order operations by outcome.
	OperationRecorder interface {
		RecordOrderOperation(operation string, err error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateOrder     CreateOrderHandler
	CancelOrder     CancelOrderHandler
	PayOrder        PayOrderHandler
	FinishOrder     FinishOrderHandler
	GetOrder        GetOrderHandler
	ListBuyerOrders ListBuyerOrdersHandler
}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	handlers Handlers
	recorder OperationRecorder
	logger   *log.Entry
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers Handlers, recorder OperationRecorder, logger *log.Entry) *Server {
	return &Server{
		handlers: handlers,
		recorder: recorder,
		logger:   logger.WithField("component", "http_server"),
	}
}

// CreateOrder handles POST /api/v1/orders - creates an order from a cart.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, Result{Code: CodeParamError, Msg: "invalid request body"})
	}

	buyer, err := order.NewBuyer(body.Name, body.Phone, body.Address, body.BuyerID)
	if err != nil {
		return s.fail(ctx, "create", err)
	}

	items := make([]commands.OrderItem, 0, len(body.Items))
	for _, item := range body.Items {
		items = append(items, commands.OrderItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), buyer, items)
	if err != nil {
		return s.fail(ctx, "create", err)
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, "create", err)
	}

	s.recorder.RecordOrderOperation("create", nil)
	return ctx.JSON(http.StatusCreated, success(newOrder(queries.NewGetOrderQueryResponse(created))))
}

// ListOrders handles GET /api/v1/orders - one page of a buyer's orders.
func (s *Server) ListOrders(ctx echo.Context, params ListOrdersParams) error {
	page, size := 0, queries.DefaultPageSize
	if params.Page != nil {
		page = *params.Page
	}
	if params.Size != nil {
		size = *params.Size
	}

	query, err := queries.NewListBuyerOrdersQuery(params.BuyerID, page, size)
	if err != nil {
		return s.fail(ctx, "list", err)
	}

	resp, err := s.handlers.ListBuyerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "list", err)
	}

	s.recorder.RecordOrderOperation("list", nil)
	return ctx.JSON(http.StatusOK, success(newOrderPage(resp)))
}

// GetOrder handles GET /api/v1/orders/{orderId} - an order with its lines.
func (s *Server) GetOrder(ctx echo.Context, orderID string) error {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return s.fail(ctx, "get", err)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return s.fail(ctx, "get", err)
	}

	resp, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, "get", err)
	}

	s.recorder.RecordOrderOperation("get", nil)
	return ctx.JSON(http.StatusOK, success(newOrder(resp)))
}

// CancelOrder handles POST /api/v1/orders/{orderId}/cancel.
func (s *Server) CancelOrder(ctx echo.Context, orderID string) error {
	return s.transition(ctx, "cancel", orderID, func(c context.Context, id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewCancelOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.CancelOrder.Handle(c, cmd)
	})
}

// PayOrder handles POST /api/v1/orders/{orderId}/pay.
func (s *Server) PayOrder(ctx echo.Context, orderID string) error {
	return s.transition(ctx, "pay", orderID, func(c context.Context, id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewPayOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.PayOrder.Handle(c, cmd)
	})
}

// FinishOrder handles POST /api/v1/orders/{orderId}/finish.
func (s *Server) FinishOrder(ctx echo.Context, orderID string) error {
	return s.transition(ctx, "finish", orderID, func(c context.Context, id kernel.UUID) (*order.Order, error) {
		cmd, err := commands.NewFinishOrderCommand(id)
		if err != nil {
			return nil, err
		}
		return s.handlers.FinishOrder.Handle(c, cmd)
	})
}

func (s *Server) transition(
	ctx echo.Context,
	operation string,
	orderID string,
	handle func(context.Context, kernel.UUID) (*order.Order, error),
) error {
	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	updated, err := handle(ctx.Request().Context(), id)
	if err != nil {
		return s.fail(ctx, operation, err)
	}

	s.recorder.RecordOrderOperation(operation, nil)
	return ctx.JSON(http.StatusOK, success(newOrder(queries.NewGetOrderQueryResponse(updated))))
}

func (s *Server) fail(ctx echo.Context, operation string, err error) error {
	s.recorder.RecordOrderOperation(operation, err)

	status, result, expected := errorResult(err)
	entry := s.logger.WithError(err).WithFields(log.Fields{
		"operation": operation,
		"code":      result.Code,
	})
	if expected {
		entry.Info("order operation rejected")
	} else {
		entry.Error("order operation failed")
	}

	return ctx.JSON(status, result)
}
