// Package http provides the inbound REST API of the order service.
// It translates HTTP requests into commands and queries and maps domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"fosso/internal/core/application/usecases/commands"
	"fosso/internal/core/application/usecases/queries"
	"fosso/internal/core/domain/model/kernel"
	"fosso/internal/core/domain/model/order"
	"fosso/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	defaultPage = 1
	defaultSize = 20
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	checkoutHandler             commands.CheckoutCommandHandler
	cancelOrderHandler          commands.CancelOrderCommandHandler
	cancelLineItemHandler       commands.CancelLineItemCommandHandler
	updateOrderStatusHandler    commands.UpdateOrderStatusCommandHandler
	updateLineItemStatusHandler commands.UpdateLineItemStatusCommandHandler

	// Query handlers
	getOrderHandler              queries.GetOrderQueryHandler
	getOrderByTrackingHandler    queries.GetOrderByTrackingNumberQueryHandler
	listCustomerOrdersHandler    queries.ListCustomerOrdersQueryHandler
	listOrdersByStatusHandler    queries.ListOrdersByStatusQueryHandler
	listMerchantOrdersHandler    queries.ListMerchantOrdersQueryHandler
	listOrdersByDateRangeHandler queries.ListOrdersByDateRangeQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	checkoutHandler commands.CheckoutCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	cancelLineItemHandler commands.CancelLineItemCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updateLineItemStatusHandler commands.UpdateLineItemStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderByTrackingHandler queries.GetOrderByTrackingNumberQueryHandler,
	listCustomerOrdersHandler queries.ListCustomerOrdersQueryHandler,
	listOrdersByStatusHandler queries.ListOrdersByStatusQueryHandler,
	listMerchantOrdersHandler queries.ListMerchantOrdersQueryHandler,
	listOrdersByDateRangeHandler queries.ListOrdersByDateRangeQueryHandler,
) *Server {
	return &Server{
		checkoutHandler:              checkoutHandler,
		cancelOrderHandler:           cancelOrderHandler,
		cancelLineItemHandler:        cancelLineItemHandler,
		updateOrderStatusHandler:     updateOrderStatusHandler,
		updateLineItemStatusHandler:  updateLineItemStatusHandler,
		getOrderHandler:              getOrderHandler,
		getOrderByTrackingHandler:    getOrderByTrackingHandler,
		listCustomerOrdersHandler:    listCustomerOrdersHandler,
		listOrdersByStatusHandler:    listOrdersByStatusHandler,
		listMerchantOrdersHandler:    listMerchantOrdersHandler,
		listOrdersByDateRangeHandler: listOrdersByDateRangeHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders/checkout", s.Checkout)
	api.GET("/orders", s.ListOrdersByStatus)
	api.GET("/orders/search", s.ListOrdersByDateRange)
	api.GET("/orders/tracking/:trackingNumber", s.GetOrderByTrackingNumber)
	api.GET("/orders/:orderId", s.GetOrder)
	api.POST("/orders/:orderId/cancel", s.CancelOrder)
	api.POST("/orders/:orderId/items/cancel", s.CancelLineItem)
	api.PUT("/orders/:orderId/status", s.UpdateOrderStatus)
	api.PUT("/orders/:orderId/items/status", s.UpdateLineItemStatus)
	api.GET("/customers/:customerId/orders", s.ListCustomerOrders)
	api.GET("/merchants/:merchantId/orders", s.ListMerchantOrders)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Checkout handles POST /api/v1/orders/checkout - assembles an order from the
// customer's cart.
func (s *Server) Checkout(ctx echo.Context) error {
	var req checkoutRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id: "+err.Error())
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid payment method: "+err.Error())
	}

	cmd, err := commands.NewCheckoutCommand(customerID, req.AddressID, paymentMethod)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid checkout data: "+err.Error())
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, checkoutResponse{
		OrderID:        result.OrderID.String(),
		TrackingNumber: result.TrackingNumber.String(),
	})
}

// CancelOrder handles POST /api/v1/orders/:orderId/cancel - cancels an entire order.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req cancelOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cancellation data: "+err.Error())
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelLineItem handles POST /api/v1/orders/:orderId/items/cancel - cancels a
// single line item and reprices the order.
func (s *Server) CancelLineItem(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req cancelLineItemRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewCancelLineItemCommand(orderID, req.ProductID, req.Color, req.Size, req.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid cancellation data: "+err.Error())
	}

	if err := s.cancelLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateOrderStatus handles PUT /api/v1/orders/:orderId/status - moves the
// order and all its active line items to a new status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status, req.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status data: "+err.Error())
	}

	if err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateLineItemStatus handles PUT /api/v1/orders/:orderId/items/status -
// moves one line item to a new status and recomputes the order status.
func (s *Server) UpdateLineItemStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	var req updateLineItemStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateLineItemStatusCommand(orderID, req.ProductID, req.Color, req.Size, status, req.Notes)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status data: "+err.Error())
	}

	if err := s.updateLineItemStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return domainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:orderId - retrieves one order with its
// line items.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(response))
}

// GetOrderByTrackingNumber handles GET /api/v1/orders/tracking/:trackingNumber.
func (s *Server) GetOrderByTrackingNumber(ctx echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(ctx.Param("trackingNumber"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid tracking number: "+err.Error())
	}

	query, err := queries.NewGetOrderByTrackingNumberQuery(trackingNumber)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	response, err := s.getOrderByTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderFromReadModel(response))
}

// ListCustomerOrders handles GET /api/v1/customers/:customerId/orders -
// retrieves the customer's order history, newest first.
func (s *Server) ListCustomerOrders(ctx echo.Context) error {
	customerID, err := kernel.UUIDFromString(ctx.Param("customerId"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid customer id: "+err.Error())
	}

	page, size, err := pagination(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid pagination: "+err.Error())
	}

	query, err := queries.NewListCustomerOrdersQuery(customerID, page, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	summaries, err := s.listCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesFromReadModel(summaries))
}

// ListOrdersByStatus handles GET /api/v1/orders?status=... - retrieves orders
// in the given status.
func (s *Server) ListOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid status: "+err.Error())
	}

	page, size, err := pagination(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid pagination: "+err.Error())
	}

	query, err := queries.NewListOrdersByStatusQuery(status, page, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	summaries, err := s.listOrdersByStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesFromReadModel(summaries))
}

// ListMerchantOrders handles GET /api/v1/merchants/:merchantId/orders -
// retrieves orders containing at least one of the merchant's line items.
func (s *Server) ListMerchantOrders(ctx echo.Context) error {
	page, size, err := pagination(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid pagination: "+err.Error())
	}

	query, err := queries.NewListMerchantOrdersQuery(ctx.Param("merchantId"), page, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	summaries, err := s.listMerchantOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesFromReadModel(summaries))
}

// ListOrdersByDateRange handles GET /api/v1/orders/search?from=...&to=... -
// retrieves orders placed within the given time window.
func (s *Server) ListOrdersByDateRange(ctx echo.Context) error {
	from, err := time.Parse(time.RFC3339, ctx.QueryParam("from"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid from date: "+err.Error())
	}

	to, err := time.Parse(time.RFC3339, ctx.QueryParam("to"))
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid to date: "+err.Error())
	}

	page, size, err := pagination(ctx)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid pagination: "+err.Error())
	}

	query, err := queries.NewListOrdersByDateRangeQuery(from, to, page, size)
	if err != nil {
		return errorJSON(ctx, http.StatusBadRequest, "Invalid query: "+err.Error())
	}

	summaries, err := s.listOrdersByDateRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return domainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, summariesFromReadModel(summaries))
}

// pagination reads the page and size query parameters, applying defaults when
// they are absent. Range validation is left to the query constructors.
func pagination(ctx echo.Context) (int, int, error) {
	page := defaultPage
	if raw := ctx.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		page = parsed
	}

	size := defaultSize
	if raw := ctx.QueryParam("size"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		size = parsed
	}

	return page, size, nil
}

// domainError maps use case errors onto HTTP status codes.
func domainError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return errorJSON(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, errs.ErrInvalidState):
		return errorJSON(ctx, http.StatusConflict, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrCartIsEmpty):
		return errorJSON(ctx, http.StatusBadRequest, err.Error())
	default:
		return errorJSON(ctx, http.StatusInternalServerError, "Internal server error")
	}
}

func errorJSON(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, Error{Code: code, Message: message})
}
