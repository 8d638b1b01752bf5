// Package http exposes the order API over HTTP.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// Server handles HTTP requests for the order API.
type Server struct {
	// Command handlers
	createOrderHandler         commands.CreateOrderCommandHandler
	updateOrderStatusHandler   commands.UpdateOrderStatusCommandHandler
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler
	deleteOrderHandler         commands.DeleteOrderCommandHandler

	// Query handlers
	getOrderByIDHandler queries.GetOrderByIDQueryHandler
	getOrdersHandler    queries.GetOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	updatePaymentStatusHandler commands.UpdatePaymentStatusCommandHandler,
	deleteOrderHandler commands.DeleteOrderCommandHandler,
	getOrderByIDHandler queries.GetOrderByIDQueryHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		updateOrderStatusHandler:   updateOrderStatusHandler,
		updatePaymentStatusHandler: updatePaymentStatusHandler,
		deleteOrderHandler:         deleteOrderHandler,
		getOrderByIDHandler:        getOrderByIDHandler,
		getOrdersHandler:           getOrdersHandler,
	}
}

// RegisterRoutes attaches all order API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/orders/user/:userId", s.GetOrdersByUser)
	api.GET("/orders/status/:status", s.GetOrdersByStatus)
	api.GET("/orders/payment-status/:status", s.GetOrdersByPaymentStatus)
	api.GET("/orders/email/:email", s.GetOrdersByEmail)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.PATCH("/orders/:id/payment-status", s.UpdatePaymentStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
}

// Error is the JSON body returned for failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderLineRequest is one requested line in an order creation request.
// Either productId or an inline name and unitPrice must be present.
type OrderLineRequest struct {
	ProductID *string `json:"productId,omitempty"`
	Name      string  `json:"name,omitempty"`
	UnitPrice *string `json:"unitPrice,omitempty"`
	ImageRef  string  `json:"imageRef,omitempty"`
	Quantity  int     `json:"quantity"`
}

// CreateOrderRequest is the JSON body for POST /api/v1/orders.
// Exactly one of userId or guestEmail identifies the customer.
type CreateOrderRequest struct {
	UserID          *string            `json:"userId,omitempty"`
	GuestName       string             `json:"guestName,omitempty"`
	GuestEmail      *types.Email       `json:"guestEmail,omitempty"`
	GuestPhone      string             `json:"guestPhone,omitempty"`
	ShippingAddress string             `json:"shippingAddress,omitempty"`
	Status          *string            `json:"status,omitempty"`
	PaymentStatus   *string            `json:"paymentStatus,omitempty"`
	Lines           []OrderLineRequest `json:"lines"`
}

// UpdateStatusRequest is the JSON body for the status patch endpoints.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderLineResponse is one line snapshot in an order response.
type OrderLineResponse struct {
	ID        string  `json:"id"`
	ProductID *string `json:"productId,omitempty"`
	Name      string  `json:"name"`
	UnitPrice string  `json:"unitPrice"`
	ImageRef  string  `json:"imageRef,omitempty"`
	Quantity  int     `json:"quantity"`
	Subtotal  string  `json:"subtotal"`
}

// OrderResponse is the JSON representation of a stored order.
// Monetary values are rendered as fixed-point strings.
type OrderResponse struct {
	ID              string              `json:"id"`
	UserID          *string             `json:"userId,omitempty"`
	GuestName       string              `json:"guestName,omitempty"`
	GuestEmail      string              `json:"guestEmail,omitempty"`
	GuestPhone      string              `json:"guestPhone,omitempty"`
	ShippingAddress string              `json:"shippingAddress,omitempty"`
	Total           string              `json:"total"`
	Status          string              `json:"status"`
	PaymentStatus   string              `json:"paymentStatus"`
	CreatedAt       time.Time           `json:"createdAt"`
	Lines           []OrderLineResponse `json:"lines"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commandFromRequest(req)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, responseFromAggregate(created))
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(ctx echo.Context) error {
	return s.listOrders(ctx, queries.NewGetAllOrdersQuery())
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderByIDQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderByIDHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responseFromQuery(result))
}

// GetOrdersByUser handles GET /api/v1/orders/user/:userId.
func (s *Server) GetOrdersByUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("userId"))
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	query, err := queries.NewGetOrdersByCustomerQuery(userID)
	if err != nil {
		return badRequest(ctx, "Invalid user id")
	}

	return s.listOrders(ctx, query)
}

// GetOrdersByStatus handles GET /api/v1/orders/status/:status.
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := order.StatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid order status")
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid order status")
	}

	return s.listOrders(ctx, query)
}

// GetOrdersByPaymentStatus handles GET /api/v1/orders/payment-status/:status.
func (s *Server) GetOrdersByPaymentStatus(ctx echo.Context) error {
	status, err := order.PaymentStatusFromString(ctx.Param("status"))
	if err != nil {
		return badRequest(ctx, "Invalid payment status")
	}

	query, err := queries.NewGetOrdersByPaymentStatusQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid payment status")
	}

	return s.listOrders(ctx, query)
}

// GetOrdersByEmail handles GET /api/v1/orders/email/:email.
func (s *Server) GetOrdersByEmail(ctx echo.Context) error {
	query, err := queries.NewGetOrdersByCustomerEmailQuery(ctx.Param("email"))
	if err != nil {
		return badRequest(ctx, "Invalid email")
	}

	return s.listOrders(ctx, query)
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid order status: "+req.Status)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responseFromAggregate(updated))
}

// UpdatePaymentStatus handles PATCH /api/v1/orders/:id/payment-status.
func (s *Server) UpdatePaymentStatus(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req UpdateStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.PaymentStatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid payment status: "+req.Status)
	}

	cmd, err := commands.NewUpdatePaymentStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	updated, err := s.updatePaymentStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, responseFromAggregate(updated))
}

// DeleteOrder handles DELETE /api/v1/orders/:id.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if err = s.deleteOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) listOrders(ctx echo.Context, query queries.GetOrdersQuery) error {
	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = responseFromQuery(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

// commandFromRequest converts the request body to a create order command.
func commandFromRequest(req CreateOrderRequest) (commands.CreateOrderCommand, error) {
	customer, err := customerFromRequest(req)
	if err != nil {
		return commands.CreateOrderCommand{}, err
	}

	lines := make([]commands.OrderLine, 0, len(req.Lines))
	for _, lineReq := range req.Lines {
		line, lineErr := lineFromRequest(lineReq)
		if lineErr != nil {
			return commands.CreateOrderCommand{}, lineErr
		}
		lines = append(lines, line)
	}

	var status *order.Status
	if req.Status != nil {
		parsed, statusErr := order.StatusFromString(*req.Status)
		if statusErr != nil {
			return commands.CreateOrderCommand{}, statusErr
		}
		status = &parsed
	}

	var paymentStatus *order.PaymentStatus
	if req.PaymentStatus != nil {
		parsed, statusErr := order.PaymentStatusFromString(*req.PaymentStatus)
		if statusErr != nil {
			return commands.CreateOrderCommand{}, statusErr
		}
		paymentStatus = &parsed
	}

	return commands.NewCreateOrderCommand(kernel.NewUUID(), customer, lines, status, paymentStatus)
}

func customerFromRequest(req CreateOrderRequest) (order.CustomerRef, error) {
	if req.UserID != nil {
		userID, err := kernel.UUIDFromString(*req.UserID)
		if err != nil {
			return order.CustomerRef{}, err
		}
		return order.NewRegisteredCustomer(userID)
	}

	var email string
	if req.GuestEmail != nil {
		email = string(*req.GuestEmail)
	}
	return order.NewGuestCustomer(req.GuestName, email, req.GuestPhone, req.ShippingAddress)
}

func lineFromRequest(req OrderLineRequest) (commands.OrderLine, error) {
	var productID *kernel.UUID
	if req.ProductID != nil {
		parsed, err := kernel.UUIDFromString(*req.ProductID)
		if err != nil {
			return commands.OrderLine{}, err
		}
		productID = &parsed
	}

	var unitPrice *kernel.Money
	if req.UnitPrice != nil {
		parsed, err := kernel.MoneyFromString(*req.UnitPrice)
		if err != nil {
			return commands.OrderLine{}, err
		}
		unitPrice = &parsed
	}

	return commands.NewOrderLine(productID, req.Name, unitPrice, req.ImageRef, req.Quantity)
}

// responseFromAggregate maps a domain aggregate to its JSON representation.
func responseFromAggregate(aggregate *order.Order) OrderResponse {
	customer := aggregate.Customer()

	var userID *string
	if customer.IsRegistered() {
		id := customer.UserID().String()
		userID = &id
	}

	lines := make([]OrderLineResponse, 0, len(aggregate.Lines()))
	for _, line := range aggregate.Lines() {
		var productID *string
		if line.ProductID() != nil {
			id := line.ProductID().String()
			productID = &id
		}

		lines = append(lines, OrderLineResponse{
			ID:        line.ID().String(),
			ProductID: productID,
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().String(),
			ImageRef:  line.ImageRef(),
			Quantity:  line.Quantity(),
			Subtotal:  line.Subtotal().String(),
		})
	}

	return OrderResponse{
		ID:              aggregate.ID().String(),
		UserID:          userID,
		GuestName:       customer.GuestName(),
		GuestEmail:      customer.GuestEmail(),
		GuestPhone:      customer.GuestPhone(),
		ShippingAddress: customer.GuestAddress(),
		Total:           aggregate.Total().String(),
		Status:          aggregate.Status().String(),
		PaymentStatus:   aggregate.PaymentStatus().String(),
		CreatedAt:       aggregate.CreatedAt(),
		Lines:           lines,
	}
}

// responseFromQuery maps a read-side row to its JSON representation.
func responseFromQuery(result queries.OrderResponse) OrderResponse {
	var userID *string
	if result.CustomerID != nil {
		id := result.CustomerID.String()
		userID = &id
	}

	lines := make([]OrderLineResponse, 0, len(result.Lines))
	for _, line := range result.Lines {
		var productID *string
		if line.ProductID != nil {
			id := line.ProductID.String()
			productID = &id
		}

		lines = append(lines, OrderLineResponse{
			ID:        line.ID.String(),
			ProductID: productID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.StringFixed(2),
			ImageRef:  line.ImageRef,
			Quantity:  line.Quantity,
			Subtotal:  line.Subtotal.StringFixed(2),
		})
	}

	return OrderResponse{
		ID:              result.ID.String(),
		UserID:          userID,
		GuestName:       result.GuestName,
		GuestEmail:      result.GuestEmail,
		GuestPhone:      result.GuestPhone,
		ShippingAddress: result.GuestAddress,
		Total:           result.Total.StringFixed(2),
		Status:          result.Status,
		PaymentStatus:   result.PaymentStatus,
		CreatedAt:       result.CreatedAt,
		Lines:           lines,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps use case errors onto HTTP status codes. Missing targets
// are 404; bad references and invalid values are client errors.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrReferenceNotFound),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		code = http.StatusInternalServerError
	}

	return ctx.JSON(code, Error{
		Code:    code,
		Message: err.Error(),
	})
}
