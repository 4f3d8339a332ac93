package http

import (
	"errors"
	"net/http"

	"salesorders/internal/core/application/usecases/commands"
	"salesorders/internal/core/application/usecases/queries"
	"salesorders/internal/core/domain/model/kernel"
	"salesorders/internal/core/domain/model/order"
	"salesorders/internal/core/domain/model/status"
	"salesorders/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CustomerIDHeader carries the authenticated customer's identifier on the
// customer-facing routes. Authentication itself happens upstream.
const CustomerIDHeader = "X-Customer-ID"

// Server wires HTTP routes to application use cases. System routes act with
// full privileges; customer routes are restricted to the caller's own orders.
type Server struct {
	// Command handlers
	createOrderHandler      commands.CreateOrderCommandHandler
	performOrderTxHandler   commands.PerformOrderTransactionCommandHandler
	performItemTxHandler    commands.PerformItemTransactionCommandHandler
	cancelOrderHandler      commands.CancelOrderCommandHandler
	cancelOrderItemsHandler commands.CancelOrderItemsCommandHandler
	backorderItemsHandler   commands.BackorderItemsCommandHandler
	restartOrderHandler     commands.RestartOrderCommandHandler
	restartDisputedHandler  commands.RestartDisputedOrderCommandHandler
	changeAddressHandler    commands.ChangeShipmentAddressCommandHandler
	changeSpeedHandler      commands.ChangeDeliverySpeedCommandHandler
	changeRecurrenceHandler commands.ChangeRecurrenceCommandHandler
	addItemsHandler         commands.AddItemsCommandHandler

	// Query handlers
	getOrderHandler queries.GetOrderQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	performOrderTxHandler commands.PerformOrderTransactionCommandHandler,
	performItemTxHandler commands.PerformItemTransactionCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	cancelOrderItemsHandler commands.CancelOrderItemsCommandHandler,
	backorderItemsHandler commands.BackorderItemsCommandHandler,
	restartOrderHandler commands.RestartOrderCommandHandler,
	restartDisputedHandler commands.RestartDisputedOrderCommandHandler,
	changeAddressHandler commands.ChangeShipmentAddressCommandHandler,
	changeSpeedHandler commands.ChangeDeliverySpeedCommandHandler,
	changeRecurrenceHandler commands.ChangeRecurrenceCommandHandler,
	addItemsHandler commands.AddItemsCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		performOrderTxHandler:   performOrderTxHandler,
		performItemTxHandler:    performItemTxHandler,
		cancelOrderHandler:      cancelOrderHandler,
		cancelOrderItemsHandler: cancelOrderItemsHandler,
		backorderItemsHandler:   backorderItemsHandler,
		restartOrderHandler:     restartOrderHandler,
		restartDisputedHandler:  restartDisputedHandler,
		changeAddressHandler:    changeAddressHandler,
		changeSpeedHandler:      changeSpeedHandler,
		changeRecurrenceHandler: changeRecurrenceHandler,
		addItemsHandler:         addItemsHandler,
		getOrderHandler:         getOrderHandler,
	}
}

// RegisterRoutes mounts the system and customer route groups on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	system := e.Group("/api/v1/internal/sales-orders")
	system.POST("", s.CreateOrder)
	system.GET("/:orderID", s.GetOrder)
	system.POST("/:orderID/cancel", s.SystemCancelOrder)
	system.POST("/:orderID/transactions", s.PerformOrderTransaction)
	system.POST("/:orderID/items/transactions", s.PerformItemTransaction)
	system.POST("/:orderID/items/cancel", s.SystemCancelItems)
	system.POST("/:orderID/items/backorder", s.BackorderItems)
	system.POST("/:orderID/restart", s.RestartOrder)
	system.POST("/:orderID/restart-disputed", s.RestartDisputedOrder)
	system.PUT("/:orderID/address", s.SystemChangeAddress)

	my := e.Group("/api/v1/my-orders")
	my.GET("/:orderID", s.GetMyOrder)
	my.POST("/:orderID/cancel", s.CancelMyOrder)
	my.POST("/:orderID/items/cancel", s.CancelMyOrderItems)
	my.POST("/:orderID/items", s.AddMyOrderItems)
	my.PUT("/:orderID/address", s.ChangeMyAddress)
	my.PUT("/:orderID/delivery-speed", s.ChangeMyDeliverySpeed)
	my.PUT("/:orderID/recurrence", s.ChangeMyRecurrence)
}

// CreateOrder handles POST /api/v1/internal/sales-orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}
	speed, err := order.DeliverySpeedFromString(req.DeliverySpeed)
	if err != nil {
		return badRequest(ctx, "Invalid delivery speed: "+err.Error())
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, itemErr := kernel.UUIDFromString(line.ID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid item id: "+itemErr.Error())
		}
		vendorID, itemErr := kernel.UUIDFromString(line.VendorID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid vendor id: "+itemErr.Error())
		}
		productID, itemErr := kernel.UUIDFromString(line.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid product id: "+itemErr.Error())
		}
		items = append(items, commands.ItemInput{
			ID:             itemID,
			VendorID:       vendorID,
			ProductID:      productID,
			Name:           line.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			DiscountBps:    line.DiscountBps,
		})
	}

	var recurrence *commands.RecurrenceInput
	if req.Recurrence != nil {
		recurrence = &commands.RecurrenceInput{
			Installments:        req.Recurrence.Installments,
			GapInDays:           req.Recurrence.GapInDays,
			RequestedOffsetDays: req.Recurrence.RequestedOffsetDays,
		}
	}

	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, req.CustomerName, speed, req.Recurrent,
		addressInput(req.Address), recurrence, items,
		order.CreationFlags{
			ApprovalRequired: req.ApprovalRequired,
			CreditBlock:      req.CreditBlock,
			FraudHold:        req.FraudHold,
		},
	)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetOrder handles GET /api/v1/internal/sales-orders/:orderID.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// SystemCancelOrder handles POST /api/v1/internal/sales-orders/:orderID/cancel.
func (s *Server) SystemCancelOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, commands.NewSystemActor())
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// PerformOrderTransaction handles POST /api/v1/internal/sales-orders/:orderID/transactions.
func (s *Server) PerformOrderTransaction(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req TransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPerformOrderTransactionCommand(orderID, status.Transaction(req.Transaction))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.performOrderTxHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// PerformItemTransaction handles POST /api/v1/internal/sales-orders/:orderID/items/transactions.
func (s *Server) PerformItemTransaction(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ItemTransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemIDs, err := parseItemIDs(req.ItemIDs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewPerformItemTransactionCommand(orderID, itemIDs, status.Transaction(req.Transaction))
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.performItemTxHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// SystemCancelItems handles POST /api/v1/internal/sales-orders/:orderID/items/cancel.
func (s *Server) SystemCancelItems(ctx echo.Context) error {
	return s.cancelItems(ctx, commands.NewSystemActor())
}

// BackorderItems handles POST /api/v1/internal/sales-orders/:orderID/items/backorder.
func (s *Server) BackorderItems(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req BackorderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	lines := make([]commands.BackorderLineInput, 0, len(req.Lines))
	for _, line := range req.Lines {
		itemID, lineErr := kernel.UUIDFromString(line.ItemID)
		if lineErr != nil {
			return badRequest(ctx, "Invalid item id: "+lineErr.Error())
		}
		lines = append(lines, commands.BackorderLineInput{
			ItemID:   itemID,
			Quantity: line.Quantity,
		})
	}

	cmd, err := commands.NewBackorderItemsCommand(orderID, lines)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.backorderItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RestartOrder handles POST /api/v1/internal/sales-orders/:orderID/restart.
func (s *Server) RestartOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req RestartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestartOrderCommand(orderID, req.CancelInvoice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.restartOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// RestartDisputedOrder handles POST /api/v1/internal/sales-orders/:orderID/restart-disputed.
func (s *Server) RestartDisputedOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req RestartRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRestartDisputedOrderCommand(orderID, req.CancelInvoice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.restartDisputedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// SystemChangeAddress handles PUT /api/v1/internal/sales-orders/:orderID/address.
func (s *Server) SystemChangeAddress(ctx echo.Context) error {
	return s.changeAddress(ctx, commands.NewSystemActor())
}

// GetMyOrder handles GET /api/v1/my-orders/:orderID.
func (s *Server) GetMyOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	customerID, err := headerCustomerID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	query, err := queries.NewGetCustomerOrderQuery(orderID, customerID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(response))
}

// CancelMyOrder handles POST /api/v1/my-orders/:orderID/cancel.
func (s *Server) CancelMyOrder(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	actor, err := customerActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// CancelMyOrderItems handles POST /api/v1/my-orders/:orderID/items/cancel.
func (s *Server) CancelMyOrderItems(ctx echo.Context) error {
	actor, err := customerActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.cancelItems(ctx, actor)
}

// AddMyOrderItems handles POST /api/v1/my-orders/:orderID/items.
func (s *Server) AddMyOrderItems(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	actor, err := customerActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req AddItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	items := make([]commands.ItemInput, 0, len(req.Items))
	for _, line := range req.Items {
		itemID, itemErr := kernel.UUIDFromString(line.ID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid item id: "+itemErr.Error())
		}
		vendorID, itemErr := kernel.UUIDFromString(line.VendorID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid vendor id: "+itemErr.Error())
		}
		productID, itemErr := kernel.UUIDFromString(line.ProductID)
		if itemErr != nil {
			return badRequest(ctx, "Invalid product id: "+itemErr.Error())
		}
		items = append(items, commands.ItemInput{
			ID:             itemID,
			VendorID:       vendorID,
			ProductID:      productID,
			Name:           line.Name,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			DiscountBps:    line.DiscountBps,
		})
	}

	cmd, err := commands.NewAddItemsCommand(orderID, items, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.addItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeMyAddress handles PUT /api/v1/my-orders/:orderID/address.
func (s *Server) ChangeMyAddress(ctx echo.Context) error {
	actor, err := customerActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	return s.changeAddress(ctx, actor)
}

// ChangeMyDeliverySpeed handles PUT /api/v1/my-orders/:orderID/delivery-speed.
func (s *Server) ChangeMyDeliverySpeed(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	actor, err := customerActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req ChangeDeliverySpeedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	speed, err := order.DeliverySpeedFromString(req.DeliverySpeed)
	if err != nil {
		return badRequest(ctx, "Invalid delivery speed: "+err.Error())
	}

	cmd, err := commands.NewChangeDeliverySpeedCommand(orderID, speed, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.changeSpeedHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeMyRecurrence handles PUT /api/v1/my-orders/:orderID/recurrence.
func (s *Server) ChangeMyRecurrence(ctx echo.Context) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}
	actor, err := customerActor(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req RecurrenceRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeRecurrenceCommand(orderID, commands.RecurrenceInput{
		Installments:        req.Installments,
		GapInDays:           req.GapInDays,
		RequestedOffsetDays: req.RequestedOffsetDays,
	}, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.changeRecurrenceHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) cancelItems(ctx echo.Context, actor commands.Actor) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req CancelItemsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	itemIDs, err := parseItemIDs(req.ItemIDs)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	cmd, err := commands.NewCancelOrderItemsCommand(orderID, itemIDs, actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.cancelOrderItemsHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

func (s *Server) changeAddress(ctx echo.Context, actor commands.Actor) error {
	orderID, err := pathOrderID(ctx)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	var req AddressRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeShipmentAddressCommand(orderID, addressInput(req), actor)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if handleErr := s.changeAddressHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return writeError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("orderID"))
}

func headerCustomerID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(CustomerIDHeader))
}

func customerActor(ctx echo.Context) (commands.Actor, error) {
	customerID, err := headerCustomerID(ctx)
	if err != nil {
		return commands.Actor{}, err
	}
	return commands.NewCustomerActor(customerID)
}

func parseItemIDs(raw []string) ([]kernel.UUID, error) {
	itemIDs := make([]kernel.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := kernel.UUIDFromString(s)
		if err != nil {
			return nil, err
		}
		itemIDs = append(itemIDs, id)
	}
	return itemIDs, nil
}

func addressInput(req AddressRequest) commands.AddressInput {
	return commands.AddressInput{
		RecipientName:   req.RecipientName,
		CompanyName:     req.CompanyName,
		PhoneNumber:     req.PhoneNumber,
		StreetLine1:     req.StreetLine1,
		StreetLine2:     req.StreetLine2,
		City:            req.City,
		StateOrProvince: req.StateOrProvince,
		PostalCode:      req.PostalCode,
		Country:         req.Country,
		Landmark:        req.Landmark,
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors to HTTP status codes.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, status.ErrTransactionForbidden),
		errors.Is(err, errs.ErrVersionIsInvalid):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}
