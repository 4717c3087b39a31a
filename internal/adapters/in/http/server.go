package http

import (
	"net/http"
	"strconv"
	"time"

	"groupbuy/internal/core/application/usecases/commands"
	"groupbuy/internal/core/application/usecases/queries"
	"groupbuy/internal/core/domain/model/credit"
	"groupbuy/internal/core/domain/model/customorder"
	"groupbuy/internal/core/domain/model/kernel"
	"groupbuy/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Server exposes the ordering workflow over HTTP.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	registerCustomerHandler      commands.RegisterCustomerCommandHandler
	registerSupplierHandler      commands.RegisterSupplierCommandHandler
	submitCustomOrderHandler     commands.SubmitCustomOrderCommandHandler
	analyzeCustomOrderHandler    commands.AnalyzeCustomOrderCommandHandler
	confirmCustomOrderHandler    commands.ConfirmCustomOrderCommandHandler
	cancelCustomOrderHandler     commands.CancelCustomOrderCommandHandler
	openCollectiveOrderHandler   commands.OpenCollectiveOrderCommandHandler
	attachOrderToPoolHandler     commands.AttachOrderToPoolCommandHandler
	detachOrderFromPoolHandler   commands.DetachOrderFromPoolCommandHandler
	closeCollectiveOrderHandler  commands.CloseCollectiveOrderCommandHandler
	openPaymentWindowHandler     commands.OpenPaymentWindowCommandHandler
	recordCustomerPaymentHandler commands.RecordCustomerPaymentCommandHandler
	paySupplierHandler           commands.PaySupplierCommandHandler
	markShippedHandler           commands.MarkShippedCommandHandler
	markReceivedHandler          commands.MarkReceivedCommandHandler
	markDeliveredHandler         commands.MarkDeliveredCommandHandler
	cancelCollectiveOrderHandler commands.CancelCollectiveOrderCommandHandler
	recordCreditHandler          commands.RecordCreditCommandHandler
	recordDebitHandler           commands.RecordDebitCommandHandler
	transferCreditsHandler       commands.TransferCreditsCommandHandler
	useCreditEntryHandler        commands.UseCreditEntryCommandHandler

	// Query handlers
	getOrdersPendingAnalysisHandler   queries.GetOrdersPendingAnalysisQueryHandler
	getCustomerOrdersHandler          queries.GetCustomerOrdersQueryHandler
	getConfirmedUnpooledOrdersHandler queries.GetConfirmedUnpooledOrdersQueryHandler
	getPoolsEligibleForActionHandler  queries.GetPoolsEligibleForActionQueryHandler
	getPoolProgressHandler            queries.GetPoolProgressQueryHandler
	getCustomerBalanceHandler         queries.GetCustomerBalanceQueryHandler
	getCustomerLedgerHistoryHandler   queries.GetCustomerLedgerHistoryQueryHandler
}

// ServerHandlers bundles the command and query handlers the server routes to.
type ServerHandlers struct {
	RegisterCustomer      commands.RegisterCustomerCommandHandler
	RegisterSupplier      commands.RegisterSupplierCommandHandler
	SubmitCustomOrder     commands.SubmitCustomOrderCommandHandler
	AnalyzeCustomOrder    commands.AnalyzeCustomOrderCommandHandler
	ConfirmCustomOrder    commands.ConfirmCustomOrderCommandHandler
	CancelCustomOrder     commands.CancelCustomOrderCommandHandler
	OpenCollectiveOrder   commands.OpenCollectiveOrderCommandHandler
	AttachOrderToPool     commands.AttachOrderToPoolCommandHandler
	DetachOrderFromPool   commands.DetachOrderFromPoolCommandHandler
	CloseCollectiveOrder  commands.CloseCollectiveOrderCommandHandler
	OpenPaymentWindow     commands.OpenPaymentWindowCommandHandler
	RecordCustomerPayment commands.RecordCustomerPaymentCommandHandler
	PaySupplier           commands.PaySupplierCommandHandler
	MarkShipped           commands.MarkShippedCommandHandler
	MarkReceived          commands.MarkReceivedCommandHandler
	MarkDelivered         commands.MarkDeliveredCommandHandler
	CancelCollectiveOrder commands.CancelCollectiveOrderCommandHandler

	RecordCredit    commands.RecordCreditCommandHandler
	RecordDebit     commands.RecordDebitCommandHandler
	TransferCredits commands.TransferCreditsCommandHandler
	UseCreditEntry  commands.UseCreditEntryCommandHandler

	GetOrdersPendingAnalysis   queries.GetOrdersPendingAnalysisQueryHandler
	GetCustomerOrders          queries.GetCustomerOrdersQueryHandler
	GetConfirmedUnpooledOrders queries.GetConfirmedUnpooledOrdersQueryHandler
	GetPoolsEligibleForAction  queries.GetPoolsEligibleForActionQueryHandler
	GetPoolProgress            queries.GetPoolProgressQueryHandler
	GetCustomerBalance         queries.GetCustomerBalanceQueryHandler
	GetCustomerLedgerHistory   queries.GetCustomerLedgerHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(handlers ServerHandlers) *Server {
	return &Server{
		registerCustomerHandler:      handlers.RegisterCustomer,
		registerSupplierHandler:      handlers.RegisterSupplier,
		submitCustomOrderHandler:     handlers.SubmitCustomOrder,
		analyzeCustomOrderHandler:    handlers.AnalyzeCustomOrder,
		confirmCustomOrderHandler:    handlers.ConfirmCustomOrder,
		cancelCustomOrderHandler:     handlers.CancelCustomOrder,
		openCollectiveOrderHandler:   handlers.OpenCollectiveOrder,
		attachOrderToPoolHandler:     handlers.AttachOrderToPool,
		detachOrderFromPoolHandler:   handlers.DetachOrderFromPool,
		closeCollectiveOrderHandler:  handlers.CloseCollectiveOrder,
		openPaymentWindowHandler:     handlers.OpenPaymentWindow,
		recordCustomerPaymentHandler: handlers.RecordCustomerPayment,
		paySupplierHandler:           handlers.PaySupplier,
		markShippedHandler:           handlers.MarkShipped,
		markReceivedHandler:          handlers.MarkReceived,
		markDeliveredHandler:         handlers.MarkDelivered,
		cancelCollectiveOrderHandler: handlers.CancelCollectiveOrder,
		recordCreditHandler:          handlers.RecordCredit,
		recordDebitHandler:           handlers.RecordDebit,
		transferCreditsHandler:       handlers.TransferCredits,
		useCreditEntryHandler:        handlers.UseCreditEntry,

		getOrdersPendingAnalysisHandler:   handlers.GetOrdersPendingAnalysis,
		getCustomerOrdersHandler:          handlers.GetCustomerOrders,
		getConfirmedUnpooledOrdersHandler: handlers.GetConfirmedUnpooledOrders,
		getPoolsEligibleForActionHandler:  handlers.GetPoolsEligibleForAction,
		getPoolProgressHandler:            handlers.GetPoolProgress,
		getCustomerBalanceHandler:         handlers.GetCustomerBalance,
		getCustomerLedgerHistoryHandler:   handlers.GetCustomerLedgerHistory,
	}
}

// RegisterRoutes attaches all API routes to the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/customers", s.RegisterCustomer)
	api.GET("/customers/:customerId/balance", s.GetCustomerBalance)
	api.GET("/customers/:customerId/ledger", s.GetCustomerLedgerHistory)
	api.GET("/customers/:customerId/orders", s.GetCustomerOrders)

	api.POST("/suppliers", s.RegisterSupplier)
	api.GET("/suppliers/:supplierId/confirmed-orders", s.GetConfirmedUnpooledOrders)

	api.POST("/orders", s.SubmitCustomOrder)
	api.GET("/orders/pending-analysis", s.GetOrdersPendingAnalysis)
	api.POST("/orders/:orderId/analyze", s.AnalyzeCustomOrder)
	api.POST("/orders/:orderId/confirm", s.ConfirmCustomOrder)
	api.POST("/orders/:orderId/cancel", s.CancelCustomOrder)

	api.POST("/collective-orders", s.OpenCollectiveOrder)
	api.GET("/collective-orders/eligible", s.GetPoolsEligibleForAction)
	api.GET("/collective-orders/:poolId/progress", s.GetPoolProgress)
	api.POST("/collective-orders/:poolId/orders", s.AttachOrderToPool)
	api.DELETE("/collective-orders/:poolId/orders/:orderId", s.DetachOrderFromPool)
	api.POST("/collective-orders/:poolId/close", s.CloseCollectiveOrder)
	api.POST("/collective-orders/:poolId/payment-window", s.OpenPaymentWindow)
	api.POST("/collective-orders/:poolId/payments", s.RecordCustomerPayment)
	api.POST("/collective-orders/:poolId/pay-supplier", s.PaySupplier)
	api.POST("/collective-orders/:poolId/ship", s.MarkShipped)
	api.POST("/collective-orders/:poolId/receive", s.MarkReceived)
	api.POST("/collective-orders/:poolId/deliver", s.MarkDelivered)
	api.POST("/collective-orders/:poolId/cancel", s.CancelCollectiveOrder)

	api.POST("/credits", s.RecordCredit)
	api.POST("/credits/debit", s.RecordDebit)
	api.POST("/credits/transfer", s.TransferCredits)
	api.POST("/credits/:entryId/use", s.UseCreditEntry)
}

// RegisterCustomer handles POST /api/v1/customers.
func (s *Server) RegisterCustomer(ctx echo.Context) error {
	var req RegisterCustomerRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(customerID, req.Name)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.registerCustomerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: customerID.String()})
}

// RegisterSupplier handles POST /api/v1/suppliers.
func (s *Server) RegisterSupplier(ctx echo.Context) error {
	var req RegisterSupplierRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	minimumOrderValue, err := parseMoney("minimum order value", req.MinimumOrderValue)
	if err != nil {
		return errorResponse(ctx, err)
	}

	adminFeePercent, err := decimal.NewFromString(req.AdminFeePercent)
	if err != nil {
		return badRequest(ctx, "Invalid admin fee percent: "+err.Error())
	}

	supplierID := kernel.NewUUID()
	cmd, err := commands.NewRegisterSupplierCommand(
		supplierID, req.Name, minimumOrderValue, adminFeePercent, req.DeliveryTimeDays)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.registerSupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: supplierID.String()})
}

// SubmitCustomOrder handles POST /api/v1/orders.
func (s *Server) SubmitCustomOrder(ctx echo.Context) error {
	var req SubmitCustomOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUIDParam("customer id", req.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	urgency, err := parseUrgency(req.Urgency)
	if err != nil {
		return errorResponse(ctx, err)
	}

	estimatedPrice, err := parseOptionalMoney("estimated price", req.EstimatedPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	details := customorder.ItemDetails{
		PreferredColor:    req.Details.PreferredColor,
		AlternativeColors: req.Details.AlternativeColors,
		Size:              req.Details.Size,
		Category:          req.Details.Category,
		Observations:      req.Details.Observations,
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewSubmitCustomOrderCommand(
		orderID, customerID, req.Description, details, req.Quantity, urgency, estimatedPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.submitCustomOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: orderID.String()})
}

// AnalyzeCustomOrder handles POST /api/v1/orders/:orderId/analyze.
func (s *Server) AnalyzeCustomOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam("order id", ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AnalyzeCustomOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adminID, err := parseUUIDParam("admin id", req.AdminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	supplierID, err := parseUUIDParam("supplier id", req.SupplierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	finalPrice, err := parseMoney("final price", req.FinalPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAnalyzeCustomOrderCommand(orderID, adminID, supplierID, finalPrice)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.analyzeCustomOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ConfirmCustomOrder handles POST /api/v1/orders/:orderId/confirm.
func (s *Server) ConfirmCustomOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam("order id", ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewConfirmCustomOrderCommand(orderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.confirmCustomOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelCustomOrder handles POST /api/v1/orders/:orderId/cancel.
func (s *Server) CancelCustomOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam("order id", ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CancelCustomOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	refundAmount, err := parseOptionalMoney("refund amount", req.RefundAmount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCancelCustomOrderCommand(orderID, req.Reason, refundAmount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelCustomOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenCollectiveOrder handles POST /api/v1/collective-orders.
func (s *Server) OpenCollectiveOrder(ctx echo.Context) error {
	var req OpenCollectiveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := parseUUIDParam("supplier id", req.SupplierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	poolID := kernel.NewUUID()
	cmd, err := commands.NewOpenCollectiveOrderCommand(poolID, supplierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.openCollectiveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: poolID.String()})
}

// AttachOrderToPool handles POST /api/v1/collective-orders/:poolId/orders.
func (s *Server) AttachOrderToPool(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AttachOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := parseUUIDParam("order id", req.OrderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAttachOrderToPoolCommand(orderID, poolID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.attachOrderToPoolHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DetachOrderFromPool handles DELETE /api/v1/collective-orders/:poolId/orders/:orderId.
func (s *Server) DetachOrderFromPool(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	orderID, err := parseUUIDParam("order id", ctx.Param("orderId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewDetachOrderFromPoolCommand(orderID, poolID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.detachOrderFromPoolHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CloseCollectiveOrder handles POST /api/v1/collective-orders/:poolId/close.
func (s *Server) CloseCollectiveOrder(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CloseCollectiveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	adminID, err := parseUUIDParam("admin id", req.AdminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewCloseCollectiveOrderCommand(poolID, adminID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.closeCollectiveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// OpenPaymentWindow handles POST /api/v1/collective-orders/:poolId/payment-window.
func (s *Server) OpenPaymentWindow(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req OpenPaymentWindowRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewOpenPaymentWindowCommand(poolID, req.Deadline)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.openPaymentWindowHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordCustomerPayment handles POST /api/v1/collective-orders/:poolId/payments.
func (s *Server) RecordCustomerPayment(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AmountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRecordCustomerPaymentCommand(poolID, amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.recordCustomerPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PaySupplier handles POST /api/v1/collective-orders/:poolId/pay-supplier.
func (s *Server) PaySupplier(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req AmountRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewPaySupplierCommand(poolID, amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.paySupplierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkShipped handles POST /api/v1/collective-orders/:poolId/ship.
func (s *Server) MarkShipped(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req MarkShippedRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewMarkShippedCommand(poolID, req.TrackingCode)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.markShippedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkReceived handles POST /api/v1/collective-orders/:poolId/receive.
func (s *Server) MarkReceived(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkReceivedCommand(poolID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.markReceivedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/collective-orders/:poolId/deliver.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(poolID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.markDeliveredHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelCollectiveOrder handles POST /api/v1/collective-orders/:poolId/cancel.
func (s *Server) CancelCollectiveOrder(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var req CancelCollectiveOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCancelCollectiveOrderCommand(poolID, req.Reason)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.cancelCollectiveOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordCredit handles POST /api/v1/credits.
func (s *Server) RecordCredit(ctx echo.Context) error {
	var req RecordCreditRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUIDParam("customer id", req.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	transactionType, err := credit.TypeFromString(req.TransactionType)
	if err != nil {
		return errorResponse(ctx, err)
	}

	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var bonusPercentage *decimal.Decimal
	if req.BonusPercentage != nil {
		parsed, err := decimal.NewFromString(*req.BonusPercentage)
		if err != nil {
			return badRequest(ctx, "Invalid bonus percentage: "+err.Error())
		}
		bonusPercentage = &parsed
	}

	entryID := kernel.NewUUID()
	cmd, err := commands.NewRecordCreditCommand(
		entryID, customerID, transactionType, amount, req.Description, bonusPercentage)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.recordCreditHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: entryID.String()})
}

// RecordDebit handles POST /api/v1/credits/debit.
func (s *Server) RecordDebit(ctx echo.Context) error {
	var req RecordDebitRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := parseUUIDParam("customer id", req.CustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	var customOrderID *kernel.UUID
	if req.CustomOrderID != nil {
		parsed, err := parseUUIDParam("custom order id", *req.CustomOrderID)
		if err != nil {
			return errorResponse(ctx, err)
		}
		customOrderID = &parsed
	}

	entryID := kernel.NewUUID()
	cmd, err := commands.NewRecordDebitCommand(
		entryID, customerID, amount, req.Description, customOrderID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.recordDebitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: entryID.String()})
}

// TransferCredits handles POST /api/v1/credits/transfer.
func (s *Server) TransferCredits(ctx echo.Context) error {
	var req TransferCreditsRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	fromCustomerID, err := parseUUIDParam("from customer id", req.FromCustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	toCustomerID, err := parseUUIDParam("to customer id", req.ToCustomerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	amount, err := parseMoney("amount", req.Amount)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewTransferCreditsCommand(fromCustomerID, toCustomerID, amount, req.Description)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.transferCreditsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UseCreditEntry handles POST /api/v1/credits/:entryId/use.
func (s *Server) UseCreditEntry(ctx echo.Context) error {
	entryID, err := parseUUIDParam("entry id", ctx.Param("entryId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewUseCreditEntryCommand(entryID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.useCreditEntryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrdersPendingAnalysis handles GET /api/v1/orders/pending-analysis.
func (s *Server) GetOrdersPendingAnalysis(ctx echo.Context) error {
	query := queries.NewGetOrdersPendingAnalysisQuery()

	orders, err := s.getOrdersPendingAnalysisHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]PendingOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = PendingOrderResponse{
			ID:          order.ID.String(),
			CustomerID:  order.CustomerID.String(),
			Description: order.Description,
			Quantity:    order.Quantity,
			Urgency:     order.Urgency.String(),
			CreatedAt:   order.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCustomerOrders handles GET /api/v1/customers/:customerId/orders.
func (s *Server) GetCustomerOrders(ctx echo.Context) error {
	customerID, err := parseUUIDParam("customer id", ctx.Param("customerId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var status *customorder.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		parsed, err := customorder.StatusFromString(raw)
		if err != nil {
			return errorResponse(ctx, err)
		}
		status = &parsed
	}

	page, pageSize, err := parsePagination(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(customerID, status, page, pageSize)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]CustomerOrderResponse, len(orders))
	for i, order := range orders {
		item := CustomerOrderResponse{
			ID:          order.ID.String(),
			Description: order.Description,
			Quantity:    order.Quantity,
			Status:      order.Status,
			CreatedAt:   order.CreatedAt,
		}
		if order.FinalPrice != nil {
			price := order.FinalPrice.StringFixed(2)
			item.FinalPrice = &price
		}
		response[i] = item
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetConfirmedUnpooledOrders handles GET /api/v1/suppliers/:supplierId/confirmed-orders.
func (s *Server) GetConfirmedUnpooledOrders(ctx echo.Context) error {
	supplierID, err := parseUUIDParam("supplier id", ctx.Param("supplierId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetConfirmedUnpooledOrdersQuery(supplierID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	orders, err := s.getConfirmedUnpooledOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]ConfirmedOrderResponse, len(orders))
	for i, order := range orders {
		response[i] = ConfirmedOrderResponse{
			ID:          order.ID.String(),
			CustomerID:  order.CustomerID.String(),
			Description: order.Description,
			Quantity:    order.Quantity,
			TotalValue:  order.TotalValue.StringFixed(2),
			ConfirmedAt: order.ConfirmedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPoolsEligibleForAction handles GET /api/v1/collective-orders/eligible.
func (s *Server) GetPoolsEligibleForAction(ctx echo.Context) error {
	query := queries.NewGetPoolsEligibleForActionQuery()

	pools, err := s.getPoolsEligibleForActionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]EligiblePoolResponse, len(pools))
	for i, pool := range pools {
		response[i] = EligiblePoolResponse{
			ID:           pool.ID.String(),
			SupplierID:   pool.SupplierID.String(),
			Status:       pool.Status,
			MinimumValue: pool.MinimumValue.StringFixed(2),
			CurrentValue: pool.CurrentValue.StringFixed(2),
			CreatedAt:    pool.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetPoolProgress handles GET /api/v1/collective-orders/:poolId/progress.
func (s *Server) GetPoolProgress(ctx echo.Context) error {
	poolID, err := parseUUIDParam("pool id", ctx.Param("poolId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetPoolProgressQuery(poolID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	progress, err := s.getPoolProgressHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PoolProgressResponse{
		ID:                progress.ID.String(),
		Status:            progress.Status,
		MinimumValue:      progress.MinimumValue.StringFixed(2),
		CurrentValue:      progress.CurrentValue.StringFixed(2),
		MemberCount:       progress.MemberCount,
		CompletionPercent: progress.CompletionPercent,
		RemainingAmount:   progress.RemainingAmount.StringFixed(2),
	})
}

// GetCustomerBalance handles GET /api/v1/customers/:customerId/balance.
func (s *Server) GetCustomerBalance(ctx echo.Context) error {
	customerID, err := parseUUIDParam("customer id", ctx.Param("customerId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCustomerBalanceQuery(customerID)
	if err != nil {
		return errorResponse(ctx, err)
	}

	balance, err := s.getCustomerBalanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CustomerBalanceResponse{
		CustomerID:     balance.CustomerID.String(),
		CachedBalance:  balance.CachedBalance.StringFixed(2),
		DerivedBalance: balance.DerivedBalance.StringFixed(2),
	})
}

// GetCustomerLedgerHistory handles GET /api/v1/customers/:customerId/ledger.
func (s *Server) GetCustomerLedgerHistory(ctx echo.Context) error {
	customerID, err := parseUUIDParam("customer id", ctx.Param("customerId"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	from, err := parseTimeParam(ctx, "from")
	if err != nil {
		return badRequest(ctx, "Invalid from timestamp")
	}

	to, err := parseTimeParam(ctx, "to")
	if err != nil {
		return badRequest(ctx, "Invalid to timestamp")
	}

	page, pageSize, err := parsePagination(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	query, err := queries.NewGetCustomerLedgerHistoryQuery(customerID, from, to, page, pageSize)
	if err != nil {
		return errorResponse(ctx, err)
	}

	entries, err := s.getCustomerLedgerHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err)
	}

	response := make([]LedgerEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = LedgerEntryResponse{
			ID:              entry.ID.String(),
			TransactionType: entry.TransactionType,
			Amount:          entry.Amount.StringFixed(2),
			Description:     entry.Description,
			Status:          entry.Status,
			BalanceAfter:    entry.BalanceAfter.StringFixed(2),
			ExpiresAt:       entry.ExpiresAt,
			CreatedAt:       entry.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func parsePagination(ctx echo.Context) (page int, pageSize int, err error) {
	if raw := ctx.QueryParam("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("page is invalid", err)
		}
	}

	if raw := ctx.QueryParam("page_size"); raw != "" {
		pageSize, err = strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errs.NewValueIsInvalidErrorWithCause("page size is invalid", err)
		}
	}

	return page, pageSize, nil
}

func parseTimeParam(ctx echo.Context, name string) (*time.Time, error) {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, err
	}

	return &parsed, nil
}
