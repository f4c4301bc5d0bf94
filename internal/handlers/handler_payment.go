package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/dto"
	"github.com/crewpay/crewpay-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to salary payment finalization.
type paymentHandler struct {
	paymentService portssvc.PaymentSvc
	userService    portssvc.UserSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(ps portssvc.PaymentSvc, us portssvc.UserSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: ps,
		userService:    us,
	}
}

// registerPaymentRoutes registers routes related to salary payments.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvc, userService portssvc.UserSvcFacade) {
	h := newPaymentHandler(paymentService, userService)

	payments := rg.Group("/payments")
	{
		payments.POST("/:employeeID/mark-paid", h.markSalaryPaid)
		payments.POST("/mark-paid-bulk", h.markSalariesPaidBulk)
	}
}

// markSalaryPaid godoc
// @Summary Finalize an employee's salary payment
// @Description Atomically marks the current month's salary log paid, resets bonuses and records the accounting trail
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   request body dto.MarkSalaryPaidRequest false "Payment method, defaults to cash"
// @Success 200 {object} dto.PaymentReceiptResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Employee not active"
// @Failure 422 {object} ErrorResponse "No unpaid salary for the current month"
// @Security BearerAuth
// @Router /payments/{employeeID}/mark-paid [post]
func (h *paymentHandler) markSalaryPaid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	// The body is optional; an absent method falls back to cash downstream.
	var req dto.MarkSalaryPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		logger.Warn("Failed to bind JSON for markSalaryPaid", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actingUser(c, h.userService)
	if !ok {
		return
	}

	receipt, err := h.paymentService.MarkSalaryPaid(c.Request.Context(), employeeID, req.PaymentMethod, actor.UserID, actor.Role == domain.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentReceiptResponse(receipt))
}

// markSalariesPaidBulk godoc
// @Summary Finalize salary payments in bulk
// @Description Runs payment finalization for multiple employees; each row reports its own outcome
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   request body dto.MarkSalariesPaidBulkRequest true "Employees and payment method"
// @Success 200 {object} dto.BulkPaymentResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Security BearerAuth
// @Router /payments/mark-paid-bulk [post]
func (h *paymentHandler) markSalariesPaidBulk(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.MarkSalariesPaidBulkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for markSalariesPaidBulk", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actingUser(c, h.userService)
	if !ok {
		return
	}

	rows := h.paymentService.MarkSalariesPaidBulk(c.Request.Context(), req.EmployeeIDs, req.PaymentMethod, actor.UserID, actor.Role == domain.RoleAdmin)
	c.JSON(http.StatusOK, dto.ToBulkPaymentResponse(rows))
}
