package handlers

import (
	"log/slog"
	"net/http"

	"github.com/crewpay/crewpay-backend/internal/core/domain"
	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/dto"
	"github.com/crewpay/crewpay-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// commissionHandler handles HTTP requests related to the commission ledger.
type commissionHandler struct {
	commissionService portssvc.CommissionSvc
	userService       portssvc.UserSvcFacade
}

// newCommissionHandler creates a new commissionHandler.
func newCommissionHandler(cs portssvc.CommissionSvc, us portssvc.UserSvcFacade) *commissionHandler {
	return &commissionHandler{
		commissionService: cs,
		userService:       us,
	}
}

// registerCommissionRoutes registers routes related to commissions and sales bonuses.
func registerCommissionRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvc, userService portssvc.UserSvcFacade) {
	h := newCommissionHandler(commissionService, userService)

	commissions := rg.Group("/commissions")
	{
		commissions.POST("/assign", h.assignCommission)
		commissions.PUT("/:employeeID/withhold-flag", h.updateWithholdFlag)
		commissions.POST("/:employeeID/transfer", h.transferCommission)
	}

	sales := rg.Group("/sales")
	{
		sales.PUT("/:employeeID/bonus", h.updateSalesBonus)
	}
}

// assignCommission godoc
// @Summary Assign commission for a completed project
// @Description Credits the closing employee's commission ledger from the project's cracked lead amount
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   request body dto.AssignCommissionRequest true "Project reference"
// @Success 200 {object} dto.CommissionAssignmentResponse
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 404 {object} ErrorResponse "Project or sales department not found"
// @Failure 409 {object} ErrorResponse "Project not completed or no commission rate assigned"
// @Security BearerAuth
// @Router /commissions/assign [post]
func (h *commissionHandler) assignCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AssignCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for assignCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	assignment, err := h.commissionService.AssignCommission(c.Request.Context(), req.ProjectID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionAssignmentResponse(assignment))
}

// updateWithholdFlag godoc
// @Summary Update the withhold routing flag
// @Description Flips where newly assigned commission lands for an employee; setting the current value is a conflict
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   request body dto.UpdateWithholdFlagRequest true "New flag value"
// @Success 204 "Flag updated"
// @Failure 400 {object} ErrorResponse "Invalid input format"
// @Failure 404 {object} ErrorResponse "Sales department not found"
// @Failure 409 {object} ErrorResponse "Flag already has the requested value"
// @Security BearerAuth
// @Router /commissions/{employeeID}/withhold-flag [put]
func (h *commissionHandler) updateWithholdFlag(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.UpdateWithholdFlagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateWithholdFlag", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actingUser(c, h.userService)
	if !ok {
		return
	}

	if err := h.commissionService.UpdateWithholdFlag(c.Request.Context(), employeeID, *req.WithholdFlag, actor.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// transferCommission godoc
// @Summary Transfer commission between balances
// @Description Moves funds between the withheld and available balances; a zero amount sweeps the source balance
// @Tags commissions
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   request body dto.TransferCommissionRequest true "Transfer details"
// @Success 200 {object} dto.CommissionTransferResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or direction"
// @Failure 404 {object} ErrorResponse "Sales department not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds or nothing to sweep"
// @Security BearerAuth
// @Router /commissions/{employeeID}/transfer [post]
func (h *commissionHandler) transferCommission(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.TransferCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for transferCommission", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actingUser(c, h.userService)
	if !ok {
		return
	}

	transfer, err := h.commissionService.TransferCommission(c.Request.Context(), employeeID, req.Amount, domain.TransferDirection(req.Direction), actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommissionTransferResponse(transfer))
}

// updateSalesBonus godoc
// @Summary Set an employee's sales bonus
// @Description Sets the sales bonus accumulator that is folded into the next salary calculation
// @Tags sales
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   request body dto.UpdateSalesBonusRequest true "Bonus amount"
// @Success 204 "Bonus updated"
// @Failure 400 {object} ErrorResponse "Invalid input format or negative amount"
// @Failure 404 {object} ErrorResponse "Sales department not found"
// @Security BearerAuth
// @Router /sales/{employeeID}/bonus [put]
func (h *commissionHandler) updateSalesBonus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.UpdateSalesBonusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSalesBonus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actingUser(c, h.userService)
	if !ok {
		return
	}

	if err := h.commissionService.UpdateSalesBonus(c.Request.Context(), employeeID, req.Amount, actor.UserID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
