package handlers

import (
	"net/http"

	portssvc "github.com/crewpay/crewpay-backend/internal/core/ports/services"
	"github.com/crewpay/crewpay-backend/internal/dto"
	"github.com/gin-gonic/gin"
)

// deductionHandler handles HTTP requests related to deduction calculation.
type deductionHandler struct {
	deductionService portssvc.DeductionSvc
}

// newDeductionHandler creates a new deductionHandler.
func newDeductionHandler(ds portssvc.DeductionSvc) *deductionHandler {
	return &deductionHandler{deductionService: ds}
}

// registerDeductionRoutes registers the batch deduction route.
func registerDeductionRoutes(rg *gin.RouterGroup, deductionService portssvc.DeductionSvc) {
	h := newDeductionHandler(deductionService)
	rg.GET("/deductions", h.getAllDeductions)
}

// getDeductions godoc
// @Summary Get an employee's deductions for a month
// @Description Computes the deduction breakdown for one employee from attendance facts and adjustments
// @Tags deductions
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   month query string true "Month in YYYY-MM format"
// @Success 200 {object} dto.DeductionBreakdownResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid month"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Employee has no base salary"
// @Security BearerAuth
// @Router /salaries/{employeeID}/deductions [get]
func (h *deductionHandler) getDeductions(c *gin.Context) {
	employeeID := c.Param("employeeID")
	var params dto.DeductionQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month query parameter is required in YYYY-MM format"})
		return
	}

	breakdown, err := h.deductionService.CalculateDeductions(c.Request.Context(), employeeID, params.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeductionBreakdownResponse(breakdown))
}

// getAllDeductions godoc
// @Summary Get deductions for all active employees
// @Description Computes deduction breakdowns across the workforce for a month, with aggregate totals
// @Tags deductions
// @Produce  json
// @Param   month query string true "Month in YYYY-MM format"
// @Success 200 {object} dto.BatchDeductionResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid month"
// @Security BearerAuth
// @Router /deductions [get]
func (h *deductionHandler) getAllDeductions(c *gin.Context) {
	var params dto.DeductionQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month query parameter is required in YYYY-MM format"})
		return
	}

	result, err := h.deductionService.CalculateAllEmployeesDeductions(c.Request.Context(), params.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBatchDeductionResponse(result))
}
