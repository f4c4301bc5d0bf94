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

// salaryHandler handles HTTP requests related to salary calculation and administration.
type salaryHandler struct {
	salaryService portssvc.SalarySvcFacade
	userService   portssvc.UserSvcFacade
}

// newSalaryHandler creates a new salaryHandler.
func newSalaryHandler(ss portssvc.SalarySvcFacade, us portssvc.UserSvcFacade) *salaryHandler {
	return &salaryHandler{
		salaryService: ss,
		userService:   us,
	}
}

// registerSalaryRoutes registers routes related to salaries.
func registerSalaryRoutes(rg *gin.RouterGroup, salaryService portssvc.SalarySvcFacade, deductionService portssvc.DeductionSvc, userService portssvc.UserSvcFacade) {
	h := newSalaryHandler(salaryService, userService)
	dh := newDeductionHandler(deductionService)

	salaries := rg.Group("/salaries")
	{
		salaries.POST("/calculate", h.calculateSalary)
		salaries.POST("/calculate-all", h.calculateAllSalaries)
		salaries.GET("/:employeeID/deductions", dh.getDeductions)
		salaries.GET("/:employeeID/breakdown", h.getSalaryBreakdown)
		salaries.GET("/:employeeID/logs", h.listSalaryLogs)
	}

	employees := rg.Group("/employees")
	{
		employees.PUT("/:employeeID/salary", h.updateSalary)
	}
}

// calculateSalary godoc
// @Summary Calculate an employee's salary
// @Description Computes the prorated salary for one employee and persists the monthly salary log
// @Tags salaries
// @Accept  json
// @Produce  json
// @Param   request body dto.CalculateSalaryRequest true "Calculation input"
// @Success 200 {object} dto.SalaryLogResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 409 {object} ErrorResponse "Salary log already paid for the month"
// @Failure 500 {object} ErrorResponse "Failed to calculate salary"
// @Security BearerAuth
// @Router /salaries/calculate [post]
func (h *salaryHandler) calculateSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CalculateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for calculateSalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if req.StartDate != nil && req.EndDate != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "startDate and endDate are mutually exclusive"})
		return
	}

	log, err := h.salaryService.CalculateSalary(c.Request.Context(), req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSalaryLogResponse(log))
}

// calculateAllSalaries godoc
// @Summary Calculate salaries for all active employees
// @Description Runs the salary calculation for every active employee; per-employee failures are logged and skipped
// @Tags salaries
// @Produce  json
// @Success 202 {object} map[string]string
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /salaries/calculate-all [post]
func (h *salaryHandler) calculateAllSalaries(c *gin.Context) {
	h.salaryService.CalculateAllEmployees(c.Request.Context())
	c.JSON(http.StatusAccepted, gin.H{"message": "Salary calculation completed for all active employees"})
}

// getSalaryBreakdown godoc
// @Summary Get an employee's salary breakdown
// @Description Returns the itemized deduction breakdown and both final salary figures for a month
// @Tags salaries
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   month query string true "Month in YYYY-MM format"
// @Success 200 {object} dto.DeductionBreakdownResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid month"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /salaries/{employeeID}/breakdown [get]
func (h *salaryHandler) getSalaryBreakdown(c *gin.Context) {
	employeeID := c.Param("employeeID")
	var params dto.DeductionQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "month query parameter is required in YYYY-MM format"})
		return
	}

	breakdown, err := h.salaryService.GetSalaryBreakdown(c.Request.Context(), employeeID, params.Month)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDeductionBreakdownResponse(breakdown))
}

// listSalaryLogs godoc
// @Summary List an employee's salary logs
// @Description Returns the salary history of an employee, newest first, with token-based pagination
// @Tags salaries
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   limit query int false "Page size" default(12)
// @Param   nextToken query string false "Token from a previous page"
// @Success 200 {object} dto.ListSalaryLogsResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /salaries/{employeeID}/logs [get]
func (h *salaryHandler) listSalaryLogs(c *gin.Context) {
	employeeID := c.Param("employeeID")
	var params dto.ListSalaryLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	logs, nextToken, err := h.salaryService.ListSalaryLogs(c.Request.Context(), employeeID, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListSalaryLogsResponse(logs, nextToken))
}

// updateSalary godoc
// @Summary Set an employee's base salary
// @Description Updates the monthly base salary, enforcing role restrictions; HR actions are audit-logged
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Param   request body dto.UpdateSalaryRequest true "New base salary"
// @Success 204 "Salary updated"
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 403 {object} ErrorResponse "Actor may not set this salary"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Security BearerAuth
// @Router /employees/{employeeID}/salary [put]
func (h *salaryHandler) updateSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	var req dto.UpdateSalaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSalary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actingUser(c, h.userService)
	if !ok {
		return
	}

	err := h.salaryService.UpdateSalary(c.Request.Context(), employeeID, req.BaseSalary, actor.UserID, actor.Role == domain.RoleAdmin)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
