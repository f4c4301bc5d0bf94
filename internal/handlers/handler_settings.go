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

// settingsHandler handles HTTP requests related to payroll settings.
type settingsHandler struct {
	settingsService portssvc.SettingsSvc
	userService     portssvc.UserSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvc, us portssvc.UserSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
		userService:     us,
	}
}

// registerSettingsRoutes registers routes related to payroll settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvc, userService portssvc.UserSvcFacade) {
	h := newSettingsHandler(settingsService, userService)

	settings := rg.Group("/settings")
	{
		settings.GET("/payroll", h.getSettings)
		settings.PUT("/payroll", h.updateSettings)
	}
}

// getSettings godoc
// @Summary Get the payroll settings
// @Description Returns the configurable payroll business rules, with defaults when none are persisted
// @Tags settings
// @Produce  json
// @Success 200 {object} dto.SettingsResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /settings/payroll [get]
func (h *settingsHandler) getSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update the payroll settings
// @Description Replaces the configurable payroll business rules
// @Tags settings
// @Accept  json
// @Produce  json
// @Param   request body dto.UpdateSettingsRequest true "New settings"
// @Success 200 {object} dto.SettingsResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or negative allowance"
// @Security BearerAuth
// @Router /settings/payroll [put]
func (h *settingsHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for updateSettings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := actingUser(c, h.userService)
	if !ok {
		return
	}

	updated, err := h.settingsService.UpdateSettings(c.Request.Context(), domain.CompanySettings{
		MonthlyLateAllowance: *req.MonthlyLateAllowance,
		HalfDayAllowance:     *req.HalfDayAllowance,
	}, actor.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSettingsResponse(updated))
}
