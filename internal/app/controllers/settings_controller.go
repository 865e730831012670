package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lvogel/admithub/internal/app/models/dto"
	"github.com/lvogel/admithub/internal/app/services"
	"github.com/lvogel/admithub/internal/middleware"
)

// SettingsController handles the application period endpoints
type SettingsController struct {
	settingsService *services.SettingsService
}

// NewSettingsController creates a new SettingsController
func NewSettingsController(settingsService *services.SettingsService) *SettingsController {
	return &SettingsController{settingsService: settingsService}
}

// Get retrieves the application period. Public so the application form can
// tell applicants whether submissions are open.
// @Summary Get application period
// @Tags settings
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.SettingsResponse} "Settings retrieved"
// @Router /settings [get]
func (c *SettingsController) Get(ctx *gin.Context) {
	settings, err := c.settingsService.Get(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SettingsResponse{
			ApplicationPeriodStart: settings.ApplicationPeriodStart,
			ApplicationPeriodEnd:   settings.ApplicationPeriodEnd,
			PeriodOpen:             settings.PeriodOpen(time.Now()),
		},
		Timestamp: time.Now(),
	})
}

// Update replaces the application period
// @Summary Update application period
// @Tags settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateSettingsRequest true "Application period"
// @Success 200 {object} dto.APIResponse{data=dto.SettingsResponse} "Settings updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid period"
// @Router /settings [put]
func (c *SettingsController) Update(ctx *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		bindError(ctx, err)
		return
	}

	settings, err := c.settingsService.Update(ctx, req.ApplicationPeriodStart, req.ApplicationPeriodEnd)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.SettingsResponse{
			ApplicationPeriodStart: settings.ApplicationPeriodStart,
			ApplicationPeriodEnd:   settings.ApplicationPeriodEnd,
			PeriodOpen:             settings.PeriodOpen(time.Now()),
		},
		Timestamp: time.Now(),
	})
}
