// internal/handlers/settings.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agrikom/agrimarket-backend/internal/models"
	"github.com/agrikom/agrimarket-backend/internal/services"
	"github.com/agrikom/agrimarket-backend/internal/utils"
)

type SettingsHandler struct {
	settingsService *services.SettingsService
}

func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GET /settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.Settings(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, settings)
}

// PUT /settings
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	var settings models.JSONB
	if err := c.ShouldBindJSON(&settings); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err.Error())
		return
	}

	if err := h.settingsService.SaveSettings(key, settings); err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, settings)
}

// GET /notifications
func (h *SettingsHandler) GetNotifications(c *gin.Context) {
	key, ok := ownerKey(c)
	if !ok {
		return
	}

	notifications, err := h.settingsService.Notifications(key)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}
	utils.SuccessResponse(c, notifications)
}
