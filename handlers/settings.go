package handlers

import (
	"errors"
	"net/http"

	settingsRepo "meetly/database/repository/settings"
	"meetly/models"
	"meetly/services/availability"
	"meetly/services/settings"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

// SettingsHandler exposes the organizer configuration endpoints.
type SettingsHandler struct {
	Service settings.SettingsService
}

func NewSettingsHandler(svc settings.SettingsService) *SettingsHandler {
	return &SettingsHandler{Service: svc}
}

func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	cfg, err := h.Service.Get(c.Request.Context())
	if errors.Is(err, settingsRepo.ErrNotFound) {
		c.JSON(http.StatusOK, gin.H{"message": "No settings found", "data": nil})
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	var cfg models.OrganizerSettings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request payload", "details": err.Error()})
		return
	}

	saved, err := h.Service.Update(c.Request.Context(), cfg)
	if err != nil {
		var vErr *availability.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to save settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Settings saved", "data": saved})
}
