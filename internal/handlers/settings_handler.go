package handlers

import (
	"net/http"

	"sneakerhub/internal/models"
	"sneakerhub/internal/services"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService services.SettingsService
}

func NewSettingsHandler(settingsService services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get serves both the public /settings route and the admin variant; the
// payload is identical.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch settings"})
		return
	}
	c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) Update(c *gin.Context) {
	var req struct {
		StoreName     string `json:"store_name"`
		StoreEmail    string `json:"store_email"`
		ContactNumber string `json:"contact_number"`
		Address       string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request format"})
		return
	}

	settings, err := h.settingsService.Update(&models.StoreSettings{
		StoreName:     req.StoreName,
		StoreEmail:    req.StoreEmail,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update settings"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  "Settings updated successfully",
		"settings": settings,
	})
}
