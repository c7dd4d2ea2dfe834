package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/models"
)

// GET /api/theme
func (h *Handlers) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"theme":    h.Theme.Theme(),
		"resolved": h.Theme.Apply(),
	})
}

// PUT /api/theme
func (h *Handlers) SetTheme(c *gin.Context) {
	var input struct {
		Theme string `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	theme := models.Theme(input.Theme)
	switch theme {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Thème inconnu: " + input.Theme})
		return
	}

	h.Theme.SetTheme(theme)
	c.JSON(http.StatusOK, gin.H{"theme": h.Theme.Theme()})
}

// POST /api/theme/toggle
func (h *Handlers) ToggleTheme(c *gin.Context) {
	h.Theme.Toggle()
	c.JSON(http.StatusOK, gin.H{
		"theme":    h.Theme.Theme(),
		"resolved": h.Theme.Apply(),
	})
}
