package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/quickview
func (h *Handlers) GetQuickView(c *gin.Context) {
	c.JSON(http.StatusOK, h.QuickView.State())
}

// POST /api/quickview/open
func (h *Handlers) OpenQuickView(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product := h.API.GetProductByID(c.Request.Context(), input.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.QuickView.Open(*product)
	c.JSON(http.StatusOK, h.QuickView.State())
}

// POST /api/quickview/close
func (h *Handlers) CloseQuickView(c *gin.Context) {
	h.QuickView.Close()
	c.JSON(http.StatusOK, h.QuickView.State())
}
