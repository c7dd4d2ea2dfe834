package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/models"
)

// GET /api/admin/orders
func (h *Handlers) ListOrders(c *gin.Context) {
	page, limit := pageParams(c, 10)
	c.JSON(http.StatusOK, h.API.ListOrders(c.Request.Context(), page, limit))
}

// GET /api/admin/orders/:id
func (h *Handlers) GetOrder(c *gin.Context) {
	order := h.API.GetOrderByID(c.Request.Context(), c.Param("id"))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// GET /api/orders/number/:orderNumber
// Suivi public d'une commande par son numéro LB-...
func (h *Handlers) GetOrderByNumber(c *gin.Context) {
	order := h.API.GetOrderByNumber(c.Request.Context(), c.Param("orderNumber"))
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// PUT /api/admin/orders/:id/status
func (h *Handlers) UpdateOrderStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	status := models.OrderStatus(input.Status)
	if !models.ValidOrderStatus(status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu: " + input.Status})
		return
	}

	order := h.API.UpdateOrderStatus(c.Request.Context(), c.Param("id"), status)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, order)
}

// PUT /api/admin/orders/:id/tracking
func (h *Handlers) AddTracking(c *gin.Context) {
	var input struct {
		TrackingNumber string `json:"trackingNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	order := h.API.AddTracking(c.Request.Context(), c.Param("id"), input.TrackingNumber)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}
	c.JSON(http.StatusOK, order)
}
