package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/cart
func (h *Handlers) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.Cart.Snapshot())
}

// POST /api/cart
func (h *Handlers) AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Quantité invalide"})
		return
	}

	product := h.API.GetProductByID(c.Request.Context(), input.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Cart.AddItem(*product, input.Quantity)
	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté au panier",
		"cart":    h.Cart.Snapshot(),
	})
}

// DELETE /api/cart/:productId
func (h *Handlers) RemoveFromCart(c *gin.Context) {
	h.Cart.RemoveItem(c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{
		"message": "Produit supprimé du panier",
		"cart":    h.Cart.Snapshot(),
	})
}

// PUT /api/cart/:productId/quantity
func (h *Handlers) UpdateCartQuantity(c *gin.Context) {
	var input struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	// Une quantité ≤ 0 retire la ligne
	h.Cart.UpdateQuantity(c.Param("productId"), input.Quantity)
	c.JSON(http.StatusOK, gin.H{"cart": h.Cart.Snapshot()})
}

// PUT /api/cart/:productId/selection
func (h *Handlers) ToggleCartSelection(c *gin.Context) {
	h.Cart.ToggleSelection(c.Param("productId"))
	c.JSON(http.StatusOK, gin.H{"cart": h.Cart.Snapshot()})
}

// PUT /api/cart/select-all
func (h *Handlers) SelectAllCart(c *gin.Context) {
	var input struct {
		Selected *bool `json:"selected" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	h.Cart.SelectAll(*input.Selected)
	c.JSON(http.StatusOK, gin.H{"cart": h.Cart.Snapshot()})
}

// DELETE /api/cart
func (h *Handlers) ClearCart(c *gin.Context) {
	h.Cart.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
