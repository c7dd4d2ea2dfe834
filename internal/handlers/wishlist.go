package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GET /api/wishlist
func (h *Handlers) GetWishlist(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.Wishlist.Items(),
		"count": h.Wishlist.Count(),
	})
}

// POST /api/wishlist
func (h *Handlers) AddToWishlist(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product := h.API.GetProductByID(c.Request.Context(), req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Wishlist.Add(*product)
	log.Printf("⭐ Produit %s ajouté à la wishlist", req.ProductID)
	c.JSON(http.StatusOK, gin.H{
		"message": "Produit ajouté à la wishlist",
		"count":   h.Wishlist.Count(),
	})
}

// POST /api/wishlist/toggle
func (h *Handlers) ToggleWishlist(c *gin.Context) {
	var req struct {
		ProductID string `json:"productId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product := h.API.GetProductByID(c.Request.Context(), req.ProductID)
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	h.Wishlist.Toggle(*product)
	c.JSON(http.StatusOK, gin.H{
		"inWishlist": h.Wishlist.Contains(req.ProductID),
		"count":      h.Wishlist.Count(),
	})
}

// DELETE /api/wishlist/:productId
func (h *Handlers) RemoveFromWishlist(c *gin.Context) {
	productID := c.Param("productId")
	h.Wishlist.Remove(productID)
	log.Printf("🗑️ Produit %s retiré de la wishlist", productID)
	c.JSON(http.StatusOK, gin.H{"message": "Produit retiré de la wishlist"})
}

// DELETE /api/wishlist
func (h *Handlers) ClearWishlist(c *gin.Context) {
	h.Wishlist.Clear()
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist vidée"})
}
