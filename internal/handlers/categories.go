package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/models"
	"lumiere_back_end/internal/services"
)

// GET /api/categories
func (h *Handlers) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.API.ListCategories(c.Request.Context()))
}

// GET /api/categories/:slug
func (h *Handlers) GetCategoryBySlug(c *gin.Context) {
	category := h.API.GetCategoryBySlug(c.Request.Context(), c.Param("slug"))
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// GET /api/categories/:slug/products
func (h *Handlers) GetProductsByCategory(c *gin.Context) {
	page, limit := pageParams(c, 12)
	c.JSON(http.StatusOK, h.API.GetProductsByCategory(c.Request.Context(), c.Param("slug"), page, limit))
}

// POST /api/admin/categories
func (h *Handlers) CreateCategory(c *gin.Context) {
	var input struct {
		Name        string `json:"name" binding:"required"`
		Slug        string `json:"slug" binding:"required"`
		Description string `json:"description"`
		Image       string `json:"image"`
		Icon        string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	category := h.API.CreateCategory(c.Request.Context(), models.Category{
		Name:        input.Name,
		Slug:        input.Slug,
		Description: input.Description,
		Image:       input.Image,
		Icon:        input.Icon,
	})
	c.JSON(http.StatusCreated, category)
}

// PUT /api/admin/categories/:id
func (h *Handlers) UpdateCategory(c *gin.Context) {
	var input struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		Image       *string `json:"image"`
		Icon        *string `json:"icon"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	category := h.API.UpdateCategory(c.Request.Context(), c.Param("id"), services.CategoryUpdate{
		Name:        input.Name,
		Description: input.Description,
		Image:       input.Image,
		Icon:        input.Icon,
	})
	if category == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}
	c.JSON(http.StatusOK, category)
}

// DELETE /api/admin/categories/:id
func (h *Handlers) DeleteCategory(c *gin.Context) {
	if !h.API.DeleteCategory(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Catégorie introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Catégorie supprimée"})
}
