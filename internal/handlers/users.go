package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/services"
)

// GET /api/admin/users
func (h *Handlers) ListUsers(c *gin.Context) {
	page, limit := pageParams(c, 10)
	c.JSON(http.StatusOK, h.API.ListUsers(c.Request.Context(), page, limit))
}

// GET /api/admin/users/:id
func (h *Handlers) GetUser(c *gin.Context) {
	user := h.API.GetUserByID(c.Request.Context(), c.Param("id"))
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// PUT /api/admin/users/:id
func (h *Handlers) UpdateUser(c *gin.Context) {
	var input struct {
		FirstName *string `json:"firstName"`
		LastName  *string `json:"lastName"`
		Phone     *string `json:"phone"`
		Avatar    *string `json:"avatar"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	user := h.API.UpdateUser(c.Request.Context(), c.Param("id"), services.UserUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Avatar:    input.Avatar,
	})
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// DELETE /api/admin/users/:id
func (h *Handlers) DeleteUser(c *gin.Context) {
	if !h.API.DeleteUser(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client supprimé"})
}
