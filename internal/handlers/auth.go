package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/utils"
)

// POST /api/auth/login
// Un seul couple d'identifiants valide (compte admin de démo). Tout
// autre couple répond 401 sans toucher la session.
func (h *Handlers) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	if !h.Auth.Login(c.Request.Context(), input.Email, input.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	user := h.Auth.CurrentUser()
	token, err := utils.GenerateJWT(*user)
	if err != nil {
		log.Printf("❌ Erreur génération JWT: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// POST /api/auth/logout
func (h *Handlers) Logout(c *gin.Context) {
	h.Auth.Logout()
	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}

// GET /api/auth/me
func (h *Handlers) Me(c *gin.Context) {
	user := h.Auth.CurrentUser()
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Non authentifié"})
		return
	}
	c.JSON(http.StatusOK, user)
}
