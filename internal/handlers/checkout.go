package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/checkout"
	"lumiere_back_end/internal/models"
)

// GET /api/checkout
func (h *Handlers) CheckoutState(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"step":        h.Flow.Step(),
		"orderNumber": h.Flow.OrderNumber(),
	})
}

// POST /api/checkout/begin
// Refuse l'entrée (303 vers le panier) si rien n'est sélectionné
func (h *Handlers) BeginCheckout(c *gin.Context) {
	if err := h.Flow.Begin(); err != nil {
		c.JSON(http.StatusSeeOther, gin.H{
			"error":    "Votre panier est vide",
			"redirect": "/cart",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.Flow.Step()})
}

// POST /api/checkout/shipping
func (h *Handlers) SubmitShipping(c *gin.Context) {
	var input struct {
		FirstName  string `json:"firstName" binding:"required"`
		LastName   string `json:"lastName" binding:"required"`
		Email      string `json:"email" binding:"required"`
		Phone      string `json:"phone" binding:"required"`
		Address1   string `json:"address1" binding:"required"`
		Address2   string `json:"address2"`
		City       string `json:"city" binding:"required"`
		PostalCode string `json:"postalCode" binding:"required"`
		Country    string `json:"country"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Champs obligatoires manquants", "details": err.Error()})
		return
	}
	if input.Country == "" {
		input.Country = "Maroc"
	}

	err := h.Flow.SubmitShipping(models.Address{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		Address1:   input.Address1,
		Address2:   input.Address2,
		City:       input.City,
		PostalCode: input.PostalCode,
		Country:    input.Country,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"step": h.Flow.Step()})
}

// POST /api/checkout/payment
func (h *Handlers) SubmitPayment(c *gin.Context) {
	var input struct {
		Type       string `json:"type"`
		CardNumber string `json:"cardNumber"`
		CardHolder string `json:"cardHolder"`
		ExpiryDate string `json:"expiryDate"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Type == "" {
		input.Type = "card"
	}

	order, err := h.Flow.SubmitPayment(c.Request.Context(), models.PaymentMethod{
		Type:       input.Type,
		CardNumber: input.CardNumber,
		CardHolder: input.CardHolder,
		ExpiryDate: input.ExpiryDate,
	})
	switch {
	case errors.Is(err, checkout.ErrAlreadyProcessing):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	case errors.Is(err, checkout.ErrWrongStep), errors.Is(err, checkout.ErrNoSelection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur traitement paiement"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"step":        h.Flow.Step(),
		"order":       order,
		"orderNumber": order.OrderNumber,
	})
}
