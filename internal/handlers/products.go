package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/models"
	"lumiere_back_end/internal/services"
)

// Bornes de prix par défaut quand le client ne les précise pas
const (
	defaultMinPrice = 0
	defaultMaxPrice = 10000
)

// parseFilters construit le filtre catalogue depuis la query string.
// Les champs multi-valeurs sont passés en listes séparées par des
// virgules : ?categories=serums,masks&skinTypes=dry
func parseFilters(c *gin.Context) *models.ProductFilters {
	filters := &models.ProductFilters{
		PriceRange: [2]float64{defaultMinPrice, defaultMaxPrice},
		SortBy:     models.SortBy(c.DefaultQuery("sortBy", string(models.SortNewest))),
		Search:     c.Query("search"),
	}

	if v := c.Query("categories"); v != "" {
		filters.Categories = strings.Split(v, ",")
	}
	if v := c.Query("skinTypes"); v != "" {
		for _, st := range strings.Split(v, ",") {
			filters.SkinTypes = append(filters.SkinTypes, models.SkinType(st))
		}
	}
	if v := c.Query("concerns"); v != "" {
		for _, sc := range strings.Split(v, ",") {
			filters.Concerns = append(filters.Concerns, models.SkinConcern(sc))
		}
	}
	if v := c.Query("brands"); v != "" {
		filters.Brands = strings.Split(v, ",")
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		filters.PriceRange[0] = v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		filters.PriceRange[1] = v
	}
	if v, err := strconv.ParseFloat(c.Query("rating"), 64); err == nil {
		filters.Rating = v
	}
	return filters
}

func pageParams(c *gin.Context, defaultLimit int) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	return page, limit
}

// GET /api/products
func (h *Handlers) ListProducts(c *gin.Context) {
	page, limit := pageParams(c, 12)
	result := h.API.ListProducts(c.Request.Context(), page, limit, parseFilters(c))
	c.JSON(http.StatusOK, result)
}

// GET /api/products/slug/:slug
func (h *Handlers) GetProductBySlug(c *gin.Context) {
	product := h.API.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /api/products/:id
func (h *Handlers) GetProductByID(c *gin.Context) {
	product := h.API.GetProductByID(c.Request.Context(), c.Param("id"))
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GET /api/products/:id/related
func (h *Handlers) GetRelatedProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "4"))
	related := h.API.GetRelatedProducts(c.Request.Context(), c.Param("id"), limit)
	c.JSON(http.StatusOK, gin.H{"products": related})
}

// GET /api/products/bestsellers
func (h *Handlers) GetBestsellers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	c.JSON(http.StatusOK, gin.H{"products": h.API.GetBestsellers(c.Request.Context(), limit)})
}

// GET /api/products/new
func (h *Handlers) GetNewArrivals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	c.JSON(http.StatusOK, gin.H{"products": h.API.GetNewArrivals(c.Request.Context(), limit)})
}

// GET /api/products/sale
func (h *Handlers) GetOnSale(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	c.JSON(http.StatusOK, gin.H{"products": h.API.GetOnSale(c.Request.Context(), limit)})
}

// GET /api/products/search?q=
func (h *Handlers) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Terme de recherche requis"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": h.API.SearchProducts(c.Request.Context(), query)})
}

// POST /api/admin/products
func (h *Handlers) CreateProduct(c *gin.Context) {
	var input models.Product
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}
	if input.Name == "" || input.Slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom et slug obligatoires"})
		return
	}

	product := h.API.CreateProduct(c.Request.Context(), input)
	c.JSON(http.StatusCreated, product)
}

// PUT /api/admin/products/:id
func (h *Handlers) UpdateProduct(c *gin.Context) {
	var input struct {
		Name             *string  `json:"name"`
		Description      *string  `json:"description"`
		ShortDescription *string  `json:"shortDescription"`
		Price            *float64 `json:"price"`
		OriginalPrice    *float64 `json:"originalPrice"`
		Stock            *int     `json:"stock"`
		Brand            *string  `json:"brand"`
		IsNew            *bool    `json:"isNew"`
		IsBestseller     *bool    `json:"isBestseller"`
		IsOnSale         *bool    `json:"isOnSale"`
		Discount         *int     `json:"discount"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	product := h.API.UpdateProduct(c.Request.Context(), c.Param("id"), services.ProductUpdate{
		Name:             input.Name,
		Description:      input.Description,
		ShortDescription: input.ShortDescription,
		Price:            input.Price,
		OriginalPrice:    input.OriginalPrice,
		Stock:            input.Stock,
		Brand:            input.Brand,
		IsNew:            input.IsNew,
		IsBestseller:     input.IsBestseller,
		IsOnSale:         input.IsOnSale,
		Discount:         input.Discount,
	})
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// DELETE /api/admin/products/:id
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if !h.API.DeleteProduct(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
