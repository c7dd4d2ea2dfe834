package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/handlers"
	"lumiere_back_end/internal/middleware"
)

func RegisterRoutes(r *gin.Engine, h *handlers.Handlers) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")

	// Catalogue
	api.GET("/products", h.ListProducts)
	api.GET("/products/search", h.SearchProducts)
	api.GET("/products/bestsellers", h.GetBestsellers)
	api.GET("/products/new", h.GetNewArrivals)
	api.GET("/products/sale", h.GetOnSale)
	api.GET("/products/slug/:slug", h.GetProductBySlug)
	api.GET("/products/:id", h.GetProductByID)
	api.GET("/products/:id/related", h.GetRelatedProducts)

	api.GET("/categories", h.ListCategories)
	api.GET("/categories/:slug", h.GetCategoryBySlug)
	api.GET("/categories/:slug/products", h.GetProductsByCategory)

	// Panier
	api.GET("/cart", h.GetCart)
	api.POST("/cart", h.AddToCart)
	api.DELETE("/cart", h.ClearCart)
	api.PUT("/cart/select-all", h.SelectAllCart)
	api.PUT("/cart/:productId/quantity", h.UpdateCartQuantity)
	api.PUT("/cart/:productId/selection", h.ToggleCartSelection)
	api.DELETE("/cart/:productId", h.RemoveFromCart)

	// Favoris
	api.GET("/wishlist", h.GetWishlist)
	api.POST("/wishlist", h.AddToWishlist)
	api.POST("/wishlist/toggle", h.ToggleWishlist)
	api.DELETE("/wishlist", h.ClearWishlist)
	api.DELETE("/wishlist/:productId", h.RemoveFromWishlist)

	// Checkout
	api.POST("/checkout/begin", h.BeginCheckout)
	api.GET("/checkout", h.CheckoutState)
	api.POST("/checkout/shipping", h.SubmitShipping)
	api.POST("/checkout/payment", h.SubmitPayment)

	// Suivi de commande public
	api.GET("/orders/number/:orderNumber", h.GetOrderByNumber)

	// Auth
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", h.Me)

	// Thème
	api.GET("/theme", h.GetTheme)
	api.PUT("/theme", h.SetTheme)
	api.POST("/theme/toggle", h.ToggleTheme)

	// Aperçu rapide
	api.GET("/quickview", h.GetQuickView)
	api.POST("/quickview/open", h.OpenQuickView)
	api.POST("/quickview/close", h.CloseQuickView)

	// Flux temps réel (panier + aperçu rapide)
	api.GET("/live", h.LiveFeed)

	// Back-office
	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(), middleware.RequireAdmin)
	{
		admin.GET("/dashboard", h.GetDashboardStats)
		admin.GET("/dashboard/sales-chart", h.GetSalesChart)

		admin.POST("/products", h.CreateProduct)
		admin.PUT("/products/:id", h.UpdateProduct)
		admin.DELETE("/products/:id", h.DeleteProduct)

		admin.POST("/categories", h.CreateCategory)
		admin.PUT("/categories/:id", h.UpdateCategory)
		admin.DELETE("/categories/:id", h.DeleteCategory)

		admin.GET("/orders", h.ListOrders)
		admin.GET("/orders/:id", h.GetOrder)
		admin.PUT("/orders/:id/status", h.UpdateOrderStatus)
		admin.PUT("/orders/:id/tracking", h.AddTracking)

		admin.GET("/users", h.ListUsers)
		admin.GET("/users/:id", h.GetUser)
		admin.PUT("/users/:id", h.UpdateUser)
		admin.DELETE("/users/:id", h.DeleteUser)
	}
}
