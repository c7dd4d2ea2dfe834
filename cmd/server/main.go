package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"lumiere_back_end/internal/cache"
	"lumiere_back_end/internal/checkout"
	"lumiere_back_end/internal/config"
	"lumiere_back_end/internal/database"
	"lumiere_back_end/internal/handlers"
	"lumiere_back_end/internal/mockdata"
	"lumiere_back_end/internal/models"
	"lumiere_back_end/internal/routes"
	"lumiere_back_end/internal/services"
	"lumiere_back_end/internal/stores"
	"lumiere_back_end/internal/utils"
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseRedis()

	// Persistance des conteneurs : Redis si disponible, sinon mémoire
	var kv cache.Store
	if database.Redis != nil {
		kv = cache.NewRedisStore(database.Redis)
		log.Println("✅ Persistance des conteneurs sur Redis")
	} else {
		kv = cache.NewMemoryStore()
		log.Println("⚠️ Persistance des conteneurs en mémoire uniquement")
	}

	data := mockdata.NewDataset()
	log.Printf("📦 Jeu de données chargé: %d produits, %d catégories, %d commandes",
		len(data.Products), len(data.Categories), len(data.Orders))

	api := services.New(data)

	cart := stores.NewCartStore(kv)
	wishlist := stores.NewWishlistStore(kv)
	auth := stores.NewAuthStore(kv)
	theme := stores.NewThemeStore(kv, func() models.Theme { return models.ThemeLight })
	quickView := stores.NewQuickViewStore()

	flow := checkout.NewFlow(cart, api, checkout.WithOrderHook(func(order models.Order) {
		if err := utils.SendOrderConfirmationEmail(order); err != nil {
			log.Printf("❌ Erreur envoi email de confirmation: %v", err)
		}
	}))

	h := handlers.New(api, cart, wishlist, auth, theme, quickView, flow)

	r := gin.Default()
	routes.RegisterRoutes(r, h)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Lumière Botanical lancé sur le port", port)
	r.Run(":" + port)
}
