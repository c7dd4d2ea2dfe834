package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis est optionnel : sans REDIS_HOST, l'état des conteneurs vit
// uniquement en mémoire (mode démo, comme la maquette d'origine)
var Redis *redis.Client

// ConnectDatabases initialise les connexions externes du serveur.
// La boutique sert un jeu de données en mémoire ; seul Redis est
// branché, pour la persistance de l'état panier/wishlist/thème.
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	connectRedis(ctx)
}

func connectRedis(ctx context.Context) {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		log.Println("⚠️  REDIS_HOST non configuré — persistance en mémoire uniquement")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     host,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatal("❌ Erreur connexion Redis:", err)
	}
	log.Println("✅ Connecté à Redis")
}

// CloseRedis ferme la connexion Redis si elle a été ouverte
func CloseRedis() {
	if Redis == nil {
		return
	}
	if err := Redis.Close(); err != nil {
		log.Printf("❌ Erreur fermeture Redis: %v", err)
	} else {
		log.Println("🔌 Connexion Redis fermée")
	}
}
