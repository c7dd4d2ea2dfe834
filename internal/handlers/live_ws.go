package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Autoriser toutes les origines (à ajuster en production)
		return true
	},
}

// LiveFeed pousse en temps réel les changements du panier et de
// l'aperçu rapide vers le client connecté.
func (h *Handlers) LiveFeed(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("❌ Erreur upgrade WebSocket: %v", err)
		return
	}
	defer conn.Close()

	cartCh, cancelCart := h.Cart.Subscribe()
	defer cancelCart()
	quickViewCh, cancelQuickView := h.QuickView.Subscribe()
	defer cancelQuickView()

	// Envoyer un message de connexion avec l'état courant
	conn.WriteJSON(gin.H{
		"type": "connected",
		"cart": h.Cart.Snapshot(),
	})

	ping := time.NewTicker(30 * time.Second)
	defer ping.Stop()

	for {
		select {
		case cart := <-cartCh:
			if err := conn.WriteJSON(gin.H{"type": "cart_updated", "cart": cart}); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case state := <-quickViewCh:
			if err := conn.WriteJSON(gin.H{"type": "quickview_updated", "quickView": state}); err != nil {
				log.Printf("❌ Erreur envoi WebSocket: %v", err)
				return
			}
		case <-ping.C:
			// Ping pour garder la connexion active
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
