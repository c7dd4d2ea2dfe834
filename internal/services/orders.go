package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"lumiere_back_end/internal/models"
)

// ListOrders pagine les commandes, les plus récentes d'abord
func (a *API) ListOrders(ctx context.Context, page, limit int) models.PaginatedResponse[models.Order] {
	a.sleep(ctx, 5)
	a.mu.Lock()
	defer a.mu.Unlock()

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	total := len(a.data.Orders)
	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	data := make([]models.Order, end-start)
	copy(data, a.data.Orders[start:end])

	return models.PaginatedResponse[models.Order]{
		Data:       data,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: (total + limit - 1) / limit,
	}
}

// GetOrderByID retourne nil si l'identifiant est inconnu
func (a *API) GetOrderByID(ctx context.Context, id string) *models.Order {
	a.sleep(ctx, 4)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Orders {
		if a.data.Orders[i].ID == id {
			o := a.data.Orders[i]
			return &o
		}
	}
	return nil
}

// GetOrderByNumber retrouve une commande par son numéro LB-...
func (a *API) GetOrderByNumber(ctx context.Context, orderNumber string) *models.Order {
	a.sleep(ctx, 4)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Orders {
		if a.data.Orders[i].OrderNumber == orderNumber {
			o := a.data.Orders[i]
			return &o
		}
	}
	return nil
}

// CreateOrder enregistre une commande : identifiant, numéro
// LB-<année>-<séquence> et horodatages sont attribués ici. La commande
// naît toujours en statut pending et passe en tête de liste.
func (a *API) CreateOrder(ctx context.Context, order models.Order) models.Order {
	a.sleep(ctx, 8)
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	order.ID = "ord-" + uuid.NewString()
	order.OrderNumber = fmt.Sprintf("LB-%d-%04d", now.Year(), len(a.data.Orders)+1)
	order.Status = models.OrderPending
	order.CreatedAt = now
	order.UpdatedAt = now

	a.data.Orders = append([]models.Order{order}, a.data.Orders...)

	log.Printf("📦 Commande créée: %s (%.2f MAD)", order.OrderNumber, order.Total)
	return order
}

// UpdateOrderStatus avance le statut d'une commande (action admin
// uniquement) ; nil si introuvable
func (a *API) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) *models.Order {
	a.sleep(ctx, 6)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Orders {
		if a.data.Orders[i].ID != id {
			continue
		}
		a.data.Orders[i].Status = status
		a.data.Orders[i].UpdatedAt = a.now()
		log.Printf("📦 Commande %s → %s", a.data.Orders[i].OrderNumber, status)
		o := a.data.Orders[i]
		return &o
	}
	return nil
}

// AddTracking attache un numéro de suivi ; nil si introuvable
func (a *API) AddTracking(ctx context.Context, id, trackingNumber string) *models.Order {
	a.sleep(ctx, 6)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Orders {
		if a.data.Orders[i].ID != id {
			continue
		}
		a.data.Orders[i].TrackingNumber = trackingNumber
		a.data.Orders[i].UpdatedAt = a.now()
		o := a.data.Orders[i]
		return &o
	}
	return nil
}
