// Package stores regroupe les conteneurs d'état de la boutique :
// panier, wishlist, session, thème et aperçu rapide. Chaque conteneur
// persiste son état complet sous une clé fixe à chaque mutation et le
// recharge au démarrage.
package stores

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"lumiere_back_end/internal/cache"
	"lumiere_back_end/internal/models"
)

// CartStore possède les lignes du panier. Invariants : au plus une
// ligne par produit, quantité toujours ≥ 1. Toutes les opérations sont
// totales — aucune ne retourne d'erreur.
type CartStore struct {
	mu    sync.Mutex
	items []models.CartItem
	kv    cache.Store
	subs  *broadcaster[models.Cart]
}

func NewCartStore(kv cache.Store) *CartStore {
	s := &CartStore{
		kv:   kv,
		subs: newBroadcaster[models.Cart](),
	}
	s.rehydrate()
	return s
}

func (s *CartStore) rehydrate() {
	data, ok, err := s.kv.Get(context.Background(), cache.KeyCart)
	if err != nil || !ok {
		return
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("❌ Erreur décodage panier persisté: %v", err)
		return
	}
	s.items = items
	log.Printf("🛒 Panier rechargé: %d ligne(s)", len(items))
}

// persist écrit l'état complet puis notifie les abonnés.
// Appelé verrou tenu.
func (s *CartStore) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("❌ Erreur sérialisation panier: %v", err)
		return
	}
	if err := s.kv.Set(context.Background(), cache.KeyCart, string(data)); err != nil {
		log.Printf("❌ Erreur persistance panier: %v", err)
	}
	s.subs.publish(s.snapshotLocked())
}

// AddItem ajoute un produit au panier. Si une ligne existe déjà pour ce
// produit, sa quantité est incrémentée ; sinon une nouvelle ligne
// sélectionnée est créée. Aucun contrôle de stock n'est fait ici.
func (s *CartStore) AddItem(product models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].Product.ID == product.ID {
			s.items[i].Quantity += quantity
			s.persist()
			return
		}
	}
	s.items = append(s.items, models.CartItem{Product: product, Quantity: quantity, Selected: true})
	s.persist()
}

// RemoveItem supprime la ligne du produit ; sans effet si absente
func (s *CartStore) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
	s.persist()
}

func (s *CartStore) removeLocked(productID string) {
	out := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	s.items = out
}

// UpdateQuantity fixe la quantité d'une ligne à la valeur exacte
// demandée. Une quantité ≤ 0 supprime la ligne.
func (s *CartStore) UpdateQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		s.persist()
		return
	}
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.persist()
}

// ToggleSelection inverse la participation de la ligne au passage en
// caisse. Une ligne désélectionnée reste dans le panier mais sort des
// totaux et de la commande.
func (s *CartStore) ToggleSelection(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].Product.ID == productID {
			s.items[i].Selected = !s.items[i].Selected
			break
		}
	}
	s.persist()
}

// SelectAll force le drapeau de sélection de toutes les lignes
func (s *CartStore) SelectAll(selected bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].Selected = selected
	}
	s.persist()
}

// Clear vide entièrement le panier
func (s *CartStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Items retourne une copie des lignes du panier
func (s *CartStore) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// SelectedItems retourne les lignes participant au passage en caisse
func (s *CartStore) SelectedItems() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.CartItem
	for _, item := range s.items {
		if item.Selected {
			out = append(out, item)
		}
	}
	return out
}

// ItemCount retourne la somme des quantités, lignes sélectionnées ou non
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// Subtotal somme prix × quantité sur les seules lignes sélectionnées
func (s *CartStore) Subtotal() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.subtotalLocked()
}

func (s *CartStore) subtotalLocked() float64 {
	subtotal := 0.0
	for _, item := range s.items {
		if item.Selected {
			subtotal += item.Product.Price * float64(item.Quantity)
		}
	}
	return subtotal
}

// Total = sous-total + livraison + TVA, recalculé à chaque lecture
func (s *CartStore) Total() float64 {
	return TotalFor(s.Subtotal())
}

// IsInCart indique si une ligne existe pour ce produit
func (s *CartStore) IsInCart(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// ItemQuantity retourne la quantité de la ligne, 0 si absente
func (s *CartStore) ItemQuantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.Product.ID == productID {
			return item.Quantity
		}
	}
	return 0
}

// Snapshot retourne la vue complète du panier avec ses totaux dérivés
func (s *CartStore) Snapshot() models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

func (s *CartStore) snapshotLocked() models.Cart {
	items := make([]models.CartItem, len(s.items))
	copy(items, s.items)

	subtotal := s.subtotalLocked()
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}

	return models.Cart{
		Items:     items,
		Subtotal:  subtotal,
		Shipping:  ShippingFor(subtotal),
		Tax:       TaxFor(subtotal),
		Total:     TotalFor(subtotal),
		ItemCount: count,
	}
}

// Subscribe abonne un lecteur aux instantanés du panier après chaque
// mutation. Le second retour désabonne.
func (s *CartStore) Subscribe() (<-chan models.Cart, func()) {
	return s.subs.subscribe()
}
