package stores

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"lumiere_back_end/internal/cache"
	"lumiere_back_end/internal/models"
)

// WishlistStore possède l'ensemble dédupliqué des produits sauvegardés.
// Sémantique d'ensemble stricte : un produit est présent une fois ou
// absent, jamais dupliqué.
type WishlistStore struct {
	mu    sync.Mutex
	items []models.WishlistItem
	kv    cache.Store
	now   func() time.Time
}

func NewWishlistStore(kv cache.Store) *WishlistStore {
	s := &WishlistStore{kv: kv, now: time.Now}
	s.rehydrate()
	return s
}

func (s *WishlistStore) rehydrate() {
	data, ok, err := s.kv.Get(context.Background(), cache.KeyWishlist)
	if err != nil || !ok {
		return
	}
	var items []models.WishlistItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		log.Printf("❌ Erreur décodage wishlist persistée: %v", err)
		return
	}
	s.items = items
	log.Printf("⭐ Wishlist rechargée: %d produit(s)", len(items))
}

func (s *WishlistStore) persist() {
	data, err := json.Marshal(s.items)
	if err != nil {
		log.Printf("❌ Erreur sérialisation wishlist: %v", err)
		return
	}
	if err := s.kv.Set(context.Background(), cache.KeyWishlist, string(data)); err != nil {
		log.Printf("❌ Erreur persistance wishlist: %v", err)
	}
}

// Add ajoute un produit ; sans effet s'il est déjà présent
func (s *WishlistStore) Add(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.containsLocked(product.ID) {
		return
	}
	s.items = append(s.items, models.WishlistItem{Product: product, AddedAt: s.now()})
	s.persist()
}

// Remove retire le produit ; sans effet s'il est absent
func (s *WishlistStore) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.items[:0]
	for _, item := range s.items {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	s.items = out
	s.persist()
}

// Toggle ajoute le produit s'il est absent, le retire sinon.
// Deux appels successifs restaurent l'appartenance initiale.
func (s *WishlistStore) Toggle(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.containsLocked(product.ID) {
		out := s.items[:0]
		for _, item := range s.items {
			if item.Product.ID != product.ID {
				out = append(out, item)
			}
		}
		s.items = out
	} else {
		s.items = append(s.items, models.WishlistItem{Product: product, AddedAt: s.now()})
	}
	s.persist()
}

// Clear vide la wishlist
func (s *WishlistStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.persist()
}

// Contains indique si le produit est sauvegardé
func (s *WishlistStore) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.containsLocked(productID)
}

func (s *WishlistStore) containsLocked(productID string) bool {
	for _, item := range s.items {
		if item.Product.ID == productID {
			return true
		}
	}
	return false
}

// Count retourne le nombre de produits sauvegardés
func (s *WishlistStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Items retourne une copie des entrées de la wishlist
func (s *WishlistStore) Items() []models.WishlistItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.WishlistItem, len(s.items))
	copy(out, s.items)
	return out
}
