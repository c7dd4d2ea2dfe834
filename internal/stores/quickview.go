package stores

import (
	"sync"

	"lumiere_back_end/internal/models"
)

// QuickViewState est l'emplacement "produit en cours d'aperçu" partagé
// par toutes les surfaces de la boutique
type QuickViewState struct {
	Product *models.Product `json:"product"`
	IsOpen  bool            `json:"isOpen"`
}

// QuickViewStore remplace l'ancien état global de la modale d'aperçu
// par un objet partagé explicite, observable par canal
type QuickViewStore struct {
	mu      sync.Mutex
	product *models.Product
	open    bool
	subs    *broadcaster[QuickViewState]
}

func NewQuickViewStore() *QuickViewStore {
	return &QuickViewStore{subs: newBroadcaster[QuickViewState]()}
}

// Open place le produit dans l'emplacement d'aperçu et l'ouvre
func (s *QuickViewStore) Open(product models.Product) {
	s.mu.Lock()
	p := product
	s.product = &p
	s.open = true
	state := s.stateLocked()
	s.mu.Unlock()
	s.subs.publish(state)
}

// Close ferme l'aperçu ; le produit reste référencé jusqu'au prochain Open
func (s *QuickViewStore) Close() {
	s.mu.Lock()
	s.open = false
	state := s.stateLocked()
	s.mu.Unlock()
	s.subs.publish(state)
}

// State retourne l'état courant de l'aperçu
func (s *QuickViewStore) State() QuickViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *QuickViewStore) stateLocked() QuickViewState {
	var p *models.Product
	if s.product != nil {
		cp := *s.product
		p = &cp
	}
	return QuickViewState{Product: p, IsOpen: s.open}
}

// Subscribe abonne une surface aux changements d'aperçu
func (s *QuickViewStore) Subscribe() (<-chan QuickViewState, func()) {
	return s.subs.subscribe()
}
