package stores

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"lumiere_back_end/internal/cache"
	"lumiere_back_end/internal/models"
)

// Identifiants de démo : un seul compte admin codé en dur, comme la
// maquette. Pas d'annuaire, pas d'expiration, pas de verrouillage.
const (
	AdminEmail    = "admin@lumiere-botanical.com"
	adminPassword = "admin123"
)

// AuthStore possède l'unique emplacement de session authentifiée
type AuthStore struct {
	mu    sync.Mutex
	user  *models.User
	kv    cache.Store
	hash  []byte
	delay time.Duration
}

// NewAuthStore crée le conteneur de session. Le mot de passe admin
// peut être remplacé via ADMIN_PASSWORD ; il est toujours stocké haché.
func NewAuthStore(kv cache.Store) *AuthStore {
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = adminPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("❌ Impossible de hacher le mot de passe admin:", err)
	}

	s := &AuthStore{kv: kv, hash: hash, delay: time.Second}
	s.rehydrate()
	return s
}

// SetDelay règle la latence simulée de la vérification (0 en test)
func (s *AuthStore) SetDelay(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delay = d
}

func (s *AuthStore) rehydrate() {
	data, ok, err := s.kv.Get(context.Background(), cache.KeyAuth)
	if err != nil || !ok {
		return
	}
	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		log.Printf("❌ Erreur décodage session persistée: %v", err)
		return
	}
	s.user = &user
	log.Printf("🔐 Session rechargée pour %s", user.Email)
}

func (s *AuthStore) persist() {
	if s.user == nil {
		if err := s.kv.Del(context.Background(), cache.KeyAuth); err != nil {
			log.Printf("❌ Erreur suppression session: %v", err)
		}
		return
	}
	data, err := json.Marshal(s.user)
	if err != nil {
		log.Printf("❌ Erreur sérialisation session: %v", err)
		return
	}
	if err := s.kv.Set(context.Background(), cache.KeyAuth, string(data)); err != nil {
		log.Printf("❌ Erreur persistance session: %v", err)
	}
}

// Login vérifie les identifiants après une latence simulée. Seul le
// couple admin codé en dur réussit ; tout autre couple retourne false
// et laisse la session vide.
func (s *AuthStore) Login(ctx context.Context, email, password string) bool {
	s.mu.Lock()
	delay := s.delay
	s.mu.Unlock()

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return false
	}

	if email != AdminEmail {
		return false
	}
	if err := bcrypt.CompareHashAndPassword(s.hash, []byte(password)); err != nil {
		return false
	}

	now := time.Now()
	admin := models.User{
		ID:        "admin-001",
		Email:     AdminEmail,
		FirstName: "Admin",
		LastName:  "Lumière",
		Avatar:    "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=100&h=100&fit=crop&crop=face",
		Addresses: []models.Address{},
		Wishlist:  []string{},
		Orders:    []string{},
		Role:      "admin",
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &admin
	s.persist()
	log.Printf("✅ Connexion admin: %s", email)
	return true
}

// Logout vide la session inconditionnellement
func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.persist()
	log.Println("👋 Session fermée")
}

// CurrentUser retourne l'utilisateur connecté, nil sinon
func (s *AuthStore) CurrentUser() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated indique si une session est ouverte
func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}
