package stores

import (
	"context"
	"log"
	"sync"

	"lumiere_back_end/internal/cache"
	"lumiere_back_end/internal/models"
)

// ThemeStore possède la préférence d'affichage tri-état. La valeur
// "system" est résolue contre la préférence de la plateforme au moment
// de l'application, et ré-appliquée quand cette préférence change.
type ThemeStore struct {
	mu         sync.Mutex
	theme      models.Theme
	kv         cache.Store
	systemPref func() models.Theme
	subs       *broadcaster[models.Theme]
}

// NewThemeStore crée le conteneur. systemPref fournit la préférence
// courante de la plateforme (light ou dark) ; nil vaut light.
func NewThemeStore(kv cache.Store, systemPref func() models.Theme) *ThemeStore {
	if systemPref == nil {
		systemPref = func() models.Theme { return models.ThemeLight }
	}
	s := &ThemeStore{
		theme:      models.ThemeSystem,
		kv:         kv,
		systemPref: systemPref,
		subs:       newBroadcaster[models.Theme](),
	}
	s.rehydrate()
	return s
}

func (s *ThemeStore) rehydrate() {
	data, ok, err := s.kv.Get(context.Background(), cache.KeyTheme)
	if err != nil || !ok {
		return
	}
	switch models.Theme(data) {
	case models.ThemeLight, models.ThemeDark, models.ThemeSystem:
		s.theme = models.Theme(data)
	default:
		log.Printf("⚠️  Thème persisté inconnu: %q — on garde %s", data, s.theme)
	}
}

func (s *ThemeStore) persist() {
	if err := s.kv.Set(context.Background(), cache.KeyTheme, string(s.theme)); err != nil {
		log.Printf("❌ Erreur persistance thème: %v", err)
	}
}

// Theme retourne la préférence courante (light, dark ou system)
func (s *ThemeStore) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme fixe la préférence puis applique le thème résolu
func (s *ThemeStore) SetTheme(theme models.Theme) {
	s.mu.Lock()
	s.theme = theme
	s.persist()
	s.mu.Unlock()
	s.Apply()
}

// Toggle bascule uniquement entre light et dark : depuis system, le
// premier appel mène à dark et system n'est plus jamais une cible.
func (s *ThemeStore) Toggle() {
	s.mu.Lock()
	if s.theme == models.ThemeLight {
		s.theme = models.ThemeDark
	} else {
		s.theme = models.ThemeLight
	}
	s.persist()
	s.mu.Unlock()
	s.Apply()
}

// Apply résout la préférence (system → préférence plateforme du
// moment) et publie le thème effectif aux abonnés
func (s *ThemeStore) Apply() models.Theme {
	s.mu.Lock()
	theme := s.theme
	s.mu.Unlock()

	resolved := theme
	if theme == models.ThemeSystem {
		resolved = s.systemPref()
	}
	s.subs.publish(resolved)
	return resolved
}

// OnSystemChange est à appeler quand la préférence plateforme change
// pendant la vie du processus : le thème est ré-appliqué
func (s *ThemeStore) OnSystemChange() {
	s.Apply()
}

// Subscribe abonne un lecteur au thème effectif après chaque application
func (s *ThemeStore) Subscribe() (<-chan models.Theme, func()) {
	return s.subs.subscribe()
}
