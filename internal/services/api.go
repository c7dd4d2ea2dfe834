// Package services expose le jeu de données en mémoire derrière une
// surface requête/réponse asynchrone, avec une latence artificielle
// qui imite un vrai backend. Tout appel finit par aboutir : les
// "erreurs" métier sont des nil/false, jamais des pannes réseau.
package services

import (
	"context"
	"sync"
	"time"

	"lumiere_back_end/internal/mockdata"
)

// Unité de latence : les opérations dorment un multiple de cette
// valeur (3 à 8 selon l'opération, comme la maquette en centaines de ms)
const defaultLatencyUnit = 100 * time.Millisecond

type API struct {
	mu      sync.Mutex
	data    *mockdata.Dataset
	latency time.Duration
	now     func() time.Time
}

type Option func(*API)

// WithLatencyUnit change l'unité de latence simulée (0 pour les tests)
func WithLatencyUnit(d time.Duration) Option {
	return func(a *API) { a.latency = d }
}

// WithClock remplace l'horloge (tests)
func WithClock(now func() time.Time) Option {
	return func(a *API) { a.now = now }
}

func New(data *mockdata.Dataset, opts ...Option) *API {
	a := &API{
		data:    data,
		latency: defaultLatencyUnit,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// sleep simule la latence réseau. L'appelant attend toujours la fin :
// pas de timeout ni d'annulation partielle, seul un contexte annulé
// interrompt l'attente.
func (a *API) sleep(ctx context.Context, units int) {
	if a.latency <= 0 {
		return
	}
	select {
	case <-time.After(time.Duration(units) * a.latency):
	case <-ctx.Done():
	}
}
