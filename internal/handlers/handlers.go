// Package handlers relie la surface HTTP Gin aux conteneurs d'état et
// à la couche services.
package handlers

import (
	"lumiere_back_end/internal/checkout"
	"lumiere_back_end/internal/services"
	"lumiere_back_end/internal/stores"
)

type Handlers struct {
	API       *services.API
	Cart      *stores.CartStore
	Wishlist  *stores.WishlistStore
	Auth      *stores.AuthStore
	Theme     *stores.ThemeStore
	QuickView *stores.QuickViewStore
	Flow      *checkout.Flow
}

func New(api *services.API, cart *stores.CartStore, wishlist *stores.WishlistStore,
	auth *stores.AuthStore, theme *stores.ThemeStore, quickView *stores.QuickViewStore,
	flow *checkout.Flow) *Handlers {
	return &Handlers{
		API:       api,
		Cart:      cart,
		Wishlist:  wishlist,
		Auth:      auth,
		Theme:     theme,
		QuickView: quickView,
		Flow:      flow,
	}
}
