package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_back_end/internal/cache"
	"lumiere_back_end/internal/checkout"
	"lumiere_back_end/internal/handlers"
	"lumiere_back_end/internal/mockdata"
	"lumiere_back_end/internal/models"
	"lumiere_back_end/internal/routes"
	"lumiere_back_end/internal/services"
	"lumiere_back_end/internal/stores"
)

func newTestRouter(t *testing.T) (*gin.Engine, *services.API) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kv := cache.NewMemoryStore()
	api := services.New(mockdata.NewDataset(), services.WithLatencyUnit(0))

	cart := stores.NewCartStore(kv)
	wishlist := stores.NewWishlistStore(kv)
	auth := stores.NewAuthStore(kv)
	auth.SetDelay(0)
	theme := stores.NewThemeStore(kv, nil)
	quickView := stores.NewQuickViewStore()
	flow := checkout.NewFlow(cart, api, checkout.WithPaymentDelay(0))

	r := gin.New()
	routes.RegisterRoutes(r, handlers.New(api, cart, wishlist, auth, theme, quickView, flow))
	return r, api
}

func do(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var payload map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &payload)
	}
	return w, payload
}

func firstProductID(t *testing.T, api *services.API) string {
	t.Helper()
	products := api.ListProducts(context.Background(), 1, 1, nil)
	require.NotEmpty(t, products.Data)
	return products.Data[0].ID
}

func TestListProductsEndpoint(t *testing.T) {
	r, _ := newTestRouter(t)

	w, payload := do(t, r, http.MethodGet, "/api/products?sortBy=price-asc&page=1&limit=12", "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.EqualValues(t, 24, payload["total"])
	assert.EqualValues(t, 2, payload["totalPages"])
	assert.Len(t, payload["data"], 12)
}

func TestProductLookupEndpoints(t *testing.T) {
	r, api := newTestRouter(t)
	id := firstProductID(t, api)

	w, _ := do(t, r, http.MethodGet, "/api/products/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/products/prod-inconnu", "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodGet, "/api/products/search", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCartEndpoints(t *testing.T) {
	r, api := newTestRouter(t)
	id := firstProductID(t, api)

	w, _ := do(t, r, http.MethodPost, "/api/cart", `{"productId":"`+id+`","quantity":2}`)
	require.Equal(t, http.StatusOK, w.Code)

	w, payload := do(t, r, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 2, payload["itemCount"])

	w, _ = do(t, r, http.MethodPost, "/api/cart", `{"productId":"prod-inconnu"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/cart", `{"productId":"`+id+`","quantity":-1}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = do(t, r, http.MethodDelete, "/api/cart/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	_, payload = do(t, r, http.MethodGet, "/api/cart", "")
	assert.EqualValues(t, 0, payload["itemCount"])
}

func TestWishlistEndpoints(t *testing.T) {
	r, api := newTestRouter(t)
	id := firstProductID(t, api)

	w, payload := do(t, r, http.MethodPost, "/api/wishlist/toggle", `{"productId":"`+id+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["inWishlist"])

	w, payload = do(t, r, http.MethodPost, "/api/wishlist/toggle", `{"productId":"`+id+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, payload["inWishlist"])
}

func TestCheckoutEndpoints(t *testing.T) {
	r, api := newTestRouter(t)
	id := firstProductID(t, api)

	// Panier vide : redirection vers le panier
	w, payload := do(t, r, http.MethodPost, "/api/checkout/begin", "")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/cart", payload["redirect"])

	do(t, r, http.MethodPost, "/api/cart", `{"productId":"`+id+`","quantity":1}`)

	w, payload = do(t, r, http.MethodPost, "/api/checkout/begin", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shipping", payload["step"])

	// Paiement avant livraison : refusé
	w, _ = do(t, r, http.MethodPost, "/api/checkout/payment", `{"type":"card"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	shipping := `{"firstName":"Yasmine","lastName":"El Amrani","email":"yasmine@exemple.com",` +
		`"phone":"+212612345678","address1":"12 rue des Orangers","city":"Casablanca","postalCode":"20000"}`
	w, payload = do(t, r, http.MethodPost, "/api/checkout/shipping", shipping)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "payment", payload["step"])

	w, payload = do(t, r, http.MethodPost, "/api/checkout/payment", `{"type":"card"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "confirmation", payload["step"])
	assert.Contains(t, payload["orderNumber"], "LB-")

	// Le panier a été vidé par la commande
	_, payload = do(t, r, http.MethodGet, "/api/cart", "")
	assert.EqualValues(t, 0, payload["itemCount"])
}

func TestAuthEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := do(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = do(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"admin@lumiere-botanical.com","password":"mauvais"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, payload := do(t, r, http.MethodPost, "/api/auth/login",
		`{"email":"admin@lumiere-botanical.com","password":"admin123"}`)
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := payload["token"].(string)
	require.NotEmpty(t, token)

	// Le token ouvre le back-office
	req := httptest.NewRequest(http.MethodGet, "/api/admin/dashboard", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	w, _ = do(t, r, http.MethodPost, "/api/auth/logout", "")
	assert.Equal(t, http.StatusOK, w.Code)
	w, _ = do(t, r, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w, _ := do(t, r, http.MethodGet, "/api/admin/orders", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestThemeEndpoints(t *testing.T) {
	r, _ := newTestRouter(t)

	w, payload := do(t, r, http.MethodGet, "/api/theme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(models.ThemeSystem), payload["theme"])

	// Depuis system, le premier bascule mène à dark
	w, payload = do(t, r, http.MethodPost, "/api/theme/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(models.ThemeDark), payload["theme"])

	w, _ = do(t, r, http.MethodPut, "/api/theme", `{"theme":"sepia"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, payload = do(t, r, http.MethodPut, "/api/theme", `{"theme":"light"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, string(models.ThemeLight), payload["theme"])
}

func TestQuickViewEndpoints(t *testing.T) {
	r, api := newTestRouter(t)
	id := firstProductID(t, api)

	w, payload := do(t, r, http.MethodGet, "/api/quickview", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, payload["isOpen"])

	w, payload = do(t, r, http.MethodPost, "/api/quickview/open", `{"productId":"`+id+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, payload["isOpen"])

	w, _ = do(t, r, http.MethodPost, "/api/quickview/open", `{"productId":"prod-inconnu"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, payload = do(t, r, http.MethodPost, "/api/quickview/close", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, payload["isOpen"])
}
