package services

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"lumiere_back_end/internal/catalog"
	"lumiere_back_end/internal/models"
)

// ListProducts filtre, trie et pagine le catalogue
func (a *API) ListProducts(ctx context.Context, page, limit int, filters *models.ProductFilters) models.PaginatedResponse[models.Product] {
	a.sleep(ctx, 5)
	a.mu.Lock()
	defer a.mu.Unlock()
	return catalog.Query(a.data.Products, filters, page, limit)
}

// GetProductBySlug retourne nil si le slug est inconnu
func (a *API) GetProductBySlug(ctx context.Context, slug string) *models.Product {
	a.sleep(ctx, 3)
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.data.Products {
		if a.data.Products[i].Slug == slug {
			p := a.data.Products[i]
			return &p
		}
	}
	return nil
}

// GetProductByID retourne nil si l'identifiant est inconnu
func (a *API) GetProductByID(ctx context.Context, id string) *models.Product {
	a.sleep(ctx, 3)
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.findProductLocked(id)
}

func (a *API) findProductLocked(id string) *models.Product {
	for i := range a.data.Products {
		if a.data.Products[i].ID == id {
			p := a.data.Products[i]
			return &p
		}
	}
	return nil
}

// GetProductsByCategory pagine les produits d'une catégorie
func (a *API) GetProductsByCategory(ctx context.Context, categorySlug string, page, limit int) models.PaginatedResponse[models.Product] {
	a.sleep(ctx, 5)
	a.mu.Lock()
	defer a.mu.Unlock()

	var filtered []models.Product
	for _, p := range a.data.Products {
		if p.Category.Slug == categorySlug {
			filtered = append(filtered, p)
		}
	}
	return catalog.Query(filtered, nil, page, limit)
}

// GetRelatedProducts retourne d'autres produits de la même catégorie
func (a *API) GetRelatedProducts(ctx context.Context, productID string, limit int) []models.Product {
	a.sleep(ctx, 4)
	a.mu.Lock()
	defer a.mu.Unlock()

	ref := a.findProductLocked(productID)
	if ref == nil {
		return nil
	}

	var related []models.Product
	for _, p := range a.data.Products {
		if p.ID != productID && p.Category.Slug == ref.Category.Slug {
			related = append(related, p)
			if len(related) == limit {
				break
			}
		}
	}
	return related
}

// GetBestsellers retourne les meilleures ventes
func (a *API) GetBestsellers(ctx context.Context, limit int) []models.Product {
	a.sleep(ctx, 4)
	return a.collect(limit, func(p models.Product) bool { return p.IsBestseller })
}

// GetNewArrivals retourne les nouveautés
func (a *API) GetNewArrivals(ctx context.Context, limit int) []models.Product {
	a.sleep(ctx, 4)
	return a.collect(limit, func(p models.Product) bool { return p.IsNew })
}

// GetOnSale retourne les produits en promotion
func (a *API) GetOnSale(ctx context.Context, limit int) []models.Product {
	a.sleep(ctx, 4)
	return a.collect(limit, func(p models.Product) bool { return p.IsOnSale })
}

func (a *API) collect(limit int, pred func(models.Product) bool) []models.Product {
	a.mu.Lock()
	defer a.mu.Unlock()
	var out []models.Product
	for _, p := range a.data.Products {
		if pred(p) {
			out = append(out, p)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

// SearchProducts cherche le terme dans le nom, la description et le
// nom de catégorie (sous-chaîne, insensible à la casse)
func (a *API) SearchProducts(ctx context.Context, query string) []models.Product {
	a.sleep(ctx, 3)
	a.mu.Lock()
	defer a.mu.Unlock()

	q := strings.ToLower(query)
	var out []models.Product
	for _, p := range a.data.Products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) ||
			strings.Contains(strings.ToLower(p.Category.Name), q) {
			out = append(out, p)
		}
	}
	return out
}

// CreateProduct ajoute un produit au catalogue (admin)
func (a *API) CreateProduct(ctx context.Context, product models.Product) models.Product {
	a.sleep(ctx, 8)
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	product.ID = "prod-" + uuid.NewString()
	product.CreatedAt = now
	product.UpdatedAt = now
	a.data.Products = append(a.data.Products, product)

	log.Printf("✅ Produit créé: %s (%s)", product.Name, product.ID)
	return product
}

// ProductUpdate porte les champs modifiables d'un produit ; un pointeur
// nil laisse le champ tel quel
type ProductUpdate struct {
	Name             *string
	Description      *string
	ShortDescription *string
	Price            *float64
	OriginalPrice    *float64
	Stock            *int
	Brand            *string
	IsNew            *bool
	IsBestseller     *bool
	IsOnSale         *bool
	Discount         *int
}

// UpdateProduct applique une mise à jour partielle ; nil si introuvable
func (a *API) UpdateProduct(ctx context.Context, id string, update ProductUpdate) *models.Product {
	a.sleep(ctx, 8)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Products {
		if a.data.Products[i].ID != id {
			continue
		}
		p := &a.data.Products[i]
		if update.Name != nil {
			p.Name = *update.Name
		}
		if update.Description != nil {
			p.Description = *update.Description
		}
		if update.ShortDescription != nil {
			p.ShortDescription = *update.ShortDescription
		}
		if update.Price != nil {
			p.Price = *update.Price
		}
		if update.OriginalPrice != nil {
			p.OriginalPrice = update.OriginalPrice
		}
		if update.Stock != nil {
			p.Stock = *update.Stock
		}
		if update.Brand != nil {
			p.Brand = *update.Brand
		}
		if update.IsNew != nil {
			p.IsNew = *update.IsNew
		}
		if update.IsBestseller != nil {
			p.IsBestseller = *update.IsBestseller
		}
		if update.IsOnSale != nil {
			p.IsOnSale = *update.IsOnSale
		}
		if update.Discount != nil {
			p.Discount = *update.Discount
		}
		p.UpdatedAt = a.now()

		out := *p
		return &out
	}
	return nil
}

// DeleteProduct retire un produit du catalogue ; false si introuvable
func (a *API) DeleteProduct(ctx context.Context, id string) bool {
	a.sleep(ctx, 6)
	a.mu.Lock()
	defer a.mu.Unlock()

	for i := range a.data.Products {
		if a.data.Products[i].ID == id {
			a.data.Products = append(a.data.Products[:i], a.data.Products[i+1:]...)
			log.Printf("🗑️ Produit supprimé: %s", id)
			return true
		}
	}
	return false
}
