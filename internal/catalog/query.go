// Package catalog implémente le moteur de requête du catalogue :
// filtrage conjonctif, tri stable puis pagination, sans jamais
// modifier la liste source.
package catalog

import (
	"sort"
	"strings"

	"lumiere_back_end/internal/models"
)

const DefaultPageSize = 12

// Query applique les filtres dans un ordre fixe (catégories, types de
// peau, préoccupations, marques, fourchette de prix, note minimale,
// recherche), trie puis pagine. Un filtre nil désactive tout filtrage.
func Query(products []models.Product, filters *models.ProductFilters, page, limit int) models.PaginatedResponse[models.Product] {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	filtered := make([]models.Product, len(products))
	copy(filtered, products)

	if filters != nil {
		filtered = applyFilters(filtered, filters)
		sortProducts(filtered, filters.SortBy)
	}

	total := len(filtered)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return models.PaginatedResponse[models.Product]{
		Data:       filtered[start:end],
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}
}

func applyFilters(products []models.Product, f *models.ProductFilters) []models.Product {
	out := products

	if len(f.Categories) > 0 {
		out = keep(out, func(p models.Product) bool {
			return containsString(f.Categories, p.Category.Slug)
		})
	}

	if len(f.SkinTypes) > 0 {
		out = keep(out, func(p models.Product) bool {
			for _, st := range p.SkinTypes {
				for _, want := range f.SkinTypes {
					if st == want {
						return true
					}
				}
			}
			return false
		})
	}

	if len(f.Concerns) > 0 {
		out = keep(out, func(p models.Product) bool {
			for _, c := range p.Concerns {
				for _, want := range f.Concerns {
					if c == want {
						return true
					}
				}
			}
			return false
		})
	}

	if len(f.Brands) > 0 {
		out = keep(out, func(p models.Product) bool {
			return containsString(f.Brands, p.Brand)
		})
	}

	// La fourchette de prix s'applique toujours, bornes incluses
	out = keep(out, func(p models.Product) bool {
		return p.Price >= f.PriceRange[0] && p.Price <= f.PriceRange[1]
	})

	if f.Rating > 0 {
		out = keep(out, func(p models.Product) bool {
			return p.Rating >= f.Rating
		})
	}

	if f.Search != "" {
		query := strings.ToLower(f.Search)
		out = keep(out, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), query) ||
				strings.Contains(strings.ToLower(p.Description), query) ||
				strings.Contains(strings.ToLower(p.Category.Name), query)
		})
	}

	return out
}

// sortProducts trie en place. Tri stable : à critère égal, l'ordre
// relatif d'entrée est conservé.
func sortProducts(products []models.Product, sortBy models.SortBy) {
	switch sortBy {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	case models.SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	case models.SortBestseller:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsBestseller && !products[j].IsBestseller
		})
	}
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
