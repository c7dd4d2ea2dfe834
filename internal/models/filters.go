package models

type SortBy string

const (
	SortNewest     SortBy = "newest"
	SortPriceAsc   SortBy = "price-asc"
	SortPriceDesc  SortBy = "price-desc"
	SortRating     SortBy = "rating"
	SortBestseller SortBy = "bestseller"
)

// ProductFilters combine les critères du catalogue.
// ET entre les champs, OU à l'intérieur d'un même champ.
type ProductFilters struct {
	Categories []string      `json:"categories"`
	SkinTypes  []SkinType    `json:"skinTypes"`
	Concerns   []SkinConcern `json:"concerns"`
	PriceRange [2]float64    `json:"priceRange"` // bornes incluses
	Brands     []string      `json:"brands"`
	Rating     float64       `json:"rating"`
	SortBy     SortBy        `json:"sortBy"`
	Search     string        `json:"search"`
}

// PaginatedResponse est l'enveloppe commune des listes paginées
type PaginatedResponse[T any] struct {
	Data       []T `json:"data"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
