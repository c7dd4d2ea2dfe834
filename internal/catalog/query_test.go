package catalog_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lumiere_back_end/internal/catalog"
	"lumiere_back_end/internal/mockdata"
	"lumiere_back_end/internal/models"
)

// openRange ne filtre rien : la fourchette de prix s'applique toujours
var openRange = [2]float64{0, 10000}

func fixtureProducts() []models.Product {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return []models.Product{
		{
			ID: "p1", Name: "Sérum Éclat", Description: "vitamine C",
			Price: 300, Rating: 4.8, Brand: "Argania",
			Category:  models.Category{Name: "Sérums", Slug: "serums"},
			SkinTypes: []models.SkinType{models.SkinDry, models.SkinNormal},
			Concerns:  []models.SkinConcern{models.ConcernBrightening},
			CreatedAt: base.AddDate(0, 0, 2),
		},
		{
			ID: "p2", Name: "Crème Hydratante", Description: "acide hyaluronique",
			Price: 150, Rating: 4.2, Brand: "Lumière Botanical",
			Category:     models.Category{Name: "Hydratants", Slug: "moisturizers"},
			SkinTypes:    []models.SkinType{models.SkinDry},
			Concerns:     []models.SkinConcern{models.ConcernHydration},
			IsBestseller: true,
			CreatedAt:    base.AddDate(0, 0, 1),
		},
		{
			ID: "p3", Name: "Gel Nettoyant", Description: "purifiant",
			Price: 150, Rating: 3.9, Brand: "Argania",
			Category:  models.Category{Name: "Nettoyants", Slug: "cleansers"},
			SkinTypes: []models.SkinType{models.SkinOily},
			Concerns:  []models.SkinConcern{models.ConcernAcne, models.ConcernPores},
			CreatedAt: base,
		},
	}
}

func TestQueryNilFiltersReturnsEverything(t *testing.T) {
	products := fixtureProducts()
	result := catalog.Query(products, nil, 1, 12)

	require.Equal(t, 3, result.Total)
	assert.Equal(t, 1, result.TotalPages)
	// Sans filtre ni tri, l'ordre d'entrée est conservé
	assert.Equal(t, "p1", result.Data[0].ID)
	assert.Equal(t, "p3", result.Data[2].ID)
}

func TestQueryDoesNotMutateInput(t *testing.T) {
	products := fixtureProducts()
	catalog.Query(products, &models.ProductFilters{
		PriceRange: openRange,
		SortBy:     models.SortPriceAsc,
	}, 1, 12)

	assert.Equal(t, "p1", products[0].ID)
	assert.Equal(t, "p2", products[1].ID)
	assert.Equal(t, "p3", products[2].ID)
}

func TestQueryFiltersAreConjunctive(t *testing.T) {
	// marque OU marque, ET type de peau
	result := catalog.Query(fixtureProducts(), &models.ProductFilters{
		Brands:     []string{"Argania", "Lumière Botanical"},
		SkinTypes:  []models.SkinType{models.SkinDry},
		PriceRange: openRange,
	}, 1, 12)

	require.Equal(t, 2, result.Total)
	assert.Equal(t, "p1", result.Data[0].ID)
	assert.Equal(t, "p2", result.Data[1].ID)
}

func TestQueryCategoryFilterMatchesSlug(t *testing.T) {
	result := catalog.Query(fixtureProducts(), &models.ProductFilters{
		Categories: []string{"cleansers"},
		PriceRange: openRange,
	}, 1, 12)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "p3", result.Data[0].ID)
}

func TestQueryPriceRangeIsInclusive(t *testing.T) {
	result := catalog.Query(fixtureProducts(), &models.ProductFilters{
		PriceRange: [2]float64{150, 300},
	}, 1, 12)
	assert.Equal(t, 3, result.Total)

	result = catalog.Query(fixtureProducts(), &models.ProductFilters{
		PriceRange: [2]float64{150, 299},
	}, 1, 12)
	assert.Equal(t, 2, result.Total)
}

func TestQueryRatingFloor(t *testing.T) {
	result := catalog.Query(fixtureProducts(), &models.ProductFilters{
		Rating:     4.0,
		PriceRange: openRange,
	}, 1, 12)

	require.Equal(t, 2, result.Total)
	for _, p := range result.Data {
		assert.GreaterOrEqual(t, p.Rating, 4.0)
	}
}

func TestQuerySearchMatchesNameDescriptionAndCategory(t *testing.T) {
	products := fixtureProducts()

	// Nom, insensible à la casse
	result := catalog.Query(products, &models.ProductFilters{
		Search: "sérum éclat", PriceRange: openRange,
	}, 1, 12)
	require.Equal(t, 1, result.Total)
	assert.Equal(t, "p1", result.Data[0].ID)

	// Description
	result = catalog.Query(products, &models.ProductFilters{
		Search: "hyaluronique", PriceRange: openRange,
	}, 1, 12)
	assert.Equal(t, 1, result.Total)

	// Nom de catégorie
	result = catalog.Query(products, &models.ProductFilters{
		Search: "nettoyants", PriceRange: openRange,
	}, 1, 12)
	assert.Equal(t, 1, result.Total)
}

func TestQuerySortStability(t *testing.T) {
	// p2 et p3 ont le même prix : l'ordre d'entrée est conservé
	result := catalog.Query(fixtureProducts(), &models.ProductFilters{
		SortBy:     models.SortPriceAsc,
		PriceRange: openRange,
	}, 1, 12)

	require.Equal(t, 3, result.Total)
	assert.Equal(t, "p2", result.Data[0].ID)
	assert.Equal(t, "p3", result.Data[1].ID)
	assert.Equal(t, "p1", result.Data[2].ID)
}

func TestQuerySortNewestAndBestseller(t *testing.T) {
	result := catalog.Query(fixtureProducts(), &models.ProductFilters{
		SortBy:     models.SortNewest,
		PriceRange: openRange,
	}, 1, 12)
	assert.Equal(t, "p1", result.Data[0].ID)

	result = catalog.Query(fixtureProducts(), &models.ProductFilters{
		SortBy:     models.SortBestseller,
		PriceRange: openRange,
	}, 1, 12)
	assert.Equal(t, "p2", result.Data[0].ID)
}

func TestQueryPaginationOverSeedCatalog(t *testing.T) {
	data := mockdata.NewDataset()
	require.Len(t, data.Products, 24)

	page1 := catalog.Query(data.Products, &models.ProductFilters{
		SortBy:     models.SortPriceAsc,
		PriceRange: openRange,
	}, 1, 12)

	require.Equal(t, 24, page1.Total)
	assert.Equal(t, 2, page1.TotalPages)
	require.Len(t, page1.Data, 12)
	for i := 1; i < len(page1.Data); i++ {
		assert.LessOrEqual(t, page1.Data[i-1].Price, page1.Data[i].Price)
	}

	page2 := catalog.Query(data.Products, &models.ProductFilters{
		SortBy:     models.SortPriceAsc,
		PriceRange: openRange,
	}, 2, 12)
	require.Len(t, page2.Data, 12)
	// Le total est calculé avant pagination et ne bouge pas entre pages
	assert.Equal(t, page1.Total, page2.Total)
	assert.LessOrEqual(t, page1.Data[11].Price, page2.Data[0].Price)
}

func TestQueryPageBeyondEndIsEmpty(t *testing.T) {
	result := catalog.Query(fixtureProducts(), &models.ProductFilters{
		PriceRange: openRange,
	}, 5, 12)

	assert.Empty(t, result.Data)
	assert.Equal(t, 3, result.Total)
	assert.Equal(t, 5, result.Page)
}
