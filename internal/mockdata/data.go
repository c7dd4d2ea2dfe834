// Package mockdata fournit le jeu de données en mémoire de la
// boutique : produits, catégories, commandes et clients. Il n'y a pas
// de vraie base de données derrière — ce paquet est la source de
// vérité, mutée uniquement par la couche services.
package mockdata

import (
	"fmt"
	"time"

	"lumiere_back_end/internal/models"
)

// Dataset regroupe toutes les collections servies par l'API
type Dataset struct {
	Products   []models.Product
	Categories []models.Category
	Orders     []models.Order
	Users      []models.User
}

var seedBase = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

// NewDataset construit le jeu de démo complet : 24 produits répartis
// sur 4 catégories, quelques commandes et clients.
func NewDataset() *Dataset {
	categories := seedCategories()
	products := seedProducts(categories)

	// productCount reflète le contenu réel du catalogue
	for i := range categories {
		count := 0
		for _, p := range products {
			if p.Category.ID == categories[i].ID {
				count++
			}
		}
		categories[i].ProductCount = count
	}

	users := seedUsers()
	orders := seedOrders(products, users)

	return &Dataset{
		Products:   products,
		Categories: categories,
		Orders:     orders,
		Users:      users,
	}
}

func seedCategories() []models.Category {
	return []models.Category{
		{
			ID: "cat-001", Name: "Nettoyants", Slug: "cleansers",
			Description: "Gels, huiles et mousses pour purifier la peau en douceur",
			Image:       "https://images.lumiere-botanical.com/categories/cleansers.jpg",
			Icon:        "droplets",
			Subcategories: []models.Subcategory{
				{ID: "sub-001", Name: "Gels nettoyants", Slug: "gel-cleansers"},
				{ID: "sub-002", Name: "Huiles démaquillantes", Slug: "cleansing-oils"},
			},
		},
		{
			ID: "cat-002", Name: "Sérums", Slug: "serums",
			Description: "Concentrés actifs ciblant chaque préoccupation",
			Image:       "https://images.lumiere-botanical.com/categories/serums.jpg",
			Icon:        "flask-conical",
			Subcategories: []models.Subcategory{
				{ID: "sub-003", Name: "Vitamine C", Slug: "vitamin-c"},
				{ID: "sub-004", Name: "Acide hyaluronique", Slug: "hyaluronic"},
			},
		},
		{
			ID: "cat-003", Name: "Hydratants", Slug: "moisturizers",
			Description: "Crèmes et fluides pour nourrir et protéger",
			Image:       "https://images.lumiere-botanical.com/categories/moisturizers.jpg",
			Icon:        "sun",
			Subcategories: []models.Subcategory{
				{ID: "sub-005", Name: "Crèmes de jour", Slug: "day-creams"},
				{ID: "sub-006", Name: "Soins de nuit", Slug: "night-care"},
			},
		},
		{
			ID: "cat-004", Name: "Masques", Slug: "masks",
			Description: "Soins intensifs à l'argile et aux plantes de l'Atlas",
			Image:       "https://images.lumiere-botanical.com/categories/masks.jpg",
			Icon:        "leaf",
			Subcategories: []models.Subcategory{
				{ID: "sub-007", Name: "Masques purifiants", Slug: "purifying-masks"},
				{ID: "sub-008", Name: "Masques hydratants", Slug: "hydrating-masks"},
			},
		},
	}
}

// seedProduct condense la création d'un produit de démo ; les champs
// répétitifs (images, SKU, horodatages) sont dérivés de l'index
type seedProduct struct {
	name, slug, brand string
	category          int // index dans categories
	price             float64
	originalPrice     float64 // 0 = pas de promo
	stock             int
	rating            float64
	reviewCount       int
	skinTypes         []models.SkinType
	concerns          []models.SkinConcern
	isNew             bool
	isBestseller      bool
	weight            string
	short             string
}

func seedProducts(categories []models.Category) []models.Product {
	seeds := []seedProduct{
		{"Gel Nettoyant à la Rose", "gel-nettoyant-rose", "Lumière Botanical", 0, 89, 0, 45, 4.3, 27,
			[]models.SkinType{models.SkinNormal, models.SkinCombination}, []models.SkinConcern{models.ConcernHydration}, false, true, "150ml",
			"Gel moussant doux à l'eau de rose de Kelâa M'Gouna"},
		{"Huile Démaquillante à l'Argan", "huile-demaquillante-argan", "Argania", 0, 145, 0, 30, 4.6, 41,
			[]models.SkinType{models.SkinDry, models.SkinSensitive}, []models.SkinConcern{models.ConcernHydration, models.ConcernSensitivity}, false, true, "100ml",
			"Huile d'argan bio pressée à froid, fond le maquillage sans frotter"},
		{"Mousse Purifiante au Rhassoul", "mousse-purifiante-rhassoul", "Atlas Essentials", 0, 99, 129, 60, 4.1, 18,
			[]models.SkinType{models.SkinOily, models.SkinCombination}, []models.SkinConcern{models.ConcernAcne, models.ConcernPores}, false, false, "120ml",
			"Argile rhassoul de l'Atlas pour resserrer les pores"},
		{"Eau Micellaire Fleur d'Oranger", "eau-micellaire-oranger", "Lumière Botanical", 0, 75, 0, 80, 3.9, 12,
			[]models.SkinType{models.SkinAll}, []models.SkinConcern{models.ConcernSensitivity}, true, false, "250ml",
			"Nettoie et apaise en un seul geste"},
		{"Nettoyant Exfoliant aux Grains de Figue", "nettoyant-exfoliant-figue", "Rose du Désert", 0, 110, 0, 25, 4.0, 9,
			[]models.SkinType{models.SkinNormal, models.SkinOily}, []models.SkinConcern{models.ConcernPores, models.ConcernBrightening}, true, false, "100ml",
			"Micro-grains naturels pour un teint affiné"},
		{"Baume Nettoyant au Karité", "baume-nettoyant-karite", "Argania", 0, 135, 160, 20, 4.4, 22,
			[]models.SkinType{models.SkinDry}, []models.SkinConcern{models.ConcernHydration}, false, false, "90g",
			"Texture baume fondante pour peaux très sèches"},

		{"Sérum Éclat Vitamine C", "serum-eclat-vitamine-c", "Lumière Botanical", 1, 320, 0, 35, 4.8, 86,
			[]models.SkinType{models.SkinAll}, []models.SkinConcern{models.ConcernBrightening, models.ConcernDarkSpots}, false, true, "30ml",
			"15% de vitamine C stabilisée pour un éclat immédiat"},
		{"Sérum Hydratation Intense", "serum-hydratation-intense", "Lumière Botanical", 1, 280, 0, 42, 4.7, 64,
			[]models.SkinType{models.SkinDry, models.SkinNormal, models.SkinSensitive}, []models.SkinConcern{models.ConcernHydration}, false, true, "30ml",
			"Acide hyaluronique à trois poids moléculaires"},
		{"Sérum Anti-Âge au Cactus", "serum-anti-age-cactus", "Rose du Désert", 1, 420, 0, 15, 4.9, 53,
			[]models.SkinType{models.SkinNormal, models.SkinDry}, []models.SkinConcern{models.ConcernAntiAging, models.ConcernFirmness}, false, true, "30ml",
			"Huile de pépins de figue de barbarie, l'or vert du Maroc"},
		{"Sérum Niacinamide 10%", "serum-niacinamide-10", "Atlas Essentials", 1, 195, 240, 55, 4.2, 38,
			[]models.SkinType{models.SkinOily, models.SkinCombination}, []models.SkinConcern{models.ConcernPores, models.ConcernAcne}, false, false, "30ml",
			"Régule le sébum et atténue les imperfections"},
		{"Sérum Apaisant Camomille", "serum-apaisant-camomille", "Lumière Botanical", 1, 230, 0, 28, 4.5, 19,
			[]models.SkinType{models.SkinSensitive}, []models.SkinConcern{models.ConcernSensitivity}, true, false, "30ml",
			"Calme les rougeurs dès la première application"},
		{"Elixir Nuit Régénérant", "elixir-nuit-regenerant", "Rose du Désert", 1, 510, 0, 12, 4.6, 31,
			[]models.SkinType{models.SkinNormal, models.SkinDry}, []models.SkinConcern{models.ConcernAntiAging}, true, false, "30ml",
			"Synergie d'huiles précieuses pour la nuit"},

		{"Crème de Jour Protectrice SPF30", "creme-jour-spf30", "Lumière Botanical", 2, 240, 0, 50, 4.4, 47,
			[]models.SkinType{models.SkinAll}, []models.SkinConcern{models.ConcernHydration, models.ConcernDarkSpots}, false, true, "50ml",
			"Hydratation et protection solaire quotidienne"},
		{"Crème Riche Nuit à l'Argan", "creme-riche-nuit-argan", "Argania", 2, 310, 0, 33, 4.7, 58,
			[]models.SkinType{models.SkinDry, models.SkinNormal}, []models.SkinConcern{models.ConcernAntiAging, models.ConcernHydration}, false, true, "50ml",
			"Nourrit en profondeur pendant le sommeil"},
		{"Fluide Matifiant au Thé Vert", "fluide-matifiant-the-vert", "Atlas Essentials", 2, 185, 0, 70, 4.0, 24,
			[]models.SkinType{models.SkinOily, models.SkinCombination}, []models.SkinConcern{models.ConcernPores, models.ConcernAcne}, false, false, "50ml",
			"Texture légère, fini mat toute la journée"},
		{"Baume Réparateur Extrême", "baume-reparateur-extreme", "Argania", 2, 165, 190, 40, 4.3, 15,
			[]models.SkinType{models.SkinDry, models.SkinSensitive}, []models.SkinConcern{models.ConcernSensitivity, models.ConcernHydration}, false, false, "75ml",
			"SOS peaux abîmées, au beurre de karité brut"},
		{"Gelée Hydratante à l'Aloès", "gelee-hydratante-aloes", "Lumière Botanical", 2, 125, 0, 65, 3.8, 11,
			[]models.SkinType{models.SkinAll}, []models.SkinConcern{models.ConcernHydration}, true, false, "50ml",
			"Fraîcheur immédiate, pénétration express"},
		{"Crème Fermeté au Collagène Végétal", "creme-fermete-collagene", "Rose du Désert", 2, 385, 450, 18, 4.5, 29,
			[]models.SkinType{models.SkinNormal, models.SkinDry}, []models.SkinConcern{models.ConcernFirmness, models.ConcernAntiAging}, true, false, "50ml",
			"Redensifie et lisse les traits"},

		{"Masque Purifiant au Ghassoul", "masque-purifiant-ghassoul", "Atlas Essentials", 3, 95, 0, 90, 4.2, 33,
			[]models.SkinType{models.SkinOily, models.SkinCombination}, []models.SkinConcern{models.ConcernAcne, models.ConcernPores}, false, true, "100g",
			"L'argile marocaine authentique, rituel hammam"},
		{"Masque Éclat au Curcuma", "masque-eclat-curcuma", "Lumière Botanical", 3, 115, 0, 48, 4.1, 16,
			[]models.SkinType{models.SkinNormal, models.SkinCombination}, []models.SkinConcern{models.ConcernBrightening, models.ConcernDarkSpots}, false, false, "75ml",
			"Illumine les teints ternes en 10 minutes"},
		{"Masque Tissu Hydratation Profonde", "masque-tissu-hydratation", "Lumière Botanical", 3, 45, 0, 120, 3.7, 8,
			[]models.SkinType{models.SkinAll}, []models.SkinConcern{models.ConcernHydration}, true, false, "25ml",
			"Masque unidose imbibé de sérum hyaluronique"},
		{"Masque Nuit Repulpant", "masque-nuit-repulpant", "Rose du Désert", 3, 210, 260, 22, 4.4, 21,
			[]models.SkinType{models.SkinDry, models.SkinNormal}, []models.SkinConcern{models.ConcernHydration, models.ConcernFirmness}, false, false, "50ml",
			"S'applique le soir, agit jusqu'au matin"},
		{"Gommage Doux aux Noyaux d'Abricot", "gommage-doux-abricot", "Argania", 3, 85, 0, 58, 4.0, 14,
			[]models.SkinType{models.SkinNormal, models.SkinOily}, []models.SkinConcern{models.ConcernPores}, true, false, "75ml",
			"Grain fin pour un gommage hebdomadaire"},
		{"Masque Apaisant Fleur de Safran", "masque-apaisant-safran", "Rose du Désert", 3, 850, 0, 6, 4.9, 44,
			[]models.SkinType{models.SkinSensitive, models.SkinDry}, []models.SkinConcern{models.ConcernSensitivity, models.ConcernAntiAging}, true, false, "50ml",
			"Édition limitée au safran de Taliouine"},
	}

	products := make([]models.Product, 0, len(seeds))
	for i, s := range seeds {
		id := fmt.Sprintf("prod-%03d", i+1)
		created := seedBase.AddDate(0, 0, i*5)

		p := models.Product{
			ID:               id,
			Name:             s.name,
			Slug:             s.slug,
			Description:      s.short + ". Formulé au Maroc à partir d'actifs botaniques traçables, sans parfum de synthèse ni silicone.",
			ShortDescription: s.short,
			Price:            s.price,
			Images: []models.ProductImage{
				{ID: id + "-img-1", URL: fmt.Sprintf("https://images.lumiere-botanical.com/products/%s-1.jpg", s.slug), Alt: s.name, IsMain: true, Type: "packshot"},
				{ID: id + "-img-2", URL: fmt.Sprintf("https://images.lumiere-botanical.com/products/%s-2.jpg", s.slug), Alt: s.name + " — texture", IsMain: false, Type: "texture"},
			},
			Category:    categories[s.category],
			Brand:       s.brand,
			SKU:         fmt.Sprintf("LB-%s-%03d", categories[s.category].Slug[:3], i+1),
			Stock:       s.stock,
			Rating:      s.rating,
			ReviewCount: s.reviewCount,
			Reviews:     seedReviews(id, s.rating),
			Ingredients: []string{"Aqua", "Glycerin", "Argania Spinosa Kernel Oil"},
			Benefits:    []string{"Peau apaisée", "Éclat visible", "Texture non grasse"},
			HowToUse:    "Appliquer matin et/ou soir sur peau propre.",
			SkinTypes:   s.skinTypes,
			Concerns:    s.concerns,
			IsNew:       s.isNew,
			IsBestseller: s.isBestseller,
			Weight:      s.weight,
			CreatedAt:   created,
			UpdatedAt:   created,
		}

		if s.originalPrice > 0 {
			op := s.originalPrice
			p.OriginalPrice = &op
			p.IsOnSale = true
			p.Discount = int((1 - s.price/s.originalPrice) * 100)
		}

		products = append(products, p)
	}
	return products
}

func seedReviews(productID string, rating float64) []models.Review {
	return []models.Review{
		{
			ID:        productID + "-rev-1",
			ProductID: productID,
			UserID:    "user-002",
			UserName:  "Salma B.",
			Rating:    rating,
			Title:     "Très satisfaite",
			Comment:   "Texture agréable et résultats visibles en quelques jours.",
			Helpful:   7,
			Verified:  true,
			CreatedAt: seedBase.AddDate(0, 1, 0),
		},
	}
}

func seedUsers() []models.User {
	names := []struct{ first, last, email string }{
		{"Salma", "Benali", "salma.benali@example.com"},
		{"Youssef", "El Amrani", "youssef.elamrani@example.com"},
		{"Nadia", "Cherkaoui", "nadia.cherkaoui@example.com"},
		{"Karim", "Tazi", "karim.tazi@example.com"},
		{"Leila", "Fassi", "leila.fassi@example.com"},
	}

	users := make([]models.User, 0, len(names))
	for i, n := range names {
		created := seedBase.AddDate(0, 0, i*10)
		users = append(users, models.User{
			ID:        fmt.Sprintf("user-%03d", i+2), // user-001 est réservé historique
			Email:     n.email,
			FirstName: n.first,
			LastName:  n.last,
			Addresses: []models.Address{},
			Wishlist:  []string{},
			Orders:    []string{},
			Role:      "user",
			CreatedAt: created,
			UpdatedAt: created,
		})
	}
	return users
}

func seedOrders(products []models.Product, users []models.User) []models.Order {
	statuses := []models.OrderStatus{
		models.OrderDelivered,
		models.OrderShipped,
		models.OrderProcessing,
		models.OrderPending,
		models.OrderPending,
	}

	orders := make([]models.Order, 0, len(statuses))
	for i, status := range statuses {
		p := products[(i*4)%len(products)]
		qty := 1 + i%3
		subtotal := p.Price * float64(qty)
		shipping := 29.0
		if subtotal >= 500 {
			shipping = 0
		}
		tax := subtotal * 0.20
		created := seedBase.AddDate(0, 2, i*7)
		user := users[i%len(users)]

		order := models.Order{
			ID:          fmt.Sprintf("ord-%03d", i+1),
			OrderNumber: fmt.Sprintf("LB-2025-%04d", i+1),
			UserID:      user.ID,
			Items: []models.OrderItem{
				{Product: p, Quantity: qty, Price: p.Price, Total: p.Price * float64(qty)},
			},
			ShippingAddress: models.Address{
				FirstName: user.FirstName, LastName: user.LastName, Email: user.Email,
				Phone: "+212600000000", Address1: "12 rue des Orangers", City: "Casablanca",
				PostalCode: "20000", Country: "Maroc",
			},
			BillingAddress: models.Address{
				FirstName: user.FirstName, LastName: user.LastName, Email: user.Email,
				Phone: "+212600000000", Address1: "12 rue des Orangers", City: "Casablanca",
				PostalCode: "20000", Country: "Maroc",
			},
			PaymentMethod: models.PaymentMethod{Type: "card"},
			Subtotal:      subtotal,
			Shipping:      shipping,
			Tax:           tax,
			Total:         subtotal + shipping + tax,
			Status:        status,
			CreatedAt:     created,
			UpdatedAt:     created,
		}
		if status == models.OrderShipped || status == models.OrderDelivered {
			order.TrackingNumber = fmt.Sprintf("MA%08d", 31400000+i)
		}
		orders = append(orders, order)
	}

	// Les commandes les plus récentes d'abord, comme l'API les sert
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders
}
