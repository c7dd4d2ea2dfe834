package models

import "time"

// Types de peau reconnus par le catalogue
type SkinType string

const (
	SkinAll         SkinType = "all"
	SkinDry         SkinType = "dry"
	SkinOily        SkinType = "oily"
	SkinCombination SkinType = "combination"
	SkinSensitive   SkinType = "sensitive"
	SkinNormal      SkinType = "normal"
)

// Préoccupations ciblées par les produits
type SkinConcern string

const (
	ConcernHydration   SkinConcern = "hydration"
	ConcernAntiAging   SkinConcern = "anti-aging"
	ConcernBrightening SkinConcern = "brightening"
	ConcernAcne        SkinConcern = "acne"
	ConcernSensitivity SkinConcern = "sensitivity"
	ConcernPores       SkinConcern = "pores"
	ConcernDarkSpots   SkinConcern = "dark-spots"
	ConcernFirmness    SkinConcern = "firmness"
)

type ProductImage struct {
	ID     string `json:"id"`
	URL    string `json:"url"`
	Alt    string `json:"alt"`
	IsMain bool   `json:"isMain"`
	Type   string `json:"type"` // packshot, lifestyle ou texture
}

type Product struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	Price            float64        `json:"price"`
	OriginalPrice    *float64       `json:"originalPrice,omitempty"`
	Images           []ProductImage `json:"images"`
	Category         Category       `json:"category"`
	Subcategory      string         `json:"subcategory,omitempty"`
	Brand            string         `json:"brand"`
	SKU              string         `json:"sku"`
	Stock            int            `json:"stock"`
	Rating           float64        `json:"rating"`
	ReviewCount      int            `json:"reviewCount"`
	Reviews          []Review       `json:"reviews"`
	Ingredients      []string       `json:"ingredients"`
	Benefits         []string       `json:"benefits"`
	HowToUse         string         `json:"howToUse"`
	SkinTypes        []SkinType     `json:"skinTypes"`
	Concerns         []SkinConcern  `json:"concerns"`
	IsNew            bool           `json:"isNew"`
	IsBestseller     bool           `json:"isBestseller"`
	IsOnSale         bool           `json:"isOnSale"`
	Discount         int            `json:"discount,omitempty"`
	Weight           string         `json:"weight"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// MainImage retourne l'URL de l'image principale (ou la première disponible)
func (p *Product) MainImage() string {
	for _, img := range p.Images {
		if img.IsMain {
			return img.URL
		}
	}
	if len(p.Images) > 0 {
		return p.Images[0].URL
	}
	return ""
}

// HasSkinType vérifie si le produit convient à un type de peau
func (p *Product) HasSkinType(st SkinType) bool {
	for _, t := range p.SkinTypes {
		if t == st {
			return true
		}
	}
	return false
}

// HasConcern vérifie si le produit cible une préoccupation donnée
func (p *Product) HasConcern(sc SkinConcern) bool {
	for _, c := range p.Concerns {
		if c == sc {
			return true
		}
	}
	return false
}
