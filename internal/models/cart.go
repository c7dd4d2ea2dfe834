package models

// CartItem est une ligne du panier : un produit, une quantité et un
// drapeau de sélection pour le passage en caisse
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Selected bool    `json:"selected"`
}

// Cart est la vue sérialisée du panier avec ses totaux dérivés
type Cart struct {
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Shipping  float64    `json:"shipping"`
	Tax       float64    `json:"tax"`
	Total     float64    `json:"total"`
	ItemCount int        `json:"itemCount"`
}
