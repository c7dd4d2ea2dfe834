package stores

// Tarification boutique : livraison offerte à partir de 500 MAD,
// sinon 29 MAD forfaitaires ; TVA à 20%
const (
	ShippingThreshold = 500.0
	ShippingCost      = 29.0
	TaxRate           = 0.20
)

// ShippingFor retourne les frais de livraison pour un sous-total donné
func ShippingFor(subtotal float64) float64 {
	if subtotal >= ShippingThreshold {
		return 0
	}
	return ShippingCost
}

// TaxFor retourne la TVA sur un sous-total
func TaxFor(subtotal float64) float64 {
	return subtotal * TaxRate
}

// TotalFor retourne le montant final : sous-total + livraison + TVA
func TotalFor(subtotal float64) float64 {
	return subtotal + ShippingFor(subtotal) + TaxFor(subtotal)
}
