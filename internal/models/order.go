package models

import "time"

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
	OrderRefunded   OrderStatus = "refunded"
)

// ValidOrderStatus vérifie qu'un statut fait partie du cycle de vie connu
func ValidOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled, OrderRefunded:
		return true
	}
	return false
}

type Address struct {
	ID         string `json:"id,omitempty"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type PaymentMethod struct {
	Type       string `json:"type"` // card, paypal ou cod
	CardNumber string `json:"cardNumber,omitempty"`
	CardHolder string `json:"cardHolder,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
}

// OrderItem fige le prix du produit au moment de la commande
type OrderItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	Total    float64 `json:"total"`
}

type Order struct {
	ID              string        `json:"id"`
	OrderNumber     string        `json:"orderNumber"`
	UserID          string        `json:"userId,omitempty"`
	Items           []OrderItem   `json:"items"`
	ShippingAddress Address       `json:"shippingAddress"`
	BillingAddress  Address       `json:"billingAddress"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	Subtotal        float64       `json:"subtotal"`
	Shipping        float64       `json:"shipping"`
	Tax             float64       `json:"tax"`
	Discount        float64       `json:"discount"`
	Total           float64       `json:"total"`
	Status          OrderStatus   `json:"status"`
	TrackingNumber  string        `json:"trackingNumber,omitempty"`
	Notes           string        `json:"notes,omitempty"`
	CreatedAt       time.Time     `json:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt"`
}
