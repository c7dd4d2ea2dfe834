package models

import "time"

type User struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	FirstName        string    `json:"firstName"`
	LastName         string    `json:"lastName"`
	Avatar           string    `json:"avatar,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Addresses        []Address `json:"addresses"`
	DefaultAddressID string    `json:"defaultAddressId,omitempty"`
	Wishlist         []string  `json:"wishlist"`
	Orders           []string  `json:"orders"`
	Role             string    `json:"role"` // user ou admin
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}
