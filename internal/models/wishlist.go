package models

import "time"

type WishlistItem struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"addedAt"`
}

type Wishlist struct {
	Items []WishlistItem `json:"items"`
}
