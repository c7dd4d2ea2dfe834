package models

import "time"

type Review struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"productId"`
	UserID     string    `json:"userId"`
	UserName   string    `json:"userName"`
	UserAvatar string    `json:"userAvatar,omitempty"`
	Rating     float64   `json:"rating"`
	Title      string    `json:"title"`
	Comment    string    `json:"comment"`
	Helpful    int       `json:"helpful"`
	Verified   bool      `json:"verified"`
	CreatedAt  time.Time `json:"createdAt"`
}
