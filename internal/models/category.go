package models

type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Slug          string        `json:"slug"`
	Description   string        `json:"description"`
	Image         string        `json:"image"`
	Icon          string        `json:"icon"`
	ProductCount  int           `json:"productCount"`
	Subcategories []Subcategory `json:"subcategories"`
}

type Subcategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
