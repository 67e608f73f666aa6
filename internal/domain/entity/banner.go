package entity

import "time"

// Banner representa un banner promocional de la tienda (solo admin).
type Banner struct {
	ID        string
	Title     string
	ImageURL  string
	LinkURL   string
	Position  int    // orden de presentación en la tienda
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
