package entity

import "time"

// Category representa una categoría de productos del catálogo.
type Category struct {
	ID        string
	Name      string
	ImageURL  string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
