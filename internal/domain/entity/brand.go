package entity

import "time"

// Brand representa una marca; los productos y los usuarios brand_owner
// se asocian a ella.
type Brand struct {
	ID        string
	Name      string
	LogoURL   string
	Status    string // active, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
