package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la consola administrativa.
// Sizes es la lista de tallas declaradas; el stock por talla vive en el
// ledger de variantes (StockLedgerEntry), no aquí.
type Product struct {
	ID          string
	BrandID     string
	Name        string
	Description string
	CategoryID  string
	Category    string          // nombre denormalizado para listados
	Brand       string          // nombre denormalizado para listados
	Price       decimal.Decimal // precio de venta
	ImageURL    string
	Sizes       []string // tallas declaradas, orden de presentación
	Status      string   // active, inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HasDeclaredSizes indica si el producto declara al menos una talla no vacía.
// Solo estos productos participan en la vista de inventario por variantes.
func (p *Product) HasDeclaredSizes() bool {
	for _, s := range p.Sizes {
		if s != "" {
			return true
		}
	}
	return false
}

// DeclaresSize indica si la talla está declarada en el producto.
// La comparación es exacta y sensible a mayúsculas: "M" y "m" son tallas distintas.
func (p *Product) DeclaresSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
