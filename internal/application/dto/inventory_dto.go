package dto

import "github.com/shopspring/decimal"

// ProductFilters filtros del listado de inventario por variantes.
// Coincidencia por subcadena, insensible a mayúsculas, AND entre campos.
type ProductFilters struct {
	Name     string `query:"name"`
	Category string `query:"category"`
	Brand    string `query:"brand"`
}

// SizeStockUpdate nueva cantidad disponible para una talla.
// Stock es valor absoluto (no delta); negativos se almacenan como 0.
type SizeStockUpdate struct {
	Size  string `json:"size" validate:"required"`
	Stock int    `json:"stock"`
}

// BulkStockUpdateRequest actualización masiva de stock de un producto.
type BulkStockUpdateRequest struct {
	Updates []SizeStockUpdate `json:"updates" validate:"required,min=1"`
}

// SizeStockView vista de una talla con su estado.
type SizeStockView struct {
	Size   string `json:"size"`
	Stock  int    `json:"stock"`
	Sold   int    `json:"sold"`
	Status string `json:"status"`
}

// StockSummary agregado del producto: disponible = Σ stock;
// el estado se clasifica contra Σ stock + Σ vendido.
type StockSummary struct {
	Available int    `json:"available"`
	Sold      int    `json:"sold"`
	Status    string `json:"status"`
}

// VariantProductResponse producto con su stock por talla y agregado.
type VariantProductResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	BrandID   string          `json:"brand_id"`
	Brand     string          `json:"brand"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	ImageURL  string          `json:"image_url"`
	Sizes     []SizeStockView `json:"sizes"`
	Summary   StockSummary    `json:"summary"`
}

// VariantProductListResponse página del listado de inventario.
type VariantProductListResponse struct {
	Items []VariantProductResponse `json:"items"`
	Page  PageResponse             `json:"page"`
}
