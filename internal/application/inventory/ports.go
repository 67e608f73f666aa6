package inventory

import (
	"context"
	"time"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
)

// CatalogQueryGateway expone los metadatos de catálogo que el ledger no posee
// (nombre, precio, categoría, marca, imagen, tallas declaradas). La consola lo
// implementa sobre la tabla de productos; para el ledger es un colaborador.
type CatalogQueryGateway interface {
	// GetProduct devuelve el producto o (nil, nil) si no existe.
	GetProduct(ctx context.Context, id string) (*entity.Product, error)
	// ListSizedProducts devuelve los productos con al menos una talla
	// declarada; brandID vacío lista todas las marcas.
	ListSizedProducts(ctx context.Context, brandID string) ([]*entity.Product, error)
}

// StockViewCache cachea la vista de stock por producto. Es opcional: un fallo
// de caché nunca falla la operación, solo degrada a leer del repositorio.
type StockViewCache interface {
	GetProductView(ctx context.Context, productID string) (*dto.VariantProductResponse, error)
	SetProductView(ctx context.Context, productID string, view *dto.VariantProductResponse) error
	InvalidateProduct(ctx context.Context, productID string) error
}

// StockReportGenerator genera el reporte de inventario en PDF.
type StockReportGenerator interface {
	GenerateStockReport(ctx context.Context, items []dto.VariantProductResponse, generatedAt time.Time) ([]byte, error)
}
