package inventory

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	domaininv "github.com/jcastano/moda-admin-api/internal/domain/inventory"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

// Caller identidad del solicitante, derivada del token (nunca del body).
type Caller struct {
	UserID  string
	Role    string // entity.RoleAdmin | entity.RoleBrandOwner
	BrandID string // vacío para admin
}

// UseCase orquesta el ledger de variantes: listado con disponibilidad derivada
// y actualización masiva de stock, con alcance por rol. Es el único punto de
// entrada de los callers; todo el estado vive en el repositorio.
type UseCase struct {
	catalog CatalogQueryGateway
	ledger  repository.VariantRepository
	cache   StockViewCache // opcional; nil desactiva la caché
	report  StockReportGenerator
}

// NewUseCase construye el caso de uso. cache y report pueden ser nil.
func NewUseCase(catalog CatalogQueryGateway, ledger repository.VariantRepository, cache StockViewCache, report StockReportGenerator) *UseCase {
	return &UseCase{catalog: catalog, ledger: ledger, cache: cache, report: report}
}

// ListVariantProducts lista productos con tallas, su stock por talla y el
// agregado, filtrado y paginado.
//
// Un brand_owner queda restringido a su propia marca sin importar el filtro de
// marca que envíe el cliente (la autorización se aplica en el servidor). Los
// filtros son subcadena insensible a mayúsculas, AND entre campos; la
// paginación es 1-based sobre el conjunto ya filtrado.
func (uc *UseCase) ListVariantProducts(ctx context.Context, caller Caller, filters dto.ProductFilters, page dto.PageRequest) (*dto.VariantProductListResponse, error) {
	page.DefaultPage()

	brandScope := ""
	switch caller.Role {
	case entity.RoleAdmin:
	case entity.RoleBrandOwner:
		if caller.BrandID == "" {
			return nil, domain.ErrForbidden
		}
		brandScope = caller.BrandID
		// El alcance de marca sustituye cualquier filtro de marca del cliente.
		filters.Brand = ""
	default:
		// Un rol desconocido nunca ve el listado completo.
		return nil, domain.ErrForbidden
	}

	products, err := uc.catalog.ListSizedProducts(ctx, brandScope)
	if err != nil {
		return nil, err
	}

	filtered := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if !p.HasDeclaredSizes() {
			continue
		}
		if matchesFilters(p, filters) {
			filtered = append(filtered, p)
		}
	}

	total := len(filtered)
	start := page.Offset()
	if start > total {
		start = total
	}
	end := start + page.PageSize
	if end > total {
		end = total
	}

	items := make([]dto.VariantProductResponse, 0, end-start)
	for _, p := range filtered[start:end] {
		view, err := uc.productView(ctx, p)
		if err != nil {
			return nil, err
		}
		items = append(items, *view)
	}

	return &dto.VariantProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: page.Page, PageSize: page.PageSize, Total: total},
	}, nil
}

// UpdateStock aplica una actualización masiva de stock sobre un producto y
// devuelve la vista resultante recalculada (el caller no necesita re-consultar).
//
// Autorización: admin siempre; brand_owner solo sobre productos de su marca.
// Toda talla del request debe estar declarada en el producto; una talla
// desconocida o repetida rechaza la llamada completa (consistente con la
// atomicidad del repositorio).
func (uc *UseCase) UpdateStock(ctx context.Context, caller Caller, productID string, updates []dto.SizeStockUpdate) (*dto.VariantProductResponse, error) {
	if productID == "" || len(updates) == 0 {
		return nil, domain.ErrInvalidInput
	}

	product, err := uc.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if caller.Role != entity.RoleAdmin {
		if caller.Role != entity.RoleBrandOwner || caller.BrandID == "" || product.BrandID != caller.BrandID {
			return nil, domain.ErrForbidden
		}
	}

	bySize := make(map[string]int, len(updates))
	for _, u := range updates {
		if u.Size == "" || !product.DeclaresSize(u.Size) {
			return nil, domain.ErrInvalidInput
		}
		if _, dup := bySize[u.Size]; dup {
			return nil, domain.ErrInvalidInput
		}
		bySize[u.Size] = u.Stock
	}

	entries, err := uc.ledger.ApplyBulkUpdate(ctx, productID, product.Sizes, bySize)
	if err != nil {
		return nil, err
	}

	view := buildView(product, entries)
	uc.cacheSet(ctx, view)
	return view, nil
}

// BuildStockReport genera el reporte PDF del inventario visible para el caller.
func (uc *UseCase) BuildStockReport(ctx context.Context, caller Caller) ([]byte, error) {
	if uc.report == nil {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.ListVariantProducts(ctx, caller, dto.ProductFilters{}, dto.PageRequest{Page: 1, PageSize: 100})
	if err != nil {
		return nil, err
	}
	return uc.report.GenerateStockReport(ctx, list.Items, time.Now())
}

// productView devuelve la vista de stock de un producto, pasando por la caché
// cuando está configurada.
func (uc *UseCase) productView(ctx context.Context, product *entity.Product) (*dto.VariantProductResponse, error) {
	if uc.cache != nil {
		view, err := uc.cache.GetProductView(ctx, product.ID)
		if err != nil {
			log.Debug().Err(err).Str("product_id", product.ID).Msg("caché de stock no disponible")
		} else if view != nil {
			return view, nil
		}
	}
	entries, err := uc.ledger.ListByProduct(ctx, product.ID, product.Sizes)
	if err != nil {
		return nil, err
	}
	view := buildView(product, entries)
	uc.cacheSet(ctx, view)
	return view, nil
}

func (uc *UseCase) cacheSet(ctx context.Context, view *dto.VariantProductResponse) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.SetProductView(ctx, view.ProductID, view); err != nil {
		log.Debug().Err(err).Str("product_id", view.ProductID).Msg("no se pudo escribir la caché de stock")
	}
}

// buildView arma la vista por talla y el agregado del producto.
// Por talla el estado se clasifica contra el propio stock de la talla
// (comportamiento observado de la consola, preservado); el agregado contra
// Σ stock + Σ vendido.
func buildView(product *entity.Product, entries []entity.StockLedgerEntry) *dto.VariantProductResponse {
	sizes := make([]dto.SizeStockView, 0, len(entries))
	totalStock, totalSold := 0, 0
	for _, e := range entries {
		sizes = append(sizes, dto.SizeStockView{
			Size:   e.Size,
			Stock:  e.Stock,
			Sold:   e.Sold,
			Status: string(domaininv.Classify(e.Available(), e.Stock)),
		})
		totalStock += e.Stock
		totalSold += e.Sold
	}
	return &dto.VariantProductResponse{
		ProductID: product.ID,
		Name:      product.Name,
		BrandID:   product.BrandID,
		Brand:     product.Brand,
		Category:  product.Category,
		Price:     product.Price,
		ImageURL:  product.ImageURL,
		Sizes:     sizes,
		Summary: dto.StockSummary{
			Available: totalStock,
			Sold:      totalSold,
			Status:    string(domaininv.Classify(totalStock, totalStock+totalSold)),
		},
	}
}

// matchesFilters aplica los filtros AND por subcadena insensible a mayúsculas.
func matchesFilters(p *entity.Product, f dto.ProductFilters) bool {
	return containsFold(p.Name, f.Name) &&
		containsFold(p.Category, f.Category) &&
		containsFold(p.Brand, f.Brand)
}

// containsFold compara por subcadena con case folding Unicode.
// cases.Caser no es seguro para uso concurrente, por eso se crea por llamada.
func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	fold := cases.Fold()
	return strings.Contains(fold.String(s), fold.String(substr))
}
