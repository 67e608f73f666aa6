package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	"github.com/jcastano/moda-admin-api/internal/application/inventory"
	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos del catálogo.
// El stock por talla se maneja en el ledger de variantes, no aquí.
type ProductUseCase struct {
	repo       repository.ProductRepository
	brandRepo  repository.BrandRepository
	stockCache inventory.StockViewCache // opcional; invalida la vista al cambiar el producto
}

// NewProductUseCase construye el caso de uso. stockCache puede ser nil.
func NewProductUseCase(repo repository.ProductRepository, brandRepo repository.BrandRepository, stockCache inventory.StockViewCache) *ProductUseCase {
	return &ProductUseCase{repo: repo, brandRepo: brandRepo, stockCache: stockCache}
}

// Create crea un producto. Un brand_owner solo puede crear sobre su marca.
func (uc *ProductUseCase) Create(ctx context.Context, callerRole, callerBrandID string, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if callerRole == entity.RoleBrandOwner {
		if callerBrandID == "" || in.BrandID != callerBrandID {
			return nil, domain.ErrForbidden
		}
	}
	brand, err := uc.brandRepo.GetByID(ctx, in.BrandID)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	product := &entity.Product{
		ID:          uuid.New().String(),
		BrandID:     in.BrandID,
		Brand:       brand.Name,
		Name:        in.Name,
		Description: in.Description,
		CategoryID:  in.CategoryID,
		Price:       in.Price,
		ImageURL:    in.ImageURL,
		Sizes:       cleanSizes(in.Sizes),
		Status:      "active",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. Un brand_owner solo los de su marca.
// Quitar una talla de Sizes deja huérfana su entrada del ledger: deja de
// mostrarse pero no se borra (la limpieza es de un colaborador externo).
func (uc *ProductUseCase) Update(ctx context.Context, callerRole, callerBrandID, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if callerRole == entity.RoleBrandOwner && product.BrandID != callerBrandID {
		return nil, domain.ErrForbidden
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.CategoryID != nil {
		product.CategoryID = *in.CategoryID
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.ImageURL != nil {
		product.ImageURL = *in.ImageURL
	}
	if in.Sizes != nil {
		product.Sizes = cleanSizes(in.Sizes)
	}
	if in.Status != nil {
		product.Status = *in.Status
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	// Cambiar metadatos o tallas deja obsoleta la vista de stock cacheada.
	uc.invalidateStockView(ctx, product.ID)
	return toProductResponse(product), nil
}

// List lista productos paginados; brandID vacío lista todas las marcas.
func (uc *ProductUseCase) List(ctx context.Context, brandID string, limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx, brandID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: offset/max(limit, 1) + 1, PageSize: limit},
	}, nil
}

// Delete elimina un producto. Solo admin (validado en el handler por rol).
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidateStockView(ctx, id)
	return nil
}

// invalidateStockView borra la vista cacheada del producto; un fallo de caché
// no falla la operación.
func (uc *ProductUseCase) invalidateStockView(ctx context.Context, productID string) {
	if uc.stockCache == nil {
		return
	}
	if err := uc.stockCache.InvalidateProduct(ctx, productID); err != nil {
		log.Debug().Err(err).Str("product_id", productID).Msg("no se pudo invalidar la caché de stock")
	}
}

// cleanSizes descarta tallas vacías y repetidas, preservando el orden declarado.
func cleanSizes(sizes []string) []string {
	out := make([]string, 0, len(sizes))
	seen := make(map[string]bool, len(sizes))
	for _, s := range sizes {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:          p.ID,
		BrandID:     p.BrandID,
		Brand:       p.Brand,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  p.CategoryID,
		Category:    p.Category,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Sizes:       p.Sizes,
		Status:      p.Status,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
