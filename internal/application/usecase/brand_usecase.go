package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

// BrandUseCase casos de uso CRUD para marcas (solo admin).
type BrandUseCase struct {
	repo repository.BrandRepository
}

// NewBrandUseCase construye el caso de uso.
func NewBrandUseCase(repo repository.BrandRepository) *BrandUseCase {
	return &BrandUseCase{repo: repo}
}

// Create crea una marca.
func (uc *BrandUseCase) Create(ctx context.Context, in dto.CreateBrandRequest) (*dto.BrandResponse, error) {
	now := time.Now()
	brand := &entity.Brand{
		ID:        uuid.New().String(),
		Name:      in.Name,
		LogoURL:   in.LogoURL,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// GetByID obtiene una marca por ID.
func (uc *BrandUseCase) GetByID(ctx context.Context, id string) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	return toBrandResponse(brand), nil
}

// Update actualiza una marca.
func (uc *BrandUseCase) Update(ctx context.Context, id string, in dto.UpdateBrandRequest) (*dto.BrandResponse, error) {
	brand, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if brand == nil {
		return nil, nil
	}
	if in.Name != nil {
		brand.Name = *in.Name
	}
	if in.LogoURL != nil {
		brand.LogoURL = *in.LogoURL
	}
	if in.Status != nil {
		brand.Status = *in.Status
	}
	brand.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, brand); err != nil {
		return nil, err
	}
	return toBrandResponse(brand), nil
}

// List lista marcas paginadas.
func (uc *BrandUseCase) List(ctx context.Context, limit, offset int) (*dto.BrandListResponse, error) {
	brands, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BrandResponse, 0, len(brands))
	for _, b := range brands {
		items = append(items, *toBrandResponse(b))
	}
	return &dto.BrandListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: offset/max(limit, 1) + 1, PageSize: limit},
	}, nil
}

// Delete elimina una marca.
func (uc *BrandUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toBrandResponse(b *entity.Brand) *dto.BrandResponse {
	return &dto.BrandResponse{
		ID:        b.ID,
		Name:      b.Name,
		LogoURL:   b.LogoURL,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
