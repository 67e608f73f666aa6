package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

// BannerUseCase casos de uso CRUD para banners promocionales (solo admin).
type BannerUseCase struct {
	repo repository.BannerRepository
}

// NewBannerUseCase construye el caso de uso.
func NewBannerUseCase(repo repository.BannerRepository) *BannerUseCase {
	return &BannerUseCase{repo: repo}
}

// Create crea un banner.
func (uc *BannerUseCase) Create(ctx context.Context, in dto.CreateBannerRequest) (*dto.BannerResponse, error) {
	now := time.Now()
	banner := &entity.Banner{
		ID:        uuid.New().String(),
		Title:     in.Title,
		ImageURL:  in.ImageURL,
		LinkURL:   in.LinkURL,
		Position:  in.Position,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// GetByID obtiene un banner por ID.
func (uc *BannerUseCase) GetByID(ctx context.Context, id string) (*dto.BannerResponse, error) {
	banner, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, nil
	}
	return toBannerResponse(banner), nil
}

// Update actualiza un banner.
func (uc *BannerUseCase) Update(ctx context.Context, id string, in dto.UpdateBannerRequest) (*dto.BannerResponse, error) {
	banner, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if banner == nil {
		return nil, nil
	}
	if in.Title != nil {
		banner.Title = *in.Title
	}
	if in.ImageURL != nil {
		banner.ImageURL = *in.ImageURL
	}
	if in.LinkURL != nil {
		banner.LinkURL = *in.LinkURL
	}
	if in.Position != nil {
		banner.Position = *in.Position
	}
	if in.Status != nil {
		banner.Status = *in.Status
	}
	banner.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, banner); err != nil {
		return nil, err
	}
	return toBannerResponse(banner), nil
}

// List lista banners paginados (ordenados por posición en el repositorio).
func (uc *BannerUseCase) List(ctx context.Context, limit, offset int) (*dto.BannerListResponse, error) {
	banners, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BannerResponse, 0, len(banners))
	for _, b := range banners {
		items = append(items, *toBannerResponse(b))
	}
	return &dto.BannerListResponse{
		Items: items,
		Page:  dto.PageResponse{Page: offset/max(limit, 1) + 1, PageSize: limit},
	}, nil
}

// Delete elimina un banner.
func (uc *BannerUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

func toBannerResponse(b *entity.Banner) *dto.BannerResponse {
	return &dto.BannerResponse{
		ID:        b.ID,
		Title:     b.Title,
		ImageURL:  b.ImageURL,
		LinkURL:   b.LinkURL,
		Position:  b.Position,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
