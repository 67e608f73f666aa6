package repository

import (
	"context"

	"github.com/jcastano/moda-admin-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	List(ctx context.Context, limit, offset int) ([]*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

// BrandRepository define el puerto de persistencia para Brand.
type BrandRepository interface {
	Create(ctx context.Context, brand *entity.Brand) error
	GetByID(ctx context.Context, id string) (*entity.Brand, error)
	Update(ctx context.Context, brand *entity.Brand) error
	List(ctx context.Context, limit, offset int) ([]*entity.Brand, error)
	Delete(ctx context.Context, id string) error
}

// BannerRepository define el puerto de persistencia para Banner.
type BannerRepository interface {
	Create(ctx context.Context, banner *entity.Banner) error
	GetByID(ctx context.Context, id string) (*entity.Banner, error)
	Update(ctx context.Context, banner *entity.Banner) error
	List(ctx context.Context, limit, offset int) ([]*entity.Banner, error)
	Delete(ctx context.Context, id string) error
}
