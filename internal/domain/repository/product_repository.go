package repository

import (
	"context"

	"github.com/jcastano/moda-admin-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context, brandID string, limit, offset int) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) error
}
