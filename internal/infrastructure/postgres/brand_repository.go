package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

var _ repository.BrandRepository = (*BrandRepo)(nil)

// BrandRepo implementación del puerto BrandRepository sobre PostgreSQL.
type BrandRepo struct {
	q Querier
}

// NewBrandRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBrandRepository(q Querier) *BrandRepo {
	return &BrandRepo{q: q}
}

// Create persiste una nueva marca.
func (r *BrandRepo) Create(ctx context.Context, brand *entity.Brand) error {
	query := `
		INSERT INTO brands (id, name, logo_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		brand.ID, brand.Name, brand.LogoURL, brand.Status, brand.CreatedAt, brand.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert brand: %w", mapStoreError(err))
	}
	return nil
}

// GetByID obtiene una marca por ID; (nil, nil) si no existe.
func (r *BrandRepo) GetByID(ctx context.Context, id string) (*entity.Brand, error) {
	query := `
		SELECT id, name, logo_url, status, created_at, updated_at
		FROM brands WHERE id = $1`
	var b entity.Brand
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.LogoURL, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get brand: %w", mapStoreError(err))
	}
	return &b, nil
}

// Update actualiza una marca existente.
func (r *BrandRepo) Update(ctx context.Context, brand *entity.Brand) error {
	query := `
		UPDATE brands SET name = $2, logo_url = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		brand.ID, brand.Name, brand.LogoURL, brand.Status, brand.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update brand: %w", mapStoreError(err))
	}
	return nil
}

// List lista marcas paginadas por nombre.
func (r *BrandRepo) List(ctx context.Context, limit, offset int) ([]*entity.Brand, error) {
	query := `
		SELECT id, name, logo_url, status, created_at, updated_at
		FROM brands ORDER BY name LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list brands: %w", mapStoreError(err))
	}
	defer rows.Close()

	brands := make([]*entity.Brand, 0)
	for rows.Next() {
		var b entity.Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.LogoURL, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan brand: %w", err)
		}
		brands = append(brands, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate brands: %w", mapStoreError(err))
	}
	return brands, nil
}

// Delete elimina una marca.
func (r *BrandRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM brands WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete brand: %w", mapStoreError(err))
	}
	return nil
}
