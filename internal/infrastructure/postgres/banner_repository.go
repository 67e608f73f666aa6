package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

var _ repository.BannerRepository = (*BannerRepo)(nil)

// BannerRepo implementación del puerto BannerRepository sobre PostgreSQL.
type BannerRepo struct {
	q Querier
}

// NewBannerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewBannerRepository(q Querier) *BannerRepo {
	return &BannerRepo{q: q}
}

// Create persiste un nuevo banner.
func (r *BannerRepo) Create(ctx context.Context, banner *entity.Banner) error {
	query := `
		INSERT INTO banners (id, title, image_url, link_url, position, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		banner.ID, banner.Title, banner.ImageURL, banner.LinkURL,
		banner.Position, banner.Status, banner.CreatedAt, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert banner: %w", mapStoreError(err))
	}
	return nil
}

// GetByID obtiene un banner por ID; (nil, nil) si no existe.
func (r *BannerRepo) GetByID(ctx context.Context, id string) (*entity.Banner, error) {
	query := `
		SELECT id, title, image_url, link_url, position, status, created_at, updated_at
		FROM banners WHERE id = $1`
	var b entity.Banner
	err := r.q.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get banner: %w", mapStoreError(err))
	}
	return &b, nil
}

// Update actualiza un banner existente.
func (r *BannerRepo) Update(ctx context.Context, banner *entity.Banner) error {
	query := `
		UPDATE banners SET title = $2, image_url = $3, link_url = $4, position = $5, status = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		banner.ID, banner.Title, banner.ImageURL, banner.LinkURL,
		banner.Position, banner.Status, banner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update banner: %w", mapStoreError(err))
	}
	return nil
}

// List lista banners ordenados por posición.
func (r *BannerRepo) List(ctx context.Context, limit, offset int) ([]*entity.Banner, error) {
	query := `
		SELECT id, title, image_url, link_url, position, status, created_at, updated_at
		FROM banners ORDER BY position, created_at LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list banners: %w", mapStoreError(err))
	}
	defer rows.Close()

	banners := make([]*entity.Banner, 0)
	for rows.Next() {
		var b entity.Banner
		if err := rows.Scan(&b.ID, &b.Title, &b.ImageURL, &b.LinkURL, &b.Position, &b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan banner: %w", err)
		}
		banners = append(banners, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate banners: %w", mapStoreError(err))
	}
	return banners, nil
}

// Delete elimina un banner.
func (r *BannerRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM banners WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete banner: %w", mapStoreError(err))
	}
	return nil
}
