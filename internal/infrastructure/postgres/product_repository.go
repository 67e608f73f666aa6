package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	appinventory "github.com/jcastano/moda-admin-api/internal/application/inventory"
	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)
var _ appinventory.CatalogQueryGateway = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL.
// También implementa CatalogQueryGateway para el ledger de variantes: los
// metadatos (nombre, precio, categoría, marca, tallas declaradas) viven aquí.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `
	p.id, p.brand_id, b.name, p.name, p.description, p.category_id,
	COALESCE(c.name, ''), p.price, p.image_url, p.sizes, p.status,
	p.created_at, p.updated_at`

const productJoins = `
	FROM products p
	JOIN brands b ON b.id = p.brand_id
	LEFT JOIN categories c ON c.id = p.category_id`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, brand_id, name, description, category_id, price, image_url, sizes, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.BrandID, product.Name, product.Description, product.CategoryID,
		product.Price, product.ImageURL, product.Sizes, product.Status,
		product.CreatedAt, product.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", mapStoreError(err))
	}
	return nil
}

// GetByID obtiene un producto por ID; (nil, nil) si no existe.
func (r *ProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + productJoins + ` WHERE p.id = $1`
	p, err := r.scanProduct(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", mapStoreError(err))
	}
	return p, nil
}

// Update actualiza un producto existente.
func (r *ProductRepo) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products SET
			name = $2, description = $3, category_id = NULLIF($4, ''), price = $5,
			image_url = $6, sizes = $7, status = $8, updated_at = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.CategoryID,
		product.Price, product.ImageURL, product.Sizes, product.Status, product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update product: %w", mapStoreError(err))
	}
	return nil
}

// List lista productos paginados; brandID vacío lista todas las marcas.
func (r *ProductRepo) List(ctx context.Context, brandID string, limit, offset int) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + productJoins + `
		WHERE ($1 = '' OR p.brand_id = $1)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(ctx, query, brandID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", mapStoreError(err))
	}
	defer rows.Close()
	return r.collectProducts(rows)
}

// Delete elimina un producto. Sus filas del ledger quedan huérfanas
// (invisibles, no borradas aquí).
func (r *ProductRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete product: %w", mapStoreError(err))
	}
	return nil
}

// GetProduct implementa CatalogQueryGateway.
func (r *ProductRepo) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return r.GetByID(ctx, id)
}

// ListSizedProducts devuelve los productos activos con al menos una talla
// declarada, opcionalmente restringidos a una marca.
func (r *ProductRepo) ListSizedProducts(ctx context.Context, brandID string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + productJoins + `
		WHERE cardinality(p.sizes) > 0
		  AND p.status = 'active'
		  AND ($1 = '' OR p.brand_id = $1)
		ORDER BY p.created_at DESC`
	rows, err := r.q.Query(ctx, query, brandID)
	if err != nil {
		return nil, fmt.Errorf("list sized products: %w", mapStoreError(err))
	}
	defer rows.Close()
	return r.collectProducts(rows)
}

func (r *ProductRepo) scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var categoryID *string
	err := row.Scan(
		&p.ID, &p.BrandID, &p.Brand, &p.Name, &p.Description, &categoryID,
		&p.Category, &p.Price, &p.ImageURL, &p.Sizes, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if categoryID != nil {
		p.CategoryID = *categoryID
	}
	return &p, nil
}

func (r *ProductRepo) collectProducts(rows pgx.Rows) ([]*entity.Product, error) {
	products := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := r.scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", mapStoreError(err))
	}
	return products, nil
}
