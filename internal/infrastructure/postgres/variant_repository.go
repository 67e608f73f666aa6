package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantLedgerRepo)(nil)

// VariantLedgerRepo implementación de VariantRepository sobre PostgreSQL.
// Tabla product_variants, una fila por (product_id, size):
//
//	CREATE TABLE product_variants (
//	    product_id TEXT        NOT NULL,
//	    size       TEXT        NOT NULL,
//	    stock      INTEGER     NOT NULL DEFAULT 0 CHECK (stock >= 0),
//	    sold       INTEGER     NOT NULL DEFAULT 0 CHECK (sold >= 0),
//	    updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
//	    PRIMARY KEY (product_id, size)
//	);
//
// La serialización por producto usa pg_try_advisory_xact_lock sobre el hash
// del product_id: dos actualizaciones concurrentes del mismo producto nunca se
// entrelazan y la segunda falla rápido con ErrConflict; productos distintos no
// se bloquean entre sí.
type VariantLedgerRepo struct {
	pool *pgxpool.Pool
}

// NewVariantLedgerRepository construye el adaptador del ledger.
func NewVariantLedgerRepository(pool *pgxpool.Pool) *VariantLedgerRepo {
	return &VariantLedgerRepo{pool: pool}
}

// ListByProduct devuelve una entrada por talla declarada en el orden recibido,
// rellenando con ceros las tallas aún sin fila (materialización perezosa).
// Las filas de tallas ya no declaradas quedan fuera del SELECT: huérfanas,
// invisibles, nunca borradas aquí.
func (r *VariantLedgerRepo) ListByProduct(ctx context.Context, productID string, declaredSizes []string) ([]entity.StockLedgerEntry, error) {
	return listEntries(ctx, r.pool, productID, declaredSizes)
}

// ApplyBulkUpdate aplica todas las tallas del update en una sola transacción.
func (r *VariantLedgerRepo) ApplyBulkUpdate(ctx context.Context, productID string, declaredSizes []string, updates map[string]int) ([]entity.StockLedgerEntry, error) {
	if productID == "" || len(updates) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var result []entity.StockLedgerEntry
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		// Lock de alcance producto, liberado al cerrar la tx. Fallo rápido:
		// el perdedor recibe ErrConflict y decide si reintenta.
		var acquired bool
		err := tx.QueryRow(ctx,
			`SELECT pg_try_advisory_xact_lock(hashtextextended($1, 0))`, productID,
		).Scan(&acquired)
		if err != nil {
			return fmt.Errorf("advisory lock: %w", mapStoreError(err))
		}
		if !acquired {
			return domain.ErrConflict
		}

		upsert := `
			INSERT INTO product_variants (product_id, size, stock, sold, updated_at)
			VALUES ($1, $2, $3, 0, now())
			ON CONFLICT (product_id, size)
			DO UPDATE SET stock = EXCLUDED.stock, updated_at = now()`
		for size, stock := range updates {
			if stock < 0 {
				// El admin fija cantidad disponible absoluta, no un delta.
				stock = 0
			}
			if _, err := tx.Exec(ctx, upsert, productID, size, stock); err != nil {
				return fmt.Errorf("upsert variant %q: %w", size, mapStoreError(err))
			}
		}

		result, err = listEntries(ctx, tx, productID, declaredSizes)
		return err
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// listEntries lee las filas de las tallas declaradas y las devuelve en el
// orden declarado, con ceros para las no materializadas.
func listEntries(ctx context.Context, q Querier, productID string, declaredSizes []string) ([]entity.StockLedgerEntry, error) {
	if len(declaredSizes) == 0 {
		return []entity.StockLedgerEntry{}, nil
	}

	query := `
		SELECT size, stock, sold, updated_at
		FROM product_variants
		WHERE product_id = $1 AND size = ANY($2)`
	rows, err := q.Query(ctx, query, productID, declaredSizes)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", mapStoreError(err))
	}
	defer rows.Close()

	found := make(map[string]entity.StockLedgerEntry, len(declaredSizes))
	for rows.Next() {
		e := entity.StockLedgerEntry{ProductID: productID}
		if err := rows.Scan(&e.Size, &e.Stock, &e.Sold, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		found[e.Size] = e
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list variants: %w", mapStoreError(err))
	}

	entries := make([]entity.StockLedgerEntry, 0, len(declaredSizes))
	for _, size := range declaredSizes {
		if size == "" {
			continue
		}
		if e, ok := found[size]; ok {
			entries = append(entries, e)
			continue
		}
		entries = append(entries, entity.StockLedgerEntry{ProductID: productID, Size: size})
	}
	return entries, nil
}
