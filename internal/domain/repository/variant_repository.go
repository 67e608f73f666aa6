package repository

import (
	"context"

	"github.com/jcastano/moda-admin-api/internal/domain/entity"
)

// VariantRepository define el puerto de persistencia del ledger de variantes:
// contadores (stock, vendido) por (producto, talla).
//
// Las entradas se materializan de forma perezosa: una talla declarada sin fila
// persistida se lee como stock=0, sold=0. Las filas huérfanas (talla retirada
// del producto) no se devuelven ni se borran; su limpieza es responsabilidad
// de un colaborador externo.
type VariantRepository interface {
	// ListByProduct devuelve una entrada por talla declarada, en el orden de
	// declaredSizes, rellenando con ceros las tallas sin fila. Un producto sin
	// tallas declaradas devuelve una secuencia vacía, nunca error.
	ListByProduct(ctx context.Context, productID string, declaredSizes []string) ([]entity.StockLedgerEntry, error)

	// ApplyBulkUpdate fija el nuevo stock de las tallas indicadas en una sola
	// transacción: o se aplican todas o ninguna. Valores negativos se
	// almacenan como 0 (el admin fija cantidad disponible absoluta, no un
	// delta). Las tallas no incluidas en updates no se tocan.
	//
	// Las escrituras concurrentes sobre el MISMO producto se serializan con
	// fallo rápido: la segunda recibe domain.ErrConflict y puede reintentar.
	// Productos distintos nunca se bloquean entre sí.
	//
	// Devuelve el conjunto resultante completo, ordenado por declaredSizes.
	ApplyBulkUpdate(ctx context.Context, productID string, declaredSizes []string, updates map[string]int) ([]entity.StockLedgerEntry, error)
}
