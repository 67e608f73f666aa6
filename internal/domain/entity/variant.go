package entity

import "time"

// VariantKey identifica una unidad almacenable: una talla de un producto.
// Dos claves son iguales solo si ambos campos coinciden; la talla se compara
// exacta, sin normalización.
type VariantKey struct {
	ProductID string
	Size      string
}

// StockLedgerEntry es el contador persistido de una variante.
// Stock ES la cantidad disponible actual: las ventas ya fueron descontadas en el
// punto de venta (fuera de este módulo). Sold es acumulado histórico, solo
// informativo; nunca se resta de Stock.
type StockLedgerEntry struct {
	ProductID string
	Size      string
	Stock     int // >= 0 siempre
	Sold      int // >= 0 siempre
	UpdatedAt time.Time
}

// Key devuelve la clave de variante de la entrada.
func (e StockLedgerEntry) Key() VariantKey {
	return VariantKey{ProductID: e.ProductID, Size: e.Size}
}

// Available devuelve la cantidad vendible actual (igual a Stock, por contrato).
func (e StockLedgerEntry) Available() int {
	return e.Stock
}
