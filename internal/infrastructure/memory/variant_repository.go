package memory

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/domain/repository"
)

var _ repository.VariantRepository = (*VariantLedger)(nil)

type counter struct {
	stock     int
	sold      int
	updatedAt time.Time
}

// VariantLedger implementación en memoria de VariantRepository, con las mismas
// garantías que el adaptador PostgreSQL: actualización atómica por producto y
// serialización con fallo rápido (ErrConflict) entre escritores concurrentes
// del mismo producto. Se usa en tests y en modo desarrollo sin base de datos.
type VariantLedger struct {
	mu       sync.RWMutex                  // protege entries y writeErr
	entries  map[string]map[string]counter // productID -> size -> contadores
	locks    sync.Map                      // productID -> *sync.Mutex
	writeErr error                         // fallo inyectado en escrituras (solo tests)
}

// NewVariantLedger construye un ledger vacío.
func NewVariantLedger() *VariantLedger {
	return &VariantLedger{entries: make(map[string]map[string]counter)}
}

// SeedSold fija el acumulado vendido de una variante (solo para tests y datos
// de desarrollo; el punto de venta que lo alimenta queda fuera de este módulo).
func (l *VariantLedger) SeedSold(productID, size string, sold int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	sizes, ok := l.entries[productID]
	if !ok {
		sizes = make(map[string]counter)
		l.entries[productID] = sizes
	}
	c := sizes[size]
	c.sold = sold
	c.updatedAt = time.Now()
	sizes[size] = c
}

// FailWrites hace que las próximas escrituras fallen con err (nil restablece
// el funcionamiento normal). Solo para tests: permite ejercitar los caminos de
// fallo de almacenamiento sin una base de datos caída de verdad.
func (l *VariantLedger) FailWrites(err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.writeErr = err
}

// ListByProduct devuelve una entrada por talla declarada en orden, con ceros
// para las tallas aún no materializadas.
func (l *VariantLedger) ListByProduct(ctx context.Context, productID string, declaredSizes []string) ([]entity.StockLedgerEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, mapCtxErr(err)
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.snapshot(productID, declaredSizes), nil
}

// ApplyBulkUpdate aplica todas las tallas o ninguna. El mutex por producto
// serializa escritores del mismo producto; TryLock falla rápido con
// ErrConflict en vez de encolar, igual que el adaptador PostgreSQL.
func (l *VariantLedger) ApplyBulkUpdate(ctx context.Context, productID string, declaredSizes []string, updates map[string]int) ([]entity.StockLedgerEntry, error) {
	if productID == "" || len(updates) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := ctx.Err(); err != nil {
		return nil, mapCtxErr(err)
	}

	lockAny, _ := l.locks.LoadOrStore(productID, &sync.Mutex{})
	lock := lockAny.(*sync.Mutex)
	if !lock.TryLock() {
		return nil, domain.ErrConflict
	}
	defer lock.Unlock()

	// Cancelación o fallo de almacenamiento antes de commit: estado previo intacto.
	if err := ctx.Err(); err != nil {
		return nil, mapCtxErr(err)
	}
	l.mu.RLock()
	failErr := l.writeErr
	l.mu.RUnlock()
	if failErr != nil {
		return nil, failErr
	}

	now := time.Now()
	l.mu.Lock()
	sizes, ok := l.entries[productID]
	if !ok {
		sizes = make(map[string]counter)
		l.entries[productID] = sizes
	}
	for size, stock := range updates {
		if stock < 0 {
			stock = 0
		}
		c := sizes[size]
		c.stock = stock
		c.updatedAt = now
		sizes[size] = c
	}
	result := l.snapshot(productID, declaredSizes)
	l.mu.Unlock()

	return result, nil
}

// mapCtxErr traduce la expiración de contexto a la taxonomía de dominio,
// igual que el adaptador PostgreSQL vía mapStoreError.
func mapCtxErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrTimeout
	}
	return err
}

// snapshot arma las entradas declaradas en orden; requiere l.mu tomado.
func (l *VariantLedger) snapshot(productID string, declaredSizes []string) []entity.StockLedgerEntry {
	sizes := l.entries[productID]
	out := make([]entity.StockLedgerEntry, 0, len(declaredSizes))
	for _, size := range declaredSizes {
		if size == "" {
			continue
		}
		e := entity.StockLedgerEntry{ProductID: productID, Size: size}
		if c, ok := sizes[size]; ok {
			e.Stock = c.stock
			e.Sold = c.sold
			e.UpdatedAt = c.updatedAt
		}
		out = append(out, e)
	}
	return out
}
