package inventory

// StockStatus es la banda de disponibilidad de una variante o de un producto.
type StockStatus string

const (
	StatusOutOfStock StockStatus = "OUT_OF_STOCK"
	StatusLowStock   StockStatus = "LOW_STOCK"
	StatusInStock    StockStatus = "IN_STOCK"
)

// Classify clasifica la disponibilidad contra un total de referencia
// (servicio de dominio, función total sin efectos).
//
//	porcentaje = referenceTotal > 0 ? available/referenceTotal*100 : 0
//	0%        -> OUT_OF_STOCK
//	(0, 20]%  -> LOW_STOCK
//	> 20%     -> IN_STOCK
//
// referenceTotal <= 0 siempre es OUT_OF_STOCK: es la guarda de división por
// cero, no un estado "desconocido".
func Classify(available, referenceTotal int) StockStatus {
	if referenceTotal <= 0 || available <= 0 {
		return StatusOutOfStock
	}
	percentage := float64(available) / float64(referenceTotal) * 100
	if percentage <= 20 {
		return StatusLowStock
	}
	return StatusInStock
}
