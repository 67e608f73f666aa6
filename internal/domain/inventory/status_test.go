package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Bandas(t *testing.T) {
	cases := []struct {
		name      string
		available int
		total     int
		want      StockStatus
	}{
		{"sin disponibilidad", 0, 100, StatusOutOfStock},
		{"bajo stock 5%", 5, 100, StatusLowStock},
		{"límite exacto 20%", 20, 100, StatusLowStock},
		{"sobre el límite 21%", 21, 100, StatusInStock},
		{"stock completo", 100, 100, StatusInStock},
		{"referencia cero no divide", 0, 0, StatusOutOfStock},
		{"referencia cero con disponible", 5, 0, StatusOutOfStock},
		{"negativos tratados como vacío", -1, 100, StatusOutOfStock},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.available, tc.total))
		})
	}
}

// La vista por talla clasifica contra el propio stock de la talla, así que solo
// hay 100% o 0%: una talla con unidades siempre es IN_STOCK.
func TestClassify_ReferenciaPropia(t *testing.T) {
	assert.Equal(t, StatusInStock, Classify(3, 3))
	assert.Equal(t, StatusOutOfStock, Classify(0, 0))
}
