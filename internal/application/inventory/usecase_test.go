package inventory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	appinventory "github.com/jcastano/moda-admin-api/internal/application/inventory"
	"github.com/jcastano/moda-admin-api/internal/domain"
	"github.com/jcastano/moda-admin-api/internal/domain/entity"
	"github.com/jcastano/moda-admin-api/internal/infrastructure/memory"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	brandAID = "00000000-0000-0000-0000-00000000000a"
	brandBID = "00000000-0000-0000-0000-00000000000b"
)

var (
	admin  = appinventory.Caller{UserID: "u-admin", Role: entity.RoleAdmin}
	ownerA = appinventory.Caller{UserID: "u-owner-a", Role: entity.RoleBrandOwner, BrandID: brandAID}
)

// fakeCatalog implementa CatalogQueryGateway sobre un slice fijo de productos.
type fakeCatalog struct {
	products []*entity.Product
}

func (f *fakeCatalog) GetProduct(_ context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeCatalog) ListSizedProducts(_ context.Context, brandID string) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, p := range f.products {
		if brandID != "" && p.BrandID != brandID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func product(id, brandID, name, category, brand string, sizes ...string) *entity.Product {
	return &entity.Product{
		ID:       id,
		BrandID:  brandID,
		Name:     name,
		Category: category,
		Brand:    brand,
		Sizes:    sizes,
		Status:   "active",
	}
}

// newFixture levanta un caso de uso con catálogo fake y ledger en memoria.
func newFixture(products ...*entity.Product) (*appinventory.UseCase, *memory.VariantLedger) {
	ledger := memory.NewVariantLedger()
	uc := appinventory.NewUseCase(&fakeCatalog{products: products}, ledger, nil, nil)
	return uc, ledger
}

// sizeViews indexa la vista por talla para asserts legibles.
func sizeViews(t *testing.T, view *dto.VariantProductResponse) map[string]dto.SizeStockView {
	t.Helper()
	out := make(map[string]dto.SizeStockView, len(view.Sizes))
	for _, s := range view.Sizes {
		out[s.Size] = s
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// UpdateStock — actualización masiva
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_AdminActualizaTodasLasTallas(t *testing.T) {
	uc, _ := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S", "M", "L"))

	view, err := uc.UpdateStock(context.Background(), admin, "p1", []dto.SizeStockUpdate{
		{Size: "S", Stock: 10},
		{Size: "M", Stock: 0},
		{Size: "L", Stock: 5},
	})
	require.NoError(t, err)
	require.Len(t, view.Sizes, 3, "debe devolver una entrada por talla declarada")

	bySize := sizeViews(t, view)
	assert.Equal(t, 10, bySize["S"].Stock)
	assert.Equal(t, 0, bySize["M"].Stock)
	assert.Equal(t, 5, bySize["L"].Stock)

	// M sin stock queda OUT_OF_STOCK aunque el producto tenga stock agregado.
	assert.Equal(t, "OUT_OF_STOCK", bySize["M"].Status)
	assert.Equal(t, "IN_STOCK", bySize["S"].Status)

	assert.Equal(t, 15, view.Summary.Available, "el agregado debe ser la suma del stock por talla")
	assert.Equal(t, "IN_STOCK", view.Summary.Status)
}

func TestUpdateStock_TallasNoIncluidasQuedanIntactas(t *testing.T) {
	uc, _ := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S", "M"))

	_, err := uc.UpdateStock(context.Background(), admin, "p1", []dto.SizeStockUpdate{
		{Size: "S", Stock: 7},
		{Size: "M", Stock: 3},
	})
	require.NoError(t, err)

	// Segunda actualización parcial: M conserva su valor anterior.
	view, err := uc.UpdateStock(context.Background(), admin, "p1", []dto.SizeStockUpdate{
		{Size: "S", Stock: 1},
	})
	require.NoError(t, err)

	bySize := sizeViews(t, view)
	assert.Equal(t, 1, bySize["S"].Stock)
	assert.Equal(t, 3, bySize["M"].Stock, "una talla fuera del request no debe cambiar")
}

func TestUpdateStock_StockNegativoSeAlmacenaComoCero(t *testing.T) {
	uc, _ := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"))

	view, err := uc.UpdateStock(context.Background(), admin, "p1", []dto.SizeStockUpdate{
		{Size: "S", Stock: -5},
	})
	require.NoError(t, err)

	bySize := sizeViews(t, view)
	assert.Equal(t, 0, bySize["S"].Stock, "stock negativo debe almacenarse como 0")
	assert.Equal(t, "OUT_OF_STOCK", bySize["S"].Status)
}

func TestUpdateStock_EntradasInvalidasRechazanLaLlamadaCompleta(t *testing.T) {
	cases := []struct {
		name    string
		updates []dto.SizeStockUpdate
	}{
		{"talla no declarada", []dto.SizeStockUpdate{{Size: "S", Stock: 1}, {Size: "XL", Stock: 2}}},
		{"talla vacía", []dto.SizeStockUpdate{{Size: "", Stock: 1}}},
		{"talla repetida", []dto.SizeStockUpdate{{Size: "S", Stock: 1}, {Size: "S", Stock: 2}}},
		{"sin updates", nil},
		{"talla con distinto case", []dto.SizeStockUpdate{{Size: "s", Stock: 1}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc, ledger := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S", "M"))

			_, err := uc.UpdateStock(context.Background(), admin, "p1", tc.updates)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)

			// Atómico: nada debe haberse escrito.
			entries, err := ledger.ListByProduct(context.Background(), "p1", []string{"S", "M"})
			require.NoError(t, err)
			for _, e := range entries {
				assert.Zero(t, e.Stock, "una llamada rechazada no debe dejar escrituras parciales")
			}
		})
	}
}

// Un fallo de almacenamiento sube intacto al caller y no deja escrituras.
func TestUpdateStock_FalloDeAlmacenamiento_SePropaga(t *testing.T) {
	uc, ledger := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"))
	ledger.FailWrites(domain.ErrStorageUnavailable)

	_, err := uc.UpdateStock(context.Background(), admin, "p1", []dto.SizeStockUpdate{{Size: "S", Stock: 5}})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	ledger.FailWrites(nil)
	entries, err := ledger.ListByProduct(context.Background(), "p1", []string{"S"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].Stock, "la relectura tras el fallo no debe ver escrituras")
}

func TestUpdateStock_ProductoInexistente_RetornaNotFound(t *testing.T) {
	uc, _ := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"))

	_, err := uc.UpdateStock(context.Background(), admin, "no-existe", []dto.SizeStockUpdate{{Size: "S", Stock: 1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStock_BrandOwnerSoloSuMarca(t *testing.T) {
	uc, ledger := newFixture(
		product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"),
		product("p2", brandBID, "Pantalón Denim", "Pantalones", "Marca B", "M"),
	)

	// Sobre su propia marca: permitido.
	view, err := uc.UpdateStock(context.Background(), ownerA, "p1", []dto.SizeStockUpdate{{Size: "S", Stock: 4}})
	require.NoError(t, err)
	assert.Equal(t, 4, view.Summary.Available)

	// Sobre otra marca: prohibido y sin efectos en el ledger.
	_, err = uc.UpdateStock(context.Background(), ownerA, "p2", []dto.SizeStockUpdate{{Size: "M", Stock: 99}})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	entries, err := ledger.ListByProduct(context.Background(), "p2", []string{"M"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Zero(t, entries[0].Stock, "una llamada prohibida no debe tocar el ledger")
}

// ──────────────────────────────────────────────────────────────────────────────
// Clasificación del agregado con acumulado vendido
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateStock_AgregadoConVendido_QuedaLowStock(t *testing.T) {
	uc, ledger := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"))
	ledger.SeedSold("p1", "S", 90)

	// 10 disponibles sobre 100 históricos = 10% → LOW_STOCK.
	view, err := uc.UpdateStock(context.Background(), admin, "p1", []dto.SizeStockUpdate{{Size: "S", Stock: 10}})
	require.NoError(t, err)

	assert.Equal(t, 10, view.Summary.Available)
	assert.Equal(t, 90, view.Summary.Sold)
	assert.Equal(t, "LOW_STOCK", view.Summary.Status)
}

// ──────────────────────────────────────────────────────────────────────────────
// ListVariantProducts — filtros, alcance y paginación
// ──────────────────────────────────────────────────────────────────────────────

func TestListVariantProducts_ExcluyeProductosSinTallas(t *testing.T) {
	uc, _ := newFixture(
		product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S", "M"),
		product("p2", brandAID, "Gorra", "Accesorios", "Marca A"), // sin tallas
	)

	list, err := uc.ListVariantProducts(context.Background(), admin, dto.ProductFilters{}, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, list.Items, 1, "un producto sin tallas no participa del inventario por variantes")
	assert.Equal(t, "p1", list.Items[0].ProductID)
	assert.Equal(t, 1, list.Page.Total)
}

func TestListVariantProducts_TallasSinMovimientoAparecenEnCero(t *testing.T) {
	uc, _ := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S", "M", "L"))

	list, err := uc.ListVariantProducts(context.Background(), admin, dto.ProductFilters{}, dto.PageRequest{})
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	item := list.Items[0]
	require.Len(t, item.Sizes, 3, "toda talla declarada debe aparecer aunque no tenga movimientos")
	for _, s := range item.Sizes {
		assert.Zero(t, s.Stock)
		assert.Equal(t, "OUT_OF_STOCK", s.Status)
	}
	assert.Equal(t, "OUT_OF_STOCK", item.Summary.Status)
}

func TestListVariantProducts_FiltroNombreInsensibleAMayusculas(t *testing.T) {
	uc, _ := newFixture(
		product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"),
		product("p2", brandAID, "Pantalón Denim", "Pantalones", "Marca A", "M"),
	)

	list, err := uc.ListVariantProducts(context.Background(), admin,
		dto.ProductFilters{Name: "camisa"}, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, list.Items, 1, "el filtro por nombre es subcadena insensible a mayúsculas")
	assert.Equal(t, "p1", list.Items[0].ProductID)
}

func TestListVariantProducts_FiltrosCombinadosSonAND(t *testing.T) {
	uc, _ := newFixture(
		product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"),
		product("p2", brandBID, "Camisa Oxford", "Camisas", "Marca B", "S"),
	)

	list, err := uc.ListVariantProducts(context.Background(), admin,
		dto.ProductFilters{Name: "camisa", Brand: "marca b"}, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	assert.Equal(t, "p2", list.Items[0].ProductID)
}

func TestListVariantProducts_Paginacion1Based(t *testing.T) {
	uc, _ := newFixture(
		product("p1", brandAID, "Camisa 1", "Camisas", "Marca A", "S"),
		product("p2", brandAID, "Camisa 2", "Camisas", "Marca A", "S"),
		product("p3", brandAID, "Camisa 3", "Camisas", "Marca A", "S"),
	)

	page2, err := uc.ListVariantProducts(context.Background(), admin,
		dto.ProductFilters{}, dto.PageRequest{Page: 2, PageSize: 2})
	require.NoError(t, err)

	require.Len(t, page2.Items, 1, "la página 2 con tamaño 2 sobre 3 productos tiene 1 elemento")
	assert.Equal(t, "p3", page2.Items[0].ProductID)
	assert.Equal(t, 3, page2.Page.Total, "el total cuenta el conjunto filtrado completo")

	// Página fuera de rango: vacía, sin error.
	page9, err := uc.ListVariantProducts(context.Background(), admin,
		dto.ProductFilters{}, dto.PageRequest{Page: 9, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page9.Items)
	assert.Equal(t, 3, page9.Page.Total)
}

func TestListVariantProducts_BrandOwnerIgnoraFiltroDeMarcaDelCliente(t *testing.T) {
	uc, _ := newFixture(
		product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"),
		product("p2", brandBID, "Camisa Oxford", "Camisas", "Marca B", "S"),
	)

	// El owner de la marca A pide explícitamente la marca B: el alcance del
	// servidor prevalece y solo ve su propia marca.
	list, err := uc.ListVariantProducts(context.Background(), ownerA,
		dto.ProductFilters{Brand: "Marca B"}, dto.PageRequest{})
	require.NoError(t, err)

	require.Len(t, list.Items, 1)
	assert.Equal(t, "p1", list.Items[0].ProductID)
}

func TestListVariantProducts_BrandOwnerSinMarca_RetornaForbidden(t *testing.T) {
	uc, _ := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"))

	caller := appinventory.Caller{UserID: "u-x", Role: entity.RoleBrandOwner} // sin BrandID
	_, err := uc.ListVariantProducts(context.Background(), caller, dto.ProductFilters{}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// Un rol desconocido no hereda el alcance de admin: se rechaza igual que en
// UpdateStock.
func TestListVariantProducts_RolDesconocido_RetornaForbidden(t *testing.T) {
	uc, _ := newFixture(product("p1", brandAID, "Camisa Lino", "Camisas", "Marca A", "S"))

	caller := appinventory.Caller{UserID: "u-x", Role: "vendedor"}
	_, err := uc.ListVariantProducts(context.Background(), caller, dto.ProductFilters{}, dto.PageRequest{})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
