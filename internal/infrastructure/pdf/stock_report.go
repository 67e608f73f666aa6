// Package pdf implementa el reporte de inventario por variantes en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Reporte de Inventario  │  Fecha de generación       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  Por producto:                                               │
//	│    Nombre | Marca | Categoría | Disponible | Estado          │
//	│    TABLA tallas: Talla | Stock | Vendido | Estado            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jcastano/moda-admin-api/internal/application/dto"
	appinventory "github.com/jcastano/moda-admin-api/internal/application/inventory"
)

var _ appinventory.StockReportGenerator = (*MarotoStockReportGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoStockReportGenerator implementa StockReportGenerator usando Maroto v2.
type MarotoStockReportGenerator struct{}

// NewMarotoStockReportGenerator construye el generador.
func NewMarotoStockReportGenerator() *MarotoStockReportGenerator { return &MarotoStockReportGenerator{} }

// GenerateStockReport genera el PDF y devuelve sus bytes.
func (g *MarotoStockReportGenerator) GenerateStockReport(_ context.Context, items []dto.VariantProductResponse, generatedAt time.Time) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	for _, item := range items {
		m.AddRows(productRow(item))
		m.AddRows(sizeHeaderRow())
		for _, size := range item.Sizes {
			m.AddRows(sizeRow(size))
		}
		m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(generatedAt time.Time) core.Row {
	return row.New(10).Add(
		col.New(8).Add(
			text.New("Reporte de Inventario por Variantes", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
		),
		col.New(4).Add(
			text.New(generatedAt.Format("2006-01-02 15:04"), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func productRow(item dto.VariantProductResponse) core.Row {
	summary := fmt.Sprintf("Disponible: %d  ·  Vendido: %d  ·  %s",
		item.Summary.Available, item.Summary.Sold, item.Summary.Status)
	return row.New(8).Add(
		col.New(5).Add(text.New(item.Name, props.Text{Size: 10, Style: fontstyle.Bold})),
		col.New(3).Add(text.New(item.Brand+" / "+item.Category, props.Text{Size: 8, Color: colorGray})),
		col.New(4).Add(text.New(summary, props.Text{Size: 8, Align: align.Right})),
	)
}

func sizeHeaderRow() core.Row {
	header := props.Text{Size: 8, Style: fontstyle.Bold, Color: colorGray}
	return row.New(5).Add(
		col.New(3).Add(text.New("Talla", header)),
		col.New(3).Add(text.New("Stock", header)),
		col.New(3).Add(text.New("Vendido", header)),
		col.New(3).Add(text.New("Estado", header)),
	)
}

func sizeRow(size dto.SizeStockView) core.Row {
	cell := props.Text{Size: 8}
	return row.New(5).Add(
		col.New(3).Add(text.New(size.Size, cell)),
		col.New(3).Add(text.New(fmt.Sprintf("%d", size.Stock), cell)),
		col.New(3).Add(text.New(fmt.Sprintf("%d", size.Sold), cell)),
		col.New(3).Add(text.New(size.Status, cell)),
	)
}
