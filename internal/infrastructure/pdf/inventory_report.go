// Package pdf genera el relatorio de inventario en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Produtos | Estoque baixo | Valor do inventário    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: ID | Produto | Categoria | Un. | Preço | Estoque |  │
//	│         Subtotal (filas con estoque bajo en rojo)           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

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
	"github.com/shopspring/decimal"

	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/application/analytics"
	"github.com/Thiago-Magarotto-Sernaglia/TrabalhoFinalEngenhariaSoftware2/internal/domain/entity"
)

var _ analytics.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa analytics.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(_ context.Context, report analytics.InventoryReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Relatório de inventário", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableRows(report)...)

	if len(report.Products) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("Nenhum produto cadastrado.", props.Text{Size: 9, Align: align.Center, Color: colorGray, Top: 3}),
		)))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report analytics.InventoryReport) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("RELATÓRIO DE INVENTÁRIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em: "+report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 4, Color: colorGray,
			}),
		),
	)
}

func summaryRow(report analytics.InventoryReport) core.Row {
	cell := func(label, value string, c *props.Color) core.Col {
		return col.New(4).Add(
			text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
			text.New(value, props.Text{Style: fontstyle.Bold, Size: 12, Color: c, Top: 6, Align: align.Center}),
		)
	}
	return row.New(16).Add(
		cell("Produtos", fmt.Sprint(report.Stats.TotalProducts), colorPrimary),
		cell(fmt.Sprintf("Estoque baixo (< %d)", report.LowStockThreshold), fmt.Sprint(report.Stats.LowStock), colorAlert),
		cell("Valor do inventário", formatMoney(report.Stats.InventoryValue), colorPrimary),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("ID", 1, align.Center),
		h("Produto", 3, align.Left),
		h("Categoria", 2, align.Left),
		h("Un.", 1, align.Center),
		h("Preço", 2, align.Right),
		h("Estoque", 1, align.Center),
		h("Subtotal", 2, align.Right),
	)
}

// tableRows una fila por producto; estoque bajo el umbral en rojo.
func tableRows(report analytics.InventoryReport) []core.Row {
	result := make([]core.Row, 0, len(report.Products))
	for _, p := range report.Products {
		var c *props.Color
		if p.Stock < report.LowStockThreshold {
			c = colorAlert
		}
		cell := func(s string, size int, a align.Type) core.Col {
			return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1, Color: c}))
		}
		subtotal := p.Price.Mul(decimal.NewFromInt(int64(p.Stock)))
		result = append(result, row.New(7).Add(
			cell(fmt.Sprint(p.ID), 1, align.Center),
			cell(p.Name, 3, align.Left),
			cell(categoryName(p), 2, align.Left),
			cell(p.Unit, 1, align.Center),
			cell(formatMoney(p.Price), 2, align.Right),
			cell(fmt.Sprint(p.Stock), 1, align.Center),
			cell(formatMoney(subtotal), 2, align.Right),
		))
	}
	return result
}

// ── helpers ───────────────────────────────────────────────────────────────────

func categoryName(p *entity.Product) string {
	if p.CategoryName != nil && *p.CategoryName != "" {
		return *p.CategoryName
	}
	return "—"
}

// formatMoney formato BRL: puntos de miles y coma decimal.
// Ej: 1234.5 → "R$ 1.234,50", 0 → "R$ 0,00"
func formatMoney(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac, _ := strings.Cut(s, ".")

	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, '.')
		}
		buf = append(buf, c)
	}
	return sign + "R$ " + string(buf) + "," + frac
}
