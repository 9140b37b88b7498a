// Package pdf genera el comprobante imprimible de una salida por carrito.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Bodega + comprobante │  Código registro + Fecha    │
//	│  ───────────────────────────────────────────────────────── │
//	│  SOLICITANTE: nombre / área / CECO / SAP / OT               │
//	│  ───────────────────────────────────────────────────────── │
//	│  TABLA: Código | Material | Ubicación | Cant | Restante     │
//	│  ───────────────────────────────────────────────────────── │
//	│  TOTALES: materiales distintos / unidades retiradas        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

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

	"github.com/josehoe716-wq/App-bodega-final/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 15, Green: 76, Blue: 58}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// VoucherGenerator genera el comprobante PDF de una salida por carrito usando Maroto v2.
type VoucherGenerator struct {
	warehouseName string
}

// NewVoucherGenerator construye el generador.
func NewVoucherGenerator(warehouseName string) *VoucherGenerator {
	if warehouseName == "" {
		warehouseName = "Bodega"
	}
	return &VoucherGenerator{warehouseName: warehouseName}
}

// GenerateCartExitPDF genera el comprobante y devuelve sus bytes.
func (g *VoucherGenerator) GenerateCartExitPDF(_ context.Context, exit *entity.CartExit) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Comprobante de Salida "+exit.RegistryCode, true).
		WithAuthor(g.warehouseName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(exit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(requesterRow(exit))
	m.AddRows(destinationRow(exit))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableLineRows(exit.Materials) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(exit))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar comprobante: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la bodega (izq) y código de registro + fecha (der).
func (g *VoucherGenerator) headerRow(exit *entity.CartExit) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.warehouseName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Comprobante de salida de materiales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("CÓDIGO DE REGISTRO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(exit.RegistryCode, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+exit.ExitDate+" "+exit.ExitTime, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// requesterRow: datos del solicitante.
func requesterRow(exit *entity.CartExit) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("SOLICITANTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(exit.PersonName+" "+exit.PersonLastName, props.Text{
				Size: 9, Top: 6,
			}),
		),
	)
}

// destinationRow: área de destino y referencias opcionales.
func destinationRow(exit *entity.CartExit) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("DESTINO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Área: %s   |   CECO: %s   |   SAP: %s   |   OT: %s",
				exit.Area,
				nonEmpty(exit.Ceco, "—"),
				nonEmpty(exit.SapCode, "—"),
				nonEmpty(exit.WorkOrder, "—"),
			), props.Text{Size: 8, Top: 6, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 1,
		}))
	}
	return row.New(7).Add(
		h("Código", 2, align.Left),
		h("Material", 4, align.Left),
		h("Ubicación", 2, align.Left),
		h("Cantidad", 2, align.Right),
		h("Restante", 2, align.Right),
	)
}

func tableLineRows(materials []entity.CartExitMaterial) []core.Row {
	cell := func(value string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1}))
	}
	rows := make([]core.Row, 0, len(materials))
	for _, m := range materials {
		rows = append(rows, row.New(6).Add(
			cell(m.MaterialCode, 2, align.Left),
			cell(m.MaterialName, 4, align.Left),
			cell(m.MaterialLocation, 2, align.Left),
			cell(strconv.Itoa(m.Quantity)+" un", 2, align.Right),
			cell(strconv.Itoa(m.RemainingStock), 2, align.Right),
		))
	}
	return rows
}

func totalsRow(exit *entity.CartExit) core.Row {
	return row.New(10).Add(
		col.New(8),
		col.New(4).Add(
			text.New(fmt.Sprintf("Materiales distintos: %d", exit.TotalItems), props.Text{
				Size: 9, Align: align.Right, Top: 1,
			}),
			text.New(fmt.Sprintf("Unidades retiradas: %d", exit.TotalQuantity), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 6, Color: colorPrimary,
			}),
		),
	)
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
