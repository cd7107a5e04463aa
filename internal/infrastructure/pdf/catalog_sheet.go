// Package pdf implementa la generación de la ficha de catálogo de un item
// category: cabecera con el dokumen y la jerarquía de clasificación, y una
// tabla con sus líneas de detalle (part number, nombres, cantidad y unidad).
package pdf

import (
	"fmt"

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

	"github.com/andriansp/epc-catalog-api/internal/domain/repository"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// CatalogSheetGenerator genera la ficha en PDF de un item category usando
// Maroto v2.
type CatalogSheetGenerator struct{}

// NewCatalogSheetGenerator construye el generador.
func NewCatalogSheetGenerator() *CatalogSheetGenerator { return &CatalogSheetGenerator{} }

// GenerateCatalogSheet genera el PDF y devuelve sus bytes.
func (g *CatalogSheetGenerator) GenerateCatalogSheet(ic *repository.ItemCategoryWithRelations) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Ficha de catálogo", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(ic))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(classificationRow(ic))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableDetailRows(ic.Details) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(ic.Details)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: nombre del item category (izq) y dokumen (der).
func headerRow(ic *repository.ItemCategoryWithRelations) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(deref(ic.NameEN, "(sin nombre)"), props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(deref(ic.NameCN, ""), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FICHA DE CATÁLOGO", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Dokumen: "+deref(ic.DokumenName, "—"), props.Text{
				Size: 9, Align: align.Right, Top: 8,
			}),
			text.New(ic.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// classificationRow: jerarquía resuelta master category / category / type category.
func classificationRow(ic *repository.ItemCategoryWithRelations) core.Row {
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CLASIFICACIÓN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Master: %s   |   Category: %s   |   Type: %s",
				deref(ic.Hierarchy.MasterCategoryNameEN, "—"),
				deref(ic.Hierarchy.CategoryNameEN, "—"),
				deref(ic.TypeCategoryNameEN, "—"),
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de detalles.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Part Number", 3, align.Left),
		h("Nombre (EN)", 4, align.Left),
		h("Nombre (CN)", 3, align.Left),
		h("Cant.", 1, align.Center),
		h("Unidad", 1, align.Center),
	)
}

// tableDetailRows: una fila por línea de detalle.
func tableDetailRows(details []repository.ItemCategoryDetailRow) []core.Row {
	result := make([]core.Row, 0, len(details))
	for i := range details {
		d := &details[i]
		qty := "—"
		if d.Quantity != nil {
			qty = fmt.Sprintf("%d", *d.Quantity)
		}
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(deref(d.PartNumber, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(deref(d.CatalogItemNameEN, "—"), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(3).Add(text.New(deref(d.CatalogItemNameCH, ""), props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(qty, props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(1).Add(text.New(deref(d.Unit, "—"), props.Text{Size: 8, Align: align.Center, Top: 1})),
		))
	}
	return result
}

// footerRow: total de líneas.
func footerRow(n int) core.Row {
	return row.New(8).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total de líneas: %d", n), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
