// Package mapexport renders an overworld map as a printable PDF.
package mapexport

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf/v2"

	"github.com/samdwyer/questfield/internal/world"
)

const (
	pageW     = 842 // A4 landscape, points
	pageH     = 595
	margin    = 36
	headerH   = 40
	legendH   = 24
	titleSize = 16
	fontSize  = 8
)

type rgb struct{ r, g, b int }

var fieldColors = map[world.FieldKind]rgb{
	world.Grass:    {144, 200, 110},
	world.Forest:   {46, 110, 60},
	world.Mountain: {140, 110, 80},
	world.Water:    {70, 120, 200},
	world.Town:     {240, 200, 40},
	world.Castle:   {190, 40, 40},
}

var legend = []world.FieldKind{world.Grass, world.Forest, world.Mountain, world.Water, world.Town, world.Castle}

// Generate returns PDF bytes showing every cell of m as a colored square,
// with the spawn point outlined. Visited towns are drawn hollow.
func Generate(m *world.Map, title string) ([]byte, error) {
	if m == nil {
		return nil, fmt.Errorf("no map to export")
	}

	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.SetMargins(margin, margin, margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pdf.SetTextColor(30, 30, 30)
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetXY(margin, margin)
	pdf.CellFormat(pageW-2*margin, 18, title, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", fontSize)
	pdf.SetXY(margin, margin+20)
	pdf.CellFormat(pageW-2*margin, 10,
		fmt.Sprintf("%dx%d cells, %d towns, castle at (%d,%d)",
			m.Width, m.Height, len(m.Towns()), m.Castle().X, m.Castle().Y),
		"", 0, "L", false, 0, "")

	availW := float64(pageW - 2*margin)
	availH := float64(pageH - 2*margin - headerH - legendH)
	cell := min(availW/float64(m.Width), availH/float64(m.Height))
	left := float64(margin)
	top := float64(margin + headerH)

	pdf.SetLineWidth(0.6)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			f := m.At(world.Coord{X: x, Y: y})
			c := fieldColors[f.Kind]
			px := left + float64(x)*cell
			py := top + float64(y)*cell
			if f.Kind == world.Town && f.Visited {
				pdf.SetDrawColor(c.r, c.g, c.b)
				pdf.Rect(px, py, cell, cell, "D")
				continue
			}
			pdf.SetFillColor(c.r, c.g, c.b)
			pdf.Rect(px, py, cell, cell, "F")
		}
	}

	// spawn
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(1.2)
	pdf.Rect(left+float64(world.Start.X)*cell, top+float64(world.Start.Y)*cell, cell, cell, "D")

	pdf.SetDrawColor(60, 60, 60)
	pdf.SetLineWidth(1)
	pdf.Rect(left, top, cell*float64(m.Width), cell*float64(m.Height), "D")

	drawLegend(pdf, left, top+cell*float64(m.Height)+10)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawLegend(pdf *gofpdf.Fpdf, x, y float64) {
	const swatch = 8.0
	pdf.SetFont("Helvetica", "", fontSize)
	for _, kind := range legend {
		c := fieldColors[kind]
		pdf.SetFillColor(c.r, c.g, c.b)
		pdf.Rect(x, y, swatch, swatch, "F")
		pdf.SetXY(x+swatch+3, y)
		pdf.CellFormat(50, swatch, kind.String(), "", 0, "L", false, 0, "")
		x += swatch + 60
	}
}
