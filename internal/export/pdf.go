// Package export renders the annealer's best placement to the report
// formats this family of tools has always produced: a one-page PDF
// diagram, a DXF outline file, and a tabular spreadsheet.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// blockColor represents an RGB color for a placed block.
type blockColor struct {
	R, G, B int
}

// blockColors cycles through a fixed palette, one entry per block, the
// same small cycling palette the original floorplan renderer used.
var blockColors = []blockColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 20.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the best placement found by the annealer to a
// one-page PDF: a floorplan diagram scaled to fit the page, followed by
// a legend of every placed block.
func ExportPDF(path string, report *model.RunReport) error {
	if len(report.Blocks) == 0 {
		return fmt.Errorf("no blocks to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	renderFloorplanPage(pdf, report.Area, report.Blocks, report.Groups)

	return pdf.OutputFileAndClose(path)
}

func boundingBox(blocks []model.Block) (w, h float64) {
	maxX, maxY := 0, 0
	for _, b := range blocks {
		if x := b.X + b.RotatedWidth(); x > maxX {
			maxX = x
		}
		if y := b.Y + b.RotatedHeight(); y > maxY {
			maxY = y
		}
	}
	return float64(maxX), float64(maxY)
}

// renderFloorplanPage draws the placement on the current PDF page.
func renderFloorplanPage(pdf *fpdf.Fpdf, area int64, blocks []model.Block, groups []model.SymGroup) {
	boardW, boardH := boundingBox(blocks)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Placement (%.0f x %.0f, area %d)", boardW, boardH, area)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Blocks: %d | Symmetry groups: %d", len(blocks), len(groups))
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - statsHeight

	scaleX := drawWidth / math.Max(boardW, 1)
	scaleY := drawHeight / math.Max(boardH, 1)
	scale := math.Min(scaleX, scaleY)

	canvasW := boardW * scale
	canvasH := boardH * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	pdf.SetFillColor(245, 245, 245)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	for i, b := range blocks {
		col := blockColors[i%len(blockColors)]
		bw := float64(b.RotatedWidth()) * scale
		bh := float64(b.RotatedHeight()) * scale
		bx := offsetX + float64(b.X)*scale
		// PDF y grows downward; flip so the block's packer-space origin
		// (bottom-left) renders at the bottom of the page.
		by := offsetY + canvasH - float64(b.Y)*scale - bh

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.SetDrawColor(30, 30, 30)
		pdf.SetLineWidth(0.3)
		pdf.Rect(bx, by, bw, bh, "FD")

		if bw > 12 && bh > 6 {
			pdf.SetFont("Helvetica", "", labelFontSize(bw, bh))
			pdf.SetTextColor(0, 0, 0)
			labelW := pdf.GetStringWidth(b.Name)
			if labelW < bw-2 {
				pdf.SetXY(bx+(bw-labelW)/2, by+bh/2-2)
				pdf.CellFormat(labelW, 4, b.Name, "", 0, "C", false, 0, "")
			}
		}
	}

	drawDimensionAnnotations(pdf, boardW, boardH, scale, offsetX, offsetY, canvasW, canvasH)
	drawBlockLegend(pdf, blocks, offsetY+canvasH+5)
}

// drawDimensionAnnotations adds width and height labels outside the
// placement rectangle.
func drawDimensionAnnotations(pdf *fpdf.Fpdf, boardW, boardH, scale, offsetX, offsetY, canvasW, canvasH float64) {
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(80, 80, 80)

	widthLabel := fmt.Sprintf("%.0f", boardW)
	wLabelW := pdf.GetStringWidth(widthLabel)
	pdf.SetXY(offsetX+(canvasW-wLabelW)/2, offsetY+canvasH+1)
	pdf.CellFormat(wLabelW, 4, widthLabel, "", 0, "C", false, 0, "")

	heightLabel := fmt.Sprintf("%.0f", boardH)
	pdf.TransformBegin()
	pdf.TransformRotate(90, offsetX-3, offsetY+canvasH/2)
	hLabelW := pdf.GetStringWidth(heightLabel)
	pdf.SetXY(offsetX-3-hLabelW/2, offsetY+canvasH/2-2)
	pdf.CellFormat(hLabelW, 4, heightLabel, "", 0, "C", false, 0, "")
	pdf.TransformEnd()

	pdf.SetTextColor(0, 0, 0)
}

// drawBlockLegend renders a compact legend of placed blocks.
func drawBlockLegend(pdf *fpdf.Fpdf, blocks []model.Block, startY float64) {
	if len(blocks) == 0 {
		return
	}

	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(marginLeft, startY)
	pdf.CellFormat(30, 4, "Blocks:", "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	xPos := marginLeft + 20
	maxX := pageWidth - marginRight

	for i, b := range blocks {
		col := blockColors[i%len(blockColors)]
		label := fmt.Sprintf("%s (%dx%d)", b.Name, b.RotatedWidth(), b.RotatedHeight())
		if b.Rotated {
			label += " R"
		}
		labelW := pdf.GetStringWidth(label) + 6

		if xPos+labelW > maxX {
			startY += 5
			xPos = marginLeft
		}

		pdf.SetFillColor(col.R, col.G, col.B)
		pdf.Rect(xPos, startY+0.5, 3, 3, "F")

		pdf.SetXY(xPos+4, startY)
		pdf.CellFormat(labelW-4, 4, label, "", 0, "L", false, 0, "")

		xPos += labelW + 2
	}
}

// labelFontSize picks a readable font size for a rectangle of the given
// on-page dimensions.
func labelFontSize(w, h float64) float64 {
	minDim := math.Min(w, h)
	switch {
	case minDim > 40:
		return 8
	case minDim > 20:
		return 7
	default:
		return 6
	}
}
