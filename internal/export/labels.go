package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// RunLabelInfo holds the data encoded into a run's QR label.
type RunLabelInfo struct {
	RunID     string `json:"run_id"`
	Area      int64  `json:"area"`
	NumBlocks int    `json:"num_blocks"`
	NumGroups int    `json:"num_groups"`
	Seed      uint64 `json:"seed"`
}

// Single-label layout constants, the same cell dimensions the original
// Avery 5160 sheet used per label.
const (
	labelWidth   = 66.7 // mm
	labelHeight  = 25.4 // mm
	qrSize       = 20.0 // mm
	labelPadding = 2.0  // mm
)

// ExportRunLabel generates a one-label PDF identifying a single
// annealer run: a QR code encoding RunLabelInfo, plus the run id, area,
// and block and group counts in plain text (the seed is only in the QR
// code), meant to be affixed to a printed placement report.
func ExportRunLabel(path string, report *model.RunReport) error {
	if len(report.Blocks) == 0 {
		return fmt.Errorf("no blocks to label")
	}

	info := RunLabelInfo{
		RunID:     report.RunID.String(),
		Area:      report.Area,
		NumBlocks: len(report.Blocks),
		NumGroups: len(report.Groups),
		Seed:      report.Seed,
	}

	pdf := fpdf.New("P", "mm", "A6", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	if err := renderRunLabel(pdf, 5, 5, info); err != nil {
		return err
	}

	return pdf.OutputFileAndClose(path)
}

func renderRunLabel(pdf *fpdf.Fpdf, x, y float64, info RunLabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("marshal run label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.RunID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, info.RunID, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("Area %d", info.Area), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	pdf.CellFormat(textW, 3, fmt.Sprintf("%d blocks, %d groups", info.NumBlocks, info.NumGroups), "", 1, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	return nil
}
