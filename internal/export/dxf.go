package export

import (
	"fmt"

	"github.com/yofu/dxf"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// ExportDXF writes one closed rectangle per placed block to path, the
// write-side counterpart of the DXF importer this family of tools also
// carries: that importer chains LINE entities back into outlines, this
// emits exactly those outlines in the first place, one per block.
func ExportDXF(path string, report *model.RunReport) error {
	if len(report.Blocks) == 0 {
		return fmt.Errorf("no blocks to export")
	}

	d := dxf.NewDrawing()

	for _, b := range report.Blocks {
		x0, y0 := float64(b.X), float64(b.Y)
		x1, y1 := x0+float64(b.RotatedWidth()), y0+float64(b.RotatedHeight())

		d.Line(x0, y0, 0, x1, y0, 0)
		d.Line(x1, y0, 0, x1, y1, 0)
		d.Line(x1, y1, 0, x0, y1, 0)
		d.Line(x0, y1, 0, x0, y0, 0)
	}

	return d.SaveAs(path)
}
