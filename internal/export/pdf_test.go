package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

func samplePlacement() []model.Block {
	a := model.NewBlock("m1", 10, 10)
	a.X, a.Y = 0, 0
	b := model.NewBlock("m2", 10, 10)
	b.X, b.Y, b.Rotated = 10, 0, true
	s := model.NewBlock("s0", 5, 5)
	s.X, s.Y = 0, 10
	return []model.Block{a, b, s}
}

func sampleReport() *model.RunReport {
	return &model.RunReport{
		RunID:  uuid.New(),
		Area:   200,
		Blocks: samplePlacement(),
		Groups: []model.SymGroup{{Name: "g1", Axis: model.Vertical}},
		Seed:   42,
	}
}

func TestExportPDFCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.pdf")

	require.NoError(t, ExportPDF(path, sampleReport()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(500))
}

func TestExportPDFEmptyBlocksErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.pdf")
	err := ExportPDF(path, &model.RunReport{})
	assert.Error(t, err)
}

func TestLabelFontSize(t *testing.T) {
	tests := []struct {
		w, h float64
		want float64
	}{
		{50, 50, 8},
		{30, 25, 7},
		{10, 15, 6},
	}
	for _, tt := range tests {
		got := labelFontSize(tt.w, tt.h)
		assert.Equal(t, tt.want, got)
	}
}

func TestBoundingBox(t *testing.T) {
	blocks := samplePlacement()
	w, h := boundingBox(blocks)
	assert.Equal(t, float64(20), w)
	assert.Equal(t, float64(15), h)
}
