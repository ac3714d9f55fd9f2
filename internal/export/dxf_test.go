package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

func TestExportDXFCreatesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.dxf")

	require.NoError(t, ExportDXF(path, sampleReport()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestExportDXFEmptyBlocksErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.dxf")
	err := ExportDXF(path, &model.RunReport{})
	assert.Error(t, err)
}
