package hbtree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

func soloAndPairFixture() ([]model.Block, []model.SymGroup) {
	blocks := []model.Block{
		model.NewBlock("s0", 10, 4),
		model.NewBlock("a", 3, 3),
		model.NewBlock("b", 3, 3),
	}
	blocks[1].GID, blocks[2].GID = 0, 0
	groups := []model.SymGroup{
		{
			Name: "g0",
			Axis: model.Vertical,
			Pairs: []model.SymPair{
				{A: "a", B: "b", AID: 1, BID: 2},
			},
		},
	}
	return blocks, groups
}

func TestInitializeSeparatesSoloAndHier(t *testing.T) {
	blocks, groups := soloAndPairFixture()
	tree := &HbTree{}
	tree.Initialize(blocks, groups)

	assert.Equal(t, 2, tree.GetNumberNodes())
	assert.True(t, tree.IsSoloNode(0))
	assert.False(t, tree.IsSoloNode(1))
	require.NotNil(t, tree.GetIsland(0))
}

func TestPackAndGetAreaPlacesAllBlocks(t *testing.T) {
	blocks, groups := soloAndPairFixture()
	tree := &HbTree{}
	tree.Initialize(blocks, groups)

	area := tree.PackAndGetArea(blocks)
	assert.Greater(t, area, int64(0))

	for i := range blocks {
		assert.GreaterOrEqual(t, blocks[i].X, 0)
		assert.GreaterOrEqual(t, blocks[i].Y, 0)
	}

	// the pair must still be mirrored around its axis after translation
	// into global coordinates.
	a, b := blocks[1], blocks[2]
	assert.Equal(t, a.Y, b.Y)
}

func TestPackAndGetAreaNoOverlap(t *testing.T) {
	blocks, groups := soloAndPairFixture()
	tree := &HbTree{}
	tree.Initialize(blocks, groups)
	tree.PackAndGetArea(blocks)

	for i := 0; i < len(blocks); i++ {
		for j := i + 1; j < len(blocks); j++ {
			a, b := blocks[i], blocks[j]
			overlapX := a.X < b.X+b.RotatedWidth() && b.X < a.X+a.RotatedWidth()
			overlapY := a.Y < b.Y+b.RotatedHeight() && b.Y < a.Y+a.RotatedHeight()
			assert.False(t, overlapX && overlapY, "blocks %d and %d overlap", i, j)
		}
	}
}

func TestPackAndGetAreaShiftsIslandAxisWithTranslation(t *testing.T) {
	blocks, groups := soloAndPairFixture()
	tree := &HbTree{}
	tree.Initialize(blocks, groups)
	tree.PackAndGetArea(blocks)

	isl := tree.GetIsland(0)
	a, b := blocks[1], blocks[2]
	centerA := float64(a.X) + float64(a.RotatedWidth())/2
	centerB := float64(b.X) + float64(b.RotatedWidth())/2
	assert.InDelta(t, float64(isl.AxisPos()), (centerA+centerB)/2, 0.001)

	// a second pack must not double-shift the axis: it still has to match
	// the freshly translated blocks, not drift from repeated application.
	tree.PackAndGetArea(blocks)
	a, b = blocks[1], blocks[2]
	centerA = float64(a.X) + float64(a.RotatedWidth())/2
	centerB = float64(b.X) + float64(b.RotatedWidth())/2
	assert.InDelta(t, float64(isl.AxisPos()), (centerA+centerB)/2, 0.001)
}

func TestRotateNodeOnSoloFlipsBlock(t *testing.T) {
	blocks, groups := soloAndPairFixture()
	tree := &HbTree{}
	tree.Initialize(blocks, groups)

	before := blocks[0].Rotated
	tree.RotateNode(blocks, 0)
	assert.NotEqual(t, before, blocks[0].Rotated)
	tree.RotateNode(blocks, 0)
	assert.Equal(t, before, blocks[0].Rotated)
}

func TestSwapNodeIsSelfInverse(t *testing.T) {
	blocks, groups := soloAndPairFixture()
	tree := &HbTree{}
	tree.Initialize(blocks, groups)

	root := tree.Root()
	left, right := root.LChild, root.RChild

	tree.SwapNode(0, 1)
	tree.SwapNode(0, 1)

	assert.Equal(t, left, tree.Root().LChild)
	assert.Equal(t, right, tree.Root().RChild)
}
