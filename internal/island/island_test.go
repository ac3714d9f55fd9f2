package island

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

func groupOnePairVertical() model.SymGroup {
	return model.SymGroup{
		Name: "g0",
		Axis: model.Vertical,
		Pairs: []model.SymPair{
			{A: "a", B: "b", AID: 0, BID: 1},
		},
	}
}

func TestInitializeCountsRepresentatives(t *testing.T) {
	blocks := []model.Block{
		model.NewBlock("a", 4, 2),
		model.NewBlock("b", 4, 2),
	}
	blocks[0].GID, blocks[1].GID = 0, 0

	isl := New(groupOnePairVertical())
	isl.Initialize(blocks)

	assert.Equal(t, 1, isl.GetNumberNodes())
	assert.Equal(t, 1, isl.GetNumberPairRepresentNodes())
	require.NotNil(t, isl.GetNode(0))
	assert.Equal(t, 1, isl.GetNode(0).BlockID) // rep is always the "b" member
}

func TestPackMirrorsPairAcrossVerticalAxis(t *testing.T) {
	blocks := []model.Block{
		model.NewBlock("a", 4, 2),
		model.NewBlock("b", 4, 2),
	}
	blocks[0].GID, blocks[1].GID = 0, 0

	isl := New(groupOnePairVertical())
	isl.Initialize(blocks)
	isl.Pack(blocks)

	a, b := blocks[0], blocks[1]
	assert.Equal(t, a.Y, b.Y)
	// mirrored across the axis: centers are equidistant from axisPos
	axisPos := isl.AxisPos()
	centerA := float64(a.X) + float64(a.RotatedWidth())/2
	centerB := float64(b.X) + float64(b.RotatedWidth())/2
	assert.InDelta(t, float64(axisPos), (centerA+centerB)/2, 0.001)
	// bbox starts at the origin after translation
	assert.Equal(t, 0, min(a.X, b.X))
	assert.Equal(t, 0, min(a.Y, b.Y))
}

func TestPackCentersSelfSymmetricBlockOnAxis(t *testing.T) {
	group := model.SymGroup{
		Name: "g1",
		Axis: model.Vertical,
		Selfs: []model.SymSelf{{A: "s", ID: 0}},
	}
	blocks := []model.Block{model.NewBlock("s", 6, 3)}
	blocks[0].GID = 0

	isl := New(group)
	isl.Initialize(blocks)
	isl.Pack(blocks)

	s := blocks[0]
	centerX := float64(s.X) + float64(s.RotatedWidth())/2
	assert.InDelta(t, float64(isl.AxisPos()), centerX, 0.001)
}

func TestRotateNodeIsSelfInverse(t *testing.T) {
	blocks := []model.Block{
		model.NewBlock("a", 4, 2),
		model.NewBlock("b", 4, 2),
	}
	blocks[0].GID, blocks[1].GID = 0, 0

	isl := New(groupOnePairVertical())
	isl.Initialize(blocks)

	before := blocks[1].Rotated
	isl.RotateNode(blocks, 0)
	assert.NotEqual(t, before, blocks[1].Rotated)
	isl.RotateNode(blocks, 0)
	assert.Equal(t, before, blocks[1].Rotated)
}



func TestShiftAxisMovesVerticalAxisByDx(t *testing.T) {
	blocks := []model.Block{
		model.NewBlock("a", 4, 2),
		model.NewBlock("b", 4, 2),
	}
	blocks[0].GID, blocks[1].GID = 0, 0

	isl := New(groupOnePairVertical())
	isl.Initialize(blocks)
	isl.Pack(blocks)

	before := isl.AxisPos()
	isl.ShiftAxis(7, 3)
	assert.Equal(t, before+7, isl.AxisPos())
}

func TestShiftAxisMovesHorizontalAxisByDy(t *testing.T) {
	group := model.SymGroup{
		Name: "g1",
		Axis: model.Horizontal,
		Selfs: []model.SymSelf{{A: "s", ID: 0}},
	}
	blocks := []model.Block{model.NewBlock("s", 6, 3)}
	blocks[0].GID = 0

	isl := New(group)
	isl.Initialize(blocks)
	isl.Pack(blocks)

	before := isl.AxisPos()
	isl.ShiftAxis(7, 3)
	assert.Equal(t, before+3, isl.AxisPos())
}

func TestMirrorIsSelfInverse(t *testing.T) {
	blocks := []model.Block{
		model.NewBlock("a", 4, 2),
		model.NewBlock("b", 4, 2),
		model.NewBlock("c", 1, 1),
		model.NewBlock("d", 1, 1),
	}
	group := model.SymGroup{
		Name: "g2",
		Axis: model.Vertical,
		Pairs: []model.SymPair{
			{A: "a", B: "b", AID: 0, BID: 1},
			{A: "c", B: "d", AID: 2, BID: 3},
		},
	}
	for i := range blocks {
		blocks[i].GID = 0
	}

	isl := New(group)
	isl.Initialize(blocks)
	root := isl.Root()
	left, right := root.LChild, root.RChild

	isl.Mirror()
	assert.Equal(t, left, isl.Root().RChild)
	assert.Equal(t, right, isl.Root().LChild)

	isl.Mirror()
	assert.Equal(t, left, isl.Root().LChild)
	assert.Equal(t, right, isl.Root().RChild)
}
