package ioformat

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

func TestParseInputBasic(t *testing.T) {
	input := `
NumHardBlocks 3
HardBlock m1 10 10
HardBlock m2 10 10
HardBlock s0 5 5
NumSymGroups 1
SymGroup g1 1
SymPair m1 m2
`
	blocks, groups, err := ParseInput(strings.NewReader(input), model.Vertical)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	require.Len(t, groups, 1)

	assert.Equal(t, "m1", blocks[0].Name)
	assert.Equal(t, 10, blocks[0].W)
	assert.Equal(t, model.Vertical, groups[0].Axis)
	require.Len(t, groups[0].Pairs, 1)
	assert.Equal(t, 0, groups[0].Pairs[0].AID)
	assert.Equal(t, 1, groups[0].Pairs[0].BID)
	assert.Equal(t, -1, blocks[2].GID)
	assert.Equal(t, 0, blocks[0].GID)
}

func TestParseInputHonorsExplicitAxis(t *testing.T) {
	input := `
NumHardBlocks 1
HardBlock s 20 10
NumSymGroups 1
SymGroup g1 1 Axis H
SymSelf s
`
	_, groups, err := ParseInput(strings.NewReader(input), model.Vertical)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, model.Horizontal, groups[0].Axis)
}

func TestParseInputDefaultsToVerticalWithoutAxisToken(t *testing.T) {
	input := `
NumHardBlocks 1
HardBlock s 20 10
NumSymGroups 1
SymGroup g1 1
SymSelf s
`
	_, groups, err := ParseInput(strings.NewReader(input), model.Vertical)
	require.NoError(t, err)
	assert.Equal(t, model.Vertical, groups[0].Axis)
}

func TestParseInputUnknownBlockReferenceIsFatal(t *testing.T) {
	input := `
NumHardBlocks 1
HardBlock m1 10 10
NumSymGroups 1
SymGroup g1 1
SymPair m1 ghost
`
	_, _, err := ParseInput(strings.NewReader(input), model.Vertical)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ghost")
}

func TestParseInputMalformedHeaderIsFatal(t *testing.T) {
	input := `NumBlocks 3`
	_, _, err := ParseInput(strings.NewReader(input), model.Vertical)
	require.Error(t, err)
}

func TestParseInputEmptyPlacementSkipsSymGroups(t *testing.T) {
	input := `NumHardBlocks 0`
	blocks, groups, err := ParseInput(strings.NewReader(input), model.Vertical)
	require.NoError(t, err)
	assert.Empty(t, blocks)
	assert.Empty(t, groups)
}

func TestWriteOutputFormat(t *testing.T) {
	blocks := []model.Block{
		model.NewBlock("m1", 10, 10),
		model.NewBlock("m2", 10, 10),
	}
	blocks[0].X, blocks[0].Y = 0, 0
	blocks[1].X, blocks[1].Y, blocks[1].Rotated = 10, 0, true

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, 200, blocks))

	want := "Area 200\n\nNumHardBlocks 2\nm1 0 0 0\nm2 10 0 1\n"
	assert.Equal(t, want, buf.String())
}

func TestParseWriteRoundTripsThroughRealFormat(t *testing.T) {
	input := `
NumHardBlocks 2
HardBlock m1 10 10
HardBlock m2 10 10
NumSymGroups 1
SymGroup g1 1
SymPair m1 m2
`
	blocks, _, err := ParseInput(strings.NewReader(input), model.Vertical)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteOutput(&buf, 200, blocks))
	assert.True(t, strings.HasPrefix(buf.String(), "Area 200\n\nNumHardBlocks 2\n"))
}
