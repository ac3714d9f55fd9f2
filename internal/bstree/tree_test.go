package bstree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackSingleNode(t *testing.T) {
	n := NewNode(0)
	n.SetShape(10, 20)
	tree := Tree{Root: n}

	w, h := tree.Pack()
	assert.Equal(t, 10, w)
	assert.Equal(t, 20, h)
	assert.Equal(t, 0, n.X)
	assert.Equal(t, 0, n.Y)
}

func TestPackLeftChildIsRightNeighbor(t *testing.T) {
	root := NewNode(0)
	root.SetShape(10, 10)
	left := NewNode(1)
	left.SetShape(5, 5)
	root.LChild = left
	left.Parent = root

	tree := Tree{Root: root}
	tree.Pack()

	assert.Equal(t, root.X+root.Width, left.X)
	assert.Equal(t, 0, left.Y)
}

func TestPackRightChildIsAboveNeighbor(t *testing.T) {
	root := NewNode(0)
	root.SetShape(10, 10)
	right := NewNode(1)
	right.SetShape(5, 5)
	root.RChild = right
	right.Parent = root

	tree := Tree{Root: root}
	tree.Pack()

	assert.Equal(t, root.X, right.X)
	require.GreaterOrEqual(t, right.Y, root.Y+root.Height)
}

func TestPackNoOverlap(t *testing.T) {
	nodes := []*Node{NewNode(0), NewNode(1), NewNode(2), NewNode(3)}
	shapes := [][2]int{{10, 10}, {5, 15}, {8, 8}, {12, 4}}
	for i, n := range nodes {
		n.SetShape(shapes[i][0], shapes[i][1])
	}
	root := BuildBalanced(nodes)
	tree := Tree{Root: root}
	tree.Pack()

	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			overlapX := a.X < b.X+b.Width && b.X < a.X+a.Width
			overlapY := a.Y < b.Y+b.Height && b.Y < a.Y+a.Height
			assert.False(t, overlapX && overlapY, "nodes %d and %d overlap", i, j)
		}
	}

	touchesXZero, touchesYZero := false, false
	for _, n := range nodes {
		assert.GreaterOrEqual(t, n.X, 0)
		assert.GreaterOrEqual(t, n.Y, 0)
		if n.X == 0 {
			touchesXZero = true
		}
		if n.Y == 0 {
			touchesYZero = true
		}
	}
	assert.True(t, touchesXZero)
	assert.True(t, touchesYZero)
}

func TestBuildBalancedIsDeterministic(t *testing.T) {
	nodes := []*Node{NewNode(0), NewNode(1), NewNode(2)}
	for _, n := range nodes {
		n.SetShape(1, 1)
	}
	root := BuildBalanced(nodes)
	require.NotNil(t, root)
	assert.Equal(t, nodes[1], root)
	assert.Equal(t, nodes[0], root.LChild)
	assert.Equal(t, nodes[2], root.RChild)
}
