// Package hbtree implements the Hierarchical B*-tree: the top-level
// packer that co-packs solo blocks with symmetry islands, treating each
// island as a single rigid rectangle sized to its bounding box.
package hbtree

import (
	"sort"

	"github.com/CGLemon/2025NCTU-placement/internal/bstree"
	"github.com/CGLemon/2025NCTU-placement/internal/island"
	"github.com/CGLemon/2025NCTU-placement/internal/model"
	"github.com/CGLemon/2025NCTU-placement/internal/move"
)

// HbTree packs every solo block and every symmetry island's bounding
// box into one B*-tree.
type HbTree struct {
	soloNodes []*bstree.Node
	hierNodes []*bstree.Node
	islands   []*island.Island
	tree      bstree.Tree
}

// Root exposes the global tree root, for move-leaf perturbations that
// only need to walk a tree.
func (t *HbTree) Root() *bstree.Node { return t.tree.Root }

// Initialize allocates one leaf node per solo block and one hierarchical
// node per symmetry group (backed by its own island.Island), then builds
// the initial balanced tree over all of them.
func (t *HbTree) Initialize(blocks []model.Block, groups []model.SymGroup) {
	for i, b := range blocks {
		if b.IsSolo() {
			t.soloNodes = append(t.soloNodes, bstree.NewNode(i))
		}
	}
	for i, g := range groups {
		t.hierNodes = append(t.hierNodes, bstree.NewNode(i))
		isl := island.New(g)
		isl.Initialize(blocks)
		t.islands = append(t.islands, isl)
	}
	t.UpdateNodes(blocks)
	t.buildInitialSolution()
}

// UpdateNodes refreshes every solo node's shape from its block, and every
// hierarchical node's shape from its island's current bounding box.
func (t *HbTree) UpdateNodes(blocks []model.Block) {
	for _, n := range t.soloNodes {
		b := blocks[n.BlockID]
		n.SetShape(b.RotatedWidth(), b.RotatedHeight())
	}
	for _, n := range t.hierNodes {
		isl := t.islands[n.BlockID]
		n.SetShape(isl.Width(), isl.Height())
	}
}

func (t *HbTree) buildInitialSolution() {
	sorted := make([]*bstree.Node, 0, len(t.soloNodes)+len(t.hierNodes))
	sorted = append(sorted, t.soloNodes...)
	sorted = append(sorted, t.hierNodes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width*sorted[i].Height > sorted[j].Width*sorted[j].Height
	})
	t.tree.Root = bstree.BuildBalanced(sorted)
}

// PackAndGetArea packs every island's interior, then packs the global
// tree treating each island as its bounding-box rectangle, then
// translates every island's interior blocks (and recentres its symmetry
// axis) by the offset the global pack assigned it. It places every solo
// block directly from its own node. Returns the bounding area of the
// whole placement.
func (t *HbTree) PackAndGetArea(blocks []model.Block) int64 {
	for _, isl := range t.islands {
		isl.Pack(blocks)
	}

	t.UpdateNodes(blocks)
	t.tree.Pack()

	for i, n := range t.hierNodes {
		dx, dy := n.X, n.Y
		for _, id := range t.islands[i].BlockIDs() {
			blocks[id].X += dx
			blocks[id].Y += dy
		}
		t.islands[i].ShiftAxis(dx, dy)
	}

	for _, n := range t.soloNodes {
		blocks[n.BlockID].X = n.X
		blocks[n.BlockID].Y = n.Y
	}

	return t.tree.Area()
}

// GetNumberNodes returns the number of top-level nodes: solo blocks plus
// symmetry islands.
func (t *HbTree) GetNumberNodes() int {
	return len(t.soloNodes) + len(t.hierNodes)
}

// IsSoloNode reports whether the idx'th node (in GetNode's indexing) is a
// solo block rather than a symmetry island.
func (t *HbTree) IsSoloNode(idx int) bool {
	return idx < len(t.soloNodes)
}

// GetNode returns the idx'th node, indexing solo blocks first and
// symmetry islands after.
func (t *HbTree) GetNode(idx int) *bstree.Node {
	if idx < len(t.soloNodes) {
		return t.soloNodes[idx]
	}
	idx -= len(t.soloNodes)
	if idx < len(t.hierNodes) {
		return t.hierNodes[idx]
	}
	return nil
}

// NumIslands returns how many symmetry islands this tree packs.
func (t *HbTree) NumIslands() int { return len(t.islands) }

// GetIsland returns the idx'th symmetry island, or nil if idx is out of
// range.
func (t *HbTree) GetIsland(idx int) *island.Island {
	if idx < 0 || idx >= len(t.islands) {
		return nil
	}
	return t.islands[idx]
}

// RotateNode flips the rotation of the idx'th node: a solo block's own
// rotation if it is a solo node, or the whole island's packing (via
// Mirror) if it is a symmetry island. Applying it twice undoes it.
func (t *HbTree) RotateNode(blocks []model.Block, idx int) {
	n := t.GetNode(idx)
	if n == nil {
		return
	}
	if t.IsSoloNode(idx) {
		blocks[n.BlockID].Rotated = !blocks[n.BlockID].Rotated
	} else {
		t.islands[n.BlockID].Mirror()
	}
}

// SwapNode exchanges the tree positions of the idx'th and jdx'th nodes.
// Applying it twice restores the original structure.
func (t *HbTree) SwapNode(srcIdx, dstIdx int) {
	src := t.GetNode(srcIdx)
	dst := t.GetNode(dstIdx)
	if src == nil || dst == nil {
		return
	}
	if t.tree.Root == src {
		t.tree.Root = dst
	} else if t.tree.Root == dst {
		t.tree.Root = src
	}
	move.SwapNodes(src, dst)
}
