// Package island implements the ASF-island: an area-based
// symmetry-feasible packing of one symmetry group. Only representative
// halves are ever packed, the paired member's "b" side, and half of a
// self-symmetric block's own shape, and every mate coordinate is
// written back by closed-form reflection once the representatives have
// a placement, so the packer itself never has to reason about symmetry
// at all.
package island

import (
	"sort"

	"github.com/CGLemon/2025NCTU-placement/internal/bstree"
	"github.com/CGLemon/2025NCTU-placement/internal/model"
	"github.com/CGLemon/2025NCTU-placement/internal/move"
)

// Island packs a single model.SymGroup.
type Island struct {
	group model.SymGroup

	pairReps []*bstree.Node
	selfReps []*bstree.Node
	tree     bstree.Tree

	blockIDs []int
	pairByB  map[int]model.SymPair
	selfByID map[int]model.SymSelf

	bboxW, bboxH int
	axisPos      int
}

// New allocates an island for group. Call Initialize before packing.
func New(group model.SymGroup) *Island {
	return &Island{
		group:    group,
		pairByB:  make(map[int]model.SymPair, len(group.Pairs)),
		selfByID: make(map[int]model.SymSelf, len(group.Selfs)),
	}
}

// Root exposes the island's internal tree root, for move-leaf perturbations
// that only need to walk a tree, not know which kind it is.
func (isl *Island) Root() *bstree.Node { return isl.tree.Root }

// Initialize builds one representative node per pair (the "b" member) and
// per self-symmetric block, then constructs the initial tree: a balanced
// tree over the pair representatives, with the self representatives
// spliced onto the axis-opposing spine so recentring them onto the axis
// during Pack never overlaps the rest of the packing.
func (isl *Island) Initialize(blocks []model.Block) {
	if len(isl.pairReps) > 0 || len(isl.selfReps) > 0 {
		return
	}
	for _, p := range isl.group.Pairs {
		n := bstree.NewNode(p.BID)
		isl.pairReps = append(isl.pairReps, n)
		isl.blockIDs = append(isl.blockIDs, p.AID, p.BID)
		isl.pairByB[p.BID] = p
	}
	for _, s := range isl.group.Selfs {
		n := bstree.NewNode(s.ID)
		isl.selfReps = append(isl.selfReps, n)
		isl.blockIDs = append(isl.blockIDs, s.ID)
		isl.selfByID[s.ID] = s
	}
	isl.UpdateNodes(blocks)
	isl.buildInitialSolution()
}

// UpdateNodes refreshes every representative node's shape from the
// current (possibly rotated) block shapes. Self-representatives are half
// of their block's rotated shape along the symmetry axis.
func (isl *Island) UpdateNodes(blocks []model.Block) {
	for _, n := range isl.pairReps {
		b := blocks[n.BlockID]
		n.SetShape(b.RotatedWidth(), b.RotatedHeight())
	}
	for _, n := range isl.selfReps {
		b := blocks[n.BlockID]
		w, h := b.RotatedWidth(), b.RotatedHeight()
		if isl.group.Axis == model.Vertical {
			w /= 2
		} else {
			h /= 2
		}
		n.SetShape(w, h)
	}
}

// buildInitialSolution builds a balanced tree over the pair
// representatives (sorted by descending area, same tie-break the packer
// uses everywhere), then walks the axis-opposing spine of that tree and
// chains every self representative onto its end: the right spine for a
// vertical axis, the left spine for a horizontal one. A self
// representative recentred onto the axis only ever grows in the
// direction that spine already extends, so it can never collide with a
// pair representative's mate.
func (isl *Island) buildInitialSolution() {
	sorted := append([]*bstree.Node(nil), isl.pairReps...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Width*sorted[i].Height > sorted[j].Width*sorted[j].Height
	})
	root := bstree.BuildBalanced(sorted)

	for _, s := range isl.selfReps {
		s.LChild, s.RChild = nil, nil
		if root == nil {
			root = s
			continue
		}
		if isl.group.Axis == model.Vertical {
			cur := root
			for cur.RChild != nil {
				cur = cur.RChild
			}
			cur.RChild = s
			s.Parent = cur
		} else {
			cur := root
			for cur.LChild != nil {
				cur = cur.LChild
			}
			cur.LChild = s
			s.Parent = cur
		}
	}
	isl.tree.Root = root
}

// Pack packs the island's representatives, mirrors every mate and
// self-symmetric block into place by formula, then translates the whole
// island so its bounding box starts at (0, 0). It updates every block
// this island touches (both pair members, and every self-symmetric
// block) in place.
func (isl *Island) Pack(blocks []model.Block) {
	isl.UpdateNodes(blocks)
	isl.tree.Pack()

	const maxI = int(^uint(0) >> 1)
	minX, minY := maxI, maxI
	maxX, maxY := -maxI-1, -maxI-1
	extend := func(x, y, w, h int) {
		if x < minX {
			minX = x
		}
		if y < minY {
			minY = y
		}
		if x+w > maxX {
			maxX = x + w
		}
		if y+h > maxY {
			maxY = y + h
		}
	}

	for _, n := range isl.tree.Preorder() {
		rep := &blocks[n.BlockID]
		rep.X, rep.Y = n.X, n.Y

		if p, ok := isl.pairByB[n.BlockID]; ok {
			mate := &blocks[p.AID]
			mate.Rotated = rep.Rotated
			if isl.group.Axis == model.Vertical {
				mate.X = 2*isl.axisPos - rep.X - rep.RotatedWidth()
				mate.Y = rep.Y
			} else {
				mate.X = rep.X
				mate.Y = 2*isl.axisPos - rep.Y - rep.RotatedHeight()
			}
			extend(mate.X, mate.Y, mate.RotatedWidth(), mate.RotatedHeight())
		}

		if _, ok := isl.selfByID[n.BlockID]; ok {
			if isl.group.Axis == model.Vertical {
				rep.X = isl.axisPos - rep.RotatedWidth()/2
			} else {
				rep.Y = isl.axisPos - rep.RotatedHeight()/2
			}
		}

		extend(rep.X, rep.Y, rep.RotatedWidth(), rep.RotatedHeight())
	}

	dx, dy := -minX, -minY
	for _, id := range isl.blockIDs {
		blocks[id].X += dx
		blocks[id].Y += dy
	}
	isl.bboxW = maxX - minX
	isl.bboxH = maxY - minY

	if isl.group.Axis == model.Vertical {
		isl.axisPos += dx
	} else {
		isl.axisPos += dy
	}
}

// Width and Height return the island's current bounding box, valid after
// a call to Pack.
func (isl *Island) Width() int  { return isl.bboxW }
func (isl *Island) Height() int { return isl.bboxH }

// AxisPos returns the symmetry axis's current coordinate (x for a
// vertical axis, y for horizontal), tracked across successive packs.
func (isl *Island) AxisPos() int { return isl.axisPos }

// ShiftAxis moves the symmetry axis's tracked coordinate by dx (vertical
// axis) or dy (horizontal axis), matching the translation an enclosing
// packer applies to every block this island places so the axis stays
// correct for the next Pack's mirror formula.
func (isl *Island) ShiftAxis(dx, dy int) {
	if isl.group.Axis == model.Vertical {
		isl.axisPos += dx
	} else {
		isl.axisPos += dy
	}
}

// BlockIDs returns every block id this island places, including both
// members of every pair.
func (isl *Island) BlockIDs() []int { return isl.blockIDs }

// GetNumberNodes returns the number of representative nodes: one per
// pair plus one per self-symmetric block.
func (isl *Island) GetNumberNodes() int {
	return len(isl.pairReps) + len(isl.selfReps)
}

// GetNumberPairRepresentNodes returns how many of GetNumberNodes's nodes
// are pair representatives, i.e. the boundary before self representatives
// begin in GetNode's indexing.
func (isl *Island) GetNumberPairRepresentNodes() int {
	return len(isl.pairReps)
}

// GetNode returns the idx'th representative node, indexing pair
// representatives first and self representatives after.
func (isl *Island) GetNode(idx int) *bstree.Node {
	if idx < len(isl.pairReps) {
		return isl.pairReps[idx]
	}
	idx -= len(isl.pairReps)
	if idx < len(isl.selfReps) {
		return isl.selfReps[idx]
	}
	return nil
}

// Mirror swaps every node's left and right children throughout the
// island's tree, flipping the packing across the perpendicular axis.
// It is its own inverse.
func (isl *Island) Mirror() {
	var walk func(n *bstree.Node)
	walk = func(n *bstree.Node) {
		if n == nil {
			return
		}
		n.LChild, n.RChild = n.RChild, n.LChild
		walk(n.LChild)
		walk(n.RChild)
	}
	walk(isl.tree.Root)
}

// RotateNode flips the rotation of the block behind the idx'th
// representative node. Applying it twice restores the original
// rotation, so it is its own undo.
func (isl *Island) RotateNode(blocks []model.Block, idx int) {
	n := isl.GetNode(idx)
	if n == nil {
		return
	}
	blocks[n.BlockID].Rotated = !blocks[n.BlockID].Rotated
}

// SwapNode exchanges the tree positions of the idx'th and jdx'th
// representative nodes. Applying it twice restores the original
// structure.
func (isl *Island) SwapNode(srcIdx, dstIdx int) {
	src := isl.GetNode(srcIdx)
	dst := isl.GetNode(dstIdx)
	if src == nil || dst == nil {
		return
	}
	if isl.tree.Root == src {
		isl.tree.Root = dst
	} else if isl.tree.Root == dst {
		isl.tree.Root = src
	}
	move.SwapNodes(src, dst)
}
