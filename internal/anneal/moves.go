package anneal

import (
	"github.com/CGLemon/2025NCTU-placement/internal/hbtree"
	"github.com/CGLemon/2025NCTU-placement/internal/model"
	"github.com/CGLemon/2025NCTU-placement/internal/move"
	"github.com/CGLemon/2025NCTU-placement/internal/rng"
)

// undoFn reverses exactly one applied move.
type undoFn func()

// applyRandomMove picks one of the four move kinds uniformly, applies
// it, and returns the closure that undoes it plus whether a move was
// actually applicable (false when e.g. there are too few nodes, or no
// symmetry groups exist).
func applyRandomMove(hb *hbtree.HbTree, blocks []model.Block, src *rng.Source) (undoFn, bool) {
	switch src.Intn(4) {
	case 0:
		return rotateRandom(hb, blocks, src)
	case 1:
		return swapRandom(hb, blocks, src)
	case 2:
		return islandInternalRandom(hb, blocks, src)
	default:
		return moveLeafRandom(hb, src)
	}
}

func rotateRandom(hb *hbtree.HbTree, blocks []model.Block, src *rng.Source) (undoFn, bool) {
	num := hb.GetNumberNodes()
	if num < 2 {
		return nil, false
	}
	idx := src.Intn(num)
	hb.RotateNode(blocks, idx)
	return func() { hb.RotateNode(blocks, idx) }, true
}

func swapRandom(hb *hbtree.HbTree, blocks []model.Block, src *rng.Source) (undoFn, bool) {
	num := hb.GetNumberNodes()
	if num < 2 {
		return nil, false
	}
	a, b := distinctPair(src, num)
	hb.SwapNode(a, b)
	return func() { hb.SwapNode(a, b) }, true
}

func islandInternalRandom(hb *hbtree.HbTree, blocks []model.Block, src *rng.Source) (undoFn, bool) {
	numIslands := hb.NumIslands()
	if numIslands == 0 {
		return nil, false
	}
	idx := src.Intn(numIslands)
	isl := hb.GetIsland(idx)

	if src.Bool() {
		num := isl.GetNumberNodes()
		if num < 1 {
			return nil, false
		}
		nodeIdx := src.Intn(num)
		isl.RotateNode(blocks, nodeIdx)
		return func() { isl.RotateNode(blocks, nodeIdx) }, true
	}

	num := isl.GetNumberPairRepresentNodes()
	if num < 2 {
		return nil, false
	}
	a, b := distinctPair(src, num)
	isl.SwapNode(a, b)
	return func() { isl.SwapNode(a, b) }, true
}

// moveLeafRandom detaches a random leaf and reinserts it at a random
// free slot, choosing uniformly between the global HB-tree and (if any
// exist) a random island's internal tree.
func moveLeafRandom(hb *hbtree.HbTree, src *rng.Source) (undoFn, bool) {
	root := hb.Root()
	if numIslands := hb.NumIslands(); numIslands > 0 && src.Bool() {
		root = hb.GetIsland(src.Intn(numIslands)).Root()
	}

	leaves := move.Leaves(root)
	if len(leaves) == 0 {
		return nil, false
	}
	leaf := leaves[src.Intn(len(leaves))]

	points := move.InsertPoints(root)
	candidates := points[:0]
	for _, p := range points {
		if p.Parent != leaf {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}
	dest := candidates[src.Intn(len(candidates))]

	mv := move.ApplyLeafMove(leaf, dest.Parent, dest.Slot)
	return func() { mv.Undo() }, true
}

// distinctPair returns two different indices uniformly from [0, n).
func distinctPair(src *rng.Source, n int) (int, int) {
	a := src.Intn(n)
	b := src.Intn(n)
	for b == a {
		b = src.Intn(n)
	}
	return a, b
}
