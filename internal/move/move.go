// Package move holds the tree-agnostic mechanics shared by every
// perturbation the SA driver can apply to either tree layer: rewiring
// parent/child links for a swap, detaching/reattaching a leaf, and
// collecting the leaves or free-slot candidates a move needs to choose
// among. It mirrors the free functions the original implementation kept
// outside of AsfIsland/HbTree (ReplaceParentChild, SwapNodeDirection,
// GatherAllLeafNodes, GatherAllInsertNodes) rather than duplicating them
// in both tree layers.
package move

import "github.com/CGLemon/2025NCTU-placement/internal/bstree"

// Slot names a child link on a node.
type Slot int

const (
	NoSlot Slot = iota
	LeftSlot
	RightSlot
)

// ChildSlot reports which slot of parent holds child, or NoSlot.
func ChildSlot(parent, child *bstree.Node) Slot {
	if parent == nil {
		return NoSlot
	}
	if parent.LChild == child {
		return LeftSlot
	}
	if parent.RChild == child {
		return RightSlot
	}
	return NoSlot
}

// SetChild sets parent's slot to child (nil clears the slot) and fixes up
// child's Parent pointer.
func SetChild(parent *bstree.Node, slot Slot, child *bstree.Node) {
	switch slot {
	case LeftSlot:
		parent.LChild = child
	case RightSlot:
		parent.RChild = child
	}
	if child != nil {
		child.Parent = parent
	}
}

// replaceInParent rewrites whichever of parent's slots held oldChild to
// hold newChild instead. No-op if parent is nil or doesn't hold oldChild.
func replaceInParent(parent, oldChild, newChild *bstree.Node) {
	if parent == nil {
		return
	}
	if parent.LChild == oldChild {
		parent.LChild = newChild
	}
	if parent.RChild == oldChild {
		parent.RChild = newChild
	}
}

// SwapNodes exchanges the tree positions of a and b in O(1): their
// parent/child links are rewired so each now sits where the other used
// to, while the subtrees below those positions stay in place. This also
// holds when one is the parent or another ancestor of the other. If
// either is the tree's root, the caller is responsible for
// updating its own root pointer afterward, SwapNodes only ever touches
// parent/child links, never a root reference it doesn't have.
//
// Applying SwapNodes twice on the same pair restores the original
// structure exactly: it is its own inverse.
func SwapNodes(a, b *bstree.Node) {
	if a == b {
		return
	}
	if a.Parent != b.Parent {
		replaceInParent(a.Parent, a, b)
		replaceInParent(b.Parent, b, a)
	} else if a.Parent != nil {
		// siblings: swap their shared parent's two slots
		a.Parent.LChild, a.Parent.RChild = a.Parent.RChild, a.Parent.LChild
	}

	a.Parent, b.Parent = b.Parent, a.Parent
	a.LChild, b.LChild = b.LChild, a.LChild
	a.RChild, b.RChild = b.RChild, a.RChild

	if a.LChild != nil {
		a.LChild.Parent = a
	}
	if a.RChild != nil {
		a.RChild.Parent = a
	}
	if b.LChild != nil {
		b.LChild.Parent = b
	}
	if b.RChild != nil {
		b.RChild.Parent = b
	}
}

// Leaves returns every leaf (both children nil) reachable from root.
func Leaves(root *bstree.Node) []*bstree.Node {
	var out []*bstree.Node
	var walk func(n *bstree.Node)
	walk = func(n *bstree.Node) {
		if n == nil {
			return
		}
		if n.IsLeaf() {
			out = append(out, n)
		}
		walk(n.LChild)
		walk(n.RChild)
	}
	walk(root)
	return out
}

// InsertPoint names a free slot a detached leaf could be reinserted into.
type InsertPoint struct {
	Parent *bstree.Node
	Slot   Slot
}

// InsertPoints returns every free child slot reachable from root,
// candidate reattachment points for a leaf move.
func InsertPoints(root *bstree.Node) []InsertPoint {
	var out []InsertPoint
	var walk func(n *bstree.Node)
	walk = func(n *bstree.Node) {
		if n == nil {
			return
		}
		if n.LChild == nil {
			out = append(out, InsertPoint{Parent: n, Slot: LeftSlot})
		}
		if n.RChild == nil {
			out = append(out, InsertPoint{Parent: n, Slot: RightSlot})
		}
		walk(n.LChild)
		walk(n.RChild)
	}
	walk(root)
	return out
}

// LeafMove records enough state to invert a detach-and-reinsert of a leaf.
type LeafMove struct {
	Leaf      *bstree.Node
	OldParent *bstree.Node
	OldSlot   Slot
	NewParent *bstree.Node
	NewSlot   Slot
}

// ApplyLeafMove detaches leaf from its current parent slot and reattaches
// it at (newParent, newSlot), returning the record needed to undo it.
// newSlot must be empty at newParent (the caller picks from InsertPoints
// computed before the detach, and must exclude leaf's own old slot and
// leaf itself as a destination).
func ApplyLeafMove(leaf, newParent *bstree.Node, newSlot Slot) LeafMove {
	oldParent := leaf.Parent
	oldSlot := ChildSlot(oldParent, leaf)

	if oldParent != nil {
		SetChild(oldParent, oldSlot, nil)
	}
	leaf.LChild, leaf.RChild = nil, nil
	SetChild(newParent, newSlot, leaf)

	return LeafMove{
		Leaf:      leaf,
		OldParent: oldParent,
		OldSlot:   oldSlot,
		NewParent: newParent,
		NewSlot:   newSlot,
	}
}

// Undo reverses a LeafMove: detaches the leaf from its new home and
// restores it to its original parent slot.
func (m LeafMove) Undo() {
	SetChild(m.NewParent, m.NewSlot, nil)
	if m.OldParent != nil {
		SetChild(m.OldParent, m.OldSlot, m.Leaf)
	} else {
		m.Leaf.Parent = nil
	}
}
