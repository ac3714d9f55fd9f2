// Package bstree implements the B*-tree packer: a rooted binary tree over
// shape-bearing nodes whose left-child = right-neighbor / right-child =
// above-neighbor relations produce a lower-left compacted placement.
package bstree

// Node is one B*-tree node. BlockID identifies which external block (or
// island, for the HB-tree) this node's shape belongs to; the tree layer
// never interprets it. Nodes are allocated once and persist for the
// program's lifetime, perturbations only rewire the Parent/LChild/RChild
// links, never allocate or free.
type Node struct {
	BlockID int

	Width, Height int
	X, Y          int

	Parent, LChild, RChild *Node
}

// NewNode allocates a node for the given block id with a zero shape; the
// shape is filled in by the owning tree before the first pack.
func NewNode(blockID int) *Node {
	return &Node{BlockID: blockID}
}

// SetShape updates the node's packable shape.
func (n *Node) SetShape(w, h int) {
	n.Width, n.Height = w, h
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool {
	return n.LChild == nil && n.RChild == nil
}
