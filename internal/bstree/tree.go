package bstree

// Tree is a B*-tree packer: given a rooted binary tree of shape-bearing
// nodes, Pack assigns (x, y) to every node so the packing is compacted to
// the lower-left corner, using a contour to track the upper envelope of
// everything already placed.
//
// The tree owns nothing but its Root pointer; nodes are allocated and
// owned by whichever higher-level structure (island or HB-tree) built
// them, so Pack never allocates nodes; it does allocate a fresh contour
// on every call.
type Tree struct {
	Root *Node
}

// Pack places every node reachable from Root and returns the packing's
// (width, height), i.e. (max_x, max_y) over all placed nodes.
//
// Traversal is pre-order: a node is placed before either child, so a
// child's placement can always assume its parent's (x, y) is final.
// Left child: immediately to the right of its parent, at the skyline
// height over its own x-span. Right child: directly above its parent, at
// the same x, again at the skyline height over its span.
func (t *Tree) Pack() (width, height int) {
	if t.Root == nil {
		return 0, 0
	}
	c := newContour()
	t.Root.X, t.Root.Y = 0, c.heightOver(0, t.Root.Width)
	c.raise(t.Root.X, t.Root.Width, t.Root.Y+t.Root.Height)

	maxX := t.Root.X + t.Root.Width
	maxY := t.Root.Y + t.Root.Height

	var place func(n *Node)
	place = func(n *Node) {
		if n.LChild != nil {
			l := n.LChild
			l.X = n.X + n.Width
			l.Y = c.heightOver(l.X, l.Width)
			c.raise(l.X, l.Width, l.Y+l.Height)
			if x := l.X + l.Width; x > maxX {
				maxX = x
			}
			if y := l.Y + l.Height; y > maxY {
				maxY = y
			}
			place(l)
		}
		if n.RChild != nil {
			r := n.RChild
			r.X = n.X
			r.Y = c.heightOver(r.X, r.Width)
			c.raise(r.X, r.Width, r.Y+r.Height)
			if x := r.X + r.Width; x > maxX {
				maxX = x
			}
			if y := r.Y + r.Height; y > maxY {
				maxY = y
			}
			place(r)
		}
	}
	place(t.Root)

	return maxX, maxY
}

// Area is a convenience wrapper around Pack returning width*height.
func (t *Tree) Area() int64 {
	w, h := t.Pack()
	return int64(w) * int64(h)
}

// Preorder returns every node reachable from Root in pre-order.
func (t *Tree) Preorder() []*Node {
	var out []*Node
	var visit func(n *Node)
	visit = func(n *Node) {
		if n == nil {
			return
		}
		out = append(out, n)
		visit(n.LChild)
		visit(n.RChild)
	}
	visit(t.Root)
	return out
}

// Count returns the number of nodes reachable from Root.
func (t *Tree) Count() int {
	return len(t.Preorder())
}

// BuildBalanced builds a balanced binary tree over nodes (assumed already
// sorted, typically by descending area) via recursive midpoint split, and
// returns the root. This is the initial-tree construction used by both
// the ASF-island (over pair representatives) and the HB-tree (over
// islands + solo blocks).
func BuildBalanced(nodes []*Node) *Node {
	return buildBalanced(nil, nodes, 0, len(nodes)-1)
}

func buildBalanced(parent *Node, nodes []*Node, l, r int) *Node {
	if l > r {
		return nil
	}
	m := (l + r) / 2
	node := nodes[m]
	node.Parent = parent
	node.LChild = buildBalanced(node, nodes, l, m-1)
	node.RChild = buildBalanced(node, nodes, m+1, r)
	return node
}
