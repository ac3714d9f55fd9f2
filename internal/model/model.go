// Package model holds the data types shared across the placer: blocks,
// symmetry groups, and the axis convention they are mirrored across.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Axis is the line a symmetry group is reflected across.
type Axis int

const (
	Vertical Axis = iota
	Horizontal
)

func (a Axis) String() string {
	if a == Horizontal {
		return "Horizontal"
	}
	return "Vertical"
}

// ParseAxis parses an axis token: the short V/H form used in the problem
// file format, or the full Vertical/Horizontal name (Axis.String) that
// the annealer's persisted configuration stores.
func ParseAxis(s string) (Axis, bool) {
	switch s {
	case "V", "Vertical":
		return Vertical, true
	case "H", "Horizontal":
		return Horizontal, true
	default:
		return Vertical, false
	}
}

// Block is a fixed-shape rectangle that may be rotated 90 degrees.
// Name and W/H are immutable once loaded; X, Y and Rotated change on
// every pack pass. GID is -1 for a solo block, else the index of the
// symmetry group it belongs to.
type Block struct {
	Name string
	W, H int
	X, Y int
	Rotated bool
	GID     int
}

// NewBlock creates a solo block with the given shape.
func NewBlock(name string, w, h int) Block {
	return Block{Name: name, W: w, H: h, GID: -1}
}

// RotatedWidth returns the block's width accounting for rotation.
func (b Block) RotatedWidth() int {
	if b.Rotated {
		return b.H
	}
	return b.W
}

// RotatedHeight returns the block's height accounting for rotation.
func (b Block) RotatedHeight() int {
	if b.Rotated {
		return b.W
	}
	return b.H
}

// IsSolo reports whether the block belongs to no symmetry group.
func (b Block) IsSolo() bool {
	return b.GID < 0
}

// SymPair is two blocks mirrored across their group's axis.
type SymPair struct {
	A, B     string
	AID, BID int
}

// SymSelf is a block whose own center must lie on the group's axis.
type SymSelf struct {
	A  string
	ID int
}

// SymGroup is a set of blocks constrained to be symmetric about one axis.
type SymGroup struct {
	Name  string
	Axis  Axis
	Pairs []SymPair
	Selfs []SymSelf
}

// RunReport bundles a finished annealer run's identity and result, the
// single value the export package's renderers are built against.
type RunReport struct {
	RunID     uuid.UUID
	InputPath string
	Area      int64
	Blocks    []Block
	Groups    []SymGroup
	Elapsed   time.Duration
	Seed      uint64
}

// CenterX returns the geometric center x of a block in global coordinates.
func CenterX(b Block) float64 {
	return float64(b.X) + float64(b.RotatedWidth())/2
}

// CenterY returns the geometric center y of a block in global coordinates.
func CenterY(b Block) float64 {
	return float64(b.Y) + float64(b.RotatedHeight())/2
}
