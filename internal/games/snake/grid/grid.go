// Package grid maps the continuous playfield onto the discrete cell lattice
// the snake game runs on. Everything here is pure: no state, no side effects.
package grid

import (
	"fmt"
	"math"
)

// Cell is a lattice coordinate. It is the identity used for every placement
// and collision check; two entities touch only when their cells are equal.
type Cell struct {
	Col, Row int
}

// Add returns the cell offset by (dc, dr).
func (c Cell) Add(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Vec is a position on the playfield in pixels.
type Vec struct {
	X, Y float64
}

// Grid describes a playfield of PixelW x PixelH pixels quantized into
// square cells of Pitch pixels.
type Grid struct {
	Width  int // columns
	Height int // rows
	Pitch  float64
	PixelW float64
	PixelH float64
}

// New builds the lattice for a playfield. Dimensions are floored, so a
// partial cell along an edge is not part of the grid.
func New(pixelW, pixelH, pitch float64) Grid {
	if pitch <= 0 {
		pitch = 1
	}
	return Grid{
		Width:  max(int(math.Floor(pixelW/pitch)), 0),
		Height: max(int(math.Floor(pixelH/pitch)), 0),
		Pitch:  pitch,
		PixelW: pixelW,
		PixelH: pixelH,
	}
}

// ToGridAligned returns the cell containing the pixel position.
// Positions outside the playfield map to out-of-bounds cells.
func (g Grid) ToGridAligned(p Vec) Cell {
	return Cell{
		Col: int(math.Floor(p.X / g.Pitch)),
		Row: int(math.Floor(p.Y / g.Pitch)),
	}
}

// CellCenter returns the pixel position of the middle of a cell.
func (g Grid) CellCenter(c Cell) Vec {
	return Vec{
		X: float64(c.Col)*g.Pitch + g.Pitch/2,
		Y: float64(c.Row)*g.Pitch + g.Pitch/2,
	}
}

// InBounds reports whether c lies in [0, Width) x [0, Height).
func (g Grid) InBounds(c Cell) bool {
	return c.Col >= 0 && c.Col < g.Width && c.Row >= 0 && c.Row < g.Height
}

// Wrap mirrors an out-of-bounds cell onto the opposite edge, keeping the
// other axis unchanged. In-bounds cells are returned as-is.
func (g Grid) Wrap(c Cell) Cell {
	if g.Width > 0 {
		c.Col = mod(c.Col, g.Width)
	}
	if g.Height > 0 {
		c.Row = mod(c.Row, g.Height)
	}
	return c
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Cell {
	return Cell{Col: g.Width / 2, Row: g.Height / 2}
}

// CellCount returns the number of cells in the grid.
func (g Grid) CellCount() int {
	return g.Width * g.Height
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// Set is an unordered collection of cells.
type Set map[Cell]struct{}

// NewSet returns a set holding the given cells.
func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts a cell.
func (s Set) Add(c Cell) {
	s[c] = struct{}{}
}

// Has reports whether the cell is in the set. A nil set is empty.
func (s Set) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}
