package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the direct reverse of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Delta returns the (col, row) step for one move in direction d.
func (d Direction) Delta() (int, int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Snake is the body plus its committed and requested headings.
// Head is body[0]; no two body cells are ever equal.
type Snake struct {
	body      []grid.Cell
	dir       Direction // committed on the last movement tick
	requested Direction // buffered until the next movement tick
}

// newSnake builds the canonical 3-cell body: head at the given cell and the
// rest trailing below it, heading up.
func newSnake(head grid.Cell) Snake {
	return Snake{
		body: []grid.Cell{
			head,
			head.Add(0, 1),
			head.Add(0, 2),
		},
		dir:       DirUp,
		requested: DirUp,
	}
}

// Head returns the head cell.
func (s *Snake) Head() grid.Cell {
	return s.body[0]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Cells returns a copy of the body, head first.
func (s *Snake) Cells() []grid.Cell {
	return slices.Clone(s.body)
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c grid.Cell) bool {
	return slices.Contains(s.body, c)
}

// Set returns the body as a cell set.
func (s *Snake) Set() grid.Set {
	return grid.NewSet(s.body...)
}

// Request buffers a heading for the next movement tick.
func (s *Snake) Request(d Direction) {
	s.requested = d
}

// commitDirection applies the buffered heading unless it would reverse
// the snake onto its own neck.
func (s *Snake) commitDirection() {
	if s.requested != s.dir.Opposite() {
		s.dir = s.requested
	}
}

// push adds a new head.
func (s *Snake) push(head grid.Cell) {
	s.body = slices.Insert(s.body, 0, head)
}

// dropTail removes the last cell.
func (s *Snake) dropTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Item is an optional cell-placed pickup. The zero value is absent.
type Item struct {
	Cell    grid.Cell
	Present bool
}

// At reports whether the item exists and sits on c.
func (it Item) At(c grid.Cell) bool {
	return it.Present && it.Cell == c
}
