package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/grid"
)

// Spawner places items on random free cells.
type Spawner struct {
	grid           grid.Grid
	rng            *rand.Rand
	budget         int
	centerFraction float64
}

// NewSpawner creates a spawner for the given grid.
func NewSpawner(g grid.Grid, rng *rand.Rand, cfg config.SpawnConfig) *Spawner {
	return &Spawner{
		grid:           g,
		rng:            rng,
		budget:         max(cfg.RetryBudget, 1),
		centerFraction: core.ClampF(cfg.CenterFraction, 0.01, 1),
	}
}

// Place samples cells until one is in neither occupants nor excluded, for at
// most the retry budget. When the budget runs out the last sample is
// returned anyway with ok=false; callers accept the overlap.
func (sp *Spawner) Place(occupants, excluded grid.Set, biasCenter bool) (c grid.Cell, ok bool) {
	for range sp.budget {
		c = sp.sample(biasCenter)
		if !occupants.Has(c) && !excluded.Has(c) {
			return c, true
		}
	}
	return c, false
}

// sample draws one candidate. Uniform draws pick a cell directly; centered
// draws pick a pixel in the middle region of the lattice and snap it.
func (sp *Spawner) sample(biasCenter bool) grid.Cell {
	g := sp.grid
	if !biasCenter {
		return grid.Cell{Col: sp.rng.Intn(g.Width), Row: sp.rng.Intn(g.Height)}
	}

	spanW := float64(g.Width) * g.Pitch
	spanH := float64(g.Height) * g.Pitch
	regionW := spanW * sp.centerFraction
	regionH := spanH * sp.centerFraction

	p := grid.Vec{
		X: (spanW-regionW)/2 + sp.rng.Float64()*regionW,
		Y: (spanH-regionH)/2 + sp.rng.Float64()*regionH,
	}
	c := g.ToGridAligned(p)
	c.Col = core.Clamp(c.Col, 0, g.Width-1)
	c.Row = core.Clamp(c.Row, 0, g.Height-1)
	return c
}
