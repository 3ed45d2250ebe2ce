package collapse

import (
	"errors"
	"fmt"

	"github.com/akilmarshall/tile-image-generator/adjacency"
	"github.com/akilmarshall/tile-image-generator/grid"
)

// Generate synthesizes a complete rows×cols grid from the model's
// statistics.
//
// Algorithm:
//  1. Place a uniformly random seed tile at (0,0).
//  2. Visit every cell in row-major order. For each empty cell, gather
//     its already-placed orthogonal neighbors, translate each into the
//     neighbor's own direction back toward the cell (Inverse), and
//     Resolve among the ids compatible with all of them.
//
// By construction of the scan order every non-seed cell has at least one
// placed orthogonal neighbor (its left or up neighbor precedes it); the
// zero-neighbor fallback — a Draw over the marginal tile frequencies, or
// a uniform pick under WithUniformFallback — is a guard, not a path taken
// in normal operation.
//
// On an unsatisfiable cell the returned error is a *ContradictionError
// (errors.Is(err, ErrContradiction)) carrying the partial grid and the
// offending position; there is no silent partial-success mode.
// Complexity: O(rows×cols×k) for tables of ≤k candidates.
func Generate(rows, cols int, m *adjacency.Model, opts ...Option) (*grid.Grid, error) {
	return generate(rows, cols, m, newConfig(opts...))
}

func generate(rows, cols int, m *adjacency.Model, cfg config) (*grid.Grid, error) {
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	g, err := grid.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}

	seed := grid.TileID(cfg.rng.Intn(m.TileCount()))
	_ = g.Set(grid.Position{X: 0, Y: 0}, seed)

	constraints := make([]Constraint, 0, 4)
	for _, p := range g.Positions() {
		if _, filled := g.At(p); filled {
			continue
		}
		constraints = constraints[:0]
		for _, d := range grid.Orthogonal() {
			neighbor, placed := g.At(p.Shift(d))
			if !placed {
				continue
			}
			constraints = append(constraints, Constraint{Tile: neighbor, Dir: d.Inverse()})
		}

		var tile grid.TileID
		if len(constraints) == 0 {
			tile, err = drawUnconstrained(m, cfg)
		} else {
			tile, err = Resolve(constraints, m, cfg.rng)
		}
		if err != nil {
			if errors.Is(err, ErrContradiction) {
				return nil, &ContradictionError{Pos: p, Partial: g}
			}

			return nil, fmt.Errorf("collapse: Generate at (%d,%d): %w", p.X, p.Y, err)
		}
		_ = g.Set(p, tile)
	}

	return g, nil
}

// drawUnconstrained fills a cell with no placed neighbors: marginal
// training frequencies by default, uniform under WithUniformFallback.
func drawUnconstrained(m *adjacency.Model, cfg config) (grid.TileID, error) {
	if cfg.uniformFallback {
		return grid.TileID(cfg.rng.Intn(m.TileCount())), nil
	}

	return Draw(m.Marginal(), cfg.rng)
}

// GenerateBootstrap synthesizes exactly a 2×2 grid by diagonal seeding:
//
//	t .      t .      t x      t .
//	. .  →   . s  →   . s  →   x s
//
// A random seed tile t goes to (0,0); its diagonal partner s at (1,1) is
// drawn directly from t's down-right table; then (1,0) is resolved under
// {(t,Right),(s,Up)} and (0,1) under {(t,Down),(s,Left)}.
//
// Useful as a seeding primitive for larger runs and as the smallest
// fixture that exercises the intersection logic.
// Complexity: O(k).
func GenerateBootstrap(m *adjacency.Model, opts ...Option) (*grid.Grid, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}
	g, err := grid.NewGrid(2, 2)
	if err != nil {
		return nil, err
	}

	seed := grid.TileID(cfg.rng.Intn(m.TileCount()))
	_ = g.Set(grid.Position{X: 0, Y: 0}, seed)

	diag, err := Draw(m.At(seed, grid.DownRight), cfg.rng)
	if err != nil {
		if errors.Is(err, ErrEmptyDistribution) {
			return nil, &ContradictionError{Pos: grid.Position{X: 1, Y: 1}, Partial: g}
		}

		return nil, fmt.Errorf("collapse: GenerateBootstrap at (1,1): %w", err)
	}
	_ = g.Set(grid.Position{X: 1, Y: 1}, diag)

	cells := []struct {
		pos         grid.Position
		constraints []Constraint
	}{
		{grid.Position{X: 1, Y: 0}, []Constraint{{seed, grid.Right}, {diag, grid.Up}}},
		{grid.Position{X: 0, Y: 1}, []Constraint{{seed, grid.Down}, {diag, grid.Left}}},
	}
	for _, c := range cells {
		tile, rerr := Resolve(c.constraints, m, cfg.rng)
		if rerr != nil {
			if errors.Is(rerr, ErrContradiction) {
				return nil, &ContradictionError{Pos: c.pos, Partial: g}
			}

			return nil, fmt.Errorf("collapse: GenerateBootstrap at (%d,%d): %w", c.pos.X, c.pos.Y, rerr)
		}
		_ = g.Set(c.pos, tile)
	}

	return g, nil
}

// Regenerate runs Generate up to WithMaxRestarts times (default 8),
// restarting on Contradiction with the same RNG stream. The defensive
// budget keeps hostile models from looping forever; the last
// *ContradictionError is returned when the budget is exhausted.
// Non-contradiction errors abort immediately.
func Regenerate(rows, cols int, m *adjacency.Model, opts ...Option) (*grid.Grid, error) {
	cfg := newConfig(opts...)
	if cfg.rng == nil {
		return nil, ErrNeedRandSource
	}

	var lastErr error
	for attempt := 0; attempt < cfg.maxRestarts; attempt++ {
		g, err := generate(rows, cols, m, cfg)
		if err == nil {
			return g, nil
		}
		if !errors.Is(err, ErrContradiction) {
			return nil, err
		}
		lastErr = err
	}

	return nil, lastErr
}
