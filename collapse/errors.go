// Package collapse error policy: sentinel variables only; callers branch
// with errors.Is, and drivers attach position context via wrapping (the
// contradiction case carries structured context, see ContradictionError).
package collapse

import (
	"errors"
	"fmt"

	"github.com/akilmarshall/tile-image-generator/grid"
)

// ErrNeedRandSource indicates a generation entry point was called without
// an RNG (neither WithSeed nor WithRand was supplied).
// Usage: if errors.Is(err, ErrNeedRandSource) { /* supply a seeded RNG */ }.
var ErrNeedRandSource = errors.New("collapse: rng is required")

// ErrEmptyDistribution indicates Draw was asked to sample from zero
// candidates: the model holds no evidence at all for the queried
// (tile, direction). Never silently replaced by a uniform pick — that
// would corrupt the learned statistics.
var ErrEmptyDistribution = errors.New("collapse: empty distribution")

// ErrNoConstraints indicates Resolve was called with no constraints;
// an unconstrained cell should be sampled from the model's marginal
// instead.
var ErrNoConstraints = errors.New("collapse: at least one constraint is required")

// ErrContradiction indicates no tile id is compatible with every supplied
// neighbor constraint simultaneously. This is the expected failure mode of
// sufficiently constrained or low-diversity training data, and it is
// recoverable: drivers surface it as a *ContradictionError.
// Usage: if errors.Is(err, ErrContradiction) { /* restart or relax */ }.
var ErrContradiction = errors.New("collapse: no tile satisfies all constraints")

// ContradictionError reports where generation got stuck. Partial holds
// every cell placed before the failure, so callers can inspect, render or
// resume-with-strategy rather than discard the run blindly.
type ContradictionError struct {
	// Pos is the cell for which no compatible tile exists.
	Pos grid.Position
	// Partial is the grid as filled up to the failure. Owned by the caller.
	Partial *grid.Grid
}

// Error implements the error interface.
func (e *ContradictionError) Error() string {
	return fmt.Sprintf("collapse: no tile satisfies all constraints at (%d,%d)", e.Pos.X, e.Pos.Y)
}

// Unwrap makes errors.Is(err, ErrContradiction) hold for driver failures.
func (e *ContradictionError) Unwrap() error { return ErrContradiction }
