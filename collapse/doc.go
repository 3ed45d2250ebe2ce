// Package collapse synthesizes tile grids from learned adjacency
// statistics: frequency-weighted sampling, multi-constraint intersection,
// and two cell-by-cell generation drivers.
//
// 🚀 What is collapse?
//
//	A lightweight wave-function-collapse variant. Instead of tracking a
//	full possibility domain per cell, it places tiles greedily in a fixed
//	order, at each step sampling among the ids consistent with every
//	already-placed neighbor simultaneously:
//	  • Draw    — one Dirichlet-smoothed categorical draw from a table
//	  • Resolve — intersect several neighbor tables, sum the evidence,
//	    then Draw among the survivors
//	  • Generate          — row-major scan over an arbitrary shape
//	  • GenerateBootstrap — 2×2 diagonal seeding primitive
//	  • Regenerate        — bounded restart loop around Generate
//
// ✨ Sampling:
//
//	Draw is not a plain frequency-proportional pick. The count vector is
//	used as the concentration parameters of a Dirichlet distribution; one
//	probability vector is drawn from it, then one categorical outcome
//	from that vector. Heavily observed pairings behave almost
//	deterministically, sparsely observed ones stay exploratory — output
//	resembles the training statistics without rigidly reproducing them.
//
// ⚙️ Usage:
//
//	m, _ := adjacency.Build(training, n)
//	g, err := collapse.Generate(24, 32, m, collapse.WithSeed(7))
//	var c *collapse.ContradictionError
//	if errors.As(err, &c) {
//	  // no tile fits at c.Pos; c.Partial holds everything placed so far.
//	  // Retry with a fresh seed, or use Regenerate for a bounded loop.
//	}
//
// Determinism & concurrency:
//
//   - The random source is explicit (WithSeed / WithRand, package
//     golang.org/x/exp/rand); a fixed seed reproduces a run exactly.
//   - A Model is shared read-only; each call owns the grid it fills.
//
// Errors:
//
//   - ErrNeedRandSource: no RNG was configured for a generation call.
//   - ErrEmptyDistribution: Draw on a table with zero candidates.
//   - ErrNoConstraints: Resolve with an empty constraint list.
//   - ErrContradiction: no id satisfies all constraints; drivers return it
//     as a *ContradictionError carrying the partial grid and position.
package collapse
