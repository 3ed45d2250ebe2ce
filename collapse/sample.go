package collapse

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/akilmarshall/tile-image-generator/adjacency"
	"github.com/akilmarshall/tile-image-generator/grid"
)

// Draw samples one tile id from a frequency table using Dirichlet-smoothed
// categorical sampling.
//
// Algorithm:
//  1. Order the table's support (sorted ids) and take the raw counts as
//     the concentration parameters of a Dirichlet distribution.
//  2. Draw a single probability vector from that Dirichlet.
//  3. Draw one categorical outcome from the probability vector.
//
// The Dirichlet step injects evidence-proportional randomness: large
// counts concentrate the drawn vector near the observed frequencies,
// sparse counts leave it noisy and exploratory. A single-key table
// collapses to certainty and always returns its key.
//
// Returns ErrEmptyDistribution for an empty table and ErrNeedRandSource
// for a nil rng.
// Complexity: O(k) for k candidates (plus the sort in Support).
func Draw(dist adjacency.Distribution, rng *rand.Rand) (grid.TileID, error) {
	if rng == nil {
		return 0, ErrNeedRandSource
	}
	support := dist.Support()
	if len(support) == 0 {
		return 0, ErrEmptyDistribution
	}
	if len(support) == 1 {
		// Dirichlet over one category is the point mass 1.0.
		return support[0], nil
	}

	alpha := make([]float64, len(support))
	for i, id := range support {
		alpha[i] = float64(dist[id])
	}
	probs := distmv.NewDirichlet(alpha, rng).Rand(nil)
	pick := distuv.NewCategorical(probs, rng).Rand()

	return support[int(pick)], nil
}
