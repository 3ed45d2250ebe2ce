package adjacency

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/akilmarshall/tile-image-generator/grid"
)

// Snapshot layout. Counts are emitted as ordered lists rather than maps so
// that Save output is byte-identical for identical models.
type snapshot struct {
	TileCount int          `yaml:"tile_count"`
	Marginal  []countEntry `yaml:"marginal"`
	Tables    []tableEntry `yaml:"tables"`
}

type countEntry struct {
	Tile  int `yaml:"tile"`
	Count int `yaml:"count"`
}

type tableEntry struct {
	Tile   int          `yaml:"tile"`
	Dir    string       `yaml:"dir"`
	Counts []countEntry `yaml:"counts"`
}

func toEntries(d Distribution) []countEntry {
	out := make([]countEntry, 0, len(d))
	for _, id := range d.Support() {
		out = append(out, countEntry{Tile: int(id), Count: d[id]})
	}

	return out
}

// Save writes m as a YAML document. Output bytes are deterministic:
// tables are ordered by (tile, direction index), counts by tile id.
// Complexity: O(model size).
func (m *Model) Save(w io.Writer) error {
	doc := snapshot{
		TileCount: m.tileCount,
		Marginal:  toEntries(m.marginal),
	}
	for tile := 0; tile < m.tileCount; tile++ {
		for _, d := range grid.Directions() {
			table := m.freq[tile][d]
			if len(table) == 0 {
				continue
			}
			doc.Tables = append(doc.Tables, tableEntry{
				Tile:   tile,
				Dir:    d.String(),
				Counts: toEntries(table),
			})
		}
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("adjacency: Save: %w", err)
	}

	return enc.Close()
}

// Load reads a model previously written by Save, validating every id and
// count against the declared tile_count. Returns ErrBadSnapshot (wrapped
// with detail) on any inconsistency.
// Complexity: O(snapshot size).
func Load(r io.Reader) (*Model, error) {
	var doc snapshot
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("adjacency: Load: %v: %w", err, ErrBadSnapshot)
	}
	if doc.TileCount < 1 {
		return nil, fmt.Errorf("adjacency: Load: tile_count %d: %w", doc.TileCount, ErrBadSnapshot)
	}

	m := &Model{
		tileCount: doc.TileCount,
		freq:      make([][grid.NumDirections]Distribution, doc.TileCount),
		marginal:  make(Distribution, doc.TileCount),
	}
	for _, e := range doc.Marginal {
		if err := checkEntry(e, doc.TileCount); err != nil {
			return nil, err
		}
		m.marginal[grid.TileID(e.Tile)] = e.Count
	}
	for _, tab := range doc.Tables {
		if tab.Tile < 0 || tab.Tile >= doc.TileCount {
			return nil, fmt.Errorf("adjacency: Load: table tile %d: %w", tab.Tile, ErrBadSnapshot)
		}
		d, err := grid.ParseDirection(tab.Dir)
		if err != nil {
			return nil, fmt.Errorf("adjacency: Load: table dir %q: %w", tab.Dir, ErrBadSnapshot)
		}
		table := make(Distribution, len(tab.Counts))
		for _, e := range tab.Counts {
			if err = checkEntry(e, doc.TileCount); err != nil {
				return nil, err
			}
			table[grid.TileID(e.Tile)] = e.Count
		}
		m.freq[tab.Tile][d] = table
	}

	return m, nil
}

func checkEntry(e countEntry, tileCount int) error {
	if e.Tile < 0 || e.Tile >= tileCount {
		return fmt.Errorf("adjacency: Load: tile %d: %w", e.Tile, ErrBadSnapshot)
	}
	if e.Count < 1 {
		return fmt.Errorf("adjacency: Load: tile %d count %d: %w", e.Tile, e.Count, ErrBadSnapshot)
	}

	return nil
}
