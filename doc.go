// Package tilegen is your in-memory toolkit for learning tile-adjacency
// statistics from a reference map and synthesizing new maps that locally
// look like it — a lightweight wave-function-collapse variant.
//
// 🚀 What is tile-image-generator?
//
//	A small, deterministic-by-seed library that brings together:
//		• grid      — tile ids, positions, sparse shaped grids, the 8-direction table
//		• adjacency — per-(tile,direction) neighbor frequency model + YAML snapshots
//		• collapse  — Dirichlet-smoothed sampling, constraint intersection,
//		  row-major and 2×2-bootstrap generation drivers
//		• tileset   — image ⇄ grid bridging: tile extraction, rendering, atlases
//
// ✨ Why choose it?
//
//   - Explicit randomness – every stochastic call takes a seeded source;
//     one seed reproduces one run, and concurrent runs never interfere
//   - Honest failure – an unsatisfiable cell surfaces as a catchable
//     ContradictionError carrying the partial grid, never a crash
//   - Sparse statistics – unseen tile pairings carry no probability mass,
//     so output can only recombine adjacencies the reference exhibits
//
// Data flows one way:
//
//	reference image → tileset.Processor → training grid → adjacency.Model
//	                → collapse drivers → output grid → tileset.Render
//
// Quick ASCII example:
//
//	A B A B        learn + generate        A B A B A B
//	A B A B   ───────────────────────►     A B A B A B
//	                                       A B A B A B
//
//	(any requested shape; the columns keep alternating because the
//	 reference never shows anything else)
//
// Dive into each subpackage's doc.go for contracts, and examples/ for a
// complete image-to-image run.
package tilegen
