package tileset

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/akilmarshall/tile-image-generator/grid"
)

// defaultAtlasPerRow is the tilesheet width, in tiles, when the caller
// does not choose one.
const defaultAtlasPerRow = 16

// Processor slices a tiled source image into a deduplicated tile corpus
// and the Position→TileID training grid over it. Immutable once built.
type Processor struct {
	tileW, tileH int
	tiles        []*image.RGBA
	mapping      *grid.Grid
}

// NewProcessor cuts src into tileW×tileH cells, truncating partial rows
// and columns at the right and bottom edges. Cells with identical pixel
// content share one TileID; ids are dense and assigned in row-major
// first-seen order, so the same image always yields the same corpus.
//
// Returns ErrBadTileSize for non-positive dimensions, ErrImageTooSmall if
// not even one complete tile fits.
// Complexity: O(W×H) over source pixels.
func NewProcessor(src image.Image, tileW, tileH int) (*Processor, error) {
	if tileW < 1 || tileH < 1 {
		return nil, ErrBadTileSize
	}
	bounds := src.Bounds()
	cols, rows := bounds.Dx()/tileW, bounds.Dy()/tileH
	if cols == 0 || rows == 0 {
		return nil, ErrImageTooSmall
	}

	mapping, err := grid.NewGrid(rows, cols)
	if err != nil {
		return nil, err
	}
	p := &Processor{tileW: tileW, tileH: tileH, mapping: mapping}

	seen := make(map[string]grid.TileID)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			cell := image.NewRGBA(image.Rect(0, 0, tileW, tileH))
			origin := bounds.Min.Add(image.Pt(x*tileW, y*tileH))
			draw.Draw(cell, cell.Bounds(), src, origin, draw.Src)

			key := string(cell.Pix)
			id, ok := seen[key]
			if !ok {
				id = grid.TileID(len(p.tiles))
				seen[key] = id
				p.tiles = append(p.tiles, cell)
			}
			_ = mapping.Set(grid.Position{X: x, Y: y}, id)
		}
	}

	return p, nil
}

// TileCount returns the corpus size n; valid ids are [0, n).
func (p *Processor) TileCount() int { return len(p.tiles) }

// TileSize returns the (width, height) of one tile in pixels.
func (p *Processor) TileSize() (int, int) { return p.tileW, p.tileH }

// Mapping returns the training grid. The result is a copy; the processor
// keeps its own intact.
func (p *Processor) Mapping() *grid.Grid { return p.mapping.Clone() }

// Tile returns the pixel content of one corpus tile.
// Returns ErrTileRange for ids outside [0, TileCount).
func (p *Processor) Tile(id grid.TileID) (image.Image, error) {
	if id < 0 || int(id) >= len(p.tiles) {
		return nil, fmt.Errorf("tileset: Tile(%d): %w", id, ErrTileRange)
	}

	return p.tiles[id], nil
}

// Render composites g back into pixels using the corpus tiles. Unfilled
// cells are left transparent, so sparse grids (partial generation
// results) render as-is.
// Returns ErrTileRange if g references an id outside the corpus.
// Complexity: O(cells×tile area).
func (p *Processor) Render(g *grid.Grid) (image.Image, error) {
	out := image.NewRGBA(image.Rect(0, 0, g.Cols()*p.tileW, g.Rows()*p.tileH))
	for _, pos := range g.Positions() {
		id, ok := g.At(pos)
		if !ok {
			continue
		}
		if id < 0 || int(id) >= len(p.tiles) {
			return nil, fmt.Errorf("tileset: Render at (%d,%d): tile %d: %w", pos.X, pos.Y, id, ErrTileRange)
		}
		target := image.Rect(pos.X*p.tileW, pos.Y*p.tileH, (pos.X+1)*p.tileW, (pos.Y+1)*p.tileH)
		draw.Draw(out, target, p.tiles[id], image.Point{}, draw.Src)
	}

	return out, nil
}

// Atlas lays the corpus out as a tilesheet, perRow tiles per row
// (defaultAtlasPerRow when perRow < 1), padded with transparency.
// Complexity: O(n×tile area).
func (p *Processor) Atlas(perRow int) image.Image {
	if perRow < 1 {
		perRow = defaultAtlasPerRow
	}
	rows := (len(p.tiles) + perRow - 1) / perRow
	out := image.NewRGBA(image.Rect(0, 0, perRow*p.tileW, rows*p.tileH))
	for i, tile := range p.tiles {
		x, y := i%perRow, i/perRow
		target := image.Rect(x*p.tileW, y*p.tileH, (x+1)*p.tileW, (y+1)*p.tileH)
		draw.Draw(out, target, tile, image.Point{}, draw.Src)
	}

	return out
}
