package tiles

import "github.com/vovakirdan/minefield/internal/fixed"

// IndexSet holds the four quadrant indices of a super-tile in row-major order:
// top-left, top-right, bottom-left, bottom-right.
type IndexSet [4]int

// quadrants lists the sub-tile offsets matching IndexSet order.
var quadrants = [4]fixed.Point{
	{X: 0, Y: 0},
	{X: 1, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
}

// Draw writes a super-tile whose top-left sub-tile is at topLeft,
// taking quadrant i's setting from data.Settings[set[i]].
func Draw(vp Viewport, topLeft fixed.Point, data TileData, set IndexSet) {
	for i, q := range quadrants {
		vp.SetTile(topLeft.Add(q), data.Tiles, data.Setting(set[i]))
	}
}

// Clear blanks all four sub-tiles of the super-tile at topLeft.
func Clear(vp Viewport, topLeft fixed.Point, data TileData) {
	for _, q := range quadrants {
		vp.SetTile(topLeft.Add(q), data.Tiles, Blank)
	}
}

// SuperTileOrigin returns the top-left sub-tile coordinate of a cell's super-tile.
func SuperTileOrigin(cell fixed.Point) fixed.Point {
	return cell.Mul(2)
}
