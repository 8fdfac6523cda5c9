package tilegrid

import "math"

// Query answers "what is at this world point". Implementations must return
// ClassNone for any point outside the level instead of failing.
type Query interface {
	ClassAt(x, y float64) Class
}

// Cell converts a world coordinate to a cell index.
func Cell(v float64) int {
	return int(math.Floor(v / TileSize))
}

// TileAt returns the character under a world point.
func (g *Grid) TileAt(x, y float64) byte {
	if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
		return Empty
	}
	return g.Tile(Cell(x), Cell(y))
}

// SetTileAt replaces the cell under a world point.
func (g *Grid) SetTileAt(x, y float64, c byte) bool {
	return g.SetTile(Cell(x), Cell(y), c)
}

// ClassAt implements Query.
func (g *Grid) ClassAt(x, y float64) Class {
	return ClassOf(g.TileAt(x, y))
}

func (g *Grid) IsSolid(x, y float64) bool   { return g.ClassAt(x, y).Solid() }
func (g *Grid) IsBrick(x, y float64) bool   { return g.ClassAt(x, y) == ClassBrick }
func (g *Grid) IsIce(x, y float64) bool     { return g.ClassAt(x, y) == ClassIce }
func (g *Grid) IsFullBox(x, y float64) bool { return g.ClassAt(x, y) == ClassFullBox }
func (g *Grid) IsCoin(x, y float64) bool    { return g.ClassAt(x, y) == ClassCoin }
