// Package tilegrid holds the static tile map of the active level, the point
// queries movers ask of it, and the swept resolver that keeps boxes out of
// solid tiles.
package tilegrid

const (
	// TileSize is the edge of one cell in world pixels.
	TileSize = 32.0
	// Rows is the height band of every level. Anything below it is open air.
	Rows = 15

	Empty byte = '.'
)

// Class is what a tile character means to the physics.
type Class int

const (
	ClassNone Class = iota
	ClassSolid
	ClassBrick
	ClassIce
	ClassFullBox
	ClassEmptyBox
	ClassDecorative
	ClassCoin
)

func (c Class) String() string {
	switch c {
	case ClassSolid:
		return "solid"
	case ClassBrick:
		return "brick"
	case ClassIce:
		return "ice"
	case ClassFullBox:
		return "full-box"
	case ClassEmptyBox:
		return "empty-box"
	case ClassDecorative:
		return "decorative"
	case ClassCoin:
		return "coin"
	}
	return "none"
}

// Solid reports whether movers are blocked by the class.
func (c Class) Solid() bool {
	switch c {
	case ClassSolid, ClassBrick, ClassIce, ClassFullBox, ClassEmptyBox:
		return true
	}
	return false
}

var classes [256]Class

func init() {
	for _, c := range "[=]" {
		classes[c] = ClassSolid
	}
	for _, c := range "XYxy" {
		classes[c] = ClassBrick
	}
	classes['#'] = ClassIce
	for _, c := range "AB!" {
		classes[c] = ClassFullBox
	}
	classes['a'] = ClassEmptyBox
	classes['$'] = ClassCoin
	for _, c := range `(-)^*|\/` {
		classes[c] = ClassDecorative
	}
}

// ClassOf maps a tile character to its class. Unknown characters are ClassNone.
func ClassOf(c byte) Class {
	return classes[c]
}

// Known reports whether c is a tile character this package understands.
func Known(c byte) bool {
	return c == Empty || classes[c] != ClassNone
}

// IsCoinBrick reports a brick that pays coins instead of breaking.
func IsCoinBrick(c byte) bool {
	return c == 'x' || c == 'y'
}

// Grid is the tile map of one level: Rows rows of width cells.
type Grid struct {
	width int
	cells []byte
}

// New returns an empty grid width cells wide.
func New(width int) *Grid {
	if width < 0 {
		width = 0
	}
	cells := make([]byte, width*Rows)
	for i := range cells {
		cells[i] = Empty
	}
	return &Grid{width: width, cells: cells}
}

// FromRows builds a grid from text rows, top row first. Short rows are padded
// with empty cells; rows past the height band are ignored.
func FromRows(rows []string) *Grid {
	width := 0
	for i, r := range rows {
		if i >= Rows {
			break
		}
		if len(r) > width {
			width = len(r)
		}
	}
	g := New(width)
	for row, r := range rows {
		if row >= Rows {
			break
		}
		for col := 0; col < len(r); col++ {
			g.cells[row*width+col] = r[col]
		}
	}
	return g
}

func (g *Grid) Width() int  { return g.width }
func (g *Grid) Height() int { return Rows }

// PixelWidth returns the level width in world pixels.
func (g *Grid) PixelWidth() float64 { return float64(g.width) * TileSize }

// PixelHeight returns the height band in world pixels.
func (g *Grid) PixelHeight() float64 { return Rows * TileSize }

func (g *Grid) inside(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < Rows
}

// Tile returns the character at a cell, or Empty outside the level.
func (g *Grid) Tile(col, row int) byte {
	if !g.inside(col, row) {
		return Empty
	}
	return g.cells[row*g.width+col]
}

// SetTile replaces one cell. Writes outside the level are dropped.
func (g *Grid) SetTile(col, row int, c byte) bool {
	if !g.inside(col, row) {
		return false
	}
	g.cells[row*g.width+col] = c
	return true
}

// Lines returns the grid as text rows.
func (g *Grid) Lines() []string {
	out := make([]string, Rows)
	for row := 0; row < Rows; row++ {
		out[row] = string(g.cells[row*g.width : (row+1)*g.width])
	}
	return out
}

// Clone returns an independent copy.
func (g *Grid) Clone() *Grid {
	cells := make([]byte, len(g.cells))
	copy(cells, g.cells)
	return &Grid{width: g.width, cells: cells}
}
