// Package leveldata turns level files into pure level data. It has no
// dependencies on ebitengine, donburi, or resolv.
package leveldata

import (
	"errors"

	"github.com/automoto/floe/shared/tilegrid"
)

var (
	// ErrMalformed marks level data that cannot be turned into a level.
	ErrMalformed = errors.New("malformed level")
	// ErrNoLevels is returned when a directory holds no level files.
	ErrNoLevels = errors.New("no levels found")
)

// Level is one parsed level. Rows always holds tilegrid.Rows rows of Width
// characters; bad guy markers have already been moved into BadGuys.
type Level struct {
	Name       string // file stem, used to select levels
	Title      string
	Theme      string
	Time       int // seconds on the level timer
	Background [3]uint8
	Width      int
	Rows       []string
	Start      Point
	BadGuys    []Spawn
	Source     string
}

// Point is a world position in pixels.
type Point struct {
	X, Y float64
}

// Spawn places a bad guy of the named kind.
type Spawn struct {
	Kind string
	X, Y float64
}

// Grid returns a fresh tile grid for the level. Each call is independent, so
// a reset can start from the pristine map.
func (l *Level) Grid() *tilegrid.Grid {
	return tilegrid.FromRows(l.Rows)
}

// EndX is the world X at which the level counts as finished.
func (l *Level) EndX(endTiles int) float64 {
	return float64(l.Width-endTiles) * tilegrid.TileSize
}

// DefaultStart is where the player appears when a level names no start.
var DefaultStart = Point{X: 0, Y: 240}

// DefaultTime is the level timer used when a level sets none.
const DefaultTime = 300
