package tilegrid

import (
	"math"

	"github.com/automoto/floe/shared/gamemath"
)

// Blocked reports which axes the resolver had to stop.
type Blocked uint8

const (
	BlockedNone Blocked = 0
	BlockedX    Blocked = 1 << 0
	BlockedY    Blocked = 1 << 1
	BlockedBoth         = BlockedX | BlockedY
)

func (b Blocked) X() bool { return b&BlockedX != 0 }
func (b Blocked) Y() bool { return b&BlockedY != 0 }

func (b Blocked) String() string {
	switch b {
	case BlockedX:
		return "x"
	case BlockedY:
		return "y"
	case BlockedBoth:
		return "both"
	}
	return "none"
}

// Overlaps reports whether a box touches a solid tile. The sampled cells start
// one pixel inside the box's top-left corner and stop before its far edges, so
// a box resting exactly on a tile boundary is clear.
func Overlaps(q Query, b gamemath.Box) bool {
	if b.Degenerate() {
		return false
	}
	startCol := Cell(b.X + 1)
	startRow := Cell(b.Y + 1)
	maxX := math.Floor(b.X + b.W)
	maxY := math.Floor(b.Y + b.H)
	for col := startCol; float64(col)*TileSize < maxX; col++ {
		for row := startRow; float64(row)*TileSize < maxY; row++ {
			if q.ClassAt(float64(col)*TileSize, float64(row)*TileSize).Solid() {
				return true
			}
		}
	}
	return false
}

// Resolve moves candidate out of solid tiles given where the box was last
// frame. The horizontal move is swept first at the previous Y, then the
// vertical move at the corrected X. Each sweep probes one pixel at a time and,
// on the first blocked probe, walks back a pixel at a time until clear without
// passing the previous position. A downward stop lands flush on the tile
// boundary. Zero motion and degenerate boxes are left alone. A candidate with
// a NaN or infinite coordinate is put back at prev.
func Resolve(q Query, prev gamemath.Box, candidate *gamemath.Box) Blocked {
	if !prev.Finite() {
		return BlockedNone
	}
	if !candidate.Finite() {
		candidate.X, candidate.Y = prev.X, prev.Y
		return BlockedNone
	}
	if candidate.Degenerate() || prev.Degenerate() {
		return BlockedNone
	}
	if prev.X == candidate.X && prev.Y == candidate.Y {
		return BlockedNone
	}

	start := gamemath.Box{X: prev.X, Y: prev.Y, W: candidate.W, H: candidate.H}

	// A tall box wedged under an overhang (usually right after growing) is
	// nudged down a pixel per call until it is free.
	if candidate.H > TileSize && Overlaps(q, start) {
		candidate.X = prev.X
		candidate.Y = prev.Y + 1
		return BlockedBoth
	}

	var blocked Blocked

	x, hitX := sweep(q, start, prev.X, candidate.X, true)
	if hitX {
		blocked |= BlockedX
	}
	candidate.X = x

	start.X = x
	y, hitY := sweep(q, start, prev.Y, candidate.Y, false)
	if hitY {
		blocked |= BlockedY
		if candidate.Y > prev.Y {
			y = SnapToFloor(y, candidate.H)
		}
	}
	candidate.Y = y

	return blocked
}

// sweep moves box along one axis from 'from' to 'to' and returns where it
// stopped.
func sweep(q Query, box gamemath.Box, from, to float64, horizontal bool) (float64, bool) {
	if from == to {
		return to, false
	}
	dir := gamemath.Sign(to - from)
	length := math.Abs(to - from)

	at := func(v float64) gamemath.Box {
		b := box
		if horizontal {
			b.X = v
		} else {
			b.Y = v
		}
		return b
	}

	for step := 1.0; ; step++ {
		if step > length {
			step = length
		}
		probe := from + dir*step
		if Overlaps(q, at(probe)) {
			for Overlaps(q, at(probe)) && (probe-from)*dir > 0 {
				probe -= dir
			}
			if (probe-from)*dir < 0 {
				probe = from
			}
			return probe, true
		}
		if step == length {
			return to, false
		}
	}
}

// SnapToFloor puts the bottom of a box of height h resting at y on the tile
// boundary below it.
func SnapToFloor(y, h float64) float64 {
	bottom := math.Floor((y+h)/TileSize) * TileSize
	return bottom - h
}

// Standing reports solid geometry right under the bottom edge of the box,
// probed at both lower corners and the middle.
func Standing(q Query, b gamemath.Box) bool {
	return underfoot(q, b, func(c Class) bool { return c.Solid() })
}

// OnIce reports ice under the box.
func OnIce(q Query, b gamemath.Box) bool {
	return underfoot(q, b, func(c Class) bool { return c == ClassIce })
}

func underfoot(q Query, b gamemath.Box, match func(Class) bool) bool {
	if b.Degenerate() {
		return false
	}
	y := b.Bottom()
	return match(q.ClassAt(b.X+1, y)) || match(q.ClassAt(b.CenterX(), y)) || match(q.ClassAt(b.Right()-1, y))
}
