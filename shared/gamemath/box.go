// Package gamemath holds the axis-aligned geometry and integration helpers
// shared by every moving entity. It has no dependencies on ebitengine,
// donburi, or resolv.
package gamemath

import "math"

// Box is an axis-aligned bounding box in world pixels. The origin is the top
// left corner and Y grows downward.
type Box struct {
	X, Y, W, H float64
}

func (b Box) Right() float64  { return b.X + b.W }
func (b Box) Bottom() float64 { return b.Y + b.H }

// CenterX returns the horizontal midpoint.
func (b Box) CenterX() float64 { return b.X + b.W/2 }

// Degenerate reports a box with no area.
func (b Box) Degenerate() bool {
	return b.W <= 0 || b.H <= 0
}

// Finite reports whether every field is a real number.
func (b Box) Finite() bool {
	for _, v := range [...]float64{b.X, b.Y, b.W, b.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Offset returns a copy moved by dx, dy.
func (b Box) Offset(dx, dy float64) Box {
	b.X += dx
	b.Y += dy
	return b
}

// RectCollision reports whether two boxes overlap by more than the one pixel
// contact margin on both axes. Touching edges do not collide.
func RectCollision(one, two Box) bool {
	return one.X >= two.X-one.W+1 && one.X <= two.X+two.W-1 &&
		one.Y >= two.Y-one.H+1 && one.Y <= two.Y+two.H-1
}

// RectCollisionOffset is RectCollision with one moved by offX, offY.
func RectCollisionOffset(one, two Box, offX, offY float64) bool {
	return RectCollision(one.Offset(offX, offY), two)
}
