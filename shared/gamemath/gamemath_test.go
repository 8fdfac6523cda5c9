package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyIsSemiImplicit(t *testing.T) {
	p := Physic{VX: 2, VY: -1, GravityEnabled: true, Gravity: 0.5}
	x, y := 10.0, 20.0

	p.Apply(1, &x, &y)

	assert.Equal(t, -0.5, p.VY)
	assert.Equal(t, 12.0, x)
	assert.Equal(t, 19.5, y)
}

func TestApplyScalesWithFrameRatio(t *testing.T) {
	p := Physic{VX: 3, AX: 1}
	x, y := 0.0, 0.0

	p.Apply(0.5, &x, &y)

	assert.Equal(t, 3.5, p.VX)
	assert.Equal(t, 1.75, x)
	assert.Equal(t, 0.0, y)
}

func TestGravityOnlyWhenEnabled(t *testing.T) {
	p := Physic{Gravity: 1}
	x, y := 0.0, 0.0
	p.Apply(1, &x, &y)
	assert.Equal(t, 0.0, y)

	p.GravityEnabled = true
	p.Apply(1, &x, &y)
	assert.Equal(t, 1.0, y)
}

func TestRectCollisionMargin(t *testing.T) {
	a := Box{X: 0, Y: 0, W: 32, H: 32}

	assert.True(t, RectCollision(a, Box{X: 31, Y: 0, W: 32, H: 32}))
	assert.False(t, RectCollision(a, Box{X: 32, Y: 0, W: 32, H: 32}), "touching edges")
	assert.False(t, RectCollision(a, Box{X: 0, Y: 32, W: 32, H: 32}), "stacked")
	assert.True(t, RectCollisionOffset(a, Box{X: 0, Y: 32, W: 32, H: 32}, 0, 1))
	assert.False(t, RectCollision(a, Box{X: 100, Y: 100, W: 4, H: 4}))
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, 0.0, ApplyFriction(0.2, 0.5))
	assert.Equal(t, -1.5, ApplyFriction(-2, 0.5))
	assert.Equal(t, 3.0, ClampSpeed(7, 3))
	assert.Equal(t, -3.0, ClampSpeed(-7, 3))
	assert.Equal(t, -1.0, Sign(-0.01))
	assert.Equal(t, 0.0, Sign(0))

	b := Box{X: 1, Y: 2, W: 3, H: 4}
	assert.Equal(t, 4.0, b.Right())
	assert.Equal(t, 6.0, b.Bottom())
	assert.Equal(t, 2.5, b.CenterX())
	assert.True(t, Box{W: 0, H: 1}.Degenerate())
}

func TestBoxFinite(t *testing.T) {
	assert.True(t, Box{X: -3, Y: 1e9, W: 32, H: 32}.Finite())
	assert.False(t, Box{X: math.NaN(), W: 32, H: 32}.Finite())
	assert.False(t, Box{Y: math.Inf(-1), W: 32, H: 32}.Finite())
	assert.False(t, Box{W: math.Inf(1), H: 32}.Finite())
}
