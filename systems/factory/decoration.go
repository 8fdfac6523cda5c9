package factory

import (
	"github.com/automoto/floe/archetypes"
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/gametime"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

func spawnDecoration(env Env, box gamemath.Box, data components.DecorationData, physic gamemath.Physic) *donburi.Entry {
	deco := archetypes.Decoration.Spawn(env.Entities())
	setObject(env, deco, box, "")
	components.Decoration.SetValue(deco, data)
	components.Physics.SetValue(deco, components.PhysicsData{Physic: physic, NoClip: true})
	return deco
}

// CreateBouncyDistro pops a coin out of the tile at x, y.
func CreateBouncyDistro(env Env, x, y float64) *donburi.Entry {
	return spawnDecoration(env,
		gamemath.Box{X: x, Y: y, W: tilegrid.TileSize, H: tilegrid.TileSize},
		components.DecorationData{Kind: components.BouncyDistro},
		gamemath.Physic{
			VY:             -cfg.Objects.BouncyDistroSpeed,
			GravityEnabled: true,
			Gravity:        cfg.Objects.BouncyDistroGravity,
		},
	)
}

// brokenBrickVelocities are the four pieces of a shattered brick.
var brokenBrickVelocities = [4][2]float64{
	{-1, -4}, {-1, -6}, {1, -4}, {1, -6},
}

// CreateBrokenBrick shatters the brick tile at x, y into four pieces.
func CreateBrokenBrick(env Env, x, y float64) []*donburi.Entry {
	size := cfg.Objects.BrokenBrickSize
	pieces := make([]*donburi.Entry, 0, len(brokenBrickVelocities))
	for i, v := range brokenBrickVelocities {
		box := gamemath.Box{
			X: x + float64(i/2)*size,
			Y: y + float64(i%2)*size,
			W: size,
			H: size,
		}
		timer := gametime.NewTimer(env.Clock())
		timer.Start(cfg.Objects.BrokenBrickTime)
		pieces = append(pieces, spawnDecoration(env, box,
			components.DecorationData{Kind: components.BrokenBrick, Timer: timer},
			gamemath.Physic{VX: v[0], VY: v[1], GravityEnabled: true, Gravity: cfg.Physics.Gravity},
		))
	}
	return pieces
}

// bounceThere rises over the first half of the duration and falls back over
// the second, so the tween ends where it started.
func bounceThere(t, b, c, d float32) float32 {
	half := d / 2
	if t < half {
		return b + c*t/half
	}
	return b + c*(d-t)/half
}

// CreateBouncyBrick makes the tile at x, y jump up and settle. The tile stays
// in the grid; the decoration only carries the drawing offset.
func CreateBouncyBrick(env Env, x, y float64, tile byte) *donburi.Entry {
	return spawnDecoration(env,
		gamemath.Box{X: x, Y: y, W: tilegrid.TileSize, H: tilegrid.TileSize},
		components.DecorationData{
			Kind:  components.BouncyBrick,
			Tile:  tile,
			Tween: gween.New(0, float32(-cfg.Objects.BouncyBrickOffset), float32(cfg.Objects.BouncyBrickTime), bounceThere),
		},
		gamemath.Physic{},
	)
}

// CreateFloatingScore shows points rising from x, y.
func CreateFloatingScore(env Env, x, y float64, points int) *donburi.Entry {
	return spawnDecoration(env,
		gamemath.Box{X: x, Y: y, W: tilegrid.TileSize, H: tilegrid.TileSize / 2},
		components.DecorationData{
			Kind:   components.FloatingScore,
			Points: points,
			Tween:  gween.New(float32(y), float32(y-cfg.Objects.FloatingScoreRise), float32(cfg.Objects.FloatingScoreTime), ease.OutQuad),
		},
		gamemath.Physic{},
	)
}
