package factory

import (
	"github.com/automoto/floe/archetypes"
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/gametime"
	"github.com/automoto/floe/tags"
	"github.com/yohamta/donburi"
)

// PlayerHeight returns the box height for a size.
func PlayerHeight(size cfg.PlayerSize) float64 {
	if size == cfg.SizeBig {
		return cfg.Player.BigHeight
	}
	return cfg.Player.SmallHeight
}

// CreatePlayer spawns the player with its feet where a small player standing
// at x, y would have them.
func CreatePlayer(env Env, x, y float64, size cfg.PlayerSize) *donburi.Entry {
	player := archetypes.Player.Spawn(env.Entities())

	h := PlayerHeight(size)
	y += cfg.Player.SmallHeight - h
	setObject(env, player, gamemath.Box{X: x, Y: y, W: cfg.Player.Width, H: h}, tags.ResolvPlayer)

	clock := env.Clock()
	components.Player.SetValue(player, components.PlayerData{
		Size:       size,
		Direction:  cfg.DirectionRight,
		Dying:      cfg.DyingNot,
		CanJump:    true,
		Invincible: gametime.NewTimer(clock),
		Skidding:   gametime.NewTimer(clock),
		Safe:       gametime.NewTimer(clock),
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Physic: gamemath.Physic{
			GravityEnabled: true,
			Gravity:        cfg.Physics.Gravity,
		},
	})
	components.Input.SetValue(player, components.InputData{})

	return player
}
