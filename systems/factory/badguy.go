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

func CreateBadGuy(env Env, kind cfg.BadGuyKind, x, y float64) *donburi.Entry {
	// Unknown kinds fall back to the plain walker
	kindCfg, ok := cfg.BadGuy.Kinds[kind]
	if !ok {
		kind = cfg.BadGuyBSOD
		kindCfg = cfg.BadGuy.Kinds[kind]
	}

	badGuy := archetypes.BadGuy.Spawn(env.Entities())
	setObject(env, badGuy, gamemath.Box{X: x, Y: y, W: kindCfg.Width, H: kindCfg.Height}, tags.ResolvBadGuy)

	clock := env.Clock()
	components.BadGuy.SetValue(badGuy, components.BadGuyData{
		Kind:       kind,
		KindConfig: &kindCfg,
		Mode:       cfg.ModeNormal,
		Dying:      cfg.DyingNot,
		Direction:  cfg.DirectionLeft, // start walking toward the player
		Timer:      gametime.NewTimer(clock),
		KickGrace:  gametime.NewTimer(clock),
	})
	components.Physics.SetValue(badGuy, components.PhysicsData{
		Physic: gamemath.Physic{
			GravityEnabled: true,
			Gravity:        cfg.Physics.Gravity,
		},
	})

	return badGuy
}
