package factory

import (
	"github.com/automoto/floe/archetypes"
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/automoto/floe/tags"
	"github.com/yohamta/donburi"
)

// CreateUpgrade releases an item from the box tile whose top-left corner is
// x, y. It climbs out of the box before it starts to move.
func CreateUpgrade(env Env, kind cfg.UpgradeKind, x, y, direction float64) *donburi.Entry {
	upgrade := archetypes.Upgrade.Spawn(env.Entities())

	setObject(env, upgrade, gamemath.Box{X: x, Y: y, W: tilegrid.TileSize, H: tilegrid.TileSize}, tags.ResolvUpgrade)

	components.Upgrade.SetValue(upgrade, components.UpgradeData{
		Kind:      kind,
		Direction: direction,
		Rise:      tilegrid.TileSize,
	})
	components.Physics.SetValue(upgrade, components.PhysicsData{
		Physic: gamemath.Physic{
			Gravity: cfg.Physics.Gravity,
		},
		NoClip: true,
	})

	return upgrade
}
