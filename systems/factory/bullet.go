package factory

import (
	"github.com/automoto/floe/archetypes"
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/tags"
	"github.com/yohamta/donburi"
)

// CreateBullet fires a bullet from x, y. carried is the shooter's horizontal
// speed, added so bullets never lag a running player.
func CreateBullet(env Env, x, y, direction, carried float64) *donburi.Entry {
	bullet := archetypes.Bullet.Spawn(env.Entities())

	size := cfg.Objects.BulletSize
	setObject(env, bullet, gamemath.Box{X: x, Y: y, W: size, H: size}, tags.ResolvBullet)

	components.Bullet.SetValue(bullet, components.BulletData{Direction: direction})
	components.Physics.SetValue(bullet, components.PhysicsData{
		Physic: gamemath.Physic{
			VX:             direction*cfg.Objects.BulletSpeed + carried,
			GravityEnabled: true,
			Gravity:        cfg.Physics.Gravity,
		},
	})

	return bullet
}
