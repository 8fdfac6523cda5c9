package systems

import (
	"math"

	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
)

// UpdateUpgrades raises fresh items out of their box, then lets mints walk
// and herrings bounce. Coffee stays where it appeared.
func UpdateUpgrades(w *World, s *session.State, dt float64) {
	for _, e := range liveEntries(w, components.Upgrade) {
		up := components.Upgrade.Get(e)
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		if up.Rise > 0 {
			step := math.Min(cfg.Objects.UpgradeRise*dt, up.Rise)
			obj.SyncPrev()
			obj.Box.Y -= step
			up.Rise -= step
			if up.Rise <= 0 && up.Kind != cfg.UpgradeCoffee {
				physics.NoClip = false
				physics.GravityEnabled = true
			}
			continue
		}
		if up.Kind == cfg.UpgradeCoffee {
			continue
		}

		physics.VX = up.Direction * cfg.Objects.UpgradeSpeed
		integrate(obj, physics, dt)
		blocked, vy := w.collideTiles(obj, physics)
		if blocked.X() {
			up.Direction = -up.Direction
		}
		if up.Kind == cfg.UpgradeHerring && landed(blocked, vy, physics) {
			physics.VY = -cfg.Objects.HerringHop
			physics.GravityEnabled = true
			physics.OnGround = false
		}

		if obj.Box.Right() < s.ScrollX || obj.Box.Y > w.grid.PixelHeight() {
			w.remove(e)
		}
	}
}
