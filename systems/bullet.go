package systems

import (
	"math"

	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
)

// UpdateBullets moves bullets, bounces them off the floor and drops the ones
// that hit a wall or leave the screen.
func UpdateBullets(w *World, s *session.State, dt float64) {
	for _, e := range liveEntries(w, components.Bullet) {
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		integrate(obj, physics, dt)
		blocked, vy := w.collideTiles(obj, physics)
		if blocked.X() {
			w.remove(e)
			continue
		}
		if vy > 0 && (blocked.Y() || physics.OnGround) {
			physics.VY = -math.Abs(vy)
			physics.GravityEnabled = true
			physics.OnGround = false
		}

		box := obj.Box
		if box.Right() < s.ScrollX || box.X > s.ScrollX+cfg.Screen.Width || box.Bottom() < 0 || box.Y > w.grid.PixelHeight() {
			w.remove(e)
		}
	}
}
