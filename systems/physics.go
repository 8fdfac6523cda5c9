package systems

import (
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/tilegrid"
)

// integrate remembers the current box for the resolver and advances the body
// by one frame ratio.
func integrate(obj *components.ObjectData, physics *components.PhysicsData, dt float64) {
	obj.SyncPrev()
	physics.Apply(dt, &obj.Box.X, &obj.Box.Y)
	if physics.VY > cfg.Physics.MaxFallSpeed {
		physics.VY = cfg.Physics.MaxFallSpeed
	}
}

// collideTiles resolves an integrated body against the grid, stops the
// blocked axes and settles it on the ground. It returns the resolver's report
// and the vertical speed the body had before it was stopped.
//
// A grounded body has gravity switched off and sits flush on the tile below,
// so a body at rest does not move at all from frame to frame.
func (w *World) collideTiles(obj *components.ObjectData, physics *components.PhysicsData) (tilegrid.Blocked, float64) {
	vy := physics.VY
	if physics.NoClip {
		physics.Blocked = tilegrid.BlockedNone
		physics.OnGround = false
		return tilegrid.BlockedNone, vy
	}

	blocked := tilegrid.Resolve(w.grid, obj.Prev, &obj.Box)
	physics.Blocked = blocked
	if blocked.X() {
		physics.VX = 0
	}
	if blocked.Y() {
		physics.VY = 0
	}

	// Wedged bodies keep falling so the resolver can drift them out
	if tilegrid.Overlaps(w.grid, obj.Box) {
		physics.OnGround = false
		physics.GravityEnabled = true
		return blocked, vy
	}

	physics.OnGround = vy >= 0 && tilegrid.Standing(w.grid, obj.Box)
	if physics.OnGround {
		if vy > 0 {
			obj.Box.Y = tilegrid.SnapToFloor(obj.Box.Y, obj.Box.H)
			physics.VY = 0
		}
		physics.GravityEnabled = false
	} else {
		physics.GravityEnabled = true
	}
	return blocked, vy
}

// landed reports a body that hit the ground this frame.
func landed(blocked tilegrid.Blocked, vy float64, physics *components.PhysicsData) bool {
	return physics.OnGround && vy > 0 || blocked.Y() && vy > 0
}
