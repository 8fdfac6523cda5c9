package systems

import (
	"math"

	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/systems/factory"
	"github.com/yohamta/donburi"
)

// UpdateBadGuys runs the AI and movement of every bad guy near the screen.
// Dying bad guys always update so they leave the level.
func UpdateBadGuys(w *World, s *session.State, dt float64) {
	left := s.ScrollX - cfg.Screen.ActiveMargin
	right := s.ScrollX + cfg.Screen.Width + cfg.Screen.ActiveMargin

	for _, e := range liveEntries(w, components.BadGuy) {
		bad := components.BadGuy.Get(e)
		obj := components.Object.Get(e)
		if bad.Live() && (obj.Box.Right() < left || obj.Box.X > right) {
			continue
		}
		updateBadGuy(w, e, bad, obj, components.Physics.Get(e), dt)
	}
}

func updateBadGuy(w *World, e *donburi.Entry, bad *components.BadGuyData, obj *components.ObjectData, physics *components.PhysicsData, dt float64) {
	switch bad.Dying {
	case cfg.DyingFalling:
		obj.SyncPrev()
		physics.Apply(dt, &obj.Box.X, &obj.Box.Y)
		physics.VY = math.Min(physics.VY, cfg.Physics.MaxDyingFall)
		if obj.Box.Y > w.grid.PixelHeight() {
			w.remove(e)
		}
		return
	case cfg.DyingSquished:
		if !bad.Timer.Check() {
			w.remove(e)
		}
		return
	}

	switch bad.Mode {
	case cfg.ModeHeld:
		// Moved by the player that carries it
		return
	case cfg.ModeFlat:
		physics.VX = 0
		if !bad.Timer.Check() {
			bad.Mode = cfg.ModeNormal
		}
	case cfg.ModeKick:
		physics.VX = bad.Direction * cfg.BadGuy.KickSpeed
	case cfg.ModeNormal:
		physics.VX = bad.Direction * bad.KindConfig.WalkSpeed
		if bad.KindConfig.JumpSpeed > 0 && physics.OnGround {
			physics.VY = -bad.KindConfig.JumpSpeed
			physics.GravityEnabled = true
			physics.OnGround = false
		}
	}

	integrate(obj, physics, dt)
	blocked, _ := w.collideTiles(obj, physics)
	if blocked.X() && bad.Mode != cfg.ModeFlat {
		bad.Direction = -bad.Direction
	}

	if obj.Box.Y > w.grid.PixelHeight() {
		w.remove(e)
	}
}

// stompBadGuy applies a stomp from above. It reports false for kinds that
// cannot be stomped; those contacts are handled as side contacts.
func (w *World) stompBadGuy(s *session.State, e *donburi.Entry) bool {
	bad := components.BadGuy.Get(e)
	kind := bad.KindConfig
	if !kind.Stompable {
		return false
	}
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)
	pObj := components.Object.Get(w.player)

	points := kind.StompScore
	switch {
	case !kind.HasShell:
		bad.Dying = cfg.DyingSquished
		bad.Timer.Start(kind.SquishTimer)
		physics.VX = 0
		w.emit(cfg.EventBadGuySquish, obj.Box.X, obj.Box.Y, 0)
	case bad.Mode == cfg.ModeNormal, bad.Mode == cfg.ModeKick:
		bad.Mode = cfg.ModeFlat
		bad.Timer.Start(cfg.BadGuy.FlatTime)
		physics.VX = 0
		w.emit(cfg.EventStomp, obj.Box.X, obj.Box.Y, 0)
	case bad.Mode == cfg.ModeFlat:
		w.kickShell(e, pObj.Box.CenterX() < obj.Box.CenterX())
		points = cfg.Score.Kick
	default:
		return false
	}

	pPhys := components.Physics.Get(w.player)
	pObj.Box.Y = obj.Box.Y - pObj.Box.H - 1
	pPhys.VY = -cfg.Player.StompBounce
	pPhys.GravityEnabled = true
	pPhys.OnGround = false

	w.score(s, obj.Box.X, obj.Box.Y, points)
	s.BumpMultiplier()
	return true
}

// kickShell sends a stunned shell sliding; right picks the direction.
func (w *World) kickShell(e *donburi.Entry, right bool) {
	bad := components.BadGuy.Get(e)
	obj := components.Object.Get(e)

	bad.Direction = cfg.DirectionLeft
	if right {
		bad.Direction = cfg.DirectionRight
	}
	bad.Mode = cfg.ModeKick
	bad.Timer.Stop()
	bad.KickGrace.Start(cfg.BadGuy.KickGraceTime)
	components.Physics.Get(e).VX = bad.Direction * cfg.BadGuy.KickSpeed
	w.emit(cfg.EventKick, obj.Box.X, obj.Box.Y, 0)
}

// knockOut makes a bad guy hop and fall out of the level.
func (w *World) knockOut(s *session.State, e *donburi.Entry, base int) {
	bad := components.BadGuy.Get(e)
	if !bad.Live() {
		return
	}
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)

	if bad.Mode == cfg.ModeHeld {
		player := components.Player.Get(w.player)
		if sameEntity(player.Holding, e) {
			player.Holding = nil
		}
	}
	bad.Dying = cfg.DyingFalling
	bad.Timer.Stop()
	physics.VY = -cfg.BadGuy.FallHop
	physics.GravityEnabled = true
	physics.OnGround = false
	physics.NoClip = true

	w.score(s, obj.Box.X, obj.Box.Y, base)
	w.emit(cfg.EventBadGuyFall, obj.Box.X, obj.Box.Y, 0)
}

// score awards base times the multiplier and shows it where it was earned.
func (w *World) score(s *session.State, x, y float64, base int) {
	if base <= 0 {
		return
	}
	points := s.AddScore(base)
	factory.CreateFloatingScore(w, x, y, points)
	w.emit(cfg.EventScore, x, y, points)
}
