package systems

import (
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/automoto/floe/tags"
	"github.com/yohamta/donburi"
)

// DispatchCollisions runs the entity pair tests once per frame, after every
// entity has moved: bullet×badguy, badguy×badguy, badguy×player and
// upgrade×player, in that order. Entities removed by an earlier pair are
// skipped by every later one.
func DispatchCollisions(w *World, s *session.State, _ float64) {
	bullets := liveEntries(w, components.Bullet)
	badGuys := liveEntries(w, components.BadGuy)

	bulletsVsBadGuys(w, s, bullets, badGuys)
	badGuysVsBadGuys(w, s, badGuys)

	if components.Player.Get(w.player).Dying != cfg.DyingNot {
		return
	}
	badGuysVsPlayer(w, s, badGuys)
	upgradesVsPlayer(w, s, liveEntries(w, components.Upgrade))
}

// near returns the entities whose broadphase proxies share a cell with obj
// moved by dx, dy.
func near(obj *components.ObjectData, dx, dy float64, tag string) map[donburi.Entity]bool {
	if obj.Proxy == nil {
		return nil
	}
	check := obj.Proxy.Check(dx, dy, tag)
	if check == nil {
		return nil
	}
	out := make(map[donburi.Entity]bool, len(check.Objects))
	for _, o := range check.ObjectsByTags(tag) {
		if e, ok := o.Data.(*donburi.Entry); ok && e.Valid() {
			out[e.Entity()] = true
		}
	}
	return out
}

// touching confirms a broadphase candidate with the exact box test.
func touching(candidates map[donburi.Entity]bool, e *donburi.Entry, one, two gamemath.Box, offY float64) bool {
	return candidates[e.Entity()] && gamemath.RectCollisionOffset(one, two, 0, offY)
}

func gone(e *donburi.Entry) bool {
	return !e.Valid() || components.Object.Get(e).Removed
}

func bulletsVsBadGuys(w *World, s *session.State, bullets, badGuys []*donburi.Entry) {
	for _, b := range bullets {
		bObj := components.Object.Get(b)
		candidates := near(bObj, 0, 0, tags.ResolvBadGuy)
		if len(candidates) == 0 {
			continue
		}
		for _, g := range badGuys {
			bad := components.BadGuy.Get(g)
			if gone(g) || !bad.Live() || bad.Mode == cfg.ModeHeld {
				continue
			}
			if !touching(candidates, g, bObj.Box, components.Object.Get(g).Box, 0) {
				continue
			}
			w.knockOut(s, g, bad.KindConfig.KillScore)
			w.remove(b)
			break
		}
	}
}

func badGuysVsBadGuys(w *World, s *session.State, badGuys []*donburi.Entry) {
	for i, a := range badGuys {
		aBad := components.BadGuy.Get(a)
		if gone(a) || !aBad.Live() {
			continue
		}
		aObj := components.Object.Get(a)
		candidates := near(aObj, 0, 0, tags.ResolvBadGuy)
		if len(candidates) == 0 {
			continue
		}
		for _, b := range badGuys[i+1:] {
			bBad := components.BadGuy.Get(b)
			if gone(b) || !bBad.Live() || !aBad.Live() {
				continue
			}
			if !touching(candidates, b, aObj.Box, components.Object.Get(b).Box, 0) {
				continue
			}
			badGuysMeet(w, s, a, b)
		}
	}
}

func lethal(bad *components.BadGuyData) bool {
	return bad.Mode == cfg.ModeKick || bad.Mode == cfg.ModeHeld
}

// badGuysMeet resolves two bad guys touching: a moving shell knocks out
// whatever it hits, two walkers turn around.
func badGuysMeet(w *World, s *session.State, a, b *donburi.Entry) {
	aBad := components.BadGuy.Get(a)
	bBad := components.BadGuy.Get(b)
	aLethal, bLethal := lethal(aBad), lethal(bBad)

	if aLethal {
		w.knockOut(s, b, cfg.Score.Shell)
	}
	if bLethal {
		w.knockOut(s, a, cfg.Score.Shell)
	}
	if aLethal || bLethal {
		return
	}

	if aBad.Mode == cfg.ModeNormal && bBad.Mode == cfg.ModeNormal {
		aObj := components.Object.Get(a)
		bObj := components.Object.Get(b)
		// Face away from each other
		if aObj.Box.CenterX() < bObj.Box.CenterX() {
			aBad.Direction, bBad.Direction = cfg.DirectionLeft, cfg.DirectionRight
		} else {
			aBad.Direction, bBad.Direction = cfg.DirectionRight, cfg.DirectionLeft
		}
	}
}

func badGuysVsPlayer(w *World, s *session.State, badGuys []*donburi.Entry) {
	player := components.Player.Get(w.player)
	pObj := components.Object.Get(w.player)
	pPhys := components.Physics.Get(w.player)

	candidates := near(pObj, 0, 1, tags.ResolvBadGuy)
	if len(candidates) == 0 {
		return
	}
	for _, g := range badGuys {
		// Once the player is dying every further contact is a no-op
		if player.Dying != cfg.DyingNot {
			return
		}
		bad := components.BadGuy.Get(g)
		if gone(g) || !bad.Live() || bad.Mode == cfg.ModeHeld {
			continue
		}
		gBox := components.Object.Get(g).Box
		if !touching(candidates, g, pObj.Box, gBox, 1) {
			continue
		}

		if isStomp(pObj, pPhys, gBox) && w.stompBadGuy(s, g) {
			continue
		}
		if gamemath.RectCollision(pObj.Box, gBox) {
			w.playerTouchesBadGuy(s, g)
		}
	}
}

// isStomp reports the player coming down on top of box: not rising, and its
// feet were above box's middle last frame.
func isStomp(pObj *components.ObjectData, pPhys *components.PhysicsData, box gamemath.Box) bool {
	return pPhys.VY >= 0 && pObj.Prev.Bottom() < box.Y+box.H/2
}

// playerTouchesBadGuy handles a side contact. The player side runs first: a
// stunned shell is grabbed or kicked, an invincible player knocks the bad guy
// out, and anything hostile hurts.
func (w *World) playerTouchesBadGuy(s *session.State, e *donburi.Entry) {
	player := components.Player.Get(w.player)
	pObj := components.Object.Get(w.player)
	input := components.Input.Get(w.player)
	bad := components.BadGuy.Get(e)
	obj := components.Object.Get(e)
	physics := components.Physics.Get(e)

	if bad.Mode == cfg.ModeFlat {
		if input.Pressed(cfg.ActionFire) && player.Holding == nil {
			bad.Mode = cfg.ModeHeld
			bad.Timer.Stop()
			obj.Box.Y -= cfg.BadGuy.HeldLift
			obj.SyncPrev()
			physics.Reset()
			physics.GravityEnabled = false
			physics.NoClip = true
			player.Holding = e
			w.emit(cfg.EventGrab, obj.Box.X, obj.Box.Y, 0)
			return
		}

		right := pObj.Box.CenterX() < obj.Box.CenterX()
		push := -cfg.BadGuy.KickPushLeft
		if right {
			push = cfg.BadGuy.KickPushRight
		}
		if pushed := obj.Box.Offset(push, 0); !tilegrid.Overlaps(w.grid, pushed) {
			obj.Box = pushed
			obj.SyncPrev()
		}
		w.kickShell(e, right)
		w.score(s, obj.Box.X, obj.Box.Y, cfg.Score.Kick)
		return
	}

	if player.Invincible.Check() {
		w.knockOut(s, e, bad.KindConfig.KillScore)
		return
	}

	hostile := bad.Mode == cfg.ModeNormal || bad.Mode == cfg.ModeKick && !bad.KickGrace.Check()
	if hostile && player.Hurtable() {
		w.killPlayer(s, cfg.KillShrink)
	}
}

func upgradesVsPlayer(w *World, s *session.State, upgrades []*donburi.Entry) {
	pObj := components.Object.Get(w.player)
	candidates := near(pObj, 0, 0, tags.ResolvUpgrade)
	if len(candidates) == 0 {
		return
	}
	for _, u := range upgrades {
		if gone(u) {
			continue
		}
		if !touching(candidates, u, pObj.Box, components.Object.Get(u).Box, 0) {
			continue
		}
		w.collectUpgrade(s, u)
	}
}

// collectUpgrade applies an item to the player and takes it out of play.
func (w *World) collectUpgrade(s *session.State, e *donburi.Entry) {
	up := components.Upgrade.Get(e)
	obj := components.Object.Get(e)
	player := components.Player.Get(w.player)

	switch up.Kind {
	case cfg.UpgradeMints:
		w.growPlayer(s)
	case cfg.UpgradeCoffee:
		w.growPlayer(s)
		s.GotCoffee = true
		w.emit(cfg.EventCoffee, obj.Box.X, obj.Box.Y, 0)
	case cfg.UpgradeHerring:
		player.Invincible.Start(cfg.Player.InvincibleTime)
		w.emit(cfg.EventInvincible, obj.Box.X, obj.Box.Y, 0)
	}
	w.remove(e)
}
