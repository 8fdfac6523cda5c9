package systems

import (
	"math"

	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/automoto/floe/systems/factory"
)

// UpdatePlayer turns input into velocity, moves the player through the tile
// grid and applies what it ran into: head bumps, coins and pits.
func UpdatePlayer(w *World, s *session.State, dt float64) {
	entry := w.player
	player := components.Player.Get(entry)
	physics := components.Physics.Get(entry)
	obj := components.Object.Get(entry)
	input := components.Input.Get(entry)

	// A dying player ignores input and falls through everything.
	if player.Dying != cfg.DyingNot {
		obj.SyncPrev()
		physics.Apply(dt, &obj.Box.X, &obj.Box.Y)
		physics.VY = math.Min(physics.VY, cfg.Physics.MaxDyingFall)
		return
	}

	handlePlayerInput(w, s, input, player, physics, obj, dt)

	integrate(obj, physics, dt)
	if obj.Box.X < s.ScrollX {
		obj.Box.X = s.ScrollX
		physics.VX = math.Max(physics.VX, 0)
	}

	blocked, vy := w.collideTiles(obj, physics)
	if blocked.Y() && vy < 0 {
		player.Jumping = false
		w.bumpHead(s, obj.Box, player)
	}
	if landed(blocked, vy, physics) {
		player.Jumping = false
		s.ResetMultiplier()
	}

	w.collectCoins(s, obj.Box)
	w.carryShell(player, obj, input)

	if obj.Box.Y >= w.grid.PixelHeight() {
		w.die(s, cfg.DyingFalling, 0)
	}
}

func handlePlayerInput(w *World, s *session.State, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData, dt float64) {
	updateDuck(w, input, player, physics, obj)

	if player.Duck && physics.OnGround {
		slowDown(physics, dt)
	} else {
		updateWalk(w, input, player, physics, obj, dt)
	}

	updateJump(w, input, player, physics, obj)
	updateFire(w, s, input, player, physics, obj)
}

// updateWalk blends the horizontal speed toward the walk or run cap.
func updateWalk(w *World, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData, dt float64) {
	dir := 0.0
	if input.Pressed(cfg.ActionMoveRight) {
		dir = cfg.DirectionRight
	} else if input.Pressed(cfg.ActionMoveLeft) {
		dir = cfg.DirectionLeft
	}
	if dir == 0 {
		slowDown(physics, dt)
		return
	}
	player.Direction = dir

	maxSpeed := cfg.Player.MaxWalkXM
	accel := cfg.Player.WalkAcceleration
	if input.Pressed(cfg.ActionFire) {
		maxSpeed = cfg.Player.MaxRunXM
		accel = cfg.Player.RunAcceleration
	}
	if physics.OnGround && tilegrid.OnIce(w.grid, obj.Box) {
		accel *= cfg.Player.IceAcceleration
	}

	vx := physics.VX
	switch {
	case vx == 0:
		vx = dir * cfg.Player.WalkSpeed
	case gamemath.Sign(vx) != dir:
		factor := cfg.Player.ReverseFactor
		if physics.OnGround && math.Abs(vx) > cfg.Player.SkidXM && !player.Skidding.Check() {
			player.Skidding.Start(cfg.Player.SkidTime)
			factor = cfg.Player.SkidStartFactor
			w.emit(cfg.EventSkid, obj.Box.X, obj.Box.Y, 0)
		}
		vx += dir * accel * factor * dt
	default:
		vx += dir * accel * dt
	}

	// Letting go of run above the walk cap slows down gradually
	if gamemath.Sign(vx) == dir && math.Abs(vx) > maxSpeed {
		if math.Abs(physics.VX) > maxSpeed && gamemath.Sign(physics.VX) == dir {
			vx = dir * math.Max(math.Abs(physics.VX)-accel*dt, maxSpeed)
		} else {
			vx = dir * maxSpeed
		}
	}
	physics.VX = vx
	physics.AX = 0
}

func slowDown(physics *components.PhysicsData, dt float64) {
	physics.AX = 0
	if math.Abs(physics.VX) < cfg.Player.WalkSpeed {
		physics.VX = 0
		return
	}
	decel := cfg.Player.WalkAcceleration * cfg.Player.StopDeceleration * dt
	physics.VX = gamemath.ApplyFriction(physics.VX, decel)
}

// updateJump starts a jump from the ground. Releasing jump while rising cuts
// the jump short; the latch re-arms once the player stands with jump released.
func updateJump(w *World, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	if !input.Pressed(cfg.ActionJump) {
		if player.Jumping && physics.VY < 0 {
			physics.VY = 0
		}
		player.Jumping = false
		if physics.OnGround {
			player.CanJump = true
		}
		return
	}
	if !player.CanJump || !physics.OnGround || physics.VY < 0 {
		return
	}

	speed, event := cfg.Player.JumpSpeed, cfg.EventJump
	if math.Abs(physics.VX) > cfg.Player.MaxWalkXM {
		speed, event = cfg.Player.RunJumpSpeed, cfg.EventBigJump
	}
	physics.VY = -speed
	physics.GravityEnabled = true
	physics.OnGround = false
	player.Jumping = true
	player.CanJump = false
	w.emit(event, obj.Box.X, obj.Box.Y, 0)
}

// updateDuck shrinks a big grounded player to one tile and back. The box
// keeps its feet in place and the resolver's previous box follows it.
func updateDuck(w *World, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	if player.Size != cfg.SizeBig {
		player.Duck = false
		return
	}
	down := input.Pressed(cfg.ActionDuck)
	switch {
	case down && !player.Duck && physics.OnGround && physics.VY == 0:
		player.Duck = true
		obj.Box.Y += obj.Box.H - cfg.Player.SmallHeight
		obj.Box.H = cfg.Player.SmallHeight
		obj.SyncPrev()
		w.emit(cfg.EventDuck, obj.Box.X, obj.Box.Y, 0)
	case !down && player.Duck:
		stand := obj.Box
		stand.Y -= cfg.Player.BigHeight - stand.H
		stand.H = cfg.Player.BigHeight
		if tilegrid.Overlaps(w.grid, stand) {
			return
		}
		player.Duck = false
		obj.Box = stand
		obj.SyncPrev()
	}
}

func updateFire(w *World, s *session.State, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	if !s.GotCoffee || !input.JustPressed(cfg.ActionFire) || player.Holding != nil {
		return
	}
	if Count(w, components.Bullet) >= cfg.Player.MaxBullets {
		return
	}
	x := obj.Box.X
	if player.Direction == cfg.DirectionRight {
		x = obj.Box.Right()
	}
	factory.CreateBullet(w, x, obj.Box.Y+obj.Box.H/2, player.Direction, physics.VX)
	w.emit(cfg.EventShoot, x, obj.Box.Y, 0)
}

// carryShell keeps a held shell in front of the player while fire is held
// and throws it when fire is released.
func (w *World) carryShell(player *components.PlayerData, obj *components.ObjectData, input *components.InputData) {
	shell := player.Holding
	if shell == nil {
		return
	}
	if !w.Valid(shell) {
		player.Holding = nil
		return
	}
	bad := components.BadGuy.Get(shell)
	if bad.Mode != cfg.ModeHeld || !bad.Live() {
		player.Holding = nil
		return
	}
	sObj := components.Object.Get(shell)
	sPhys := components.Physics.Get(shell)
	bad.Direction = player.Direction

	if input.Pressed(cfg.ActionFire) {
		sObj.Box.X = obj.Box.X + player.Direction*cfg.Player.HoldOffsetX
		sObj.Box.Y = obj.Box.Y + obj.Box.H/1.5 - sObj.Box.H
		w.pullShellClear(sObj, obj.Box.X)
		return
	}

	sObj.Box.X = obj.Box.X + player.Direction*cfg.Player.ThrowOffset
	w.pullShellClear(sObj, obj.Box.X)
	sPhys.NoClip = false
	sPhys.GravityEnabled = true
	sPhys.VX = bad.Direction * cfg.BadGuy.KickSpeed
	sPhys.VY = 0
	bad.Mode = cfg.ModeKick
	bad.KickGrace.Start(cfg.BadGuy.KickGraceTime)
	player.Holding = nil
	w.emit(cfg.EventKick, sObj.Box.X, sObj.Box.Y, 0)
}

// dropShell lets go of a held shell without throwing it.
func (w *World) dropShell(player *components.PlayerData) {
	shell := player.Holding
	player.Holding = nil
	if shell == nil || !w.Valid(shell) {
		return
	}
	bad := components.BadGuy.Get(shell)
	if bad.Mode != cfg.ModeHeld {
		return
	}
	bad.Mode = cfg.ModeFlat
	bad.Timer.Start(cfg.BadGuy.FlatTime)
	sPhys := components.Physics.Get(shell)
	sPhys.NoClip = false
	sPhys.GravityEnabled = true
	w.pullShellClear(components.Object.Get(shell), components.Object.Get(w.player).Box.X)
}

// pullShellClear moves a shell that ended up inside the grid back to the
// player's X.
func (w *World) pullShellClear(shell *components.ObjectData, x float64) {
	if tilegrid.Overlaps(w.grid, shell.Box) {
		shell.Box.X = x
	}
	shell.SyncPrev()
}

// growPlayer makes a small player big. Growing into a ceiling leaves the
// player ducked instead.
func (w *World) growPlayer(s *session.State) {
	player := components.Player.Get(w.player)
	obj := components.Object.Get(w.player)
	if player.Size == cfg.SizeBig {
		return
	}
	player.Size = cfg.SizeBig
	s.Size = cfg.SizeBig

	grown := obj.Box
	grown.Y -= cfg.Player.BigHeight - grown.H
	grown.H = cfg.Player.BigHeight
	if tilegrid.Overlaps(w.grid, grown) {
		player.Duck = true
	} else {
		obj.Box = grown
	}
	obj.SyncPrev()
	w.emit(cfg.EventGrow, obj.Box.X, obj.Box.Y, 0)
}

// killPlayer hurts the player. KillShrink costs a big player its size and
// starts the safe timer; anything else costs a life.
func (w *World) killPlayer(s *session.State, mode cfg.KillMode) {
	player := components.Player.Get(w.player)
	if player.Dying != cfg.DyingNot {
		return
	}
	if mode == cfg.KillShrink && player.Size == cfg.SizeBig {
		w.shrinkPlayer(s)
		return
	}
	w.die(s, cfg.DyingSquished, cfg.Player.DeathHop)
}

func (w *World) shrinkPlayer(s *session.State) {
	player := components.Player.Get(w.player)
	obj := components.Object.Get(w.player)

	player.Size = cfg.SizeSmall
	player.Duck = false
	obj.Box.Y += obj.Box.H - cfg.Player.SmallHeight
	obj.Box.H = cfg.Player.SmallHeight
	obj.SyncPrev()

	s.Size = cfg.SizeSmall
	s.GotCoffee = false
	player.Safe.Start(cfg.Player.SafeTime)
	w.dropShell(player)
	w.emit(cfg.EventPlayerHurt, obj.Box.X, obj.Box.Y, 0)
}

// die ends the attempt. The life is taken here, once; the body then hops and
// falls off the screen without touching the grid.
func (w *World) die(s *session.State, how cfg.DyingState, hop float64) {
	player := components.Player.Get(w.player)
	if player.Dying != cfg.DyingNot {
		return
	}
	physics := components.Physics.Get(w.player)
	obj := components.Object.Get(w.player)

	player.Dying = how
	player.Jumping = false
	physics.VX = 0
	physics.AX = 0
	physics.VY = -hop
	physics.GravityEnabled = true
	physics.OnGround = false
	physics.NoClip = true
	w.dropShell(player)

	s.LoseLife()
	w.emit(cfg.EventPlayerDie, obj.Box.X, obj.Box.Y, 0)
}
