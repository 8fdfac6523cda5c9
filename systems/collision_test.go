package systems

import (
	"testing"

	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/automoto/floe/systems/factory"
	"github.com/automoto/floe/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestStompCycleOfAShell(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	laptop := factory.CreateBadGuy(w, cfg.BadGuyLaptop, 200, 416)
	bad := components.BadGuy.Get(laptop)
	_, pObj, _ := playerParts(w)
	pObj.Box.X = 180 // left of the shell's centre

	require.True(t, w.stompBadGuy(s, laptop))
	assert.Equal(t, cfg.ModeFlat, bad.Mode)
	assert.True(t, bad.Timer.Check())

	require.True(t, w.stompBadGuy(s, laptop))
	assert.Equal(t, cfg.ModeKick, bad.Mode)
	assert.Equal(t, cfg.DirectionRight, bad.Direction)
	assert.True(t, bad.KickGrace.Check())

	require.True(t, w.stompBadGuy(s, laptop))
	assert.Equal(t, cfg.ModeFlat, bad.Mode)

	require.True(t, w.stompBadGuy(s, laptop))
	assert.Equal(t, cfg.ModeKick, bad.Mode)
	assert.Equal(t, cfg.DyingNot, bad.Dying)
}

func TestStompKicksAwayFromThePlayer(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)

	laptop := factory.CreateBadGuy(w, cfg.BadGuyLaptop, 200, 416)
	bad := components.BadGuy.Get(laptop)
	bad.Mode = cfg.ModeFlat
	_, pObj, _ := playerParts(w)
	pObj.Box.X = 220

	require.True(t, w.stompBadGuy(s, laptop))
	assert.Equal(t, cfg.DirectionLeft, bad.Direction)
	assert.Equal(t, -cfg.BadGuy.KickSpeed, components.Physics.Get(laptop).VX)
}

func TestStompBouncesThePlayerAndRaisesTheMultiplier(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	first := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 200, 416)
	second := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 300, 416)
	base := cfg.BadGuy.Kinds[cfg.BadGuyBSOD].StompScore

	require.True(t, w.stompBadGuy(s, first))
	require.True(t, w.stompBadGuy(s, second))

	_, pObj, pPhys := playerParts(w)
	assert.Equal(t, base+2*base, s.Score)
	assert.Equal(t, 3, s.ScoreMultiplier)
	assert.Equal(t, -cfg.Player.StompBounce, pPhys.VY)
	assert.Equal(t, 416-pObj.Box.H-1, pObj.Box.Y)
	assert.Equal(t, cfg.DyingSquished, components.BadGuy.Get(first).Dying)
	assert.Equal(t, 2, Count(w, components.Decoration))
}

func TestMoneyCannotBeStomped(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)

	money := factory.CreateBadGuy(w, cfg.BadGuyMoney, 200, 416)
	assert.False(t, w.stompBadGuy(s, money))
	assert.Equal(t, cfg.ModeNormal, components.BadGuy.Get(money).Mode)
}

func TestFallingOntoABadGuySquishesIt(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	walker := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 64, 416)
	_, pObj, pPhys := playerParts(w)
	pObj.Box.Y = 383
	pPhys.VY = 2
	pPhys.GravityEnabled = true
	pPhys.OnGround = false

	w.Step(s, Input{}, 1)

	bad := components.BadGuy.Get(walker)
	assert.Equal(t, cfg.DyingSquished, bad.Dying)
	assert.Equal(t, cfg.Player.StartingLives, s.Lives)
	assert.Equal(t, cfg.BadGuy.Kinds[cfg.BadGuyBSOD].StompScore, s.Score)
	assert.Equal(t, -cfg.Player.StompBounce, pPhys.VY)

	// Squished bad guys linger, then leave the registry
	for i := 0; i < 450; i++ {
		w.Step(s, Input{}, 1)
	}
	assert.False(t, walker.Valid())
	assert.Equal(t, 0, Count(w, components.BadGuy))
}

func TestFlatShellIsKickedOnSideContact(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	laptop := factory.CreateBadGuy(w, cfg.BadGuyLaptop, 90, 416)
	bad := components.BadGuy.Get(laptop)
	bad.Mode = cfg.ModeFlat
	bad.Timer.Start(cfg.BadGuy.FlatTime)

	w.playerTouchesBadGuy(s, laptop)

	player, _, _ := playerParts(w)
	assert.Equal(t, cfg.ModeKick, bad.Mode)
	assert.Equal(t, cfg.DirectionRight, bad.Direction)
	assert.Equal(t, 90+cfg.BadGuy.KickPushRight, components.Object.Get(laptop).Box.X)
	assert.Equal(t, cfg.DyingNot, player.Dying)
	assert.Equal(t, cfg.Score.Kick, s.Score)

	// A fresh kick does not hurt the kicker
	w.playerTouchesBadGuy(s, laptop)
	assert.Equal(t, cfg.DyingNot, player.Dying)
}

func TestShellIsGrabbedAndThrown(t *testing.T) {
	s := session.New()
	w, q := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	laptop := factory.CreateBadGuy(w, cfg.BadGuyLaptop, 90, 416)
	bad := components.BadGuy.Get(laptop)
	bad.Mode = cfg.ModeFlat
	input := components.Input.Get(w.Player())
	input.Push(Hold(cfg.ActionFire))

	w.playerTouchesBadGuy(s, laptop)

	player, pObj, _ := playerParts(w)
	require.Equal(t, cfg.ModeHeld, bad.Mode)
	require.NotNil(t, player.Holding)
	assert.Equal(t, laptop.Entity(), player.Holding.Entity())
	assert.True(t, components.Physics.Get(laptop).NoClip)

	// Carried in front of the player while fire is held
	for i := 0; i < 3; i++ {
		w.Step(s, Hold(cfg.ActionFire, cfg.ActionMoveRight), 1)
	}
	shellBox := components.Object.Get(laptop).Box
	assert.Equal(t, pObj.Box.X+cfg.Player.HoldOffsetX, shellBox.X)
	assert.Equal(t, cfg.ModeHeld, bad.Mode)

	w.Step(s, Input{}, 1)

	assert.Nil(t, player.Holding)
	assert.Equal(t, cfg.ModeKick, bad.Mode)
	assert.Equal(t, cfg.DirectionRight, bad.Direction)
	assert.False(t, components.Physics.Get(laptop).NoClip)
	assert.Equal(t, cfg.DyingNot, player.Dying)
	assert.Equal(t, 1, countEvents(q.Drain(), cfg.EventGrab))
}

func TestHeldShellNeverEntersWalls(t *testing.T) {
	l := flatLevel(40)
	for row := 0; row < tilegrid.Rows-1; row++ {
		setTile(l, 3, row, '[')
	}
	s := session.New()
	w, _ := newTestWorld(t, l, s)
	settle(w, s, 1)

	laptop := factory.CreateBadGuy(w, cfg.BadGuyLaptop, 30, 416)
	bad := components.BadGuy.Get(laptop)
	bad.Mode = cfg.ModeFlat
	input := components.Input.Get(w.Player())
	input.Push(Hold(cfg.ActionFire))
	w.playerTouchesBadGuy(s, laptop)
	require.Equal(t, cfg.ModeHeld, bad.Mode)

	player, pObj, _ := playerParts(w)
	require.Equal(t, cfg.DirectionRight, player.Direction)
	sObj := components.Object.Get(laptop)

	// Facing the wall: the hold offset would put the shell inside it.
	w.carryShell(player, pObj, input)
	assert.Equal(t, pObj.Box.X, sObj.Box.X)
	assert.False(t, tilegrid.Overlaps(w.Grid(), sObj.Box))

	// Getting hurt drops the shell; it lands clear of the wall.
	sObj.Box.X = pObj.Box.X + cfg.Player.HoldOffsetX
	w.shrinkPlayer(s)

	assert.Nil(t, player.Holding)
	assert.Equal(t, cfg.ModeFlat, bad.Mode)
	assert.False(t, components.Physics.Get(laptop).NoClip)
	assert.Equal(t, pObj.Box.X, sObj.Box.X)
	assert.Equal(t, sObj.Box, sObj.Prev)
	assert.False(t, tilegrid.Overlaps(w.Grid(), sObj.Box))
}

func TestKickedShellKnocksOutOtherBadGuys(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	shell := factory.CreateBadGuy(w, cfg.BadGuyLaptop, 300, 416)
	components.BadGuy.Get(shell).Mode = cfg.ModeKick
	components.BadGuy.Get(shell).Direction = cfg.DirectionRight
	walker := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 400, 416)

	for i := 0; i < 30; i++ {
		w.Step(s, Input{}, 1)
	}

	assert.NotEqual(t, cfg.DyingNot, components.BadGuy.Get(walker).Dying)
	assert.Equal(t, cfg.ModeKick, components.BadGuy.Get(shell).Mode)
	assert.Equal(t, cfg.DyingNot, components.BadGuy.Get(shell).Dying)
	assert.Equal(t, cfg.Score.Shell, s.Score)
}

func TestWalkersTurnAroundOnContact(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)

	a := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 300, 416)
	b := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 320, 416)
	components.BadGuy.Get(a).Direction = cfg.DirectionRight

	badGuysMeet(w, s, a, b)

	assert.Equal(t, cfg.DirectionLeft, components.BadGuy.Get(a).Direction)
	assert.Equal(t, cfg.DirectionRight, components.BadGuy.Get(b).Direction)
}

func TestWalkersReverseOnWalls(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 8, 13, '[')
	s := session.New()
	w, _ := newTestWorld(t, l, s)

	walker := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 300, 416)
	for i := 0; i < 60; i++ {
		w.Step(s, Input{}, 1)
	}

	assert.Equal(t, cfg.DirectionRight, components.BadGuy.Get(walker).Direction)
	assert.GreaterOrEqual(t, components.Object.Get(walker).Box.X, 287.0)
}

func TestBulletKnocksOutBadGuy(t *testing.T) {
	s := session.New()
	s.GotCoffee = true
	w, q := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	walker := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 220, 416)
	w.Step(s, Hold(cfg.ActionFire), 1)
	require.Equal(t, 1, Count(w, components.Bullet))

	for i := 0; i < 60; i++ {
		w.Step(s, Input{}, 1)
	}

	assert.False(t, components.BadGuy.Get(walker).Live())
	assert.Equal(t, 0, Count(w, components.Bullet))
	events := q.Drain()
	assert.Equal(t, 1, countEvents(events, cfg.EventShoot))
	assert.Equal(t, 1, countEvents(events, cfg.EventBadGuyFall))
}

func TestBulletsAreLimited(t *testing.T) {
	s := session.New()
	s.GotCoffee = true
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	for i := 0; i < 6; i++ {
		w.Step(s, Hold(cfg.ActionFire), 1)
		w.Step(s, Input{}, 1)
	}
	assert.LessOrEqual(t, Count(w, components.Bullet), cfg.Player.MaxBullets)
}

func TestNoBulletsWithoutCoffee(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	w.Step(s, Hold(cfg.ActionFire), 1)
	assert.Equal(t, 0, Count(w, components.Bullet))
}

func TestRemovedEntitiesAreSkippedThenCompacted(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)
	settle(w, s, 1)

	walker := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 80, 416)
	UpdateObjects(w, s, 0)
	w.remove(walker)

	// Marked entities stay in storage but take no part in the pass
	assert.True(t, walker.Valid())
	assert.False(t, w.Valid(walker))
	badGuysVsPlayer(w, s, []*donburi.Entry{walker})
	player, _, _ := playerParts(w)
	assert.Equal(t, cfg.DyingNot, player.Dying)

	RemoveDead(w, s, 1)
	assert.False(t, walker.Valid())
	assert.Empty(t, near(components.Object.Get(w.Player()), 0, 0, tags.ResolvBadGuy))
	assert.Equal(t, 0, Count(w, components.BadGuy))
}

func TestRemovingHeldShellClearsTheHandle(t *testing.T) {
	s := session.New()
	w, _ := newTestWorld(t, flatLevel(40), s)

	laptop := factory.CreateBadGuy(w, cfg.BadGuyLaptop, 90, 416)
	components.BadGuy.Get(laptop).Mode = cfg.ModeHeld
	player, _, _ := playerParts(w)
	player.Holding = laptop

	w.remove(laptop)
	RemoveDead(w, s, 1)

	assert.Nil(t, player.Holding)
}

func TestBumpingBricks(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 5, 10, 'X')
	setTile(l, 6, 10, 'X')
	s := session.New()
	w, q := newTestWorld(t, l, s)

	w.bumpTile(s, 5*32+4, 10*32+4, cfg.SizeSmall, cfg.DirectionRight)
	assert.Equal(t, byte('X'), w.Grid().Tile(5, 10))
	assert.Equal(t, 1, Count(w, components.Decoration))
	assert.Equal(t, 1, countEvents(q.Drain(), cfg.EventBrickBounce))

	w.bumpTile(s, 6*32+4, 10*32+4, cfg.SizeBig, cfg.DirectionRight)
	assert.Equal(t, tilegrid.Empty, w.Grid().Tile(6, 10))
	assert.False(t, w.Grid().IsSolid(6*32, 10*32))
	assert.Equal(t, 5, Count(w, components.Decoration))
	assert.Equal(t, cfg.Score.Brick, s.Score)
	assert.Equal(t, 1, countEvents(q.Drain(), cfg.EventBrickBreak))
}

func TestCoinBrickPaysOutThenEmpties(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 5, 10, 'x')
	s := session.New()
	w, _ := newTestWorld(t, l, s)

	for i := 0; i < cfg.Objects.CoinBrickCoins-1; i++ {
		w.bumpTile(s, 5*32+4, 10*32+4, cfg.SizeBig, cfg.DirectionRight)
	}
	assert.Equal(t, byte('x'), w.Grid().Tile(5, 10))
	assert.Equal(t, cfg.Objects.CoinBrickCoins-1, s.Coins)

	w.bumpTile(s, 5*32+4, 10*32+4, cfg.SizeBig, cfg.DirectionRight)
	assert.Equal(t, byte('a'), w.Grid().Tile(5, 10))
	assert.Equal(t, cfg.Objects.CoinBrickCoins, s.Coins)

	// An empty box only thuds
	w.bumpTile(s, 5*32+4, 10*32+4, cfg.SizeBig, cfg.DirectionRight)
	assert.Equal(t, cfg.Objects.CoinBrickCoins, s.Coins)
}

func TestBumpingBoxes(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 3, 10, 'A')
	setTile(l, 5, 10, 'B')
	setTile(l, 7, 10, 'B')
	setTile(l, 9, 10, '!')
	s := session.New()
	w, _ := newTestWorld(t, l, s)

	w.bumpTile(s, 3*32+4, 10*32+4, cfg.SizeSmall, cfg.DirectionRight)
	assert.Equal(t, byte('a'), w.Grid().Tile(3, 10))
	assert.Equal(t, 1, s.Coins)

	w.bumpTile(s, 5*32+4, 10*32+4, cfg.SizeSmall, cfg.DirectionRight)
	w.bumpTile(s, 7*32+4, 10*32+4, cfg.SizeBig, cfg.DirectionLeft)
	w.bumpTile(s, 9*32+4, 10*32+4, cfg.SizeBig, cfg.DirectionLeft)

	kinds := map[cfg.UpgradeKind]int{}
	for _, e := range liveEntries(w, components.Upgrade) {
		up := components.Upgrade.Get(e)
		kinds[up.Kind]++
		assert.Equal(t, tilegrid.TileSize, up.Rise)
		assert.Equal(t, 320.0, components.Object.Get(e).Box.Y)
	}
	assert.Equal(t, map[cfg.UpgradeKind]int{
		cfg.UpgradeMints:   1,
		cfg.UpgradeCoffee:  1,
		cfg.UpgradeHerring: 1,
	}, kinds)
	for _, col := range []int{5, 7, 9} {
		assert.Equal(t, byte('a'), w.Grid().Tile(col, 10))
	}
}

func TestUpgradeRisesOutOfItsBox(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 8, 12, '=')
	s := session.New()
	w, _ := newTestWorld(t, l, s)

	mints := factory.CreateUpgrade(w, cfg.UpgradeMints, 8*32, 12*32, cfg.DirectionRight)
	for i := 0; i < 50; i++ {
		w.Step(s, Input{}, 1)
	}
	up := components.Upgrade.Get(mints)
	obj := components.Object.Get(mints)
	assert.Equal(t, 0.0, up.Rise)
	assert.Equal(t, 11*32.0, obj.Box.Y)
	assert.False(t, components.Physics.Get(mints).NoClip)
}

func TestBumpKnocksOffWhatStandsOnTheTile(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 5, 10, 'X')
	setTile(l, 5, 9, '$')
	s := session.New()
	w, _ := newTestWorld(t, l, s)

	walker := factory.CreateBadGuy(w, cfg.BadGuyBSOD, 5*32+6, 9*32)
	w.bumpTile(s, 5*32+4, 10*32+4, cfg.SizeSmall, cfg.DirectionRight)

	assert.Equal(t, cfg.DyingFalling, components.BadGuy.Get(walker).Dying)
	assert.Equal(t, tilegrid.Empty, w.Grid().Tile(5, 9))
	assert.Equal(t, 1, s.Coins)
}

func TestJumpingIntoABrickBumpsIt(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 2, 10, 'X')
	s := session.New()
	w, q := newTestWorld(t, l, s)
	settle(w, s, 1)

	bumped := false
	for i := 0; i < 40 && !bumped; i++ {
		w.Step(s, Hold(cfg.ActionJump), 1)
		bumped = countEvents(q.Drain(), cfg.EventBrickBounce) > 0
	}
	require.True(t, bumped)

	_, obj, physics := playerParts(w)
	assert.True(t, physics.Blocked.Y())
	assert.GreaterOrEqual(t, physics.VY, 0.0)
	assert.GreaterOrEqual(t, obj.Box.Y, 351.0)
	assert.Equal(t, byte('X'), w.Grid().Tile(2, 10))
}

func TestCoinsAreCollectedByOverlap(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 3, 13, '$')
	s := session.New()
	w, q := newTestWorld(t, l, s)
	settle(w, s, 1)

	for i := 0; i < 40; i++ {
		w.Step(s, Hold(cfg.ActionMoveRight), 1)
	}

	assert.Equal(t, 1, s.Coins)
	assert.Equal(t, cfg.Score.Coin, s.Score)
	assert.Equal(t, tilegrid.Empty, w.Grid().Tile(3, 13))
	assert.Equal(t, 1, countEvents(q.Drain(), cfg.EventCoin))
}

func TestHundredthCoinGivesALife(t *testing.T) {
	l := flatLevel(40)
	setTile(l, 3, 13, '$')
	s := session.New()
	s.Coins = cfg.Player.CoinsPerLife - 1
	w, q := newTestWorld(t, l, s)

	w.collectCoins(s, components.Object.Get(w.Player()).Box.Offset(32, 0))

	assert.Equal(t, 0, s.Coins)
	assert.Equal(t, cfg.Player.StartingLives+1, s.Lives)
	assert.Equal(t, 1, countEvents(q.Drain(), cfg.EventLifeUp))
}
