package systems

import (
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/automoto/floe/systems/factory"
)

// bumpHead applies the effects of the player hitting tiles from below. Both
// top corners are probed; a tile under both is bumped once.
func (w *World) bumpHead(s *session.State, box gamemath.Box, player *components.PlayerData) {
	y := box.Y - 1
	left := box.X + 1
	right := box.Right() - 1

	w.bumpTile(s, left, y, player.Size, cfg.DirectionRight)
	if tilegrid.Cell(left) != tilegrid.Cell(right) {
		w.bumpTile(s, right, y, player.Size, cfg.DirectionLeft)
	}
}

// bumpTile hits the tile under x, y from below. The grid is written at once,
// so later queries in the same frame see the new tile.
func (w *World) bumpTile(s *session.State, x, y float64, size cfg.PlayerSize, dir float64) {
	col, row := tilegrid.Cell(x), tilegrid.Cell(y)
	tile := w.grid.Tile(col, row)
	tx := float64(col) * tilegrid.TileSize
	ty := float64(row) * tilegrid.TileSize

	switch tilegrid.ClassOf(tile) {
	case tilegrid.ClassBrick:
		w.bumpAbove(s, tx, ty)
		switch {
		case tilegrid.IsCoinBrick(tile):
			w.payCoinBrick(s, col, row, tile)
		case size == cfg.SizeBig:
			w.grid.SetTile(col, row, tilegrid.Empty)
			factory.CreateBrokenBrick(w, tx, ty)
			s.AddPlainScore(cfg.Score.Brick)
			w.emit(cfg.EventBrickBreak, tx, ty, cfg.Score.Brick)
		default:
			factory.CreateBouncyBrick(w, tx, ty, tile)
			w.emit(cfg.EventBrickBounce, tx, ty, 0)
		}

	case tilegrid.ClassFullBox:
		w.bumpAbove(s, tx, ty)
		w.grid.SetTile(col, row, 'a')
		factory.CreateBouncyBrick(w, tx, ty, 'a')
		w.emit(cfg.EventBoxOpen, tx, ty, 0)

		switch tile {
		case 'A':
			factory.CreateBouncyDistro(w, tx, ty-tilegrid.TileSize)
			w.collectCoin(s, tx, ty)
		case 'B':
			kind := cfg.UpgradeCoffee
			if size == cfg.SizeSmall {
				kind = cfg.UpgradeMints
			}
			factory.CreateUpgrade(w, kind, tx, ty, dir)
			w.emit(cfg.EventUpgradeAppear, tx, ty, 0)
		case '!':
			factory.CreateUpgrade(w, cfg.UpgradeHerring, tx, ty, dir)
			w.emit(cfg.EventUpgradeAppear, tx, ty, 0)
		}

	default:
		if tilegrid.ClassOf(tile).Solid() {
			w.emit(cfg.EventBumpSolid, tx, ty, 0)
		}
	}
}

// payCoinBrick releases one coin. The brick empties once it has paid out.
func (w *World) payCoinBrick(s *session.State, col, row int, tile byte) {
	tx := float64(col) * tilegrid.TileSize
	ty := float64(row) * tilegrid.TileSize

	factory.CreateBouncyDistro(w, tx, ty-tilegrid.TileSize)
	w.collectCoin(s, tx, ty)

	key := [2]int{col, row}
	w.coinBricks[key]++
	if w.coinBricks[key] >= cfg.Objects.CoinBrickCoins {
		delete(w.coinBricks, key)
		w.grid.SetTile(col, row, 'a')
		tile = 'a'
	}
	factory.CreateBouncyBrick(w, tx, ty, tile)
}

// bumpAbove knocks whatever stands on the tile at tx, ty: bad guys fall,
// upgrades hop and turn around, and a coin on top is collected.
func (w *World) bumpAbove(s *session.State, tx, ty float64) {
	for _, e := range liveEntries(w, components.BadGuy) {
		bad := components.BadGuy.Get(e)
		if !bad.Live() || bad.Mode == cfg.ModeHeld {
			continue
		}
		box := components.Object.Get(e).Box
		if inBumpRange(box, tx, ty) {
			w.knockOut(s, e, bad.KindConfig.KillScore)
		}
	}

	for _, e := range liveEntries(w, components.Upgrade) {
		up := components.Upgrade.Get(e)
		box := components.Object.Get(e).Box
		if up.Rise > 0 || !inBumpRange(box, tx, ty) {
			continue
		}
		physics := components.Physics.Get(e)
		physics.VY = -cfg.Objects.BumpHop
		physics.GravityEnabled = true
		physics.OnGround = false
		up.Direction = -up.Direction
	}

	if w.grid.Tile(tilegrid.Cell(tx), tilegrid.Cell(ty)-1) == '$' {
		above := ty - tilegrid.TileSize
		w.grid.SetTileAt(tx, above, tilegrid.Empty)
		factory.CreateBouncyDistro(w, tx, above)
		w.collectCoin(s, tx, above)
	}
}

func inBumpRange(box gamemath.Box, tx, ty float64) bool {
	return box.X >= tx-cfg.BadGuy.BumpRangeX && box.X <= tx+cfg.BadGuy.BumpRangeX &&
		box.Bottom() >= ty-cfg.BadGuy.BumpRangeY && box.Bottom() <= ty+cfg.BadGuy.BumpRangeY
}

// collectCoins picks up every coin tile the box covers.
func (w *World) collectCoins(s *session.State, box gamemath.Box) {
	for col := tilegrid.Cell(box.X + 1); col <= tilegrid.Cell(box.Right()-1); col++ {
		for row := tilegrid.Cell(box.Y + 1); row <= tilegrid.Cell(box.Bottom()-1); row++ {
			if w.grid.Tile(col, row) != '$' {
				continue
			}
			w.grid.SetTile(col, row, tilegrid.Empty)
			w.collectCoin(s, float64(col)*tilegrid.TileSize, float64(row)*tilegrid.TileSize)
		}
	}
}

func (w *World) collectCoin(s *session.State, x, y float64) {
	s.AddPlainScore(cfg.Score.Coin)
	w.emit(cfg.EventCoin, x, y, cfg.Score.Coin)
	if s.AddCoin() {
		w.emit(cfg.EventLifeUp, x, y, s.Lives)
	}
}
