package scenes

import (
	"image"
	"image/color"
	"math"

	"github.com/automoto/floe/assets"
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/automoto/floe/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
)

// tileColors is the flat colour of each tile class.
var tileColors = map[tilegrid.Class]color.RGBA{
	tilegrid.ClassSolid:      cfg.Gray,
	tilegrid.ClassBrick:      cfg.Brown,
	tilegrid.ClassIce:        cfg.IceBlue,
	tilegrid.ClassFullBox:    cfg.Yellow,
	tilegrid.ClassEmptyBox:   cfg.DarkGray,
	tilegrid.ClassDecorative: cfg.Green,
	tilegrid.ClassCoin:       cfg.Orange,
}

// playerImage is the white player body tinted by the shader.
var playerImage *ebiten.Image

func rect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// DrawLevel renders the visible tile columns. Bumped bricks are drawn by
// their decoration instead, offset by its tween.
func DrawLevel(screen *ebiten.Image, w *systems.World, s *session.State) {
	grid := w.Grid()
	bouncing := map[[2]int]bool{}
	components.Decoration.Each(w.Entities(), func(e *donburi.Entry) {
		deco := components.Decoration.Get(e)
		if deco.Kind != components.BouncyBrick {
			return
		}
		box := components.Object.Get(e).Box
		bouncing[[2]int{tilegrid.Cell(box.X), tilegrid.Cell(box.Y)}] = true
	})

	first := tilegrid.Cell(s.ScrollX)
	last := tilegrid.Cell(s.ScrollX+cfg.Screen.Width) + 1
	for col := first; col <= last; col++ {
		for row := 0; row < tilegrid.Rows; row++ {
			if bouncing[[2]int{col, row}] {
				continue
			}
			drawTile(screen, grid.Tile(col, row), float64(col)*tilegrid.TileSize-s.ScrollX, float64(row)*tilegrid.TileSize)
		}
	}
}

func drawTile(screen *ebiten.Image, tile byte, x, y float64) {
	class := tilegrid.ClassOf(tile)
	clr, ok := tileColors[class]
	if !ok {
		return
	}
	size := tilegrid.TileSize
	switch class {
	case tilegrid.ClassCoin:
		rect(screen, x+10, y+6, 12, 20, clr)
	case tilegrid.ClassDecorative:
		rect(screen, x+4, y+4, size-8, size-8, clr)
	default:
		rect(screen, x, y, size, size, clr)
		vector.StrokeRect(screen, float32(x), float32(y), float32(size), float32(size), 1, cfg.BlackAlpha, false)
	}
	if tilegrid.IsCoinBrick(tile) {
		rect(screen, x+12, y+12, 8, 8, cfg.Orange)
	}
}

// DrawEntities renders every live entity as a coloured box.
func DrawEntities(screen *ebiten.Image, w *systems.World, s *session.State) {
	ox := -s.ScrollX

	components.Decoration.Each(w.Entities(), func(e *donburi.Entry) {
		if !w.Valid(e) {
			return
		}
		deco := components.Decoration.Get(e)
		box := components.Object.Get(e).Box
		switch deco.Kind {
		case components.BouncyBrick:
			drawTile(screen, deco.Tile, box.X+ox, box.Y+deco.Offset)
		case components.BouncyDistro:
			rect(screen, box.X+ox+10, box.Y+6, 12, 20, cfg.Orange)
		case components.BrokenBrick:
			rect(screen, box.X+ox, box.Y, box.W, box.H, cfg.Brown)
		case components.FloatingScore:
			drawScore(screen, deco.Points, box.X+ox, box.Y)
		}
	})

	components.Upgrade.Each(w.Entities(), func(e *donburi.Entry) {
		if !w.Valid(e) {
			return
		}
		box := components.Object.Get(e).Box
		clr := cfg.White
		switch components.Upgrade.Get(e).Kind {
		case cfg.UpgradeCoffee:
			clr = cfg.Brown
		case cfg.UpgradeHerring:
			clr = cfg.LightBlue
		}
		rect(screen, box.X+ox+4, box.Y+4, box.W-8, box.H-8, clr)
	})

	components.BadGuy.Each(w.Entities(), func(e *donburi.Entry) {
		if !w.Valid(e) {
			return
		}
		bad := components.BadGuy.Get(e)
		box := components.Object.Get(e).Box
		clr := bad.KindConfig.TintColor
		h := box.H
		switch {
		case bad.Dying == cfg.DyingSquished:
			h = box.H / 4
		case bad.Mode == cfg.ModeFlat, bad.Mode == cfg.ModeHeld:
			h = box.H / 2
		}
		rect(screen, box.X+ox, box.Bottom()-h, box.W, h, clr)
	})

	components.Bullet.Each(w.Entities(), func(e *donburi.Entry) {
		if !w.Valid(e) {
			return
		}
		box := components.Object.Get(e).Box
		rect(screen, box.X+ox, box.Y, box.W, box.H, cfg.Red)
	})

	drawPlayer(screen, w, ox)

	if cfg.Debug.DrawBoxes {
		drawBoxes(screen, w, ox)
	}
}

func drawPlayer(screen *ebiten.Image, w *systems.World, ox float64) {
	entry := w.Player()
	player := components.Player.Get(entry)
	box := components.Object.Get(entry).Box

	tint := [4]float32{0.2, 0.4, 1, 1}
	if player.Size == cfg.SizeBig {
		tint = [4]float32{0.1, 0.7, 0.3, 1}
	}
	ms := w.Clock().Now()
	switch {
	case player.Invincible.Check():
		phase := ms / 100
		tint = [4]float32{float32(0.5 + 0.5*math.Sin(phase)), float32(0.5 + 0.5*math.Sin(phase+2)), float32(0.5 + 0.5*math.Sin(phase+4)), 1}
	case player.Safe.Check() && int(ms/80)%2 == 0:
		tint[3] = 0.3
	}

	if assets.TintShader == nil {
		rect(screen, box.X+ox, box.Y, box.W, box.H, color.RGBA{
			R: uint8(tint[0] * 255), G: uint8(tint[1] * 255), B: uint8(tint[2] * 255), A: uint8(tint[3] * 255),
		})
		return
	}
	if playerImage == nil {
		playerImage = ebiten.NewImage(int(cfg.Player.Width), int(cfg.Player.BigHeight))
		playerImage.Fill(color.White)
	}
	pw, ph := int(box.W), int(box.H)
	op := &ebiten.DrawRectShaderOptions{}
	op.GeoM.Translate(box.X+ox, box.Y)
	op.Images[0] = playerImage.SubImage(image.Rect(0, 0, pw, ph)).(*ebiten.Image)
	op.Uniforms = map[string]any{"TintColor": tint[:]}
	screen.DrawRectShader(pw, ph, assets.TintShader, op)
}

func drawBoxes(screen *ebiten.Image, w *systems.World, ox float64) {
	components.Object.Each(w.Entities(), func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		clr := cfg.Magenta
		if obj.Removed {
			clr = cfg.Red
		}
		vector.StrokeRect(screen, float32(obj.Box.X+ox), float32(obj.Box.Y), float32(obj.Box.W), float32(obj.Box.H), 1, clr, false)
	})
	end := float32(w.EndX() + ox)
	vector.StrokeLine(screen, end, 0, end, float32(cfg.Screen.Height), 1, cfg.Magenta, false)
}
