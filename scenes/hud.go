package scenes

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/fonts"
	"github.com/automoto/floe/session"
	"github.com/automoto/floe/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const hudMargin = 10

func drawText(screen *ebiten.Image, str string, face fonts.FontName, x, y, scale float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face.Get(), op)
}

// drawCentered draws str centred on x.
func drawCentered(screen *ebiten.Image, str string, face fonts.FontName, x, y, scale float64, clr color.Color) {
	w, _ := text.Measure(str, face.Get(), 0)
	drawText(screen, str, face, x-w*scale/2, y, scale, clr)
}

func drawScore(screen *ebiten.Image, points int, x, y float64) {
	drawText(screen, fmt.Sprint(points), fonts.HUD, x, y, 1, cfg.White)
}

// DrawHUD renders score, coins, lives and the level timer along the top.
func DrawHUD(screen *ebiten.Image, w *systems.World, s *session.State, banner string) {
	drawText(screen, fmt.Sprintf("SCORE %d", s.Score), fonts.HUD, hudMargin, hudMargin, 1, cfg.White)
	drawText(screen, fmt.Sprintf("COINS %d", s.Coins), fonts.HUD, 200, hudMargin, 1, cfg.Yellow)
	drawText(screen, fmt.Sprintf("LIVES %d", max(s.Lives, 0)), fonts.HUD, 330, hudMargin, 1, cfg.White)

	secs := int(w.TimeLeft() / 1000)
	clr := cfg.White
	if secs < 30 {
		clr = cfg.Red
	}
	drawText(screen, fmt.Sprintf("TIME %d", secs), fonts.HUD, cfg.Screen.Width-90, hudMargin, 1, clr)

	if s.ScoreMultiplier > 1 {
		drawText(screen, fmt.Sprintf("x%d", s.ScoreMultiplier), fonts.HUD, hudMargin, hudMargin+16, 1, cfg.Orange)
	}
	drawCentered(screen, w.Level().Title, fonts.HUD, cfg.Screen.Width/2, hudMargin, 1, cfg.LightBlue)

	if banner != "" {
		drawCentered(screen, banner, fonts.Title, cfg.Screen.Width/2, cfg.Screen.Height/3, 3, cfg.Yellow)
	}
}
