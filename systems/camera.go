package systems

import (
	"math"

	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
)

// UpdateCamera scrolls forward once the player passes the middle of the
// screen. The view never scrolls back and stays inside the level.
func UpdateCamera(w *World, s *session.State, _ float64) {
	if components.Player.Get(w.player).Dying != cfg.DyingNot {
		return
	}
	box := components.Object.Get(w.player).Box

	target := box.X - cfg.Screen.Width/2
	if target > s.ScrollX {
		s.ScrollX = target
	}

	maxScroll := math.Max(w.grid.PixelWidth()-cfg.Screen.Width, 0)
	s.ScrollX = math.Max(0, math.Min(maxScroll, s.ScrollX))
}
