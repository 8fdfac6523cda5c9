package systems

import (
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
)

// UpdateInput swaps the player's input buffers and records this frame's
// held actions. Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(w *World, _ *session.State, _ float64) {
	input := components.Input.Get(w.player)
	input.Push(w.input)

	// Opposite directions cancel
	if input.Current[cfg.ActionMoveLeft] && input.Current[cfg.ActionMoveRight] {
		input.Current[cfg.ActionMoveLeft] = false
		input.Current[cfg.ActionMoveRight] = false
	}
}

// UpdateTimeLimit counts the level clock down and kills the player when it
// runs out.
func UpdateTimeLimit(w *World, s *session.State, dt float64) {
	if w.timeLeft <= 0 {
		return
	}
	w.timeLeft -= dt * cfg.Screen.FrameMS
	if w.timeLeft <= 0 {
		w.timeLeft = 0
		w.killPlayer(s, cfg.KillFull)
	}
}
