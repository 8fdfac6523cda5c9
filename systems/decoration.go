package systems

import (
	"github.com/automoto/floe/components"
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/session"
)

// UpdateDecorations animates the purely visual objects and removes them when
// they are done. Decorations never touch the grid or other entities.
func UpdateDecorations(w *World, _ *session.State, dt float64) {
	ms := float32(dt * cfg.Screen.FrameMS)

	for _, e := range liveEntries(w, components.Decoration) {
		deco := components.Decoration.Get(e)
		obj := components.Object.Get(e)
		physics := components.Physics.Get(e)

		switch deco.Kind {
		case components.BouncyDistro:
			obj.SyncPrev()
			physics.Apply(dt, &obj.Box.X, &obj.Box.Y)
			if physics.VY >= 0 {
				w.remove(e)
			}
		case components.BrokenBrick:
			obj.SyncPrev()
			physics.Apply(dt, &obj.Box.X, &obj.Box.Y)
			if !deco.Timer.Check() || obj.Box.Y > w.grid.PixelHeight() {
				w.remove(e)
			}
		case components.BouncyBrick:
			offset, done := deco.Tween.Update(ms)
			deco.Offset = float64(offset)
			if done {
				w.remove(e)
			}
		case components.FloatingScore:
			y, done := deco.Tween.Update(ms)
			obj.Box.Y = float64(y)
			if done {
				w.remove(e)
			}
		}
	}
}
