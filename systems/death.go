package systems

import (
	"github.com/automoto/floe/components"
	"github.com/automoto/floe/session"
	"github.com/yohamta/donburi"
)

// RemoveDead compacts the registry: every entity marked for removal this
// frame leaves the broadphase space and the world. Handles to removed
// entities report !Valid from here on.
func RemoveDead(w *World, _ *session.State, _ float64) {
	var dead []*donburi.Entry
	components.Object.Each(w.entities, func(e *donburi.Entry) {
		if components.Object.Get(e).Removed {
			dead = append(dead, e)
		}
	})

	player := components.Player.Get(w.player)
	for _, e := range dead {
		if sameEntity(player.Holding, e) {
			player.Holding = nil
		}
		if obj := components.Object.Get(e); obj.Proxy != nil {
			w.space.Remove(obj.Proxy)
		}
		w.entities.Remove(e.Entity())
	}
}
