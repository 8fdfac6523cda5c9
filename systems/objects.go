package systems

import (
	"github.com/automoto/floe/components"
	"github.com/automoto/floe/session"
	"github.com/yohamta/donburi"
)

// UpdateObjects copies every box into its broadphase proxy. Must run after
// all movement and before DispatchCollisions.
func UpdateObjects(w *World, _ *session.State, _ float64) {
	components.Object.Each(w.entities, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if obj.Proxy == nil || obj.Removed {
			return
		}
		obj.Proxy.X = obj.Box.X
		obj.Proxy.Y = obj.Box.Y
		obj.Proxy.W = obj.Box.W
		obj.Proxy.H = obj.Box.H
		obj.Proxy.Update()
	})
}
