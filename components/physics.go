package components

import (
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	gamemath.Physic

	// Blocked is the resolver's report for the last frame.
	Blocked  tilegrid.Blocked
	OnGround bool
	// NoClip entities ignore the tile grid (dying bodies, held shells).
	NoClip bool
}

var Physics = donburi.NewComponentType[PhysicsData]()
