package factory

import (
	"github.com/automoto/floe/components"
	"github.com/automoto/floe/shared/gamemath"
	"github.com/automoto/floe/shared/gametime"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Env is what the constructors need from the entity registry.
type Env interface {
	Entities() donburi.World
	Space() *resolv.Space
	Clock() *gametime.Clock
}

// CreateSpace builds the broadphase space covering a level of the given
// pixel size, with one cell per tile.
func CreateSpace(width, height float64) *resolv.Space {
	cell := int(tilegrid.TileSize)
	return resolv.NewSpace(int(width), int(height), cell, cell)
}

// setObject attaches the bounding box and, when tag is not empty, a
// broadphase proxy tagged for the dispatcher.
func setObject(env Env, e *donburi.Entry, box gamemath.Box, tag string) *components.ObjectData {
	data := components.ObjectData{Box: box, Prev: box}
	if tag != "" {
		obj := resolv.NewObject(box.X, box.Y, box.W, box.H, tag)
		obj.Data = e
		env.Space().Add(obj)
		data.Proxy = obj
	}
	components.Object.SetValue(e, data)
	return components.Object.Get(e)
}
