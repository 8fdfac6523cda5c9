package archetypes

import (
	"github.com/automoto/floe/components"
	"github.com/automoto/floe/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
		components.Input,
	)
	BadGuy = newArchetype(
		tags.BadGuy,
		components.BadGuy,
		components.Object,
		components.Physics,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
		components.Object,
		components.Physics,
	)
	Upgrade = newArchetype(
		tags.Upgrade,
		components.Upgrade,
		components.Object,
		components.Physics,
	)
	Decoration = newArchetype(
		tags.Decoration,
		components.Decoration,
		components.Object,
		components.Physics,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
