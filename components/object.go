package components

import (
	"github.com/automoto/floe/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the bounding box of a dynamic entity. Box is the truth; Proxy
// mirrors it inside the broadphase space and is synced once per frame.
type ObjectData struct {
	Box  gamemath.Box
	Prev gamemath.Box // last frame's box, used by the swept resolver
	// Removed entities stay in storage until the end-of-frame removal pass
	// and are skipped by every system and the dispatcher until then.
	Removed bool
	Proxy   *resolv.Object
}

// SyncPrev makes the previous box match the current one. Needed after any
// teleport or size change so the next sweep starts from the right place.
func (o *ObjectData) SyncPrev() {
	o.Prev = o.Box
}

var Object = donburi.NewComponentType[ObjectData]()
