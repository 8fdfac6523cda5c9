package components

import (
	cfg "github.com/automoto/floe/config"
	"github.com/yohamta/donburi"
)

type UpgradeData struct {
	Kind      cfg.UpgradeKind
	Direction float64
	// Rise is how far the item still has to climb out of its box. Items do
	// not move sideways or collide until it reaches zero.
	Rise float64
}

var Upgrade = donburi.NewComponentType[UpgradeData]()
