package components

import (
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/gametime"
	"github.com/yohamta/donburi"
)

type BadGuyData struct {
	Kind       cfg.BadGuyKind
	KindConfig *cfg.BadGuyKindConfig // cached reference to the kind table
	Mode       cfg.BadGuyMode
	Dying      cfg.DyingState
	Direction  float64

	// Timer runs the current mode: flat time or the squish delay.
	Timer gametime.Timer
	// KickGrace keeps a freshly kicked shell from hurting its kicker.
	KickGrace gametime.Timer
}

// Live reports a bad guy that can still take part in collisions.
func (b *BadGuyData) Live() bool {
	return b.Dying == cfg.DyingNot
}

var BadGuy = donburi.NewComponentType[BadGuyData]()
