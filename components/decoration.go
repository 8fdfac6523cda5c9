package components

import (
	"github.com/automoto/floe/shared/gametime"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// DecorationKind enumerates the purely visual objects spawned by the core.
type DecorationKind int

const (
	BouncyDistro DecorationKind = iota
	BrokenBrick
	BouncyBrick
	FloatingScore
)

func (k DecorationKind) String() string {
	switch k {
	case BrokenBrick:
		return "broken-brick"
	case BouncyBrick:
		return "bouncy-brick"
	case FloatingScore:
		return "floating-score"
	}
	return "bouncy-distro"
}

type DecorationData struct {
	Kind DecorationKind

	Timer gametime.Timer
	// Tween drives BouncyBrick (vertical offset) and FloatingScore (Y).
	Tween  *gween.Tween
	Offset float64
	Tile   byte // the brick drawn by a BouncyBrick
	Points int  // the number shown by a FloatingScore
}

var Decoration = donburi.NewComponentType[DecorationData]()
