package components

import (
	cfg "github.com/automoto/floe/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Push shifts the current frame into Previous and records a new one.
func (i *InputData) Push(next [cfg.ActionCount]bool) {
	i.Previous = i.Current
	i.Current = next
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()
