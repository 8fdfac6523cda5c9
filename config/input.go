package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionDuck
	ActionJump
	ActionFire  // fire bullets, grab stunned shells, run
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[string]ActionID{
	"left":  ActionMoveLeft,
	"right": ActionMoveRight,
	"up":    ActionMoveUp,
	"down":  ActionDuck,
	"duck":  ActionDuck,
	"jump":  ActionJump,
	"fire":  ActionFire,
	"run":   ActionFire,
}

// ParseAction maps a script token such as "jump" to an action.
func ParseAction(name string) (ActionID, bool) {
	id, ok := actionNames[name]
	return id, ok
}
