package config

// EventKind is a logical game event reported to the scoring/sound sink.
type EventKind int

const (
	EventNone EventKind = iota
	// Player movement
	EventJump
	EventBigJump
	EventSkid
	EventDuck
	// Pickups
	EventCoin
	EventLifeUp
	EventGrow
	EventCoffee
	EventInvincible
	// Tiles
	EventBrickBreak
	EventBrickBounce
	EventBoxOpen
	EventBumpSolid
	EventUpgradeAppear
	// Combat
	EventStomp
	EventKick
	EventGrab
	EventBadGuyFall
	EventBadGuySquish
	EventShoot
	EventPlayerHurt
	EventPlayerDie
	EventScore
	// Level
	EventLevelFinished
)

var eventNames = map[EventKind]string{
	EventNone:          "none",
	EventJump:          "jump",
	EventBigJump:       "bigjump",
	EventSkid:          "skid",
	EventDuck:          "duck",
	EventCoin:          "coin",
	EventLifeUp:        "lifeup",
	EventGrow:          "grow",
	EventCoffee:        "coffee",
	EventInvincible:    "invincible",
	EventBrickBreak:    "brick-break",
	EventBrickBounce:   "brick-bounce",
	EventBoxOpen:       "box-open",
	EventBumpSolid:     "bump",
	EventUpgradeAppear: "upgrade",
	EventStomp:         "stomp",
	EventKick:          "kick",
	EventGrab:          "grab",
	EventBadGuyFall:    "badguy-fall",
	EventBadGuySquish:  "badguy-squish",
	EventShoot:         "shoot",
	EventPlayerHurt:    "hurt",
	EventPlayerDie:     "die",
	EventScore:         "score",
	EventLevelFinished: "level-finished",
}

func (k EventKind) String() string {
	if name, ok := eventNames[k]; ok {
		return name
	}
	return "unknown"
}
