package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	BadGuy     = donburi.NewTag().SetName("BadGuy")
	Bullet     = donburi.NewTag().SetName("Bullet")
	Upgrade    = donburi.NewTag().SetName("Upgrade")
	Decoration = donburi.NewTag().SetName("Decoration")
)

// Resolv tags for the broadphase
const (
	ResolvPlayer  = "Player"
	ResolvBadGuy  = "BadGuy"
	ResolvBullet  = "Bullet"
	ResolvUpgrade = "Upgrade"
)
