package components

import "github.com/yohamta/donburi"

type BulletData struct {
	Direction float64
}

var Bullet = donburi.NewComponentType[BulletData]()
