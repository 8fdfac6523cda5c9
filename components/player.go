package components

import (
	cfg "github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/gametime"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Size      cfg.PlayerSize
	Duck      bool
	Direction float64 // cfg.DirectionLeft or cfg.DirectionRight
	Dying     cfg.DyingState
	Jumping   bool
	CanJump   bool // re-armed on the ground with jump released

	Invincible gametime.Timer
	Skidding   gametime.Timer
	Safe       gametime.Timer

	Holding *donburi.Entry // shell carried while fire is held
}

// Hurtable reports whether contact with a hostile entity can hurt the player.
func (p *PlayerData) Hurtable() bool {
	return p.Dying == cfg.DyingNot && !p.Safe.Check() && !p.Invincible.Check()
}

var Player = donburi.NewComponentType[PlayerData]()
