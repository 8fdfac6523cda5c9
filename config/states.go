package config

import "strings"

// PlayerSize is the player's power-up size.
type PlayerSize int

const (
	SizeSmall PlayerSize = iota
	SizeBig
)

func (s PlayerSize) String() string {
	if s == SizeBig {
		return "big"
	}
	return "small"
}

// DyingState is shared by the player and bad guys.
type DyingState int

const (
	DyingNot DyingState = iota
	DyingSquished
	DyingFalling
)

func (d DyingState) String() string {
	switch d {
	case DyingSquished:
		return "squished"
	case DyingFalling:
		return "falling"
	}
	return "alive"
}

// BadGuyMode is the shell cycle of a bad guy.
type BadGuyMode int

const (
	ModeNormal BadGuyMode = iota
	ModeFlat
	ModeKick
	ModeHeld
)

func (m BadGuyMode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeKick:
		return "kick"
	case ModeHeld:
		return "held"
	}
	return "normal"
}

// BadGuyKind enumerates enemy types.
type BadGuyKind int

const (
	BadGuyBSOD BadGuyKind = iota
	BadGuyLaptop
	BadGuyMoney
)

func (k BadGuyKind) String() string {
	if kc, ok := BadGuy.Kinds[k]; ok {
		return kc.Name
	}
	return "unknown"
}

// ParseBadGuyKind maps a level file name to a kind.
func ParseBadGuyKind(name string) (BadGuyKind, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, kc := range BadGuy.Kinds {
		if kc.Name == name {
			return k, true
		}
	}
	return BadGuyBSOD, false
}

// UpgradeKind enumerates the items released by boxes.
type UpgradeKind int

const (
	UpgradeMints UpgradeKind = iota
	UpgradeCoffee
	UpgradeHerring
)

func (u UpgradeKind) String() string {
	switch u {
	case UpgradeCoffee:
		return "coffee"
	case UpgradeHerring:
		return "herring"
	}
	return "mints"
}

// CollisionType classifies an entity-pair contact.
type CollisionType int

const (
	CollisionNormal CollisionType = iota
	CollisionBump
	CollisionSquish
)

// KillMode selects between losing a power-up and losing a life.
type KillMode int

const (
	KillShrink KillMode = iota
	KillFull
)
