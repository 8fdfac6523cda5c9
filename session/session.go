// Package session holds the state that outlives a single level attempt:
// score, coins, lives, the stomp multiplier, the power carried between levels
// and the camera scroll. The core receives it by pointer every frame.
package session

import (
	cfg "github.com/automoto/floe/config"
)

// State is the game session. The zero value is not useful; use New.
type State struct {
	Score           int            `json:"score"`
	Coins           int            `json:"coins"`
	Lives           int            `json:"lives"`
	ScoreMultiplier int            `json:"-"`
	Size            cfg.PlayerSize `json:"size"`
	GotCoffee       bool           `json:"gotCoffee"`
	LevelIndex      int            `json:"levelIndex"`
	LevelName       string         `json:"levelName"`
	ScrollX         float64        `json:"-"`
}

// New returns a fresh session with the starting lives.
func New() *State {
	return &State{
		Lives:           cfg.Player.StartingLives,
		ScoreMultiplier: 1,
	}
}

// AddScore awards base points scaled by the current multiplier and returns
// what was actually added.
func (s *State) AddScore(base int) int {
	if s.ScoreMultiplier < 1 {
		s.ScoreMultiplier = 1
	}
	pts := base * s.ScoreMultiplier
	s.Score += pts
	return pts
}

// AddPlainScore awards points that ignore the multiplier.
func (s *State) AddPlainScore(pts int) {
	s.Score += pts
}

// BumpMultiplier raises the multiplier after a stomp.
func (s *State) BumpMultiplier() {
	s.ScoreMultiplier++
}

// ResetMultiplier is called when the player lands.
func (s *State) ResetMultiplier() {
	s.ScoreMultiplier = 1
}

// AddCoin counts one coin and reports whether it completed an extra life.
func (s *State) AddCoin() bool {
	s.Coins++
	if s.Coins < cfg.Player.CoinsPerLife {
		return false
	}
	s.Coins -= cfg.Player.CoinsPerLife
	return s.AddLife()
}

// AddLife adds a life up to the cap and reports whether it was added.
func (s *State) AddLife() bool {
	if s.Lives >= cfg.Player.MaxLives {
		return false
	}
	s.Lives++
	return true
}

// LoseLife takes one life and drops any carried power. It reports whether the
// game is over.
func (s *State) LoseLife() bool {
	s.Lives--
	s.Size = cfg.SizeSmall
	s.GotCoffee = false
	s.ScoreMultiplier = 1
	return s.GameOver()
}

// GameOver reports whether the lives ran out.
func (s *State) GameOver() bool {
	return s.Lives < 0
}

// AdvanceLevel moves the session to the next level.
func (s *State) AdvanceLevel(index int, name string) {
	s.LevelIndex = index
	s.LevelName = name
	s.ScrollX = 0
	s.ScoreMultiplier = 1
}
