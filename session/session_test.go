package session

import (
	"testing"

	cfg "github.com/automoto/floe/config"
	"github.com/stretchr/testify/assert"
)

func TestScoreMultiplier(t *testing.T) {
	s := New()

	assert.Equal(t, 50, s.AddScore(50))
	s.BumpMultiplier()
	assert.Equal(t, 100, s.AddScore(50))
	s.BumpMultiplier()
	assert.Equal(t, 75, s.AddScore(25))
	s.ResetMultiplier()
	assert.Equal(t, 25, s.AddScore(25))
	s.AddPlainScore(5)

	assert.Equal(t, 255, s.Score)
}

func TestCoinsBuyLives(t *testing.T) {
	s := New()
	start := s.Lives

	lifeUps := 0
	for i := 0; i < 2*cfg.Player.CoinsPerLife+5; i++ {
		if s.AddCoin() {
			lifeUps++
		}
	}

	assert.Equal(t, 2, lifeUps)
	assert.Equal(t, start+2, s.Lives)
	assert.Equal(t, 5, s.Coins)
}

func TestLivesCap(t *testing.T) {
	s := New()
	s.Lives = cfg.Player.MaxLives

	assert.False(t, s.AddLife())
	assert.Equal(t, cfg.Player.MaxLives, s.Lives)
}

func TestLoseLife(t *testing.T) {
	s := New()
	s.Size = cfg.SizeBig
	s.GotCoffee = true
	s.Lives = 1

	assert.False(t, s.LoseLife())
	assert.Equal(t, cfg.SizeSmall, s.Size)
	assert.False(t, s.GotCoffee)

	assert.True(t, s.LoseLife())
	assert.Equal(t, -1, s.Lives)
}
