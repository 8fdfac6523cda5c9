package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyOverridesKeepsMissingKeys(t *testing.T) {
	defer Defaults()

	err := ApplyOverrides([]byte("physics:\n  gravity: 0.2\nplayer:\n  max_bullets: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 0.2, Physics.Gravity)
	assert.Equal(t, 10.0, Physics.MaxFallSpeed)
	assert.Equal(t, 5, Player.MaxBullets)
	assert.Equal(t, 5.2, Player.JumpSpeed)
	assert.Len(t, BadGuy.Kinds, 3)
}

func TestApplyOverridesRejectsBadYAML(t *testing.T) {
	defer Defaults()
	assert.Error(t, ApplyOverrides([]byte("physics: [1, 2")))
}

func TestLoadOverridesFromPath(t *testing.T) {
	defer Defaults()

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("score:\n  coin: 50\n"), 0o644))

	applied, err := LoadOverrides(path)
	require.NoError(t, err)
	assert.Equal(t, path, applied)
	assert.Equal(t, 50, Score.Coin)
	assert.Equal(t, 100, Score.Shell)

	_, err = LoadOverrides(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseAction(t *testing.T) {
	a, ok := ParseAction("run")
	assert.True(t, ok)
	assert.Equal(t, ActionFire, a)

	_, ok = ParseAction("moonwalk")
	assert.False(t, ok)
}

func TestParseBadGuyKind(t *testing.T) {
	k, ok := ParseBadGuyKind(" Laptop ")
	assert.True(t, ok)
	assert.Equal(t, BadGuyLaptop, k)
	assert.Equal(t, "laptop", k.String())

	_, ok = ParseBadGuyKind("dragon")
	assert.False(t, ok)
}
