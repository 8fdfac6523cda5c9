// Package assets embeds the bundled levels and shaders.
package assets

import (
	"embed"
	"io/fs"

	"github.com/automoto/floe/shared/leveldata"
)

// LevelDir is the directory of the bundled levels inside FS.
const LevelDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

// FS returns the embedded asset tree.
func FS() fs.FS {
	return assetFS
}

// LoadLevels parses every bundled level in file name order.
func LoadLevels() ([]*leveldata.Level, error) {
	return leveldata.LoadAll(assetFS, LevelDir)
}
