package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/automoto/floe/shared/tilegrid"
	"github.com/lafriks/go-tiled"
)

// TMX layout: a tile layer named "tiles" whose tileset tiles carry a "char"
// property, an object group "badguys" (property "kind", or the object name)
// and an object group "start" whose first object is the player start.
const (
	tmxTileLayer   = "tiles"
	tmxBadGuyGroup = "badguys"
	tmxStartGroup  = "start"
	tmxCharProp    = "char"

	// tmxDefaultChar is used for tiles whose tileset entry has no char.
	tmxDefaultChar = '='
)

// LoadTMX parses a Tiled map. It takes an fs.FS so callers can pass the
// embedded assets or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	name := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	if levelMap.Height != tilegrid.Rows {
		return nil, fmt.Errorf("%w: %s is %d tiles tall, want %d", ErrMalformed, name, levelMap.Height, tilegrid.Rows)
	}
	if levelMap.TileWidth != int(tilegrid.TileSize) || levelMap.TileHeight != int(tilegrid.TileSize) {
		return nil, fmt.Errorf("%w: %s uses %dx%d tiles, want %d", ErrMalformed, name,
			levelMap.TileWidth, levelMap.TileHeight, int(tilegrid.TileSize))
	}

	level := &Level{
		Name:   name,
		Start:  DefaultStart,
		Source: tmxPath,
	}
	if props := levelMap.Properties; props != nil {
		level.Title = props.GetString("title")
		level.Theme = props.GetString("theme")
		level.Time = props.GetInt("time")
	}
	if level.Title == "" {
		level.Title = name
	}

	rows := make([][]byte, levelMap.Height)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(string(tilegrid.Empty), levelMap.Width))
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tmxTileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}
				c := byte(tmxDefaultChar)
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil && tilesetTile.Properties != nil {
					if s := tilesetTile.Properties.GetString(tmxCharProp); s != "" {
						c = s[0]
					}
				}
				rows[y][x] = c
			}
		}
		break
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case tmxBadGuyGroup:
			for _, o := range og.Objects {
				var kind string
				if o.Properties != nil {
					kind = o.Properties.GetString("kind")
				}
				if kind == "" {
					kind = o.Name
				}
				level.BadGuys = append(level.BadGuys, Spawn{Kind: kind, X: o.X, Y: o.Y})
			}
		case tmxStartGroup:
			if len(og.Objects) > 0 {
				level.Start = Point{X: og.Objects[0].X, Y: og.Objects[0].Y}
			}
		}
	}

	level.Rows = make([]string, len(rows))
	for y, r := range rows {
		level.Rows[y] = string(r)
	}
	if err := normalize(level, levelMap.Width); err != nil {
		return nil, err
	}
	return level, nil
}
