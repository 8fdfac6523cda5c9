package leveldata

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/floe/shared/tilegrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// yamlRows renders a rows block with a floor and the given overrides.
func yamlRows(width int, overrides map[int]string) string {
	var b strings.Builder
	b.WriteString("rows:\n")
	for y := 0; y < tilegrid.Rows; y++ {
		row := strings.Repeat(".", width)
		if y == tilegrid.Rows-1 {
			row = strings.Repeat("=", width)
		}
		if o, ok := overrides[y]; ok {
			row = o
		}
		fmt.Fprintf(&b, "  - %q\n", row)
	}
	return b.String()
}

func TestParseYAML(t *testing.T) {
	src := "title: First Steps\ntime: 200\nstart: {x: 64, y: 96}\nbadguys:\n  - {kind: money, x: 300, y: 64}\n" +
		yamlRows(10, map[int]string{13: "..1..", 10: "..A$#"})

	level, err := ParseYAML("first", []byte(src))
	require.NoError(t, err)

	assert.Equal(t, "First Steps", level.Title)
	assert.Equal(t, 200, level.Time)
	assert.Equal(t, 10, level.Width)
	assert.Equal(t, Point{X: 64, Y: 96}, level.Start)
	require.Len(t, level.Rows, tilegrid.Rows)
	assert.Equal(t, "..........", level.Rows[13], "marker cleared and row padded")
	assert.Equal(t, "..A$#.....", level.Rows[10])

	require.Len(t, level.BadGuys, 2)
	assert.Equal(t, Spawn{Kind: "laptop", X: 64, Y: 416}, level.BadGuys[0])
	assert.Equal(t, Spawn{Kind: "money", X: 300, Y: 64}, level.BadGuys[1])

	g := level.Grid()
	assert.True(t, g.IsFullBox(2*32+5, 10*32+5))
	assert.True(t, g.IsSolid(0, 14*32))
	assert.Equal(t, float64(5*32), level.EndX(5))
}

func TestParseYAMLDefaults(t *testing.T) {
	level, err := ParseYAML("plain", []byte(yamlRows(3, nil)))
	require.NoError(t, err)

	assert.Equal(t, "plain", level.Title)
	assert.Equal(t, DefaultTime, level.Time)
	assert.Equal(t, DefaultStart, level.Start)
	assert.Empty(t, level.BadGuys)
}

func TestParseYAMLRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"bad yaml", "rows: [unterminated"},
		{"too few rows", "rows:\n  - \"....\"\n"},
		{"unknown kind", "badguys:\n  - {kind: dragon, x: 1, y: 1}\n" + yamlRows(4, nil)},
		{"unknown marker", yamlRows(4, map[int]string{3: "..7."})},
		{"row wider than level", "width: 4\n" + yamlRows(4, map[int]string{2: "......"})},
		{"empty", yamlRows(0, nil)},
		{"short background", "background: [1, 2]\n" + yamlRows(4, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML("broken", []byte(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformed), "got %v", err)
		})
	}
}

func TestMarshalYAMLKeepsLevel(t *testing.T) {
	src := "title: Loop\nbackground: [10, 20, 30]\n" + yamlRows(6, map[int]string{13: "0....2"})
	level, err := ParseYAML("loop", []byte(src))
	require.NoError(t, err)

	out, err := MarshalYAML(level)
	require.NoError(t, err)
	again, err := ParseYAML("loop", out)
	require.NoError(t, err)

	assert.Equal(t, level.Rows, again.Rows)
	assert.Equal(t, level.BadGuys, again.BadGuys)
	assert.Equal(t, [3]uint8{10, 20, 30}, again.Background)
}

const tinyTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="15" tilewidth="32" tileheight="32" infinite="0" nextlayerid="4" nextobjectid="3">
 <properties>
  <property name="title" value="Tiny"/>
  <property name="time" type="int" value="120"/>
 </properties>
 <tileset firstgid="1" name="floe" tilewidth="32" tileheight="32" tilecount="2" columns="2">
  <image source="tiles.png" width="64" height="32"/>
  <tile id="0">
   <properties>
    <property name="char" value="#"/>
   </properties>
  </tile>
  <tile id="1">
   <properties>
    <property name="char" value="A"/>
   </properties>
  </tile>
 </tileset>
 <layer id="1" name="tiles" width="4" height="15">
  <data encoding="csv">
%s
</data>
 </layer>
 <objectgroup id="2" name="badguys">
  <object id="1" name="laptop" x="64" y="416" width="32" height="32">
   <properties>
    <property name="kind" value="laptop"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="start">
  <object id="2" name="start" x="32" y="200">
   <properties>
    <property name="spawn" value="player"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func tinyTMXData() string {
	lines := make([]string, tilegrid.Rows)
	for y := range lines {
		switch y {
		case 10:
			lines[y] = "0,2,0,0,"
		case tilegrid.Rows - 1:
			lines[y] = "1,1,1,1"
		default:
			lines[y] = "0,0,0,0,"
		}
	}
	return fmt.Sprintf(tinyTMX, strings.Join(lines, "\n"))
}

func TestLoadTMX(t *testing.T) {
	fsys := fstest.MapFS{"levels/tiny.tmx": {Data: []byte(tinyTMXData())}}

	level, err := LoadTMX(fsys, "levels/tiny.tmx")
	require.NoError(t, err)

	assert.Equal(t, "tiny", level.Name)
	assert.Equal(t, "Tiny", level.Title)
	assert.Equal(t, 120, level.Time)
	assert.Equal(t, 4, level.Width)
	assert.Equal(t, Point{X: 32, Y: 200}, level.Start)
	assert.Equal(t, ".A..", level.Rows[10])
	assert.Equal(t, "####", level.Rows[14])
	assert.Equal(t, []Spawn{{Kind: "laptop", X: 64, Y: 416}}, level.BadGuys)
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.yaml":    {Data: []byte(yamlRows(8, nil))},
		"levels/a.tmx":     {Data: []byte(tinyTMXData())},
		"levels/notes.txt": {Data: []byte("not a level")},
	}

	levels, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "a", levels[0].Name)
	assert.Equal(t, "b", levels[1].Name)
	assert.Equal(t, "levels/b.yaml", levels[1].Source)

	l, idx, ok := Find(levels, "b")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.Same(t, levels[1], l)

	l, idx, ok = Find(levels, "1")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
	assert.Same(t, levels[0], l)

	_, _, ok = Find(levels, "3")
	assert.False(t, ok)
}

func TestLoadAllErrors(t *testing.T) {
	_, err := LoadAll(fstest.MapFS{"levels/readme.md": {Data: []byte("#")}}, "levels")
	assert.ErrorIs(t, err, ErrNoLevels)

	_, err = LoadAll(fstest.MapFS{"levels/bad.yaml": {Data: []byte("rows: []")}}, "levels")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = Load(fstest.MapFS{}, "levels/x.lvl")
	assert.ErrorIs(t, err, ErrMalformed)
}
