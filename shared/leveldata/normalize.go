package leveldata

import (
	"fmt"
	"sort"
	"strings"

	"github.com/automoto/floe/config"
	"github.com/automoto/floe/shared/tilegrid"
	"github.com/charmbracelet/log"
)

// normalize checks the row block, pads short rows, converts digit markers into
// spawns and validates every spawn kind. width <= 0 means "widest row".
func normalize(l *Level, width int) error {
	if len(l.Rows) != tilegrid.Rows {
		return fmt.Errorf("%w: %s has %d rows, want %d", ErrMalformed, l.Name, len(l.Rows), tilegrid.Rows)
	}

	if width <= 0 {
		for _, r := range l.Rows {
			width = max(width, len(r))
		}
	}
	if width <= 0 {
		return fmt.Errorf("%w: %s is empty", ErrMalformed, l.Name)
	}
	l.Width = width

	unknown := map[byte]bool{}
	var markers []Spawn
	for y, r := range l.Rows {
		if len(r) > width {
			return fmt.Errorf("%w: %s row %d is %d tiles, level is %d", ErrMalformed, l.Name, y, len(r), width)
		}
		row := []byte(r + strings.Repeat(string(tilegrid.Empty), width-len(r)))
		for x, c := range row {
			if c >= '0' && c <= '9' {
				kind := config.BadGuyKind(c - '0')
				if _, ok := config.BadGuy.Kinds[kind]; !ok {
					return fmt.Errorf("%w: %s has unknown bad guy marker %q at %d,%d", ErrMalformed, l.Name, c, x, y)
				}
				markers = append(markers, Spawn{
					Kind: kind.String(),
					X:    float64(x) * tilegrid.TileSize,
					Y:    float64(y) * tilegrid.TileSize,
				})
				row[x] = tilegrid.Empty
				continue
			}
			if !tilegrid.Known(c) {
				unknown[c] = true
			}
		}
		l.Rows[y] = string(row)
	}
	l.BadGuys = append(l.BadGuys, markers...)

	for i, s := range l.BadGuys {
		kind, ok := config.ParseBadGuyKind(s.Kind)
		if !ok {
			return fmt.Errorf("%w: %s has unknown bad guy kind %q", ErrMalformed, l.Name, s.Kind)
		}
		l.BadGuys[i].Kind = kind.String()
	}
	sort.SliceStable(l.BadGuys, func(i, j int) bool {
		return l.BadGuys[i].X < l.BadGuys[j].X
	})

	if len(unknown) > 0 {
		chars := make([]string, 0, len(unknown))
		for c := range unknown {
			chars = append(chars, fmt.Sprintf("%q", c))
		}
		sort.Strings(chars)
		log.Warn("unknown tile characters treated as empty", "level", l.Name, "chars", strings.Join(chars, " "))
	}

	if l.Time <= 0 {
		l.Time = DefaultTime
	}
	return nil
}
