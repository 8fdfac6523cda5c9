package leveldata

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlLevel is the on-disk shape of a .yaml level.
type yamlLevel struct {
	Title      string      `yaml:"title"`
	Theme      string      `yaml:"theme,omitempty"`
	Time       int         `yaml:"time,omitempty"`
	Width      int         `yaml:"width,omitempty"`
	Background []int       `yaml:"background,omitempty"`
	Start      *yamlPoint  `yaml:"start,omitempty"`
	BadGuys    []yamlSpawn `yaml:"badguys,omitempty"`
	Rows       []string    `yaml:"rows"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlSpawn struct {
	Kind string  `yaml:"kind"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// ParseYAML parses a YAML level. name is used for errors and selection.
func ParseYAML(name string, data []byte) (*Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, name, err)
	}
	if len(yl.Background) != 0 && len(yl.Background) != 3 {
		return nil, fmt.Errorf("%w: %s background needs 3 components, got %d", ErrMalformed, name, len(yl.Background))
	}

	level := &Level{
		Name:  name,
		Title: yl.Title,
		Theme: yl.Theme,
		Time:  yl.Time,
		Rows:  append([]string(nil), yl.Rows...),
		Start: DefaultStart,
	}
	if level.Title == "" {
		level.Title = name
	}
	for i, c := range yl.Background {
		if c < 0 || c > 255 {
			return nil, fmt.Errorf("%w: %s background component %d out of range", ErrMalformed, name, c)
		}
		level.Background[i] = uint8(c)
	}
	if yl.Start != nil {
		level.Start = Point{X: yl.Start.X, Y: yl.Start.Y}
	}
	for _, s := range yl.BadGuys {
		level.BadGuys = append(level.BadGuys, Spawn{Kind: s.Kind, X: s.X, Y: s.Y})
	}

	if err := normalize(level, yl.Width); err != nil {
		return nil, err
	}
	return level, nil
}

// MarshalYAML writes a level back out in the YAML level format.
func MarshalYAML(l *Level) ([]byte, error) {
	yl := yamlLevel{
		Title:      l.Title,
		Theme:      l.Theme,
		Time:       l.Time,
		Width:      l.Width,
		Background: []int{int(l.Background[0]), int(l.Background[1]), int(l.Background[2])},
		Start:      &yamlPoint{X: l.Start.X, Y: l.Start.Y},
		Rows:       l.Rows,
	}
	for _, s := range l.BadGuys {
		yl.BadGuys = append(yl.BadGuys, yamlSpawn{Kind: s.Kind, X: s.X, Y: s.Y})
	}
	out, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("marshal level %s: %w", l.Name, err)
	}
	return out, nil
}
