package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Extensions lists the level file formats Load understands.
var Extensions = []string{".yaml", ".yml", ".tmx"}

func supported(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	for _, e := range Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load reads one level file, picking the parser from its extension.
func Load(fsys fs.FS, levelPath string) (*Level, error) {
	ext := strings.ToLower(path.Ext(levelPath))
	switch ext {
	case ".tmx":
		return LoadTMX(fsys, levelPath)
	case ".yaml", ".yml":
		data, err := fs.ReadFile(fsys, levelPath)
		if err != nil {
			return nil, fmt.Errorf("read level %s: %w", levelPath, err)
		}
		level, err := ParseYAML(strings.TrimSuffix(path.Base(levelPath), path.Ext(levelPath)), data)
		if err != nil {
			return nil, err
		}
		level.Source = levelPath
		return level, nil
	}
	return nil, fmt.Errorf("%w: unsupported level format %q", ErrMalformed, ext)
}

// LoadAll loads every level file in dir, sorted by file name. One bad file
// fails the whole set.
func LoadAll(fsys fs.FS, dir string) ([]*Level, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels dir %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !supported(e.Name()) {
			continue
		}
		paths = append(paths, path.Join(dir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoLevels, dir)
	}
	sort.Strings(paths)

	levels := make([]*Level, 0, len(paths))
	for _, p := range paths {
		level, err := Load(fsys, p)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, level)
	}
	return levels, nil
}

// Find returns the level with the given name, or the level at a 1-based
// position when name is a number.
func Find(levels []*Level, name string) (*Level, int, bool) {
	for i, l := range levels {
		if l.Name == name {
			return l, i, true
		}
	}
	if n, err := strconv.Atoi(name); err == nil && n >= 1 && n <= len(levels) {
		return levels[n-1], n - 1, true
	}
	return nil, -1, false
}
