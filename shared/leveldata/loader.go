package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// Extensions are tried in order when resolving a level name.
var Extensions = []string{".json", ".yaml", ".yml", ".tmx"}

// Load finds name in fsys under dir and decodes it. It takes an fs.FS so
// callers can pass embed.FS (client) or os.DirFS (tools, hot reload).
func Load(fsys fs.FS, dir, name string) (*Descriptor, error) {
	for _, ext := range Extensions {
		p := path.Join(dir, name+ext)
		if _, err := fs.Stat(fsys, p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("leveldata: stat %s: %w", p, err)
		}

		var (
			d   *Descriptor
			err error
		)
		if ext == ".tmx" {
			d, err = LoadTMX(fsys, p)
		} else {
			d, err = loadDescriptor(fsys, p)
		}
		if err != nil {
			return nil, fmt.Errorf("leveldata: load %s: %w", p, err)
		}
		if d.Name == "" {
			d.Name = name
		}
		return d, nil
	}
	return nil, fmt.Errorf("leveldata: %w: %s", ErrNotFound, name)
}

func loadDescriptor(fsys fs.FS, p string) (*Descriptor, error) {
	data, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Names lists the level names available under dir, sorted.
func Names(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("leveldata: read %s: %w", dir, err)
	}
	seen := make(map[string]bool)
	var names []string
	for _, e := range entries {
		if e.IsDir() || !isLevelFile(e.Name()) {
			continue
		}
		stem := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if !seen[stem] {
			seen[stem] = true
			names = append(names, stem)
		}
	}
	sort.Strings(names)
	return names, nil
}

func isLevelFile(name string) bool {
	ext := strings.ToLower(path.Ext(name))
	for _, e := range Extensions {
		if ext == e {
			return true
		}
	}
	return false
}
