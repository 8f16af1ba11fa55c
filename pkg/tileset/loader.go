package tileset

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Loader reads tileset definitions from an asset directory and caches them
// by name. The cache is only dropped through Invalidate, the explicit
// "source asset changed" event.
type Loader struct {
	assetsPath string
	cache      map[string]*Definition
}

func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		cache:      make(map[string]*Definition),
	}
}

// Load returns the named tileset definition, reading it from disk on first
// use.
func (l *Loader) Load(name string) (*Definition, error) {
	if def, ok := l.cache[name]; ok {
		return def, nil
	}

	path := filepath.Join(l.assetsPath, name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read tileset file: %w", err)
	}

	var def Definition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("could not unmarshal tileset json: %w", err)
	}
	if def.Name == "" {
		def.Name = name
	}

	l.cache[name] = &def
	return &def, nil
}

// Invalidate drops the cached definition for a name. Call it when the
// backing asset changed on disk; the next Load rebuilds from the file.
func (l *Loader) Invalidate(name string) {
	delete(l.cache, name)
}
