package level

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a level source from a JSON file at path.
func Load(path string) (*Level, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return FromBytes(b)
}

// LoadFS reads a level source from an fs.FS (e.g. embedded levels).
func LoadFS(fsys fs.FS, path string) (*Level, error) {
	clean := strings.TrimPrefix(filepath.ToSlash(path), "levels/")
	b, err := fs.ReadFile(fsys, clean)
	if err != nil {
		return nil, err
	}
	return FromBytes(b)
}

// FromBytes decodes a JSON level source.
func FromBytes(b []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(b, &lvl); err != nil {
		return nil, err
	}

	if lvl.Width == 0 || lvl.Height == 0 {
		return nil, fmt.Errorf("invalid level dimensions: %dx%d", lvl.Width, lvl.Height)
	}

	for i, l := range lvl.Layers {
		if l == nil {
			return nil, fmt.Errorf("layer %d is null", i)
		}
		if l.Class == "" {
			return nil, fmt.Errorf("layer %d has no class", i)
		}
		for j, it := range l.Items {
			if it == nil || it.Class == "" {
				return nil, fmt.Errorf("layer %d: item %d has no class", i, j)
			}
		}
	}

	return &lvl, nil
}

// Save writes lvl as indented JSON, creating the parent directory.
func Save(path string, lvl *Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(lvl)
}
