// Package layouts provides board layout loading for Hexfleet.
// This package depends on core but core does not depend on layouts.
package layouts

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/layouts/formats"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Layout represents a complete board layout definition.
type Layout struct {
	formats.Layout
	FilePath string
}

// Validate checks that the layout can build a board.
func (l *Layout) Validate() error {
	if err := l.BoardConfig(1).Validate(); err != nil {
		return fmt.Errorf("layout %s: %w", l.ID, err)
	}
	if len(l.Mask) >= l.Width*l.Height {
		return fmt.Errorf("layout %s: mask covers the whole board", l.ID)
	}
	return nil
}

// PlayableCount returns the number of unmasked slots.
func (l *Layout) PlayableCount() int {
	clipped := make(map[core.Pos]bool, len(l.Mask))
	for _, p := range l.Mask {
		clipped[p] = true
	}
	return l.Width*l.Height - len(clipped)
}

// Loader handles loading layouts from a file system.
type Loader struct {
	fsys fs.FS
	root string
}

// NewLoader creates a loader over a directory on disk.
func NewLoader(root string) *Loader {
	return &Loader{fsys: os.DirFS(root), root: "."}
}

// Builtin returns a loader over the layouts compiled into the binary.
func Builtin() *Loader {
	return &Loader{fsys: builtinFS, root: "builtin"}
}

// LoadAll recursively scans and loads all layout files.
// Files that fail to parse or validate are skipped.
// Returns layouts sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Layout, error) {
	var layouts []Layout

	err := fs.WalkDir(l.fsys, l.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(path.Ext(p))) {
			return nil
		}

		layout, err := l.LoadFile(p)
		if err != nil {
			return nil
		}
		layouts = append(layouts, layout)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking layouts: %w", err)
	}

	sort.Slice(layouts, func(i, j int) bool {
		return layouts[i].ID < layouts[j].ID
	})

	return layouts, nil
}

// LoadFile loads and validates a single layout file.
func (l *Loader) LoadFile(p string) (Layout, error) {
	data, err := fs.ReadFile(l.fsys, p)
	if err != nil {
		return Layout{}, fmt.Errorf("reading file %s: %w", p, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(path.Ext(p)))
	if err != nil {
		return Layout{}, fmt.Errorf("parsing file %s: %w", p, err)
	}

	layout := Layout{Layout: parsed, FilePath: p}
	if err := layout.Validate(); err != nil {
		return Layout{}, err
	}
	return layout, nil
}

// LoadByID loads a specific layout by ID.
func (l *Loader) LoadByID(id string) (Layout, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return Layout{}, err
	}

	for _, layout := range layouts {
		if layout.ID == id {
			return layout, nil
		}
	}

	return Layout{}, fmt.Errorf("layout not found: %s", id)
}

// ListIDs returns all layout IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	layouts, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(layouts))
	for i, layout := range layouts {
		ids[i] = layout.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}

func parseByExtension(data []byte, ext string) (formats.Layout, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Layout{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
