// Package formats provides board layout file format parsers.
package formats

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
	"gopkg.in/yaml.v3"
)

// YAMLLayout represents the YAML structure for a layout file.
//
// The playable shape can be given either as an explicit mask list or as
// shape rows, top row first, where '.' marks a clipped slot, '*' a slot
// that starts Wild and any other non-space character a playable one:
//
//	shape:
//	  - ". # # # ."
//	  - "# # * # #"
//
// Wild cells only come from layout data; refills are always concrete.
type YAMLLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Size     YAMLSize          `yaml:"size"`
	Palette  []string          `yaml:"palette,omitempty"`
	Wilds    []YAMLPos         `yaml:"wilds,omitempty"`
	Mask     []YAMLPos         `yaml:"mask,omitempty"`
	Shape    []string          `yaml:"shape,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// YAMLSize represents board dimensions.
type YAMLSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// YAMLPos is a single board position.
type YAMLPos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Layout represents a parsed layout ready for board construction.
type Layout struct {
	ID       string
	Name     string
	Width    int
	Height   int
	Palette  []core.CellType
	Wilds    []core.Pos
	Mask     []core.Pos
	Metadata map[string]string
}

// ParseYAML parses a YAML layout file.
// An empty palette means every concrete type.
func ParseYAML(data []byte) (Layout, error) {
	var yl YAMLLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Layout{}, fmt.Errorf("layout has no id")
	}

	layout := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Width:    yl.Size.W,
		Height:   yl.Size.H,
		Metadata: yl.Metadata,
	}
	if layout.Name == "" {
		layout.Name = yl.ID
	}

	palette, err := parsePalette(yl.Palette)
	if err != nil {
		return Layout{}, fmt.Errorf("layout %s: %w", yl.ID, err)
	}
	layout.Palette = palette

	if len(yl.Shape) > 0 {
		w, h, mask, wilds, err := parseShape(yl.Shape)
		if err != nil {
			return Layout{}, fmt.Errorf("layout %s: %w", yl.ID, err)
		}
		if layout.Width == 0 && layout.Height == 0 {
			layout.Width, layout.Height = w, h
		}
		if w != layout.Width || h != layout.Height {
			return Layout{}, fmt.Errorf("layout %s: shape is %dx%d but size is %dx%d",
				yl.ID, w, h, layout.Width, layout.Height)
		}
		layout.Mask = mask
		layout.Wilds = wilds
	}

	for _, p := range yl.Mask {
		layout.Mask = append(layout.Mask, core.P(p.X, p.Y))
	}
	for _, p := range yl.Wilds {
		layout.Wilds = append(layout.Wilds, core.P(p.X, p.Y))
	}

	return layout, nil
}

// parsePalette resolves cell type names. Only concrete types are allowed.
func parsePalette(names []string) ([]core.CellType, error) {
	if len(names) == 0 {
		return core.ConcreteTypes(), nil
	}

	seen := make(map[core.CellType]bool, len(names))
	palette := make([]core.CellType, 0, len(names))
	for _, name := range names {
		t, ok := core.ParseCellType(name)
		if !ok || !t.IsConcrete() {
			return nil, fmt.Errorf("invalid palette entry %q", name)
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		palette = append(palette, t)
	}
	return palette, nil
}

// parseShape reads shape rows (top row first) and returns the dimensions,
// the clipped positions and the wild positions. Spaces between glyphs are
// ignored.
func parseShape(rows []string) (w, h int, mask, wilds []core.Pos, err error) {
	h = len(rows)
	for i, row := range rows {
		glyphs := strings.ReplaceAll(row, " ", "")
		if i == 0 {
			w = len(glyphs)
		} else if len(glyphs) != w {
			return 0, 0, nil, nil, fmt.Errorf("shape row %d has %d columns, want %d", i, len(glyphs), w)
		}

		y := h - 1 - i
		for x, g := range glyphs {
			switch g {
			case '.':
				mask = append(mask, core.P(x, y))
			case '*':
				wilds = append(wilds, core.P(x, y))
			}
		}
	}
	return w, h, mask, wilds, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

// BoardConfig converts the layout into engine construction input.
func (l *Layout) BoardConfig(spacing float64) core.BoardConfig {
	return core.BoardConfig{
		Width:   l.Width,
		Height:  l.Height,
		Mask:    append([]core.Pos(nil), l.Mask...),
		Palette: append([]core.CellType(nil), l.Palette...),
		Wilds:   append([]core.Pos(nil), l.Wilds...),
		Spacing: spacing,
	}
}
