package formats

import (
	"testing"

	"github.com/vovakirdan/hexfleet/internal/games/hexfleet/core"
)

func TestParseYAMLMaskList(t *testing.T) {
	data := []byte(`
id: test
name: Test Board
size: {w: 5, h: 4}
palette: [laser_cannon, engine_drive, laser_cannon]
wilds:
  - {x: 2, y: 1}
mask:
  - {x: 0, y: 0}
  - {x: 4, y: 3}
`)
	l, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if l.ID != "test" || l.Name != "Test Board" {
		t.Errorf("unexpected id/name %q/%q", l.ID, l.Name)
	}
	if l.Width != 5 || l.Height != 4 {
		t.Errorf("expected 5x4, got %dx%d", l.Width, l.Height)
	}
	if len(l.Palette) != 2 || l.Palette[0] != core.LaserCannon || l.Palette[1] != core.EngineDrive {
		t.Errorf("palette should be deduplicated in order, got %v", l.Palette)
	}
	if len(l.Wilds) != 1 || l.Wilds[0] != core.P(2, 1) {
		t.Errorf("unexpected wilds %v", l.Wilds)
	}
	if len(l.Mask) != 2 || l.Mask[0] != core.P(0, 0) || l.Mask[1] != core.P(4, 3) {
		t.Errorf("unexpected mask %v", l.Mask)
	}
}

func TestParseYAMLShape(t *testing.T) {
	data := []byte(`
id: shaped
shape:
  - ". # #"
  - "# * ."
`)
	l, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}

	if l.Name != "shaped" {
		t.Errorf("name should default to id, got %q", l.Name)
	}
	if l.Width != 3 || l.Height != 2 {
		t.Errorf("expected 3x2 from shape, got %dx%d", l.Width, l.Height)
	}

	// Top row is y=1.
	want := map[core.Pos]bool{core.P(0, 1): true, core.P(2, 0): true}
	if len(l.Mask) != len(want) {
		t.Fatalf("expected %d masked slots, got %v", len(want), l.Mask)
	}
	for _, p := range l.Mask {
		if !want[p] {
			t.Errorf("unexpected masked slot %v", p)
		}
	}
	if len(l.Wilds) != 1 || l.Wilds[0] != core.P(1, 0) {
		t.Errorf("expected a wild at (1,0), got %v", l.Wilds)
	}
	if len(l.Palette) != len(core.ConcreteTypes()) {
		t.Errorf("empty palette should default to every concrete type, got %v", l.Palette)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "id: [unterminated"},
		{"missing id", "size: {w: 3, h: 3}"},
		{"unknown type", "id: x\nsize: {w: 3, h: 3}\npalette: [photon_torpedo]"},
		{"wild in palette", "id: x\nsize: {w: 3, h: 3}\npalette: [wild]"},
		{"ragged shape", "id: x\nshape:\n  - \"# #\"\n  - \"#\""},
		{"shape size mismatch", "id: x\nsize: {w: 4, h: 2}\nshape:\n  - \"# #\"\n  - \"# #\""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tc.data)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestBoardConfigCopies(t *testing.T) {
	l := Layout{
		Width:   3,
		Height:  3,
		Palette: []core.CellType{core.LaserCannon},
		Mask:    []core.Pos{core.P(1, 1)},
	}
	cfg := l.BoardConfig(2)
	cfg.Mask[0] = core.P(0, 0)
	cfg.Palette[0] = core.EngineDrive

	if l.Mask[0] != core.P(1, 1) || l.Palette[0] != core.LaserCannon {
		t.Error("BoardConfig should not alias layout slices")
	}
	if cfg.Spacing != 2 {
		t.Errorf("expected spacing 2, got %v", cfg.Spacing)
	}
}
