package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultHexfleetYAML)
	if err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultHexfleetConfig()) {
		t.Errorf("embedded default differs from DefaultHexfleetConfig:\n got %+v\nwant %+v", cfg, DefaultHexfleetConfig())
	}
}

func TestParseOverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte("gameplay:\n  moves: 12\ntimings:\n  pop: 1s\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	def := DefaultHexfleetConfig()
	if cfg.Gameplay.Moves != 12 {
		t.Errorf("moves = %d, expected 12", cfg.Gameplay.Moves)
	}
	if cfg.Timings.Pop != time.Second {
		t.Errorf("pop = %v, expected 1s", cfg.Timings.Pop)
	}
	if cfg.Timings.Swap != def.Timings.Swap {
		t.Errorf("swap should keep its default, got %v", cfg.Timings.Swap)
	}
	if cfg.Gameplay.PointsPerCell != def.Gameplay.PointsPerCell {
		t.Errorf("points_per_cell should keep its default, got %d", cfg.Gameplay.PointsPerCell)
	}
	if len(cfg.Modules) != len(def.Modules) {
		t.Errorf("modules should keep their defaults, got %d", len(cfg.Modules))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*HexfleetConfig)
	}{
		{"negative timing", func(c *HexfleetConfig) { c.Timings.Fall = -time.Millisecond }},
		{"negative moves", func(c *HexfleetConfig) { c.Gameplay.Moves = -1 }},
		{"zero points", func(c *HexfleetConfig) { c.Gameplay.PointsPerCell = 0 }},
		{"short max run", func(c *HexfleetConfig) { c.Gameplay.MaxRun = 2 }},
		{"negative hint cost", func(c *HexfleetConfig) { c.Gameplay.HintCost = -5 }},
		{"negative incoming damage", func(c *HexfleetConfig) { c.Gameplay.IncomingDamage = -1 }},
		{"zero spacing", func(c *HexfleetConfig) { c.Board.Spacing = 0 }},
		{"unknown module kind", func(c *HexfleetConfig) { c.Modules[0].Kind = "torpedo" }},
		{"unnamed module", func(c *HexfleetConfig) { c.Modules[0].Name = "" }},
		{"duplicate module", func(c *HexfleetConfig) { c.Modules[1].Name = c.Modules[0].Name }},
		{"unpowered module", func(c *HexfleetConfig) { c.Modules[0].PoweredBy = "" }},
		{"zero threshold", func(c *HexfleetConfig) { c.Modules[0].Threshold = 0 }},
		{"negative power", func(c *HexfleetConfig) { c.Modules[0].Power = -1 }},
	}

	if err := DefaultHexfleetConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHexfleetConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadHexfleetCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	if err := os.WriteFile(path, []byte("gameplay:\n  moves: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHexfleet(path)
	if err != nil {
		t.Fatalf("LoadHexfleet failed: %v", err)
	}
	if cfg.Gameplay.Moves != 5 {
		t.Errorf("moves = %d, expected 5", cfg.Gameplay.Moves)
	}
}

func TestLoadHexfleetCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadHexfleet(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected an error for a missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay:\n  max_run: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadHexfleet(bad)
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for an invalid custom config, got %v", err)
	}
}

func TestLoadHexfleetUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".hexfleet", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("gameplay:\n  hint_cost: 99\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHexfleet("")
	if err != nil {
		t.Fatalf("LoadHexfleet failed: %v", err)
	}
	if cfg.Gameplay.HintCost != 99 {
		t.Errorf("hint_cost = %d, expected 99 from the user config", cfg.Gameplay.HintCost)
	}
}

func TestLoadHexfleetSkipsBrokenUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".hexfleet", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("gameplay: [nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHexfleet("")
	if err != nil {
		t.Fatalf("LoadHexfleet failed: %v", err)
	}
	if cfg.Gameplay.Moves != DefaultHexfleetConfig().Gameplay.Moves {
		t.Errorf("expected the embedded default, got moves = %d", cfg.Gameplay.Moves)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	want := DefaultHexfleetConfig()
	want.Timings.Pop = 1500 * time.Millisecond

	data, err := Marshal(want)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse of dumped config failed: %v\n%s", err, data)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestModes(t *testing.T) {
	tests := []struct {
		input     string
		mode      Mode
		wantMoves int
	}{
		{"", ModeClassic, 30},
		{"classic", ModeClassic, 30},
		{"endless", ModeEndless, 0},
		{"blitz", ModeBlitz, 15},
	}

	for _, tc := range tests {
		t.Run(string(tc.mode), func(t *testing.T) {
			mode, err := ParseMode(tc.input)
			if err != nil {
				t.Fatalf("ParseMode(%q) failed: %v", tc.input, err)
			}
			if mode != tc.mode {
				t.Errorf("ParseMode(%q) = %q, expected %q", tc.input, mode, tc.mode)
			}

			cfg := DefaultHexfleetConfig()
			ApplyMode(&cfg, mode)
			if cfg.Gameplay.Moves != tc.wantMoves {
				t.Errorf("moves = %d, expected %d", cfg.Gameplay.Moves, tc.wantMoves)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("mode %s produced an invalid config: %v", mode, err)
			}
		})
	}

	cfg := DefaultHexfleetConfig()
	ApplyMode(&cfg, ModeBlitz)
	if cfg.Timings.Swap != DefaultHexfleetConfig().Timings.Swap/2 {
		t.Errorf("blitz should halve timings, swap = %v", cfg.Timings.Swap)
	}

	if _, err := ParseMode("zen"); !errors.Is(err, ErrInvalid) {
		t.Errorf("expected ErrInvalid for an unknown mode, got %v", err)
	}
}
