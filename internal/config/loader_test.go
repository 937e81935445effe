package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// With no custom path and no config files around, Load falls back to
	// the embedded YAML, which must agree with the hardcoded defaults.
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Chdir failed: %v", err)
	}
	defer os.Chdir(oldWd)
	t.Setenv("HOME", tmpDir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	def := Default()
	if cfg.Grid != def.Grid {
		t.Errorf("embedded grid config = %+v, expected %+v", cfg.Grid, def.Grid)
	}
	if cfg.Simulation != def.Simulation {
		t.Errorf("embedded simulation config = %+v, expected %+v", cfg.Simulation, def.Simulation)
	}
	if cfg.Display.ShowHUD != def.Display.ShowHUD {
		t.Errorf("embedded show_hud = %v, expected %v", cfg.Display.ShowHUD, def.Display.ShowHUD)
	}
}

func TestLoadCustomPath(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "mine.yaml")
	content := []byte("grid:\n  width: 32\n  height: 16\n  ticks_per_update: 4\nsimulation:\n  fps: 30\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if cfg.Grid.Width != 32 || cfg.Grid.Height != 16 {
		t.Errorf("grid = %dx%d, expected 32x16", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Grid.TicksPerUpdate != 4 {
		t.Errorf("ticks_per_update = %d, expected 4", cfg.Grid.TicksPerUpdate)
	}
	if cfg.Simulation.FPS != 30 {
		t.Errorf("fps = %d, expected 30", cfg.Simulation.FPS)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load("/nonexistent/life.yaml")
	if err == nil {
		t.Error("Load with a missing explicit path should fail")
	}
}

func TestDisplayRunes(t *testing.T) {
	d := DisplayConfig{AliveChar: "O", DeadChar: "."}
	if d.AliveRune() != 'O' {
		t.Errorf("AliveRune() = %q, expected 'O'", d.AliveRune())
	}
	if d.DeadRune() != '.' {
		t.Errorf("DeadRune() = %q, expected '.'", d.DeadRune())
	}

	empty := DisplayConfig{}
	if empty.AliveRune() != '█' {
		t.Errorf("empty AliveRune() = %q, expected '█'", empty.AliveRune())
	}
	if empty.DeadRune() != ' ' {
		t.Errorf("empty DeadRune() = %q, expected space", empty.DeadRune())
	}
}
