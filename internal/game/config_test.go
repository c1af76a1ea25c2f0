package game

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want defaults", cfg)
	}
}

func TestLoadConfigOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "questfield.yaml")
	data := "seed: 42\nwalkDuration: 80ms\nplayerName: Ayla\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 42 {
		t.Errorf("Seed = %d, want 42", cfg.Seed)
	}
	if cfg.WalkDuration != 80*time.Millisecond {
		t.Errorf("WalkDuration = %v, want 80ms", cfg.WalkDuration)
	}
	if cfg.PlayerName != "Ayla" {
		t.Errorf("PlayerName = %q, want Ayla", cfg.PlayerName)
	}
	if cfg.Width != DefaultConfig().Width || cfg.AttackDuration != DefaultConfig().AttackDuration {
		t.Error("unset fields should keep their defaults")
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad yaml", "seed: [1"},
		{"tiny map", "width: 2\n"},
		{"negative duration", "attackDuration: -1s\n"},
		{"empty name", "playerName: \"\"\n"},
	}
	for _, tt := range tests {
		path := filepath.Join(t.TempDir(), "questfield.yaml")
		if err := os.WriteFile(path, []byte(tt.data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: LoadConfig() should fail", tt.name)
		}
	}
}
