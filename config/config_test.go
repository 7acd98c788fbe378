package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `{"input_path": "in.css", "output_path": "out.sld"}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.InputPath != "in.css" || cfg.OutputPath != "out.sld" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.ResolvedMaxCombinations() != 10000 {
		t.Fatalf("expected default max combinations, got %d", cfg.ResolvedMaxCombinations())
	}
}

func TestLoadEnvironmentOverride(t *testing.T) {
	path := writeConfig(t, `{"input_path": "in.css", "output_path": "out.sld", "max_combinations": 5}`)

	t.Setenv(MaxCombinationsEnv, "42")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.ResolvedMaxCombinations() != 42 {
		t.Fatalf("expected environment override to win, got %d", cfg.ResolvedMaxCombinations())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}
