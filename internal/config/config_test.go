package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFileAndBuildPipeline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	raw := `{
  "server": {"address": "127.0.0.1", "port": 8080},
  "log": {"level": "debug", "format": "console"},
  "stages": [
    {"name": "caesar", "kind": "caesar", "params": {"shift": 5}},
    {"name": "rail", "kind": "railfence", "params": {"rails": 2}},
    {"name": "vig", "kind": "vigenere", "params": {"key": "encoding"}}
  ]
}`
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.ListenAddr() != "127.0.0.1:8080" {
		t.Errorf("ListenAddr = %q, want 127.0.0.1:8080", cfg.ListenAddr())
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("log level = %q, want debug", cfg.Log.Level)
	}

	pipe, err := cfg.BuildPipeline()
	if err != nil {
		t.Fatalf("BuildPipeline failed: %v", err)
	}
	names := pipe.StageNames()
	if len(names) != 3 || names[0] != "caesar" || names[2] != "vig" {
		t.Errorf("StageNames = %v", names)
	}

	text := "config driven pipeline"
	encoded, err := pipe.Encode(text)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	decoded, err := pipe.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded != text {
		t.Errorf("round-trip = %q, want %q", decoded, text)
	}
}

func TestLoadFileDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Server.Port != 5345 {
		t.Errorf("default port = %d, want 5345", cfg.Server.Port)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Log.Level)
	}

	// no stages yields an empty pass-through pipeline
	pipe, err := cfg.BuildPipeline()
	if err != nil {
		t.Fatalf("BuildPipeline failed: %v", err)
	}
	out, err := pipe.Encode("unchanged")
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if out != "unchanged" {
		t.Errorf("empty pipeline Encode = %q", out)
	}
}

func TestBuildPipelineErrors(t *testing.T) {
	testCases := []struct {
		name   string
		stages []StageConfig
	}{
		{"unknown kind", []StageConfig{{Name: "x", Kind: "rot13"}}},
		{"missing name", []StageConfig{{Kind: "caesar"}}},
		{"invalid params", []StageConfig{{Name: "a", Kind: "affine", Params: map[string]any{"key_a": 2, "alpha_only": true}}}},
		{"duplicate names", []StageConfig{
			{Name: "x", Kind: "caesar"},
			{Name: "x", Kind: "atbash"},
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{Stages: tc.stages}
			if _, err := cfg.BuildPipeline(); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
