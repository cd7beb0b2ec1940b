package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoad_FileExists(t *testing.T) {
	dir := t.TempDir()
	content := `base_url: http://photos.example.com
pasta_version: 1.1
renderer: pasta
renderer_args: ["--canvas", "main"]
`
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaseURL != "http://photos.example.com" {
		t.Errorf("got base URL %q, want %q", cfg.BaseURL, "http://photos.example.com")
	}
	if cfg.PastaVersion != 1.1 {
		t.Errorf("got pasta version %v, want 1.1", cfg.PastaVersion)
	}
	if cfg.Renderer != "pasta" {
		t.Errorf("got renderer %q, want %q", cfg.Renderer, "pasta")
	}
	if len(cfg.RendererArgs) != 2 || cfg.RendererArgs[0] != "--canvas" {
		t.Errorf("got renderer args %v", cfg.RendererArgs)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(cfg, Config{BaseURL: "", PastaVersion: 0, Renderer: "", RendererArgs: nil}) {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestLoad_PartialFile(t *testing.T) {
	dir := t.TempDir()
	content := "base_url: http://photos.example.com\n"
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.BaseURL != "http://photos.example.com" {
		t.Errorf("got base URL %q", cfg.BaseURL)
	}
	if cfg.Renderer != "" {
		t.Errorf("expected no renderer, got %q", cfg.Renderer)
	}
	if cfg.PastaVersion != 0 {
		t.Errorf("expected zero pasta version, got %v", cfg.PastaVersion)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, filename), []byte(":\n\t: bad"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}
