// Package config provides project configuration for Groove.
//
// Groove looks for a .groove.yaml file in the working directory.
// If found, its settings override built-in defaults.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const filename = ".groove.yaml"

// Config holds Groove configuration.
type Config struct {
	// BaseURL overrides the photo server base URL.
	BaseURL string `yaml:"base_url"`

	// PastaVersion selects the renderer version announced on startup.
	PastaVersion float64 `yaml:"pasta_version"`

	// Renderer is the external renderer executable. When empty, no
	// subprocess is spawned and frames stay on the in-process bridge.
	Renderer string `yaml:"renderer"`

	// RendererArgs are extra arguments passed to the renderer.
	RendererArgs []string `yaml:"renderer_args"`
}

// Load reads .groove.yaml from dir. Returns a zero-value Config
// (not an error) if the file doesn't exist.
func Load(dir string) (Config, error) {
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
