package config

import (
	"os"
	"path/filepath"
	"testing"
)

func resolved(mutate func(*Config)) Config {
	cfg := Config{TilePath: "tile.png", FontPath: "font.ttf"}
	cfg.Resolve(Flags{})
	if mutate != nil {
		mutate(&cfg)
	}
	return cfg
}

func TestResolveDefaults(t *testing.T) {
	cfg := resolved(nil)
	if cfg.Width != 640 || cfg.Height != 480 {
		t.Errorf("default size = %dx%d; want 640x480", cfg.Width, cfg.Height)
	}
	if cfg.FontSize != 24 {
		t.Errorf("default font size = %d; want 24", cfg.FontSize)
	}
	if cfg.DepthValue != 60 {
		t.Errorf("default depth = %d; want 60", cfg.DepthValue)
	}
	if cfg.PatternDivisor != 2.0 {
		t.Errorf("default divisor = %v; want 2.0", cfg.PatternDivisor)
	}
	if cfg.Text != "Hello, world!" {
		t.Errorf("default text = %q", cfg.Text)
	}
}

func TestResolveFlagOverrides(t *testing.T) {
	cfg := Config{Width: 100, PatternDivisor: 3.0, TilePath: "from-file.png"}
	cfg.Resolve(Flags{Width: 800, TilePath: "from-flag.png", CrossEyed: true})
	if cfg.Width != 800 {
		t.Errorf("width = %d; flag should override config file", cfg.Width)
	}
	if cfg.TilePath != "from-flag.png" {
		t.Errorf("tile path = %q; flag should override config file", cfg.TilePath)
	}
	if cfg.PatternDivisor != 3.0 {
		t.Errorf("divisor = %v; unset flag should keep config value", cfg.PatternDivisor)
	}
	if !cfg.CrossEyed {
		t.Error("cross-eyed flag not applied")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"text mode ok", nil, false},
		{"map mode ok", func(c *Config) { c.FontPath = ""; c.DepthMapPath = "d.png" }, false},
		{"missing tile", func(c *Config) { c.TilePath = "" }, true},
		{"both modes", func(c *Config) { c.DepthMapPath = "d.png" }, true},
		{"neither mode", func(c *Config) { c.FontPath = "" }, true},
		{"zero width", func(c *Config) { c.Width = 0 }, true},
		{"negative height", func(c *Config) { c.Height = -1 }, true},
		{"zero font size", func(c *Config) { c.FontSize = 0 }, true},
		{"depth zero rejected", func(c *Config) { c.DepthValue = 0 }, true},
		{"depth above range", func(c *Config) { c.DepthValue = 256 }, true},
		{"depth at near plane", func(c *Config) { c.DepthValue = 255 }, false},
		{"divisor exactly one", func(c *Config) { c.PatternDivisor = 1.0 }, true},
		{"divisor barely above one", func(c *Config) { c.PatternDivisor = 1.0001 }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := resolved(tt.mutate)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 1024, "tile_path": "moss.png", "cross_eyed": true, "pattern_divisor": 2.5}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 1024 || cfg.TilePath != "moss.png" || !cfg.CrossEyed || cfg.PatternDivisor != 2.5 {
		t.Errorf("Load = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("Load accepted a missing file")
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	os.WriteFile(path, []byte("{not json"), 0644)
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed JSON")
	}
}
