package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	content := `
service_url: https://example.com/FeatureServer
stations_layer: "3"
lines_layer: "4"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ServiceURL != "https://example.com/FeatureServer" {
		t.Errorf("ServiceURL should come from the file, got %q", cfg.ServiceURL)
	}
	if cfg.StationsLayer != "3" || cfg.LinesLayer != "4" {
		t.Errorf("Layers should come from the file, got %q/%q", cfg.StationsLayer, cfg.LinesLayer)
	}
	// unset fields keep defaults
	if cfg.Code1Field != "code1" || cfg.Code2Field != "code2" || cfg.CodeField != "code" {
		t.Errorf("Unset code fields should keep defaults, got %q/%q/%q", cfg.CodeField, cfg.Code1Field, cfg.Code2Field)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Missing file should surface as an error")
	}
}
