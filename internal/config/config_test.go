package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exists {
		t.Fatal("expected missing config file")
	}
	if cfg.OCR.Parallelism != 1 {
		t.Fatalf("unexpected default parallelism: %d", cfg.OCR.Parallelism)
	}
	if !cfg.AllowedFile("photo.JPG") {
		t.Fatal("expected jpg admission by default")
	}
	if cfg.AllowedFile("notes.txt") {
		t.Fatal("expected txt rejection")
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[ingest]
extensions = [".PNG", "jpg"]

[ocr]
languages = ["eng"]
parallelism = 4
low_confidence_warn = 50

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatal("expected config file to be found")
	}
	if cfg.OCR.Parallelism != 4 {
		t.Fatalf("unexpected parallelism: %d", cfg.OCR.Parallelism)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("logging not normalized: %+v", cfg.Logging)
	}
	if !cfg.AllowedFile("scan.png") || !cfg.AllowedFile("scan.jpg") {
		t.Fatal("extensions not normalized")
	}
	if cfg.AllowedFile("scan.webp") {
		t.Fatal("explicit extension list must replace defaults")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []func(*Config){
		func(c *Config) { c.OCR.Parallelism = 0 },
		func(c *Config) { c.OCR.LowConfidenceWarn = 150 },
		func(c *Config) { c.OCR.Languages = nil },
		func(c *Config) { c.Ingest.Extensions = nil },
		func(c *Config) { c.Logging.Format = "yaml" },
		func(c *Config) { c.Logging.Level = "verbose" },
		func(c *Config) { c.Export.ZipEnabled = true; c.Export.ZipName = "out.tar" },
	}
	for i, mutate := range cases {
		cfg := Default()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestWriteSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if _, err := WriteSample(path); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if _, err := WriteSample(path); err == nil {
		t.Fatal("expected overwrite refusal")
	}
}
