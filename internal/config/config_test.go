package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"docshard/internal/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Chdir(t.TempDir())

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	if cfg.Output.DocsPerFile != 1000 {
		t.Fatalf("docs_per_file = %d, want 1000", cfg.Output.DocsPerFile)
	}
	if cfg.Output.FilesPerDir != 100 {
		t.Fatalf("files_per_dir = %d, want 100", cfg.Output.FilesPerDir)
	}
	if cfg.Output.FilePrefix != "wiki_" {
		t.Fatalf("file_prefix = %q, want wiki_", cfg.Output.FilePrefix)
	}
	if !cfg.Output.Manifest {
		t.Fatal("expected manifest enabled by default")
	}
	if cfg.Filter.MinDocLength != 200 {
		t.Fatalf("min_doc_length = %d, want 200", cfg.Filter.MinDocLength)
	}
	if cfg.Filter.MinHiraganaRatio != 0.10 {
		t.Fatalf("min_hiragana_ratio = %v, want 0.10", cfg.Filter.MinHiraganaRatio)
	}
	if cfg.Filter.MaxLineRepetition != 0.30 {
		t.Fatalf("max_line_repetition = %v, want 0.30", cfg.Filter.MaxLineRepetition)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadExplicitFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[output]
docs_per_file = 50
file_prefix = "shard_"

[filter]
min_doc_length = 10

[logging]
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved == "" {
		t.Fatal("expected explicit config file to be found")
	}
	if cfg.Output.DocsPerFile != 50 {
		t.Fatalf("docs_per_file = %d, want 50", cfg.Output.DocsPerFile)
	}
	if cfg.Output.FilePrefix != "shard_" {
		t.Fatalf("file_prefix = %q", cfg.Output.FilePrefix)
	}
	// Untouched sections keep their defaults.
	if cfg.Output.FilesPerDir != 100 {
		t.Fatalf("files_per_dir = %d, want 100", cfg.Output.FilesPerDir)
	}
	if cfg.Filter.MinDocLength != 10 {
		t.Fatalf("min_doc_length = %d, want 10", cfg.Filter.MinDocLength)
	}
	// Level is normalized to lower case.
	if cfg.Logging.Level != "debug" {
		t.Fatalf("level = %q, want debug", cfg.Logging.Level)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"zero docs per file", func(c *config.Config) { c.Output.DocsPerFile = 0 }},
		{"files per dir over 100", func(c *config.Config) { c.Output.FilesPerDir = 101 }},
		{"prefix with separator", func(c *config.Config) { c.Output.FilePrefix = "a/b" }},
		{"negative min length", func(c *config.Config) { c.Filter.MinDocLength = -1 }},
		{"hiragana ratio above 1", func(c *config.Config) { c.Filter.MinHiraganaRatio = 1.5 }},
		{"repetition ratio zero", func(c *config.Config) { c.Filter.MaxLineRepetition = 0 }},
		{"bad log format", func(c *config.Config) { c.Logging.Format = "xml" }},
		{"bad log level", func(c *config.Config) { c.Logging.Level = "loud" }},
	}
	for _, tc := range cases {
		cfg := config.Default()
		tc.mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}

func TestCreateSampleParsesAndValidates(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load sample: %v", err)
	}
	if !exists {
		t.Fatal("sample file not found after CreateSample")
	}
	if *cfg != config.Default() {
		t.Fatalf("sample config %+v differs from defaults %+v", *cfg, config.Default())
	}
}

func TestExpandPathTilde(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	got, err := config.ExpandPath("~/logs")
	if err != nil {
		t.Fatalf("ExpandPath: %v", err)
	}
	if got != filepath.Join(tempHome, "logs") {
		t.Fatalf("ExpandPath = %q", got)
	}
}
