package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}

	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := writeConfig(t, `version: 1
document:
  fix_zip: true
  output_name_template: "{{ .Title | lower }}"
  file_name_transliterate: true
  language: de-DE
  author: Someone
  palette:
    primary: "#112233"
    accent: "#ABCDEF"
  fonts:
    heading: Georgia
  thumbnail:
    generate: false
    width: 128
    jpeq_quality_level: 90
logging:
  console:
    level: normal
  file:
    level: debug
    destination: `+filepath.Join(tmpDir, "test.log")+`
    mode: append
reporting:
  destination: `+filepath.Join(tmpDir, "test-report.zip")+`
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if !doc.FixZip {
		t.Error("Expected FixZip to be true")
	}
	if doc.OutputNameTemplate != "{{ .Title | lower }}" {
		t.Errorf("OutputNameTemplate = %q, must not be expanded", doc.OutputNameTemplate)
	}
	if !doc.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}
	if doc.Language != "de-DE" {
		t.Errorf("Language = %q, want de-DE", doc.Language)
	}
	if doc.Author != "Someone" {
		t.Errorf("Author = %q, want Someone", doc.Author)
	}
	if len(doc.Palette) != 2 || doc.Palette["accent"] != "#ABCDEF" {
		t.Errorf("Palette = %v", doc.Palette)
	}
	if doc.Fonts.Heading != "Georgia" || doc.Fonts.Body != "" {
		t.Errorf("Fonts = %+v", doc.Fonts)
	}
	if doc.Thumbnail.Generate || doc.Thumbnail.Width != 128 || doc.Thumbnail.JPEGQuality != 90 {
		t.Errorf("Thumbnail = %+v", doc.Thumbnail)
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q, want append", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	_, err := LoadConfiguration("/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_InvalidYAML(t *testing.T) {
	configPath := writeConfig(t, `version: 1
document:
  fix_zip: true
  invalid indent
`)

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestLoadConfiguration_UnknownFields(t *testing.T) {
	configPath := writeConfig(t, `version: 1
unknown_field: value
document:
  fix_zip: true
`)

	_, err := LoadConfiguration(configPath)
	if err == nil {
		t.Error("Expected error for unknown fields")
	}
}

func TestLoadConfiguration_ValidationError(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"version", "version: 2\n"},
		{"language", "version: 1\ndocument:\n  language: \"not a tag!\"\n"},
		{"palette name", "version: 1\ndocument:\n  palette:\n    magenta: \"#FF00FF\"\n"},
		{"palette value", "version: 1\ndocument:\n  palette:\n    primary: \"red\"\n"},
		{"palette short value", "version: 1\ndocument:\n  palette:\n    primary: \"#F00\"\n"},
		{"thumbnail width", "version: 1\ndocument:\n  thumbnail:\n    width: 10\n"},
		{"thumbnail quality", "version: 1\ndocument:\n  thumbnail:\n    jpeq_quality_level: 101\n"},
		{"console level", "version: 1\nlogging:\n  console:\n    level: loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Expected validation error for %s", tt.name)
			}
		})
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {
		// Options are opaque, just test that we can pass them
	}

	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}

	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Prepare() returned empty data")
	}

	// Verify it's valid YAML by trying to unmarshal
	cfg := &Config{}
	_, err = unmarshalConfig(data, cfg, true)
	if err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg := &Config{
		Version: 1,
		Document: DocumentConfig{
			FixZip:             true,
			OutputNameTemplate: "{{ .Title }}",
			Language:           "en-US",
			Palette:            map[string]string{"primary": "#000000"},
			Thumbnail: ThumbnailConfig{
				Generate:    true,
				Width:       256,
				JPEGQuality: 80,
			},
		},
	}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}

	if len(data) == 0 {
		t.Error("Dump() returned empty data")
	}

	// Verify we can load it back
	cfg2 := &Config{}
	_, err = unmarshalConfig(data, cfg2, false)
	if err != nil {
		t.Errorf("Dumped config cannot be loaded: %v", err)
	}

	if cfg2.Version != cfg.Version {
		t.Errorf("Version mismatch after dump/load: got %d, want %d", cfg2.Version, cfg.Version)
	}
	if cfg2.Document.Palette["primary"] != "#000000" {
		t.Errorf("Palette mismatch after dump/load: %v", cfg2.Document.Palette)
	}
}

func TestUnmarshalConfig(t *testing.T) {
	t.Run("valid config without processing", func(t *testing.T) {
		data := []byte(`version: 1`)
		cfg := &Config{}

		result, err := unmarshalConfig(data, cfg, false)
		if err != nil {
			t.Errorf("unmarshalConfig() error = %v", err)
		}

		if result == nil {
			t.Fatal("unmarshalConfig() returned nil")
		}

		if result.Version != 1 {
			t.Errorf("Version = %d, want 1", result.Version)
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		data := []byte(`invalid: [yaml`)
		cfg := &Config{}

		_, err := unmarshalConfig(data, cfg, false)
		if err == nil {
			t.Error("Expected error for invalid YAML")
		}
	})
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.OutputNameTemplate != "{{ .Title }}_Presentation" {
		t.Errorf("OutputNameTemplate = %q", doc.OutputNameTemplate)
	}
	if doc.Language != "en-US" {
		t.Errorf("Language = %q, want en-US", doc.Language)
	}
	if doc.FixZip {
		t.Error("FixZip should be off by default")
	}
	if len(doc.Palette) != 0 {
		t.Errorf("Palette should be empty by default, got %v", doc.Palette)
	}
	if !doc.Thumbnail.Generate || doc.Thumbnail.Width != 256 || doc.Thumbnail.JPEGQuality != 80 {
		t.Errorf("Thumbnail = %+v", doc.Thumbnail)
	}
	if cfg.Logging.ConsoleLogger.Level != "normal" {
		t.Errorf("ConsoleLogger.Level = %q, want normal", cfg.Logging.ConsoleLogger.Level)
	}
	if filepath.Base(cfg.Reporting.Destination) != "pptgen-report.zip" {
		t.Errorf("Reporting.Destination = %q", cfg.Reporting.Destination)
	}
}

func TestLoadConfiguration_MergeWithDefaults(t *testing.T) {
	// Partial config that only overrides some values
	configPath := writeConfig(t, `version: 1
document:
  fix_zip: true
  palette:
    error: "#FF0000"
`)

	cfg, err := LoadConfiguration(configPath)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	// Check that explicitly set value is used
	if !cfg.Document.FixZip {
		t.Error("Expected FixZip to be true from config file")
	}
	if cfg.Document.Palette["error"] != "#FF0000" {
		t.Errorf("Palette = %v", cfg.Document.Palette)
	}

	// Check that default values are still present for unspecified fields
	if cfg.Document.Language != "en-US" {
		t.Errorf("Language = %q, default expected", cfg.Document.Language)
	}
	if cfg.Document.Thumbnail.Width != 256 {
		t.Errorf("Thumbnail.Width = %d, default expected", cfg.Document.Thumbnail.Width)
	}
}

func TestUnmarshalConfig_WrapsValidationError(t *testing.T) {
	// version: 99 fails validation (validate:"eq=1")
	data := []byte("version: 99\n")
	cfg := &Config{}

	_, err := unmarshalConfig(data, cfg, true)
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	if !strings.Contains(err.Error(), "validat") {
		t.Errorf("expected error to mention validation, got: %v", err)
	}
	if errors.Unwrap(err) == nil {
		t.Errorf("expected wrapped error (errors.Unwrap non-nil), got bare error: %v", err)
	}
}
