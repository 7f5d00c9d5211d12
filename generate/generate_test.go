package generate

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"pptgen/config"
	"pptgen/content"
	"pptgen/deck"
	"pptgen/pptx"
	"pptgen/state"
)

func setupTestLogger(t *testing.T) *zap.Logger {
	t.Helper()
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller()))
}

func setupTestEnv(t *testing.T) *state.LocalEnv {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	env := state.EnvFromContext(state.ContextWithEnv(context.Background()))
	env.Cfg = cfg
	env.Log = setupTestLogger(t)
	return env
}

func smallDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d := deck.New(deck.WithMetadata(deck.Metadata{Title: "Small Deck", Author: "Tester"}))
	if _, err := d.AddTitle("Small Deck", "Subtitle", nil, "", ""); err != nil {
		t.Fatalf("AddTitle() error = %v", err)
	}
	if _, err := d.AddContent("Body", []string{"Top", "  Nested", "", "    Deep"}, "say it"); err != nil {
		t.Fatalf("AddContent() error = %v", err)
	}
	return d
}

func TestProcess_ChainCare(t *testing.T) {
	env := setupTestEnv(t)
	dir := t.TempDir()

	d, err := content.ChainCare()
	if err != nil {
		t.Fatalf("ChainCare() error = %v", err)
	}

	out, err := process(context.Background(), d, dir, env, env.Log)
	if err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if want := filepath.Join(dir, "ChainCare_Presentation.pptx"); out != want {
		t.Errorf("output = %q, want %q", out, want)
	}

	sum, err := inspectFile(out)
	if err != nil {
		t.Fatalf("inspectFile() error = %v", err)
	}
	if len(sum.Slides) != 30 {
		t.Errorf("slides = %d, want 30", len(sum.Slides))
	}
	if sum.Title != "ChainCare" {
		t.Errorf("title = %q", sum.Title)
	}

	// nothing but the result is left in the destination
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("destination has %d entries, want 1", len(entries))
	}
}

func TestProcess_Overwrite(t *testing.T) {
	env := setupTestEnv(t)
	out := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(out, []byte("old"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	env.Overwrite = false
	_, err := process(context.Background(), smallDeck(t), out, env, env.Log)
	var ioErr *IOError
	if !errors.As(err, &ioErr) || !errors.Is(err, os.ErrExist) {
		t.Fatalf("process() error = %v, want IOError wrapping ErrExist", err)
	}
	if data, _ := os.ReadFile(out); string(data) != "old" {
		t.Error("existing file must be left untouched")
	}

	env.Overwrite = true
	if _, err := process(context.Background(), smallDeck(t), out, env, env.Log); err != nil {
		t.Fatalf("process() error = %v", err)
	}
	if sum, err := inspectFile(out); err != nil || len(sum.Slides) != 2 {
		t.Errorf("inspectFile() = %v, %v", sum, err)
	}
}

func TestProcess_Cancelled(t *testing.T) {
	env := setupTestEnv(t)
	dir := t.TempDir()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := process(ctx, smallDeck(t), dir, env, env.Log); !errors.Is(err, context.Canceled) {
		t.Fatalf("process() error = %v, want context.Canceled", err)
	}
	if entries, _ := os.ReadDir(dir); len(entries) != 0 {
		t.Errorf("destination has %d entries, want none", len(entries))
	}
}

func TestBuild(t *testing.T) {
	log := setupTestLogger(t)

	tests := []struct {
		name      string
		configure func(*config.DocumentConfig)
		thumbnail bool
	}{
		{"defaults", func(*config.DocumentConfig) {}, true},
		{"no thumbnail", func(c *config.DocumentConfig) { c.Thumbnail.Generate = false }, false},
		{"fix zip", func(c *config.DocumentConfig) { c.FixZip = true }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestEnv(t)
			cfg := env.Cfg.Document
			tt.configure(&cfg)

			data, err := Build(context.Background(), smallDeck(t), &cfg, log)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			sum, err := pptx.Inspect(bytes.NewReader(data), int64(len(data)))
			if err != nil {
				t.Fatalf("Inspect() error = %v", err)
			}
			var hasThumb bool
			for _, p := range sum.Parts {
				if strings.HasPrefix(p, "docProps/thumbnail.") {
					hasThumb = true
				}
			}
			if hasThumb != tt.thumbnail {
				t.Errorf("thumbnail present = %v, want %v", hasThumb, tt.thumbnail)
			}
		})
	}
}

func TestBuild_Author(t *testing.T) {
	env := setupTestEnv(t)
	cfg := env.Cfg.Document
	cfg.Author = "Configured"

	data, err := Build(context.Background(), smallDeck(t), &cfg, env.Log)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	sum, err := pptx.Inspect(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}
	if sum.Creator != "Configured" {
		t.Errorf("creator = %q, want Configured", sum.Creator)
	}
}

func TestStyles(t *testing.T) {
	cfg := &config.DocumentConfig{
		Palette: map[string]string{"primary": "#000080"},
		Fonts:   config.FontsConfig{Heading: "Georgia"},
	}
	reg, err := Styles(cfg)
	if err != nil {
		t.Fatalf("Styles() error = %v", err)
	}
	if c, _ := reg.Color("primary"); c.Hex() != "000080" {
		t.Errorf("primary = %s, want 000080", c.Hex())
	}
	if f, _ := reg.Font("heading"); f != "Georgia" {
		t.Errorf("heading = %s, want Georgia", f)
	}
	if f, _ := reg.Font("body"); f != "Calibri" {
		t.Errorf("body = %s, want Calibri", f)
	}

	cfg.Palette = map[string]string{"magenta": "#FF00FF"}
	if _, err := Styles(cfg); err == nil {
		t.Error("expected error for unknown palette color")
	}
}

func TestDescribe(t *testing.T) {
	env := setupTestEnv(t)
	data, err := Build(context.Background(), smallDeck(t), &env.Cfg.Document, env.Log)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	sum, err := pptx.Inspect(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("Inspect() error = %v", err)
	}

	out := describe("small.pptx", sum)
	for _, want := range []string{
		"Package small.pptx: 2 slides",
		"  Title: \"Small Deck\"",
		"  Slide 2: ppt/slides/slide2.xml",
		"      (1) \"Nested\"",
		"    Notes: ppt/notesSlides/notesSlide2.xml",
		"      Text: \"say it\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("describe() does not contain %q:\n%s", want, out)
		}
	}
}

func TestInspectFile_Errors(t *testing.T) {
	var ioErr *IOError
	if _, err := inspectFile(filepath.Join(t.TempDir(), "missing.pptx")); !errors.As(err, &ioErr) {
		t.Errorf("inspectFile() error = %v, want IOError", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.pptx")
	if err := os.WriteFile(bad, []byte("not a zip"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	var serErr *pptx.SerializationError
	if _, err := inspectFile(bad); !errors.As(err, &serErr) {
		t.Errorf("inspectFile() error = %v, want SerializationError", err)
	}
}
