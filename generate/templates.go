package generate

import (
	"bytes"
	"fmt"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"pptgen/config"
	"pptgen/deck"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	Title   string
	Author  string
	Subject string
	Slides  int
}

func buildValues(d *deck.Deck, name config.TemplateFieldName, cfg *config.DocumentConfig) Values {
	meta := effectiveMetadata(d, cfg)
	return Values{
		Context: string(name),
		Title:   meta.Title,
		Author:  meta.Author,
		Subject: meta.Subject,
		Slides:  d.Len(),
	}
}

func expandTemplate(d *deck.Deck, name config.TemplateFieldName, field string, cfg *config.DocumentConfig) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, buildValues(d, name, cfg)); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}

// effectiveMetadata is deck metadata with configured author applied.
func effectiveMetadata(d *deck.Deck, cfg *config.DocumentConfig) deck.Metadata {
	meta := d.Metadata()
	if cfg.Author != "" {
		meta.Author = cfg.Author
	}
	return meta
}
