package generate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"pptgen/config"
	"pptgen/deck"
	"pptgen/layout"
	"pptgen/pptx"
	"pptgen/shape"
	"pptgen/style"
	"pptgen/thumbnail"
)

// Styles returns stock registry with configured palette and fonts applied.
func Styles(cfg *config.DocumentConfig) (*style.Registry, error) {
	fonts := make(map[style.FontName]string, 2)
	if cfg.Fonts.Heading != "" {
		fonts[style.Heading] = cfg.Fonts.Heading
	}
	if cfg.Fonts.Body != "" {
		fonts[style.Body] = cfg.Fonts.Body
	}
	reg, err := style.Default().With(cfg.Palette, fonts)
	if err != nil {
		return nil, fmt.Errorf("unable to prepare styles: %w", err)
	}
	return reg, nil
}

// Build renders deck and assembles presentation package in memory.
func Build(ctx context.Context, d *deck.Deck, cfg *config.DocumentConfig, log *zap.Logger) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reg, err := Styles(cfg)
	if err != nil {
		return nil, err
	}
	logStyles(reg, log)

	slides, err := layout.Render(d, reg, log)
	if err != nil {
		return nil, fmt.Errorf("unable to render slides: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	width, height := d.Canvas()
	canvas := layout.Canvas{Width: shape.EMU(width), Height: shape.EMU(height)}

	var thumb []byte
	if cfg.Thumbnail.Generate && len(slides) > 0 {
		thumb, err = thumbnail.Render(slides[0].Shapes, canvas, reg, thumbnail.Options{
			Width:   cfg.Thumbnail.Width,
			Quality: cfg.Thumbnail.JPEGQuality,
		})
		if err != nil {
			// thumbnail is decoration, package is complete without it
			log.Warn("Unable to prepare thumbnail, skipping", zap.Error(err))
			thumb = nil
		} else {
			log.Debug("Thumbnail prepared", zap.Int("size", len(thumb)))
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := pptx.Serialize(slides, pptx.Options{
		Width:     canvas.Width,
		Height:    canvas.Height,
		Styles:    reg,
		Metadata:  effectiveMetadata(d, cfg),
		Language:  cfg.Language,
		Thumbnail: thumb,
		FixZip:    cfg.FixZip,
	})
	if err != nil {
		return nil, fmt.Errorf("unable to assemble package: %w", err)
	}
	log.Debug("Package assembled", zap.Int("slides", len(slides)), zap.Int("size", len(data)))
	return data, nil
}

// logStyles reports effective palette and fonts in registry order.
func logStyles(reg *style.Registry, log *zap.Logger) {
	if !log.Core().Enabled(zap.DebugLevel) {
		return
	}
	fields := make([]zap.Field, 0, len(style.ColorNames())+len(style.FontNames()))
	for _, name := range style.ColorNames() {
		if c, err := reg.Color(name); err == nil {
			fields = append(fields, zap.String(string(name), "#"+c.Hex()))
		}
	}
	for _, name := range style.FontNames() {
		if f, err := reg.Font(name); err == nil {
			fields = append(fields, zap.String("font-"+string(name), f))
		}
	}
	log.Debug("Effective styles", fields...)
}
