// Package style holds the named colors and font families available to layout
// templates and the package serializer.
package style

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ColorName identifies a registry color.
type ColorName string

const (
	Primary      ColorName = "primary"
	Accent       ColorName = "accent"
	NeutralDark  ColorName = "neutral-dark"
	NeutralLight ColorName = "neutral-light"
	White        ColorName = "white"
	Error        ColorName = "error"
	Success      ColorName = "success"
)

// FontName identifies a registry font family.
type FontName string

const (
	Heading FontName = "heading"
	Body    FontName = "body"
)

// canonical order, used everywhere registry content is enumerated
var (
	colorOrder = []ColorName{Primary, Accent, NeutralDark, NeutralLight, White, Error, Success}
	fontOrder  = []FontName{Heading, Body}
)

// ColorNames returns all color names registry knows in canonical order.
func ColorNames() []ColorName {
	return slices.Clone(colorOrder)
}

// FontNames returns all font names registry knows in canonical order.
func FontNames() []FontName {
	return slices.Clone(fontOrder)
}

// RGB is a 24 bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns color as six upper case hex digits, the way DrawingML expects it.
func (c RGB) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// ParseHex parses "RRGGBB" with optional leading '#'.
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("malformed color %q: six hex digits expected", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("malformed color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Registry is an immutable set of named colors and fonts. It is created once
// and shared by pointer between templates and serializer.
type Registry struct {
	colors map[ColorName]RGB
	fonts  map[FontName]string
}

// Default returns registry with the stock palette.
func Default() *Registry {
	return &Registry{
		colors: map[ColorName]RGB{
			Primary:      {41, 98, 255},
			Accent:       {0, 150, 136},
			NeutralDark:  {33, 33, 33},
			NeutralLight: {242, 242, 242},
			White:        {255, 255, 255},
			Error:        {244, 67, 54},
			Success:      {76, 175, 80},
		},
		fonts: map[FontName]string{
			Heading: "Calibri",
			Body:    "Calibri",
		},
	}
}

// New creates registry with exactly the given colors and fonts.
func New(colors map[ColorName]RGB, fonts map[FontName]string) *Registry {
	r := &Registry{
		colors: make(map[ColorName]RGB, len(colors)),
		fonts:  make(map[FontName]string, len(fonts)),
	}
	for k, v := range colors {
		r.colors[k] = v
	}
	for k, v := range fonts {
		r.fonts[k] = v
	}
	return r
}

// With returns a new registry with some colors and fonts replaced. Only names
// registry already defines could be replaced, anything else is an error.
func (r *Registry) With(colors map[string]string, fonts map[FontName]string) (*Registry, error) {
	nr := New(r.colors, r.fonts)

	// sorted to report errors deterministically
	names := make([]string, 0, len(colors))
	for k := range colors {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, name := range names {
		if _, ok := nr.colors[ColorName(name)]; !ok {
			return nil, &ResolutionError{Kind: "color", Name: name, Where: "palette override"}
		}
		c, err := ParseHex(colors[name])
		if err != nil {
			return nil, fmt.Errorf("palette override for %q: %w", name, err)
		}
		nr.colors[ColorName(name)] = c
	}
	for name, family := range fonts {
		if _, ok := nr.fonts[name]; !ok {
			return nil, &ResolutionError{Kind: "font", Name: string(name), Where: "font override"}
		}
		if strings.TrimSpace(family) == "" {
			continue
		}
		nr.fonts[name] = family
	}
	return nr, nil
}

// Color resolves color name.
func (r *Registry) Color(name ColorName) (RGB, error) {
	c, ok := r.colors[name]
	if !ok {
		return RGB{}, &ResolutionError{Kind: "color", Name: string(name)}
	}
	return c, nil
}

// Font resolves font name to typeface.
func (r *Registry) Font(name FontName) (string, error) {
	f, ok := r.fonts[name]
	if !ok {
		return "", &ResolutionError{Kind: "font", Name: string(name)}
	}
	return f, nil
}
