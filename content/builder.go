// Package content holds the literal decks program knows how to produce.
package content

import (
	"fmt"

	"pptgen/deck"
)

// builder appends slides to the deck remembering first failure, so deck
// definitions read as plain sequence of calls.
type builder struct {
	d   *deck.Deck
	err error
}

func newBuilder(d *deck.Deck) *builder {
	return &builder{d: d, err: d.Err()}
}

func (b *builder) add(heading string, fn func() (deck.SlideRef, error)) {
	if b.err != nil {
		return
	}
	if _, err := fn(); err != nil {
		b.err = fmt.Errorf("unable to add slide %q: %w", heading, err)
	}
}

func (b *builder) title(title, subtitle string, members []string, footer, notes string) {
	b.add(title, func() (deck.SlideRef, error) {
		return b.d.AddTitle(title, subtitle, members, footer, notes)
	})
}

func (b *builder) content(title string, body []string, notes string) {
	b.add(title, func() (deck.SlideRef, error) {
		return b.d.AddContent(title, body, notes)
	})
}

func (b *builder) twoColumn(title string, left, right []string, notes string) {
	b.add(title, func() (deck.SlideRef, error) {
		return b.d.AddTwoColumn(title, left, right, notes)
	})
}

func (b *builder) finish() (*deck.Deck, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.d, nil
}
