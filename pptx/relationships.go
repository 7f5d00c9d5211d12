package pptx

import (
	"fmt"

	"github.com/beevik/etree"
)

type relationship struct {
	ID     string
	Type   string
	Target string
}

// relationships is relationship part of a single source part. Ids are
// assigned sequentially in order of addition.
type relationships struct {
	source string
	items  []relationship
}

func newRelationships(source string) *relationships {
	return &relationships{source: source}
}

// add links source to part and returns relationship id.
func (r *relationships) add(typ, part string) string {
	id := fmt.Sprintf("rId%d", len(r.items)+1)
	r.items = append(r.items, relationship{ID: id, Type: typ, Target: relTarget(r.source, part)})
	return id
}

// part returns relationship part name, source "" is the package root.
func (r *relationships) part() string {
	if r.source == "" {
		return partRootRels
	}
	return relsPart(r.source)
}

func (r *relationships) document() (*etree.Document, error) {
	doc := newXMLDocument()
	root := doc.CreateElement("Relationships")
	root.CreateAttr("xmlns", nsPackageRels)

	seen := make(map[string]bool, len(r.items))
	for _, rel := range r.items {
		if seen[rel.ID] {
			return nil, &SerializationError{Part: r.part(), Reason: fmt.Sprintf("duplicate relationship id %s", rel.ID)}
		}
		seen[rel.ID] = true

		e := root.CreateElement("Relationship")
		e.CreateAttr("Id", rel.ID)
		e.CreateAttr("Type", rel.Type)
		e.CreateAttr("Target", rel.Target)
	}
	return doc, nil
}
