// Package pattern implements sub-diagrams of a category and their
// colimits: the binding object and cocone that glue a pattern into a
// single aggregate.
package pattern

import (
	"fmt"
	"sort"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/common"
)

// Pattern is a named sub-diagram: a subset of a category's objects and
// a subset of its links. It holds a read-only reference to the parent
// category and never copies or mutates it.
type Pattern struct {
	Name string

	parent  *category.Category
	objects map[string]category.Object
	links   []category.Pair
}

// New creates a pattern over the given category. Object IDs must name
// members of the category and links must address occupied buckets of
// its composition table; otherwise construction fails with
// ErrInvalidObjectReference or ErrInvalidLinkReference.
func New(name string, parent *category.Category, objectIDs []string, links []category.Pair) (*Pattern, error) {
	p := &Pattern{
		Name:    name,
		parent:  parent,
		objects: make(map[string]category.Object, len(objectIDs)),
	}

	for _, id := range objectIDs {
		obj, ok := parent.Object(id)
		if !ok {
			return nil, fmt.Errorf("%w: pattern %q references unknown object %q",
				common.ErrInvalidObjectReference, name, id)
		}
		p.objects[id] = obj
	}

	for _, link := range links {
		if _, ok := p.objects[link.Source]; !ok {
			return nil, fmt.Errorf("%w: pattern %q link source %q is outside the pattern",
				common.ErrInvalidObjectReference, name, link.Source)
		}
		if _, ok := p.objects[link.Target]; !ok {
			return nil, fmt.Errorf("%w: pattern %q link target %q is outside the pattern",
				common.ErrInvalidObjectReference, name, link.Target)
		}
		if !parent.HasLink(link) {
			return nil, fmt.Errorf("%w: pattern %q link %s->%s has no morphisms in the category",
				common.ErrInvalidLinkReference, name, link.Source, link.Target)
		}
		p.links = append(p.links, link)
	}

	return p, nil
}

// Category returns the parent category reference.
func (p *Pattern) Category() *category.Category {
	return p.parent
}

// Objects returns the pattern's objects sorted by ID.
func (p *Pattern) Objects() []category.Object {
	out := make([]category.Object, 0, len(p.objects))
	for _, o := range p.objects {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// ObjectIDs returns the sorted object IDs.
func (p *Pattern) ObjectIDs() []string {
	out := make([]string, 0, len(p.objects))
	for id := range p.objects {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Links returns a copy of the pattern's links.
func (p *Pattern) Links() []category.Pair {
	return append([]category.Pair(nil), p.links...)
}

// Contains reports whether the object ID belongs to the pattern.
func (p *Pattern) Contains(id string) bool {
	_, ok := p.objects[id]
	return ok
}
