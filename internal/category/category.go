package category

import (
	"fmt"
	"sort"
	"time"

	"github.com/evomoney/evomoney/internal/common"
)

// Category holds an object set and a composition table of morphisms
// keyed by (source, target) object pairs. Every object carries exactly
// one zero-amount identity morphism. Categories are immutable: all
// mutating operations return a new value.
type Category struct {
	objects    map[string]Object
	morphisms  map[Pair][]Morphism
	identities map[string]Morphism
}

// New constructs a category from an object list and a morphism list.
// It fails with ErrInvalidObjectReference if any morphism endpoint is
// not a member of the object set. Identity morphisms are installed for
// every object.
func New(objects []Object, morphisms []Morphism) (*Category, error) {
	c := &Category{
		objects:    make(map[string]Object, len(objects)),
		morphisms:  make(map[Pair][]Morphism),
		identities: make(map[string]Morphism, len(objects)),
	}

	for _, o := range objects {
		c.objects[o.ID] = o
		c.identities[o.ID] = newIdentity(o)
	}

	for _, m := range morphisms {
		if err := c.checkEndpoints(m); err != nil {
			return nil, err
		}
		c.appendMorphism(m)
	}

	return c, nil
}

func (c *Category) checkEndpoints(m Morphism) error {
	if existing, ok := c.objects[m.Source.ID]; !ok || existing != m.Source {
		return fmt.Errorf("%w: morphism %q source %q is not in the category",
			common.ErrInvalidObjectReference, m.Label, m.Source.ID)
	}
	if existing, ok := c.objects[m.Target.ID]; !ok || existing != m.Target {
		return fmt.Errorf("%w: morphism %q target %q is not in the category",
			common.ErrInvalidObjectReference, m.Label, m.Target.ID)
	}
	return nil
}

// appendMorphism adds m to its bucket unless a value-equal morphism is
// already present.
func (c *Category) appendMorphism(m Morphism) {
	pair := m.Pair()
	for _, existing := range c.morphisms[pair] {
		if existing.Equal(m) {
			return
		}
	}
	c.morphisms[pair] = append(c.morphisms[pair], m)
}

// clone makes a structural copy safe to extend without aliasing.
func (c *Category) clone() *Category {
	out := &Category{
		objects:    make(map[string]Object, len(c.objects)),
		morphisms:  make(map[Pair][]Morphism, len(c.morphisms)),
		identities: make(map[string]Morphism, len(c.identities)),
	}
	for id, o := range c.objects {
		out.objects[id] = o
	}
	for pair, bucket := range c.morphisms {
		out.morphisms[pair] = append([]Morphism(nil), bucket...)
	}
	for id, m := range c.identities {
		out.identities[id] = m
	}
	return out
}

// AddMorphism returns a new category with the morphism appended to its
// (source, target) bucket. Adding a value-equal morphism twice is a
// no-op. The receiver is never mutated.
func (c *Category) AddMorphism(source, target Object, label string, amount float64, date time.Time) (*Category, error) {
	m := NewMorphism(source, target, label, amount, date)
	if err := c.checkEndpoints(m); err != nil {
		return nil, err
	}

	out := c.clone()
	out.appendMorphism(m)
	return out, nil
}

// AddObject returns a new category containing the object and its
// identity morphism. Adding an existing object is a no-op.
func (c *Category) AddObject(o Object) *Category {
	if existing, ok := c.objects[o.ID]; ok && existing == o {
		return c
	}
	out := c.clone()
	out.objects[o.ID] = o
	out.identities[o.ID] = newIdentity(o)
	return out
}

// Identity returns the unique identity morphism for the object ID.
func (c *Category) Identity(objectID string) (Morphism, bool) {
	m, ok := c.identities[objectID]
	return m, ok
}

// Object looks up an object by ID.
func (c *Category) Object(id string) (Object, bool) {
	o, ok := c.objects[id]
	return o, ok
}

// Contains reports whether the exact object value is a member.
func (c *Category) Contains(o Object) bool {
	existing, ok := c.objects[o.ID]
	return ok && existing == o
}

// Objects returns the object set sorted by ID.
func (c *Category) Objects() []Object {
	out := make([]Object, 0, len(c.objects))
	for _, o := range c.objects {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Pairs returns the occupied composition-table buckets in sorted order.
func (c *Category) Pairs() []Pair {
	out := make([]Pair, 0, len(c.morphisms))
	for pair := range c.morphisms {
		out = append(out, pair)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Source != out[j].Source {
			return out[i].Source < out[j].Source
		}
		return out[i].Target < out[j].Target
	})
	return out
}

// Morphisms returns a copy of the bucket for the given pair.
func (c *Category) Morphisms(pair Pair) []Morphism {
	return append([]Morphism(nil), c.morphisms[pair]...)
}

// AllMorphisms returns every non-identity morphism in bucket order.
func (c *Category) AllMorphisms() []Morphism {
	var out []Morphism
	for _, pair := range c.Pairs() {
		out = append(out, c.morphisms[pair]...)
	}
	return out
}

// HasMorphism reports whether a value-equal morphism exists in the
// table or among the identities.
func (c *Category) HasMorphism(m Morphism) bool {
	for _, existing := range c.morphisms[m.Pair()] {
		if existing.Equal(m) {
			return true
		}
	}
	if id, ok := c.identities[m.Source.ID]; ok && id.Equal(m) {
		return true
	}
	return false
}

// HasLink reports whether the composition table has a bucket for the
// pair.
func (c *Category) HasLink(pair Pair) bool {
	return len(c.morphisms[pair]) > 0
}

// Evolve returns a new category whose objects and morphism labels carry
// a time-step suffix. This is a pure relabeling: amounts, dates, and
// the table shape are preserved. It models the passage of the diagram
// to the next configuration of the evolutive system.
func (c *Category) Evolve(timeStep int) *Category {
	suffix := fmt.Sprintf("_t%d", timeStep)

	relabel := func(o Object) Object {
		o.ID += suffix
		return o
	}

	out := &Category{
		objects:    make(map[string]Object, len(c.objects)),
		morphisms:  make(map[Pair][]Morphism, len(c.morphisms)),
		identities: make(map[string]Morphism, len(c.identities)),
	}

	for _, o := range c.objects {
		evolved := relabel(o)
		out.objects[evolved.ID] = evolved
		out.identities[evolved.ID] = newIdentity(evolved)
	}

	for _, bucket := range c.morphisms {
		for _, m := range bucket {
			evolved := Morphism{
				Source: relabel(m.Source),
				Target: relabel(m.Target),
				Label:  m.Label + suffix,
				Amount: m.Amount,
				Date:   m.Date,
			}
			out.appendMorphism(evolved)
		}
	}

	return out
}
