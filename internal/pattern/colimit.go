package pattern

import (
	"strings"
	"time"

	"github.com/evomoney/evomoney/internal/category"
)

// noDate marks structural morphisms that carry no booking date.
var noDate = time.Time{}

// Colimit is the binding object of a pattern together with its cocone:
// one morphism from each pattern object into the binding object.
type Colimit struct {
	Binding category.Object
	Cocone  map[string]category.Morphism
}

// Calculate computes the colimit of a pattern. The binding object's ID
// joins the pattern's object IDs in sorted order, so value-equal
// patterns always yield the same colimit regardless of how their
// object sets were assembled. Cocone morphisms carry zero amount.
func Calculate(p *Pattern) Colimit {
	ids := p.ObjectIDs()
	binding := category.NewObject("colimit_" + strings.Join(ids, "_"))

	cocone := make(map[string]category.Morphism, len(ids))
	for _, obj := range p.Objects() {
		cocone[obj.ID] = category.NewMorphism(obj, binding, "to_"+binding.ID, 0, noDate)
	}

	return Colimit{Binding: binding, Cocone: cocone}
}

// Complexify folds the colimits of the given patterns back into the
// category: the result is a new category containing every binding
// object and cocone morphism. The input category is never mutated.
func Complexify(cat *category.Category, patterns ...*Pattern) (*category.Category, error) {
	out := cat

	for _, p := range patterns {
		colim := Calculate(p)
		out = out.AddObject(colim.Binding)

		for _, obj := range p.Objects() {
			m := colim.Cocone[obj.ID]
			next, err := out.AddMorphism(m.Source, m.Target, m.Label, m.Amount, m.Date)
			if err != nil {
				return nil, err
			}
			out = next
		}
	}

	return out, nil
}
