package functor

import (
	"fmt"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/common"
	"github.com/evomoney/evomoney/internal/verify"
)

// NaturalTransformation is a family of morphisms between the images of
// two parallel functors: components[A] goes from F(A) to G(A).
type NaturalTransformation struct {
	F          *Functor
	G          *Functor
	Components map[string]category.Morphism
}

// NewNaturalTransformation validates that F and G are parallel (same
// source and target categories) and that every source object has a
// component with the right endpoints.
func NewNaturalTransformation(f, g *Functor, components map[string]category.Morphism) (*NaturalTransformation, error) {
	if f.Source != g.Source || f.Target != g.Target {
		return nil, fmt.Errorf("%w: functors are not parallel", common.ErrIncompleteMapping)
	}

	for _, o := range f.Source.Objects() {
		component, ok := components[o.ID]
		if !ok {
			return nil, fmt.Errorf("%w: object %s has no component", common.ErrIncompleteMapping, o.ID)
		}

		imageF, okF := f.ApplyObject(o.ID)
		imageG, okG := g.ApplyObject(o.ID)
		if !okF || !okG {
			return nil, fmt.Errorf("%w: object %s lacks functor images", common.ErrIncompleteMapping, o.ID)
		}
		if component.Source != imageF || component.Target != imageG {
			return nil, fmt.Errorf("%w: component for %s must go from F(%s) to G(%s)",
				common.ErrInvalidObjectReference, o.ID, o.ID, o.ID)
		}
	}

	return &NaturalTransformation{F: f, G: g, Components: components}, nil
}

// Naturality checks every naturality square: for f: A->B in the source
// category, compose(η_A, G(f)) == compose(F(f), η_B).
func Naturality(eta *NaturalTransformation) verify.Result {
	var violations []string

	for _, m := range eta.F.Source.AllMorphisms() {
		componentA, okA := eta.Components[m.Source.ID]
		componentB, okB := eta.Components[m.Target.ID]
		if !okA || !okB {
			violations = append(violations,
				fmt.Sprintf("morphism %s lacks endpoint components", m.Label))
			continue
		}

		imageF, okF := eta.F.ApplyMorphism(m)
		imageG, okG := eta.G.ApplyMorphism(m)
		if !okF || !okG {
			violations = append(violations,
				fmt.Sprintf("morphism %s lacks functor images", m.Label))
			continue
		}

		left, errL := category.Compose(componentA, imageG)
		right, errR := category.Compose(imageF, componentB)
		if errL != nil || errR != nil {
			violations = append(violations,
				fmt.Sprintf("naturality square for %s does not compose", m.Label))
			continue
		}

		if !squareCommutes(left, right) {
			violations = append(violations,
				fmt.Sprintf("naturality square for %s does not commute", m.Label))
		}
	}

	return resultOf(verify.LawNaturality, violations)
}

// squareCommutes compares the two legs of a naturality square by
// endpoints and amount. Labels differ by construction (the two legs
// concatenate different factor labels), so label equality is not part
// of the comparison.
func squareCommutes(left, right category.Morphism) bool {
	return left.Source == right.Source &&
		left.Target == right.Target &&
		left.Amount == right.Amount &&
		left.Date.Equal(right.Date)
}
