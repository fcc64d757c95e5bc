// Package functor implements structure-preserving maps between
// categories and natural transformations between such maps.
package functor

import (
	"fmt"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/common"
	"github.com/evomoney/evomoney/internal/verify"
)

// Functor maps a source category into a target category: an object map
// keyed by source object ID and a morphism map keyed by morphism
// identity. Identities map to identities implicitly.
type Functor struct {
	Source *category.Category
	Target *category.Category

	ObjectMap   map[string]category.Object
	MorphismMap map[category.MorphismKey]category.Morphism
}

// New validates completeness of the maps: every source object and
// every non-identity source morphism must have an image, and every
// image must be a member of the target category.
func New(source, target *category.Category, objectMap map[string]category.Object,
	morphismMap map[category.MorphismKey]category.Morphism) (*Functor, error) {

	for _, o := range source.Objects() {
		image, ok := objectMap[o.ID]
		if !ok {
			return nil, fmt.Errorf("%w: object %s has no image", common.ErrIncompleteMapping, o.ID)
		}
		if !target.Contains(image) {
			return nil, fmt.Errorf("%w: image %s of object %s is not in the target category",
				common.ErrInvalidObjectReference, image.ID, o.ID)
		}
	}

	for _, m := range source.AllMorphisms() {
		image, ok := morphismMap[m.Key()]
		if !ok {
			return nil, fmt.Errorf("%w: morphism %s has no image", common.ErrIncompleteMapping, m.Label)
		}
		if !target.HasMorphism(image) {
			return nil, fmt.Errorf("%w: image %s of morphism %s is not in the target category",
				common.ErrInvalidObjectReference, image.Label, m.Label)
		}
	}

	return &Functor{
		Source:      source,
		Target:      target,
		ObjectMap:   objectMap,
		MorphismMap: morphismMap,
	}, nil
}

// ApplyObject maps a source object ID to its image.
func (f *Functor) ApplyObject(id string) (category.Object, bool) {
	image, ok := f.ObjectMap[id]
	return image, ok
}

// ApplyMorphism maps a source morphism to its image. Identities map to
// the identity of the image object.
func (f *Functor) ApplyMorphism(m category.Morphism) (category.Morphism, bool) {
	if m.IsIdentity() {
		image, ok := f.ObjectMap[m.Source.ID]
		if !ok {
			return category.Morphism{}, false
		}
		return f.Target.Identity(image.ID)
	}
	image, ok := f.MorphismMap[m.Key()]
	return image, ok
}

// Functoriality checks that the functor preserves composition and
// identities: F(f∘g) == F(f)∘F(g) for all composable pairs whose
// composite is materialized in the source table, and F(id_A) ==
// id_{F(A)} for all objects. Composites the source never materialized
// have no image to compare and are skipped; whether the source is
// closed is CompositionClosure's concern.
func Functoriality(f *Functor) verify.Result {
	var violations []string

	for _, o := range f.Source.Objects() {
		id, _ := f.Source.Identity(o.ID)
		image, ok := f.ApplyMorphism(id)
		if !ok || !image.IsIdentity() {
			violations = append(violations,
				fmt.Sprintf("F(id_%s) is not the identity of the image object", o.ID))
		}
	}

	all := f.Source.AllMorphisms()
	for _, g := range all {
		for _, h := range all {
			if g.Target != h.Source {
				continue
			}

			composite, err := category.Compose(g, h)
			if err != nil {
				continue
			}
			imageOfComposite, ok := f.ApplyMorphism(composite)
			if !ok {
				if !f.Source.HasMorphism(composite) {
					continue
				}
				violations = append(violations,
					fmt.Sprintf("composite %s has no image", composite.Label))
				continue
			}

			imageG, okG := f.ApplyMorphism(g)
			imageH, okH := f.ApplyMorphism(h)
			if !okG || !okH {
				violations = append(violations,
					fmt.Sprintf("operands of %s lack images", composite.Label))
				continue
			}

			composed, err := category.Compose(imageG, imageH)
			if err != nil {
				violations = append(violations,
					fmt.Sprintf("images of %s and %s do not compose: %v", g.Label, h.Label, err))
				continue
			}

			if !imageOfComposite.Equal(composed) {
				violations = append(violations,
					fmt.Sprintf("F(%s∘%s) != F(%s)∘F(%s)", g.Label, h.Label, g.Label, h.Label))
			}
		}
	}

	return resultOf(verify.LawFunctoriality, violations)
}

func resultOf(law string, violations []string) verify.Result {
	if len(violations) == 0 {
		return verify.Pass(law)
	}
	return verify.Fail(law, violations)
}
