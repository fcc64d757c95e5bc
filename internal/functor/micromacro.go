package functor

import (
	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/diagram"
)

// MacroPrefix marks an object as an aggregate of individual accounts.
const MacroPrefix = "macro::"

// MicroMacro builds the aggregation functor for a financial diagram:
// each account object maps to its macro-level counterpart (the agent
// field gains the aggregation marker) and each booking morphism maps
// to the corresponding macro booking with amount and date preserved.
func MicroMacro(d *diagram.Diagram) (*Functor, error) {
	source := d.Category

	macroObject := func(o category.Object) category.Object {
		return category.NewAccount(MacroPrefix+o.Agent, o.Account, o.Kind)
	}

	objectMap := make(map[string]category.Object)
	var targetObjects []category.Object
	for _, o := range source.Objects() {
		image := macroObject(o)
		objectMap[o.ID] = image
		targetObjects = append(targetObjects, image)
	}

	morphismMap := make(map[category.MorphismKey]category.Morphism)
	var targetMorphisms []category.Morphism
	for _, m := range source.AllMorphisms() {
		image := category.NewMorphism(
			macroObject(m.Source), macroObject(m.Target), m.Label, m.Amount, m.Date)
		morphismMap[m.Key()] = image
		targetMorphisms = append(targetMorphisms, image)
	}

	target, err := category.New(targetObjects, targetMorphisms)
	if err != nil {
		return nil, err
	}

	return New(source, target, objectMap, morphismMap)
}
