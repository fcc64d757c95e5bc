package verify

import (
	"fmt"
	"math"

	"github.com/evomoney/evomoney/internal/category"
	"github.com/evomoney/evomoney/internal/pattern"
)

// CompositionClosure checks that every composable pair of morphisms
// has a composite in the table: for f: A->B and g: B->C some morphism
// A->C must exist. Endomorphic composites count too: a cycle f: A->B,
// g: B->A needs a non-identity A->A entry, since the composite f∘g
// carries f's amount and is never the identity.
func CompositionClosure(cat *category.Category) Result {
	var violations []string

	for _, f := range cat.AllMorphisms() {
		for _, gPair := range cat.Pairs() {
			if gPair.Source != f.Target.ID {
				continue
			}
			for _, g := range cat.Morphisms(gPair) {
				composedPair := category.Pair{Source: f.Source.ID, Target: g.Target.ID}
				if !cat.HasLink(composedPair) {
					violations = append(violations,
						fmt.Sprintf("no composite for %s then %s (%s -> %s missing)",
							f.Label, g.Label, composedPair.Source, composedPair.Target))
				}
			}
		}
	}

	return resultOf(LawCompositionClosure, violations)
}

// IdentityExistence checks that every object carries an identity
// morphism with zero amount and matching endpoints.
func IdentityExistence(cat *category.Category) Result {
	var violations []string

	for _, o := range cat.Objects() {
		id, ok := cat.Identity(o.ID)
		if !ok {
			violations = append(violations, fmt.Sprintf("object %s has no identity", o.ID))
			continue
		}
		if !id.IsIdentity() || id.Source != o {
			violations = append(violations, fmt.Sprintf("object %s has a malformed identity", o.ID))
		}
	}

	return resultOf(LawIdentityExistence, violations)
}

// Associativity checks compose(compose(f,g),h) == compose(f,compose(g,h))
// for every composable triple.
func Associativity(cat *category.Category) Result {
	var violations []string
	all := cat.AllMorphisms()

	for _, f := range all {
		for _, g := range all {
			if f.Target != g.Source {
				continue
			}
			for _, h := range all {
				if g.Target != h.Source {
					continue
				}

				fg, err := category.Compose(f, g)
				if err != nil {
					continue
				}
				left, err := category.Compose(fg, h)
				if err != nil {
					continue
				}

				gh, err := category.Compose(g, h)
				if err != nil {
					continue
				}
				right, err := category.Compose(f, gh)
				if err != nil {
					continue
				}

				if !left.Equal(right) {
					violations = append(violations,
						fmt.Sprintf("(%s∘%s)∘%s != %s∘(%s∘%s)", f.Label, g.Label, h.Label, f.Label, g.Label, h.Label))
				}
			}
		}
	}

	return resultOf(LawAssociativity, violations)
}

// IdentityLaws checks compose(id_A, f) == f == compose(f, id_B) for
// every morphism f: A->B.
func IdentityLaws(cat *category.Category) Result {
	var violations []string

	for _, f := range cat.AllMorphisms() {
		idA, okA := cat.Identity(f.Source.ID)
		idB, okB := cat.Identity(f.Target.ID)
		if !okA || !okB {
			violations = append(violations, fmt.Sprintf("morphism %s lacks endpoint identities", f.Label))
			continue
		}

		left, err := category.Compose(idA, f)
		if err != nil || !left.Equal(f) {
			violations = append(violations, fmt.Sprintf("id∘%s != %s", f.Label, f.Label))
		}
		right, err := category.Compose(f, idB)
		if err != nil || !right.Equal(f) {
			violations = append(violations, fmt.Sprintf("%s∘id != %s", f.Label, f.Label))
		}
	}

	return resultOf(LawIdentityLaws, violations)
}

// Commutativity checks that all composite paths between the same pair
// of objects yield equal resultant amounts. Under the flow-pass-through
// composition policy a path's resultant amount is its first edge's
// amount.
func Commutativity(cat *category.Category) Result {
	adjacency := make(map[string][]category.Morphism)
	for _, m := range cat.AllMorphisms() {
		adjacency[m.Source.ID] = append(adjacency[m.Source.ID], m)
	}

	// amounts[pair] collects the resultant amount of every simple path.
	amounts := make(map[category.Pair][]float64)

	var walk func(start, current string, first float64, visited map[string]bool)
	walk = func(start, current string, first float64, visited map[string]bool) {
		for _, edge := range adjacency[current] {
			next := edge.Target.ID
			if visited[next] {
				continue
			}
			amounts[category.Pair{Source: start, Target: next}] = append(
				amounts[category.Pair{Source: start, Target: next}], first)
			visited[next] = true
			walk(start, next, first, visited)
			delete(visited, next)
		}
	}

	for _, o := range cat.Objects() {
		for _, edge := range adjacency[o.ID] {
			visited := map[string]bool{o.ID: true, edge.Target.ID: true}
			pair := category.Pair{Source: o.ID, Target: edge.Target.ID}
			amounts[pair] = append(amounts[pair], edge.Amount)
			walk(o.ID, edge.Target.ID, edge.Amount, visited)
		}
	}

	var violations []string
	for pair, resultants := range amounts {
		lo, hi := resultants[0], resultants[0]
		for _, a := range resultants[1:] {
			lo = math.Min(lo, a)
			hi = math.Max(hi, a)
		}
		if hi-lo > Tolerance {
			violations = append(violations,
				fmt.Sprintf("paths %s -> %s disagree: amounts range from %.4f to %.4f",
					pair.Source, pair.Target, lo, hi))
		}
	}

	return resultOf(LawCommutativity, violations)
}

// UniversalProperty checks the cocone property of a colimit: every
// pattern object must have a cocone morphism into the binding object.
// True categorical universality (unique factoring through competing
// cocones) is deliberately not enumerated; the cocone contract is the
// supported guarantee.
func UniversalProperty(p *pattern.Pattern, colim pattern.Colimit) Result {
	var violations []string

	for _, obj := range p.Objects() {
		m, ok := colim.Cocone[obj.ID]
		if !ok {
			violations = append(violations,
				fmt.Sprintf("object %s has no cocone morphism", obj.ID))
			continue
		}
		if m.Source != obj || m.Target != colim.Binding {
			violations = append(violations,
				fmt.Sprintf("cocone morphism for %s has wrong endpoints", obj.ID))
		}
	}

	return resultOf(LawUniversalProperty, violations)
}

// LawSuite runs every categorical law check against a category.
func LawSuite(cat *category.Category) []Result {
	return []Result{
		CompositionClosure(cat),
		IdentityExistence(cat),
		Associativity(cat),
		IdentityLaws(cat),
		Commutativity(cat),
	}
}
