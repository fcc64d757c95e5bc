package category

import (
	"fmt"
	"time"

	"github.com/evomoney/evomoney/internal/common"
)

// Morphism is a typed arrow between two objects, carrying the flow
// amount and booking date.
type Morphism struct {
	Source Object
	Target Object
	Label  string
	Amount float64
	Date   time.Time
}

// MorphismKey identifies a morphism within a category by its endpoints
// and label. It is usable as a map key.
type MorphismKey struct {
	Source string
	Target string
	Label  string
}

// Pair addresses a bucket of the composition table by object IDs.
type Pair struct {
	Source string
	Target string
}

// NewMorphism creates an arrow from source to target.
func NewMorphism(source, target Object, label string, amount float64, date time.Time) Morphism {
	return Morphism{
		Source: source,
		Target: target,
		Label:  label,
		Amount: amount,
		Date:   date,
	}
}

// identityLabel is the canonical label of an object's identity morphism.
func identityLabel(o Object) string {
	return "id_" + o.ID
}

// newIdentity creates the identity morphism for an object: zero amount,
// source=target=object.
func newIdentity(o Object) Morphism {
	return Morphism{Source: o, Target: o, Label: identityLabel(o)}
}

// Key returns the morphism's identity within its category.
func (m Morphism) Key() MorphismKey {
	return MorphismKey{Source: m.Source.ID, Target: m.Target.ID, Label: m.Label}
}

// Pair returns the composition-table bucket the morphism belongs to.
func (m Morphism) Pair() Pair {
	return Pair{Source: m.Source.ID, Target: m.Target.ID}
}

// IsIdentity reports whether m is an identity morphism.
func (m Morphism) IsIdentity() bool {
	return m.Source == m.Target && m.Amount == 0 && m.Label == identityLabel(m.Source)
}

// Equal compares two morphisms by value. Dates compare with
// time.Time.Equal so wall-clock representation differences are ignored.
func (m Morphism) Equal(other Morphism) bool {
	return m.Source == other.Source &&
		m.Target == other.Target &&
		m.Label == other.Label &&
		m.Amount == other.Amount &&
		m.Date.Equal(other.Date)
}

func (m Morphism) String() string {
	return fmt.Sprintf("%s: %s -> %s (%.2f)", m.Label, m.Source.ID, m.Target.ID, m.Amount)
}

// Compose combines f: A->B with g: B->C into a single arrow A->C.
// Composing with an identity returns the other operand unchanged; a
// non-identity composite carries f's amount (flow pass-through) and the
// later of the two dates.
func Compose(f, g Morphism) (Morphism, error) {
	if f.Target != g.Source {
		return Morphism{}, fmt.Errorf("%w: %s -> %s cannot follow %s -> %s",
			common.ErrCompositionMismatch, g.Source.ID, g.Target.ID, f.Source.ID, f.Target.ID)
	}

	if f.IsIdentity() {
		return g, nil
	}
	if g.IsIdentity() {
		return f, nil
	}

	date := f.Date
	if g.Date.After(date) {
		date = g.Date
	}

	return Morphism{
		Source: f.Source,
		Target: g.Target,
		Label:  f.Label + "∘" + g.Label,
		Amount: f.Amount,
		Date:   date,
	}, nil
}
