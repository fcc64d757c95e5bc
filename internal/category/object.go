// Package category implements the categorical core: objects, typed
// morphisms, and immutable categories with a composition table.
package category

import "fmt"

// AccountKind classifies an object's balance-sheet side.
type AccountKind string

const (
	// KindNone marks a plain diagram object with no account semantics.
	KindNone AccountKind = ""
	// KindAsset marks a claim held by the object's agent.
	KindAsset AccountKind = "Asset"
	// KindLiability marks an obligation owed by the object's agent.
	KindLiability AccountKind = "Liability"
)

// Object is a node of a diagram: an account, an agent, or a plain
// identifier. Equality is value-based across all fields.
type Object struct {
	ID      string
	Agent   string
	Account string
	Kind    AccountKind
}

// NewObject creates a plain object with no account attributes.
func NewObject(id string) Object {
	return Object{ID: id}
}

// NewAccount creates an account object owned by an agent. The object ID
// is derived from the agent and account names so that the same account
// always resolves to the same object.
func NewAccount(agent, account string, kind AccountKind) Object {
	return Object{
		ID:      fmt.Sprintf("%s:%s", agent, account),
		Agent:   agent,
		Account: account,
		Kind:    kind,
	}
}

func (o Object) String() string {
	return o.ID
}
