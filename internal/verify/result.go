// Package verify implements the law checks and conservation invariants
// over categories, colimits, and financial diagrams. Checks never
// fail with an error: they return Result values so callers can
// aggregate every violation into one report.
package verify

import "fmt"

// Law names reported by the checks.
const (
	LawCompositionClosure = "composition_closure"
	LawIdentityExistence  = "identity_existence"
	LawAssociativity      = "associativity"
	LawIdentityLaws       = "identity_laws"
	LawCommutativity      = "commutativity"
	LawUniversalProperty  = "universal_property"
	LawFunctoriality      = "functoriality"
	LawNaturality         = "naturality"
	LawMicroInvariance    = "micro_invariance"
	LawMacroInvariance    = "macro_invariance"
)

// Tolerance is the epsilon for numeric balance comparisons.
const Tolerance = 1e-9

// Result is the outcome of one law or invariant check.
type Result struct {
	Law        string
	Passed     bool
	Violations []string
}

// Pass builds a passing result for a law.
func Pass(law string) Result {
	return Result{Law: law, Passed: true}
}

// Fail builds a failing result carrying the violations found.
func Fail(law string, violations []string) Result {
	return Result{Law: law, Passed: false, Violations: violations}
}

// resultOf collapses a violation list into a Result.
func resultOf(law string, violations []string) Result {
	if len(violations) == 0 {
		return Pass(law)
	}
	return Fail(law, violations)
}

func (r Result) String() string {
	if r.Passed {
		return fmt.Sprintf("%s: ok", r.Law)
	}
	return fmt.Sprintf("%s: %d violation(s)", r.Law, len(r.Violations))
}
