package verify

import (
	"fmt"
	"math"
	"sort"

	"github.com/evomoney/evomoney/internal/diagram"
)

// MicroInvariance checks per-agent conservation: within each diagram,
// every agent's debits and credits must cancel within the tolerance.
func MicroInvariance(diagrams ...*diagram.Diagram) Result {
	var violations []string

	for _, d := range diagrams {
		balances := make(map[string]float64)
		for _, p := range d.Postings() {
			balances[p.Agent] += p.Amount
		}

		agents := make([]string, 0, len(balances))
		for agent := range balances {
			agents = append(agents, agent)
		}
		sort.Strings(agents)

		for _, agent := range agents {
			if math.Abs(balances[agent]) > Tolerance {
				violations = append(violations,
					fmt.Sprintf("%s: agent %s is off balance by %.4f", d.Event, agent, balances[agent]))
			}
		}
	}

	return resultOf(LawMicroInvariance, violations)
}

// MacroInvariance checks cross-agent conservation: for each registered
// claim/liability account pair, the claim positions and the (negative)
// liability positions summed over all diagrams must net to zero within
// the tolerance.
func MacroInvariance(pairs []diagram.AccountPair, diagrams ...*diagram.Diagram) Result {
	positions := make(map[string]float64)
	for _, d := range diagrams {
		for _, p := range d.Postings() {
			positions[p.Account] += p.Amount
		}
	}

	var violations []string
	for _, pair := range pairs {
		net := positions[pair.Claim] + positions[pair.Liability]
		if math.Abs(net) > Tolerance {
			violations = append(violations,
				fmt.Sprintf("claim %s vs liability %s nets to %.4f", pair.Claim, pair.Liability, net))
		}
	}

	return resultOf(LawMacroInvariance, violations)
}
