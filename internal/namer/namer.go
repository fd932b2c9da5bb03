// Package namer chooses the canonical display name for a catalog group.
package namer

import (
	"astrosort/internal/catalog"
)

// Strategy selects how the fallback name is derived when the lookup table
// has no entry for a group.
type Strategy string

const (
	// StrategyLongestDescription keeps the longest descriptive suffix found
	// among the group members, ties broken by scan order. This assumes the
	// longest name is the most informative one, which is a heuristic, not a
	// guarantee; the lookup table exists to correct it permanently.
	StrategyLongestDescription Strategy = "longest_description"
)

// LookupTable maps catalog designations to operator-chosen display names.
// It is read-only configuration owned by the operator; an entry always
// overrides the heuristic.
type LookupTable map[catalog.ID]string

// Namer computes canonical folder names for catalog groups.
type Namer struct {
	table    LookupTable
	strategy Strategy
}

// New returns a Namer backed by the given lookup table.
func New(table LookupTable) *Namer {
	return &Namer{table: table, strategy: StrategyLongestDescription}
}

// Choose returns the canonical display name for the group with the given
// designation. memberNames must be in scan order; with several equally
// long descriptions the earliest member wins, keeping the choice
// deterministic across runs.
func (n *Namer) Choose(id catalog.ID, memberNames []string) string {
	if name, ok := n.table[id]; ok {
		return name
	}

	best := ""
	for _, member := range memberNames {
		if desc := catalog.Description(member); len(desc) > len(best) {
			best = desc
		}
	}
	if best == "" {
		return string(id)
	}
	return string(id) + " - " + best
}

// Strategy reports the active fallback strategy.
func (n *Namer) Strategy() Strategy {
	return n.strategy
}
