package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupOverridesHeuristic(t *testing.T) {
	n := New(LookupTable{"M 42": "M 42 - Orion Nebula"})

	got := n.Choose("M 42", []string{"M42", "M 42 - old", "Messier 42 stuff with a very long suffix"})
	assert.Equal(t, "M 42 - Orion Nebula", got,
		"an operator entry must win regardless of member descriptions")
}

func TestLongestDescriptionWins(t *testing.T) {
	n := New(nil)

	got := n.Choose("NGC 2244", []string{"NGC 2244", "NGC2244 Rosette Open Cluster"})
	assert.Equal(t, "NGC 2244 - Rosette Open Cluster", got)
}

func TestTieBrokenByScanOrder(t *testing.T) {
	n := New(nil)

	// "Alpha" and "Omega" have equal length; the earlier member wins.
	got := n.Choose("IC 1396", []string{"IC1396 Alpha", "IC1396 Omega"})
	assert.Equal(t, "IC 1396 - Alpha", got)
}

func TestBareDesignationWhenNoDescriptions(t *testing.T) {
	n := New(LookupTable{})

	got := n.Choose("SH 2-131", []string{"SH2-131", "sh 2-131"})
	assert.Equal(t, "SH 2-131", got)
}

func TestSingleMemberKeepsItsDescription(t *testing.T) {
	n := New(nil)

	got := n.Choose("SH 2-131", []string{"SH2-131 Elephant Trunk Nebula"})
	assert.Equal(t, "SH 2-131 - Elephant Trunk Nebula", got)
}

func TestDefaultStrategy(t *testing.T) {
	assert.Equal(t, StrategyLongestDescription, New(nil).Strategy())
}
