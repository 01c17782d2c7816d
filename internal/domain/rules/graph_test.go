package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundcheck/boundcheck/internal/domain"
)

// domainImporting builds a minimal domain whose one file references the
// given targets via their public alias paths.
func domainImporting(name string, targets ...string) domain.Domain {
	content := ""
	for _, target := range targets {
		content += "import { x } from '@/domains/" + target + "';\n"
	}
	return makeDomain(name, map[string]string{"components/View.tsx": content})
}

func TestBuildDomainGraph_BasicEdges(t *testing.T) {
	tree := makeTree(
		domainImporting("a", "b"),
		domainImporting("b", "c"),
		domainImporting("c"),
	)

	g := BuildDomainGraph(tree)

	require.NotNil(t, g)
	assert.Equal(t, []string{"b"}, g.Adjacency["a"])
	assert.Equal(t, []string{"c"}, g.Adjacency["b"])
	assert.Empty(t, g.Adjacency["c"])
	assert.Equal(t, 2, g.EdgeCount())
}

func TestBuildDomainGraph_ExcludesSelfEdges(t *testing.T) {
	tree := makeTree(domainImporting("a", "a", "b"), domainImporting("b"))

	g := BuildDomainGraph(tree)
	assert.Equal(t, []string{"b"}, g.Adjacency["a"], "self-references are filtered out")
}

func TestBuildDomainGraph_IgnoresUnknownTargets(t *testing.T) {
	tree := makeTree(domainImporting("a", "ghost"))

	g := BuildDomainGraph(tree)
	assert.Empty(t, g.Adjacency["a"], "references to non-domains are dropped")
}

func TestBuildDomainGraph_DeduplicatesEdges(t *testing.T) {
	a := makeDomain("a", map[string]string{
		"components/X.tsx": "import { x } from '@/domains/b';",
		"components/Y.tsx": "import { y } from '@/domains/b/hooks/useY';",
	})
	tree := makeTree(a, domainImporting("b"))

	g := BuildDomainGraph(tree)
	assert.Equal(t, []string{"b"}, g.Adjacency["a"], "duplicates collapse into one edge")
}

func TestDetectCycles_DAG(t *testing.T) {
	g := &DomainGraph{Adjacency: map[string][]string{
		"a": {"b", "c"},
		"b": {"c"},
		"c": {},
	}}

	assert.Empty(t, g.DetectCycles())
}

func TestDetectCycles_TwoNodeCycle(t *testing.T) {
	g := &DomainGraph{Adjacency: map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}}

	cycles := g.DetectCycles()

	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"a", "b", "a"}, cycles[0], "closed loop over exactly these two nodes")
}

func TestDetectCycles_ThreeNodeCycle(t *testing.T) {
	g := &DomainGraph{Adjacency: map[string][]string{
		"b": {"c"},
		"c": {"a"},
		"a": {"b"},
	}}

	cycles := g.DetectCycles()

	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"a", "b", "c", "a"}, cycles[0], "normalized to start at the smallest name")
}

func TestDetectCycles_Deterministic(t *testing.T) {
	g := &DomainGraph{Adjacency: map[string][]string{
		"a": {"b"},
		"b": {"a"},
		"c": {"d"},
		"d": {"c"},
	}}

	first := g.DetectCycles()
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, g.DetectCycles(), "repeated runs report identical cycle paths")
	}
	assert.Len(t, first, 2)
}

func TestCheckCycles_ReportsViolation(t *testing.T) {
	tree := makeTree(domainImporting("a", "b"), domainImporting("b", "a"))

	result := CheckCycles(tree, domain.DefaultConfig())

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Message, "a → b → a")
}

func TestCheckCycles_SingleDomainSkippedButCounted(t *testing.T) {
	tree := makeTree(completeDomain("tasks"))

	result := CheckCycles(tree, domain.DefaultConfig())

	assert.True(t, result.Skipped)
	assert.Equal(t, 1, result.Checks)
	assert.Empty(t, result.Violations)
}
