package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundcheck/boundcheck/internal/domain"
)

func TestCheckStructure_CompleteDomain(t *testing.T) {
	tree := makeTree(completeDomain("tasks"))

	result := CheckStructure(tree, domain.DefaultConfig())

	assert.Empty(t, result.Violations)
	assert.Equal(t, 3, result.Checks, "one check per required entry")
}

func TestCheckStructure_MissingDomainsRoot(t *testing.T) {
	tree := makeTree()

	result := CheckStructure(tree, domain.DefaultConfig())

	require.Len(t, result.Violations, 1, "missing root is a single violation, not a crash")
	assert.Contains(t, result.Violations[0].Message, "src/domains")
	assert.Equal(t, domain.SeverityError, result.Violations[0].Severity)
}

func TestCheckStructure_MissingEntries(t *testing.T) {
	d := makeDomain("billing", map[string]string{
		"api/index.ts": completeAPI,
	})
	tree := makeTree(d)

	result := CheckStructure(tree, domain.DefaultConfig())

	require.Len(t, result.Violations, 2)
	assert.Contains(t, result.Violations[0].Message, "components/")
	assert.Contains(t, result.Violations[1].Message, "__tests__/")
}

func TestCheckStructure_MissingAPIEntry(t *testing.T) {
	d := makeDomain("billing", map[string]string{
		"components/View.tsx":       "export function View() { return null; }",
		"__tests__/billing.test.ts": "describe('billing', () => {});",
	})
	tree := makeTree(d)

	result := CheckStructure(tree, domain.DefaultConfig())

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Message, "public API entry")
}

func TestCheckStructure_EmptyDirsStillCount(t *testing.T) {
	d := makeDomain("billing", map[string]string{
		"api/index.ts": completeAPI,
	})
	// components/ holds only css assets and __tests__/ only snapshots, so
	// no source file was scanned under either.
	d.Dirs = map[string]bool{"components": true, "__tests__": true}
	tree := makeTree(d)

	result := CheckStructure(tree, domain.DefaultConfig())
	assert.Empty(t, result.Violations)
}

func TestCheckStructure_AcceptsTSXEntry(t *testing.T) {
	d := makeDomain("tasks", map[string]string{
		"api/index.tsx":           completeAPI,
		"components/View.tsx":     "export function View() { return null; }",
		"__tests__/tasks.test.ts": "describe('tasks', () => {});",
	})
	tree := makeTree(d)

	result := CheckStructure(tree, domain.DefaultConfig())
	assert.Empty(t, result.Violations)
}
