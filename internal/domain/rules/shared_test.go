package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boundcheck/boundcheck/internal/domain"
)

func TestCheckSharedIndependence_AliasReference(t *testing.T) {
	tree := makeTree(completeDomain("tasks"))
	tree.SharedFiles = []domain.SourceFile{
		sharedFile("util.ts", "import { X } from '@/domains/tasks';"),
	}

	result := CheckSharedIndependence(tree, domain.DefaultConfig())

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Message, `"tasks"`)
	assert.Equal(t, 1, result.Violations[0].Line)
}

func TestCheckSharedIndependence_RelativeReference(t *testing.T) {
	tree := makeTree(completeDomain("tasks"))
	tree.SharedFiles = []domain.SourceFile{
		sharedFile("util.ts", "import { X } from '../domains/tasks/api/index';"),
	}

	result := CheckSharedIndependence(tree, domain.DefaultConfig())
	assert.Len(t, result.Violations, 1)
}

func TestCheckSharedIndependence_OneViolationPerLine(t *testing.T) {
	content := `import { A } from '@/domains/tasks';
import { B } from '@/domains/billing';
const ok = 1;
import { C } from '@/domains/tasks';`

	tree := makeTree(completeDomain("tasks"), completeDomain("billing"))
	tree.SharedFiles = []domain.SourceFile{sharedFile("util.ts", content)}

	result := CheckSharedIndependence(tree, domain.DefaultConfig())

	require.Len(t, result.Violations, 3, "one violation per distinct referencing line")
	assert.Equal(t, 1, result.Violations[0].Line)
	assert.Equal(t, 2, result.Violations[1].Line)
	assert.Equal(t, 4, result.Violations[2].Line)
}

func TestCheckSharedIndependence_MissingRoot(t *testing.T) {
	tree := makeTree(completeDomain("tasks"))
	tree.SharedRootMissing = true

	result := CheckSharedIndependence(tree, domain.DefaultConfig())

	require.Len(t, result.Violations, 1)
	assert.Contains(t, result.Violations[0].Message, "src/shared")
}

func TestCheckSharedIndependence_CleanShared(t *testing.T) {
	tree := makeTree(completeDomain("tasks"))
	tree.SharedFiles = []domain.SourceFile{
		sharedFile("format.ts", "export function formatDate(d: Date) { return d.toISOString(); }"),
	}

	result := CheckSharedIndependence(tree, domain.DefaultConfig())
	assert.Empty(t, result.Violations)
	assert.Equal(t, 1, result.Checks)
}
