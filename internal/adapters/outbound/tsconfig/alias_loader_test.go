package tsconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTSConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tsconfig.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_PathsTable(t *testing.T) {
	path := writeTSConfig(t, `{
  "compilerOptions": {
    "baseUrl": ".",
    "paths": {
      "@/*": ["./src/*"],
      "@/domains/tasks": ["./src/domains/tasks/api/index.ts"]
    }
  }
}`)

	aliases, err := New().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"./src/*"}, aliases["@/*"])
	assert.Equal(t, []string{"./src/domains/tasks/api/index.ts"}, aliases["@/domains/tasks"])
}

func TestLoad_JSONCTolerated(t *testing.T) {
	path := writeTSConfig(t, `{
  // path aliases
  "compilerOptions": {
    /* keep in sync with jest moduleNameMapper */
    "paths": {
      "@/*": ["./src/*"],
    }
  }
}`)

	aliases, err := New().Load(path)

	require.NoError(t, err)
	assert.Equal(t, []string{"./src/*"}, aliases["@/*"])
}

func TestLoad_NoPathsYieldsEmptyTable(t *testing.T) {
	path := writeTSConfig(t, `{"compilerOptions": {"strict": true}}`)

	aliases, err := New().Load(path)

	require.NoError(t, err)
	assert.NotNil(t, aliases)
	assert.Empty(t, aliases)
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeTSConfig(t, `{"compilerOptions": {`)

	_, err := New().Load(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := New().Load(filepath.Join(t.TempDir(), "tsconfig.json"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading")
}
