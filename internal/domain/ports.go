package domain

// SourceScanner reads the frontend source tree. Read failures degrade to
// empty results rather than aborting a run.
type SourceScanner interface {
	// ListDirs returns the immediate subdirectories of root, excluding
	// names starting with "." or "_", sorted by name. A missing root
	// returns an empty list and no error.
	ListDirs(root string) ([]string, error)

	// ListFiles returns all files under root (recursive, skipping dot
	// directories, the built-in skip list, and the given excludeDirs)
	// whose extension is in exts, sorted by path.
	ListFiles(root string, exts, excludeDirs []string) ([]string, error)

	// ReadFile returns the file content, or "" if the file is unreadable.
	ReadFile(path string) string

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool
}

// ConfigLoader loads the project configuration.
type ConfigLoader interface {
	Load(projectPath string) (ProjectConfig, error)
}

// AliasLoader reads the build-time path-alias table (tsconfig paths).
type AliasLoader interface {
	Load(tsconfigPath string) (map[string][]string, error)
}

// GitInfo provides version control metadata for report stamping.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
