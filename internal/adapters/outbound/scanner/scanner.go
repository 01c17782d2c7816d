package scanner

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var skipDirs = map[string]bool{
	"node_modules": true,
	".git":         true,
	".next":        true,
	"dist":         true,
	"build":        true,
	"coverage":     true,
}

// FileScanner implements domain.SourceScanner by walking the filesystem.
type FileScanner struct{}

// New creates a FileScanner.
func New() *FileScanner {
	return &FileScanner{}
}

// ListDirs returns the immediate subdirectories of root, excluding dotfiles
// and underscore-prefixed names, sorted. A missing root yields an empty list.
func (s *FileScanner) ListDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var dirs []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			continue
		}
		dirs = append(dirs, name)
	}
	sort.Strings(dirs)
	return dirs, nil
}

// ListFiles returns all files under root with an extension in exts, sorted.
// Dot directories, the built-in skip list, and excludeDirs are not entered.
// A missing root yields an empty list.
func (s *FileScanner) ListFiles(root string, exts, excludeDirs []string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	allowed := make(map[string]bool, len(exts))
	for _, e := range exts {
		allowed[e] = true
	}
	excluded := make(map[string]bool, len(excludeDirs))
	for _, p := range excludeDirs {
		excluded[strings.TrimSuffix(p, "/")] = true
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != root && (skipDirs[name] || excluded[name] || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if allowed[filepath.Ext(d.Name())] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

// DirExists reports whether path exists and is a directory.
func (s *FileScanner) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ReadFile returns the file content, degrading to "" on any read failure so
// a single unreadable file never aborts a run.
func (s *FileScanner) ReadFile(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
