package tsconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"regexp"
)

// AliasLoader implements domain.AliasLoader by reading compilerOptions.paths
// from a tsconfig.json file.
type AliasLoader struct{}

// New creates an AliasLoader.
func New() *AliasLoader { return &AliasLoader{} }

type tsConfigFile struct {
	CompilerOptions struct {
		Paths map[string][]string `json:"paths"`
	} `json:"compilerOptions"`
}

// tsconfig.json is JSONC in practice; strip comments before decoding.
// The comment regexes don't understand string literals, which is fine for
// path tables that never contain "//" inside a value.
var (
	lineCommentRe  = regexp.MustCompile(`(?m)^\s*//.*$`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)
	trailingComma  = regexp.MustCompile(`,(\s*[}\]])`)
)

// Load reads the alias table. A missing file and a malformed file are both
// errors; the caller decides how to scope them.
func (l *AliasLoader) Load(tsconfigPath string) (map[string][]string, error) {
	data, err := os.ReadFile(tsconfigPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", tsconfigPath, err)
	}

	cleaned := blockCommentRe.ReplaceAll(data, nil)
	cleaned = lineCommentRe.ReplaceAll(cleaned, nil)
	cleaned = trailingComma.ReplaceAll(cleaned, []byte("$1"))

	var cfg tsConfigFile
	if err := json.Unmarshal(cleaned, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", tsconfigPath, err)
	}

	if cfg.CompilerOptions.Paths == nil {
		return map[string][]string{}, nil
	}
	return cfg.CompilerOptions.Paths, nil
}
