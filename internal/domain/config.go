package domain

import "fmt"

// Strictness controls how the public-api rule grades missing exports.
type Strictness string

const (
	// StrictnessStrict treats every missing required export as an error.
	StrictnessStrict Strictness = "strict"
	// StrictnessLenient downgrades missing required exports to warnings
	// that do not affect the exit code.
	StrictnessLenient Strictness = "lenient"
)

// ValidStrictness enumerates the recognized strictness levels.
var ValidStrictness = []Strictness{StrictnessStrict, StrictnessLenient}

// ProjectConfig holds project-level configuration loaded from .boundcheck.yaml.
type ProjectConfig struct {
	DomainsRoot     string     `yaml:"domains_root"     json:"domains_root,omitempty"`
	SharedRoot      string     `yaml:"shared_root"      json:"shared_root,omitempty"`
	AppRoot         string     `yaml:"app_root"         json:"app_root,omitempty"`
	TSConfigPath    string     `yaml:"tsconfig"         json:"tsconfig,omitempty"`
	Strictness      Strictness `yaml:"strictness"       json:"strictness,omitempty"`
	InternalLayers  []string   `yaml:"internal_layers"  json:"internal_layers,omitempty"`
	ScaffoldMarkers []string   `yaml:"scaffold_markers" json:"scaffold_markers,omitempty"`
	SourceExts      []string   `yaml:"source_exts"      json:"source_exts,omitempty"`
	ExcludePaths    []string   `yaml:"exclude_paths"    json:"exclude_paths,omitempty"`
}

// DefaultConfig returns the configuration for the conventional layout:
// src/domains, src/shared, src/app, tsconfig.json at the project root.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{
		DomainsRoot:  "src/domains",
		SharedRoot:   "src/shared",
		AppRoot:      "src/app",
		TSConfigPath: "tsconfig.json",
		Strictness:   StrictnessStrict,
		InternalLayers: []string{
			"components", "hooks", "services", "ipc", "state",
		},
		ScaffoldMarkers: []string{
			"scaffold",
			"should be added here",
			"will be implemented here",
			"coming soon",
		},
		SourceExts: []string{".ts", ".tsx"},
	}
}

// Validate catches typos in user-supplied raw input before merging.
func (c ProjectConfig) Validate() error {
	if c.Strictness == "" {
		return nil
	}
	for _, s := range ValidStrictness {
		if c.Strictness == s {
			return nil
		}
	}
	return fmt.Errorf("unknown strictness %q (valid: strict, lenient)", c.Strictness)
}

// Merge overlays explicit (non-zero) values from override on top of c.
func (c ProjectConfig) Merge(override ProjectConfig) ProjectConfig {
	result := c
	if override.DomainsRoot != "" {
		result.DomainsRoot = override.DomainsRoot
	}
	if override.SharedRoot != "" {
		result.SharedRoot = override.SharedRoot
	}
	if override.AppRoot != "" {
		result.AppRoot = override.AppRoot
	}
	if override.TSConfigPath != "" {
		result.TSConfigPath = override.TSConfigPath
	}
	if override.Strictness != "" {
		result.Strictness = override.Strictness
	}
	if len(override.InternalLayers) > 0 {
		result.InternalLayers = override.InternalLayers
	}
	if len(override.ScaffoldMarkers) > 0 {
		result.ScaffoldMarkers = override.ScaffoldMarkers
	}
	if len(override.SourceExts) > 0 {
		result.SourceExts = override.SourceExts
	}
	if len(override.ExcludePaths) > 0 {
		result.ExcludePaths = override.ExcludePaths
	}
	return result
}
