package domain

import "time"

// Domain represents a single bounded context discovered under the domains root.
type Domain struct {
	Name  string       `json:"name"`
	Path  string       `json:"path"`
	Files []SourceFile `json:"-"`

	// Dirs records which conventional subdirectories exist on disk, so
	// presence checks do not depend on which files were scanned.
	Dirs map[string]bool `json:"-"`
}

// SourceFile is one scanned source file with its content loaded.
type SourceFile struct {
	Path    string `json:"path"`     // absolute
	RelPath string `json:"rel_path"` // relative to the source root
	Content string `json:"-"`
}

// Violation represents a single architectural finding.
type Violation struct {
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	File     string `json:"file,omitempty"`
	Line     int    `json:"line,omitempty"`
	Message  string `json:"message"`
	Fix      string `json:"fix,omitempty"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// RuleResult is the value returned by a single rule: how many atomic
// assertions it evaluated and what it found. Rules never mutate shared state.
type RuleResult struct {
	Rule       string      `json:"rule"`
	Checks     int         `json:"checks"`
	Skipped    bool        `json:"skipped,omitempty"`
	Violations []Violation `json:"violations"`
}

// Errors returns the violations with error severity.
func (r RuleResult) Errors() []Violation {
	return filterSeverity(r.Violations, SeverityError)
}

// Warnings returns the violations with warning severity.
func (r RuleResult) Warnings() []Violation {
	return filterSeverity(r.Violations, SeverityWarning)
}

func filterSeverity(violations []Violation, severity string) []Violation {
	var out []Violation
	for _, v := range violations {
		if v.Severity == severity {
			out = append(out, v)
		}
	}
	return out
}

// SourceTree is one immutable scan of the frontend source tree. It is built
// once per run and handed to every rule.
type SourceTree struct {
	Root        string   // absolute project root
	DomainsRoot string   // relative, e.g. "src/domains"
	SharedRoot  string   // relative, e.g. "src/shared"
	AppRoot     string   // relative, e.g. "src/app"
	Domains     []Domain // sorted by name
	SharedFiles []SourceFile
	AppFiles    []SourceFile
	Aliases     map[string][]string // tsconfig paths, nil if unavailable
	AliasError  string              // non-empty if the alias config failed to parse

	// SharedRootMissing marks a shared root that does not exist at all,
	// as opposed to one that is merely empty.
	SharedRootMissing bool
}

// DomainNames returns the sorted names of all discovered domains.
func (t *SourceTree) DomainNames() []string {
	names := make([]string, len(t.Domains))
	for i, d := range t.Domains {
		names[i] = d.Name
	}
	return names
}

// HasDomain reports whether a domain with the given name was discovered.
func (t *SourceTree) HasDomain(name string) bool {
	for _, d := range t.Domains {
		if d.Name == name {
			return true
		}
	}
	return false
}

// RunReport aggregates one full validation pass.
type RunReport struct {
	RootPath    string        `json:"root_path"`
	CommitHash  string        `json:"commit_hash,omitempty"`
	ChecksRun   int           `json:"checks_run"`
	RuleResults []RuleResult  `json:"rule_results"`
	Violations  []Violation   `json:"violations"`
	Warnings    []Violation   `json:"warnings"`
	Duration    time.Duration `json:"duration_ns"`
	Timestamp   time.Time     `json:"timestamp"`
}

// Status is "pass" when no error-severity violations were found.
// Warnings never affect the status.
func (r *RunReport) Status() string {
	if len(r.Violations) == 0 {
		return "pass"
	}
	return "fail"
}

// ExitCode implements the exit-code contract: 0 iff no violations.
func (r *RunReport) ExitCode() int {
	if len(r.Violations) == 0 {
		return 0
	}
	return 1
}
