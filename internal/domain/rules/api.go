package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/fatih/camelcase"

	"github.com/boundcheck/boundcheck/internal/domain"
)

var (
	providerExportRe = regexp.MustCompile(`export\s+(?:function|const|class)\s+(\w*Provider\w*)`)
	hookExportRe     = regexp.MustCompile(`export\s+(?:function|const)\s+(use[A-Za-z0-9_]*)`)
	typeExportRe     = regexp.MustCompile(`export\s+type\s+\w+`)
)

// CheckPublicAPI verifies that every domain's API entry exposes the three
// required export shapes: a Provider, at least one hook following the use*
// naming convention, and at least one exported type. Strictness decides
// whether a missing shape is an error or a warning.
func CheckPublicAPI(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult {
	result := domain.RuleResult{Rule: RulePublicAPI}

	severity := domain.SeverityError
	if cfg.Strictness == domain.StrictnessLenient {
		severity = domain.SeverityWarning
	}

	for _, d := range tree.Domains {
		entry, ok := apiEntry(d)
		if !ok {
			// Reported by the structure rule; nothing to inspect here.
			continue
		}

		result.Checks++
		if !providerExportRe.MatchString(entry.Content) {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RulePublicAPI,
				Severity: severity,
				File:     entry.RelPath,
				Message:  fmt.Sprintf("domain %q exports no Provider from its public API", d.Name),
				Fix:      fmt.Sprintf("export function %sProvider(...) from %s", pascal(d.Name), entry.RelPath),
			})
		}

		result.Checks++
		if !hasHookExport(entry.Content) {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RulePublicAPI,
				Severity: severity,
				File:     entry.RelPath,
				Message:  fmt.Sprintf("domain %q exports no use* hook from its public API", d.Name),
				Fix:      fmt.Sprintf("export function use%s(...) from %s", pascal(d.Name), entry.RelPath),
			})
		}

		result.Checks++
		if !typeExportRe.MatchString(entry.Content) {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RulePublicAPI,
				Severity: severity,
				File:     entry.RelPath,
				Message:  fmt.Sprintf("domain %q exports no types from its public API", d.Name),
				Fix:      fmt.Sprintf("add an export type declaration to %s", entry.RelPath),
			})
		}
	}

	return result
}

// hasHookExport reports whether content exports at least one identifier that
// genuinely follows the hook convention: a "use" segment followed by a
// capitalized segment. Plain "useful" or bare "use" do not qualify.
func hasHookExport(content string) bool {
	for _, m := range hookExportRe.FindAllStringSubmatch(content, -1) {
		segments := camelcase.Split(m[1])
		if len(segments) >= 2 && segments[0] == "use" {
			return true
		}
	}
	return false
}

// pascal converts a domain name like "paintJobs" or "tasks" to PascalCase
// for fix suggestions.
func pascal(name string) string {
	var out strings.Builder
	for _, part := range strings.FieldsFunc(name, func(r rune) bool { return r == '-' || r == '_' }) {
		for _, s := range camelcase.Split(part) {
			if s == "" {
				continue
			}
			out.WriteString(strings.ToUpper(s[:1]))
			out.WriteString(s[1:])
		}
	}
	return out.String()
}
