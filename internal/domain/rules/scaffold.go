package rules

import (
	"fmt"
	"strings"

	"github.com/boundcheck/boundcheck/internal/domain"
)

// CheckScaffolding flags unfinished modules: files still carrying scaffold
// markers from generation, and API entries whose entire body (after comment
// stripping) is a no-op export.
func CheckScaffolding(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult {
	result := domain.RuleResult{Rule: RuleScaffolding}

	for _, d := range tree.Domains {
		for _, f := range d.Files {
			result.Checks++
			lower := strings.ToLower(f.Content)
			for _, marker := range cfg.ScaffoldMarkers {
				if strings.Contains(lower, strings.ToLower(marker)) {
					result.Violations = append(result.Violations, domain.Violation{
						Rule:     RuleScaffolding,
						Severity: domain.SeverityError,
						File:     f.RelPath,
						Message:  fmt.Sprintf("scaffold marker %q found in domain %q", marker, d.Name),
						Fix:      "replace the generated placeholder with a real implementation",
					})
					break // one marker violation per file is enough
				}
			}
		}

		entry, ok := apiEntry(d)
		if !ok {
			continue
		}
		result.Checks++
		if isPlaceholderExport(entry.Content) {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleScaffolding,
				Severity: domain.SeverityError,
				File:     entry.RelPath,
				Message:  fmt.Sprintf("domain %q has a placeholder-only public API (bare \"export {}\")", d.Name),
				Fix:      fmt.Sprintf("export the domain's Provider, hooks and types from %s", entry.RelPath),
			})
		}
	}

	return result
}

// isPlaceholderExport reports whether the trimmed, comment-stripped body is
// nothing but a no-op export statement.
func isPlaceholderExport(content string) bool {
	body := strings.TrimSpace(StripComments(content))
	body = strings.TrimSuffix(body, ";")
	body = strings.Join(strings.Fields(body), " ")
	return body == "export {}" || body == "export { }"
}
