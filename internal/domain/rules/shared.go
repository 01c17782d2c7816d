package rules

import (
	"fmt"
	"regexp"

	"github.com/boundcheck/boundcheck/internal/domain"
)

var sharedDomainRefRe = regexp.MustCompile(`(?:@/|(?:\.\./)+)domains/([A-Za-z0-9_-]+)`)

// CheckSharedIndependence enforces the dependency direction domains → shared:
// shared code must have zero knowledge of any domain. Every distinct
// referencing line is one violation, alias-qualified or relative.
func CheckSharedIndependence(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult {
	result := domain.RuleResult{Rule: RuleShared}

	if tree.SharedRootMissing {
		result.Checks++
		result.Violations = append(result.Violations, domain.Violation{
			Rule:     RuleShared,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("shared root %s not found", tree.SharedRoot),
			Fix:      fmt.Sprintf("create %s for cross-cutting utility code", tree.SharedRoot),
		})
		return result
	}

	for _, f := range tree.SharedFiles {
		result.Checks++
		eachLine(f.Content, func(n int, line string) {
			m := sharedDomainRefRe.FindStringSubmatch(line)
			if m == nil {
				return
			}
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleShared,
				Severity: domain.SeverityError,
				File:     f.RelPath,
				Line:     n,
				Message:  fmt.Sprintf("shared code references domain %q: %s", m[1], m[0]),
				Fix:      "invert the dependency: move the shared code into the domain, or the needed code into shared",
			})
		})
	}

	return result
}
