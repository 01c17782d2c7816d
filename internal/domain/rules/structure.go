package rules

import (
	"fmt"

	"github.com/boundcheck/boundcheck/internal/domain"
)

// CheckStructure verifies that every domain carries the minimum bounded-
// context skeleton: a public API entry, a components directory, and a
// __tests__ directory. A missing domains root is a single violation for the
// whole rule, not a crash.
func CheckStructure(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult {
	result := domain.RuleResult{Rule: RuleStructure}

	if len(tree.Domains) == 0 {
		result.Checks++
		result.Violations = append(result.Violations, domain.Violation{
			Rule:     RuleStructure,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("domains root %s not found or contains no domains", tree.DomainsRoot),
			Fix:      fmt.Sprintf("create %s/<domain>/ with api/, components/ and __tests__/ subdirectories", tree.DomainsRoot),
		})
		return result
	}

	for _, d := range tree.Domains {
		result.Checks++
		if _, ok := apiEntry(d); !ok {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleStructure,
				Severity: domain.SeverityError,
				File:     d.Path,
				Message:  fmt.Sprintf("domain %q has no public API entry (api/index.ts)", d.Name),
				Fix:      fmt.Sprintf("add %s/api/index.ts exporting the domain's public surface", d.Path),
			})
		}

		result.Checks++
		if !hasDir(d, "components") {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleStructure,
				Severity: domain.SeverityError,
				File:     d.Path,
				Message:  fmt.Sprintf("domain %q has no components/ directory", d.Name),
				Fix:      fmt.Sprintf("add %s/components/ with the domain's UI components", d.Path),
			})
		}

		result.Checks++
		if !hasDir(d, "__tests__") {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleStructure,
				Severity: domain.SeverityError,
				File:     d.Path,
				Message:  fmt.Sprintf("domain %q has no __tests__/ directory", d.Name),
				Fix:      fmt.Sprintf("add %s/__tests__/ covering the domain's public API", d.Path),
			})
		}
	}

	return result
}
