package rules

import (
	"fmt"
	"regexp"

	"github.com/boundcheck/boundcheck/internal/domain"
)

// CheckEncapsulation enforces that cross-domain consumers only use a
// domain's public import path:
//
//   - alias-qualified deep imports (@/domains/<X>/<internal-layer>/...) are
//     violations unless the referencing file lives in domain X itself;
//   - relative imports climbing three or more levels into a domain's
//     internal layer are always violations, own domain or not;
//   - app entry-point files may never reach a domain's internals.
func CheckEncapsulation(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult {
	result := domain.RuleResult{Rule: RuleEncapsulation}

	layers := layerAlternation(cfg.InternalLayers)
	deepRe := regexp.MustCompile(`@/domains/([A-Za-z0-9_-]+)/(` + layers + `)\b`)
	traversalRe := regexp.MustCompile(`(?:\.\./){3,}[^'"\s]*\b(` + layers + `)/`)

	for _, d := range tree.Domains {
		for _, f := range d.Files {
			result.Checks++
			checkFileImports(&result, f, d.Name, deepRe, traversalRe)
		}
	}

	for _, f := range tree.AppFiles {
		result.Checks++
		checkFileImports(&result, f, "", deepRe, traversalRe)
	}

	return result
}

// checkFileImports scans one file line by line. ownDomain is "" for files
// outside the domains root, which exempts nothing.
func checkFileImports(result *domain.RuleResult, f domain.SourceFile, ownDomain string, deepRe, traversalRe *regexp.Regexp) {
	eachLine(f.Content, func(n int, line string) {
		for _, m := range deepRe.FindAllStringSubmatch(line, -1) {
			target, layer := m[1], m[2]
			if target == ownDomain {
				continue // own-domain internal access is permitted
			}
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleEncapsulation,
				Severity: domain.SeverityError,
				File:     f.RelPath,
				Line:     n,
				Message:  fmt.Sprintf("deep import into domain %q internal layer %q: %s", target, layer, m[0]),
				Fix:      fmt.Sprintf("import from the public surface @/domains/%s instead", target),
			})
		}

		if m := traversalRe.FindString(line); m != "" {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleEncapsulation,
				Severity: domain.SeverityError,
				File:     f.RelPath,
				Line:     n,
				Message:  fmt.Sprintf("relative traversal across module boundaries: %s", m),
				Fix:      "use the alias-qualified public import path instead of relative traversal",
			})
		}
	})
}
