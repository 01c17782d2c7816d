package rules

import (
	"fmt"
	"path"
	"strings"

	"github.com/boundcheck/boundcheck/internal/domain"
)

// CheckAliases verifies the build-time path-alias table: the base "@/*"
// alias must resolve into the source root, and any dedicated per-domain
// alias must target that domain's public API entry. An unparsable alias
// configuration is a single fatal violation for this rule only.
func CheckAliases(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult {
	result := domain.RuleResult{Rule: RuleAliases}

	if tree.AliasError != "" {
		result.Checks++
		result.Violations = append(result.Violations, domain.Violation{
			Rule:     RuleAliases,
			Severity: domain.SeverityError,
			File:     cfg.TSConfigPath,
			Message:  fmt.Sprintf("cannot read path aliases: %s", tree.AliasError),
			Fix:      fmt.Sprintf("fix compilerOptions.paths in %s", cfg.TSConfigPath),
		})
		return result
	}

	// "@/domains/<name>" must resolve to the domains root, so the base
	// alias has to map into its parent directory.
	srcRoot := path.Dir(cfg.DomainsRoot)

	result.Checks++
	if !baseAliasCoversSource(tree.Aliases, srcRoot) {
		result.Violations = append(result.Violations, domain.Violation{
			Rule:     RuleAliases,
			Severity: domain.SeverityError,
			File:     cfg.TSConfigPath,
			Message:  fmt.Sprintf(`base alias "@/*" missing or not mapped into ./%s`, srcRoot),
			Fix:      fmt.Sprintf(`add "@/*": ["./%s/*"] to compilerOptions.paths`, srcRoot),
		})
	}

	for _, d := range tree.Domains {
		key := "@/domains/" + d.Name
		targets, ok := tree.Aliases[key]
		if !ok {
			// Covered by the "@/*" wildcard; a dedicated alias is optional.
			continue
		}
		result.Checks++
		if !aliasTargetsAPI(targets, d.Name) {
			result.Violations = append(result.Violations, domain.Violation{
				Rule:     RuleAliases,
				Severity: domain.SeverityError,
				File:     cfg.TSConfigPath,
				Message:  fmt.Sprintf("alias %q does not target domain %q public API (got %v)", key, d.Name, targets),
				Fix:      fmt.Sprintf(`point %q at ["./%s/%s/api"]`, key, cfg.DomainsRoot, d.Name),
			})
		}
	}

	return result
}

func baseAliasCoversSource(aliases map[string][]string, srcRoot string) bool {
	for _, target := range aliases["@/*"] {
		t := strings.TrimPrefix(target, "./")
		t = strings.TrimSuffix(t, "*")
		t = strings.Trim(t, "/")
		if srcRoot == "." {
			if t == "" {
				return true
			}
			continue
		}
		if t == srcRoot || strings.HasPrefix(t, srcRoot+"/") {
			return true
		}
	}
	return false
}

func aliasTargetsAPI(targets []string, name string) bool {
	for _, target := range targets {
		t := strings.TrimSuffix(strings.TrimSuffix(target, "/index.ts"), "/index.tsx")
		t = strings.TrimSuffix(t, "/")
		if strings.HasSuffix(t, "domains/"+name+"/api") {
			return true
		}
	}
	return false
}
