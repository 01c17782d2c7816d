// Package rules implements the seven architecture rules evaluated on every
// run. Each rule is a pure function from a scanned SourceTree (plus project
// configuration) to a RuleResult; rules never touch the filesystem and never
// mutate shared state, so each is independently testable.
//
// Import detection is regex-based and therefore approximate: a string literal
// that happens to contain an alias-like substring is indistinguishable from a
// real import specifier. This matches the precision of the checks these rules
// replace; a tokenizer would be needed to do better.
package rules

import "github.com/boundcheck/boundcheck/internal/domain"

// Rule names, in fixed execution order.
const (
	RuleStructure     = "structure"
	RulePublicAPI     = "public-api"
	RuleScaffolding   = "scaffolding"
	RuleEncapsulation = "encapsulation"
	RuleShared        = "shared-independence"
	RuleAliases       = "aliases"
	RuleCycles        = "cycles"
)

// Rule is the uniform signature every rule implements.
type Rule func(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult

// All returns the rules in their fixed execution order. Every rule always
// runs; an earlier failure never short-circuits a later rule.
func All() []Rule {
	return []Rule{
		CheckStructure,
		CheckPublicAPI,
		CheckScaffolding,
		CheckEncapsulation,
		CheckSharedIndependence,
		CheckAliases,
		CheckCycles,
	}
}
