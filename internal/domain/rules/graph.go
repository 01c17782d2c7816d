package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/boundcheck/boundcheck/internal/domain"
)

var domainRefRe = regexp.MustCompile(`@/domains/([A-Za-z0-9_-]+)`)

// DomainGraph is the directed dependency graph between bounded contexts.
// An edge A → B means a file in domain A references domain B's import path.
type DomainGraph struct {
	// Adjacency holds sorted, deduplicated edge lists. Self-edges are
	// excluded at build time.
	Adjacency map[string][]string
}

// BuildDomainGraph scans every domain's files for alias-qualified references
// to other discovered domains. References to the domain itself and to names
// that are not domains are dropped.
func BuildDomainGraph(tree *domain.SourceTree) *DomainGraph {
	g := &DomainGraph{Adjacency: make(map[string][]string)}

	for _, d := range tree.Domains {
		targets := make(map[string]bool)
		for _, f := range d.Files {
			for _, m := range domainRefRe.FindAllStringSubmatch(f.Content, -1) {
				target := m[1]
				if target == d.Name || !tree.HasDomain(target) {
					continue
				}
				targets[target] = true
			}
		}

		edges := make([]string, 0, len(targets))
		for t := range targets {
			edges = append(edges, t)
		}
		sort.Strings(edges)
		g.Adjacency[d.Name] = edges
	}

	return g
}

// EdgeCount returns the total number of directed edges.
func (g *DomainGraph) EdgeCount() int {
	n := 0
	for _, edges := range g.Adjacency {
		n += len(edges)
	}
	return n
}

// DetectCycles runs DFS from every unvisited domain, keeping the recursion
// stack as an ordered list so each cycle is reported as the closed path from
// the revisited node through the current node (e.g. ["a","b","a"]). Cycles
// are normalized by rotating the smallest name first and deduplicated.
func (g *DomainGraph) DetectCycles() [][]string {
	names := make([]string, 0, len(g.Adjacency))
	for name := range g.Adjacency {
		names = append(names, name)
	}
	sort.Strings(names)

	visited := make(map[string]bool)
	onStack := make(map[string]bool)
	var stack []string
	var cycles [][]string
	seen := make(map[string]bool)

	var dfs func(node string)
	dfs = func(node string) {
		visited[node] = true
		onStack[node] = true
		stack = append(stack, node)

		for _, next := range g.Adjacency[node] {
			if onStack[next] {
				// Slice the stack from next's first occurrence and
				// close the loop.
				start := 0
				for i, n := range stack {
					if n == next {
						start = i
						break
					}
				}
				cycle := append(append([]string{}, stack[start:]...), next)
				normalized := normalizeCycle(cycle)
				key := strings.Join(normalized, "→")
				if !seen[key] {
					seen[key] = true
					cycles = append(cycles, normalized)
				}
				continue
			}
			if !visited[next] {
				dfs(next)
			}
		}

		stack = stack[:len(stack)-1]
		onStack[node] = false
	}

	for _, name := range names {
		if !visited[name] {
			dfs(name)
		}
	}

	return cycles
}

// normalizeCycle rotates a closed path (first == last) so the smallest name
// comes first, preserving traversal order.
func normalizeCycle(cycle []string) []string {
	if len(cycle) < 2 {
		return cycle
	}
	body := cycle[:len(cycle)-1] // drop the closing repeat
	minIdx := 0
	for i, s := range body {
		if s < body[minIdx] {
			minIdx = i
		}
	}
	out := make([]string, 0, len(cycle))
	for i := range body {
		out = append(out, body[(minIdx+i)%len(body)])
	}
	return append(out, out[0])
}

// CheckCycles is rule seven: the domain dependency graph must be acyclic.
// With fewer than two domains the check is skipped but still counted.
func CheckCycles(tree *domain.SourceTree, cfg domain.ProjectConfig) domain.RuleResult {
	result := domain.RuleResult{Rule: RuleCycles, Checks: 1}

	if len(tree.Domains) < 2 {
		result.Skipped = true
		return result
	}

	g := BuildDomainGraph(tree)
	for _, cycle := range g.DetectCycles() {
		result.Violations = append(result.Violations, domain.Violation{
			Rule:     RuleCycles,
			Severity: domain.SeverityError,
			Message:  fmt.Sprintf("circular dependency: %s", strings.Join(cycle, " → ")),
			Fix:      "break the cycle by moving the shared contract into src/shared or inverting one dependency",
		})
	}

	return result
}
