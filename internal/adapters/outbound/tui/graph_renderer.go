package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/boundcheck/boundcheck/internal/domain/rules"
)

// RenderGraph produces a terminal-formatted view of the domain dependency
// graph: a summary header, the per-domain edge list, and any cycles.
func RenderGraph(graph *rules.DomainGraph) string {
	if graph == nil || len(graph.Adjacency) == 0 {
		return "\n  " + dimStyle.Render("No domains found.") + "\n\n"
	}

	var b strings.Builder

	cycles := graph.DetectCycles()

	// ── Header box ──
	title := headerStyle.Render("Domain Graph")
	cycleLabel := passStyle.Render("0 cycles")
	if len(cycles) > 0 {
		cycleLabel = failStyle.Render(fmt.Sprintf("%d cycles", len(cycles)))
	}
	stats := dimStyle.Render(fmt.Sprintf(
		"%d domains  ·  %d edges  ·  ", len(graph.Adjacency), graph.EdgeCount())) + cycleLabel
	b.WriteString(boxStyle.Render(title + "\n\n" + stats))
	b.WriteString("\n\n")

	// ── Edge list ──
	names := make([]string, 0, len(graph.Adjacency))
	for name := range graph.Adjacency {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		edges := graph.Adjacency[name]
		line := "  " + titleStyle.Render(padRight(name, 20))
		if len(edges) == 0 {
			line += dimStyle.Render("(no dependencies)")
		} else {
			line += dimStyle.Render("→ ") + strings.Join(edges, dimStyle.Render(", "))
		}
		b.WriteString(line + "\n")
	}

	// ── Cycles ──
	if len(cycles) > 0 {
		b.WriteString("\n  " + errorTagStyle.Render("Cycles") + "\n")
		for _, cycle := range cycles {
			b.WriteString("    " + failStyle.Render("✗ "+strings.Join(cycle, " → ")) + "\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}
