package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/boundcheck/boundcheck/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	fixStyle      = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderRunReport renders a full validation report: a header box, one titled
// section per rule, and a closing summary with totals and duration.
func RenderRunReport(report *domain.RunReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("boundcheck")
	subtitle := dimStyle.Render("Bounded-Context Architecture Check")
	status := passStyle.Render("PASS")
	if report.Status() == "fail" {
		status = failStyle.Render("FAIL")
	}
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + status))
	b.WriteString("\n\n")

	// ── Per-rule sections ──
	for _, result := range report.RuleResults {
		renderRuleSection(&b, result)
	}

	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Summary ──
	renderSummary(&b, report)

	return b.String()
}

func renderRuleSection(b *strings.Builder, result domain.RuleResult) {
	glyph := passStyle.Render("✓")
	status := passStyle.Render("pass")
	switch {
	case result.Skipped:
		glyph = skipStyle.Render("○")
		status = skipStyle.Render("skipped")
	case len(result.Errors()) > 0:
		glyph = failStyle.Render("✗")
		status = failStyle.Render(fmt.Sprintf("%d violations", len(result.Errors())))
	case len(result.Warnings()) > 0:
		glyph = warnStyle.Render("!")
		status = warnStyle.Render(fmt.Sprintf("%d warnings", len(result.Warnings())))
	}

	name := titleStyle.Render(padRight(result.Rule, 22))
	checks := dimStyle.Render(fmt.Sprintf("%d checks", result.Checks))
	fmt.Fprintf(b, "  %s %s %s  %s\n", glyph, name, checks, status)

	for _, v := range result.Violations {
		renderViolation(b, v)
	}
	b.WriteString("\n")
}

func renderViolation(b *strings.Builder, v domain.Violation) {
	tag := errorTagStyle.Render("✗")
	if v.Severity == domain.SeverityWarning {
		tag = warnTagStyle.Render("!")
	}

	location := ""
	if v.File != "" {
		location = v.File
		if v.Line > 0 {
			location = fmt.Sprintf("%s:%d", v.File, v.Line)
		}
		location = fileStyle.Render(location) + "  "
	}

	fmt.Fprintf(b, "      %s %s%s\n", tag, location, v.Message)
	if v.Fix != "" {
		fmt.Fprintf(b, "        %s\n", fixStyle.Render("fix: "+v.Fix))
	}
}

func renderSummary(b *strings.Builder, report *domain.RunReport) {
	b.WriteString("  " + titleStyle.Render("Summary") + "\n")
	fmt.Fprintf(b, "    %s\n", dimStyle.Render(fmt.Sprintf("%d checks run", report.ChecksRun)))

	errLine := passStyle.Render("0 errors")
	if len(report.Violations) > 0 {
		errLine = errorTagStyle.Render(fmt.Sprintf("%d errors", len(report.Violations)))
	}
	fmt.Fprintf(b, "    %s", errLine)
	if len(report.Warnings) > 0 {
		fmt.Fprintf(b, "  %s", warnTagStyle.Render(fmt.Sprintf("%d warnings", len(report.Warnings))))
	}
	b.WriteString("\n")

	fmt.Fprintf(b, "    %s\n", dimStyle.Render(report.Duration.Round(time.Millisecond).String()))
	if report.CommitHash != "" {
		fmt.Fprintf(b, "    %s\n", faintStyle.Render("commit "+shortHash(report.CommitHash)))
	}
	b.WriteString("\n")
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
