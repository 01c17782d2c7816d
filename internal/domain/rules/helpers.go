package rules

import (
	"regexp"
	"strings"

	"github.com/boundcheck/boundcheck/internal/domain"
)

var blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

// StripComments removes block comments and full-line comments. Used for
// structural emptiness checks; it is not a full tokenizer and leaves
// trailing same-line comments in place.
func StripComments(content string) string {
	content = blockCommentRe.ReplaceAllString(content, "")

	var b strings.Builder
	for _, line := range strings.Split(content, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "//") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// apiEntry returns the domain's public API entry file (api/index.ts or
// api/index.tsx) and whether it exists.
func apiEntry(d domain.Domain) (domain.SourceFile, bool) {
	for _, f := range d.Files {
		rel := domainRel(d, f)
		if rel == "api/index.ts" || rel == "api/index.tsx" {
			return f, true
		}
	}
	return domain.SourceFile{}, false
}

// domainRel returns f's path relative to the domain directory.
func domainRel(d domain.Domain, f domain.SourceFile) string {
	rel := strings.TrimPrefix(filepathToSlash(f.RelPath), filepathToSlash(d.Path)+"/")
	return rel
}

func filepathToSlash(p string) string {
	return strings.ReplaceAll(p, "\\", "/")
}

// hasDir reports whether the domain has the given subdirectory, either
// recorded at scan time or inferred from a scanned file beneath it. The
// fallback covers trees assembled without filesystem access.
func hasDir(d domain.Domain, sub string) bool {
	return d.Dirs[sub] || hasEntryUnder(d, sub)
}

// hasEntryUnder reports whether the domain contains at least one file under
// the given subdirectory.
func hasEntryUnder(d domain.Domain, sub string) bool {
	prefix := sub + "/"
	for _, f := range d.Files {
		if strings.HasPrefix(domainRel(d, f), prefix) {
			return true
		}
	}
	return false
}

// layerAlternation builds the regex alternation for the configured internal
// layer names.
func layerAlternation(layers []string) string {
	quoted := make([]string, len(layers))
	for i, l := range layers {
		quoted[i] = regexp.QuoteMeta(l)
	}
	return strings.Join(quoted, "|")
}

// eachLine calls fn with the 1-based line number and text of every line.
func eachLine(content string, fn func(n int, line string)) {
	for i, line := range strings.Split(content, "\n") {
		fn(i+1, line)
	}
}
