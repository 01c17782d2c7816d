package rules

import (
	"sort"

	"github.com/boundcheck/boundcheck/internal/domain"
)

// makeDomain builds a Domain from domain-relative paths to content.
func makeDomain(name string, files map[string]string) domain.Domain {
	d := domain.Domain{
		Name: name,
		Path: "src/domains/" + name,
	}
	rels := make([]string, 0, len(files))
	for rel := range files {
		rels = append(rels, rel)
	}
	sort.Strings(rels)
	for _, rel := range rels {
		d.Files = append(d.Files, domain.SourceFile{
			Path:    "/project/" + d.Path + "/" + rel,
			RelPath: d.Path + "/" + rel,
			Content: files[rel],
		})
	}
	return d
}

// makeTree assembles a SourceTree with the conventional roots.
func makeTree(domains ...domain.Domain) *domain.SourceTree {
	return &domain.SourceTree{
		Root:        "/project",
		DomainsRoot: "src/domains",
		SharedRoot:  "src/shared",
		AppRoot:     "src/app",
		Domains:     domains,
	}
}

func sharedFile(rel, content string) domain.SourceFile {
	return domain.SourceFile{
		Path:    "/project/src/shared/" + rel,
		RelPath: "src/shared/" + rel,
		Content: content,
	}
}

func appFile(rel, content string) domain.SourceFile {
	return domain.SourceFile{
		Path:    "/project/src/app/" + rel,
		RelPath: "src/app/" + rel,
		Content: content,
	}
}

const completeAPI = `
export type Task = { id: string };

export function TasksProvider({ children }: { children: unknown }) {
  return children;
}

export function useTasks(): Task[] {
  return [];
}
`

// completeDomain returns a domain that passes every per-domain rule.
func completeDomain(name string) domain.Domain {
	return makeDomain(name, map[string]string{
		"api/index.ts":                   completeAPI,
		"components/View.tsx":            "export function View() { return null; }",
		"__tests__/" + name + ".test.ts": "describe('" + name + "', () => {});",
	})
}
