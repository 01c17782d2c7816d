package application

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/boundcheck/boundcheck/internal/domain"
	"github.com/boundcheck/boundcheck/internal/domain/rules"
)

// ValidateService orchestrates one validation pass:
// load config -> scan tree -> run the seven rules in fixed order -> fold
// results into a RunReport. Every rule always runs; setup problems become
// rule-scoped violations instead of aborting the pass.
type ValidateService struct {
	scanner domain.SourceScanner
	configs domain.ConfigLoader
	aliases domain.AliasLoader
	git     domain.GitInfo
	log     *zap.Logger
}

func NewValidateService(
	scanner domain.SourceScanner,
	configs domain.ConfigLoader,
	aliases domain.AliasLoader,
	git domain.GitInfo,
	log *zap.Logger,
) *ValidateService {
	if log == nil {
		log = zap.NewNop()
	}
	return &ValidateService{
		scanner: scanner,
		configs: configs,
		aliases: aliases,
		git:     git,
		log:     log,
	}
}

// Validate runs the full rule sequence against projectPath. A non-empty
// strictness overrides the configured level.
func (s *ValidateService) Validate(projectPath string, strictness domain.Strictness) (*domain.RunReport, error) {
	started := time.Now()

	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := s.configs.Load(absPath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if strictness != "" {
		cfg.Strictness = strictness
	}

	tree, err := s.buildTree(absPath, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning source tree: %w", err)
	}
	s.log.Debug("source tree scanned",
		zap.Int("domains", len(tree.Domains)),
		zap.Int("shared_files", len(tree.SharedFiles)),
		zap.Int("app_files", len(tree.AppFiles)),
	)

	report := &domain.RunReport{
		RootPath:  absPath,
		Timestamp: started,
	}

	for _, rule := range rules.All() {
		result := rule(tree, cfg)
		report.RuleResults = append(report.RuleResults, result)
		report.ChecksRun += result.Checks
		report.Violations = append(report.Violations, result.Errors()...)
		report.Warnings = append(report.Warnings, result.Warnings()...)
		s.log.Debug("rule finished",
			zap.String("rule", result.Rule),
			zap.Int("checks", result.Checks),
			zap.Int("violations", len(result.Violations)),
		)
	}

	if s.git != nil && s.git.IsGitRepo(absPath) {
		if hash, err := s.git.CommitHash(absPath); err == nil {
			report.CommitHash = hash
		}
	}

	report.Duration = time.Since(started)
	return report, nil
}

// BuildTree scans the source tree without running any rules. Used by the
// graph command and the MCP adapter.
func (s *ValidateService) BuildTree(projectPath string) (*domain.SourceTree, domain.ProjectConfig, error) {
	absPath, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, domain.ProjectConfig{}, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := s.configs.Load(absPath)
	if err != nil {
		return nil, domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}

	tree, err := s.buildTree(absPath, cfg)
	if err != nil {
		return nil, domain.ProjectConfig{}, err
	}
	return tree, cfg, nil
}

func (s *ValidateService) buildTree(absPath string, cfg domain.ProjectConfig) (*domain.SourceTree, error) {
	tree := &domain.SourceTree{
		Root:        absPath,
		DomainsRoot: cfg.DomainsRoot,
		SharedRoot:  cfg.SharedRoot,
		AppRoot:     cfg.AppRoot,
	}

	domainsAbs := filepath.Join(absPath, filepath.FromSlash(cfg.DomainsRoot))
	names, err := s.scanner.ListDirs(domainsAbs)
	if err != nil {
		return nil, fmt.Errorf("listing domains: %w", err)
	}

	for _, name := range names {
		d := domain.Domain{
			Name: name,
			Path: cfg.DomainsRoot + "/" + name,
			Dirs: make(map[string]bool),
		}
		d.Files, err = s.loadFiles(absPath, filepath.Join(domainsAbs, name), cfg)
		if err != nil {
			return nil, fmt.Errorf("scanning domain %s: %w", name, err)
		}
		// Subdirectory presence is recorded here so an empty directory
		// still counts as existing.
		for _, sub := range []string{"api", "components", "__tests__"} {
			if s.scanner.DirExists(filepath.Join(domainsAbs, name, sub)) {
				d.Dirs[sub] = true
			}
		}
		tree.Domains = append(tree.Domains, d)
	}

	sharedAbs := filepath.Join(absPath, filepath.FromSlash(cfg.SharedRoot))
	tree.SharedRootMissing = !s.scanner.DirExists(sharedAbs)
	tree.SharedFiles, err = s.loadFiles(absPath, sharedAbs, cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning shared root: %w", err)
	}

	tree.AppFiles, err = s.loadFiles(absPath, filepath.Join(absPath, filepath.FromSlash(cfg.AppRoot)), cfg)
	if err != nil {
		return nil, fmt.Errorf("scanning app root: %w", err)
	}

	aliases, aliasErr := s.aliases.Load(filepath.Join(absPath, filepath.FromSlash(cfg.TSConfigPath)))
	if aliasErr != nil {
		tree.AliasError = aliasErr.Error()
	} else {
		tree.Aliases = aliases
	}

	return tree, nil
}

func (s *ValidateService) loadFiles(projectRoot, root string, cfg domain.ProjectConfig) ([]domain.SourceFile, error) {
	paths, err := s.scanner.ListFiles(root, cfg.SourceExts, cfg.ExcludePaths)
	if err != nil {
		return nil, err
	}

	files := make([]domain.SourceFile, 0, len(paths))
	for _, p := range paths {
		rel, relErr := filepath.Rel(projectRoot, p)
		if relErr != nil {
			rel = p
		}
		files = append(files, domain.SourceFile{
			Path:    p,
			RelPath: filepath.ToSlash(rel),
			Content: s.scanner.ReadFile(p),
		})
	}
	return files, nil
}
