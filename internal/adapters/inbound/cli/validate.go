package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/boundcheck/boundcheck/internal/adapters/outbound/config"
	"github.com/boundcheck/boundcheck/internal/adapters/outbound/gitinfo"
	"github.com/boundcheck/boundcheck/internal/adapters/outbound/scanner"
	"github.com/boundcheck/boundcheck/internal/adapters/outbound/tsconfig"
	"github.com/boundcheck/boundcheck/internal/adapters/outbound/tui"
	"github.com/boundcheck/boundcheck/internal/application"
	"github.com/boundcheck/boundcheck/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
		lenient    bool
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate the bounded-context architecture",
		Long:  "Run all seven architecture rules against the project's source tree and report violations. Exits 1 when any violation is found.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectPath := path
			if len(args) > 0 {
				projectPath = args[0]
			}

			log, err := newLogger(debug)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			svc := application.NewValidateService(
				scanner.New(),
				config.New(),
				tsconfig.New(),
				gitinfo.New(),
				log,
			)

			strictness := domain.Strictness("")
			if lenient {
				strictness = domain.StrictnessLenient
			}

			report, err := svc.Validate(projectPath, strictness)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRunReport(report))
			}

			if report.ExitCode() != 0 {
				return fmt.Errorf("%d architecture violation(s) found", len(report.Violations))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path to validate")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&lenient, "lenient", false, "Downgrade missing public-API exports to warnings")
	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")

	return cmd
}

// newLogger returns a Nop logger unless debug output is requested.
func newLogger(debug bool) (*zap.Logger, error) {
	if !debug {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}
