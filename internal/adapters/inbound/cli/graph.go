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
	"github.com/boundcheck/boundcheck/internal/domain/rules"
)

func newGraphCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "graph [path]",
		Short: "Visualize the domain dependency graph",
		Long:  "Build the directed dependency graph between bounded contexts and display edges and cycles.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			svc := application.NewValidateService(
				scanner.New(),
				config.New(),
				tsconfig.New(),
				gitinfo.New(),
				zap.NewNop(),
			)

			tree, _, err := svc.BuildTree(path)
			if err != nil {
				return fmt.Errorf("analysis failed: %w", err)
			}

			graph := rules.BuildDomainGraph(tree)

			if jsonOutput {
				return renderGraphJSON(cmd, graph)
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderGraph(graph))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the graph as JSON")
	return cmd
}

type graphJSONOutput struct {
	Domains   int                 `json:"domains"`
	Edges     int                 `json:"edges"`
	Adjacency map[string][]string `json:"adjacency"`
	Cycles    [][]string          `json:"cycles"`
}

func renderGraphJSON(cmd *cobra.Command, graph *rules.DomainGraph) error {
	out := graphJSONOutput{
		Domains:   len(graph.Adjacency),
		Edges:     graph.EdgeCount(),
		Adjacency: graph.Adjacency,
		Cycles:    graph.DetectCycles(),
	}
	if out.Cycles == nil {
		out.Cycles = [][]string{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
