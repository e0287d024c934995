package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepgraph/internal/cli"
)

func newInteractiveCmd(a *app) *cobra.Command {
	c := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"cli", "i"},
		Short:   "Prompt for a graph and run algorithms interactively",
		Long: `Start an interactive session: choose an algorithm (1-5), enter the
graph edge by edge, pick start and end nodes (and a heuristic for A*), then
read the Step Trace and the result. Invalid answers are asked again.

Examples:
  stepgraph interactive
  stepgraph interactive --diagram          # also print a Mermaid diagram`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := cli.NewSession(cmd.InOrStdin(), cmd.OutOrStdout(), a.engine, cli.WithDiagram(a.cfg.CLI.Diagram))
			return s.Run()
		},
	}
	c.Flags().Bool("diagram", false, "Print a Mermaid diagram after every run")

	return c
}
