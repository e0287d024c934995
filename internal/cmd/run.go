package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/stepgraph/internal/batch"
	"github.com/katalvlaran/stepgraph/internal/engine"
	"github.com/katalvlaran/stepgraph/internal/scenario"
)

func newRunCmd(a *app) *cobra.Command {
	var output string
	c := &cobra.Command{
		Use:   "run <scenario>...",
		Short: "Run scenario files (YAML, TOML, JSON or HCL)",
		Long: `Load one request per file and run them concurrently on a bounded worker
pool. Results are printed in argument order. The command fails if any
scenario fails to load or run.

Examples:
  stepgraph run dijkstra.yaml astar.hcl
  stepgraph run --output json --workers 8 scenarios/*.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, files []string) error {
			reports := make([]report, len(files))
			reqs := make([]*engine.Request, 0, len(files))
			pos := make([]int, 0, len(files))
			for i, f := range files {
				req, err := scenario.Load(f)
				if err != nil {
					reports[i] = newReport(f, nil, err, false)
					continue
				}
				reqs = append(reqs, req)
				pos = append(pos, i)
			}

			results, err := batch.Run(a.engine, reqs, a.cfg.Batch.Workers)
			if err != nil {
				return err
			}
			for j, r := range results {
				reports[pos[j]] = newReport(files[pos[j]], r.Outcome, r.Err, a.cfg.CLI.Diagram)
			}
			if err = writeReports(cmd.OutOrStdout(), output, reports); err != nil {
				return err
			}

			if failed := len(files) - len(reqs) + batch.Failed(results); failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failed, len(files))
			}
			a.logger.Infof("Ran %d scenarios", len(files))

			return nil
		},
	}
	c.Flags().StringVarP(&output, "output", "o", "text", "Output format (text|json|yaml)")
	c.Flags().Int("workers", 0, "Override batch.workers")
	c.Flags().Bool("diagram", false, "Include a Mermaid diagram per scenario")

	return c
}
