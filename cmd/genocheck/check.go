package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/carbocation/genocheck/plan"
	"github.com/carbocation/genocheck/report"
	"github.com/carbocation/genocheck/rules"
	"github.com/carbocation/genocheck/table"
	"github.com/spf13/cobra"
)

var errChecksFailed = errors.New("one or more checks failed")

var (
	checkSource source
	planFile    string
	reportFile  string
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run a plan of column checks against a table",
	Long: `Runs every check in the plan and writes a tab-separated report of the
results. Exits non-zero if any check fails.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkSource.Path, "table", "", "Table to check (local path or gs://)")
	checkCmd.Flags().StringVar(&checkSource.Query, "query", "", "BigQuery SQL producing the table to check")
	checkCmd.Flags().StringVar(&planFile, "plan", "", "YAML plan of checks")
	checkCmd.Flags().StringVar(&reportFile, "report", "", "Where to write the TSV report (default stdout)")
	_ = checkCmd.MarkFlagRequired("plan")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if cfg.Assembly != "" {
		plan.DefaultAssembly = cfg.Assembly
	}

	p, err := plan.LoadFile(planFile)
	if err != nil {
		return err
	}

	r, err := rules.LoadFile(cfg.RulesFile)
	if err != nil {
		return err
	}

	tbl, err := loadTable(context.Background(), checkSource, cfg.Project)
	if err != nil {
		return err
	}
	logger.Infow("Loaded table", "table", tbl.Name(), "rows", tbl.Len(), "columns", len(tbl.Columns()))

	results := runPlan(p, tbl, r)

	out := io.Writer(os.Stdout)
	if reportFile != "" {
		f, err := os.Create(reportFile)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	if err := report.Write(out, results); err != nil {
		return err
	}

	if failed := plan.Failed(results); failed > 0 {
		logger.Errorw("Checks failed", "failed", failed, "total", len(results))
		return errChecksFailed
	}

	logger.Infow("All checks passed", "total", len(results))
	return nil
}

func runPlan(p *plan.Plan, tbl *table.Table, r *rules.Rules) []plan.Result {
	results := p.Run(tbl, r)
	for _, res := range results {
		if res.Passed {
			logger.Debugw("Check passed", "check", res.Name)
			continue
		}
		logger.Warnw("Check failed", "check", res.Name, "column", res.Column, "detail", res.Detail)
	}
	return results
}
