package main

import (
	"context"
	"os"

	"github.com/carbocation/genocheck/report"
	"github.com/spf13/cobra"
)

var (
	summarizeSource  source
	summarizeColumns []string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print summary statistics of numeric columns",
	RunE:  runSummarize,
}

func init() {
	summarizeCmd.Flags().StringVar(&summarizeSource.Path, "table", "", "Table to summarize (local path or gs://)")
	summarizeCmd.Flags().StringVar(&summarizeSource.Query, "query", "", "BigQuery SQL producing the table to summarize")
	summarizeCmd.Flags().StringSliceVar(&summarizeColumns, "column", nil, "Numeric column to summarize (repeatable)")
	_ = summarizeCmd.MarkFlagRequired("column")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	tbl, err := loadTable(context.Background(), summarizeSource, cfg.Project)
	if err != nil {
		return err
	}

	summaries := make([]report.Summary, 0, len(summarizeColumns))
	for _, col := range summarizeColumns {
		s, err := tbl.Floats(col)
		if err != nil {
			return err
		}
		sum, err := report.Summarize(s)
		if err != nil {
			return err
		}
		summaries = append(summaries, sum)
	}

	return report.WriteSummaries(os.Stdout, summaries)
}
