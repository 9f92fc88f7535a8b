// Package report writes check results and column summaries as
// tab-separated text.
package report

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/genocheck/plan"
	"github.com/gocarina/gocsv"
)

type Row struct {
	Check  string `csv:"check"`
	Column string `csv:"column"`
	Rule   string `csv:"rule"`
	Status string `csv:"status"`
	Detail string `csv:"detail"`
}

const (
	StatusPass = "PASS"
	StatusFail = "FAIL"
)

func Rows(results []plan.Result) []*Row {
	out := make([]*Row, 0, len(results))
	for _, res := range results {
		status := StatusPass
		if !res.Passed {
			status = StatusFail
		}
		out = append(out, &Row{
			Check:  res.Name,
			Column: res.Column,
			Rule:   res.Rule,
			Status: status,
			Detail: res.Detail,
		})
	}
	return out
}

// Write renders results as a TSV with a header row.
func Write(w io.Writer, results []plan.Result) error {
	return marshalTSV(w, Rows(results))
}

func marshalTSV(w io.Writer, rows interface{}) error {
	cw := csv.NewWriter(w)
	cw.Comma = '\t'
	return gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(cw))
}
