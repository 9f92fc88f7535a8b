// Package check evaluates column rules without reference to any test runner.
// Each check returns nil when the column passes and a *Failure describing the
// problem when it does not.
//
// Failures come in two shapes. Range, pattern, coordinate and grouped checks
// report the first offending value. The fixed-set membership checks
// (chromosome and GWAS source) report a frequency table of every invalid
// value instead.
package check

import "github.com/carbocation/genocheck/series"

type Shape int

const (
	FirstOffender Shape = iota
	FrequencyTable
)

func (s Shape) String() string {
	switch s {
	case FirstOffender:
		return "first-offender"
	case FrequencyTable:
		return "frequency-table"
	}
	return "unknown"
}

// Failure is a failed check. Detail is the human readable excerpt; for
// FrequencyTable failures Counts holds the tallies that Detail renders.
type Failure struct {
	Rule   string
	Column string
	Shape  Shape
	Detail string
	Counts series.Counts
}

func (f *Failure) Error() string {
	if f.Column == "" {
		return f.Rule + ": " + f.Detail
	}
	return f.Rule + " " + f.Column + ": " + f.Detail
}

func firstOffender(rule, column, detail string) *Failure {
	return &Failure{Rule: rule, Column: column, Shape: FirstOffender, Detail: detail}
}

func frequencyTable(rule, column string, counts series.Counts) *Failure {
	return &Failure{Rule: rule, Column: column, Shape: FrequencyTable, Detail: counts.String(), Counts: counts}
}
