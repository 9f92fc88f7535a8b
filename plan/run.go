package plan

import (
	"fmt"
	"testing"

	"github.com/carbocation/genocheck/check"
	"github.com/carbocation/genocheck/chrpos"
	"github.com/carbocation/genocheck/rules"
	"github.com/carbocation/genocheck/series"
	"github.com/carbocation/genocheck/seriesassert"
	"github.com/carbocation/genocheck/table"
	"github.com/stretchr/testify/assert"
)

// Result is the outcome of one check. Detail is empty when the check passed.
type Result struct {
	Name   string
	Column string
	Rule   string
	Passed bool
	Detail string
}

// Run evaluates every check against tbl. A check whose columns are missing
// or unparseable is a failed result, not an error.
func (p *Plan) Run(tbl *table.Table, r *rules.Rules) []Result {
	out := make([]Result, 0, len(p.Checks))
	for _, c := range p.Checks {
		res := Result{
			Name:   c.Label(),
			Column: c.Column,
			Rule:   c.Rule,
			Passed: true,
		}

		f, err := Evaluate(c, tbl, r)
		switch {
		case err != nil:
			res.Passed = false
			res.Detail = err.Error()
		case f != nil:
			res.Passed = false
			res.Detail = f.Detail
		}

		out = append(out, res)
	}
	return out
}

// Failed counts the failed results.
func Failed(results []Result) int {
	n := 0
	for _, res := range results {
		if !res.Passed {
			n++
		}
	}
	return n
}

// Assert runs every check as a subtest of t named by its label.
func (p *Plan) Assert(t *testing.T, tbl *table.Table, r *rules.Rules) {
	t.Helper()
	for _, c := range p.Checks {
		c := c
		seriesassert.Run(t, c.Label(), tbl, func(b *seriesassert.Base) {
			f, err := Evaluate(c, tbl, b.Rules())
			if err != nil {
				assert.Fail(b.T(), err.Error())
				return
			}
			seriesassert.Report(b.T(), f)
		}, seriesassert.WithRules(r))
	}
}

// Evaluate runs a single check. The error is non-nil only when the check
// could not be run at all.
func Evaluate(c Check, tbl *table.Table, r *rules.Rules) (*check.Failure, error) {
	if r == nil {
		r = rules.Default()
	}

	switch c.Rule {
	case check.RuleInRange, check.RuleNotInRange:
		if c.Low == nil || c.High == nil {
			return nil, fmt.Errorf("%s: low and high are required", c.Label())
		}
		s, err := tbl.Floats(c.Column)
		if err != nil {
			return nil, err
		}
		if c.Rule == check.RuleInRange {
			return check.InRange(s, *c.Low, *c.High, c.AllowNA), nil
		}
		return check.NotInRange(s, *c.Low, *c.High, c.AllowNA), nil

	case check.RuleGenomicCoordinate:
		s, err := tbl.Ints(c.Column)
		if err != nil {
			return nil, err
		}
		return check.GenomicCoordinate(s), nil

	case check.RuleUniquePerGroup:
		keys, err := tbl.Strings(c.GroupBy)
		if err != nil {
			return nil, err
		}
		values, err := tbl.Strings(c.Column)
		if err != nil {
			return nil, err
		}
		g, err := series.GroupBy(keys, values)
		if err != nil {
			return nil, err
		}
		return check.UniquePerGroup(g), nil

	case check.RuleWithinChromosome:
		chroms, err := tbl.Strings(c.ChromColumn)
		if err != nil {
			return nil, err
		}
		positions, err := tbl.Ints(c.Column)
		if err != nil {
			return nil, err
		}
		lengths, err := chrpos.Lengths(c.assembly())
		if err != nil {
			return nil, err
		}
		return check.WithinChromosome(chroms, positions, lengths), nil
	}

	s, err := tbl.Strings(c.Column)
	if err != nil {
		return nil, err
	}

	switch c.Rule {
	case check.RuleRegex:
		return check.MatchesPattern(s, c.Pattern)
	case check.RuleGeneID:
		return check.GeneID(s, r), nil
	case check.RuleSNPID:
		return check.SNPID(s, r), nil
	case check.RuleEFOID:
		return check.EFOID(s, r), nil
	case check.RuleChromosome:
		return check.Chromosome(s, r), nil
	case check.RuleGWASSource:
		return check.GWASSource(s, r), nil
	}

	return nil, fmt.Errorf("%s: unknown rule %q", c.Label(), c.Rule)
}
