// Package seriesassert turns column checks into test assertions. Base is
// meant to be created once per test case and used by table-specific test
// code:
//
//	func TestAssociations(t *testing.T) {
//		seriesassert.Run(t, "associations", nil, func(b *seriesassert.Base) {
//			b.AssertSeriesValidSNPID(snps)
//			b.AssertSeriesInRange(r2, 0.7, 1, false)
//		})
//	}
//
// Every helper reports through assert.TestingT, so *testing.T, a testify
// suite, or a Recorder can sit underneath.
package seriesassert

import (
	"testing"

	"github.com/carbocation/genocheck/check"
	"github.com/carbocation/genocheck/rules"
	"github.com/carbocation/genocheck/series"
	"github.com/stretchr/testify/assert"
)

type Base struct {
	t     assert.TestingT
	name  string
	app   any
	rules *rules.Rules
}

type Option func(*Base)

// WithRules replaces the default validation rules.
func WithRules(r *rules.Rules) Option {
	return func(b *Base) {
		if r != nil {
			b.rules = r
		}
	}
}

// New creates a Base for the test case called name. app is an opaque handle
// kept for callers that need to reach the system under test; Base itself
// never uses it.
func New(t assert.TestingT, name string, app any, opts ...Option) *Base {
	b := &Base{
		t:     t,
		name:  name,
		app:   app,
		rules: rules.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Run registers a subtest called name and hands fn a Base bound to it.
func Run(t *testing.T, name string, app any, fn func(b *Base), opts ...Option) bool {
	t.Helper()
	return t.Run(name, func(t *testing.T) {
		fn(New(t, name, app, opts...))
	})
}

func (b *Base) Name() string        { return b.name }
func (b *Base) App() any            { return b.app }
func (b *Base) Rules() *rules.Rules { return b.rules }
func (b *Base) T() assert.TestingT  { return b.t }

// AssertSeriesAgainstInterval asserts that every value is inside [low, high]
// (inside == true) or outside it.
func (b *Base) AssertSeriesAgainstInterval(s *series.Series[float64], low, high float64, inside bool) bool {
	helper(b.t)
	return Report(b.t, check.AgainstInterval(s, low, high, inside))
}

func (b *Base) AssertSeriesInRange(s *series.Series[float64], low, high float64, allowNA bool) bool {
	helper(b.t)
	return InRange(b.t, s, low, high, allowNA)
}

func (b *Base) AssertSeriesNotInRange(s *series.Series[float64], low, high float64, allowNA bool) bool {
	helper(b.t)
	return NotInRange(b.t, s, low, high, allowNA)
}

// AssertSeriesMatchesRegex asserts that every value matches pattern from its
// first character. An invalid pattern fails the test.
func (b *Base) AssertSeriesMatchesRegex(s *series.Series[string], pattern string) bool {
	helper(b.t)
	f, err := check.MatchesPattern(s, pattern)
	if err != nil {
		return assert.Fail(b.t, "invalid pattern "+pattern+": "+err.Error())
	}
	return Report(b.t, f)
}

func (b *Base) AssertSeriesValidGeneID(s *series.Series[string]) bool {
	helper(b.t)
	return Report(b.t, check.GeneID(s, b.rules))
}

func (b *Base) AssertSeriesValidSNPID(s *series.Series[string]) bool {
	helper(b.t)
	return Report(b.t, check.SNPID(s, b.rules))
}

func (b *Base) AssertSeriesValidEFOID(s *series.Series[string]) bool {
	helper(b.t)
	return Report(b.t, check.EFOID(s, b.rules))
}

func (b *Base) AssertSeriesValidGenomicCoord(s *series.Series[int64]) bool {
	helper(b.t)
	return GenomicCoord(b.t, s)
}

func (b *Base) AssertSeriesValidChrom(s *series.Series[string]) bool {
	helper(b.t)
	return Chrom(b.t, s, b.rules)
}

func (b *Base) AssertSeriesValidGWASSource(s *series.Series[string]) bool {
	helper(b.t)
	return Report(b.t, check.GWASSource(s, b.rules))
}

func (b *Base) AssertGroupBySeriesIsUniquePerGroup(g *series.Grouped[string, string]) bool {
	helper(b.t)
	return UniquePerGroup(b.t, g)
}

// AssertSeriesWithinChromosome asserts that each position fits on the
// chromosome of the same row in the given assembly.
func (b *Base) AssertSeriesWithinChromosome(chroms *series.Series[string], positions *series.Series[int64], assembly string) bool {
	helper(b.t)
	return WithinChromosome(b.t, chroms, positions, assembly)
}
