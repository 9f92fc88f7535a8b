package seriesassert

import (
	"github.com/carbocation/genocheck/check"
	"github.com/carbocation/genocheck/chrpos"
	"github.com/carbocation/genocheck/rules"
	"github.com/carbocation/genocheck/series"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

type tHelper interface {
	Helper()
}

func helper(t assert.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// Report passes when f is nil and otherwise fails t with f's detail as the
// message.
func Report(t assert.TestingT, f *check.Failure) bool {
	helper(t)
	if f == nil {
		return assert.True(t, true)
	}
	return assert.True(t, false, f.Detail)
}

func InRange[T series.Number](t assert.TestingT, s *series.Series[T], low, high T, allowNA bool) bool {
	helper(t)
	return Report(t, check.InRange(s, low, high, allowNA))
}

func NotInRange[T series.Number](t assert.TestingT, s *series.Series[T], low, high T, allowNA bool) bool {
	helper(t)
	return Report(t, check.NotInRange(s, low, high, allowNA))
}

func AgainstInterval[T series.Number](t assert.TestingT, s *series.Series[T], low, high T, inside bool) bool {
	helper(t)
	return Report(t, check.AgainstInterval(s, low, high, inside))
}

func GenomicCoord[T series.Number](t assert.TestingT, s *series.Series[T]) bool {
	helper(t)
	return Report(t, check.GenomicCoordinate(s))
}

// Chrom accepts any column type; values are compared by their string form.
func Chrom[T any](t assert.TestingT, s *series.Series[T], r *rules.Rules) bool {
	helper(t)
	return Report(t, check.Chromosome(s, r))
}

func UniquePerGroup[K constraints.Ordered, T comparable](t assert.TestingT, g *series.Grouped[K, T]) bool {
	helper(t)
	return Report(t, check.UniquePerGroup(g))
}

func WithinChromosome[T constraints.Integer](t assert.TestingT, chroms *series.Series[string], positions *series.Series[T], assembly string) bool {
	helper(t)
	lengths, err := chrpos.Lengths(assembly)
	if err != nil {
		return assert.Fail(t, err.Error())
	}
	return Report(t, check.WithinChromosome(chroms, positions, lengths))
}
