package check

import (
	"fmt"

	"github.com/carbocation/genocheck/series"
)

const (
	RuleInRange           = "in_range"
	RuleNotInRange        = "not_in_range"
	RuleGenomicCoordinate = "genomic_coord"
)

// AgainstInterval checks that every value lies inside [low, high] when inside
// is true, or outside it when inside is false. An empty series passes. A null
// is never inside the interval, so it fails an inside check and passes an
// outside check.
func AgainstInterval[T series.Number](s *series.Series[T], low, high T, inside bool) *Failure {
	rule := RuleInRange
	if !inside {
		rule = RuleNotInRange
	}

	if s.Len() == 0 {
		return nil
	}

	meets := series.Between(s, low, high)
	if !inside {
		meets = meets.Not()
	}

	if meets.All() {
		return nil
	}

	offender := s.Filter(meets.Not()).Head(1).String()
	not := ""
	if inside {
		not = " not"
	}

	return firstOffender(rule, s.Name(), fmt.Sprintf("%s%s in [%s, %s]",
		offender,
		not,
		series.FormatValue(low),
		series.FormatValue(high),
	))
}

// InRange checks that every value is in [low, high]. With allowNA, nulls are
// dropped before checking.
func InRange[T series.Number](s *series.Series[T], low, high T, allowNA bool) *Failure {
	if allowNA {
		s = s.DropNA()
	}
	return AgainstInterval(s, low, high, true)
}

// NotInRange checks that no value is in [low, high]. With allowNA, nulls are
// dropped before checking.
func NotInRange[T series.Number](s *series.Series[T], low, high T, allowNA bool) *Failure {
	if allowNA {
		s = s.DropNA()
	}
	return AgainstInterval(s, low, high, false)
}

// GenomicCoordinate checks that every position is strictly positive. Nulls
// fail.
func GenomicCoordinate[T series.Number](s *series.Series[T]) *Failure {
	var zero T
	positive := series.Greater(s, zero)
	if positive.All() {
		return nil
	}

	offender := s.Filter(positive.Not()).Head(1).String()
	return firstOffender(RuleGenomicCoordinate, s.Name(), offender+" not > 0")
}
