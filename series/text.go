package series

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// Match marks the strings that match re starting at their first character.
// The match does not have to extend to the end of the value unless the
// pattern itself ends in $, and that $ also matches just before a single
// trailing newline. Nulls never match.
func Match(s *Series[string], re *regexp.Regexp) Mask {
	return compare(s, func(v string) bool {
		if matchesAtStart(re, v) {
			return true
		}
		return strings.HasSuffix(v, "\n") && matchesAtStart(re, v[:len(v)-1])
	})
}

func matchesAtStart(re *regexp.Regexp, v string) bool {
	loc := re.FindStringIndex(v)
	return loc != nil && loc[0] == 0
}

// IsIn marks values that are members of set. Nulls are never members.
func IsIn[T comparable](s *Series[T], set map[T]struct{}) Mask {
	return compare(s, func(v T) bool {
		_, ok := set[v]
		return ok
	})
}

// Unique returns the distinct non-null values in order of first appearance.
func Unique[T comparable](s *Series[T]) []T {
	seen := make(map[T]struct{})
	out := make([]T, 0)
	for i, v := range s.values {
		if s.IsNull(i) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ValueCount is one row of a frequency table.
type ValueCount struct {
	Value string
	Count int
}

// Counts is a frequency table, most frequent first.
type Counts []ValueCount

// Total is the number of values tallied.
func (c Counts) Total() int {
	n := 0
	for _, vc := range c {
		n += vc.Count
	}
	return n
}

func (c Counts) String() string {
	lines := make([]string, len(c))
	for i, vc := range c {
		lines[i] = fmt.Sprintf("%q: %d", vc.Value, vc.Count)
	}
	return strings.Join(lines, "\n")
}

// ValueCounts tallies each distinct value. Rows are ordered by descending
// count, and values with equal counts keep their order of first appearance.
// Nulls are tallied under "NaN".
func ValueCounts[T comparable](s *Series[T]) Counts {
	pos := make(map[string]int)
	out := make(Counts, 0)
	for i := range s.values {
		key := s.Format(i)
		if j, ok := pos[key]; ok {
			out[j].Count++
			continue
		}
		pos[key] = len(out)
		out = append(out, ValueCount{Value: key, Count: 1})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})

	return out
}
