// Package series is a small column container for checking tabular genomics
// data one column at a time. A Series is an ordered run of values with an
// optional validity mask (for nulls) and optional index labels. Series values
// are never mutated after construction; every operation returns a new Series
// or a Mask.
package series

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// Number is the set of types that range and coordinate checks accept.
type Number interface {
	constraints.Integer | constraints.Float
}

type Series[T any] struct {
	name   string
	values []T
	valid  []bool   // nil means every value is present
	labels []string // nil means positional labels
}

// New creates a Series with no nulls. The values slice is copied.
func New[T any](name string, values []T) *Series[T] {
	return &Series[T]{
		name:   name,
		values: append([]T(nil), values...),
	}
}

// NewWithNulls creates a Series where valid[i] == false marks values[i] as
// null. The two slices must have the same length.
func NewWithNulls[T any](name string, values []T, valid []bool) (*Series[T], error) {
	if len(values) != len(valid) {
		return nil, fmt.Errorf("series %q: %d values but %d validity flags", name, len(values), len(valid))
	}

	s := New(name, values)
	for _, ok := range valid {
		if !ok {
			s.valid = append([]bool(nil), valid...)
			break
		}
	}

	return s, nil
}

// WithIndex returns a copy of s labelled with the given index.
func (s *Series[T]) WithIndex(labels []string) (*Series[T], error) {
	if len(labels) != len(s.values) {
		return nil, fmt.Errorf("series %q: %d values but %d index labels", s.name, len(s.values), len(labels))
	}

	out := s.clone()
	out.labels = append([]string(nil), labels...)
	return out, nil
}

func (s *Series[T]) Name() string { return s.name }

func (s *Series[T]) Len() int { return len(s.values) }

// Value returns the raw value at position i. For a null entry this is the
// zero value of T.
func (s *Series[T]) Value(i int) T { return s.values[i] }

// At returns the value at position i and whether it is non-null.
func (s *Series[T]) At(i int) (T, bool) {
	return s.values[i], !s.IsNull(i)
}

// IsNull reports whether position i is missing, either through the validity
// mask or because it holds a floating point NaN.
func (s *Series[T]) IsNull(i int) bool {
	if s.valid != nil && !s.valid[i] {
		return true
	}
	return isNaN(s.values[i])
}

func isNaN(v any) bool {
	switch x := v.(type) {
	case float64:
		return math.IsNaN(x)
	case float32:
		return math.IsNaN(float64(x))
	}
	return false
}

func (s *Series[T]) HasNulls() bool {
	for i := range s.values {
		if s.IsNull(i) {
			return true
		}
	}
	return false
}

// Label is the index label at position i.
func (s *Series[T]) Label(i int) string {
	if s.labels == nil {
		return strconv.Itoa(i)
	}
	return s.labels[i]
}

// Values returns a copy of the underlying values, nulls included as zero
// values.
func (s *Series[T]) Values() []T {
	return append([]T(nil), s.values...)
}

// DropNA returns the non-null entries, keeping their labels.
func (s *Series[T]) DropNA() *Series[T] {
	keep := make(Mask, len(s.values))
	for i := range s.values {
		keep[i] = !s.IsNull(i)
	}
	return s.Filter(keep)
}

// Filter returns the entries where m is true. m must be as long as s.
func (s *Series[T]) Filter(m Mask) *Series[T] {
	if len(m) != len(s.values) {
		panic(fmt.Sprintf("series %q: mask of length %d applied to series of length %d", s.name, len(m), len(s.values)))
	}

	out := &Series[T]{name: s.name}
	for i, keep := range m {
		if !keep {
			continue
		}
		out.values = append(out.values, s.values[i])
		out.labels = append(out.labels, s.Label(i))
		if s.valid != nil {
			out.valid = append(out.valid, s.valid[i])
		}
	}

	return out
}

// Head returns at most the first n entries.
func (s *Series[T]) Head(n int) *Series[T] {
	if n > len(s.values) {
		n = len(s.values)
	}
	if n < 0 {
		n = 0
	}

	m := make(Mask, len(s.values))
	for i := 0; i < n; i++ {
		m[i] = true
	}
	return s.Filter(m)
}

// Format renders the value at position i the way it would be printed in a
// column dump. Nulls render as NaN.
func (s *Series[T]) Format(i int) string {
	if s.IsNull(i) {
		return "NaN"
	}
	return FormatValue(s.values[i])
}

// Entry renders position i together with its index label.
func (s *Series[T]) Entry(i int) string {
	return s.Label(i) + ": " + s.Format(i)
}

// String renders the values, one per line, without the index.
func (s *Series[T]) String() string {
	lines := make([]string, len(s.values))
	for i := range s.values {
		lines[i] = s.Format(i)
	}
	return strings.Join(lines, "\n")
}

func (s *Series[T]) clone() *Series[T] {
	out := &Series[T]{
		name:   s.name,
		values: append([]T(nil), s.values...),
	}
	if s.valid != nil {
		out.valid = append([]bool(nil), s.valid...)
	}
	if s.labels != nil {
		out.labels = append([]string(nil), s.labels...)
	}
	return out
}

// Map applies fn to every non-null value. Nulls stay null and labels are
// kept.
func Map[T, U any](s *Series[T], fn func(T) U) *Series[U] {
	out := &Series[U]{
		name:   s.name,
		values: make([]U, len(s.values)),
	}
	for i, v := range s.values {
		if s.IsNull(i) {
			if out.valid == nil {
				out.valid = make([]bool, len(s.values))
				for j := range out.valid {
					out.valid[j] = true
				}
			}
			out.valid[i] = false
			continue
		}
		out.values[i] = fn(v)
	}
	if s.labels != nil {
		out.labels = append([]string(nil), s.labels...)
	}
	return out
}

// Stringify converts every entry to its string rendering. Nulls become the
// literal string "nan" and are no longer null afterwards, so that membership
// checks treat them as an ordinary (invalid) value.
func Stringify[T any](s *Series[T]) *Series[string] {
	out := &Series[string]{
		name:   s.name,
		values: make([]string, len(s.values)),
	}
	for i, v := range s.values {
		if s.IsNull(i) {
			out.values[i] = "nan"
			continue
		}
		out.values[i] = FormatValue(v)
	}
	if s.labels != nil {
		out.labels = append([]string(nil), s.labels...)
	}
	return out
}

// FormatValue renders a scalar. Floats use the shortest representation that
// round-trips.
func FormatValue(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'g', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(v)
	}
}
