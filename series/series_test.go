package series

import (
	"math"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestBetweenIsInclusive(t *testing.T) {
	s := New("r2", []float64{0.7, 0.85, 1, 1.2})
	assert.Equal(t, Mask{true, true, true, false}, Between(s, 0.7, 1.0))
}

func TestNullsNeverCompare(t *testing.T) {
	s := FromNullFloats("pvalue", []null.Float{null.FloatFrom(0.5), null.NewFloat(0, false)})
	assert.Equal(t, Mask{true, false}, Between(s, 0.0, 1.0))
	assert.Equal(t, Mask{true, false}, Greater(s, 0.0))
	assert.True(t, s.HasNulls())
	assert.Equal(t, "NaN", s.Format(1))
}

func TestNaNValuesAreNull(t *testing.T) {
	s := New("r2", []float64{0.8, math.NaN(), 1})
	assert.True(t, s.IsNull(1))
	assert.True(t, s.HasNulls())
	assert.Equal(t, "NaN", s.Format(1))
	assert.Equal(t, Mask{true, false, true}, Between(s, 0.0, 1.0))

	d := s.DropNA()
	assert.Equal(t, []float64{0.8, 1}, d.Values())
	assert.Equal(t, "2", d.Label(1))

	assert.Equal(t, []string{"0.8", "nan", "1"}, Stringify(s).Values())
	assert.Equal(t, Counts{{"0.8", 1}, {"NaN", 1}, {"1", 1}}, ValueCounts(s))

	_, ok := Map(s, func(v float64) float64 { return v * 2 }).At(1)
	assert.False(t, ok)
}

func TestDropNAKeepsLabels(t *testing.T) {
	s := FromNullInts("pos", []null.Int{null.IntFrom(10), null.NewInt(0, false), null.IntFrom(30)})
	d := s.DropNA()
	require.Equal(t, 2, d.Len())
	assert.Equal(t, []int64{10, 30}, d.Values())
	assert.Equal(t, "2", d.Label(1))
	assert.False(t, d.HasNulls())
}

func TestFilterAndHead(t *testing.T) {
	s := New("chrom", []string{"1", "23", "X", "24"})
	bad := s.Filter(Mask{false, true, false, true})
	assert.Equal(t, "23\n24", bad.String())
	assert.Equal(t, "23", bad.Head(1).String())
	assert.Equal(t, "1: 23", bad.Entry(0))
	assert.Equal(t, 0, bad.Head(-1).Len())
	assert.Equal(t, 2, bad.Head(10).Len())
}

func TestFilterPanicsOnShortMask(t *testing.T) {
	s := New("x", []int{1, 2})
	assert.Panics(t, func() { s.Filter(Mask{true}) })
}

func TestMask(t *testing.T) {
	m := Mask{true, false, true}
	assert.False(t, m.All())
	assert.True(t, m.Any())
	assert.Equal(t, 2, m.Count())
	assert.Equal(t, 1, m.Not().First())
	assert.Equal(t, Mask{true, false, false}, m.And(Mask{true, true, false}))
	assert.True(t, Mask{}.All())
	assert.Equal(t, -1, Mask{}.First())
}

func TestMatchIsStartAnchored(t *testing.T) {
	re := regexp.MustCompile(`rs\d+`)
	s := New("snp", []string{"rs123", "xrs9", "rs7abc"})
	assert.Equal(t, Mask{true, false, true}, Match(s, re))

	full := regexp.MustCompile(`^rs\d+$`)
	assert.Equal(t, Mask{true, false, false}, Match(s, full))
}

func TestMatchEndAnchorAllowsTrailingNewline(t *testing.T) {
	full := regexp.MustCompile(`^rs\d+$`)
	s := New("snp", []string{"rs123\n", "rs123\n\n", "rs123 "})
	assert.Equal(t, Mask{true, false, false}, Match(s, full))
}

func TestIsInAndUnique(t *testing.T) {
	s := FromNullStrings("source", []null.String{
		null.StringFrom("GWAS Catalog"),
		null.StringFrom("Other"),
		null.NewString("", false),
		null.StringFrom("GWAS Catalog"),
	})
	set := map[string]struct{}{"GWAS Catalog": {}}
	assert.Equal(t, Mask{true, false, false, true}, IsIn(s, set))
	assert.Equal(t, []string{"GWAS Catalog", "Other"}, Unique(s))
}

func TestValueCounts(t *testing.T) {
	s := New("chrom", []string{"23", "MT", "23", "24", "MT", "23"})
	c := ValueCounts(s)
	assert.Equal(t, Counts{{"23", 3}, {"MT", 2}, {"24", 1}}, c)
	assert.Equal(t, 6, c.Total())
	assert.Equal(t, "\"23\": 3\n\"MT\": 2\n\"24\": 1", c.String())
}

func TestStringify(t *testing.T) {
	s, err := NewWithNulls("chrom", []float64{1, 2.5, 0}, []bool{true, true, false})
	require.NoError(t, err)
	str := Stringify(s)
	assert.Equal(t, []string{"1", "2.5", "nan"}, str.Values())
	assert.False(t, str.HasNulls())
}

func TestMapKeepsNulls(t *testing.T) {
	s, err := NewWithNulls("pos", []int64{1, 0, 3}, []bool{true, false, true})
	require.NoError(t, err)
	doubled := Map(s, func(v int64) int64 { return v * 2 })
	assert.Equal(t, []int64{2, 0, 6}, doubled.Values())
	assert.True(t, doubled.IsNull(1))
}

func TestWithIndex(t *testing.T) {
	s := New("x", []int{1, 2})
	_, err := s.WithIndex([]string{"a"})
	assert.Error(t, err)

	labelled, err := s.WithIndex([]string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "b: 2", labelled.Entry(1))
	assert.Equal(t, "1", s.Label(1))
}

func TestNewWithNullsLengthMismatch(t *testing.T) {
	_, err := NewWithNulls("x", []int{1, 2}, []bool{true})
	assert.Error(t, err)
}

func TestGroupByNUnique(t *testing.T) {
	keys := New("snp", []string{"b", "a", "a", "b", "a"})
	vals := New("gene", []int{2, 1, 1, 2, 1})
	g, err := GroupBy(keys, vals)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, g.Keys())
	assert.Equal(t, 2, g.Len())
	assert.Equal(t, []int{1, 1, 1}, g.Group("a").Values())
	assert.Nil(t, g.Group("c"))

	n := g.NUnique()
	assert.Equal(t, []int{1, 1}, n.Values())
	assert.Equal(t, "a: 1", n.Entry(0))
}

func TestGroupByNullHandling(t *testing.T) {
	keys, err := NewWithNulls("snp", []string{"a", "", "b", "b"}, []bool{true, false, true, true})
	require.NoError(t, err)
	vals, err := NewWithNulls("gene", []string{"g1", "g2", "g3", ""}, []bool{true, true, true, false})
	require.NoError(t, err)

	g, err := GroupBy(keys, vals)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, g.Keys())

	b := g.Group("b")
	require.Equal(t, 2, b.Len())
	assert.False(t, b.IsNull(0))
	assert.True(t, b.IsNull(1))
	assert.Equal(t, []int{1, 1}, g.NUnique().Values())
}

func TestGroupByLengthMismatch(t *testing.T) {
	_, err := GroupBy(New("k", []string{"a"}), New("v", []int{1, 2}))
	assert.Error(t, err)
}
