package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/carbocation/genocheck/plan"
	"github.com/carbocation/genocheck/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/guregu/null.v3"
)

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []plan.Result{
		{Name: "snp_id/ld_snp_rsID", Column: "ld_snp_rsID", Rule: "snp_id", Passed: true},
		{Name: "chromosome/chrom", Column: "chrom", Rule: "chromosome", Detail: "23"},
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "check\tcolumn\trule\tstatus\tdetail", lines[0])
	assert.Equal(t, "snp_id/ld_snp_rsID\tld_snp_rsID\tsnp_id\tPASS\t", lines[1])
	assert.Equal(t, "chromosome/chrom\tchrom\tchromosome\tFAIL\t23", lines[2])
}

func TestRows(t *testing.T) {
	rows := Rows([]plan.Result{{Name: "a", Passed: false, Detail: "x"}})
	require.Len(t, rows, 1)
	assert.Equal(t, StatusFail, rows[0].Status)
}

func TestSummarize(t *testing.T) {
	s := series.FromNullFloats("r2", []null.Float{
		null.FloatFrom(0.7),
		null.NewFloat(0, false),
		null.FloatFrom(0.9),
		null.FloatFrom(0.8),
	})

	sum, err := Summarize(s)
	require.NoError(t, err)
	assert.Equal(t, "r2", sum.Column)
	assert.Equal(t, 4, sum.N)
	assert.Equal(t, 1, sum.Nulls)
	assert.Equal(t, 0.7, sum.Min)
	assert.Equal(t, 0.9, sum.Max)
	assert.InDelta(t, 0.8, sum.Mean, 1e-12)
	assert.InDelta(t, 0.8, sum.Median, 1e-12)
	assert.InDelta(t, 0.1, sum.SD, 1e-12)
}

func TestSummarizeAllNull(t *testing.T) {
	s := series.FromNullFloats("r2", []null.Float{null.NewFloat(0, false)})
	sum, err := Summarize(s)
	require.NoError(t, err)
	assert.Equal(t, 1, sum.Nulls)
	assert.Zero(t, sum.Max)
	assert.Zero(t, sum.SD)
}

func TestWriteSummaries(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummaries(&buf, []Summary{{Column: "r2", N: 2, Min: 0.5, Max: 1, Mean: 0.75, Median: 0.75}}))
	assert.True(t, strings.HasPrefix(buf.String(), "column\tn\tnulls\tmin\tmax\tmean\tmedian\tsd\n"))
	assert.Contains(t, buf.String(), "r2\t2\t0\t0.5\t1\t0.75\t0.75\t0")
}
