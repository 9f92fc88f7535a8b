package report

import (
	"io"

	"github.com/carbocation/genocheck/series"
	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the spread of a numeric column. Min through Median cover
// the non-null values only and are zero when there are none. SD is the sample
// standard deviation and needs at least two values.
type Summary struct {
	Column string  `csv:"column"`
	N      int     `csv:"n"`
	Nulls  int     `csv:"nulls"`
	Min    float64 `csv:"min"`
	Max    float64 `csv:"max"`
	Mean   float64 `csv:"mean"`
	Median float64 `csv:"median"`
	SD     float64 `csv:"sd"`
}

func Summarize(s *series.Series[float64]) (Summary, error) {
	present := s.DropNA()
	out := Summary{
		Column: s.Name(),
		N:      s.Len(),
		Nulls:  s.Len() - present.Len(),
	}
	if present.Len() == 0 {
		return out, nil
	}

	data := stats.Float64Data(present.Values())

	var err error
	if out.Min, err = data.Min(); err != nil {
		return out, err
	}
	if out.Max, err = data.Max(); err != nil {
		return out, err
	}
	if out.Mean, err = data.Mean(); err != nil {
		return out, err
	}
	if out.Median, err = data.Median(); err != nil {
		return out, err
	}
	if present.Len() > 1 {
		out.SD = stat.StdDev(present.Values(), nil)
	}

	return out, nil
}

// WriteSummaries renders summaries as a TSV with a header row.
func WriteSummaries(w io.Writer, summaries []Summary) error {
	rows := make([]*Summary, len(summaries))
	for i := range summaries {
		rows[i] = &summaries[i]
	}
	return marshalTSV(w, rows)
}
