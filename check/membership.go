package check

import (
	"github.com/carbocation/genocheck/rules"
	"github.com/carbocation/genocheck/series"
)

const (
	RuleChromosome = "chromosome"
	RuleGWASSource = "gwas_source"
)

// Chromosome checks that every value, rendered as a string, is a valid
// chromosome label. Nulls render as "nan" and are therefore invalid. On
// failure the detail is a frequency table of every invalid label.
func Chromosome[T any](s *series.Series[T], r *rules.Rules) *Failure {
	return membership(RuleChromosome, series.Stringify(s), r.ChromosomeSet())
}

// GWASSource checks that every value names a known upstream GWAS source.
// Nulls are invalid.
func GWASSource(s *series.Series[string], r *rules.Rules) *Failure {
	return membership(RuleGWASSource, s, r.GWASSourceSet())
}

func membership(rule string, s *series.Series[string], valid map[string]struct{}) *Failure {
	allValid := !s.HasNulls()
	for _, v := range series.Unique(s) {
		if _, ok := valid[v]; !ok {
			allValid = false
			break
		}
	}
	if allValid {
		return nil
	}

	invalid := s.Filter(series.IsIn(s, valid).Not())
	return frequencyTable(rule, s.Name(), series.ValueCounts(invalid))
}
