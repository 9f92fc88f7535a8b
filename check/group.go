package check

import (
	"fmt"

	"github.com/carbocation/genocheck/series"
	"golang.org/x/exp/constraints"
)

const (
	RuleUniquePerGroup   = "unique_per_group"
	RuleWithinChromosome = "within_chromosome"
)

// UniquePerGroup checks that each group holds exactly one distinct non-null
// value. g1=[1, 1, 1], g2=[2, 2] passes; g1=[1, 2], g2=[2, 2] fails on g1.
func UniquePerGroup[K constraints.Ordered, T comparable](g *series.Grouped[K, T]) *Failure {
	counts := g.NUnique()

	one := make(series.Mask, counts.Len())
	for i := range one {
		one[i] = counts.Value(i) == 1
	}
	if one.All() {
		return nil
	}

	return firstOffender(RuleUniquePerGroup, g.Name(), counts.Filter(one.Not()).Entry(0))
}

// WithinChromosome checks that each position lies in [1, length] of the
// chromosome on the same row. lengths usually comes from chrpos.Lengths.
// Chromosomes missing from lengths, and nulls in either column, fail.
func WithinChromosome[T constraints.Integer](chroms *series.Series[string], positions *series.Series[T], lengths map[string]int) *Failure {
	if chroms.Len() != positions.Len() {
		return firstOffender(RuleWithinChromosome, positions.Name(),
			fmt.Sprintf("%d chromosomes but %d positions", chroms.Len(), positions.Len()))
	}

	for i := 0; i < positions.Len(); i++ {
		chrom, ok := chroms.At(i)
		if !ok {
			return firstOffender(RuleWithinChromosome, positions.Name(),
				fmt.Sprintf("%s:%s unknown chromosome", chroms.Format(i), positions.Format(i)))
		}

		end, known := lengths[chrom]
		if !known {
			return firstOffender(RuleWithinChromosome, positions.Name(),
				fmt.Sprintf("%s:%s unknown chromosome", chrom, positions.Format(i)))
		}

		pos, ok := positions.At(i)
		if !ok || pos < 1 || uint64(pos) > uint64(end) {
			return firstOffender(RuleWithinChromosome, positions.Name(),
				fmt.Sprintf("%s:%s not in [1, %d]", chrom, positions.Format(i), end))
		}
	}

	return nil
}
