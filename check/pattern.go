package check

import (
	"regexp"

	"github.com/carbocation/genocheck/rules"
	"github.com/carbocation/genocheck/series"
)

const (
	RuleRegex  = "regex"
	RuleGeneID = "gene_id"
	RuleSNPID  = "snp_id"
	RuleEFOID  = "efo_id"
)

// MatchesRegex checks that every value matches re starting at its first
// character. Whether the match must also reach the end of the value is up to
// re. Nulls fail.
func MatchesRegex(s *series.Series[string], re *regexp.Regexp) *Failure {
	return matches(RuleRegex, s, re)
}

// MatchesPattern compiles pattern and runs MatchesRegex. A pattern that does
// not compile is returned as an error.
func MatchesPattern(s *series.Series[string], pattern string) (*Failure, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return MatchesRegex(s, re), nil
}

// GeneID checks for Ensembl gene identifiers (ENSG followed by digits).
func GeneID(s *series.Series[string], r *rules.Rules) *Failure {
	return matches(RuleGeneID, s, r.GeneID())
}

// SNPID checks for reference SNP identifiers (rs followed by digits).
func SNPID(s *series.Series[string], r *rules.Rules) *Failure {
	return matches(RuleSNPID, s, r.SNPID())
}

// EFOID checks for Experimental Factor Ontology identifiers (EFO_ followed by
// digits).
func EFOID(s *series.Series[string], r *rules.Rules) *Failure {
	return matches(RuleEFOID, s, r.EFOID())
}

func matches(rule string, s *series.Series[string], re *regexp.Regexp) *Failure {
	match := series.Match(s, re)
	if match.All() {
		return nil
	}
	return firstOffender(rule, s.Name(), s.Filter(match.Not()).Head(1).String())
}
