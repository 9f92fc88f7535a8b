// Package plan describes a battery of column checks in YAML and runs it
// against a table.
//
//	checks:
//	  - column: ld_snp_rsID
//	    rule: snp_id
//	  - column: r2
//	    rule: in_range
//	    low: 0.7
//	    high: 1
//	  - column: gene_id
//	    rule: unique_per_group
//	    group_by: ld_snp_rsID
package plan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/carbocation/genocheck/check"
	"github.com/carbocation/genocheck/chrpos"
	"github.com/carbocation/pfx"
	"gopkg.in/yaml.v3"
)

type Plan struct {
	Checks []Check `yaml:"checks"`
}

type Check struct {
	Name        string   `yaml:"name"`
	Column      string   `yaml:"column"`
	Rule        string   `yaml:"rule"`
	Low         *float64 `yaml:"low"`
	High        *float64 `yaml:"high"`
	AllowNA     bool     `yaml:"allow_na"`
	Pattern     string   `yaml:"pattern"`
	GroupBy     string   `yaml:"group_by"`
	ChromColumn string   `yaml:"chrom_column"`
	Assembly    string   `yaml:"assembly"`
}

// Label is the check's name, or rule/column when it has none.
func (c Check) Label() string {
	if c.Name != "" {
		return c.Name
	}
	return c.Rule + "/" + c.Column
}

var knownRules = map[string]struct{}{
	check.RuleInRange:           {},
	check.RuleNotInRange:        {},
	check.RuleRegex:             {},
	check.RuleGeneID:            {},
	check.RuleSNPID:             {},
	check.RuleEFOID:             {},
	check.RuleGenomicCoordinate: {},
	check.RuleChromosome:        {},
	check.RuleGWASSource:        {},
	check.RuleUniquePerGroup:    {},
	check.RuleWithinChromosome:  {},
}

// Validate reports the first check that is missing a field its rule needs.
func (p *Plan) Validate() error {
	if len(p.Checks) == 0 {
		return errors.New("plan has no checks")
	}

	for i, c := range p.Checks {
		if err := c.validate(); err != nil {
			return fmt.Errorf("check %d (%s): %w", i+1, c.Label(), err)
		}
	}

	return nil
}

func (c Check) validate() error {
	if c.Column == "" {
		return errors.New("column is required")
	}
	if _, ok := knownRules[c.Rule]; !ok {
		return fmt.Errorf("unknown rule %q", c.Rule)
	}

	switch c.Rule {
	case check.RuleInRange, check.RuleNotInRange:
		if c.Low == nil || c.High == nil {
			return errors.New("low and high are required")
		}
	case check.RuleRegex:
		if c.Pattern == "" {
			return errors.New("pattern is required")
		}
		if _, err := regexp.Compile(c.Pattern); err != nil {
			return err
		}
	case check.RuleUniquePerGroup:
		if c.GroupBy == "" {
			return errors.New("group_by is required")
		}
	case check.RuleWithinChromosome:
		if c.ChromColumn == "" {
			return errors.New("chrom_column is required")
		}
		if _, err := chrpos.Lengths(c.assembly()); err != nil {
			return err
		}
	}

	return nil
}

func (c Check) assembly() string {
	if c.Assembly == "" {
		return DefaultAssembly
	}
	return c.Assembly
}

// DefaultAssembly is used by within_chromosome checks that name none.
var DefaultAssembly = "grch38"

// Parse reads and validates a YAML plan. Unknown fields are an error.
func Parse(r io.Reader) (*Plan, error) {
	p := &Plan{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(p); err != nil && !errors.Is(err, io.EOF) {
		return nil, pfx.Err(err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

func LoadFile(path string) (*Plan, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	p, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}
