// Package rules holds the fixed reference data that column checks compare
// against: the chromosome labels, the upstream GWAS sources and the
// identifier patterns. A Rules value is built once and never changes, so a
// single pointer can be shared by every check and every goroutine.
package rules

import (
	"fmt"
	"regexp"
	"strconv"
	"sync"

	"github.com/carbocation/pfx"
)

const (
	SNPIDPattern  = `^rs\d+$`
	GeneIDPattern = `^ENSG\d+$`
	EFOIDPattern  = `^EFO_\d+$`
)

// Config is the serializable form of Rules.
type Config struct {
	Chromosomes   []string `yaml:"chromosomes"`
	GWASSources   []string `yaml:"gwas_sources"`
	SNPIDPattern  string   `yaml:"snp_id_pattern"`
	GeneIDPattern string   `yaml:"gene_id_pattern"`
	EFOIDPattern  string   `yaml:"efo_id_pattern"`
}

// DefaultConfig: chromosomes 0 through 22 plus X and Y, and the GWAS Catalog
// as the only source.
func DefaultConfig() Config {
	chroms := make([]string, 0, 25)
	for i := 0; i <= 22; i++ {
		chroms = append(chroms, strconv.Itoa(i))
	}
	chroms = append(chroms, "X", "Y")

	return Config{
		Chromosomes:   chroms,
		GWASSources:   []string{"GWAS Catalog"},
		SNPIDPattern:  SNPIDPattern,
		GeneIDPattern: GeneIDPattern,
		EFOIDPattern:  EFOIDPattern,
	}
}

type Rules struct {
	cfg         Config
	chromosomes map[string]struct{}
	sources     map[string]struct{}
	snpID       *regexp.Regexp
	geneID      *regexp.Regexp
	efoID       *regexp.Regexp
}

// New validates cfg and compiles its patterns.
func New(cfg Config) (*Rules, error) {
	if len(cfg.Chromosomes) == 0 {
		return nil, fmt.Errorf("rules: no valid chromosomes configured")
	}
	if len(cfg.GWASSources) == 0 {
		return nil, fmt.Errorf("rules: no valid GWAS sources configured")
	}

	r := &Rules{
		cfg: Config{
			Chromosomes:   append([]string(nil), cfg.Chromosomes...),
			GWASSources:   append([]string(nil), cfg.GWASSources...),
			SNPIDPattern:  cfg.SNPIDPattern,
			GeneIDPattern: cfg.GeneIDPattern,
			EFOIDPattern:  cfg.EFOIDPattern,
		},
		chromosomes: toSet(cfg.Chromosomes),
		sources:     toSet(cfg.GWASSources),
	}

	var err error
	if r.snpID, err = compile("snp_id_pattern", cfg.SNPIDPattern); err != nil {
		return nil, err
	}
	if r.geneID, err = compile("gene_id_pattern", cfg.GeneIDPattern); err != nil {
		return nil, err
	}
	if r.efoID, err = compile("efo_id_pattern", cfg.EFOIDPattern); err != nil {
		return nil, err
	}

	return r, nil
}

var (
	defaultOnce  sync.Once
	defaultRules *Rules
)

// Default returns the shared Rules built from DefaultConfig.
func Default() *Rules {
	defaultOnce.Do(func() {
		r, err := New(DefaultConfig())
		if err != nil {
			panic(pfx.Err(err))
		}
		defaultRules = r
	})
	return defaultRules
}

// Config returns a copy of the configuration r was built from.
func (r *Rules) Config() Config {
	return Config{
		Chromosomes:   r.Chromosomes(),
		GWASSources:   r.GWASSources(),
		SNPIDPattern:  r.cfg.SNPIDPattern,
		GeneIDPattern: r.cfg.GeneIDPattern,
		EFOIDPattern:  r.cfg.EFOIDPattern,
	}
}

func (r *Rules) Chromosomes() []string {
	return append([]string(nil), r.cfg.Chromosomes...)
}

func (r *Rules) GWASSources() []string {
	return append([]string(nil), r.cfg.GWASSources...)
}

func (r *Rules) IsChromosome(chrom string) bool {
	_, ok := r.chromosomes[chrom]
	return ok
}

func (r *Rules) IsGWASSource(source string) bool {
	_, ok := r.sources[source]
	return ok
}

// ChromosomeSet returns a fresh set of the valid chromosome labels.
func (r *Rules) ChromosomeSet() map[string]struct{} {
	return toSet(r.cfg.Chromosomes)
}

// GWASSourceSet returns a fresh set of the valid GWAS source names.
func (r *Rules) GWASSourceSet() map[string]struct{} {
	return toSet(r.cfg.GWASSources)
}

func (r *Rules) SNPID() *regexp.Regexp  { return r.snpID }
func (r *Rules) GeneID() *regexp.Regexp { return r.geneID }
func (r *Rules) EFOID() *regexp.Regexp  { return r.efoID }

func compile(field, pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, fmt.Errorf("rules: %s is empty", field)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("rules: %s: %w", field, err)
	}
	return re, nil
}

func toSet(values []string) map[string]struct{} {
	out := make(map[string]struct{}, len(values))
	for _, v := range values {
		out[v] = struct{}{}
	}
	return out
}
