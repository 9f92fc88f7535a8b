// Package chrpos knows the length of each chromosome in the supported
// reference assemblies, so that positions can be checked against the end of
// their chromosome.
package chrpos

import (
	"bytes"
	"embed"
	"encoding/csv"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/carbocation/pfx"
)

//go:embed lookups/*
var embeddedTemplates embed.FS

// Assemblies lists the assembly names that Lengths understands.
func Assemblies() []string {
	entries, err := embeddedTemplates.ReadDir("lookups")
	if err != nil {
		return nil
	}

	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name())
	}
	sort.Strings(out)
	return out
}

// Lengths maps each autosome, X and Y of the assembly (grch37 or grch38) to
// its length in base pairs.
func Lengths(assembly string) (map[string]int, error) {
	fileBytes, err := embeddedTemplates.ReadFile("lookups/" + strings.ToLower(assembly))
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("unknown assembly %q (known: %s)", assembly, strings.Join(Assemblies(), ", ")))
	}

	cr := csv.NewReader(bytes.NewReader(fileBytes))
	cr.Comma = '\t'
	entries, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(err)
	}

	out := make(map[string]int)
	header := make(map[string]int)

	for i, v := range entries {
		if i == 0 {
			for key, name := range v {
				header[name] = key
			}
			continue
		}

		name := v[header["name"]]

		// Only autosomes, chrX, and chrY
		if _, err := strconv.Atoi(name); err != nil && name != "X" && name != "Y" {
			continue
		}

		end, err := strconv.Atoi(v[header["chromEnd"]])
		if err != nil {
			return nil, pfx.Err(fmt.Errorf("%s: chromosome %s: %w", assembly, name, err))
		}
		out[name] = end
	}

	return out, nil
}

// Length returns the length of one chromosome. A leading "chr" is ignored.
func Length(assembly, chrom string) (int, error) {
	lengths, err := Lengths(assembly)
	if err != nil {
		return 0, err
	}

	end, ok := lengths[strings.TrimPrefix(chrom, "chr")]
	if !ok {
		return 0, fmt.Errorf("chromosome %q is not part of %s", chrom, assembly)
	}

	return end, nil
}
