package table

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Map columns in the BIM file to their positions
const (
	Chromosome int = iota
	VariantID
	Morgans
	Coordinate
	Allele1
	Allele2
)

// BIMColumns are the column names a BIM table is given.
var BIMColumns = []string{"chrom", "snp", "cm", "pos", "a1", "a2"}

type BIMRow struct {
	Chromosome string
	Coordinate uint32 // Labeled "position" by most applications
	VariantID  string // E.g., RSID
	Morgans    string
	Allele1    string // Can contain > 1 character
	Allele2    string // Can contain > 1 character
}

func (r BIMRow) fields() []string {
	return []string{
		r.Chromosome,
		r.VariantID,
		r.Morgans,
		strconv.FormatUint(uint64(r.Coordinate), 10),
		r.Allele1,
		r.Allele2,
	}
}

// ParseBIMLine parses one whitespace-delimited BIM line.
func ParseBIMLine(line string) (BIMRow, error) {
	cols := strings.Fields(line)
	if len(cols) < Allele2+1 {
		return BIMRow{}, fmt.Errorf("BIM line has %d fields, want %d", len(cols), Allele2+1)
	}

	coord64, err := strconv.ParseUint(cols[Coordinate], 10, 32)
	if err != nil {
		return BIMRow{}, err
	}

	return BIMRow{
		Chromosome: cols[Chromosome],
		VariantID:  cols[VariantID],
		Morgans:    cols[Morgans],
		Coordinate: uint32(coord64),
		Allele1:    cols[Allele1],
		Allele2:    cols[Allele2],
	}, nil
}

// ReadBIM reads a headerless PLINK BIM file into a table with BIMColumns.
func ReadBIM(name string, r io.Reader) (*Table, error) {
	scanner := bufio.NewScanner(r)
	rows := make([][]string, 0)

	for line := 1; scanner.Scan(); line++ {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		row, err := ParseBIMLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", name, line, err)
		}
		rows = append(rows, row.fields())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return New(name, BIMColumns, rows)
}
