// Package table loads tabular genomics output (delimited text, PLINK BIM
// files, or BigQuery results) and hands out its columns as series.
package table

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"path"
	"strconv"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/genocheck"
	"github.com/carbocation/genocheck/series"
	"github.com/carbocation/pfx"
	"gopkg.in/guregu/null.v3"
)

// NullTokens are the cell values read as missing.
var NullTokens = []string{"", "NA", "nan", "NaN", "None", "null"}

type Table struct {
	name   string
	header []string
	cols   map[string]int
	rows   [][]string
}

// New builds a table from a header and rows. Every row must be as wide as
// the header and header names must be unique.
func New(name string, header []string, rows [][]string) (*Table, error) {
	t := &Table{
		name:   name,
		header: append([]string(nil), header...),
		cols:   make(map[string]int, len(header)),
		rows:   rows,
	}

	for i, h := range header {
		if _, dup := t.cols[h]; dup {
			return nil, fmt.Errorf("%s: duplicate column %q", name, h)
		}
		t.cols[h] = i
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return nil, fmt.Errorf("%s: row %d has %d fields, header has %d", name, i+1, len(row), len(header))
		}
	}

	return t, nil
}

// Read parses delimited text whose first row is the header.
func Read(name string, r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.LazyQuotes = true
	cr.FieldsPerRecord = -1

	entries, err := cr.ReadAll()
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", name, err))
	}

	if len(entries) < 1 {
		return nil, fmt.Errorf("%s: no header row", name)
	}

	return New(name, entries[0], entries[1:])
}

// Open reads the table at path, which may be local or gs://, and may be
// gzip, bzip2, xz, zip or zlib compressed. Files ending in .bim are parsed as
// PLINK BIM files; everything else is delimited text with a header, and the
// delimiter is detected. client may be nil for local paths.
func Open(ctx context.Context, filePath string, client *storage.Client) (*Table, error) {
	rs, _, err := genocheck.OpenSeeker(ctx, filePath, client)
	if err != nil {
		return nil, err
	}

	rc, _, err := genocheck.MaybeDecompress(rs)
	if err != nil {
		rs.Close()
		return nil, pfx.Err(fmt.Errorf("%s: %w", filePath, err))
	}
	defer rc.Close()

	body, err := io.ReadAll(rc)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %w", filePath, err))
	}

	name := path.Base(filePath)
	if isBIM(name) {
		return ReadBIM(name, bytes.NewReader(body))
	}

	delim := genocheck.DetermineDelimiter(bytes.NewReader(body), '\t')

	return Read(name, bytes.NewReader(body), delim)
}

func isBIM(name string) bool {
	for _, ext := range []string{".gz", ".bz2", ".xz", ".zip", ".z"} {
		name = strings.TrimSuffix(name, ext)
	}
	return strings.HasSuffix(strings.ToLower(name), ".bim")
}

func (t *Table) Name() string { return t.name }

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) Columns() []string {
	return append([]string(nil), t.header...)
}

func (t *Table) HasColumn(col string) bool {
	_, ok := t.cols[col]
	return ok
}

// Column returns the raw cells of col.
func (t *Table) Column(col string) ([]string, error) {
	idx, ok := t.cols[col]
	if !ok {
		return nil, fmt.Errorf("%s: no column %q (have %s)", t.name, col, strings.Join(t.header, ", "))
	}

	out := make([]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// IsNull reports whether a cell is one of the NullTokens, ignoring case and
// surrounding space.
func IsNull(cell string) bool {
	cell = strings.TrimSpace(cell)
	for _, tok := range NullTokens {
		if strings.EqualFold(cell, tok) {
			return true
		}
	}
	return false
}

// Strings returns col as a string series with NullTokens as nulls.
func (t *Table) Strings(col string) (*series.Series[string], error) {
	cells, err := t.Column(col)
	if err != nil {
		return nil, err
	}

	values := make([]null.String, len(cells))
	for i, cell := range cells {
		if IsNull(cell) {
			continue
		}
		values[i] = null.StringFrom(cell)
	}

	return series.FromNullStrings(col, values), nil
}

// Floats returns col as a float series. Cells that are neither null nor a
// number are an error.
func (t *Table) Floats(col string) (*series.Series[float64], error) {
	cells, err := t.Column(col)
	if err != nil {
		return nil, err
	}

	values := make([]null.Float, len(cells))
	for i, cell := range cells {
		if IsNull(cell) {
			continue
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
		if err != nil {
			return nil, t.cellError(col, i, cell, err)
		}
		values[i] = null.FloatFrom(v)
	}

	return series.FromNullFloats(col, values), nil
}

// Ints returns col as an integer series. Integral floats such as "1200.0",
// which appear when a writer promoted an integer column with missing values,
// are accepted.
func (t *Table) Ints(col string) (*series.Series[int64], error) {
	cells, err := t.Column(col)
	if err != nil {
		return nil, err
	}

	values := make([]null.Int, len(cells))
	for i, cell := range cells {
		if IsNull(cell) {
			continue
		}
		v, err := parseInt(strings.TrimSpace(cell))
		if err != nil {
			return nil, t.cellError(col, i, cell, err)
		}
		values[i] = null.IntFrom(v)
	}

	return series.FromNullInts(col, values), nil
}

func parseInt(cell string) (int64, error) {
	v, err := strconv.ParseInt(cell, 10, 64)
	if err == nil {
		return v, nil
	}

	f, ferr := strconv.ParseFloat(cell, 64)
	if ferr != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, err
	}
	if f > math.MaxInt64 || f < math.MinInt64 {
		return 0, errors.New("value out of range")
	}
	return int64(f), nil
}

func (t *Table) cellError(col string, row int, cell string, err error) error {
	return fmt.Errorf("%s: column %q row %d: cannot parse %q: %w", t.name, col, row+1, cell, err)
}
