package table

import (
	"bytes"
	"compress/gzip"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const postgapTSV = `ld_snp_rsID	chrom	GRCh38_pos	gene_id	r2	gwas_source
rs1	1	1000	ENSG00000001	0.9	GWAS Catalog
rs2	X	2000.0	ENSG00000002	NA	GWAS Catalog
rs3	22		ENSG00000003	1	None
`

func TestReadColumns(t *testing.T) {
	tbl, err := Read("postgap", strings.NewReader(postgapTSV), '\t')
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.HasColumn("r2"))
	assert.Equal(t, "ld_snp_rsID", tbl.Columns()[0])

	snps, err := tbl.Strings("ld_snp_rsID")
	require.NoError(t, err)
	assert.Equal(t, []string{"rs1", "rs2", "rs3"}, snps.Values())

	r2, err := tbl.Floats("r2")
	require.NoError(t, err)
	assert.Equal(t, "r2", r2.Name())
	assert.True(t, r2.IsNull(1))
	assert.Equal(t, 1.0, r2.Value(2))

	pos, err := tbl.Ints("GRCh38_pos")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), pos.Value(1))
	assert.True(t, pos.IsNull(2))

	sources, err := tbl.Strings("gwas_source")
	require.NoError(t, err)
	assert.True(t, sources.IsNull(2))
}

func TestColumnErrors(t *testing.T) {
	tbl, err := Read("postgap", strings.NewReader(postgapTSV), '\t')
	require.NoError(t, err)

	_, err = tbl.Strings("missing")
	assert.Error(t, err)

	_, err = tbl.Floats("gene_id")
	assert.ErrorContains(t, err, `row 1`)

	_, err = tbl.Ints("r2")
	assert.Error(t, err)
}

func TestNewRejectsBadShapes(t *testing.T) {
	_, err := New("x", []string{"a", "a"}, nil)
	assert.Error(t, err)

	_, err = New("x", []string{"a", "b"}, [][]string{{"1"}})
	assert.Error(t, err)

	_, err = Read("x", strings.NewReader(""), '\t')
	assert.Error(t, err)
}

func TestIsNull(t *testing.T) {
	for _, cell := range []string{"", " ", "NA", "nan", "NaN", "NAN", "Nan", "None", "none", "null", "NULL"} {
		assert.True(t, IsNull(cell), "%q", cell)
	}
	for _, cell := range []string{"0", "n/a", "NULL?", "rs1"} {
		assert.False(t, IsNull(cell), "%q", cell)
	}
}

func TestFloatsTreatsNaNSpellingsAsNull(t *testing.T) {
	tbl, err := New("t", []string{"r2"}, [][]string{{"0.9"}, {"NAN"}, {"Nan"}, {"+NaN"}})
	require.NoError(t, err)

	r2, err := tbl.Floats("r2")
	require.NoError(t, err)
	assert.Equal(t, 3, r2.Len()-r2.DropNA().Len())
	assert.Equal(t, []float64{0.9}, r2.DropNA().Values())
}

func TestParseInt(t *testing.T) {
	v, err := parseInt("1200.0")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), v)

	_, err = parseInt("12.5")
	assert.Error(t, err)

	_, err = parseInt("1e30")
	assert.Error(t, err)
}

func TestOpenCompressedFile(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte(postgapTSV))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := filepath.Join(t.TempDir(), "postgap.tsv.gz")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	tbl, err := Open(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, "postgap.tsv.gz", tbl.Name())
	assert.Equal(t, 3, tbl.Len())
	assert.Len(t, tbl.Columns(), 6)
}

func TestBIM(t *testing.T) {
	const bim = "1\trs123\t0\t10583\tA\tG\n" +
		"X\trs456\t0.1\t2781479\tC\tT\n\n"

	tbl, err := ReadBIM("chr.bim", strings.NewReader(bim))
	require.NoError(t, err)
	assert.Equal(t, BIMColumns, tbl.Columns())
	assert.Equal(t, 2, tbl.Len())

	pos, err := tbl.Ints("pos")
	require.NoError(t, err)
	assert.Equal(t, []int64{10583, 2781479}, pos.Values())

	_, err = ReadBIM("bad.bim", strings.NewReader("1 rs1 0\n"))
	assert.Error(t, err)

	_, err = ParseBIMLine("1 rs1 0 -5 A G")
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "chr.bim")
	require.NoError(t, os.WriteFile(path, []byte(bim), 0o644))
	tbl, err = Open(context.Background(), path, nil)
	require.NoError(t, err)
	assert.Equal(t, BIMColumns, tbl.Columns())
}

func TestIsBIM(t *testing.T) {
	assert.True(t, isBIM("a.bim"))
	assert.True(t, isBIM("a.BIM.gz"))
	assert.False(t, isBIM("a.tsv"))
}

func TestBigQueryCell(t *testing.T) {
	assert.Equal(t, "", bigQueryCell(nil))
	assert.Equal(t, "0.5", bigQueryCell(0.5))
	assert.Equal(t, "12", bigQueryCell(int64(12)))
	assert.Equal(t, "rs1", bigQueryCell("rs1"))
}
