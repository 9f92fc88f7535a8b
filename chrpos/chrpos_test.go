package chrpos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengths(t *testing.T) {
	for _, v := range []struct {
		assembly string
		chrom    string
		length   int
	}{
		{"grch37", "1", 249250621},
		{"grch37", "X", 155270560},
		{"grch38", "1", 248956422},
		{"grch38", "22", 50818468},
		{"GRCh38", "chrY", 57227415},
	} {
		got, err := Length(v.assembly, v.chrom)
		require.NoError(t, err)
		assert.Equal(t, v.length, got, "%s %s", v.assembly, v.chrom)
	}
}

func TestLengthsSkipsMitochondria(t *testing.T) {
	lengths, err := Lengths("grch38")
	require.NoError(t, err)
	assert.Len(t, lengths, 24)
	assert.NotContains(t, lengths, "MT")
}

func TestUnknownAssemblyOrChromosome(t *testing.T) {
	_, err := Lengths("hg17")
	assert.Error(t, err)

	_, err = Length("grch37", "0")
	assert.Error(t, err)
}

func TestAssemblies(t *testing.T) {
	assert.Equal(t, []string{"grch37", "grch38"}, Assemblies())
}
