package loader_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/katalvlaran/sequencer/fragment"
	"github.com/katalvlaran/sequencer/loader"
)

func strs(fs []fragment.Fragment) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.String()
	}
	return out
}

// TestRead_Lines reads one fragment per line, skipping blanks and comments.
func TestRead_Lines(t *testing.T) {
	in := "# reads\nATTAGC\n\n  TAGCA  \nGCAT\n"
	fs, err := loader.Read(strings.NewReader(in), loader.FormatLines)
	require.NoError(t, err)
	assert.Equal(t, []string{"ATTAGC", "TAGCA", "GCAT"}, strs(fs))
}

// TestRead_FASTA concatenates multi-line records and keeps empty ones.
func TestRead_FASTA(t *testing.T) {
	in := `; sample
>r1 first read
ATTA
GC
>r2
TAGCA

>empty
>r3
GCAT
`
	fs, err := loader.Read(strings.NewReader(in), loader.FormatFASTA)
	require.NoError(t, err)
	assert.Equal(t, []string{"ATTAGC", "TAGCA", "", "GCAT"}, strs(fs))
}

// TestRead_AutoDetect picks the format from the first non-blank line.
func TestRead_AutoDetect(t *testing.T) {
	fs, err := loader.Read(strings.NewReader("\n>r1\nAC\nGT\n"), loader.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT"}, strs(fs))

	fs, err = loader.Read(strings.NewReader("AC\nGT\n"), loader.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"AC", "GT"}, strs(fs))

	fs, err = loader.Read(strings.NewReader(""), loader.FormatAuto)
	require.NoError(t, err)
	assert.Empty(t, fs)
}

// TestRead_InvalidRecords aggregates every bad record instead of stopping at the first.
func TestRead_InvalidRecords(t *testing.T) {
	in := "ACGT\nACGU\nGGCC\nacgt\n"
	fs, err := loader.Read(strings.NewReader(in), loader.FormatLines)
	require.Error(t, err)
	assert.Nil(t, fs)
	assert.ErrorIs(t, err, fragment.ErrInvalidAlphabet)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var re *loader.RecordError
	require.True(t, errors.As(errs[0], &re))
	assert.Equal(t, 2, re.Line)
	var ae *fragment.AlphabetError
	require.True(t, errors.As(re, &ae))
	assert.Equal(t, 'U', ae.Symbol)

	require.True(t, errors.As(errs[1], &re))
	assert.Equal(t, 4, re.Line)
	assert.Contains(t, re.Error(), "line 4")
}

// TestRead_InvalidFASTA names the offending record and flags headerless data.
func TestRead_InvalidFASTA(t *testing.T) {
	in := "ACGT\n>good\nACGT\n>bad\nACNN\n"
	_, err := loader.Read(strings.NewReader(in), loader.FormatFASTA)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs[0], loader.ErrMissingHeader)

	var re *loader.RecordError
	require.True(t, errors.As(errs[1], &re))
	assert.Equal(t, "bad", re.Name)
	assert.Equal(t, 4, re.Line)
	assert.ErrorIs(t, re, fragment.ErrInvalidAlphabet)
}

// TestRead_UpperCase folds soft-masked input only when asked.
func TestRead_UpperCase(t *testing.T) {
	_, err := loader.Read(strings.NewReader("acgt\n"), loader.FormatLines)
	require.ErrorIs(t, err, fragment.ErrInvalidAlphabet)

	fs, err := loader.Read(strings.NewReader("acgt\n"), loader.FormatLines, loader.WithUpperCase(true))
	require.NoError(t, err)
	assert.Equal(t, []string{"ACGT"}, strs(fs))
}

// TestRead_BadFormat rejects out-of-range formats.
func TestRead_BadFormat(t *testing.T) {
	_, err := loader.Read(strings.NewReader("ACGT"), loader.Format(9))
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)
}

// TestReadFile reads from disk and reports missing files.
func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.fa")
	require.NoError(t, os.WriteFile(path, []byte(">a\nCAA\n>b\nAAG\n"), 0o644))

	fs, err := loader.ReadFile(path, loader.FormatAuto)
	require.NoError(t, err)
	assert.Equal(t, []string{"CAA", "AAG"}, strs(fs))

	_, err = loader.ReadFile(filepath.Join(t.TempDir(), "missing.txt"), loader.FormatAuto)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestParseFormat covers names, case folding and text round trip.
func TestParseFormat(t *testing.T) {
	for i, name := range loader.FormatNames() {
		f, err := loader.ParseFormat(strings.ToUpper(name))
		require.NoError(t, err)
		assert.Equal(t, loader.Format(i), f)
		assert.Equal(t, name, f.String())
	}

	_, err := loader.ParseFormat("fastq")
	assert.ErrorIs(t, err, loader.ErrUnknownFormat)

	var f loader.Format
	require.NoError(t, f.UnmarshalText([]byte("fasta")))
	assert.Equal(t, loader.FormatFASTA, f)
	text, err := f.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "fasta", string(text))
	assert.Error(t, f.UnmarshalText([]byte("nope")))
}
