package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sequencer/fragment"
	"github.com/katalvlaran/sequencer/state"
)

// quietConfig writes a configuration that keeps the console silent.
func quietConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: 1\nlogging:\n  console:\n    level: none\n"), 0644))
	return path
}

func writeReads(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "reads.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func run(args ...string) (string, error) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(state.ContextWithEnv(context.Background()), append([]string{"sequencer"}, args...))
	return out.String(), err
}

func TestAssembleCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir)
	src := writeReads(t, dir, "ATTAGC\nTAGCA\nGCAT\n")
	dst := filepath.Join(dir, "out.txt")

	_, err := run("-c", cfg, "assemble", "--workers", "2", "--trace", src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "ATTAGCAT\n", string(data))
}

func TestAssembleCommand_NoCacheFASTA(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir)
	src := writeReads(t, dir, ">a\nGAT\n>b\nATCC\n>c\nATG\n")
	dst := filepath.Join(dir, "out.txt")

	_, err := run("-c", cfg, "assemble", "--format", "fasta", "--no-cache", src, dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "GATG\nATCC\n", string(data))
}

func TestAssembleCommand_InvalidReads(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir)
	src := writeReads(t, dir, "ACGT\nACGU\n")

	_, err := run("-c", cfg, "assemble", src, filepath.Join(dir, "out.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, fragment.ErrInvalidAlphabet)
	assert.NoFileExists(t, filepath.Join(dir, "out.txt"))
}

func TestAssembleCommand_BadFormat(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir)
	src := writeReads(t, dir, "ACGT\n")

	_, err := run("-c", cfg, "assemble", "--format", "fastq", src)
	assert.Error(t, err)
}

func TestOverlapCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir)
	src := writeReads(t, dir, "ATTAGC\nTAGCA\nGCAT\n")

	out, err := run("-c", cfg, "overlap", src)
	require.NoError(t, err)
	assert.Equal(t, "0 4 2\n1 0 3\n2 1 0\n", out)
}

func TestDumpConfigCommand(t *testing.T) {
	dir := t.TempDir()
	cfg := quietConfig(t, dir)
	dst := filepath.Join(dir, "dump.yaml")

	_, err := run("-c", cfg, "dumpconfig", dst)
	require.NoError(t, err)

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level: none")
	assert.Contains(t, string(data), "format: auto")
}

func TestWriteFragments(t *testing.T) {
	var buf bytes.Buffer
	err := writeFragments(&buf, []fragment.Fragment{fragment.MustNew("ACGT"), {}, fragment.MustNew("GG")})
	require.NoError(t, err)
	assert.Equal(t, "ACGT\n\nGG\n", buf.String())
}
