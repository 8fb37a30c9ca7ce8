package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sequencer/loader"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 1, cfg.Assembly.Workers)
	assert.True(t, cfg.Assembly.Cache)
	assert.Equal(t, loader.FormatAuto, cfg.Input.Format)
	assert.False(t, cfg.Input.UpperCase)
	assert.Equal(t, "normal", cfg.Logging.ConsoleLogger.Level)
	assert.Equal(t, "none", cfg.Logging.FileLogger.Level)
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
assembly:
  workers: 8
  cache: false
input:
  format: fasta
  upper_case: true
logging:
  console:
    level: debug
`)

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Assembly.Workers)
	assert.False(t, cfg.Assembly.Cache)
	assert.Equal(t, loader.FormatFASTA, cfg.Input.Format)
	assert.True(t, cfg.Input.UpperCase)
	assert.Equal(t, "debug", cfg.Logging.ConsoleLogger.Level)
	// values absent from the file keep template defaults
	assert.Equal(t, "none", cfg.Logging.FileLogger.Level)
}

func TestLoadConfiguration_Invalid(t *testing.T) {
	cases := map[string]string{
		"version":      "version: 2\n",
		"workers":      "version: 1\nassembly:\n  workers: 0\n",
		"format":       "version: 1\ninput:\n  format: fastq\n",
		"level":        "version: 1\nlogging:\n  console:\n    level: loud\n",
		"unknown key":  "version: 1\nbogus: true\n",
		"mode":         "version: 1\nlogging:\n  file:\n    mode: rotate\n",
		"not yaml map": "- 1\n- 2\n",
	}
	for name, content := range cases {
		_, err := LoadConfiguration(writeConfig(t, content))
		assert.Error(t, err, name)
	}
}

func TestLoadConfiguration_MissingFile(t *testing.T) {
	_, err := LoadConfiguration(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	require.NoError(t, err)
	assert.Contains(t, string(data), "workers: 1")

	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	cfg.Input.Format = loader.FormatLines

	out, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "format: lines")

	// dumped configuration must load back
	back, err := LoadConfiguration(writeConfig(t, string(out)))
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
	assert.False(t, strings.Contains(string(out), "destination"), "empty destination is omitted")
}
