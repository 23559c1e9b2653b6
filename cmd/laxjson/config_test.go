package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leofalp/laxjson/dates"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "laxjson.yaml", `
convert:
  numbers: true
  dates: true
remove:
  nulls: true
strict: true
date_formats:
  - DD/MM/YYYY
date_cache_size: 64
`)

	config, err := LoadConfig(path, "")
	require.NoError(t, err)

	opts := config.Options()
	assert.True(t, opts.ConvertNumbers)
	assert.True(t, opts.ConvertDates)
	assert.False(t, opts.ConvertBooleans)
	assert.True(t, opts.RemoveNulls)
	assert.True(t, opts.StrictMode)
	assert.Equal(t, []dates.Format{dates.DayMonthYear}, opts.DateFormats)
	assert.Equal(t, 64, opts.DateCacheSize)
}

func TestLoadConfig_MissingDefaultIsFine(t *testing.T) {
	t.Chdir(t.TempDir())

	config, err := LoadConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, &Config{}, config)
}

func TestLoadConfig_MissingExplicitFails(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), "")
	assert.Error(t, err)
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "from-env.yaml", "strict: true\n")
	t.Setenv("LAXJSON_CONFIG", path)

	config, err := LoadConfig("", "")
	require.NoError(t, err)
	assert.True(t, config.Strict)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	configPath := writeFile(t, dir, "pointed.yaml", "strict: true\n")
	envPath := writeFile(t, dir, "custom.env", "LAXJSON_CONFIG="+configPath+"\n")
	t.Setenv("LAXJSON_CONFIG", "")
	os.Unsetenv("LAXJSON_CONFIG")

	config, err := LoadConfig("", envPath)
	require.NoError(t, err)
	assert.True(t, config.Strict)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.yaml", "convert: [not a map\n")
	_, err := LoadConfig(path, "")
	assert.Error(t, err)
}

func TestCleanFlags_Apply(t *testing.T) {
	base := (&Config{}).Options()
	base.ConvertNumbers = true

	flags := &CleanFlags{
		ConvertBooleans: true,
		Strict:          true,
		DateFormat:      []string{"MM/DD/YYYY"},
	}
	opts := flags.apply(base)

	assert.True(t, opts.ConvertNumbers, "config setting survives")
	assert.True(t, opts.ConvertBooleans, "flag layered on top")
	assert.True(t, opts.StrictMode)
	assert.Equal(t, []dates.Format{dates.MonthDayYear}, opts.DateFormats)
	assert.False(t, base.ConvertBooleans, "base options not mutated")
}
