package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runApp(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = &out
	app.Reader = strings.NewReader(stdin)

	err := app.Run(append([]string{"mapreduce"}, args...))
	return out.String(), err
}

func TestWordCountDemo(t *testing.T) {
	got, err := runApp(t, "", "wordcount")
	require.NoError(t, err)
	assert.Equal(t, "are 2\nlots 1\nof 1\nthese 1\nthose 1\nwords 3\n", got)
}

func TestWordCountTopByCount(t *testing.T) {
	got, err := runApp(t, "", "wordcount", "--order", "count", "--top", "2")
	require.NoError(t, err)
	assert.Equal(t, "words 3\nare 2\n", got)
}

func TestWordCountStdin(t *testing.T) {
	got, err := runApp(t, "The cat\nthe Cat!\n", "wordcount", "--normalize", "-")
	require.NoError(t, err)
	assert.Equal(t, "cat 2\nthe 2\n", got)
}

func TestWordCountFilesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	require.NoError(t, os.WriteFile(path, []byte("go go\nrust\n"), 0o600))

	got, err := runApp(t, "", "wordcount", "--format", "json", path)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":"go","value":2},{"key":"rust","value":1}]`, got)
}

func TestWordCountHTML(t *testing.T) {
	got, err := runApp(t, "<p>one two</p><p>two</p>", "wordcount", "--html", "-")
	require.NoError(t, err)
	assert.Equal(t, "one 1\ntwo 2\n", got)
}

func TestWordCountConfigFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: yaml\n  order: count\n  top: 1\n"), 0o600))

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run([]string{"mapreduce", "--config", cfgPath, "wordcount"})
	require.NoError(t, err)
	assert.Equal(t, "- key: words\n  value: 3\n", out.String())
	assert.Empty(t, os.Getenv("CONFIG_FILE"))
}

func TestWordCountHTMLFlagOverridesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("input:\n  format: html\n"), 0o600))

	got, err := runApp(t, "<p>a</p> b", "--config", cfgPath, "wordcount", "--html=false", "-")
	require.NoError(t, err)
	assert.Equal(t, "<p>a</p> 1\nb 1\n", got)

	got, err = runApp(t, "<p>a</p> b", "--config", cfgPath, "wordcount", "-")
	require.NoError(t, err)
	assert.Equal(t, "a 1\nb 1\n", got)
}

func TestWordCountInvalidFormat(t *testing.T) {
	_, err := runApp(t, "", "wordcount", "--format", "csv")
	require.Error(t, err)
}

func TestWordCountMissingFile(t *testing.T) {
	_, err := runApp(t, "", "wordcount", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}
