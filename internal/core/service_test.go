package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JonMunkholm/dexconv/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConverter(t *testing.T, opts Options) *Converter {
	t.Helper()
	return NewConverter(testRegistry(t), NewAliasTable(map[string]string{"megagengar": "Gengar-Mega"}), opts)
}

func TestNewConverter_Defaults(t *testing.T) {
	c := newTestConverter(t, Options{})

	opts := c.Options()
	assert.Equal(t, ShapeLegacy, opts.Shape)
	assert.Equal(t, DuplicateOverwrite, opts.Duplicates)
	assert.Equal(t, DefaultExportName, opts.ExportName)
	assert.Equal(t, "test", c.Registry().Name())
}

func TestConvert(t *testing.T) {
	c := newTestConverter(t, Options{ExportName: "Dex"})
	input := "species,num,types,nickname\nmegagengar,94,ghost/poison,spooky\n"

	res, err := c.Convert(context.Background(), strings.NewReader(input), FormatCSV)
	require.NoError(t, err)

	assert.NotEmpty(t, res.RunID)
	assert.Equal(t, 1, res.Stats.Entries)
	assert.Equal(t, []string{"nickname"}, res.Stats.Unrecognized)
	assert.Equal(t,
		"exports.Dex = {\n\t\"gengarmega\": {\n\t\t\"inherit\": true,\n\t\t\"num\": 94,\n\t\t\"types\": [\"Ghost\", \"Poison\"]\n\t}\n};\n",
		string(res.Output))
}

func TestConvert_LegacyKeepsEmptyCellsInColumnOrder(t *testing.T) {
	c := newTestConverter(t, Options{})
	input := "species,heightm,num,types\nbulbasaur,0.7,1,\n"

	res, err := c.Convert(context.Background(), strings.NewReader(input), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t,
		"exports.BattlePokedex = {\n\t\"bulbasaur\": {\n\t\t\"inherit\": true,\n\t\t\"heightm\": 0.7,\n\t\t\"num\": 1,\n\t\t\"types\": []\n\t}\n};\n",
		string(res.Output))
}

func TestConvert_KeepsContextRunID(t *testing.T) {
	c := newTestConverter(t, Options{})
	ctx := logging.ContextWithRunID(context.Background(), "run-123")

	res, err := c.Convert(ctx, strings.NewReader("species\nbulbasaur\n"), FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "run-123", res.RunID)
}

func TestConvertFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "pokedex.csv")
	out := filepath.Join(dir, "pokedex.js")
	require.NoError(t, os.WriteFile(in, []byte("species,num\nbulbasaur,1\n"), 0o644))

	c := newTestConverter(t, Options{Shape: ShapeStandalone})
	res, err := c.ConvertFile(context.Background(), in, out)
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, res.Output, data)
	assert.Equal(t, "exports.BattlePokedex = {\n\t\"bulbasaur\": {\n\t\t\"species\": \"Bulbasaur\",\n\t\t\"num\": 1\n\t}\n};\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "no temp files left behind")
}

func TestConvertFile_InputNotFound(t *testing.T) {
	dir := t.TempDir()
	c := newTestConverter(t, Options{})

	_, err := c.ConvertFile(context.Background(), filepath.Join(dir, "nope.csv"), filepath.Join(dir, "out.js"))
	require.ErrorIs(t, err, ErrInputNotFound)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, filepath.Join(dir, "nope.csv"), e.Path)
}

func TestConvertFile_ErrorCarriesPath(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "bad.csv")
	out := filepath.Join(dir, "out.js")
	require.NoError(t, os.WriteFile(in, []byte("species\nbulbasaur\n\"broken\n"), 0o644))

	c := newTestConverter(t, Options{})
	_, err := c.ConvertFile(context.Background(), in, out)
	require.ErrorIs(t, err, ErrMalformedRow)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, in, e.Path)
	assert.Equal(t, 3, e.Line)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "output must not exist after a failed run")
}

func TestConvertFile_OutputUnwritable(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "pokedex.csv")
	require.NoError(t, os.WriteFile(in, []byte("species\nbulbasaur\n"), 0o644))

	c := newTestConverter(t, Options{})
	_, err := c.ConvertFile(context.Background(), in, filepath.Join(dir, "missing", "out.js"))
	assert.ErrorIs(t, err, ErrOutputUnwritable)
}
